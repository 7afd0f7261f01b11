package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

const (
	// TagEmail validates e-mail with the same rule as IsValidEmail
	TagEmail = "email_simple"
	// TagPhone validates phone with the same rule as IsValidPhone
	TagPhone = "vnphone"
	// TagWordFile validates file name with the same rule as IsWordFile
	TagWordFile = "wordfile"
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^(\+84|84|0)(3|5|7|8|9)[0-9]{8}$`)
)

// IsValidEmail checks e-mail has local part, domain and top-level domain
func IsValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

// IsValidPhone checks phone is Vietnamese mobile number, whitespaces are ignored
func IsValidPhone(phone string) bool {
	return phoneRe.MatchString(stripSpaces(phone))
}

// IsWordFile checks file name has .doc or .docx extension, case is ignored
func IsWordFile(fileName string) bool {
	name := strings.ToLower(fileName)
	return strings.HasSuffix(name, ".docx") || strings.HasSuffix(name, ".doc")
}

func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// Default builds echo validator with english translations, json field names and custom rules
func Default() (*EchoValidator, error) {
	enLocale := en.New()
	unvTranslator := ut.New(enLocale, enLocale)
	trans, ok := unvTranslator.GetTranslator("en")
	if !ok {
		return nil, fmt.Errorf("failed to build validator because of missing en translations")
	}

	validate := validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)

	if err := entranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, fmt.Errorf("failed to register default translations - %w", err)
	}

	if err := RegisterRules(validate, trans); err != nil {
		return nil, err
	}
	return Echo(validate, trans), nil
}

// RegisterRules registers custom validation tags along with their translations
func RegisterRules(validate *validator.Validate, trans ut.Translator) error {
	rules := []struct {
		tag     string
		fn      validator.Func
		message string
	}{
		{tag: TagEmail, fn: validateEmail, message: "{0} must be a valid email address"},
		{tag: TagPhone, fn: validatePhone, message: "{0} must be a valid mobile phone number"},
		{tag: TagWordFile, fn: validateWordFile, message: "{0} must be a Word document (.doc, .docx)"},
	}

	for _, r := range rules {
		if err := validate.RegisterValidation(r.tag, r.fn); err != nil {
			return fmt.Errorf("failed to register %s validation - %w", r.tag, err)
		}

		message := r.message
		tag := r.tag
		err := validate.RegisterTranslation(tag, trans,
			func(ut ut.Translator) error {
				return ut.Add(tag, message, true)
			},
			func(ut ut.Translator, fe validator.FieldError) string {
				t, _ := ut.T(tag, fe.Field())
				return t
			},
		)
		if err != nil {
			return fmt.Errorf("failed to register %s translation - %w", r.tag, err)
		}
	}
	return nil
}

func validateEmail(fl validator.FieldLevel) bool {
	return IsValidEmail(fl.Field().String())
}

func validatePhone(fl validator.FieldLevel) bool {
	return IsValidPhone(fl.Field().String())
}

func validateWordFile(fl validator.FieldLevel) bool {
	return IsWordFile(fl.Field().String())
}

func jsonFieldName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "form", "param"} {
		name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}

		if name != "" {
			return name
		}
	}
	return fld.Name
}
