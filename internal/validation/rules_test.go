package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidEmail(t *testing.T) {
	cases := map[string]bool{
		"contact@abc.com.vn": true,
		"info@xyz.vn":        true,
		"a@b.c":              true,
		"":                   false,
		"contact@abc":        false,
		"contact abc@def.vn": false,
		"@abc.vn":            false,
		"contact@@abc.vn":    false,
	}

	for email, valid := range cases {
		assert.Equal(t, valid, IsValidEmail(email), "unexpected result for %q", email)
	}
}

func TestIsValidPhone(t *testing.T) {
	cases := map[string]bool{
		"0901234567":     true,
		"090 123 4567":   true,
		"+84901234567":   true,
		"84381234567":    true,
		"0561234567":     true,
		"0701234567":     true,
		"0801234567":     true,
		"0201234567":     false,
		"0411234567":     false,
		"090123456":      false,
		"09012345678":    false,
		"+1 2025550123":  false,
		"":               false,
		"090-123-4567":   false,
		"\t0901234567\n": true,
	}

	for phone, valid := range cases {
		assert.Equal(t, valid, IsValidPhone(phone), "unexpected result for %q", phone)
	}
}

func TestIsWordFile(t *testing.T) {
	assert.True(t, IsWordFile("hop-dong.docx"))
	assert.True(t, IsWordFile("HOP-DONG.DOCX"))
	assert.True(t, IsWordFile("bao-gia.doc"))
	assert.False(t, IsWordFile("bao-gia.pdf"))
	assert.False(t, IsWordFile("docx"))
	assert.False(t, IsWordFile(""))
}

type contact struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email_simple"`
	Phone string `json:"phone" validate:"required,vnphone"`
}

func TestDefaultValidator(t *testing.T) {
	v, err := Default()
	require.NoError(t, err, "validator must be built")

	t.Log("valid payload passes")
	{
		err := v.Validate(&contact{Name: "ABC", Email: "contact@abc.com.vn", Phone: "0901234567"})
		require.NoError(t, err)
	}

	t.Log("every violation is reported per json field")
	{
		err := v.Validate(&contact{Email: "contact@abc", Phone: "0201234567"})
		require.Error(t, err)

		var pldErr *PayloadError
		require.ErrorAs(t, err, &pldErr, "error must be payload error")

		fields := pldErr.Fields()
		require.Len(t, fields, 3)
		require.Equal(t, "name is a required field", fields["name"])
		require.Equal(t, "email must be a valid email address", fields["email"])
		require.Equal(t, "phone must be a valid mobile phone number", fields["phone"])
	}
}

func TestPayloadErrorJSON(t *testing.T) {
	pldErr := &PayloadError{}
	pldErr.Violation("name", "name is a required field")

	data, err := pldErr.MarshalJSON()
	require.NoError(t, err)
	require.JSONEq(t, `{"errors":[{"field":"name","message":"name is a required field"}]}`, string(data))
	require.Equal(t, "name is a required field\n", pldErr.Error())
}
