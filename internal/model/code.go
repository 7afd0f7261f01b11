package model

import (
	"fmt"
	"regexp"
	"strconv"
)

// CustomerCodePrefix is prefix of every generated customer code
const CustomerCodePrefix = "KH"

var customerCodeRe = regexp.MustCompile(`^` + CustomerCodePrefix + `(\d+)`)

// GenerateCustomerCode returns code following the biggest numeric code among existing ones.
// Codes without prefix or number are ignored.
func GenerateCustomerCode(existingCodes []string) string {
	maxNumber := 0
	for _, code := range existingCodes {
		m := customerCodeRe.FindStringSubmatch(code)
		if m == nil {
			continue
		}

		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}

		if n > maxNumber {
			maxNumber = n
		}
	}
	return fmt.Sprintf("%s%03d", CustomerCodePrefix, maxNumber+1)
}
