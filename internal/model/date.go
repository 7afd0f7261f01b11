package model

import "time"

// DateLayout is layout of every date stored in model
const DateLayout = "2006-01-02"

const displayDateLayout = "2/1/2006"

// Date formats t as UTC date without time component
func Date(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// FormatDate converts stored date to vi-VN display format, invalid dates are returned as is
func FormatDate(date string) string {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format(displayDateLayout)
}
