package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseReportDate_Valid(t *testing.T) {
	got, err := ParseReportDate("08-15-2020")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2020, 8, 15, 0, 0, 0, 0, time.UTC), got)
}

func TestParseReportDate_LeapDay(t *testing.T) {
	// 2020 високосный, 29 февраля существует.
	got, err := ParseReportDate("02-29-2020")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2020, 2, 29, 0, 0, 0, 0, time.UTC), got)
}

func TestParseReportDate_FormatErrors(t *testing.T) {
	cases := []string{
		"",
		"2020-08-15",
		"8-15-2020",
		"08/15/2020",
		"08-15-20",
		"not-a-date",
		"08-15-2020extra",
	}
	for _, raw := range cases {
		_, err := ParseReportDate(raw)
		assert.ErrorIs(t, err, ErrDateFormat, "raw=%q", raw)
	}
}

func TestParseReportDate_ValueErrors(t *testing.T) {
	cases := []string{
		"02-29-2021", // 2021 не високосный
		"13-01-2020", // 13-го месяца нет
		"00-10-2020",
		"04-31-2020", // в апреле 30 дней
		"06-00-2020",
	}
	for _, raw := range cases {
		_, err := ParseReportDate(raw)
		assert.ErrorIs(t, err, ErrDateValue, "raw=%q", raw)
	}
}

func TestIsValidReportDate(t *testing.T) {
	assert.True(t, IsValidReportDate("01-01-2023"))
	assert.False(t, IsValidReportDate("01-2023"))
	assert.False(t, IsValidReportDate("02-30-2023"))
}
