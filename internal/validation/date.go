package validation

import (
	"errors"
	"regexp"
	"time"
)

// Формат дат отчётных запросов: MM-DD-YYYY.
const ReportDateLayout = "01-02-2006"

var (
	// ErrDateFormat — строка не похожа на MM-DD-YYYY.
	ErrDateFormat = errors.New("дата не соответствует формату MM-DD-YYYY")
	// ErrDateValue — формат соблюдён, но такой календарной даты не существует.
	ErrDateValue = errors.New("несуществующая календарная дата")
)

var reportDateShape = regexp.MustCompile(`^\d{2}-\d{2}-\d{4}$`)

// ParseReportDate строго парсит дату в формате MM-DD-YYYY.
// Ошибка формы и ошибка значения различаются: admin endpoints
// отображают их на разные HTTP статусы.
func ParseReportDate(raw string) (time.Time, error) {
	if !reportDateShape.MatchString(raw) {
		return time.Time{}, ErrDateFormat
	}

	// time.Parse не допускает неявных коерций: 13-й месяц и 29 февраля
	// невисокосного года отклоняются.
	t, err := time.Parse(ReportDateLayout, raw)
	if err != nil {
		return time.Time{}, ErrDateValue
	}

	return t, nil
}

// IsValidReportDate сообщает, является ли строка корректной датой MM-DD-YYYY.
func IsValidReportDate(raw string) bool {
	_, err := ParseReportDate(raw)
	return err == nil
}
