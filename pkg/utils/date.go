package utils

import "time"

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// FormatLongDate formata uma data como "Feb 3, 2026"; data zero resulta em ""
func FormatLongDate(date *time.Time) string {
	if date == nil || date.IsZero() {
		return ""
	}

	return date.Format("Jan 2, 2006")
}
