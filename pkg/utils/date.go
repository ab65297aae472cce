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

// TruncateToDay zera o componente de hora, preservando o fuso.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// PreviousMonth retorna o mês e o ano do mês anterior à data informada.
// Usado pela cron de fechamento, que roda no início do mês seguinte.
func PreviousMonth(ref time.Time) (month, year int) {
	prev := ref.AddDate(0, 0, -ref.Day())
	return int(prev.Month()), prev.Year()
}
