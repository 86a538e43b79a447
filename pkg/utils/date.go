package utils

import "time"

const DateLayout = "2006-01-02"

// DateIn formata o dia de calendário do instante no fuso informado (yyyy-mm-dd)
func DateIn(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(DateLayout)
}
