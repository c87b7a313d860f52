package core

import "strconv"

// MonthBucket is one calendar month's aggregated revenue, used to build the
// trend series on the dashboard chart.
type MonthBucket struct {
	Year  int
	Month int // 1-12
	Total Money
}

// Abbreviated pt-BR month names, indexed by time.Month value.
var monthShortNames = [13]string{
	"", "jan", "fev", "mar", "abr", "mai", "jun",
	"jul", "ago", "set", "out", "nov", "dez",
}

var monthFullNames = [13]string{
	"", "janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// Label returns the short chart label for the bucket ("jan", "fev", ...).
func (b MonthBucket) Label() string {
	if b.Month < 1 || b.Month > 12 {
		return ""
	}
	return monthShortNames[b.Month]
}

// FullLabel returns the long form used in chart tooltips
// ("janeiro de 2024").
func (b MonthBucket) FullLabel() string {
	if b.Month < 1 || b.Month > 12 {
		return ""
	}
	return monthFullNames[b.Month] + " de " + strconv.Itoa(b.Year)
}
