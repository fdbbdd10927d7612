package presenter

import "strconv"

// mandaysPerMonth is the conversion threshold: below it effort renders in
// person-days, at or above it in person-months.
const mandaysPerMonth = 20

// FormatManday renders an effort value for display. Division is exact, no
// rounding: 45 renders as "2.25 person-months".
func FormatManday(manday float64) string {
	if manday < mandaysPerMonth {
		return strconv.FormatFloat(manday, 'f', -1, 64) + " person-days"
	}
	return strconv.FormatFloat(manday/mandaysPerMonth, 'f', -1, 64) + " person-months"
}
