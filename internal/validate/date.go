package validate

import (
	"fmt"
	"regexp"
	"strconv"

	"notemark/internal/diag"
	"notemark/internal/marker"
)

var (
	// Values that look like a date still being typed. Validating every
	// keystroke of a date would flash an error on every partial year
	// and month before the user finishes, so these stay quiet.
	partialDateRe = regexp.MustCompile(`^(\d{1,4}|\d{4}-|\d{4}-\d{1,2}|\d{4}-\d{1,2}-)$`)

	canonicalDateRe = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
	slashDateRe     = regexp.MustCompile(`^(\d{4})/(\d{1,2})/(\d{1,2})$`)
	usSlashDateRe   = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	usDashDateRe    = regexp.MustCompile(`^(\d{1,2})-(\d{1,2})-(\d{4})$`)
)

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var daysPerMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

const (
	minYear = 1900
	maxYear = 2100
)

const dateHint = "expected YYYY-MM-DD or a keyword like 'today'"

func isLeapYear(year int) bool {
	return year%4 == 0 && year%100 != 0 || year%400 == 0
}

func daysInMonth(month, year int) int {
	if month == 2 && isLeapYear(year) {
		return 29
	}
	return daysPerMonth[month-1]
}

// ValidateDate checks the raw value of a date marker and returns at most
// one diagnostic for it.
func ValidateDate(pol Policy, m marker.Match) *diag.Diagnostic {
	value := m.Value

	if partialDateRe.MatchString(value) {
		return nil
	}
	if marker.IsDateKeyword(value) {
		return nil
	}

	if g := slashDateRe.FindStringSubmatch(value); g != nil {
		iso := isoDate(atoi(g[1]), atoi(g[2]), atoi(g[3]))
		d := diag.NewError(diag.DateSlashFormat, m.Span,
			fmt.Sprintf("date %q uses slashes; write it as %s", value, iso)).
			WithHint(dateHint).
			WithSuggested("Use "+iso, "@"+iso)
		return &d
	}
	if g := usSlashDateRe.FindStringSubmatch(value); g != nil {
		iso := isoDate(atoi(g[3]), atoi(g[1]), atoi(g[2]))
		d := diag.NewError(diag.DateUSSlashFormat, m.Span,
			fmt.Sprintf("date %q looks like US month/day order; write it as %s", value, iso)).
			WithHint(dateHint).
			WithSuggested("Use "+iso, "@"+iso)
		return &d
	}
	if g := usDashDateRe.FindStringSubmatch(value); g != nil {
		iso := isoDate(atoi(g[3]), atoi(g[1]), atoi(g[2]))
		d := diag.NewError(diag.DateUSDashFormat, m.Span,
			fmt.Sprintf("date %q looks like US month-day order; write it as %s", value, iso)).
			WithHint(dateHint).
			WithSuggested("Use "+iso, "@"+iso)
		return &d
	}

	if g := canonicalDateRe.FindStringSubmatch(value); g != nil {
		return validateCanonicalDate(m, atoi(g[1]), atoi(g[2]), atoi(g[3]))
	}

	now := pol.now()
	today := now.Format("2006-01-02")
	next := now.AddDate(0, 0, 1).Format("2006-01-02")
	d := diag.NewError(diag.DateUnrecognized, m.Span,
		fmt.Sprintf("unrecognized date %q", value)).
		WithHint(dateHint).
		WithSuggested("Use 'today'", "@today").
		WithFix("Use 'tomorrow'", "@tomorrow").
		WithFix("Use "+today, "@"+today).
		WithFix("Use "+next, "@"+next)
	return &d
}

func validateCanonicalDate(m marker.Match, year, month, day int) *diag.Diagnostic {
	if year < minYear || year > maxYear {
		d := diag.NewError(diag.DateYearRange, m.Span,
			fmt.Sprintf("year %d is out of range %d-%d", year, minYear, maxYear)).
			WithHint(dateHint)
		return &d
	}
	if month < 1 || month > 12 {
		d := diag.NewError(diag.DateMonthRange, m.Span,
			fmt.Sprintf("month %d is out of range 1-12", month)).
			WithHint(dateHint).
			WithSuggested("Clamp to December", "@"+isoDate(year, 12, day))
		return &d
	}
	if day < 1 || day > 31 {
		d := diag.NewError(diag.DateDayRange, m.Span,
			fmt.Sprintf("day %d is out of range 1-31", day)).
			WithHint(dateHint).
			WithSuggested(
				fmt.Sprintf("Clamp to %s %d", monthNames[month-1], daysInMonth(month, year)),
				"@"+isoDate(year, month, daysInMonth(month, year)))
		return &d
	}

	dim := daysInMonth(month, year)
	if day <= dim {
		return nil
	}

	monthName := monthNames[month-1]
	msg := fmt.Sprintf("%s has %d days in %d", monthName, dim, year)
	if month == 2 && isLeapYear(year) {
		msg += " (leap year)"
	}

	d := diag.NewError(diag.DateNotInCalendar, m.Span, msg).
		WithHint(dateHint).
		WithSuggested(
			fmt.Sprintf("Clamp to %s %d", monthName, dim),
			"@"+isoDate(year, month, dim))

	if month != 2 {
		nextMonth, nextYear := month+1, year
		if nextMonth > 12 {
			nextMonth, nextYear = 1, year+1
		}
		if day <= daysInMonth(nextMonth, nextYear) && nextYear <= maxYear {
			d = d.WithFixDesc(
				fmt.Sprintf("Use %s %d", monthNames[nextMonth-1], day),
				"@"+isoDate(nextYear, nextMonth, day),
				"did you mean next month, same day")
		}
	}
	return &d
}

func isoDate(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
