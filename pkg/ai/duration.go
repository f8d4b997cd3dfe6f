package ai

import (
	"fmt"
	"time"
)

const dateLayout = "01/2006"

// Duration describes how long a position lasted, from MM/YYYY dates. A
// current position runs until now. Anything unparsable is "some time".
func Duration(start, end string, current bool, now time.Time) string {
	s, err := time.Parse(dateLayout, start)
	if err != nil {
		return "some time"
	}
	var e time.Time
	switch {
	case current:
		e = now
	case end != "":
		if e, err = time.Parse(dateLayout, end); err != nil {
			return "some time"
		}
	default:
		return "some time"
	}

	months := (e.Year()-s.Year())*12 + int(e.Month()) - int(s.Month())
	years, months := months/12, months%12
	switch {
	case years > 0 && months > 0:
		return fmt.Sprintf("%s and %s", plural(years, "year"), plural(months, "month"))
	case years > 0:
		return plural(years, "year")
	case months > 0:
		return plural(months, "month")
	}
	return "some time"
}

func plural(n int, unit string) string {
	if n > 1 {
		return fmt.Sprintf("%d %ss", n, unit)
	}
	return fmt.Sprintf("%d %s", n, unit)
}
