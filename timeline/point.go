package timeline

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

const readDayFormat = "2006-1-2" // Permissive read format (allows single-digit month/day).

// DayFormat is the format used to represent daily points as strings in ISO-8601 format.
const DayFormat = "2006-01-02" // write format

// Point represents a calendar instant at a fixed granularity: an exact day,
// a month, a quarter, or a year. Points of different granularities must not
// be mixed within one series.
type Point struct {
	g Granularity
	y int        // year
	m time.Month // first month of the granule
	d int        // day of the month, 1 unless Daily
}

// NewDaily returns a normalized daily Point for the given year, month, and day.
func NewDaily(year int, month time.Month, day int) Point {
	p := Point{g: Daily, y: year, m: month, d: day}
	p.y, p.m, p.d = p.time().Date()
	return p
}

// NewMonthly returns a normalized monthly Point. Month overflow rolls the
// year (e.g. month 13 becomes January of the next year).
func NewMonthly(year int, month time.Month) Point {
	p := Point{g: Monthly, y: year, m: month, d: 1}
	p.y, p.m, p.d = p.time().Date()
	return p
}

// NewQuarterly returns a normalized quarterly Point for quarter q in 1..4.
// Quarter overflow rolls the year.
func NewQuarterly(year, q int) Point {
	p := Point{g: Quarterly, y: year, m: time.Month((q-1)*3 + 1), d: 1}
	p.y, p.m, p.d = p.time().Date()
	return p
}

// NewYearly returns the yearly Point for the given year.
func NewYearly(year int) Point {
	return Point{g: Yearly, y: year, m: time.January, d: 1}
}

// Today returns the current instant truncated to the given granularity.
func Today(g Granularity) Point {
	y, m, d := time.Now().Date()
	switch g {
	case Daily:
		return NewDaily(y, m, d)
	case Monthly:
		return NewMonthly(y, m)
	case Quarterly:
		return NewQuarterly(y, int(m-1)/3+1)
	case Yearly:
		return NewYearly(y)
	default:
		panic(fmt.Sprintf("unknown granularity %d", g))
	}
}

// time returns a time.Time that is a canonical representation of the start
// of the granule (at midnight UTC).
func (p Point) time() time.Time { return time.Date(p.y, p.m, p.d, 0, 0, 0, 0, time.UTC) }

// Granularity returns the granularity of the point.
func (p Point) Granularity() Granularity { return p.g }

// Year returns the year of the point.
func (p Point) Year() int { return p.y }

// Month returns the first month of the granule (the month itself for Daily
// and Monthly points).
func (p Point) Month() time.Month { return p.time().Month() }

// Quarter returns the quarter (1..4) containing the point.
func (p Point) Quarter() int { return (int(p.Month())-1)/3 + 1 }

// Day returns the day of the month. It is 1 for all granularities but Daily.
func (p Point) Day() int { return p.d }

// IsZero returns true if the point is the zero value.
func (p Point) IsZero() bool { return p.y == 0 && p.m == 0 && p.d == 0 }

// Before reports whether p is before x. Both points must share a granularity.
func (p Point) Before(x Point) bool { return p.time().Before(x.time()) }

// After reports whether p is after x. Both points must share a granularity.
func (p Point) After(x Point) bool { return p.time().After(x.time()) }

// Compare orders p against x chronologically, returning -1, 0 or +1.
func (p Point) Compare(x Point) int { return p.time().Compare(x.time()) }

// Add returns a new Point with the given number of granules added: days for
// Daily points, months for Monthly, quarters for Quarterly, years for Yearly.
func (p Point) Add(n int) Point {
	switch p.g {
	case Daily:
		return NewDaily(p.y, p.m, p.d+n)
	case Monthly:
		return NewMonthly(p.y, p.m+time.Month(n))
	case Quarterly:
		q := Point{g: Quarterly, y: p.y, m: p.m + time.Month(3*n), d: 1}
		q.y, q.m, q.d = q.time().Date()
		return q
	case Yearly:
		return NewYearly(p.y + n)
	default:
		panic(fmt.Sprintf("unknown granularity %d", p.g))
	}
}

// Truncate returns the point at granularity g containing p. It fails when g
// is finer than the point's own granularity, since that information does not
// exist (a month does not know its days).
func (p Point) Truncate(g Granularity) (Point, error) {
	if !g.Coarser(p.g) {
		return Point{}, fmt.Errorf("cannot truncate %s point to finer %s: %w", p.g, g, ErrGranularityMismatch)
	}
	switch g {
	case Daily:
		return p, nil
	case Monthly:
		return NewMonthly(p.y, p.Month()), nil
	case Quarterly:
		return NewQuarterly(p.y, p.Quarter()), nil
	case Yearly:
		return NewYearly(p.y), nil
	default:
		panic(fmt.Sprintf("unknown granularity %d", g))
	}
}

// Years returns the real-number representation of the point: the year plus
// the fractional offset of the granule within it. Daily points use a 365-day
// year fraction.
func (p Point) Years() float64 {
	switch p.g {
	case Daily:
		return float64(p.y) + float64(p.time().YearDay()-1)/365
	case Monthly:
		return float64(p.y) + float64(p.Month()-1)/12
	case Quarterly:
		return float64(p.y) + float64(p.Quarter()-1)/4
	case Yearly:
		return float64(p.y)
	default:
		panic(fmt.Sprintf("unknown granularity %d", p.g))
	}
}

// Since returns the elapsed time from x to p in the points' native period
// units: whole days for Daily points, months for Monthly, quarters for
// Quarterly, years for Yearly. The result is negative when p is before x.
// Both points must share a granularity; mixing them is a usage error.
func (p Point) Since(x Point) float64 {
	if p.g != x.g {
		panic("timeline: elapsed time between points of different granularities: " + x.g.String() + " and " + p.g.String())
	}
	switch p.g {
	case Daily:
		return p.time().Sub(x.time()).Hours() / 24
	case Monthly:
		return float64((p.y-x.y)*12 + int(p.Month()-x.Month()))
	case Quarterly:
		return float64((p.y-x.y)*4 + p.Quarter() - x.Quarter())
	case Yearly:
		return float64(p.y - x.y)
	default:
		panic(fmt.Sprintf("unknown granularity %d", p.g))
	}
}

// YearsSince returns the elapsed time from x to p as a fractional number of
// years: Since divided by the granularity's periods per year.
func (p Point) YearsSince(x Point) float64 {
	return p.Since(x) / float64(p.g.Frequency())
}

// String formats the point in its parseable form: "2025-07-31" for Daily,
// "2025-07" for Monthly, "2025-Q3" for Quarterly, "2025" for Yearly.
func (p Point) String() string {
	switch p.g {
	case Daily:
		return p.time().Format(DayFormat)
	case Monthly:
		return p.time().Format("2006-01")
	case Quarterly:
		return fmt.Sprintf("%04d-Q%d", p.y, p.Quarter())
	case Yearly:
		return fmt.Sprintf("%04d", p.y)
	default:
		panic(fmt.Sprintf("unknown granularity %d", p.g))
	}
}

var quarterRE = regexp.MustCompile(`^(\d{4})-[Qq]([1-4])$`)

// ParsePoint parses a Point from a string, inferring the granularity from
// the format: "2025-07-31" (daily, lenient about leading zeros), "2025-07"
// (monthly), "2025-Q3" (quarterly), "2025" (yearly).
func ParsePoint(str string) (Point, error) {
	if m := quarterRE.FindStringSubmatch(str); m != nil {
		y, _ := strconv.Atoi(m[1])
		q, _ := strconv.Atoi(m[2])
		return NewQuarterly(y, q), nil
	}
	if y, err := strconv.Atoi(str); err == nil && len(str) == 4 {
		return NewYearly(y), nil
	}
	if on, err := time.Parse("2006-1", str); err == nil {
		return NewMonthly(on.Year(), on.Month()), nil
	}
	on, err := time.Parse(readDayFormat, str)
	if err != nil {
		return Point{}, fmt.Errorf("invalid point %q: want a date, month, quarter or year like %q, \"2006-01\", \"2006-Q1\" or \"2006\"", str, DayFormat)
	}
	return NewDaily(on.Date()), nil
}

// MustParsePoint is like ParsePoint but panics on error.
func MustParsePoint(str string) Point {
	p, err := ParsePoint(str)
	if err != nil {
		panic(err.Error())
	}
	return p
}

// UnmarshalJSON parses a point from its json string form.
func (j *Point) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	p, err := ParsePoint(str)
	if err != nil {
		return err
	}
	*j = p
	return nil
}

func (j Point) MarshalJSON() ([]byte, error) {
	str := j.String()
	return json.Marshal(&str)
}

// check that a Point pointer is a valid json marshall/unmarshaller type.
var _ json.Marshaler = (*Point)(nil)
var _ json.Unmarshaler = (*Point)(nil)
