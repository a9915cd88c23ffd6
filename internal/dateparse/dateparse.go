// Package dateparse normalizes the date strings Korean consumer services
// return into timezone-aware timestamps.
//
// Upstream payloads mix ISO-like dates, compact numeric forms, Korean
// year/month/day notation, and US month-first forms, sometimes varying
// between fields of a single response. Parse tries a fixed priority list of
// anchored patterns and stops at the first one whose captured values form a
// real calendar date; an invalid date (month 13, day 32) means that pattern
// did not match and later patterns are still tried.
package dateparse

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Seoul is the fixed reference zone attached to every parsed timestamp.
// Korea has no daylight saving.
var Seoul = time.FixedZone("Asia/Seoul", 9*60*60)

type pattern struct {
	re    *regexp.Regexp
	build func(n []int, year int) (time.Time, bool)
}

// patterns are tried in order; earlier forms win. The order matters where
// inputs are ambiguous: "202501" must read as year-month, never month/day.
var patterns = []pattern{
	// YYYY-M-D
	{regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`), ymd(0, 1, 2)},
	// YYYYMMDD
	{regexp.MustCompile(`^(\d{4})(\d{2})(\d{2})$`), ymd(0, 1, 2)},
	// YYYY/M/D
	{regexp.MustCompile(`^(\d{4})/(\d{1,2})/(\d{1,2})$`), ymd(0, 1, 2)},
	// YYYY.M.D
	{regexp.MustCompile(`^(\d{4})\.(\d{1,2})\.(\d{1,2})$`), ymd(0, 1, 2)},
	// YYYY-M, day defaults to 1
	{regexp.MustCompile(`^(\d{4})-(\d{1,2})$`), ym},
	// YYYY.M
	{regexp.MustCompile(`^(\d{4})\.(\d{1,2})$`), ym},
	// YYYYMM
	{regexp.MustCompile(`^(\d{4})(\d{2})$`), ym},
	// M/D H, assumes the current year
	{regexp.MustCompile(`^(\d{1,2})/(\d{1,2})\s+(\d{1,2})$`), monthDayHour},
	// YYYY년 M월 D일
	{regexp.MustCompile(`^(\d{4})년\s*(\d{1,2})월\s*(\d{1,2})일$`), ymd(0, 1, 2)},
	// YYYY년 M월
	{regexp.MustCompile(`^(\d{4})년\s*(\d{1,2})월$`), ym},
	// M/D/YYYY, US month-first
	{regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`), ymd(2, 0, 1)},
	// M.D.YYYY
	{regexp.MustCompile(`^(\d{1,2})\.(\d{1,2})\.(\d{4})$`), ymd(2, 0, 1)},
	// YYYY-M-D H:Mi:S.fraction, fraction dropped
	{regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})\s+(\d{1,2}):(\d{1,2}):(\d{1,2})\.\d+$`), dateTime},
}

// Parse normalizes raw into a timestamp in the Seoul zone. The second
// return is false when no pattern produced a valid calendar date. Formats
// without a year assume the current one.
func Parse(raw string) (time.Time, bool) {
	return ParseInYear(raw, clock.Now().Year())
}

// ParseInYear is Parse with an explicit default year for year-less formats.
func ParseInYear(raw string, year int) (time.Time, bool) {
	value := strings.TrimSpace(raw)
	for _, p := range patterns {
		groups := p.re.FindStringSubmatch(value)
		if groups == nil {
			continue
		}
		n := make([]int, len(groups)-1)
		for i, g := range groups[1:] {
			n[i], _ = strconv.Atoi(g)
		}
		if t, ok := p.build(n, year); ok {
			return t, true
		}
	}
	return time.Time{}, false
}

// ymd builds a midnight date from year/month/day capture positions.
func ymd(yi, mi, di int) func(n []int, _ int) (time.Time, bool) {
	return func(n []int, _ int) (time.Time, bool) {
		return makeDate(n[yi], n[mi], n[di], 0, 0, 0)
	}
}

func ym(n []int, _ int) (time.Time, bool) {
	return makeDate(n[0], n[1], 1, 0, 0, 0)
}

func monthDayHour(n []int, year int) (time.Time, bool) {
	return makeDate(year, n[0], n[1], n[2], 0, 0)
}

func dateTime(n []int, _ int) (time.Time, bool) {
	return makeDate(n[0], n[1], n[2], n[3], n[4], n[5])
}

// makeDate builds a Seoul timestamp, rejecting field values time.Date would
// otherwise silently normalize (month 13, day 32, hour 25).
func makeDate(year, month, day, hour, min, sec int) (time.Time, bool) {
	t := time.Date(year, time.Month(month), day, hour, min, sec, 0, Seoul)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day ||
		t.Hour() != hour || t.Minute() != min || t.Second() != sec {
		return time.Time{}, false
	}
	return t, true
}
