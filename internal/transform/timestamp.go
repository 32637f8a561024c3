package transform

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// isoLayout matches JavaScript's toISOString: millisecond precision, UTC.
const isoLayout = "2006-01-02T15:04:05.000Z07:00"

// millisThreshold is the digit count at which a unix value is read as milliseconds.
const millisThreshold = 13

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC1123,
	time.RFC1123Z,
}

// nowFunc is replaced in tests.
var nowFunc = time.Now

// ConvertTimestamp converts between unix time and calendar dates.
//
// Input may be unix seconds, unix milliseconds (13+ digits), "now", or a date
// in RFC 3339 / "YYYY-MM-DD[ HH:MM:SS]" form (read as UTC unless it carries
// an offset).
//
// Options:
//   - tz: IANA zone name for an extra "local" line, e.g. Europe/Berlin
func ConvertTimestamp(input string, opts Options) Result {
	s := strings.TrimSpace(input)
	if s == "" {
		return fail("input is empty")
	}

	t, err := parseTimestamp(s)
	if err != nil {
		return fail("%v", err)
	}
	if y := t.UTC().Year(); y < 0 || y > 9999 {
		return fail("timestamp out of range: year %d is outside 0000-9999", y)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "unix: %d\n", t.Unix())
	fmt.Fprintf(&b, "unix_ms: %d\n", t.UnixMilli())
	fmt.Fprintf(&b, "iso: %s", t.UTC().Format(isoLayout))

	if tz := opts.Get("tz", ""); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return fail("unknown time zone %q", tz)
		}
		fmt.Fprintf(&b, "\nlocal: %s", t.In(loc).Format(time.RFC3339))
	}

	return Result{Output: b.String()}
}

func parseTimestamp(s string) (time.Time, error) {
	if strings.EqualFold(s, "now") {
		return nowFunc(), nil
	}

	if isInteger(s) {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return time.Time{}, fmt.Errorf("timestamp out of range: %s", s)
		}
		if len(strings.TrimPrefix(s, "-")) >= millisThreshold {
			return time.UnixMilli(n), nil
		}
		return time.Unix(n, 0), nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized timestamp: %q", s)
}

func isInteger(s string) bool {
	s = strings.TrimPrefix(s, "-")
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
