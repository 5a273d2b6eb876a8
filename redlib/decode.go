package redlib

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Entity decoders normalize the short text fragments Redlib renders into
// typed scalars. They are total on their accepted domain: text that fits
// no expected shape decodes to a safe default rather than failing, so one
// odd field never aborts a page's extraction.

var (
	relativeTimeRe = regexp.MustCompile(`(\d+)([dhm])\s+ago`)
	absoluteTimeRe = regexp.MustCompile(`([A-Za-z]+ \d{1,2} \d{4}, \d{2}:\d{2}:\d{2}) UTC`)
	digitsRe       = regexp.MustCompile(`\d+`)
	commentCountRe = regexp.MustCompile(`(\d+) comments?`)
)

// absoluteTimeLayout parses timestamps like "Dec 24 2025, 03:36:38".
const absoluteTimeLayout = "Jan 2 2006, 15:04:05"

// DecodeTimestamp converts Redlib's timestamp text to epoch seconds.
// Relative forms ("3h ago", units d/h/m) are resolved against the supplied
// clock; absolute forms ("Dec 24 2025, 03:36:38 UTC") parse literally.
// Anything else decodes to now.
func DecodeTimestamp(text string, now time.Time) float64 {
	if m := relativeTimeRe.FindStringSubmatch(text); m != nil {
		n, _ := strconv.Atoi(m[1])
		var unit int
		switch m[2] {
		case "d":
			unit = 86400
		case "h":
			unit = 3600
		case "m":
			unit = 60
		}
		return float64(now.Unix() - int64(n*unit))
	}

	if m := absoluteTimeRe.FindStringSubmatch(text); m != nil {
		if t, err := time.ParseInLocation(absoluteTimeLayout, m[1], time.UTC); err == nil {
			return float64(t.Unix())
		}
	}

	return float64(now.Unix())
}

// DecodeScore converts score text to an integer. Redlib renders hidden
// scores as "Hidden" or a bullet character; both decode to 0. Otherwise
// the first run of digits wins, and no digits means 0.
func DecodeScore(text string) int {
	text = strings.TrimSpace(text)
	if text == "Hidden" || text == "•" {
		return 0
	}
	m := digitsRe.FindString(text)
	if m == "" {
		return 0
	}
	n, _ := strconv.Atoi(m)
	return n
}

// DecodeCommentCount extracts the count from text like "45 comments".
func DecodeCommentCount(text string) int {
	m := commentCountRe.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	n, _ := strconv.Atoi(m[1])
	return n
}

// DecodeCount converts subscriber/active-user text to an integer. Redlib
// abbreviates with lowercase k (thousands) and m (millions) and uses comma
// thousands separators; "1.2m" is 1200000 and "12,345" is 12345.
// Unparseable text decodes to 0. Uppercase suffixes are not produced by
// the templates and are not recognized.
func DecodeCount(text string) int {
	clean := strings.TrimSpace(strings.ReplaceAll(text, ",", ""))

	if strings.Contains(clean, "k") {
		f, err := strconv.ParseFloat(strings.TrimSpace(strings.ReplaceAll(clean, "k", "")), 64)
		if err != nil {
			return 0
		}
		return int(math.Round(f * 1_000))
	}
	if strings.Contains(clean, "m") {
		f, err := strconv.ParseFloat(strings.TrimSpace(strings.ReplaceAll(clean, "m", "")), 64)
		if err != nil {
			return 0
		}
		return int(math.Round(f * 1_000_000))
	}

	n, err := strconv.Atoi(clean)
	if err != nil {
		return 0
	}
	return n
}
