package ofximport

import (
	"regexp"
	"time"
)

// Bracketed timezone/offset annotations, e.g. [0:GMT] or [-7:PDT].
var tzAnnotationPattern = regexp.MustCompile(`\[[^\]]*\]`)

const (
	ofxDateFormat = "20060102"
	isoDateFormat = "2006-01-02"
)

// NormalizeDate converts an OFX date string (YYYYMMDDHHMMSS[.sss][tz] or
// bare YYYYMMDD) to an ISO YYYY-MM-DD calendar date. Time of day and
// timezone are discarded - the import workflow only needs the calendar
// date. Returns the empty string when the input is missing, too short or
// not a constructible calendar date.
func NormalizeDate(raw string) string {
	d := tzAnnotationPattern.ReplaceAllString(raw, "")
	if len(d) < 8 {
		return ""
	}
	t, err := time.Parse(ofxDateFormat, d[:8])
	if err != nil {
		return ""
	}
	return t.Format(isoDateFormat)
}
