package ofximport

import (
	"regexp"
	"strings"
)

var (
	// Opening tags left without their closing bracket at end of line, as
	// emitted by some institutions.
	unclosedTagPattern = regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)

	ofxMarkerPattern       = regexp.MustCompile(`(?i)<OFX>`)
	availBalancePattern    = regexp.MustCompile(`(?i)<AVAILBAL>`)
	availBalanceEndPattern = regexp.MustCompile(`(?i)</AVAILBAL>|<LEDGERBAL>`)
)

// preprocessContent applies one-off transforms to fix bad data before
// scanning.
func preprocessContent(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")
	return unclosedTagPattern.ReplaceAllString(content, "$1>")
}

// statementBody returns content from the first OFX marker onwards,
// discarding the OFXHEADER preamble and any SGML prologue. When no marker
// is present the full string is used as a fallback.
func statementBody(content string) string {
	if loc := ofxMarkerPattern.FindStringIndex(content); loc != nil {
		return content[loc[0]:]
	}
	return content
}

// availableBalanceBody returns the AVAILBAL section of content, bounded by
// its closing tag, the start of LEDGERBAL or the end of input. AVAILBAL
// nests its own BALAMT which must not be conflated with the ledger
// balance at the outer level.
func availableBalanceBody(content string) string {
	loc := availBalancePattern.FindStringIndex(content)
	if loc == nil {
		return ""
	}
	section := content[loc[1]:]
	if end := availBalanceEndPattern.FindStringIndex(section); end != nil {
		section = section[:end[0]]
	}
	return section
}
