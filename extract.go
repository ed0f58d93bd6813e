package ofximport

import (
	"regexp"
	"strings"
	"sync"

	"github.com/golang/glog"
)

// Extractor extracts tag values and transaction blocks from raw OFX text.
type Extractor interface {
	// Tag returns the value of the first occurrence of the given tag,
	// or the empty string when the tag is absent. The tag name is matched
	// case-insensitively.
	Tag(content, tag string) string
	// TransactionBlocks returns the contents of every STMTTRN block in
	// file order.
	TransactionBlocks(content string) []string
}

type extractor struct {
	mu       sync.RWMutex
	patterns map[string]tagPatterns
}

// tagPatterns holds the two compiled styles for one tag name.
type tagPatterns struct {
	xml  *regexp.Regexp // <TAG>value</TAG>
	sgml *regexp.Regexp // <TAG>value, terminated by <, \n or \r
}

var (
	extractorSingleton *extractor
	initExtractor      sync.Once

	openTxnPattern  = regexp.MustCompile(`(?i)<STMTTRN>`)
	closeTxnPattern = regexp.MustCompile(`(?i)</STMTTRN>|</BANKTRANLIST>`)
)

// GetExtractor returns the singleton instance of the default extractor.
func GetExtractor() Extractor {
	initExtractor.Do(func() {
		extractorSingleton = &extractor{patterns: make(map[string]tagPatterns)}
	})
	return extractorSingleton
}

// Tag extracts the value for the given tag from content.
// OFX 2.x writes well formed XML elements while OFX 1.x omits closing tags
// for scalar fields, so the XML style is tried first and the SGML style is
// the fallback. Absence of a match is a normal, silent outcome.
func (e *extractor) Tag(content, tag string) string {
	p := e.patternsFor(tag)
	if m := p.xml.FindStringSubmatch(content); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := p.sgml.FindStringSubmatch(content); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// TransactionBlocks scans content for STMTTRN blocks. A block runs from its
// opening tag to whichever comes first: an explicit closing tag, the next
// opening tag, the end of the transaction list or the end of input. OFX 1.x
// files frequently omit the explicit closing tag.
func (e *extractor) TransactionBlocks(content string) []string {
	opens := openTxnPattern.FindAllStringIndex(content, -1)
	if opens == nil {
		return nil
	}
	blocks := make([]string, 0, len(opens))
	for i, open := range opens {
		end := len(content)
		if i+1 < len(opens) {
			end = opens[i+1][0]
		}
		block := content[open[1]:end]
		if loc := closeTxnPattern.FindStringIndex(block); loc != nil {
			block = block[:loc[0]]
		}
		blocks = append(blocks, block)
	}
	glog.V(3).Infof("found %d transaction blocks", len(blocks))
	return blocks
}

// patternsFor returns the compiled patterns for the given tag, compiling
// and caching them on first use.
func (e *extractor) patternsFor(tag string) tagPatterns {
	key := strings.ToUpper(tag)

	e.mu.RLock()
	p, ok := e.patterns[key]
	e.mu.RUnlock()
	if ok {
		return p
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if p, ok = e.patterns[key]; ok {
		return p
	}
	quoted := regexp.QuoteMeta(key)
	p = tagPatterns{
		xml:  regexp.MustCompile(`(?is)<` + quoted + `>(.*?)</` + quoted + `>`),
		sgml: regexp.MustCompile(`(?i)<` + quoted + `>([^<\r\n]*)`),
	}
	e.patterns[key] = p
	return p
}
