package ofximport

import "fmt"

// ValidationResult is the verdict on a parsed statement. Valid is true iff
// Errors is empty; Warnings flag degraded but usable parses.
type ValidationResult struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// Validate classifies parse quality for a Statement. Zero extracted
// transactions is the only hard error - everything else is advisory and
// should not block an import.
func Validate(s *Statement) ValidationResult {
	r := ValidationResult{
		Errors:   make([]string, 0),
		Warnings: make([]string, 0),
	}
	if len(s.Transactions) == 0 {
		r.Errors = append(r.Errors, "no transactions found in file")
	}
	if s.AccountID == "" {
		r.Warnings = append(r.Warnings, "account identifier is missing")
	}
	if s.Currency == "" {
		r.Warnings = append(r.Warnings, "currency code is missing")
	}
	undated := 0
	for _, t := range s.Transactions {
		if t.Posted == "" {
			undated++
		}
	}
	if undated > 0 {
		r.Warnings = append(r.Warnings, fmt.Sprintf("%d transaction(s) have missing or invalid posting dates", undated))
	}
	r.Valid = len(r.Errors) == 0
	return r
}
