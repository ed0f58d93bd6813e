package ofximport

import "github.com/shopspring/decimal"

// EntryType classifies a normalized transaction by the sign of its raw
// amount.
type EntryType string

const (
	Deposit    EntryType = "deposit"
	Withdrawal EntryType = "withdrawal"
)

// NormalizedTransaction is the import contract consumed by the rest of the
// application. Amount carries magnitude only; direction lives in Type.
type NormalizedTransaction struct {
	Date        string          `json:"transaction_date"`
	Amount      decimal.Decimal `json:"amount"`
	Type        EntryType       `json:"transaction_type"`
	Description string          `json:"description"`
	Reference   string          `json:"reference_number"`
}

// Normalize maps a Statement's raw transactions to NormalizedTransactions,
// preserving file order. Zero amount or empty date records are filtered
// out, independent of the parser's own retention rule.
func Normalize(s *Statement) []NormalizedTransaction {
	result := make([]NormalizedTransaction, 0, len(s.Transactions))
	for _, t := range s.Transactions {
		n := NormalizedTransaction{
			Date:        t.Posted,
			Amount:      t.Amount.Abs(),
			Type:        Deposit,
			Description: describe(t),
			Reference:   t.CheckNum,
		}
		if t.Amount.IsNegative() {
			n.Type = Withdrawal
		}
		if n.Reference == "" {
			n.Reference = t.ID
		}
		if !n.Amount.IsPositive() || n.Date == "" {
			continue
		}
		result = append(result, n)
	}
	return result
}

// describe builds a display description from the payee name and memo.
func describe(t Transaction) string {
	switch {
	case t.Name != "" && t.Memo != "":
		return t.Name + " - " + t.Memo
	case t.Name != "":
		return t.Name
	default:
		return t.Memo
	}
}
