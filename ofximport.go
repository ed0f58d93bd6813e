package ofximport

import (
	"io"

	"github.com/golang/glog"
	"github.com/shopspring/decimal"
)

//revive:disable:exported

// TransactionType is a transaction type as per the OFX Spec 2.2 Section 11.4.4.3
// https://www.ofx.net/downloads/OFX%202.2.pdf
type TransactionType string

const (
	// Common Transaction Types
	DEBIT  TransactionType = "DEBIT"
	CREDIT TransactionType = "CREDIT"
	// Uncommon Transaction Types
	INTEREST      TransactionType = "INT"
	DIVIDEND      TransactionType = "DIV"
	FEE           TransactionType = "FEE"
	SERVICECHARGE TransactionType = "SRVCHG"
	DEPOSIT       TransactionType = "DEP"
	ATM           TransactionType = "ATM"
	POS           TransactionType = "POS"
	TRANSFER      TransactionType = "XFER"
	CHECK         TransactionType = "CHECK"
	PAYMENT       TransactionType = "PAYMENT"
	CASH          TransactionType = "CASH"
	DIRECTDEPOSIT TransactionType = "DIRECTDEP"
	DIRECTDEBIT   TransactionType = "DIRECTDEBIT"
	REPEATPAYMENT TransactionType = "REPEATPMT"
	OTHER         TransactionType = "OTHER"
)

// Transaction is a single statement transaction as found in a STMTTRN block.
// Posted is normalized to YYYY-MM-DD. A Transaction is retained in a
// Statement only when both ID and Posted are non-empty.
type Transaction struct {
	ID       string          `json:"fitid"`
	Posted   string          `json:"dtposted"`
	Amount   decimal.Decimal `json:"trnamt"`
	Type     TransactionType `json:"trntype,omitempty"`
	Name     string          `json:"name,omitempty"`
	Memo     string          `json:"memo,omitempty"`
	CheckNum string          `json:"checknum,omitempty"`
}

// Statement is a parsed OFX/QFX statement.
// This does not implement the complete rfc spec, only the fields needed for
// bank statement import.
type Statement struct {
	BankID           string              `json:"bankId,omitempty"`
	BranchID         string              `json:"branchId,omitempty"`
	AccountID        string              `json:"accountId,omitempty"`
	AccountType      string              `json:"accountType,omitempty"`
	Currency         string              `json:"currency,omitempty"`
	Start            string              `json:"statementStart"`
	End              string              `json:"statementEnd"`
	LedgerBalance    decimal.NullDecimal `json:"ledgerBalance,omitempty"`
	AvailableBalance decimal.NullDecimal `json:"availableBalance,omitempty"`
	Transactions     []Transaction       `json:"transactions"`
}

// Parse reads a complete OFX/QFX file from the given reader and parses it
// into a Statement using the given extractor. The returned error is only
// ever a read failure - malformed content parses to an empty Statement.
func Parse(reader io.Reader, e Extractor) (*Statement, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	return ParseString(string(data), e), nil
}

// ParseString parses the given raw OFX/QFX text into a Statement.
// Calling twice on the same input yields identical output.
func ParseString(content string, e Extractor) *Statement {
	content = preprocessContent(content)
	body := statementBody(content)

	s := &Statement{
		BankID:           e.Tag(body, "BANKID"),
		BranchID:         e.Tag(body, "BRANCHID"),
		AccountID:        e.Tag(body, "ACCTID"),
		AccountType:      e.Tag(body, "ACCTTYPE"),
		Currency:         e.Tag(body, "CURDEF"),
		Start:            NormalizeDate(e.Tag(body, "DTSTART")),
		End:              NormalizeDate(e.Tag(body, "DTEND")),
		LedgerBalance:    parseBalance(e.Tag(body, "BALAMT")),
		AvailableBalance: parseBalance(e.Tag(availableBalanceBody(body), "BALAMT")),
		Transactions:     make([]Transaction, 0),
	}

	for i, block := range e.TransactionBlocks(body) {
		t := Transaction{
			ID:       e.Tag(block, "FITID"),
			Posted:   NormalizeDate(e.Tag(block, "DTPOSTED")),
			Amount:   parseAmount(e.Tag(block, "TRNAMT")),
			Type:     TransactionType(e.Tag(block, "TRNTYPE")),
			Name:     e.Tag(block, "NAME"),
			Memo:     e.Tag(block, "MEMO"),
			CheckNum: e.Tag(block, "CHECKNUM"),
		}
		// Partial success policy - records missing a natural key or a
		// usable posting date are dropped, not fatal.
		if t.ID == "" || t.Posted == "" {
			glog.V(2).Infof("dropping block %d: fitid=%q posted=%q", i, t.ID, t.Posted)
			continue
		}
		s.Transactions = append(s.Transactions, t)
	}
	glog.V(2).Infof("parsed statement: account=%s currency=%s txns=%d",
		s.AccountID, s.Currency, len(s.Transactions))
	return s
}

// parseAmount parses an OFX amount string, defaulting to zero when the
// value is missing or unparseable.
func parseAmount(v string) decimal.Decimal {
	d, err := decimal.NewFromString(v)
	if err != nil {
		if v != "" {
			glog.V(3).Infof("unparseable amount %q, defaulting to 0", v)
		}
		return decimal.Zero
	}
	return d
}

// parseBalance parses an optional balance amount. Absent or unparseable
// values yield an invalid NullDecimal rather than zero, so a missing
// balance is distinguishable from a zero balance.
func parseBalance(v string) decimal.NullDecimal {
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}
}
