package ofximport

import (
	"strings"
	"sync"
)

var (
	accountTypeLabels map[string]string
	initAccountLabels sync.Once

	transactionTypeLabels map[string]string
	initTransactionLabels sync.Once
)

// IsOFXContent reports whether the given text looks like an OFX/QFX file,
// by checking for the OFX body marker or the OFX 1.x header prologue.
func IsOFXContent(content string) bool {
	upper := strings.ToUpper(content)
	return strings.Contains(upper, "<OFX>") || strings.Contains(upper, "OFXHEADER:")
}

// GetAccountTypeLabels returns the singleton account type label map.
func GetAccountTypeLabels() map[string]string {
	initAccountLabels.Do(func() {
		accountTypeLabels = map[string]string{
			"CHECKING":   "Checking",
			"SAVINGS":    "Savings",
			"MONEYMRKT":  "Money Market",
			"CREDITLINE": "Line of Credit",
			"CD":         "Certificate of Deposit",
			"CREDITCARD": "Credit Card",
		}
	})
	return accountTypeLabels
}

// GetTransactionTypeLabels returns the singleton transaction type label map,
// covering the types in OFX Spec 2.2 Section 11.4.4.3.
func GetTransactionTypeLabels() map[string]string {
	initTransactionLabels.Do(func() {
		transactionTypeLabels = map[string]string{
			string(DEBIT):         "Debit",
			string(CREDIT):        "Credit",
			string(INTEREST):      "Interest",
			string(DIVIDEND):      "Dividend",
			string(FEE):           "Fee",
			string(SERVICECHARGE): "Service Charge",
			string(DEPOSIT):       "Deposit",
			string(ATM):           "ATM",
			string(POS):           "Point of Sale",
			string(TRANSFER):      "Transfer",
			string(CHECK):         "Check",
			string(PAYMENT):       "Payment",
			string(CASH):          "Cash",
			string(DIRECTDEPOSIT): "Direct Deposit",
			string(DIRECTDEBIT):   "Direct Debit",
			string(REPEATPAYMENT): "Recurring Payment",
			string(OTHER):         "Other",
		}
	})
	return transactionTypeLabels
}

// AccountTypeLabel returns the display label for an OFX account type code,
// falling back to the uppercased raw code.
func AccountTypeLabel(code string) string {
	if label, ok := GetAccountTypeLabels()[strings.ToUpper(code)]; ok {
		return label
	}
	return strings.ToUpper(code)
}

// TransactionTypeLabel returns the display label for an OFX transaction
// type code, falling back to the uppercased raw code.
func TransactionTypeLabel(code string) string {
	if label, ok := GetTransactionTypeLabels()[strings.ToUpper(code)]; ok {
		return label
	}
	return strings.ToUpper(code)
}
