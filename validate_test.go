package ofximport_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/rockstardevs/ofximport"
)

var _ = Describe("ofximport", func() {
	Describe("Validate()", func() {
		Context("when the statement has no transactions", func() {
			It("should be invalid with an error", func() {
				r := ofximport.Validate(&ofximport.Statement{})
				Expect(r.Valid).To(BeFalse())
				Expect(r.Errors).NotTo(BeEmpty())
			})
		})
		Context("when the statement has transactions", func() {
			It("should be valid", func() {
				s := &ofximport.Statement{
					AccountID:    "987654321",
					Currency:     "USD",
					Transactions: []ofximport.Transaction{txn("1", "2024-01-15", "-1.00")},
				}
				r := ofximport.Validate(s)
				Expect(r.Valid).To(BeTrue())
				Expect(r.Errors).To(BeEmpty())
				Expect(r.Warnings).To(BeEmpty())
			})
			It("should warn on a missing account identifier", func() {
				s := &ofximport.Statement{
					Currency:     "USD",
					Transactions: []ofximport.Transaction{txn("1", "2024-01-15", "-1.00")},
				}
				r := ofximport.Validate(s)
				Expect(r.Valid).To(BeTrue())
				Expect(r.Warnings).To(ContainElement("account identifier is missing"))
			})
			It("should warn on a missing currency code", func() {
				s := &ofximport.Statement{
					AccountID:    "987654321",
					Transactions: []ofximport.Transaction{txn("1", "2024-01-15", "-1.00")},
				}
				r := ofximport.Validate(s)
				Expect(r.Valid).To(BeTrue())
				Expect(r.Warnings).To(ContainElement("currency code is missing"))
			})
			It("should count transactions with missing posting dates", func() {
				s := &ofximport.Statement{
					AccountID: "987654321",
					Currency:  "USD",
					Transactions: []ofximport.Transaction{
						txn("1", "", "-1.00"),
						txn("2", "2024-01-16", "-2.00"),
						txn("3", "", "-3.00"),
					},
				}
				r := ofximport.Validate(s)
				Expect(r.Valid).To(BeTrue())
				Expect(r.Warnings).To(ContainElement("2 transaction(s) have missing or invalid posting dates"))
			})
		})
	})
})
