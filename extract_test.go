package ofximport_test

import (
	"reflect"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/rockstardevs/ofximport"
)

var _ = Describe("ofximport", func() {
	Describe("GetExtractor()", func() {
		It("should return the singleton instance.", func() {
			i1 := ofximport.GetExtractor()
			i2 := ofximport.GetExtractor()
			Expect(i1).NotTo(BeNil())
			Expect(reflect.ValueOf(i1).Pointer()).To(Equal(reflect.ValueOf(i2).Pointer()))
		})
	})
	Describe("Tag()", func() {
		Context("when the tag is present", func() {
			DescribeTable("should extract the value in either syntax", func(content, tag, expected string) {
				Expect(ofximport.GetExtractor().Tag(content, tag)).To(Equal(expected))
			},
				Entry("XML style", "<FITID>123</FITID>", "FITID", "123"),
				Entry("SGML style terminated by newline", "<FITID>123\n<NAME>x", "FITID", "123"),
				Entry("SGML style terminated by next tag", "<FITID>123<NAME>x", "FITID", "123"),
				Entry("SGML style terminated by carriage return", "<FITID>123\r\n", "FITID", "123"),
				Entry("SGML style at end of input", "<FITID>123", "FITID", "123"),
				Entry("value with surrounding whitespace", "<NAME>  Coffee Shop  </NAME>", "NAME", "Coffee Shop"),
				Entry("lowercase tag in content", "<fitid>123</fitid>", "FITID", "123"),
				Entry("lowercase tag argument", "<FITID>123</FITID>", "fitid", "123"),
				Entry("mixed case value preserved", "<NAME>Coffee Shop</NAME>", "NAME", "Coffee Shop"),
				Entry("first of several siblings", "<FITID>1</FITID><FITID>2</FITID>", "FITID", "1"),
			)
		})
		Context("when the tag is absent", func() {
			It("should return an empty string", func() {
				Expect(ofximport.GetExtractor().Tag("<NAME>Coffee Shop", "FITID")).To(Equal(""))
			})
			It("should not fail on malformed input", func() {
				Expect(ofximport.GetExtractor().Tag("><<>>FITID<", "FITID")).To(Equal(""))
			})
		})
	})
	Describe("TransactionBlocks()", func() {
		Context("when no blocks are present", func() {
			It("should return nothing", func() {
				Expect(ofximport.GetExtractor().TransactionBlocks("<OFX></OFX>")).To(BeEmpty())
			})
		})
		Context("when blocks are present", func() {
			DescribeTable("should terminate each block at the nearest boundary", func(content string, expected []string) {
				Expect(ofximport.GetExtractor().TransactionBlocks(content)).To(Equal(expected))
			},
				Entry("explicit closing tags",
					"<STMTTRN><FITID>1</STMTTRN><STMTTRN><FITID>2</STMTTRN>",
					[]string{"<FITID>1", "<FITID>2"}),
				Entry("no closing tags, delimited by the next block",
					"<STMTTRN><FITID>1<STMTTRN><FITID>2",
					[]string{"<FITID>1", "<FITID>2"}),
				Entry("last block closed by the transaction list",
					"<STMTTRN><FITID>1</BANKTRANLIST><LEDGERBAL>",
					[]string{"<FITID>1"}),
				Entry("last block closed by end of input",
					"<STMTTRN><FITID>1",
					[]string{"<FITID>1"}),
			)
		})
	})
})
