package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"alu_portal/internal/domain/documents"
	"alu_portal/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText_Quotation(t *testing.T) {
	items := []entities.CartLineItem{{
		ProductID:      "p-1",
		SKU:            "AL-6063-50",
		Name:           "Square Tube 50x50",
		Grade:          "6063-T5",
		Quantity:       2,
		CustomLengthMM: 3000,
		Price:          decimal.RequireFromString("1375"),
		IsCustom:       true,
	}}
	doc := documents.Quotation(items, documents.QuotationOptions{
		CustomerName: "ABC Construction Co., Ltd.",
		Date:         time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC),
	})

	var buf bytes.Buffer
	require.NoError(t, Text(&buf, doc))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "ALU-TECH DISTRIBUTION CO., LTD.\n"))
	assert.Contains(t, out, "QUOTATION")
	assert.Contains(t, out, "QT-2025-0001")
	assert.Contains(t, out, "Square Tube 50x50")
	assert.Contains(t, out, "SKU: AL-6063-50 (6063-T5)")
	assert.Contains(t, out, "3000mm")
	assert.Contains(t, out, "1,471.25")
	assert.NotContains(t, out, "Driver Signature")
	assert.Equal(t, "Quotation-ALU-TECH.txt", TextFilename(doc))
}

func TestText_DeliveryNote(t *testing.T) {
	o := entities.Order{
		RefNumber:    "PO-000042",
		CustomerName: "ABC Construction Co., Ltd.",
		TotalPrice:   decimal.RequireFromString("650"),
		Items: []entities.OrderItem{{
			LineNo: 1, SKU: "AL-1", ProductName: "Flat Bar", Quantity: 1,
			CustomLengthMM: 6000, Price: decimal.RequireFromString("650"),
		}},
	}

	var buf bytes.Buffer
	require.NoError(t, Text(&buf, documents.DeliveryNote(o, "Site 1, Bang Pu Industrial Estate")))
	out := buf.String()

	assert.Contains(t, out, "DELIVERY NOTE")
	assert.Contains(t, out, "6.00m")
	assert.Contains(t, out, documents.DeliveryCheckCell)
	assert.Contains(t, out, "Receiver Signature: ")
	assert.NotContains(t, out, "650")
	assert.NotContains(t, out, "Grand Total")
}

func TestExpandRow(t *testing.T) {
	got := expandRow([]string{"1", "Tube\nSKU: X", "2"})
	assert.Equal(t, [][]string{{"1", "Tube", "2"}, {"", "SKU: X", ""}}, got)
}

func TestText_TabsInValuesKeepColumnsAligned(t *testing.T) {
	doc := documents.Document{
		Title: "RECEIPT",
		Header: []documents.Field{
			{Label: "Customer", Value: "ABC\tCo"},
			{Label: "Date", Value: "20/05/2025"},
		},
		Columns: []string{"No", "Item", "Qty"},
		Rows: [][]string{
			{"1", "Flat\tBar", "5"},
			{"2", "Tube", "10"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Text(&buf, doc))
	out := buf.String()
	assert.NotContains(t, out, "\t")

	line := func(prefix string) string {
		for _, l := range strings.Split(out, "\n") {
			if strings.HasPrefix(l, prefix) {
				return l
			}
		}
		t.Fatalf("no line starting with %q in:\n%s", prefix, out)
		return ""
	}

	assert.Equal(t, strings.Index(line("Date:"), "20/05/2025"), strings.Index(line("Customer:"), "ABC Co"))
	header := line("No")
	assert.Equal(t, strings.Index(header, "Qty"), strings.LastIndex(line("1 "), "5"))
	assert.Equal(t, strings.Index(header, "Qty"), strings.LastIndex(line("2 "), "10"))
	assert.Contains(t, line("1 "), "Flat Bar")
}
