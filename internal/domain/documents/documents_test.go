package documents

import (
	"testing"
	"time"

	"alu_portal/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func sampleOrder() entities.Order {
	return entities.Order{
		ID:           "ord-1",
		RefNumber:    "PO-123456",
		CustomerName: "ABC Construction Co., Ltd.",
		TotalPrice:   dec("107"),
		Status:       entities.OrderStatusPending,
		CreatedAt:    time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC),
		Items: []entities.OrderItem{
			{ProductName: "Flat Bar 40x5", SKU: "FB-405", Quantity: 2, CustomLengthMM: 6000, Price: dec("60")},
			{ProductName: "Angle 25x25", SKU: "AN-2525", Quantity: 1, CustomLengthMM: 2500, Price: dec("47")},
		},
	}
}

func TestReceipt_BacksVATOutOfTotal(t *testing.T) {
	doc := Receipt(sampleOrder())

	require.NotNil(t, doc.Totals)
	assert.Equal(t, "100.00", doc.Totals.Subtotal.StringFixed(2))
	assert.Equal(t, "7.00", doc.Totals.VAT.StringFixed(2))
	assert.True(t, doc.Totals.GrandTotal.Equal(dec("107")))
	assert.Equal(t, "Receipt-PO-123456", doc.Filename)
	assert.Equal(t, "RECEIPT / TAX INVOICE", doc.Title)
	assert.Equal(t, []string{"#", "Description", "Qty", "Unit Price", "Amount"}, doc.Columns)

	require.Len(t, doc.Rows, 2)
	assert.Equal(t, []string{"1", "Flat Bar 40x5", "2", "30.00", "60.00"}, doc.Rows[0])
	assert.Equal(t, []string{"2", "Angle 25x25 (Cut 2500mm)", "1", "47.00", "47.00"}, doc.Rows[1])

	footer := doc.Footer()
	assert.Equal(t, Field{Label: "VAT 7%", Value: "7.00"}, footer[1])
}

func TestQuotation_AddsVATOnTopOfSubtotal(t *testing.T) {
	items := []entities.CartLineItem{
		{ProductID: "p1", SKU: "FB-405", Name: "Flat Bar 40x5", Grade: "6063-T5", Quantity: 4, CustomLengthMM: 3000, Price: dec("80"), IsCustom: true},
		{ProductID: "p2", SKU: "AN-2525", Name: "Angle 25x25", Grade: "6061-T6", Quantity: 1, CustomLengthMM: 6000, Price: dec("20")},
	}
	doc := Quotation(items, QuotationOptions{CustomerName: "ABC Construction Co., Ltd.", Date: time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)})

	require.NotNil(t, doc.Totals)
	assert.Equal(t, "100.00", doc.Totals.Subtotal.StringFixed(2))
	assert.Equal(t, "7.00", doc.Totals.VAT.StringFixed(2))
	assert.Equal(t, "107.00", doc.Totals.GrandTotal.StringFixed(2))
	assert.Equal(t, QuotationFilename, doc.Filename)
	assert.Equal(t, []string{"#", "Description", "Length", "Qty", "Unit Price", "Total"}, doc.Columns)
	assert.Equal(t, []string{"1", "Flat Bar 40x5\nSKU: FB-405 (6063-T5)", "3000mm", "4", "20.00", "80.00"}, doc.Rows[0])
	assert.Equal(t, "6.00m", doc.Rows[1][2])
	assert.Equal(t, Field{Label: "No", Value: "QT-2026-0001"}, doc.Header[0])
}

func TestQuotationAndReceipt_CrossCheck(t *testing.T) {
	q := Quotation([]entities.CartLineItem{{Name: "x", Quantity: 1, CustomLengthMM: 6000, Price: dec("100")}}, QuotationOptions{})
	r := Receipt(entities.Order{TotalPrice: dec("107")})

	assert.Equal(t, q.Totals.VAT.StringFixed(2), r.Totals.VAT.StringFixed(2))
	assert.Equal(t, q.Totals.Subtotal.StringFixed(2), r.Totals.Subtotal.StringFixed(2))
	assert.Equal(t, q.Totals.GrandTotal.StringFixed(2), r.Totals.GrandTotal.StringFixed(2))
}

func TestDeliveryNote_HasNoPrices(t *testing.T) {
	doc := DeliveryNote(sampleOrder(), "Site 1, Bang Pu Industrial Estate")

	assert.Nil(t, doc.Totals)
	assert.Nil(t, doc.Footer())
	assert.Equal(t, "Delivery-PO-123456", doc.Filename)
	assert.Equal(t, []string{"#", "SKU", "Description", "Length", "Qty", "Check"}, doc.Columns)
	assert.Equal(t, []string{"1", "FB-405", "Flat Bar 40x5", "6.00m", "2", DeliveryCheckCell}, doc.Rows[0])
	assert.Equal(t, []string{"2", "AN-2525", "Angle 25x25", "2500mm", "1", DeliveryCheckCell}, doc.Rows[1])
	assert.Equal(t, Field{Label: "Ship To", Value: "Site 1, Bang Pu Industrial Estate"}, doc.Header[3])
	assert.Len(t, doc.Signatures, 2)
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "1,100.00", FormatAmount(dec("1100")))
	assert.Equal(t, "0.50", FormatAmount(dec("0.5")))
	assert.Equal(t, "1,234,567.89", FormatAmount(dec("1234567.891")))
}
