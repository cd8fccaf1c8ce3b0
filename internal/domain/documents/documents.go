// Package documents projects priced line items into quotation, receipt and
// delivery note documents. Documents are never persisted; they can be
// regenerated from a cart or an order at any time.
//
// Quotations treat the cart total as VAT-exclusive and add VAT on top.
// Receipts treat the order total as VAT-inclusive and back VAT out of it.
// The two conventions are intentionally kept separate.
package documents

import (
	"fmt"
	"strconv"
	"time"

	"alu_portal/internal/domain/entities"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Kind string

const (
	KindQuotation    Kind = "quotation"
	KindReceipt      Kind = "receipt"
	KindDeliveryNote Kind = "delivery_note"
)

const (
	QuotationFilename  = "Quotation-ALU-TECH"
	QuotationValidDays = 30
	DeliveryCheckCell  = "[   ] Checked"
	dateLayout         = "2006-01-02"
)

var (
	VATRate    = decimal.RequireFromString("0.07")
	vatDivisor = decimal.NewFromInt(1).Add(VATRate)
)

type Company struct {
	Name    string `json:"name"`
	TaxID   string `json:"tax_id"`
	Address string `json:"address"`
}

var DefaultCompany = Company{
	Name:    "ALU-TECH DISTRIBUTION CO., LTD.",
	TaxID:   "0115555000222",
	Address: "123 Industrial Estate, Bangkok 10000",
}

type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type Totals struct {
	Subtotal   decimal.Decimal `json:"subtotal"`
	VAT        decimal.Decimal `json:"vat"`
	GrandTotal decimal.Decimal `json:"grand_total"`
}

// Document is the layout-independent content of a generated file.
type Document struct {
	Kind       Kind       `json:"kind"`
	Title      string     `json:"title"`
	Filename   string     `json:"filename"`
	Company    Company    `json:"company"`
	Header     []Field    `json:"header"`
	Columns    []string   `json:"columns"`
	Rows       [][]string `json:"rows"`
	Totals     *Totals    `json:"totals,omitempty"`
	Signatures []string   `json:"signatures,omitempty"`
}

// Footer returns the formatted footer lines, empty for delivery notes.
func (d Document) Footer() []Field {
	if d.Totals == nil {
		return nil
	}
	return []Field{
		{Label: "Subtotal", Value: FormatAmount(d.Totals.Subtotal)},
		{Label: "VAT 7%", Value: FormatAmount(d.Totals.VAT)},
		{Label: "Grand Total", Value: FormatAmount(d.Totals.GrandTotal)},
	}
}

type QuotationOptions struct {
	Number       string
	CustomerName string
	Date         time.Time
	Company      Company
}

// Quotation renders a live cart. VAT is added on top of the subtotal.
func Quotation(items []entities.CartLineItem, opts QuotationOptions) Document {
	if opts.Date.IsZero() {
		opts.Date = time.Now()
	}
	if opts.Number == "" {
		opts.Number = fmt.Sprintf("QT-%d-0001", opts.Date.Year())
	}
	if opts.Company.Name == "" {
		opts.Company = DefaultCompany
	}

	rows := make([][]string, 0, len(items))
	subtotal := decimal.Zero
	for i, it := range items {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			fmt.Sprintf("%s\nSKU: %s (%s)", it.Name, it.SKU, it.Grade),
			FormatLength(it.CustomLengthMM),
			strconv.Itoa(it.Quantity),
			FormatAmount(unitPrice(it.Price, it.Quantity)),
			FormatAmount(it.Price),
		})
		subtotal = subtotal.Add(it.Price)
	}
	vat := subtotal.Mul(VATRate)

	return Document{
		Kind:     KindQuotation,
		Title:    "QUOTATION",
		Filename: QuotationFilename,
		Company:  opts.Company,
		Header: []Field{
			{Label: "No", Value: opts.Number},
			{Label: "Date", Value: opts.Date.Format(dateLayout)},
			{Label: "Valid Until", Value: fmt.Sprintf("%d Days", QuotationValidDays)},
			{Label: "Bill To", Value: opts.CustomerName},
		},
		Columns: []string{"#", "Description", "Length", "Qty", "Unit Price", "Total"},
		Rows:    rows,
		Totals:  &Totals{Subtotal: subtotal, VAT: vat, GrandTotal: subtotal.Add(vat)},
	}
}

// Receipt renders a persisted order. The order total already includes VAT.
func Receipt(o entities.Order) Document {
	rows := make([][]string, 0, len(o.Items))
	for i, it := range o.Items {
		desc := it.ProductName
		if it.IsCustom() {
			desc = fmt.Sprintf("%s (Cut %dmm)", it.ProductName, it.CustomLengthMM)
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			desc,
			strconv.Itoa(it.Quantity),
			FormatAmount(unitPrice(it.Price, it.Quantity)),
			FormatAmount(it.Price),
		})
	}
	subtotal := o.TotalPrice.Div(vatDivisor)

	return Document{
		Kind:     KindReceipt,
		Title:    "RECEIPT / TAX INVOICE",
		Filename: "Receipt-" + o.RefNumber,
		Company:  DefaultCompany,
		Header: []Field{
			{Label: "Ref No", Value: o.RefNumber},
			{Label: "Date", Value: o.CreatedAt.Format(dateLayout)},
			{Label: "Customer", Value: o.CustomerName},
		},
		Columns: []string{"#", "Description", "Qty", "Unit Price", "Amount"},
		Rows:    rows,
		Totals:  &Totals{Subtotal: subtotal, VAT: o.TotalPrice.Sub(subtotal), GrandTotal: o.TotalPrice},
	}
}

// DeliveryNote renders an order for the warehouse. It carries no prices.
func DeliveryNote(o entities.Order, shipTo string) Document {
	rows := make([][]string, 0, len(o.Items))
	for i, it := range o.Items {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			it.SKU,
			it.ProductName,
			FormatLength(it.CustomLengthMM),
			strconv.Itoa(it.Quantity),
			DeliveryCheckCell,
		})
	}

	return Document{
		Kind:     KindDeliveryNote,
		Title:    "DELIVERY NOTE",
		Filename: "Delivery-" + o.RefNumber,
		Company:  DefaultCompany,
		Header: []Field{
			{Label: "Order Ref", Value: o.RefNumber},
			{Label: "Date", Value: o.CreatedAt.Format(dateLayout)},
			{Label: "Customer", Value: o.CustomerName},
			{Label: "Ship To", Value: shipTo},
		},
		Columns:    []string{"#", "SKU", "Description", "Length", "Qty", "Check"},
		Rows:       rows,
		Signatures: []string{"Driver Signature", "Receiver Signature"},
	}
}

// FormatLength prints standard bars in meters and cuts in millimeters.
func FormatLength(mm int) string {
	if mm == entities.StandardLengthMM {
		return "6.00m"
	}
	return fmt.Sprintf("%dmm", mm)
}

var printer = message.NewPrinter(language.English)

// FormatAmount prints a money value with two decimals and thousands separators.
func FormatAmount(v decimal.Decimal) string {
	return printer.Sprintf("%.2f", v.Round(2).InexactFloat64())
}

func unitPrice(lineTotal decimal.Decimal, qty int) decimal.Decimal {
	if qty <= 0 {
		return decimal.Zero
	}
	return lineTotal.Div(decimal.NewFromInt(int64(qty)))
}
