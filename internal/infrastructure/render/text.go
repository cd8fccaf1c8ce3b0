// Package render lays documents out for download.
package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"alu_portal/internal/domain/documents"
)

const (
	ContentTypeText = "text/plain; charset=utf-8"
	signatureLine   = "______________________"
)

// TextFilename is the attachment name of a document rendered as text.
func TextFilename(d documents.Document) string {
	return d.Filename + ".txt"
}

// Text writes a fixed-width rendition of d. Multi-line cells continue on
// the following lines under the same column.
func Text(w io.Writer, d documents.Document) error {
	var b bytes.Buffer

	fmt.Fprintln(&b, d.Company.Name)
	fmt.Fprintf(&b, "Tax ID: %s\n", d.Company.TaxID)
	fmt.Fprintln(&b, d.Company.Address)
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, d.Title)

	tw := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	for _, f := range d.Header {
		fmt.Fprintf(tw, "%s:\t%s\n", cell(f.Label), cell(f.Value))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(&b)

	tw = tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, joinCells(d.Columns))
	for _, row := range d.Rows {
		for _, line := range expandRow(row) {
			fmt.Fprintln(tw, joinCells(line))
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if footer := d.Footer(); len(footer) > 0 {
		fmt.Fprintln(&b)
		tw = tabwriter.NewWriter(&b, 0, 4, 2, ' ', tabwriter.AlignRight)
		for _, f := range footer {
			fmt.Fprintf(tw, "%s:\t%s\t\n", cell(f.Label), cell(f.Value))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	if len(d.Signatures) > 0 {
		fmt.Fprintln(&b)
		for _, s := range d.Signatures {
			fmt.Fprintf(&b, "%s: %s\n", s, signatureLine)
		}
	}

	_, err := w.Write(b.Bytes())
	return err
}

func expandRow(row []string) [][]string {
	cells := make([][]string, len(row))
	height := 1
	for i, c := range row {
		cells[i] = strings.Split(c, "\n")
		if len(cells[i]) > height {
			height = len(cells[i])
		}
	}
	out := make([][]string, height)
	for h := range out {
		out[h] = make([]string, len(row))
		for i := range row {
			if h < len(cells[i]) {
				out[h][i] = cells[i][h]
			}
		}
	}
	return out
}

var cellReplacer = strings.NewReplacer("\t", " ", "\v", " ", "\f", " ")

// cell replaces the characters tabwriter would read as a cell or line end.
func cell(s string) string {
	return cellReplacer.Replace(s)
}

func joinCells(cells []string) string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = cell(c)
	}
	return strings.Join(out, "\t")
}
