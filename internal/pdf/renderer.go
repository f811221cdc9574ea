// Package pdf renders a reviewed extraction payload into a printable
// summary document.
package pdf

import (
	"bytes"
	"time"

	"github.com/go-pdf/fpdf"

	apperrors "github.com/wasteexperts/pdf-extractor/internal/errors"
	"github.com/wasteexperts/pdf-extractor/internal/extract"
)

const (
	pageMargin  = 18.0
	labelHeight = 5.0
	valueHeight = 5.5
	fieldGap    = 2.5
)

// Brand palette from the quote stationery.
var (
	navy      = rgb{30, 46, 61}
	green     = rgb{142, 196, 49}
	labelGrey = rgb{113, 128, 150}
	textGrey  = rgb{45, 55, 72}
)

type rgb struct{ r, g, b int }

// Render lays out each payload field as a label/value pair and returns the
// generated PDF bytes. Layout is deterministic for a given payload; the
// creation date is pinned so identical payloads produce identical bytes.
func Render(p extract.Payload) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetCreationDate(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC))
	doc.SetMargins(pageMargin, pageMargin, pageMargin)
	doc.SetAutoPageBreak(true, pageMargin)
	doc.SetTitle("Purchase Order Review", false)
	doc.AddPage()

	tr := doc.UnicodeTranslatorFromDescriptor("")

	doc.SetTextColor(navy.r, navy.g, navy.b)
	doc.SetFont("Helvetica", "B", 18)
	doc.CellFormat(0, 10, "Purchase Order Review", "", 1, "L", false, 0, "")

	doc.SetDrawColor(green.r, green.g, green.b)
	doc.SetLineWidth(0.8)
	y := doc.GetY() + 1
	doc.Line(pageMargin, y, 210-pageMargin, y)
	doc.Ln(6)

	for _, f := range p.Fields() {
		doc.SetFont("Helvetica", "B", 9)
		doc.SetTextColor(labelGrey.r, labelGrey.g, labelGrey.b)
		doc.CellFormat(0, labelHeight, tr(f.Label), "", 1, "L", false, 0, "")

		doc.SetFont("Helvetica", "", 11)
		doc.SetTextColor(textGrey.r, textGrey.g, textGrey.b)
		doc.MultiCell(0, valueHeight, tr(f.Value), "", "L", false)
		doc.Ln(fieldGap)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrRenderFailed.Code, apperrors.ErrRenderFailed.Message)
	}

	return buf.Bytes(), nil
}
