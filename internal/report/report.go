// Package report renders a finished playthrough as a printable PDF
// transcript: the ending, the report card, side quest achievements and
// every answer given.
package report

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"campuslife/internal/content"
	"campuslife/internal/game"

	"github.com/jung-kurt/gofpdf/v2"
)

const (
	pageW     = 595
	margin    = 40
	lineH     = 14
	barW      = 200.0
	barH      = 8.0
	fontSize  = 10
	titleSize = 18
	h2Size    = 13
)

// ErrNotFinished is returned for a snapshot that is not on the result
// screen.
var ErrNotFinished = errors.New("report: playthrough is not finished")

// Generate returns PDF bytes for the result snapshot.
func Generate(snap *game.Snapshot, cfg content.Config, title string) ([]byte, error) {
	if snap == nil || snap.Screen != game.ScreenResult || snap.Ending == nil || snap.Summary == nil {
		return nil, ErrNotFinished
	}

	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetTextColor(31, 41, 55)
	pdf.SetFont("Helvetica", "B", titleSize)
	if title == "" {
		title = "Campus Life"
	}
	pdf.CellFormat(0, 24, tr(title), "", 1, "L", false, 0, "")
	if snap.Character != nil {
		pdf.SetFont("Helvetica", "", fontSize)
		pdf.SetTextColor(75, 85, 99)
		pdf.CellFormat(0, lineH, tr(snap.Character.Name), "", 1, "L", false, 0, "")
	}
	pdf.Ln(8)

	heading(pdf, tr, snap.Ending.Ending.Title)
	pdf.SetFont("Helvetica", "", fontSize)
	pdf.MultiCell(0, lineH, tr(snap.Ending.Ending.Description), "", "L", false)
	pdf.Ln(10)

	heading(pdf, tr, "Report card")
	for _, a := range snap.Summary.Attributes {
		drawAttribute(pdf, tr, a, cfg.Attributes[a.Attribute].Color)
	}
	pdf.SetFont("Helvetica", "I", fontSize)
	pdf.CellFormat(0, lineH, "Relationship: "+relationshipLabel(snap.Summary.Relationship), "", 1, "L", false, 0, "")
	pdf.Ln(10)

	heading(pdf, tr, "Achievements")
	for _, a := range snap.Summary.Achievements {
		pdf.SetFont("Helvetica", "B", fontSize)
		pdf.CellFormat(0, lineH, tr(a.Title+": "+a.Status), "", 1, "L", false, 0, "")
		if a.Desc != "" {
			pdf.SetFont("Helvetica", "", fontSize)
			pdf.MultiCell(0, lineH, tr(a.Desc), "", "L", false)
		}
	}
	pdf.Ln(10)

	heading(pdf, tr, "Transcript")
	for i, h := range snap.History {
		pdf.SetFont("Helvetica", "B", fontSize)
		pdf.MultiCell(0, lineH, tr(fmt.Sprintf("%d. %s", i+1, h.Question)), "", "L", false)
		pdf.SetFont("Helvetica", "", fontSize)
		pdf.MultiCell(0, lineH, tr("> "+h.Choice), "", "L", false)
		if h.Result != "" {
			pdf.SetTextColor(107, 114, 128)
			pdf.MultiCell(0, lineH, tr(h.Result), "", "L", false)
			pdf.SetTextColor(31, 41, 55)
		}
		pdf.Ln(4)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func heading(pdf *gofpdf.Fpdf, tr func(string) string, text string) {
	pdf.SetFont("Helvetica", "B", h2Size)
	pdf.SetTextColor(102, 126, 234)
	pdf.CellFormat(0, 18, tr(text), "", 1, "L", false, 0, "")
	pdf.SetTextColor(31, 41, 55)
}

// drawAttribute draws one report card row: name, grade, and a bar with
// the starting value shaded behind the final one.
func drawAttribute(pdf *gofpdf.Fpdf, tr func(string) string, a game.AttributeReport, color string) {
	r, g, b := hexRGB(color)
	x, y := pdf.GetXY()

	pdf.SetFont("Helvetica", "", fontSize)
	pdf.CellFormat(110, lineH, tr(a.Name), "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", fontSize)
	pdf.CellFormat(30, lineH, string(a.Grade), "", 0, "C", false, 0, "")

	bx, by := x+150, y+(lineH-barH)/2
	pdf.SetFillColor(229, 231, 235)
	pdf.Rect(bx, by, barW, barH, "F")
	pdf.SetFillColor(lighten(r), lighten(g), lighten(b))
	pdf.Rect(bx, by, barW*clampPercent(a.InitialPercent)/100, barH, "F")
	pdf.SetFillColor(r, g, b)
	pdf.Rect(bx, by, barW*clampPercent(a.Percent)/100, barH, "F")

	pdf.SetFont("Helvetica", "", fontSize)
	pdf.SetXY(bx+barW+10, y)
	label := fmt.Sprintf("%s -> %s", formatValue(a.Initial), formatValue(a.Final))
	pdf.CellFormat(pageW-margin-(bx+barW+10), lineH, label, "", 1, "L", false, 0, "")
}

func relationshipLabel(r game.RelationshipState) string {
	switch r {
	case game.RelationshipCaughtCheating:
		return "caught cheating"
	case game.RelationshipLoyal:
		return "loyal to the end"
	case game.RelationshipAttached:
		return "in a relationship"
	}
	return "single"
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func clampPercent(p float64) float64 {
	if p < 0 {
		return 0
	}
	return p
}

func lighten(c int) int {
	return c + (255-c)*3/4
}

// hexRGB parses "#rrggbb". Anything else falls back to the theme accent.
func hexRGB(s string) (int, int, int) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return 102, 126, 234
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 102, 126, 234
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)
}
