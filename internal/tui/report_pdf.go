package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/jadiha/little-prince/internal/derive"
	"github.com/jadiha/little-prince/internal/prince"
	"github.com/jadiha/little-prince/internal/store"
)

// ReportFileName is the default name for a report generated at now.
func ReportFileName(today string, now time.Time) string {
	return fmt.Sprintf("sky_%s_%s.pdf", today, now.Format("150405"))
}

// WriteSkyReport renders the report to path, creating parent directories.
func WriteSkyReport(path string, snap store.Snapshot, cat prince.Catalog) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create report dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	if err := GenerateSkyReport(f, snap, cat); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// GenerateSkyReport writes a one-document PDF: headline numbers, the goals,
// a top-down plot of every star and the weekly reflections.
func GenerateSkyReport(w io.Writer, snap store.Snapshot, cat prince.Catalog) error {
	sum := snap.Summary()

	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Little Prince sky report", true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	title := "Sky report: " + sum.Today
	if snap.Profile.UserName != "" {
		title = snap.Profile.UserName + "'s sky: " + sum.Today
	}
	pdf.Cell(0, 10, tr(title))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	for _, line := range []string{
		fmt.Sprintf("Rose: %s (%s of the last %d days tended)", sum.Rose.Label(), FormatScore(sum.Score), derive.WindowDays),
		fmt.Sprintf("Current streak: %s", FormatStreak(sum.Streak)),
		fmt.Sprintf("Longest streak: %s", FormatStreak(sum.LongestStreak)),
		fmt.Sprintf("Stars released: %d", sum.TotalStars),
	} {
		pdf.Cell(0, 7, tr(line))
		pdf.Ln(7)
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Planets")
	pdf.Ln(9)
	pdf.SetFont("Arial", "", 11)
	if len(sum.Goals) == 0 {
		pdf.Cell(0, 7, "  - No planets yet.")
		pdf.Ln(7)
	}
	for _, st := range sum.Goals {
		style := cat.Style(st.Goal.Style)
		r, g, b := hexRGB(style.Color)
		pdf.SetFillColor(r, g, b)
		pdf.Circle(pdf.GetX()+2, pdf.GetY()+3.5, 1.6, "F")
		pdf.SetX(pdf.GetX() + 6)
		line := fmt.Sprintf("%s  (%s)  %s, last tended %s", st.Goal.Name, style.Label, FormatStarCount(st.LogCount), FormatLastTended(st))
		pdf.Cell(0, 7, tr(line))
		pdf.Ln(7)
	}
	pdf.Ln(4)

	drawStarPlot(pdf, snap, cat)

	if len(snap.Reflections) > 0 {
		pdf.AddPage()
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(0, 10, "What was tamed")
		pdf.Ln(10)
		for _, refl := range snap.Reflections {
			pdf.SetFont("Arial", "B", 11)
			pdf.Cell(0, 7, "Week of "+refl.WeekOf)
			pdf.Ln(7)
			pdf.SetFont("Arial", "", 11)
			pdf.MultiCell(0, 6, tr(refl.FoxAnswer), "", "", false)
			if refl.PrinceResponse != "" {
				pdf.SetFont("Arial", "I", 11)
				pdf.MultiCell(0, 6, tr(refl.PrinceResponse), "", "", false)
			}
			pdf.Ln(3)
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}

const plotSize = 110.0

func drawStarPlot(pdf *fpdf.Fpdf, snap store.Snapshot, cat prince.Catalog) {
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "The sky")
	pdf.Ln(10)

	left, top := pdf.GetX(), pdf.GetY()
	if top+plotSize > 280 {
		pdf.AddPage()
		left, top = pdf.GetX(), pdf.GetY()
	}
	pdf.SetFillColor(12, 10, 36)
	pdf.Rect(left, top, plotSize, plotSize, "F")

	colors := make(map[string]string, len(snap.Goals))
	for _, g := range snap.Goals {
		colors[g.ID] = cat.Style(g.Style).Color
	}
	scale := plotSize / (2 * skyExtent)
	for _, s := range snap.Stars {
		x := left + (s.Position.X+skyExtent)*scale
		y := top + (skyExtent-s.Position.Y)*scale
		r, g, b := hexRGB(colors[s.GoalID])
		pdf.SetFillColor(r, g, b)
		pdf.Circle(x, y, 0.9, "F")
	}
	r, g, b := hexRGB("#f2a7b5")
	pdf.SetFillColor(r, g, b)
	pdf.Circle(left+plotSize/2, top+plotSize/2, 1.8, "F")
	pdf.SetY(top + plotSize + 4)
}

// hexRGB parses #rrggbb, defaulting to a pale star colour.
func hexRGB(hex string) (int, int, int) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return 255, 244, 200
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 255, 244, 200
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)
}
