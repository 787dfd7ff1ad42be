// Package export writes a fitness summary to report files: a PDF with a
// QR-coded figures block, and an Excel workbook.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/fitness-tracker/internal/engine"
	qrcode "github.com/skip2/go-qrcode"
)

// Page layout constants (A4 portrait in mm).
const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	contentWidth = pageWidth - marginLeft - marginRight
	qrSize       = 32.0
	lineHeight   = 5.0
)

// QRPayload is the JSON encoded into the report's QR code.
type QRPayload struct {
	ID            string  `json:"id"`
	CreatedAt     string  `json:"created_at"`
	Goal          string  `json:"goal"`
	BMR           float64 `json:"bmr"`
	DailyCalories float64 `json:"daily_kcal"`
	TargetIntake  float64 `json:"target_kcal"`
	Consumed      float64 `json:"consumed_kcal"`
}

// NewQRPayload extracts the figures carried by the QR code, rounded to two
// decimals to keep the code small.
func NewQRPayload(s engine.Summary) QRPayload {
	return QRPayload{
		ID:            s.ID,
		CreatedAt:     s.CreatedAt,
		Goal:          string(s.Request.Goal),
		BMR:           round2(s.Calories.BMR),
		DailyCalories: round2(s.Calories.DailyCalories),
		TargetIntake:  round2(s.Calories.TargetIntake),
		Consumed:      round2(s.Request.CaloriesConsumed),
	}
}

// ExportPDF renders the summary as a one- or two-page A4 report.
func ExportPDF(path string, s engine.Summary) error {
	if s.ID == "" {
		return fmt.Errorf("no summary to export")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginLeft, marginTop, marginRight)
	pdf.SetAutoPageBreak(true, marginBottom+5)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-marginBottom)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(120, 120, 120)
		pdf.CellFormat(contentWidth, 4, "Generated by Fitness Tracker - report "+s.ID, "", 0, "C", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	})
	pdf.AddPage()

	if err := renderHeader(pdf, s); err != nil {
		return err
	}
	renderProfile(pdf, s)
	renderCalories(pdf, s)
	renderSection(pdf, "Progress", s.Progress)
	renderSection(pdf, "Diet Plan", s.DietText())
	renderSection(pdf, "Workout Plan", s.WorkoutText())
	renderSection(pdf, "Fitness Plan", s.FitnessPlan)
	renderActivityTable(pdf, engine.CompareActivityLevels(s.Request.Profile))

	return pdf.OutputFileAndClose(path)
}

// renderHeader draws the title block and the QR code in the top right corner.
func renderHeader(pdf *fpdf.Fpdf, s engine.Summary) error {
	qrData, err := json.Marshal(NewQRPayload(s))
	if err != nil {
		return fmt.Errorf("failed to marshal QR payload: %w", err)
	}
	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := "qr_" + s.ID
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))
	pdf.ImageOptions(imgName, pageWidth-marginRight-qrSize, marginTop, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(contentWidth-qrSize, 10, "Fitness Summary", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(contentWidth-qrSize, lineHeight, fmt.Sprintf("Report %s - %s", s.ID, s.CreatedAt), "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	pdf.SetY(marginTop + qrSize + 4)
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, pdf.GetY(), pageWidth-marginRight, pdf.GetY())
	pdf.Ln(4)
	return nil
}

func renderProfile(pdf *fpdf.Fpdf, s engine.Summary) {
	p := s.Request.Profile
	items := []keyValue{
		{"Current Weight", fmt.Sprintf("%.1f kg", p.CurrentWeightKg)},
		{"Target Weight", fmt.Sprintf("%.1f kg", p.TargetWeightKg)},
		{"Height", fmt.Sprintf("%.1f cm", p.HeightCm)},
		{"Age", fmt.Sprintf("%d", p.Age)},
		{"Gender", string(p.Gender)},
		{"Activity Level", string(p.ActivityLevel)},
		{"Diet Preference", string(p.DietPreference)},
		{"Goal", string(s.Request.Goal)},
		{"Calories Consumed", fmt.Sprintf("%.2f kcal", s.Request.CaloriesConsumed)},
	}
	renderHeading(pdf, "Profile")
	renderKeyValues(pdf, items)
}

func renderCalories(pdf *fpdf.Fpdf, s engine.Summary) {
	c := s.Calories
	items := []keyValue{
		{"Basal Metabolic Rate", fmt.Sprintf("%.2f kcal/day", c.BMR)},
		{"Maintenance", fmt.Sprintf("%.2f kcal/day", c.DailyCalories)},
		{"Target Intake", fmt.Sprintf("%.2f kcal/day", c.TargetIntake)},
		{"To Lose Weight", fmt.Sprintf("%.2f kcal/day", c.LossIntake)},
		{"To Gain Weight", fmt.Sprintf("%.2f kcal/day", c.GainIntake)},
	}
	renderHeading(pdf, "Calories")
	renderKeyValues(pdf, items)
}

func renderHeading(pdf *fpdf.Fpdf, title string) {
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(contentWidth, 7, title, "", 1, "L", false, 0, "")
}

// keyValue is one "label: value" line of a report block.
type keyValue struct {
	label string
	value string
}

func renderKeyValues(pdf *fpdf.Fpdf, items []keyValue) {
	for _, item := range items {
		pdf.SetX(marginLeft + 5)
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(50, lineHeight+1, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(80, lineHeight+1, item.value, "", 1, "L", false, 0, "")
	}
}

// renderSection draws a heading followed by free text that may span lines.
func renderSection(pdf *fpdf.Fpdf, title, body string) {
	renderHeading(pdf, title)
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetX(marginLeft + 5)
	pdf.MultiCell(contentWidth-5, lineHeight, strings.TrimSpace(body), "", "L", false)
}

func renderActivityTable(pdf *fpdf.Fpdf, rows []engine.ActivityComparison) {
	renderHeading(pdf, "Daily Calories by Activity Level")

	colWidths := []float64{40, 25, 40, 40, 35}
	headers := []string{"Activity Level", "Factor", "Maintenance", "Lose Weight", "Gain Weight"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, header := range headers {
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	for i, row := range rows {
		cells := []string{
			string(row.Level),
			fmt.Sprintf("%.3f", row.Multiplier),
			fmt.Sprintf("%.2f", row.DailyCalories),
			fmt.Sprintf("%.2f", row.LossIntake),
			fmt.Sprintf("%.2f", row.GainIntake),
		}

		style := ""
		if row.Current {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 9)

		// Alternate row background
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		for j, cell := range cells {
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
