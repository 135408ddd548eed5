package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/evsync/spritsync-go/internal/domain/entity"
	"github.com/evsync/spritsync-go/internal/domain/repository"
)

// ExportRepositoryImpl implements ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository creates a new implementation of ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

// ExportToCSV writes the day log of a run as CSV.
func (r *ExportRepositoryImpl) ExportToCSV(result *entity.SyncResult, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	headers := []string{"Date", "Status", "Reason", "Distance (km)", "Odometer (km)", "Quantity (kWh)", "Error"}
	if err := writer.Write(headers); err != nil {
		return "", fmt.Errorf("error writing CSV header: %w", err)
	}

	for _, day := range result.Days {
		record := []string{
			day.Date.Format(entity.DateLayout),
			string(day.Status),
			string(day.Reason),
			fmt.Sprintf("%.1f", day.DistanceKm),
			formatOdometer(day.OdometerKm),
			fmt.Sprintf("%.1f", day.QuantityKwh),
			day.Error,
		}
		if err := writer.Write(record); err != nil {
			return "", fmt.Errorf("error writing CSV record: %w", err)
		}
	}

	return filepath.Abs(outputFilename)
}

// ExportToJSON writes the full run summary as indented JSON.
func (r *ExportRepositoryImpl) ExportToJSON(result *entity.SyncResult, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// ExportToPDF writes a one-page-per-section report of the run.
func (r *ExportRepositoryImpl) ExportToPDF(result *entity.SyncResult, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{40, 40, 40}
	headerTextColor := [3]int{255, 255, 255}
	sectionTitleColor := [3]int{0, 0, 0}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	drawSection := func(title string, content string) {
		if content == "" {
			return
		}
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, tr(title))
		pdf.Ln(7)

		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(4)

		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		pdf.MultiCell(190, 5, tr(content), "", "L", false)
		pdf.Ln(8)
	}

	pdf.AddPage()

	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	title := "  Sync Report"
	if result.Partial {
		title = "  Sync Report (partial)"
	}
	pdf.CellFormat(0, 12, tr(title), "", 1, "L", true, 0, "")
	pdf.Ln(10)

	summary := fmt.Sprintf(
		"Days considered: %d\nSubmitted: %d\nSkipped (incomplete): %d\nSkipped (duplicate): %d\nFailed: %d\nCalls used: %d\nFinal odometer: %.0f km",
		result.DaysConsidered, result.Submitted, result.SkippedIncomplete,
		result.SkippedDuplicate, result.Failed, result.BudgetUsed, result.FinalOdometerKm)
	drawSection("Summary", summary)

	gapsStr := ""
	for _, gap := range result.OdometerGaps {
		gapsStr += fmt.Sprintf("%s -> %s\n", gap.From.Format(entity.DateLayout), gap.To.Format(entity.DateLayout))
	}
	drawSection("Gaps Without Trip Data", gapsStr)

	daysStr := ""
	for _, day := range result.Days {
		line := fmt.Sprintf("%s  %s", day.Date.Format(entity.DateLayout), day.Status)
		if day.Reason != "" {
			line += fmt.Sprintf(" (%s)", day.Reason)
		}
		if day.Status == entity.DayStatusSubmitted {
			line += fmt.Sprintf("  %.1f km at %.0f km, %.1f kWh", day.DistanceKm, day.OdometerKm, day.QuantityKwh)
		}
		if day.Error != "" {
			line += "  " + day.Error
		}
		daysStr += line + "\n"
	}
	drawSection("Day Log", daysStr)

	pdf.SetY(-15)
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(128, 128, 128)
	footerText := fmt.Sprintf("Generated by spritsync | %s", time.Now().Format("2006-01-02"))
	pdf.CellFormat(0, 10, tr(footerText), "", 0, "L", false, 0, "")

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func formatOdometer(v float64) string {
	if v == 0 {
		return ""
	}
	return fmt.Sprintf("%.0f", v)
}

// generateFilename builds a unique timestamped filename and makes sure the
// output directory exists.
func generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}
