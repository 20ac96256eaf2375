// Package report renders the stored reading history as downloadable
// XLSX and PDF documents.
package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/VIVEGHA/ColdStoragebackend/pkg/common"
	"github.com/VIVEGHA/ColdStoragebackend/pkg/models"
)

type row struct {
	Timestamp   string
	Temperature float64
	Door        string
}

type summary struct {
	Count           int
	MeanTemperature float64
	MinTemperature  float64
	MaxTemperature  float64
	DoorOpenCount   int
}

func summarize(readings []models.Reading) summary {
	s := summary{Count: len(readings)}
	if len(readings) == 0 {
		return s
	}

	sum := 0.0
	s.MinTemperature = readings[0].Temperature
	s.MaxTemperature = readings[0].Temperature
	for _, r := range readings {
		sum += r.Temperature
		if r.Temperature < s.MinTemperature {
			s.MinTemperature = r.Temperature
		}
		if r.Temperature > s.MaxTemperature {
			s.MaxTemperature = r.Temperature
		}
		if r.DoorStatus == models.DoorStatusOpen {
			s.DoorOpenCount++
		}
	}
	s.MeanTemperature = sum / float64(len(readings))

	return s
}

func toRows(readings []models.Reading) []row {
	return common.Mapper(readings, func(r models.Reading) row {
		return row{
			Timestamp:   r.Timestamp.Format(time.RFC3339),
			Temperature: r.Temperature,
			Door:        string(r.DoorStatus),
		}
	})
}

// BuildReadingsPDF renders a minimal PDF report of the reading history.
func BuildReadingsPDF(readings []models.Reading, generatedAt time.Time) ([]byte, error) {
	s := summarize(readings)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, "Cold Storage Readings Report")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Generated: %s", generatedAt.Format(time.RFC3339)))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Readings: %d", s.Count))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Mean Temperature: %.1f", s.MeanTemperature))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Min Temperature: %.1f", s.MinTemperature))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Max Temperature: %.1f", s.MaxTemperature))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Door Open Readings: %d", s.DoorOpenCount))
	pdf.Ln(8)

	// Readings table
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(70, 6, "Timestamp", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 6, "Temperature", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 6, "Door", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	for _, r := range toRows(readings) {
		pdf.CellFormat(70, 6, r.Timestamp, "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 6, fmt.Sprintf("%.1f", r.Temperature), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, r.Door, "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	err := pdf.Output(&buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BuildReadingsXLSX renders a minimal XLSX report of the reading history.
func BuildReadingsXLSX(readings []models.Reading, generatedAt time.Time) ([]byte, error) {
	s := summarize(readings)

	f := excelize.NewFile()
	summarySheet := "summary"
	readingsSheet := "readings"
	f.SetSheetName("Sheet1", summarySheet)
	f.NewSheet(readingsSheet)

	_ = f.SetCellValue(summarySheet, "A1", "Cold Storage Readings Report")
	_ = f.SetCellValue(summarySheet, "A3", "Generated")
	_ = f.SetCellValue(summarySheet, "B3", generatedAt.Format(time.RFC3339))
	_ = f.SetCellValue(summarySheet, "A4", "Readings")
	_ = f.SetCellValue(summarySheet, "B4", s.Count)
	_ = f.SetCellValue(summarySheet, "A5", "Mean Temperature")
	_ = f.SetCellValue(summarySheet, "B5", s.MeanTemperature)
	_ = f.SetCellValue(summarySheet, "A6", "Min Temperature")
	_ = f.SetCellValue(summarySheet, "B6", s.MinTemperature)
	_ = f.SetCellValue(summarySheet, "A7", "Max Temperature")
	_ = f.SetCellValue(summarySheet, "B7", s.MaxTemperature)
	_ = f.SetCellValue(summarySheet, "A8", "Door Open Readings")
	_ = f.SetCellValue(summarySheet, "B8", s.DoorOpenCount)

	_ = f.SetCellValue(readingsSheet, "A1", "Timestamp")
	_ = f.SetCellValue(readingsSheet, "B1", "Temperature")
	_ = f.SetCellValue(readingsSheet, "C1", "Door")
	for i, r := range toRows(readings) {
		rowNum := i + 2
		_ = f.SetCellValue(readingsSheet, fmt.Sprintf("A%d", rowNum), r.Timestamp)
		_ = f.SetCellValue(readingsSheet, fmt.Sprintf("B%d", rowNum), r.Temperature)
		_ = f.SetCellValue(readingsSheet, fmt.Sprintf("C%d", rowNum), r.Door)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
