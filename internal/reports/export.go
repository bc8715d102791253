package reports

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"pallet-returns-dashboard/internal/models"
)

const SheetName = "Returns"

// Header is the column order shared by every export format.
var Header = []string{"ID", "Order ID", "Customer", "Return Date", "Pallets", "Status", "Remarks"}

func row(r models.ReturnRequest) []string {
	return []string{
		r.ID.String(),
		r.OrderID,
		r.CustomerName,
		r.ReturnDate.String(),
		strconv.Itoa(r.PalletCount),
		r.Status.String(),
		r.Remarks,
	}
}

// WriteCSV writes the header followed by one line per record.
func WriteCSV(w io.Writer, records []models.ReturnRequest) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, r := range records {
		if err := cw.Write(row(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX writes a single-sheet workbook with the same columns as WriteCSV.
// Pallet counts are written as numbers so spreadsheets can sum them.
func WriteXLSX(w io.Writer, records []models.ReturnRequest) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return err
	}

	header := make([]interface{}, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetRowStyle(SheetName, 1, 1, bold); err != nil {
		return err
	}

	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []interface{}{
			r.ID.String(), r.OrderID, r.CustomerName, r.ReturnDate.String(),
			r.PalletCount, r.Status.String(), r.Remarks,
		}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(SheetName, "A", "G", 20); err != nil {
		return err
	}

	return f.Write(w)
}

// ObjectKey names an exported report in object storage.
func ObjectKey(now time.Time, ext string) string {
	return fmt.Sprintf("reports/returns-%s.%s", now.UTC().Format("20060102-150405"), ext)
}
