package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/xuri/excelize/v2"
)

// ============================================================================
// SPREADSHEET INPUT / REPORT OUTPUT
// ============================================================================

// Column headings expected in a planning workbook. "Zone Name" is optional.
var requiredColumns = []string{"switch port name", "switch port wwpn"}

var reportColumns = []string{"Port Index", "Alias", "WWPN", "Zone Name"}

type missingColumnsError struct {
	Path    string
	Columns []string
}

func (e *missingColumnsError) Error() string {
	return fmt.Sprintf("workbook %s is missing required columns: %s", e.Path, strings.Join(e.Columns, ", "))
}

// readSwitchConfigFromExcel loads the planning workbook used instead of a
// live capture: one row per port with the desired alias, WWPN and optional
// zone. Port indexes are unknown in this mode and stay blank in the report.
func readSwitchConfigFromExcel(path, sheet string) ([]PortRecord, error) {
	wb, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer wb.Close()

	rows, err := wb.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, errNoData
	}

	colIndex := make(map[string]int)
	for i, name := range rows[0] {
		colIndex[strings.TrimSpace(name)] = i
	}
	var missing []string
	for _, col := range requiredColumns {
		if _, ok := colIndex[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &missingColumnsError{Path: path, Columns: missing}
	}

	aliasCol := colIndex["switch port name"]
	wwpnCol := colIndex["switch port wwpn"]
	zoneCol, hasZone := colIndex["Zone Name"]

	var records []PortRecord
	for _, row := range rows[1:] {
		rec := PortRecord{
			Alias: cellAt(row, aliasCol),
			WWPN:  cellAt(row, wwpnCol),
		}
		if hasZone {
			rec.ZoneName = cellAt(row, zoneCol)
		}
		if rec.Alias == "" && rec.WWPN == "" && rec.ZoneName == "" {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

func cellAt(row []string, i int) string {
	if i < len(row) {
		return strings.TrimSpace(row[i])
	}
	return ""
}

// exportReport writes the unified port table to an xlsx report with a fixed
// column order.
func exportReport(path string, records []PortRecord) error {
	wb := excelize.NewFile()
	defer wb.Close()
	sheet := wb.GetSheetName(0)

	header := make([]interface{}, len(reportColumns))
	for i, col := range reportColumns {
		header[i] = col
	}
	if err := wb.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, rec := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{rec.PortIndex, rec.Alias, rec.WWPN, rec.ZoneName}
		if err := wb.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return wb.SaveAs(path)
}

// printPortTable renders the unified port table to the terminal.
func printPortTable(w io.Writer, records []PortRecord) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(reportColumns)
	for _, rec := range records {
		table.Append([]string{rec.PortIndex, rec.Alias, rec.WWPN, rec.ZoneName})
	}
	table.Render()
}
