// Package export writes poll cycles into the operator's spreadsheet.
package export

import (
	"github.com/xuri/excelize/v2"

	"github.com/fermlab/kust.go/pkg/monitor"
)

const sheet = "Sheet1"

// Workbook records samples in the operator's worksheet layout: one
// bordered row per cycle, grouped into temperature, oxygen and
// stirring sections, each with its own time column. The file is
// written on Close.
type Workbook struct {
	Path string

	file *excelize.File
	cell int
	head int
	row  int
}

// NewWorkbook creates the workbook and writes the two header rows.
func NewWorkbook(path string) (*Workbook, error) {
	w := &Workbook{Path: path, file: excelize.NewFile(), row: 2}
	if err := w.styles(); err != nil {
		return nil, err
	}
	if err := w.header(); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *Workbook) styles() (err error) {
	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
	center := &excelize.Alignment{Horizontal: "center"}
	if w.cell, err = w.file.NewStyle(&excelize.Style{
		Border:    border,
		Alignment: center,
	}); err != nil {
		return
	}
	w.head, err = w.file.NewStyle(&excelize.Style{
		Border:    border,
		Alignment: center,
		Font:      &excelize.Font{Bold: true},
	})
	return
}

func (w *Workbook) header() error {
	merged := []struct{ from, to, label string }{
		{"A1", "A2", "Time"},
		{"B1", "E1", "Temperature"},
		{"G1", "G2", "Time"},
		{"H1", "H2", "Oxygen"},
		{"J1", "J2", "Time"},
		{"K1", "P1", "Stirring"},
	}
	for _, m := range merged {
		if err := w.file.MergeCell(sheet, m.from, m.to); err != nil {
			return err
		}
		if err := w.file.SetCellValue(sheet, m.from, m.label); err != nil {
			return err
		}
		if err := w.file.SetCellStyle(sheet, m.from, m.to, w.head); err != nil {
			return err
		}
	}
	labels := map[string]string{
		"B2": "T1", "C2": "T2", "D2": "T3", "E2": "T4",
		"K2": "Stirring 1", "L2": "Stirring 2", "M2": "Stirring 3",
		"N2": "Stirring 4", "O2": "Stirring 5", "P2": "Stirring 6",
	}
	for axis, label := range labels {
		if err := w.file.SetCellValue(sheet, axis, label); err != nil {
			return err
		}
		if err := w.file.SetCellStyle(sheet, axis, axis, w.cell); err != nil {
			return err
		}
	}
	return nil
}

// Consume implements monitor.Sink. A collapsed measurement set leaves
// its cells empty; the row is written regardless so gaps stay visible
// in the recording.
func (w *Workbook) Consume(s monitor.Sample) error {
	w.row++
	clock := s.Time.Format("15:04:05")
	if err := w.set(1, clock); err != nil {
		return err
	}
	for i, v := range s.Temperatures {
		if err := w.set(2+i, v); err != nil {
			return err
		}
	}
	if err := w.set(7, clock); err != nil {
		return err
	}
	if s.OxygenOK {
		if err := w.set(8, s.Oxygen); err != nil {
			return err
		}
	}
	if err := w.set(10, clock); err != nil {
		return err
	}
	for i, v := range s.Speeds {
		if err := w.set(11+i, v); err != nil {
			return err
		}
	}
	return nil
}

func (w *Workbook) set(col int, v interface{}) error {
	axis, err := excelize.CoordinatesToCellName(col, w.row)
	if err != nil {
		return err
	}
	if err = w.file.SetCellValue(sheet, axis, v); err != nil {
		return err
	}
	return w.file.SetCellStyle(sheet, axis, axis, w.cell)
}

// Close saves the workbook to Path.
func (w *Workbook) Close() error {
	return w.file.SaveAs(w.Path)
}
