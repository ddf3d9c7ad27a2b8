package export

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/fermlab/kust.go/pkg/monitor"
)

func TestWorkbook(t *testing.T) {
	dir, err := os.MkdirTemp("", "kust-export")
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "measures.xlsx")

	w, err := NewWorkbook(path)
	require.NoError(t, err)

	at := time.Date(2022, 2, 27, 12, 30, 45, 0, time.UTC)
	require.NoError(t, w.Consume(monitor.Sample{
		Time:         at,
		Temperatures: []float64{21.5, 22, 19.8, 25},
		Speeds:       []int{100, 200, 300, 400, 500, 600},
		Oxygen:       4.1,
		OxygenOK:     true,
	}))
	// a degraded cycle keeps its row, with empty measurement cells
	require.NoError(t, w.Consume(monitor.Sample{Time: at.Add(time.Second)}))
	require.NoError(t, w.Close())

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)

	cells := map[string]string{
		"A1": "Time",
		"B1": "Temperature",
		"K2": "Stirring 1",
		"A3": "12:30:45",
		"B3": "21.5",
		"E3": "25",
		"H3": "4.1",
		"K3": "100",
		"P3": "600",
		"A4": "12:30:46",
		"B4": "",
		"H4": "",
	}
	for axis, expect := range cells {
		got, err := f.GetCellValue(sheet, axis)
		require.NoError(t, err)
		require.Equalf(t, expect, got, "cell %s", axis)
	}
}
