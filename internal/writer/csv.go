// Package writer serializes volume results for downstream consumers.
package writer

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/davras5/swissALTI3D-Volumen/internal/model"
)

var csvHeader = []string{
	"EGID", "volume_m3", "footprint_area_m2",
	"mean_height_m", "max_height_m", "base_height_m", "status",
}

// WriteCSV emits one row per result in input order. Numbers are rounded to
// two decimals here, at the serialization boundary only; results themselves
// stay full precision.
func WriteCSV(w io.Writer, results []model.VolumeResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range results {
		row := []string{
			r.EGID,
			fmtMeters(r.VolumeM3),
			fmtMeters(r.FootprintAreaM2),
			fmtMeters(r.MeanHeightM),
			fmtMeters(r.MaxHeightM),
			fmtMeters(r.BaseHeightM),
			string(r.Status),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row %s: %w", r.EGID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the results to path, creating or truncating it.
func WriteCSVFile(path string, results []model.VolumeResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteCSV(f, results); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func fmtMeters(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}
