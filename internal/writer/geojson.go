package writer

import (
	"fmt"
	"os"

	"github.com/paulmach/orb/geojson"

	"github.com/davras5/swissALTI3D-Volumen/internal/model"
)

// WriteGeoJSON re-emits the processed footprints as a FeatureCollection with
// the volume metrics merged into each feature's properties, the geofile
// counterpart of the CSV output. Buildings without a matching result keep
// their original properties untouched.
func WriteGeoJSON(path string, buildings []model.Building, results map[string]model.VolumeResult) error {
	fc := geojson.NewFeatureCollection()
	for _, b := range buildings {
		ft := geojson.NewFeature(b.Footprint)
		for k, v := range b.Props {
			ft.Properties[k] = v
		}
		ft.Properties["EGID"] = b.EGID
		if r, ok := results[b.EGID]; ok {
			ft.Properties["volume_m3"] = r.VolumeM3
			ft.Properties["footprint_area_m2"] = r.FootprintAreaM2
			ft.Properties["mean_height_m"] = r.MeanHeightM
			ft.Properties["max_height_m"] = r.MaxHeightM
			ft.Properties["base_height_m"] = r.BaseHeightM
			ft.Properties["status"] = string(r.Status)
		}
		fc.Append(ft)
	}
	raw, err := fc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("marshal feature collection: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
