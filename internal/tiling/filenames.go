package tiling

import (
	"fmt"

	"github.com/davras5/swissALTI3D-Volumen/internal/model"
)

// Filenames returns the candidate file names for a tile in probing order:
// the long swisstopo download name first, then the short convention. The
// first existing file wins.
func Filenames(id TileID, ds model.Dataset) []string {
	switch ds {
	case model.DatasetSurface:
		return []string{
			fmt.Sprintf("swisssurface3d_raster_2019_%s_0.5_2056_5728.asc", id),
			fmt.Sprintf("swissSURFACE3D_%s.asc", id),
		}
	default:
		return []string{
			fmt.Sprintf("swissalti3d_2019_%s_0.5_2056_5728.asc", id),
			fmt.Sprintf("swissALTI3D_%s.asc", id),
		}
	}
}
