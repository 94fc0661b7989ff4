package utils

// Simulator grid coordinates are mapped onto geographic coordinates with a
// fixed affine transform. This is a placeholder projection for the map
// widget, not a geodetic transform.
const (
	GridScale = 10.0
	LatOrigin = 51.5
	LonOrigin = -0.1
)

// ProjectToLatLon maps a simulator grid position to geographic coordinates.
func ProjectToLatLon(x, y float64) (lat, lon float64) {
	return y/GridScale + LatOrigin, x/GridScale + LonOrigin
}
