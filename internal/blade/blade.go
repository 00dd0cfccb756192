// Package blade holds the measured blade geometry: ordered point clouds per
// span station, loaded once from a serialized survey and immutable after
// that. It also provides plotting helpers for visual inspection of the
// loaded clouds.
package blade

import "github.com/banshee-data/blade.align/internal/geom"

// Cloud is an ordered sequence of measured 3-D points.
type Cloud []geom.Vec3

// Columns splits the cloud into aligned coordinate slices, the shape the
// geom fitters consume.
func (c Cloud) Columns() (x, y, z []float64) {
	x = make([]float64, len(c))
	y = make([]float64, len(c))
	z = make([]float64, len(c))
	for i, p := range c {
		x[i], y[i], z[i] = p.X, p.Y, p.Z
	}
	return x, y, z
}

// Centroid returns the mean point of the cloud, or the zero vector for an
// empty cloud.
func (c Cloud) Centroid() geom.Vec3 {
	if len(c) == 0 {
		return geom.Vec3{}
	}
	var sum geom.Vec3
	for _, p := range c {
		sum = sum.Add(p)
	}
	return sum.Scale(1 / float64(len(c)))
}

// Profile is one span station of the blade: four named point clouds
// sampled on the cross-section (cx), the convex side (cv), the leading
// edge (le) and the trailing edge (re).
type Profile struct {
	CX Cloud
	CV Cloud
	LE Cloud
	RE Cloud
}

// Points returns the total number of points across the four clouds.
func (p Profile) Points() int {
	return len(p.CX) + len(p.CV) + len(p.LE) + len(p.RE)
}

// Airfoil is the ordered sequence of profiles along the blade span, root
// first.
type Airfoil []Profile
