package blade

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/banshee-data/blade.align/internal/geom"
)

// profileJSON mirrors one element of the serialized blade survey: four
// named arrays of [x, y, z] triples. Pointers distinguish a missing field
// from an empty one.
type profileJSON struct {
	CX *[][]float64 `json:"cx"`
	CV *[][]float64 `json:"cv"`
	LE *[][]float64 `json:"le"`
	RE *[][]float64 `json:"re"`
}

// LoadAirfoil reads a blade survey JSON file: a top-level array with one
// object per span station, each carrying cx/cv/le/re point arrays.
func LoadAirfoil(path string) (Airfoil, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open blade survey: %w", err)
	}
	defer f.Close()

	af, err := DecodeAirfoil(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return af, nil
}

// DecodeAirfoil decodes a blade survey from r. Malformed shape (missing
// cloud field, row that is not an [x, y, z] triple, non-numeric entry) is a
// load-time error naming the profile index and field; the geometry engine
// never sees partial data.
func DecodeAirfoil(r io.Reader) (Airfoil, error) {
	var raw []profileJSON
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("parse blade survey: %w", err)
	}

	af := make(Airfoil, 0, len(raw))
	for i, pj := range raw {
		var p Profile
		var err error
		if p.CX, err = toCloud(pj.CX, i, "cx"); err != nil {
			return nil, err
		}
		if p.CV, err = toCloud(pj.CV, i, "cv"); err != nil {
			return nil, err
		}
		if p.LE, err = toCloud(pj.LE, i, "le"); err != nil {
			return nil, err
		}
		if p.RE, err = toCloud(pj.RE, i, "re"); err != nil {
			return nil, err
		}
		af = append(af, p)
	}
	return af, nil
}

// toCloud validates and converts one named point array of profile idx.
func toCloud(rows *[][]float64, idx int, field string) (Cloud, error) {
	if rows == nil {
		return nil, fmt.Errorf("profile %d: missing field %q", idx, field)
	}
	c := make(Cloud, 0, len(*rows))
	for j, row := range *rows {
		if len(row) != 3 {
			return nil, fmt.Errorf("profile %d: field %q row %d has %d components, want 3", idx, field, j, len(row))
		}
		c = append(c, geom.Vec3{X: row[0], Y: row[1], Z: row[2]})
	}
	return c, nil
}
