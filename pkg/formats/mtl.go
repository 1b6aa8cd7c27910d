// MTL (material library) parser.
package formats

import (
	"fmt"
	"os"

	"github.com/Faultbox/sceneview/pkg/math"
)

// Default material values, used for fresh `newmtl` entries and unbound meshes.
var (
	DefaultAmbient  = math.Vec3{X: 0.2, Y: 0.2, Z: 0.2}
	DefaultDiffuse  = math.Vec3{X: 0.8, Y: 0.8, Z: 0.8}
	DefaultSpecular = math.Vec3{X: 1, Y: 1, Z: 1}
)

const (
	DefaultShininess = 50.0
	DefaultOpacity   = 1.0
)

// Material is a named surface description consumed by the renderer.
type Material struct {
	Name      string
	Ambient   math.Vec3 // Ka
	Diffuse   math.Vec3 // Kd
	Specular  math.Vec3 // Ks
	Shininess float64   // Ns
	Opacity   float64   // d, 0 (clear) .. 1 (opaque)
}

// NewMaterial returns a material with default properties.
func NewMaterial(name string) *Material {
	return &Material{
		Name:      name,
		Ambient:   DefaultAmbient,
		Diffuse:   DefaultDiffuse,
		Specular:  DefaultSpecular,
		Shininess: DefaultShininess,
		Opacity:   DefaultOpacity,
	}
}

// Transparent reports whether the material needs blending.
func (m *Material) Transparent() bool {
	return m.Opacity < 1
}

// ParseMTL parses a material library into a name -> material table.
// Property records before the first `newmtl` and unknown tags are ignored.
func ParseMTL(data []byte) (map[string]*Material, error) {
	recs, err := readRecords(data)
	if err != nil {
		return nil, err
	}

	materials := make(map[string]*Material)
	var current *Material

	for _, rec := range recs {
		if rec.tag == "newmtl" {
			if len(rec.fields) < 1 {
				return nil, rec.malformed("missing material name")
			}
			current = NewMaterial(rec.fields[0])
			materials[current.Name] = current
			continue
		}
		if current == nil {
			continue
		}

		switch rec.tag {
		case "Ka":
			if current.Ambient, err = rec.vec3(); err != nil {
				return nil, err
			}
		case "Kd":
			if current.Diffuse, err = rec.vec3(); err != nil {
				return nil, err
			}
		case "Ks":
			if current.Specular, err = rec.vec3(); err != nil {
				return nil, err
			}
		case "Ns":
			if current.Shininess, err = rec.float(0); err != nil {
				return nil, err
			}
		case "d":
			d, err := rec.float(0)
			if err != nil {
				return nil, err
			}
			current.Opacity = clamp01(d)
		}
	}

	return materials, nil
}

// ParseMTLFile reads and parses a material library from disk.
func ParseMTLFile(path string) (map[string]*Material, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading MTL file: %w", err)
	}
	return ParseMTL(data)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
