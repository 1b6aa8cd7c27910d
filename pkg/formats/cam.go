// Camera placement file parser.
package formats

import (
	"fmt"
	"os"

	"github.com/Faultbox/sceneview/pkg/math"
)

// CameraSpec is the camera placement stored next to a mesh file.
//
// Layout (first three non-blank lines):
//
//	eye.x eye.y eye.z
//	target.x target.y target.z
//	xres yres
type CameraSpec struct {
	Eye    math.Vec3
	Target math.Vec3
	Width  int
	Height int
}

// Aspect returns the width/height ratio.
func (c CameraSpec) Aspect() float64 {
	return float64(c.Width) / float64(c.Height)
}

// ParseCamera parses a camera placement file.
func ParseCamera(data []byte) (*CameraSpec, error) {
	recs, err := readCameraLines(data)
	if err != nil {
		return nil, err
	}
	if len(recs) < 3 {
		return nil, fmt.Errorf("%w: camera file needs 3 lines, got %d", ErrMalformedRecord, len(recs))
	}

	var spec CameraSpec
	if spec.Eye, err = recs[0].vec3(); err != nil {
		return nil, err
	}
	if spec.Target, err = recs[1].vec3(); err != nil {
		return nil, err
	}

	res := recs[2]
	if spec.Width, err = res.int(0); err != nil {
		return nil, err
	}
	if spec.Height, err = res.int(1); err != nil {
		return nil, err
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return nil, res.malformed("resolution must be positive, got %dx%d", spec.Width, spec.Height)
	}

	return &spec, nil
}

// ParseCameraFile reads and parses a camera placement file from disk.
func ParseCameraFile(path string) (*CameraSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading camera file: %w", err)
	}
	return ParseCamera(data)
}

// readCameraLines returns records whose tag is the first number on the line,
// folded back into the field list so every field is positional.
func readCameraLines(data []byte) ([]record, error) {
	recs, err := readRecords(data)
	if err != nil {
		return nil, err
	}
	for i := range recs {
		recs[i].fields = append([]string{recs[i].tag}, recs[i].fields...)
		recs[i].tag = "cam"
	}
	return recs, nil
}
