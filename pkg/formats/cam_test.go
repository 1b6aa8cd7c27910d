package formats

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/sceneview/pkg/math"
)

func TestParseCamera(t *testing.T) {
	src := `3 4 5
0 0.5 0
1920 1080
# trailing lines are ignored
0 0 0
`
	spec, err := ParseCamera([]byte(src))
	require.NoError(t, err)

	assert.Equal(t, math.Vec3{X: 3, Y: 4, Z: 5}, spec.Eye)
	assert.Equal(t, math.Vec3{Y: 0.5}, spec.Target)
	assert.Equal(t, 1920, spec.Width)
	assert.Equal(t, 1080, spec.Height)
	assert.InDelta(t, 16.0/9.0, spec.Aspect(), 1e-12)
}

func TestParseCamera_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"empty", ""},
		{"two lines", "0 0 5\n0 0 0\n"},
		{"bad eye", "0 zero 5\n0 0 0\n800 600\n"},
		{"short target", "0 0 5\n0 0\n800 600\n"},
		{"missing height", "0 0 5\n0 0 0\n800\n"},
		{"zero height", "0 0 5\n0 0 0\n800 0\n"},
		{"fractional height", "0 0 5\n0 0 0\n800 0.5\n"},
		{"fractional width", "0 0 5\n0 0 0\n640.5 480\n"},
		{"infinite eye", "0 inf 5\n0 0 0\n800 600\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := ParseCamera([]byte(tt.src))
			assert.Nil(t, spec)
			if !errors.Is(err, ErrMalformedRecord) {
				t.Errorf("got error %v, want %v", err, ErrMalformedRecord)
			}
		})
	}
}
