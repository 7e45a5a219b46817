package imop

import (
	"fmt"

	"github.com/hmomeni/trimview/utils"
)

const (
	Normal   = ""
	Darken   = "darken"
	Lighten  = "lighten"
	Multiply = "multiply"
	Screen   = "screen"
	Overlay  = "overlay"
)

var blendModes = []string{Darken, Lighten, Multiply, Screen, Overlay}

// Blend holds the currently active blend mode.
type Blend struct {
	OpType string
}

// NewBlend initializes a new Blend.
func NewBlend() *Blend {
	return &Blend{}
}

// Set activates one of the supported blend modes. Normal disables blending.
func (o *Blend) Set(opType string) error {
	if opType != Normal && !utils.Contains(blendModes, opType) {
		return fmt.Errorf("unsupported blend mode: %q", opType)
	}
	o.OpType = opType
	return nil
}

// Get returns the currently active blend mode.
func (o *Blend) Get() string {
	return o.OpType
}

// apply returns the blended color channels of the normalized source and backdrop.
func (o *Blend) apply(cs, cb [4]float64) [3]float64 {
	var out [3]float64
	for i := 0; i < 3; i++ {
		s, b := cs[i], cb[i]
		switch o.OpType {
		case Darken:
			out[i] = utils.Min(s, b)
		case Lighten:
			out[i] = utils.Max(s, b)
		case Multiply:
			out[i] = s * b
		case Screen:
			out[i] = s + b - s*b
		case Overlay:
			// hard light with the layers swapped
			if b <= 0.5 {
				out[i] = 2 * s * b
			} else {
				out[i] = 1 - 2*(1-s)*(1-b)
			}
		default:
			out[i] = s
		}
	}
	return out
}
