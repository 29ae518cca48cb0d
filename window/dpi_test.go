package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDPIScale(t *testing.T) {
	tests := []struct {
		name string
		dpi  DPI
		in   int32
		want int32
	}{
		{"baseline is identity", 96, 720, 720},
		{"125 percent", 120, 720, 900},
		{"150 percent", 144, 640, 960},
		{"200 percent", 192, 640, 1280},
		{"rounds to nearest", 96 + 48, 1, 2}, // 1.5 rounds up
		{"zero length", 144, 0, 0},
		{"zero dpi is identity", 0, 640, 640},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.dpi.Scale(tt.in))
		})
	}
}

func TestDPIScaleSize(t *testing.T) {
	scaled := DPI(144).ScaleSize(Size{Width: 720, Height: 640})
	assert.Equal(t, Size{Width: 1080, Height: 960}, scaled)
}

func TestSizeString(t *testing.T) {
	assert.Equal(t, "720x640", Size{Width: 720, Height: 640}.String())
}
