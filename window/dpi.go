package window

// BaseDPI is the DPI at which device-independent pixels map 1:1 to device
// pixels.
const BaseDPI DPI = 96

// DPI is a monitor dots-per-inch value used to scale device-independent
// lengths to device pixels.
type DPI uint32

// Scale converts a device-independent length to device pixels, rounding to
// the nearest pixel.
func (d DPI) Scale(v int32) int32 {
	if d == 0 {
		return v
	}
	return int32((int64(v)*int64(d) + int64(BaseDPI)/2) / int64(BaseDPI))
}

// ScaleSize converts both dimensions of a size to device pixels.
func (d DPI) ScaleSize(s Size) Size {
	return Size{
		Width:  d.Scale(s.Width),
		Height: d.Scale(s.Height),
	}
}
