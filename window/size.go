package window

import "fmt"

// Size is a width and height in device-independent pixels (96 DPI units).
type Size struct {
	Width  int32
	Height int32
}

// String formats the size as "WxH".
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}
