package rm690b0

import "image"

// ColorMode is an interface pixel format supported by the RM690B0.
type ColorMode uint8

// Supported color modes.
const (
	RGB565 ColorMode = iota // 16-bit 5-6-5 RGB
	RGB888                  // 24-bit 8-8-8 RGB
	RGB666                  // 18-bit 6-6-6 RGB, one byte per channel
	Gray8                   // 8-bit 256 gray
)

func (m ColorMode) String() string {
	switch m {
	case RGB565:
		return "RGB565"
	case RGB888:
		return "RGB888"
	case RGB666:
		return "RGB666"
	case Gray8:
		return "Gray8"
	default:
		return "invalid"
	}
}

// BytesPerPixel is the framebuffer stride per pixel for the color mode.
func (m ColorMode) BytesPerPixel() int {
	switch m {
	case RGB565:
		return 2
	case RGB888:
		return 3
	case RGB666:
		return 3
	case Gray8:
		return 1
	default:
		return 0
	}
}

// colmod is the COLMOD (Interface Pixel Format) register value.
func (m ColorMode) colmod() byte {
	switch m {
	case RGB565:
		return 0x55
	case RGB888:
		return 0x77
	case RGB666:
		return 0x66
	case Gray8:
		return 0x11
	default:
		return 0
	}
}

// FramebufferSize is the backing storage size in bytes for a display of the
// given dimensions in the given color mode.
func FramebufferSize(size image.Point, mode ColorMode) int {
	return size.X * size.Y * mode.BytesPerPixel()
}
