package pixel

import "image/color"

// Models for the RM690B0 color types.
var (
	RGB565Model color.Model = color.ModelFunc(rgb565Model)
	RGB666Model color.Model = color.ModelFunc(rgb666Model)
	RGB888Model color.Model = color.ModelFunc(rgb888Model)
)

// RGB565 represents a 16-bit 5-6-5 RGB color.
type RGB565 struct {
	// CRed, 5, CGreen, 6, CBlue, 5
	V uint16
}

func (c RGB565) RGBA() (r, g, b, a uint32) {
	// Build a 5- or 6-bit value at the top of the low byte of each component.
	red := (c.V & 0xF800) >> 8
	grn := (c.V & 0x07E0) >> 3
	blu := (c.V & 0x001F) << 3
	// Duplicate the high bits in the low bits.
	red |= red >> 5
	grn |= grn >> 6
	blu |= blu >> 5
	// Duplicate the whole value in the high byte.
	red |= red << 8
	grn |= grn << 8
	blu |= blu << 8
	return uint32(red), uint32(grn), uint32(blu), 0xffff
}

func rgb565Model(c color.Color) color.Color {
	if c, ok := c.(RGB565); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	r = (r & 0xF800)
	g = (g & 0xFC00) >> 5
	b = (b & 0xF800) >> 11
	return RGB565{uint16(r | g | b)}
}

// RGB666 represents an 18-bit 6-6-6 RGB color. Each channel holds a 6-bit
// value in its low bits; on the wire each channel occupies the 6 most
// significant bits of its own byte.
type RGB666 struct {
	R, G, B uint8
}

func (c RGB666) RGBA() (r, g, b, a uint32) {
	// Build an 8-bit value from the 6-bit channel, duplicating high bits.
	red := uint32(c.R)<<2 | uint32(c.R)>>4
	grn := uint32(c.G)<<2 | uint32(c.G)>>4
	blu := uint32(c.B)<<2 | uint32(c.B)>>4
	// Duplicate the whole value in the high byte.
	red |= red << 8
	grn |= grn << 8
	blu |= blu << 8
	return red, grn, blu, 0xffff
}

func rgb666Model(c color.Color) color.Color {
	if c, ok := c.(RGB666); ok {
		return RGB666{R: c.R & 0x3F, G: c.G & 0x3F, B: c.B & 0x3F}
	}
	r, g, b, _ := c.RGBA()
	return RGB666{
		R: uint8(r >> 10),
		G: uint8(g >> 10),
		B: uint8(b >> 10),
	}
}

// RGB888 represents a 24-bit 8-8-8 RGB color.
type RGB888 struct {
	R, G, B uint8
}

func (c RGB888) RGBA() (r, g, b, a uint32) {
	red := uint32(c.R)
	grn := uint32(c.G)
	blu := uint32(c.B)
	red |= red << 8
	grn |= grn << 8
	blu |= blu << 8
	return red, grn, blu, 0xffff
}

func rgb888Model(c color.Color) color.Color {
	if c, ok := c.(RGB888); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	return RGB888{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
	}
}
