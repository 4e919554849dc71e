package pixel

import (
	"image/color"
	"testing"
)

func TestRGB565(t *testing.T) {
	for _, test := range []struct {
		color RGB565
		want  [3]uint32
	}{
		{RGB565{0x0000}, [3]uint32{0x0000, 0x0000, 0x0000}},
		{RGB565{0xFFFF}, [3]uint32{0xFFFF, 0xFFFF, 0xFFFF}},
		{RGB565{0xF800}, [3]uint32{0xFFFF, 0x0000, 0x0000}},
		{RGB565{0x07E0}, [3]uint32{0x0000, 0xFFFF, 0x0000}},
		{RGB565{0x001F}, [3]uint32{0x0000, 0x0000, 0xFFFF}},
	} {
		t.Run("", func(it *testing.T) {
			r, g, b, a := test.color.RGBA()
			if r != test.want[0] || g != test.want[1] || b != test.want[2] {
				it.Errorf("expected %#04x/%#04x/%#04x, got %#04x/%#04x/%#04x",
					test.want[0], test.want[1], test.want[2], r, g, b)
			}
			if a != 0xFFFF {
				it.Errorf("expected alpha to be opaque, got %#04x", a)
			}
		})
	}
}

func TestRGB565Model(t *testing.T) {
	c := RGB565Model.Convert(color.RGBA{R: 0xFF, G: 0x00, B: 0x00, A: 0xFF}).(RGB565)
	if c.V != 0xF800 {
		t.Errorf("expected full red to convert to %#04x, got %#04x", 0xF800, c.V)
	}
}

func TestRGB666(t *testing.T) {
	for y := 0; y < 64; y++ {
		t.Run("", func(it *testing.T) {
			c := RGB666{R: uint8(y), G: uint8(y), B: uint8(y)}
			r, g, b, _ := c.RGBA()
			v := uint32(y)<<2 | uint32(y)>>4
			want := v | v<<8
			if r != want || g != want || b != want {
				it.Errorf("expected all channels to be %#04x, got %#04x/%#04x/%#04x", want, r, g, b)
			}
		})
	}
}

func TestRGB666Model(t *testing.T) {
	c := RGB666Model.Convert(color.RGBA{R: 0xFF, G: 0x80, B: 0x00, A: 0xFF}).(RGB666)
	if c.R != 0x3F {
		t.Errorf("expected red channel %#02x, got %#02x", 0x3F, c.R)
	}
	if c.G != 0x20 {
		t.Errorf("expected green channel %#02x, got %#02x", 0x20, c.G)
	}
	if c.B != 0x00 {
		t.Errorf("expected blue channel %#02x, got %#02x", 0x00, c.B)
	}
}

func TestRGB888(t *testing.T) {
	for y := 0; y < 256; y++ {
		t.Run("", func(it *testing.T) {
			c := RGB888{R: uint8(y), G: uint8(y), B: uint8(y)}
			r, g, b, _ := c.RGBA()
			want := uint32(y) | uint32(y)<<8
			if r != want || g != want || b != want {
				it.Errorf("expected all channels to be %#04x, got %#04x/%#04x/%#04x", want, r, g, b)
			}
		})
	}
}

func TestRGB888Model(t *testing.T) {
	c := RGB888Model.Convert(color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xFF}).(RGB888)
	if c.R != 0x12 || c.G != 0x34 || c.B != 0x56 {
		t.Errorf("expected 12/34/56, got %02x/%02x/%02x", c.R, c.G, c.B)
	}
}
