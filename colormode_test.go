package rm690b0

import (
	"image"
	"testing"
)

func TestColorModeBytesPerPixel(t *testing.T) {
	for _, test := range []struct {
		mode ColorMode
		want int
	}{
		{RGB565, 2},
		{RGB888, 3},
		{RGB666, 3},
		{Gray8, 1},
		{ColorMode(9), 0},
	} {
		t.Run(test.mode.String(), func(it *testing.T) {
			if v := test.mode.BytesPerPixel(); v != test.want {
				it.Errorf("expected %d bytes per pixel, got %d", test.want, v)
			}
		})
	}
}

func TestColorModeCOLMOD(t *testing.T) {
	for _, test := range []struct {
		mode ColorMode
		want byte
	}{
		{RGB565, 0x55},
		{RGB888, 0x77},
		{RGB666, 0x66},
		{Gray8, 0x11},
	} {
		t.Run(test.mode.String(), func(it *testing.T) {
			if v := test.mode.colmod(); v != test.want {
				it.Errorf("expected COLMOD value %#02x, got %#02x", test.want, v)
			}
		})
	}
}

func TestFramebufferSize(t *testing.T) {
	for _, test := range []struct {
		size image.Point
		mode ColorMode
		want int
	}{
		{image.Pt(450, 600), RGB888, 810000},
		{image.Pt(450, 600), RGB565, 540000},
		{image.Pt(450, 600), RGB666, 810000},
		{image.Pt(450, 600), Gray8, 270000},
		{image.Pt(0, 0), RGB888, 0},
	} {
		t.Run(test.mode.String(), func(it *testing.T) {
			if v := FramebufferSize(test.size, test.mode); v != test.want {
				it.Errorf("expected framebuffer size %d, got %d", test.want, v)
			}
		})
	}
}
