package pixel

import (
	"encoding/binary"
	"image"
	"image/color"
	"image/draw"
)

type Image interface {
	draw.Image

	// Clear the image.
	Clear()

	// Fill the image with a single color.
	Fill(color.Color)

	// Bytes is the raw backing storage in the controller's wire layout.
	Bytes() []byte
}

// Buffer holds the pixel values and is a container that is used by all image
// formats in this package.
type Buffer struct {
	// Rect is the image bounding box.
	Rect image.Rectangle

	// Pix are the image pixels.
	Pix []byte

	// Stride is the Pix stride (in bytes) between vertically adjacent pixels.
	Stride int
}

func (p *Buffer) Bounds() image.Rectangle {
	return p.Rect
}

func (p *Buffer) Bytes() []byte {
	return p.Pix
}

func (p *Buffer) Clear() {
	for i := range p.Pix {
		p.Pix[i] = 0x00
	}
}

func makeBuffer(w, h, stride int) Buffer {
	return Buffer{
		Rect:   image.Rect(0, 0, w, h),
		Pix:    make([]byte, stride*h),
		Stride: stride,
	}
}

// RGB565Image is a 16-bits per pixel 5-6-5-bit RGB image.
type RGB565Image struct {
	Buffer
	Order binary.ByteOrder
}

func NewRGB565Image(w, h int) *RGB565Image {
	return &RGB565Image{
		Buffer: makeBuffer(w, h, w*2),
		Order:  binary.BigEndian,
	}
}

func (p *RGB565Image) ColorModel() color.Model {
	return RGB565Model
}

func (p *RGB565Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}

	v := p.Order.Uint16(p.Pix[x*2+y*p.Stride:])
	return RGB565{v}
}

func (p *RGB565Image) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}

	v := rgb565Model(c).(RGB565).V
	p.Order.PutUint16(p.Pix[x*2+y*p.Stride:], v)
}

func (p *RGB565Image) Fill(c color.Color) {
	value := rgb565Model(c).(RGB565).V
	bytes := make([]byte, 2)
	p.Order.PutUint16(bytes, value)
	for i, l := 0, len(p.Pix); i < l; i += 2 {
		copy(p.Pix[i:], bytes)
	}
}

// RGB666Image is an 18-bits per pixel 6-6-6-bit RGB image using three bytes
// per pixel, each channel in the upper 6 bits of its byte.
type RGB666Image struct {
	Buffer
}

func NewRGB666Image(w, h int) *RGB666Image {
	return &RGB666Image{
		Buffer: makeBuffer(w, h, w*3),
	}
}

func (p *RGB666Image) ColorModel() color.Model {
	return RGB666Model
}

func (p *RGB666Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}

	index := x*3 + y*p.Stride
	return RGB666{
		R: p.Pix[index+0] >> 2,
		G: p.Pix[index+1] >> 2,
		B: p.Pix[index+2] >> 2,
	}
}

func (p *RGB666Image) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}

	index := x*3 + y*p.Stride
	v := rgb666Model(c).(RGB666)
	p.Pix[index+0] = v.R << 2
	p.Pix[index+1] = v.G << 2
	p.Pix[index+2] = v.B << 2
}

func (p *RGB666Image) Fill(c color.Color) {
	v := rgb666Model(c).(RGB666)
	for i, l := 0, len(p.Pix); i < l; i += 3 {
		p.Pix[i+0] = v.R << 2
		p.Pix[i+1] = v.G << 2
		p.Pix[i+2] = v.B << 2
	}
}

// RGB888Image is a 24-bits per pixel 8-8-8-bit RGB image.
type RGB888Image struct {
	Buffer
}

func NewRGB888Image(w, h int) *RGB888Image {
	return &RGB888Image{
		Buffer: makeBuffer(w, h, w*3),
	}
}

func (p *RGB888Image) ColorModel() color.Model {
	return RGB888Model
}

func (p *RGB888Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}

	index := x*3 + y*p.Stride
	return RGB888{
		R: p.Pix[index+0],
		G: p.Pix[index+1],
		B: p.Pix[index+2],
	}
}

func (p *RGB888Image) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}

	index := x*3 + y*p.Stride
	v := rgb888Model(c).(RGB888)
	p.Pix[index+0] = v.R
	p.Pix[index+1] = v.G
	p.Pix[index+2] = v.B
}

func (p *RGB888Image) Fill(c color.Color) {
	v := rgb888Model(c).(RGB888)
	for i, l := 0, len(p.Pix); i < l; i += 3 {
		p.Pix[i+0] = v.R
		p.Pix[i+1] = v.G
		p.Pix[i+2] = v.B
	}
}

// Gray8Image is an 8-bits per pixel grayscale image.
type Gray8Image struct {
	Buffer
}

func NewGray8Image(w, h int) *Gray8Image {
	return &Gray8Image{
		Buffer: makeBuffer(w, h, w),
	}
}

func (p *Gray8Image) ColorModel() color.Model {
	return color.GrayModel
}

func (p *Gray8Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}

	return color.Gray{Y: p.Pix[x+y*p.Stride]}
}

func (p *Gray8Image) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}

	p.Pix[x+y*p.Stride] = color.GrayModel.Convert(c).(color.Gray).Y
}

func (p *Gray8Image) Fill(c color.Color) {
	value := color.GrayModel.Convert(c).(color.Gray).Y
	for i := range p.Pix {
		p.Pix[i] = value
	}
}
