// Package rm690b0 implements a driver for the Raydium RM690B0 AMOLED display
// controller.
//
// The driver owns an in-memory framebuffer implementing [draw.Image]; drawing
// into it performs no hardware I/O. Flush and PartialFlush write the
// framebuffer (or a rectangle of it) to the controller's memory through a
// controller interface such as the qspi package.
//
// The RM690B0 is wired up differently per board (QSPI or SPI, reset on a GPIO
// or behind an I²C GPIO expander), so both the interface and the reset line
// are abstract; the conn package provides Linux implementations.
package rm690b0

import (
	"fmt"
	"image"
	"log"
	"os"
	"time"

	"periph.io/x/conn/v3/gpio"

	"github.com/theembeddedrustacean/rm690b0/pixel"
)

var debug bool

func init() {
	debug = os.Getenv("RM690B0_DEBUG") != ""
}

// Interface is the controller communication interface (QSPI, SPI, etc.).
type Interface interface {
	// SendCommand sends a command byte to the display.
	SendCommand(cmd byte) error

	// SendCommandWithData sends a command byte with parameter data.
	SendCommandWithData(cmd byte, data ...byte) error

	// SendPixels sends pixel data into the controller memory.
	SendPixels(pixels []byte) error
}

// ResetPin drives the controller's hardware reset line. gpio.PinOut satisfies
// this interface, as does conn.ExpanderPin for boards that route the line
// through an I²C GPIO expander.
type ResetPin interface {
	Out(l gpio.Level) error
}

// Defaults for the LilyGo T4-S3 AMOLED panel.
const (
	DefaultWidth  = 450
	DefaultHeight = 600
)

// DefaultMaxColumn is the RM690B0's internal column addressing ceiling. The
// controller addresses a fixed 480-column memory regardless of the attached
// panel width.
const DefaultMaxColumn = 480

// Rotation defines pixel rotation.
type Rotation uint8

// Supported rotations.
const (
	NoRotation Rotation = iota
	Rotate90            // Rotate 90° clock wise
	Rotate180           // Rotate 180°
	Rotate270           // Rotate 270° clock wise
)

func (r Rotation) String() string {
	switch r % 4 {
	case Rotate90:
		return "90°"
	case Rotate180:
		return "180°"
	case Rotate270:
		return "270°"
	default:
		return "0°"
	}
}

// Config is the display configuration.
type Config struct {
	// Width of the panel in pixels.
	Width int

	// Height of the panel in pixels.
	Height int

	// Mode is the interface pixel format.
	Mode ColorMode

	// MaxColumn is the controller's column addressing ceiling, which is
	// distinct from the panel width. Defaults to DefaultMaxColumn.
	MaxColumn int

	// Framebuffer optionally provides pre-allocated backing storage of
	// exactly FramebufferSize bytes. If nil, the driver allocates its own.
	Framebuffer []byte

	// Delay blocks for the given duration during reset and initialization
	// settle times. Defaults to time.Sleep.
	Delay func(time.Duration)
}

// Driver drives one RM690B0 display. It exclusively owns the controller
// interface, the reset line and the framebuffer; concurrent use is not
// supported.
type Driver struct {
	pixel.Image
	c         Interface
	reset     ResetPin
	mode      ColorMode
	width     int
	height    int
	maxColumn int
	rotation  Rotation
	sleep     func(time.Duration)
}

// New creates a driver, hard-resets the controller and sends the
// initialization sequence. There is no usable driver in a failed or
// partially-initialized state: any reset or interface error aborts
// construction.
func New(c Interface, reset ResetPin, config *Config) (*Driver, error) {
	if config == nil {
		config = &Config{}
	}
	if config.Width == 0 {
		config.Width = DefaultWidth
	}
	if config.Height == 0 {
		config.Height = DefaultHeight
	}
	if config.MaxColumn == 0 {
		config.MaxColumn = DefaultMaxColumn
	}

	if config.Width < 0 || config.Height < 0 {
		return nil, &InvalidConfigurationError{Reason: fmt.Sprintf("invalid size %dx%d", config.Width, config.Height)}
	}
	if config.Width > config.MaxColumn {
		return nil, &InvalidConfigurationError{Reason: fmt.Sprintf("width %d exceeds %d addressable columns", config.Width, config.MaxColumn)}
	}
	if config.Mode.BytesPerPixel() == 0 {
		return nil, &InvalidConfigurationError{Reason: "invalid color mode"}
	}

	d := &Driver{
		c:         c,
		reset:     reset,
		mode:      config.Mode,
		width:     config.Width,
		height:    config.Height,
		maxColumn: config.MaxColumn,
		sleep:     config.Delay,
	}
	if d.sleep == nil {
		d.sleep = time.Sleep
	}

	if err := d.initFramebuffer(config); err != nil {
		return nil, err
	}
	if err := d.HardReset(); err != nil {
		return nil, err
	}
	if err := d.initialize(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Driver) String() string {
	return fmt.Sprintf("RM690B0 %dx%d %s", d.width, d.height, d.mode)
}

func (d *Driver) initFramebuffer(config *Config) error {
	if config.Framebuffer != nil {
		size := FramebufferSize(image.Pt(config.Width, config.Height), config.Mode)
		if len(config.Framebuffer) != size {
			return &InvalidConfigurationError{Reason: fmt.Sprintf("framebuffer is %d bytes, need %d", len(config.Framebuffer), size)}
		}
	}

	switch config.Mode {
	case RGB565:
		i := pixel.NewRGB565Image(config.Width, config.Height)
		if config.Framebuffer != nil {
			i.Pix = config.Framebuffer
		}
		d.Image = i
	case RGB888:
		i := pixel.NewRGB888Image(config.Width, config.Height)
		if config.Framebuffer != nil {
			i.Pix = config.Framebuffer
		}
		d.Image = i
	case RGB666:
		i := pixel.NewRGB666Image(config.Width, config.Height)
		if config.Framebuffer != nil {
			i.Pix = config.Framebuffer
		}
		d.Image = i
	case Gray8:
		i := pixel.NewGray8Image(config.Width, config.Height)
		if config.Framebuffer != nil {
			i.Pix = config.Framebuffer
		}
		d.Image = i
	}
	return nil
}

// HardReset performs the datasheet reset sequence on the reset line.
func (d *Driver) HardReset() error {
	if err := d.reset.Out(gpio.Low); err != nil {
		return resetError(err)
	}
	d.sleep(20 * time.Millisecond)
	if err := d.reset.Out(gpio.High); err != nil {
		return resetError(err)
	}
	d.sleep(150 * time.Millisecond)
	return nil
}

// initialize sends the power-up command sequence. The first error aborts the
// remaining steps.
func (d *Driver) initialize() (err error) {
	if debug {
		log.Printf("rm690b0: initializing %s", d)
	}

	if err = d.command(SLPOUT); err != nil { // Sleep Out
		return
	}
	d.sleep(120 * time.Millisecond)

	// Manufacturer-specific unlock and tuning registers. The sequence is
	// order-sensitive and must be sent exactly as listed.
	if err = d.commands(
		[]byte{0xFE, 0x20},
		[]byte{0x26, 0x0A},
		[]byte{0x24, 0x80},
		[]byte{0x5A, 0x51},
		[]byte{0x5B, 0x2E},
		[]byte{0xFE, 0x00},
	); err != nil {
		return
	}

	if err = d.command(COLMOD, d.mode.colmod()); err != nil { // Interface Pixel Format
		return
	}

	if err = d.command(TEON, 0x00); err != nil { // TE pulse on v-blank only
		return
	}

	if err = d.command(DISPON); err != nil { // Display On
		return
	}
	d.sleep(20 * time.Millisecond)

	// Display brightness to maximum
	return d.command(WRDISBV, 0xFF)
}

func (d *Driver) command(cmd byte, data ...byte) error {
	if len(data) == 0 {
		return interfaceError(d.c.SendCommand(cmd))
	}
	return interfaceError(d.c.SendCommandWithData(cmd, data...))
}

func (d *Driver) commands(commands ...[]byte) (err error) {
	for _, command := range commands {
		if err = d.command(command[0], command[1:]...); err != nil {
			return
		}
	}
	return
}

// Sleep toggles low-power sleep mode.
func (d *Driver) Sleep(sleep bool) error {
	var command byte = SLPOUT
	if sleep {
		command = SLPIN
	}
	if err := d.command(command); err != nil {
		return err
	}
	d.sleep(5 * time.Millisecond)
	return nil
}

// Show toggles the display panel on or off.
func (d *Driver) Show(show bool) error {
	var command byte = DISPOFF
	if show {
		command = DISPON
	}
	return d.command(command)
}

// SetMADCTR sets the Memory Data Access Control register.
func (d *Driver) SetMADCTR(value byte) error {
	return d.command(MADCTR, value)
}

// SetRotation adjusts the pixel rotation via MADCTR.
func (d *Driver) SetRotation(rotation Rotation) error {
	rotation &= 3

	var madctr byte
	switch rotation {
	case NoRotation:
		madctr = 0
	case Rotate90:
		madctr = MADCTRColumnOrder | MADCTRPageColumn
	case Rotate180:
		madctr = MADCTRColumnOrder | MADCTRPageOrder
	case Rotate270:
		madctr = MADCTRPageOrder | MADCTRPageColumn
	}

	d.rotation = rotation
	return d.SetMADCTR(madctr)
}

// SetBrightness sets the display brightness (0x00 to 0xFF).
func (d *Driver) SetBrightness(value uint8) error {
	return d.command(WRDISBV, value)
}

func (d *Driver) validateWindow(x0, y0, x1, y1 int) error {
	if x1 < x0 || y1 < y0 || x0 < 0 || y0 < 0 || x1 >= d.maxColumn || y1 >= d.height {
		return &InvalidConfigurationError{Reason: fmt.Sprintf("invalid window (%d,%d)-(%d,%d)", x0, y0, x1, y1)}
	}
	return nil
}

// SetWindow sets the active drawing window on the display RAM. Bounds are
// inclusive.
func (d *Driver) SetWindow(x0, y0, x1, y1 int) error {
	if err := d.validateWindow(x0, y0, x1, y1); err != nil {
		return err
	}
	return d.commands(
		[]byte{CASET, byte(x0 >> 8), byte(x0), byte(x1 >> 8), byte(x1)}, // Column address
		[]byte{RASET, byte(y0 >> 8), byte(y0), byte(y1 >> 8), byte(y1)}, // Row address
	)
}

// Flush writes the whole framebuffer to the display RAM. The controller's
// auto-increment within a full-panel window matches the framebuffer's
// row-major layout, so the buffer is sent as-is.
func (d *Driver) Flush() error {
	if err := d.SetWindow(0, 0, d.width-1, d.height-1); err != nil {
		return err
	}
	return interfaceError(d.c.SendPixels(d.Image.Bytes()))
}

// PartialFlush writes the given rectangle of the framebuffer to the display
// RAM. Bounds are inclusive. The rectangle's rows are strided in the
// framebuffer, so they are gathered into one packed buffer before sending;
// a row that would fall outside the framebuffer is an error, detected before
// any transaction is issued.
func (d *Driver) PartialFlush(x0, y0, x1, y1 int) error {
	if err := d.validateWindow(x0, y0, x1, y1); err != nil {
		return err
	}

	var (
		fb            = d.Image.Bytes()
		bytesPerPixel = d.mode.BytesPerPixel()
		stride        = d.width * bytesPerPixel
		rowLen        = (x1 - x0 + 1) * bytesPerPixel
		packed        = make([]byte, 0, (y1-y0+1)*rowLen)
	)
	for y := y0; y <= y1; y++ {
		offset := y*stride + x0*bytesPerPixel
		if offset >= len(fb) || offset+rowLen > len(fb) {
			return &InvalidConfigurationError{Reason: "framebuffer slice out of bounds"}
		}
		packed = append(packed, fb[offset:offset+rowLen]...)
	}

	if debug {
		log.Printf("rm690b0: partial flush (%d,%d)-(%d,%d), %d bytes", x0, y0, x1, y1, len(packed))
	}

	if err := d.SetWindow(x0, y0, x1, y1); err != nil {
		return err
	}
	return interfaceError(d.c.SendPixels(packed))
}
