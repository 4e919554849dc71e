// Command rm690b0-demo drives an RM690B0 AMOLED panel from a Linux host over
// spidev and scrolls a line of text across it.
package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"time"

	"github.com/golang/freetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"github.com/theembeddedrustacean/rm690b0"
	"github.com/theembeddedrustacean/rm690b0/conn"
	"github.com/theembeddedrustacean/rm690b0/pixel"
	"github.com/theembeddedrustacean/rm690b0/qspi"
)

func main() {
	widthFlag := flag.Int("width", rm690b0.DefaultWidth, "Display width")
	heightFlag := flag.Int("height", rm690b0.DefaultHeight, "Display height")
	spiBusFlag := flag.Int("spi-bus", 0, "SPI bus")
	spiDeviceFlag := flag.Int("spi-dev", 0, "SPI device")
	spiSpeedFlag := flag.Int("spi-speed", 40_000_000, "SPI clock speed in Hz")
	resetPinFlag := flag.String("reset", "GPIO13", "Reset GPIO pin")
	expanderAddrFlag := flag.Uint("expander-addr", 0, "I²C GPIO expander address for the reset line (0: use a host GPIO)")
	expanderPinFlag := flag.Uint("expander-pin", 0, "I²C GPIO expander pin for the reset line")
	i2cDeviceFlag := flag.Int("i2c-dev", -1, "I²C device number (default: use first available)")
	fontFlag := flag.String("font", "", "TTF font file, uses a builtin bitmap font when empty")
	textFlag := flag.String("text", "Hello, RM690B0!", "Text to display")
	flag.Parse()

	if _, err := host.Init(); err != nil {
		fatal(err)
	}

	spi, err := conn.OpenSPI(*spiBusFlag, *spiDeviceFlag)
	if err != nil {
		fatal(err)
	}
	defer spi.Close()
	if err = spi.SetMode(conn.SPIMode0); err != nil {
		fatal(err)
	}
	if err = spi.SetMaxSpeed(*spiSpeedFlag); err != nil {
		fatal(err)
	}
	fmt.Println("using connection:", spi)

	var reset rm690b0.ResetPin
	if *expanderAddrFlag > 0 {
		bus, err := conn.OpenI2C(*i2cDeviceFlag, uint8(*expanderAddrFlag))
		if err != nil {
			fatal(err)
		}
		defer bus.Close()
		if reset, err = conn.NewExpanderPin(bus, uint8(*expanderPinFlag)); err != nil {
			fatal(err)
		}
	} else {
		pin := gpioreg.ByName(*resetPinFlag)
		if pin == nil {
			fatal(fmt.Errorf("invalid reset pin %q", *resetPinFlag))
		}
		reset = pin
	}

	display, err := rm690b0.New(qspi.New(spi, nil), reset, &rm690b0.Config{
		Width:  *widthFlag,
		Height: *heightFlag,
		Mode:   rm690b0.RGB888,
	})
	if err != nil {
		fatal(err)
	}
	fmt.Println("using driver:", display)

	white := pixel.RGB888{R: 0xFF, G: 0xFF, B: 0xFF}
	bounds := display.Bounds()

	for {
		for x := 0; x <= bounds.Dx(); x += 10 {
			display.Clear()
			gradient(display)
			if *fontFlag != "" {
				if err = drawTTF(display, *fontFlag, *textFlag, x, bounds.Dy()/2); err != nil {
					fatal(err)
				}
			} else {
				drawer := font.Drawer{
					Dst:  display,
					Src:  image.NewUniform(white),
					Face: basicfont.Face7x13,
					Dot:  fixed.P(x, bounds.Dy()/2),
				}
				drawer.DrawString(*textFlag)
			}
			if err = display.Flush(); err != nil {
				fatal(err)
			}
			time.Sleep(50 * time.Millisecond)
		}
	}
}

// gradient fills the bottom quarter of the display with a horizontal color
// ramp.
func gradient(display *rm690b0.Driver) {
	bounds := display.Bounds()
	for y := bounds.Dy() * 3 / 4; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			display.Set(x, y, pixel.RGB888{
				R: uint8(x * 0xFF / bounds.Dx()),
				G: uint8(y * 0xFF / bounds.Dy()),
				B: 0x80,
			})
		}
	}
}

func drawTTF(display *rm690b0.Driver, path, text string, x, y int) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	f, err := freetype.ParseFont(data)
	if err != nil {
		return err
	}

	ctx := freetype.NewContext()
	ctx.SetFont(f)
	ctx.SetFontSize(24)
	ctx.SetDst(display)
	ctx.SetSrc(image.White)
	ctx.SetClip(display.Bounds())
	_, err = ctx.DrawString(text, freetype.Pt(x, y))
	return err
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}
