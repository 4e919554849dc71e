package conn

import (
	"testing"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/i2c/i2ctest"
)

func TestExpanderPin(t *testing.T) {
	const addr = 0x20

	bus := &i2ctest.Playback{
		Ops: []i2ctest.IO{
			// NewExpanderPin: read output shadow, configure pin 0 as output.
			{Addr: addr, W: []byte{expanderOutput}, R: []byte{0xFF}},
			{Addr: addr, W: []byte{expanderConfig}, R: []byte{0xFF}},
			{Addr: addr, W: []byte{expanderConfig, 0xFE}, R: nil},
			// Out(Low), then Out(High).
			{Addr: addr, W: []byte{expanderOutput, 0xFE}, R: nil},
			{Addr: addr, W: []byte{expanderOutput, 0xFF}, R: nil},
		},
	}

	c := NewI2C(bus, addr)
	pin, err := NewExpanderPin(c, 0)
	if err != nil {
		t.Fatal(err)
	}

	if err = pin.Out(gpio.Low); err != nil {
		t.Fatal(err)
	}
	// Repeating the level is a no-op and must not touch the bus.
	if err = pin.Out(gpio.Low); err != nil {
		t.Fatal(err)
	}
	if err = pin.Out(gpio.High); err != nil {
		t.Fatal(err)
	}

	if err = c.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestExpanderPinRange(t *testing.T) {
	c := NewI2C(&i2ctest.Playback{}, 0x20)
	if _, err := NewExpanderPin(c, 8); err == nil {
		t.Error("expected pin 8 to be rejected")
	}
}
