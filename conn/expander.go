package conn

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
)

// PCA9554-compatible register map, shared by most 8-bit I²C GPIO expanders.
const (
	expanderInput    = 0x00
	expanderOutput   = 0x01
	expanderPolarity = 0x02
	expanderConfig   = 0x03
)

// ExpanderPin is a single output pin on a PCA9554-compatible I²C GPIO
// expander. It implements the driver's reset pin contract for boards that
// don't route the display's reset line to a host GPIO.
type ExpanderPin struct {
	c      *I2C
	pin    uint8
	output byte
}

// NewExpanderPin configures pin (0..7) on the expander as an output and
// returns it. The pin's current output level is preserved.
func NewExpanderPin(c *I2C, pin uint8) (*ExpanderPin, error) {
	if pin > 7 {
		return nil, fmt.Errorf("conn: expander pin %d out of range", pin)
	}

	p := &ExpanderPin{
		c:   c,
		pin: pin,
	}

	output, err := c.ReadRegister(expanderOutput)
	if err != nil {
		return nil, err
	}
	p.output = output

	config, err := c.ReadRegister(expanderConfig)
	if err != nil {
		return nil, err
	}
	if err := c.WriteRegister(expanderConfig, config&^(1<<pin)); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *ExpanderPin) String() string {
	return fmt.Sprintf("%s pin %d", p.c, p.pin)
}

// Out sets the pin's output level.
func (p *ExpanderPin) Out(level gpio.Level) error {
	output := p.output &^ (1 << p.pin)
	if level {
		output |= 1 << p.pin
	}
	if output == p.output {
		return nil
	}
	if err := p.c.WriteRegister(expanderOutput, output); err != nil {
		return err
	}
	p.output = output
	return nil
}
