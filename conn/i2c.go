package conn

import (
	"fmt"
	"strconv"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
)

// I2C is a device on an I²C bus. The RM690B0 itself is not an I²C device;
// this is for boards that hang the display's reset line off an I²C GPIO
// expander, see ExpanderPin.
type I2C struct {
	bus  i2c.BusCloser
	conn conn.Conn
}

// NewI2C wraps an open bus and a device address.
func NewI2C(bus i2c.BusCloser, addr uint8) *I2C {
	return &I2C{
		bus:  bus,
		conn: &i2c.Dev{Bus: bus, Addr: uint16(addr)},
	}
}

// OpenI2C opens the numbered I²C bus, use -1 for the first available bus.
func OpenI2C(device int, addr uint8) (*I2C, error) {
	var (
		bus i2c.BusCloser
		err error
	)
	if device < 0 {
		bus, err = i2creg.Open("")
	} else {
		bus, err = i2creg.Open(strconv.FormatInt(int64(device), 10))
	}
	if err != nil {
		return nil, err
	}

	return NewI2C(bus, addr), nil
}

func (c *I2C) String() string {
	return fmt.Sprintf("I²C bus %s", c.bus)
}

func (c *I2C) Close() error {
	return c.bus.Close()
}

// ReadRegister reads one register.
func (c *I2C) ReadRegister(reg uint8) (byte, error) {
	var buf [1]byte
	if err := c.conn.Tx([]byte{reg}, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// WriteRegister writes one register.
func (c *I2C) WriteRegister(reg uint8, value byte) error {
	return c.conn.Tx([]byte{reg, value}, nil)
}
