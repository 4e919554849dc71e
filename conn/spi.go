package conn

import (
	"fmt"
	"os"

	"github.com/theembeddedrustacean/rm690b0/internal/ioctl"
	"github.com/theembeddedrustacean/rm690b0/qspi"
)

const spiDevPath = "/dev/spidev"

// Definitions from <spi/spidev.h>
const (
	spiCPHA = 0x01
	spiCPOL = 0x02
)

type SPIMode uint8

const (
	SPIMode0 SPIMode = (0 | 0)             //nolint:staticcheck
	SPIMode1 SPIMode = (0 | spiCPHA)       //nolint:staticcheck
	SPIMode2 SPIMode = (spiCPOL | 0)       //nolint:staticcheck
	SPIMode3 SPIMode = (spiCPOL | spiCPHA) //nolint:staticcheck
)

const (
	spiIOCMode       = 0x6b01
	spiIOCMaxSpeedHz = 0x6b04
)

// SPI implements the qspi transport over the Linux spidev interface.
//
// spidev transfers run on a single data lane; lane switching for the quad
// pixel phase is the job of hosts with a native QSPI peripheral. Boards
// strapped for single-lane operation run the full protocol over spidev
// unchanged, since the opcode byte tells the controller which lane mode the
// payload uses.
type SPI struct {
	f          *os.File
	fd         uintptr
	mode       SPIMode
	maxSpeedHz uint32
}

// OpenSPI opens the numbered spi bus with the numbered device. The device often
// corresponds to the CS pin for that bus.
func OpenSPI(bus, device int) (*SPI, error) {
	spidev := fmt.Sprintf("%s%d.%d", spiDevPath, bus, device)
	f, err := os.OpenFile(spidev, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}

	c := &SPI{
		f:  f,
		fd: f.Fd(),
	}
	if err = ioctl.Do(c.fd, ioctl.Pointer(ioctl.Read, &c.mode, spiIOCMode), &c.mode); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err = ioctl.Do(c.fd, ioctl.Pointer(ioctl.Read, &c.maxSpeedHz, spiIOCMaxSpeedHz), &c.maxSpeedHz); err != nil {
		_ = f.Close()
		return nil, err
	}

	return c, nil
}

func (c *SPI) Close() error {
	return c.f.Close()
}

func (c *SPI) String() string {
	return fmt.Sprintf("SPI mode=%d max speed=%dHz", c.mode, c.maxSpeedHz)
}

func (c *SPI) Mode() SPIMode {
	return c.mode
}

func (c *SPI) SetMode(mode SPIMode) error {
	mode &= 0x0f

	if err := ioctl.Do(c.fd, ioctl.Pointer(ioctl.Write, &mode, spiIOCMode), &mode); err != nil {
		return err
	}

	var test SPIMode
	if err := ioctl.Do(c.fd, ioctl.Pointer(ioctl.Read, &test, spiIOCMode), &test); err != nil {
		return err
	}

	if test != mode {
		return fmt.Errorf("conn: SPI attempted to set mode %#02x, but mode %#02x is in use", mode, test)
	}

	c.mode = mode
	return nil
}

func (c *SPI) MaxSpeed() int {
	return int(c.maxSpeedHz)
}

func (c *SPI) SetMaxSpeed(v int) error {
	if v < 0 {
		return nil
	}

	u := uint32(v)
	if c.maxSpeedHz != u {
		if err := ioctl.Do(c.fd, ioctl.Pointer(ioctl.Write, &u, spiIOCMaxSpeedHz), &u); err != nil {
			return err
		}
		c.maxSpeedHz = u
	}

	return nil
}

func (c *SPI) Write(b []byte) (n int, err error) {
	return c.f.Write(b)
}

// HalfDuplexWrite frames one transaction as opcode, address and payload bytes
// in a single write, so chip select stays asserted for the whole exchange.
func (c *SPI) HalfDuplexWrite(mode qspi.DataMode, cmd qspi.Command, addr qspi.Address, dummy int, payload []byte) error {
	if dummy != 0 {
		return fmt.Errorf("conn: SPI does not support dummy cycles")
	}
	if cmd.Bits%8 != 0 || addr.Bits%8 != 0 {
		return fmt.Errorf("conn: SPI requires byte-aligned command and address widths")
	}

	buf := make([]byte, 0, cmd.Bits/8+addr.Bits/8+len(payload))
	for shift := cmd.Bits - 8; shift >= 0; shift -= 8 {
		buf = append(buf, byte(cmd.Value>>shift))
	}
	for shift := addr.Bits - 8; shift >= 0; shift -= 8 {
		buf = append(buf, byte(addr.Value>>shift))
	}
	buf = append(buf, payload...)

	_, err := c.Write(buf)
	return err
}
