// Package qspi lowers the RM690B0 command protocol onto a half-duplex
// quad-capable serial transport.
//
// The controller understands three operations: a bare command, a command with
// parameter data, and a pixel burst. Commands travel single-lane with opcode
// 0x02 and the command byte shifted into the high byte of a 24-bit address.
// Pixel bursts travel quad-lane with opcode 0x32 and are split into chunks no
// larger than the transport's single-transaction ceiling; the first chunk is
// addressed at RAMWR, every following chunk at RAMWRC so the controller
// treats them as one continuous memory write.
package qspi

import (
	"github.com/theembeddedrustacean/rm690b0"
)

// DataMode is the number of data lanes used for a transaction phase.
type DataMode uint8

// Supported data modes.
const (
	Single DataMode = iota
	Dual
	Quad
)

func (m DataMode) String() string {
	switch m {
	case Single:
		return "single"
	case Dual:
		return "dual"
	case Quad:
		return "quad"
	default:
		return "invalid"
	}
}

// Command is the opcode phase of a half-duplex transaction.
type Command struct {
	Value uint16
	Bits  int
	Mode  DataMode
}

// Command8 is an 8-bit single-lane command opcode.
func Command8(value byte) Command {
	return Command{Value: uint16(value), Bits: 8, Mode: Single}
}

// Address is the address phase of a half-duplex transaction.
type Address struct {
	Value uint32
	Bits  int
	Mode  DataMode
}

// Address24 is a 24-bit single-lane address.
func Address24(value uint32) Address {
	return Address{Value: value, Bits: 24, Mode: Single}
}

// Transport performs one half-duplex write consisting of an opcode, an
// address and a payload. The dummy cycle count is unused by the RM690B0
// protocol and always zero.
type Transport interface {
	HalfDuplexWrite(mode DataMode, cmd Command, addr Address, dummy int, payload []byte) error
}

// QSPI opcodes understood by the RM690B0.
const (
	ControlOpcode = 0x02 // single-lane command/parameter write
	PixelOpcode   = 0x32 // quad-lane pixel write
)

// DefaultChunkSize is the largest pixel payload sent in one transaction. It
// matches the DMA buffer size used on the LilyGo T4-S3.
const DefaultChunkSize = 16380

// Config is the interface configuration.
type Config struct {
	// ChunkSize caps the payload of a single pixel transaction. Defaults to
	// DefaultChunkSize.
	ChunkSize int
}

// Interface implements the rm690b0 controller interface over a Transport.
type Interface struct {
	t         Transport
	chunkSize int
}

// New returns an Interface over the given transport. config may be nil to use
// defaults.
func New(t Transport, config *Config) *Interface {
	chunkSize := DefaultChunkSize
	if config != nil && config.ChunkSize > 0 {
		chunkSize = config.ChunkSize
	}
	return &Interface{
		t:         t,
		chunkSize: chunkSize,
	}
}

// SendCommand sends a bare command byte.
func (i *Interface) SendCommand(cmd byte) error {
	return i.t.HalfDuplexWrite(
		Single,
		Command8(ControlOpcode),
		Address24(uint32(cmd)<<8),
		0,
		nil,
	)
}

// SendCommandWithData sends a command byte followed by its parameter data.
func (i *Interface) SendCommandWithData(cmd byte, data ...byte) error {
	return i.t.HalfDuplexWrite(
		Single,
		Command8(ControlOpcode),
		Address24(uint32(cmd)<<8),
		0,
		data,
	)
}

// SendPixels streams pixel data into the controller's memory. Payloads larger
// than the chunk size are split; the split is mandatory, transports with a
// bounded transaction length would fail or truncate otherwise.
func (i *Interface) SendPixels(pixels []byte) error {
	const (
		ramwrAddr  = uint32(rm690b0.RAMWR) << 8
		ramwrcAddr = uint32(rm690b0.RAMWRC) << 8
	)

	for index := 0; len(pixels) > 0; index++ {
		chunk := pixels
		if len(chunk) > i.chunkSize {
			chunk = chunk[:i.chunkSize]
		}
		pixels = pixels[len(chunk):]

		addr := ramwrAddr
		if index > 0 {
			addr = ramwrcAddr
		}
		if err := i.t.HalfDuplexWrite(
			Quad,
			Command8(PixelOpcode),
			Address24(addr),
			0,
			chunk,
		); err != nil {
			return err
		}
	}
	return nil
}
