package qspi

import (
	"bytes"
	"errors"
	"testing"

	"github.com/theembeddedrustacean/rm690b0"
)

type testWrite struct {
	mode    DataMode
	cmd     Command
	addr    Address
	dummy   int
	payload []byte
}

type testTransport struct {
	writes []testWrite
	err    error
}

func (t *testTransport) HalfDuplexWrite(mode DataMode, cmd Command, addr Address, dummy int, payload []byte) error {
	if t.err != nil {
		return t.err
	}
	t.writes = append(t.writes, testWrite{
		mode:    mode,
		cmd:     cmd,
		addr:    addr,
		dummy:   dummy,
		payload: append([]byte(nil), payload...),
	})
	return nil
}

func TestSendCommand(t *testing.T) {
	bus := &testTransport{}
	i := New(bus, nil)

	if err := i.SendCommand(rm690b0.SLPOUT); err != nil {
		t.Fatal(err)
	}
	if len(bus.writes) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(bus.writes))
	}

	w := bus.writes[0]
	if w.mode != Single {
		t.Errorf("expected single-lane payload mode, got %s", w.mode)
	}
	if w.cmd != Command8(ControlOpcode) {
		t.Errorf("expected control opcode, got %#+v", w.cmd)
	}
	if want := Address24(uint32(rm690b0.SLPOUT) << 8); w.addr != want {
		t.Errorf("expected address %#06x, got %#06x", want.Value, w.addr.Value)
	}
	if w.dummy != 0 {
		t.Errorf("expected no dummy cycles, got %d", w.dummy)
	}
	if len(w.payload) != 0 {
		t.Errorf("expected no payload, got %d bytes", len(w.payload))
	}
}

func TestSendCommandWithData(t *testing.T) {
	bus := &testTransport{}
	i := New(bus, nil)

	if err := i.SendCommandWithData(rm690b0.COLMOD, 0x77); err != nil {
		t.Fatal(err)
	}
	if len(bus.writes) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(bus.writes))
	}

	w := bus.writes[0]
	if want := Address24(uint32(rm690b0.COLMOD) << 8); w.addr != want {
		t.Errorf("expected address %#06x, got %#06x", want.Value, w.addr.Value)
	}
	if !bytes.Equal(w.payload, []byte{0x77}) {
		t.Errorf("expected payload 0x77, got %#v", w.payload)
	}
}

func TestSendPixelsChunking(t *testing.T) {
	const chunkSize = 8

	for _, test := range []struct {
		length int
		chunks int
	}{
		{1, 1},
		{7, 1},
		{8, 1},
		{9, 2},
		{16, 2},
		{20, 3},
	} {
		t.Run("", func(it *testing.T) {
			pixels := make([]byte, test.length)
			for i := range pixels {
				pixels[i] = byte(i)
			}

			bus := &testTransport{}
			i := New(bus, &Config{ChunkSize: chunkSize})
			if err := i.SendPixels(pixels); err != nil {
				it.Fatal(err)
			}

			if len(bus.writes) != test.chunks {
				it.Fatalf("expected %d chunks for %d bytes, got %d", test.chunks, test.length, len(bus.writes))
			}

			var sent []byte
			for index, w := range bus.writes {
				if w.mode != Quad {
					it.Errorf("chunk %d: expected quad-lane payload mode, got %s", index, w.mode)
				}
				if w.cmd != Command8(PixelOpcode) {
					it.Errorf("chunk %d: expected pixel opcode, got %#+v", index, w.cmd)
				}
				want := Address24(uint32(rm690b0.RAMWR) << 8)
				if index > 0 {
					want = Address24(uint32(rm690b0.RAMWRC) << 8)
				}
				if w.addr != want {
					it.Errorf("chunk %d: expected address %#06x, got %#06x", index, want.Value, w.addr.Value)
				}
				if len(w.payload) > chunkSize {
					it.Errorf("chunk %d: %d bytes exceeds the chunk size", index, len(w.payload))
				}
				sent = append(sent, w.payload...)
			}
			if !bytes.Equal(sent, pixels) {
				it.Error("expected the chunk payloads to concatenate to the original pixels")
			}
		})
	}
}

func TestSendPixelsDefaultChunkSize(t *testing.T) {
	bus := &testTransport{}
	i := New(bus, nil)

	if err := i.SendPixels(make([]byte, DefaultChunkSize+1)); err != nil {
		t.Fatal(err)
	}
	if len(bus.writes) != 2 {
		t.Fatalf("expected 2 chunks, got %d", len(bus.writes))
	}
	if len(bus.writes[0].payload) != DefaultChunkSize {
		t.Errorf("expected the first chunk to carry %d bytes, got %d", DefaultChunkSize, len(bus.writes[0].payload))
	}
	if len(bus.writes[1].payload) != 1 {
		t.Errorf("expected the second chunk to carry 1 byte, got %d", len(bus.writes[1].payload))
	}
}

func TestErrorPassthrough(t *testing.T) {
	errBus := errors.New("bus broke")
	bus := &testTransport{err: errBus}
	i := New(bus, nil)

	if err := i.SendCommand(rm690b0.NOP); !errors.Is(err, errBus) {
		t.Errorf("expected the transport error unchanged, got %v", err)
	}
	if err := i.SendCommandWithData(rm690b0.COLMOD, 0x77); !errors.Is(err, errBus) {
		t.Errorf("expected the transport error unchanged, got %v", err)
	}
	if err := i.SendPixels(make([]byte, 4)); !errors.Is(err, errBus) {
		t.Errorf("expected the transport error unchanged, got %v", err)
	}
}
