package kust

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fermlab/kust.go/pkg/kust/serial"
)

// scriptPort plays back a canned response and records what the
// transport wrote.
type scriptPort struct {
	wrote    bytes.Buffer
	resp     []byte
	writeErr error
	readErr  error
	closed   bool
}

func (p *scriptPort) Write(b []byte) (int, error) {
	if p.writeErr != nil {
		return 0, p.writeErr
	}
	p.wrote.Write(b)
	return len(b), nil
}

func (p *scriptPort) Read(b []byte) (int, error) {
	if p.readErr != nil {
		return 0, p.readErr
	}
	if len(p.resp) == 0 {
		// expired port timeout reads as zero bytes
		return 0, nil
	}
	b[0] = p.resp[0]
	p.resp = p.resp[1:]
	return 1, nil
}

func (p *scriptPort) Close() error {
	p.closed = true
	return nil
}

func newTestTransport(port *scriptPort) (*Transport, *int) {
	t := NewTransport(serial.Config{Device: "test"})
	opens := 0
	t.open = func(serial.Config) (serial.Port, error) {
		opens++
		return port, nil
	}
	return t, &opens
}

func TestTransportExchange(t *testing.T) {
	port := &scriptPort{resp: []byte("IBRTer00+00215\r\n")}
	tr, opens := newTestTransport(port)

	line, err := tr.Exchange("IBRT2")
	require.NoError(t, err)
	require.Equal(t, "IBRTer00+00215", line)
	require.Equal(t, "IBRT2\r\n", port.wrote.String())
	require.Equal(t, 1, *opens)
}

func TestTransportLazyOpen(t *testing.T) {
	port := &scriptPort{resp: []byte("IBRFer00 V1.07\n")}
	tr, opens := newTestTransport(port)
	require.Equal(t, 0, *opens)

	_, err := tr.Exchange("IBRF")
	require.NoError(t, err)
	require.Equal(t, 1, *opens)

	// port stays open across exchanges
	port.resp = []byte("IBRFer00 V1.07\n")
	_, err = tr.Exchange("IBRF")
	require.NoError(t, err)
	require.Equal(t, 1, *opens)
}

func TestTransportTimeout(t *testing.T) {
	port := &scriptPort{}
	tr, opens := newTestTransport(port)

	_, err := tr.Exchange("IBRI")
	require.Error(t, err)
	var terr *TransportError
	require.True(t, errors.As(err, &terr))
	require.Equal(t, "read", terr.Op)
	require.True(t, port.closed)

	// the next exchange starts over with a fresh open
	port.closed = false
	port.resp = []byte("IBRIer00+04100\n")
	line, err := tr.Exchange("IBRI")
	require.NoError(t, err)
	require.Equal(t, "IBRIer00+04100", line)
	require.Equal(t, 2, *opens)
}

func TestTransportWriteError(t *testing.T) {
	port := &scriptPort{writeErr: errors.New("unplugged")}
	tr, _ := newTestTransport(port)

	_, err := tr.Exchange("IBEI")
	var terr *TransportError
	require.True(t, errors.As(err, &terr))
	require.Equal(t, "write", terr.Op)
	require.True(t, port.closed)
}

func TestTransportReadError(t *testing.T) {
	port := &scriptPort{readErr: errors.New("io failure")}
	tr, _ := newTestTransport(port)

	_, err := tr.Exchange("IBRT1")
	var terr *TransportError
	require.True(t, errors.As(err, &terr))
	require.Equal(t, "read", terr.Op)
	require.EqualError(t, terr.Unwrap(), "io failure")
}

func TestTransportOpenError(t *testing.T) {
	tr := NewTransport(serial.Config{Device: "test"})
	tr.open = func(serial.Config) (serial.Port, error) {
		return nil, errors.New("no such device")
	}
	_, err := tr.Exchange("IBRF")
	var terr *TransportError
	require.True(t, errors.As(err, &terr))
	require.Equal(t, "open", terr.Op)
}

func TestDialUnreachableDevice(t *testing.T) {
	_, err := Dial("/dev/kust-no-such-device")
	require.Error(t, err)
}
