package kust

import (
	"sync"
	"time"

	"github.com/fermlab/kust.go/pkg/kust/serial"
)

// Transport owns the serial channel to one interface box and performs
// blocking request/response exchanges. The protocol carries no request
// identifiers, so at most one exchange may be in flight; the lock
// keeps correlation intact even for careless concurrent callers.
type Transport struct {
	conf serial.Config
	open func(serial.Config) (serial.Port, error)

	lock sync.Mutex
	port serial.Port
}

// NewTransport creates a Transport that opens the port lazily on
// first use.
func NewTransport(conf serial.Config) *Transport {
	return &Transport{conf: conf, open: serial.Open}
}

// Dial creates a Transport and opens the device eagerly, so that a
// bad port name or a missing box fails loudly up front instead of on
// the first exchange.
func Dial(device string) (*Transport, error) {
	t := NewTransport(serial.Config{Device: device})
	t.lock.Lock()
	defer t.lock.Unlock()
	if err := t.ensureOpen(); err != nil {
		return nil, err
	}
	return t, nil
}

// Exchange writes cmd terminated by CRLF and blocks for a single
// response line. Any I/O error or timeout is returned as a
// *TransportError and tears the port down, so the next exchange
// starts with a fresh open.
func (t *Transport) Exchange(cmd string) (string, error) {
	t.lock.Lock()
	defer t.lock.Unlock()
	if err := t.ensureOpen(); err != nil {
		return "", &TransportError{Op: "open", Err: err}
	}
	if _, err := t.port.Write([]byte(cmd + "\r\n")); err != nil {
		t.drop()
		return "", &TransportError{Op: "write", Err: err}
	}
	line, err := t.readLine()
	if err != nil {
		t.drop()
		return "", err
	}
	return line, nil
}

// ensureOpen opens the port only if it is not already open. Callers
// hold the lock.
func (t *Transport) ensureOpen() error {
	if t.port != nil {
		return nil
	}
	port, err := t.open(t.conf)
	if err != nil {
		return err
	}
	t.port = port
	return nil
}

// drop closes and forgets the port so the next exchange reopens it.
func (t *Transport) drop() {
	if t.port != nil {
		t.port.Close()
		t.port = nil
	}
}

// readLine assembles one LF terminated line byte by byte, discarding
// the CR. The port read timeout bounds each read; the deadline bounds
// the whole line. A zero-length read is how the port reports an
// expired timeout.
func (t *Transport) readLine() (string, error) {
	var line []byte
	buf := make([]byte, 1)
	deadline := time.Now().Add(serial.ReadTimeout)
	for {
		n, err := t.port.Read(buf)
		if err != nil {
			return "", &TransportError{Op: "read", Err: err}
		}
		if n == 0 || time.Now().After(deadline) {
			return "", &TransportError{Op: "read"}
		}
		switch buf[0] {
		case '\n':
			return string(line), nil
		case '\r':
		default:
			line = append(line, buf[0])
		}
	}
}
