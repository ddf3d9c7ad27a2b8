// Package kust drives the bioreactor interface box ("Kust",
// Kommunikation & Steuerung): four temperature channels, six stirrer
// speeds, one dissolved-oxygen sensor current and the firmware
// identification, polled over a serial line.
package kust

import (
	"strconv"

	"github.com/golang/glog"

	"github.com/fermlab/kust.go/pkg/kust/proto"
)

// Channel counts of the interface box.
const (
	TemperatureChannels = 4
	StirrerChannels     = 6
)

// DiagFunc receives driver diagnostics. Diagnostics are best effort:
// they report degraded cycles and protocol mismatches but carry no
// delivery guarantee, and failures stay non-fatal either way.
type DiagFunc func(format string, args ...interface{})

// Config configures a Box at construction. There is no process-wide
// debug state; verbosity is an explicit per-driver choice.
type Config struct {
	// Diag is the diagnostics sink. Nil routes to glog at V(1).
	Diag DiagFunc
}

// exchanger is the transport seen by the driver.
type exchanger interface {
	Exchange(cmd string) (string, error)
}

// Box is the protocol driver for one interface box. It owns its
// Transport exclusively and issues strictly sequential exchanges.
type Box struct {
	diag DiagFunc
	tr   exchanger
}

// NewBox creates an unconnected driver.
func NewBox(conf Config) *Box {
	diag := conf.Diag
	if diag == nil {
		diag = func(format string, args ...interface{}) {
			glog.V(1).Infof(format, args...)
		}
	}
	return &Box{diag: diag}
}

// Connect opens the serial device. A failure is reported through the
// diagnostics sink and the false return; it never propagates as a
// fault. The caller decides whether a refused connection is fatal.
func (b *Box) Connect(device string) bool {
	tr, err := Dial(device)
	if err != nil {
		b.diag("connect %s: %v", device, err)
		return false
	}
	b.tr = tr
	return true
}

// IsReady reports whether the interface box answers at all. The error
// code is deliberately not inspected: a box with pending errors still
// counts as present. Without a connection it returns false and
// performs no I/O.
func (b *Box) IsReady() bool {
	if b.tr == nil {
		b.diag("%v", ErrNotConnected)
		return false
	}
	return b.request(proto.OpFirmware, 0).Command == proto.OpFirmware
}

// FirmwareVersion returns the firmware identification string, empty
// when the box cannot be read.
func (b *Box) FirmwareVersion() string {
	resp := b.request(proto.OpFirmware, 0)
	if !b.check(resp, proto.OpFirmware) {
		return ""
	}
	return resp.Value
}

// Temperatures reads all four temperature channels in °C (raw value
// divided by 10). The set is all-or-nothing: the first invalid
// channel aborts the cycle and discards channels already read.
func (b *Box) Temperatures() []float64 {
	t := make([]float64, TemperatureChannels)
	for i := range t {
		resp := b.request(proto.OpTemperature, i+1)
		if !b.check(resp, proto.OpTemperature) {
			return nil
		}
		raw, err := strconv.ParseFloat(resp.Value, 64)
		if err != nil {
			b.diag("RT%d: bad value %q", i+1, resp.Value)
			return nil
		}
		t[i] = raw / 10
	}
	return t
}

// RotationalSpeeds reads all six stirrer speeds in rpm (raw value,
// no scaling). All-or-nothing like Temperatures.
func (b *Box) RotationalSpeeds() []int {
	s := make([]int, StirrerChannels)
	for i := range s {
		resp := b.request(proto.OpRotation, i+1)
		if !b.check(resp, proto.OpRotation) {
			return nil
		}
		raw, err := strconv.Atoi(resp.Value)
		if err != nil {
			b.diag("RR%d: bad value %q", i+1, resp.Value)
			return nil
		}
		s[i] = raw
	}
	return s
}

// OxygenCurrent reads the dissolved-oxygen sensor current in mA (raw
// value divided by 1000). ok is false on any failure.
func (b *Box) OxygenCurrent() (float64, bool) {
	resp := b.request(proto.OpOxygen, 0)
	if !b.check(resp, proto.OpOxygen) {
		return 0, false
	}
	raw, err := strconv.ParseFloat(resp.Value, 64)
	if err != nil {
		b.diag("RI: bad value %q", resp.Value)
		return 0, false
	}
	return raw / 1000, true
}

// ResetErrors clears pending errors on the box. Fire and forget: a
// refusal only produces a diagnostic.
func (b *Box) ResetErrors() {
	b.check(b.request(proto.OpErrorReset, 0), proto.OpErrorReset)
}

// request performs one exchange and decodes the line. Transport
// failures surface as the sentinel response, exactly like a garbled
// line would.
func (b *Box) request(op string, channel int) proto.Response {
	if b.tr == nil {
		b.diag("%v", ErrNotConnected)
		return proto.Response{}
	}
	cmd := proto.Request(op, channel)
	line, err := b.tr.Exchange(cmd)
	if err != nil {
		b.diag("%s: %v", cmd, err)
		return proto.Response{}
	}
	return proto.Parse(line)
}

// check validates resp against the expected mnemonic and reports
// mismatches to the diagnostics sink.
func (b *Box) check(resp proto.Response, op string) bool {
	if !resp.OK(op) {
		b.diag("%s: unexpected response %+v", op, resp)
		return false
	}
	return true
}
