package serial

import (
	"fmt"
	"io"
	"time"

	"github.com/tarm/serial"
)

// Port is the raw serial channel to the interface box.
// The abstraction exists so the driver can be exercised against
// scripted ports in tests.
type Port interface {
	io.ReadWriteCloser
}

// Line parameters of the interface box. The box firmware does not
// negotiate; these are hard requirements of the device.
const (
	Baud        = 19200
	DataBits    = 8
	ReadTimeout = 2 * time.Second
)

// Config identifies the device to open. All line parameters are
// fixed, only the device path varies.
type Config struct {
	// Device path, e.g. "/dev/ttyUSB0" or "COM1".
	Device string
}

// Open opens the serial device with the fixed line parameters
// (19200 8E1, 2s read timeout). It fails loudly: a bad device path,
// missing permissions or an absent box surface here and nowhere else.
func Open(conf Config) (Port, error) {
	port, err := serial.OpenPort(&serial.Config{
		Name:        conf.Device,
		Baud:        Baud,
		Parity:      serial.ParityEven,
		StopBits:    serial.Stop1,
		Size:        DataBits,
		ReadTimeout: ReadTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %v", conf.Device, err)
	}
	return port, nil
}
