package proto

import "strconv"

// BoxPrefix identifies the interface box and starts every request
// and response line.
const BoxPrefix = "IB"

// Operation mnemonics understood by the interface box.
const (
	// OpFirmware reads the firmware identification. Also used as
	// the readiness probe.
	OpFirmware = "RF"
	// OpTemperature reads one temperature channel (1..4).
	OpTemperature = "RT"
	// OpRotation reads one stirrer speed channel (1..6).
	OpRotation = "RR"
	// OpOxygen reads the dissolved-oxygen sensor current.
	OpOxygen = "RI"
	// OpErrorReset clears pending errors on the box.
	OpErrorReset = "EI"
)

// Request builds the command text for op without the line terminator.
// channel is 1-based and rendered as a bare decimal digit; 0 means
// the operation addresses no channel.
func Request(op string, channel int) string {
	if channel > 0 {
		return BoxPrefix + op + strconv.Itoa(channel)
	}
	return BoxPrefix + op
}
