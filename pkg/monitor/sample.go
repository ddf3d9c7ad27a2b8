// Package monitor polls the interface box periodically and fans each
// complete sample out to sinks: console, spreadsheet, MQTT.
package monitor

import "time"

// Sample is one complete poll cycle of the interface box. A failed
// measurement set stays empty; the cycle itself is still delivered so
// sinks can decide to substitute defaults or skip the row.
type Sample struct {
	Time         time.Time     `json:"time"`
	Temperatures []float64     `json:"temperatures_c,omitempty"`
	Speeds       []int         `json:"speeds_rpm,omitempty"`
	Oxygen       float64       `json:"oxygen_ma"`
	OxygenOK     bool          `json:"oxygen_ok"`
	Elapsed      time.Duration `json:"elapsed_ns"`
}

// Degraded reports whether any measurement set collapsed this cycle.
func (s Sample) Degraded() bool {
	return len(s.Temperatures) == 0 || len(s.Speeds) == 0 || !s.OxygenOK
}
