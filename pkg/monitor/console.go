package monitor

import "log"

// Console prints each cycle the way the operator display does.
type Console struct{}

// Consume implements Sink.
func (Console) Consume(s Sample) error {
	log.Printf("Temp\t[°C]:\t%v", s.Temperatures)
	log.Printf("Speed\t[rpm]:\t%v", s.Speeds)
	if s.OxygenOK {
		log.Printf("Oxygen\t[mA]:\t%v", s.Oxygen)
	} else {
		log.Printf("Oxygen\t[mA]:\t-")
	}
	log.Printf("\tdt=%.3f [s]", s.Elapsed.Seconds())
	return nil
}
