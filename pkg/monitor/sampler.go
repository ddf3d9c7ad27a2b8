package monitor

import (
	"context"
	"io"
	"time"

	"github.com/golang/glog"

	"github.com/fermlab/kust.go/pkg/framework"
)

// Source produces the measurement sets of one poll cycle. *kust.Box
// implements it.
type Source interface {
	Temperatures() []float64
	RotationalSpeeds() []int
	OxygenCurrent() (float64, bool)
}

// Sink consumes samples. Sinks that also implement io.Closer are
// closed when the sampler stops.
type Sink interface {
	Consume(Sample) error
}

// ConsumeFunc is the func form of Sink.
type ConsumeFunc func(Sample) error

// Consume implements Sink.
func (f ConsumeFunc) Consume(s Sample) error {
	return f(s)
}

// Sampler polls the source at a fixed interval. One cycle reads the
// temperature set, the speed set and the oxygen current in sequence,
// matching the strictly serialized exchange contract of the driver.
type Sampler struct {
	Source   Source
	Interval time.Duration
	Sinks    []Sink
}

// NewSampler creates a Sampler with the default 1s interval.
func NewSampler(src Source, sinks ...Sink) *Sampler {
	return &Sampler{Source: src, Interval: time.Second, Sinks: sinks}
}

// Run implements framework.Runnable. Sink errors are logged, never
// fatal; only context cancellation stops the loop.
func (s *Sampler) Run(ctx context.Context) error {
	interval := s.Interval
	if interval == 0 {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			if err := s.closeSinks(); err != nil {
				return err
			}
			return ctx.Err()
		case <-ticker.C:
			s.cycle()
		}
	}
}

func (s *Sampler) cycle() {
	start := time.Now()
	smp := Sample{Time: start}
	smp.Temperatures = s.Source.Temperatures()
	smp.Speeds = s.Source.RotationalSpeeds()
	smp.Oxygen, smp.OxygenOK = s.Source.OxygenCurrent()
	smp.Elapsed = time.Since(start)
	if smp.Degraded() {
		glog.V(1).Infof("degraded cycle: %+v", smp)
	}
	for _, sink := range s.Sinks {
		if err := sink.Consume(smp); err != nil {
			glog.Errorf("sink error: %v", err)
		}
	}
}

func (s *Sampler) closeSinks() error {
	var errs framework.AggregatedError
	for _, sink := range s.Sinks {
		if closer, ok := sink.(io.Closer); ok {
			errs.Add(closer.Close())
		}
	}
	return errs.Aggregate()
}
