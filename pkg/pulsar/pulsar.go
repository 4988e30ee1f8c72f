package pulsar

import (
	"context"
	"time"
)

// Pulsar is a pulsating object that generates
// pulses at the configured time intervals. It
// can be used under any piece of code that needs
// to periodically execute.
// We can use it in the following way:
//
//	p := pulsar.NewPulsar(1, time.Second) // pulse every 1 second
//	for pulse := range p.Pulsate(ctx) {
//		fmt.Println("received a pulse", pulse)
//	}
//
// The channel is closed once ctx is done or Stop is called.
type Pulsar struct {
	Period  time.Duration
	pulse   *time.Ticker
	kill    chan struct{}
	pulsate chan time.Time
}

// Stop stops producing pulses. This would allow the
// calling code to be released from a block on the
// pulsate channel or exit the for loop ranging on the
// channel - whichever pattern is followed. Stop is a
// no-op after the first call.
func (p *Pulsar) Stop() {
	select {
	case <-p.kill:
	default:
		close(p.kill)
	}
}

// Pulsate starts pulsating an existing pulsar. The
// pulses can be consumed on the returned channel.
func (p *Pulsar) Pulsate(ctx context.Context) <-chan time.Time {
	go func() {
		defer p.pulse.Stop()
		defer close(p.pulsate)

		for {
			select {
			case <-ctx.Done():
				return
			case <-p.kill:
				return
			case t := <-p.pulse.C:
				select {
				case p.pulsate <- t:
				case <-ctx.Done():
					return
				case <-p.kill:
					return
				}
			}
		}
	}()

	return p.pulsate
}

// NewPulsar creates a new Pulsar object and returns
// a pointer to it. Takes the following args:
//
//	period int: time period for the pulses
//	timeUnit time.Duration: the unit eg. time.Millisecond
//		time.Second etc.
func NewPulsar(period int, timeUnit time.Duration) *Pulsar {
	return NewPulsarWithPeriod(time.Duration(period) * timeUnit)
}

// NewPulsarWithPeriod is NewPulsar for an already computed period.
func NewPulsarWithPeriod(period time.Duration) *Pulsar {
	return &Pulsar{
		Period:  period,
		pulse:   time.NewTicker(period),
		kill:    make(chan struct{}),
		pulsate: make(chan time.Time),
	}
}
