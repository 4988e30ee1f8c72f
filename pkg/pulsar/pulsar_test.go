package pulsar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestPulsate(t *testing.T) {
	p := NewPulsar(5, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pulses := p.Pulsate(ctx)

	for i := 0; i < 3; i++ {
		select {
		case _, ok := <-pulses:
			require.True(t, ok)
		case <-time.After(time.Second):
			t.Fatal("no pulse received")
		}
	}

	cancel()

	for range pulses {
	}
}

func TestStopClosesChannel(t *testing.T) {
	p := NewPulsarWithPeriod(time.Hour)

	pulses := p.Pulsate(context.Background())

	p.Stop()
	p.Stop()

	select {
	case _, ok := <-pulses:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("channel not closed after Stop")
	}
}

func TestPeriod(t *testing.T) {
	assert.Equal(t, 2*time.Minute, NewPulsar(2, time.Minute).Period)
}
