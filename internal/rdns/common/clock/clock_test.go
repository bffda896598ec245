package clock

import (
	"testing"
	"time"
)

func TestRealClock_Now(t *testing.T) {
	c := RealClock{}
	before := time.Now()
	got := c.Now()
	after := time.Now()
	if got.Before(before) || got.After(after) {
		t.Errorf("RealClock.Now() = %v outside [%v, %v]", got, before, after)
	}
}

func TestMockClock_Advance(t *testing.T) {
	c := &MockClock{}
	start := c.Now()
	c.Advance(42 * time.Second)
	if got := c.Now().Sub(start); got != 42*time.Second {
		t.Errorf("expected 42s advance, got %v", got)
	}
}
