package clock

import (
	"testing"
	"time"
)

func TestSystemReturnsUTC(t *testing.T) {
	now := NewSystem().Now()

	if now.Location() != time.UTC {
		t.Fatalf("expected UTC time, got %v", now.Location())
	}

	if time.Since(now) > time.Minute {
		t.Fatalf("expected current time, got %v", now)
	}
}

func TestFixedIsFrozen(t *testing.T) {
	at := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)
	c := NewFixed(at)

	if !c.Now().Equal(at) {
		t.Fatalf("expected %v, got %v", at, c.Now())
	}
	if !c.Now().Equal(c.Now()) {
		t.Fatalf("expected frozen clock to be stable")
	}
}
