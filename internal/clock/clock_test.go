package clock

import (
	"testing"
	"time"
)

func TestFixed_NormalizesToUTC(t *testing.T) {
	madrid := time.FixedZone("CET", 3600)
	clk := NewFixed(time.Date(2024, 3, 10, 9, 0, 0, 0, madrid))

	got := clk.Now()
	if got.Location() != time.UTC {
		t.Fatalf("expected UTC, got %v", got.Location())
	}
	if want := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if !clk.Now().Equal(got) {
		t.Fatalf("fixed clock must not advance")
	}
}

func TestSystem_ReturnsUTC(t *testing.T) {
	if loc := NewSystem().Now().Location(); loc != time.UTC {
		t.Fatalf("expected UTC, got %v", loc)
	}
}
