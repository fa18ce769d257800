package dates

import (
	"testing"
	"time"
)

func TestAddBusinessDays(t *testing.T) {
	// 2025-01-06 is a Monday, 2025-01-10 a Friday.
	monday := time.Date(2025, 1, 6, 12, 0, 0, 0, time.UTC)
	friday := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)

	t.Run("friday plus one skips the weekend", func(t *testing.T) {
		got := AddBusinessDays(friday, 1)
		want := time.Date(2025, 1, 13, 12, 0, 0, 0, time.UTC) // Monday
		if !got.Equal(want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
	})

	t.Run("monday plus three is thursday", func(t *testing.T) {
		got := AddBusinessDays(monday, 3)
		want := time.Date(2025, 1, 9, 12, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
	})

	t.Run("thursday plus three crosses the weekend", func(t *testing.T) {
		thursday := time.Date(2025, 1, 9, 12, 0, 0, 0, time.UTC)
		got := AddBusinessDays(thursday, 3)
		want := time.Date(2025, 1, 14, 12, 0, 0, 0, time.UTC) // Tuesday
		if !got.Equal(want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
	})

	t.Run("saturday start is not counted", func(t *testing.T) {
		saturday := time.Date(2025, 1, 11, 12, 0, 0, 0, time.UTC)
		got := AddBusinessDays(saturday, 1)
		want := time.Date(2025, 1, 13, 12, 0, 0, 0, time.UTC) // Monday
		if !got.Equal(want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
	})

	t.Run("zero days returns start", func(t *testing.T) {
		if got := AddBusinessDays(monday, 0); !got.Equal(monday) {
			t.Fatalf("expected start unchanged, got %v", got)
		}
	})
}
