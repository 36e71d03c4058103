package atlas

import (
	"testing"
	"time"
)

var testLimits = Limits{Min: 0.25, Max: 4, Step: 0.25}

func TestLimitsNormalize(t *testing.T) {
	half := Limits{Min: 0.5, Max: 8, Step: 0.5}
	tests := []struct {
		name string
		l    Limits
		in   float64
		want float64
	}{
		{"below step midpoint", half, 1.24, 1.0},
		{"above step midpoint", half, 1.26, 1.5},
		{"half rounds away from zero", half, 1.25, 1.5},
		{"clamped high", half, 100, 8},
		{"clamped low", half, 0.1, 0.5},
		{"exact step", testLimits, 2.75, 2.75},
		{"zero step leaves value", Limits{Min: 0, Max: 10}, 3.3, 3.3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.l.Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLimitsFraction(t *testing.T) {
	l := Limits{Min: 1, Max: 5, Step: 1}
	if got := l.FromFraction(0.5); got != 3 {
		t.Errorf("FromFraction(0.5) = %v, want 3", got)
	}
	if got := l.FromFraction(-1); got != 1 {
		t.Errorf("FromFraction(-1) = %v, want 1", got)
	}
	if got := l.FromFraction(2); got != 5 {
		t.Errorf("FromFraction(2) = %v, want 5", got)
	}
	if got := l.Fraction(4); got != 0.75 {
		t.Errorf("Fraction(4) = %v, want 0.75", got)
	}
}

func TestWheelScale(t *testing.T) {
	tests := []struct {
		delta float64
		from  float64
		want  float64
	}{
		{1, 1, 1.25},
		{-1, 1, 0.75},
		{0, 1, 0.75},
		{3, 4, 4},
		{-3, 0.25, 0.25},
	}
	for _, tt := range tests {
		if got := WheelScale(tt.delta, testLimits)(tt.from); got != tt.want {
			t.Errorf("WheelScale(%v)(%v) = %v, want %v", tt.delta, tt.from, got, tt.want)
		}
	}
}

func TestDebouncerLeading(t *testing.T) {
	d := NewDebouncer(10 * time.Millisecond)
	t0 := time.Unix(1000, 0)
	steps := []struct {
		at   time.Duration
		want bool
	}{
		{0, true},
		{3 * time.Millisecond, false},
		{9 * time.Millisecond, false},
		{10 * time.Millisecond, true},
		{15 * time.Millisecond, false},
		{40 * time.Millisecond, true},
	}
	for _, s := range steps {
		if got := d.Accept(t0.Add(s.at)); got != s.want {
			t.Errorf("Accept(+%v) = %v, want %v", s.at, got, s.want)
		}
	}
}

func TestThrottleKeepsLatest(t *testing.T) {
	th := NewThrottle[int](ResizeThrottle)
	if _, ok := th.Flush(); ok {
		t.Fatal("Flush on closed window returned a value")
	}
	if !th.Push(1) {
		t.Fatal("first Push should open a window")
	}
	if th.Push(2) || th.Push(3) {
		t.Fatal("Push inside an open window should not reopen it")
	}
	v, ok := th.Flush()
	if !ok || v != 3 {
		t.Fatalf("Flush = %v, %v; want 3, true", v, ok)
	}
	if !th.Push(4) {
		t.Fatal("Push after Flush should open a new window")
	}
}
