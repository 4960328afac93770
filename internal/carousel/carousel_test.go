// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package carousel

import (
	"context"
	"testing"
	"time"
)

func TestTick_Wraps(t *testing.T) {
	d := New(DefaultSlides, time.Hour)
	if d.Len() != 6 {
		t.Fatalf("Len: got %d, want 6", d.Len())
	}

	for i := 0; i < 7; i++ {
		d.Tick()
	}
	idx, s := d.Current()
	if idx != 1 {
		t.Errorf("index after 7 ticks: got %d, want 1", idx)
	}
	if s != DefaultSlides[1] {
		t.Errorf("slide: got %+v", s)
	}
}

func TestTick_CyclesInOrder(t *testing.T) {
	d := New([]Slide{{Title: "a"}, {Title: "b"}, {Title: "c"}}, time.Hour)
	var got []string
	for i := 0; i < 4; i++ {
		_, s := d.Current()
		got = append(got, s.Title)
		d.Tick()
	}
	want := []string{"a", "b", "c", "a"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order: got %v, want %v", got, want)
		}
	}
}

func TestNew_Defaults(t *testing.T) {
	d := New(nil, 0)
	if d.Period() != DefaultPeriod {
		t.Errorf("Period: got %v", d.Period())
	}
	if d.Len() != len(DefaultSlides) {
		t.Errorf("Len: got %d", d.Len())
	}
}

func TestRun_AdvancesAndStops(t *testing.T) {
	d := New(DefaultSlides, 5*time.Millisecond)

	done := make(chan struct{})
	go func() {
		d.Run(context.Background())
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for {
		if idx, _ := d.Current(); idx != 0 {
			break
		}
		select {
		case <-deadline:
			t.Fatal("driver never advanced")
		case <-time.After(time.Millisecond):
		}
	}

	d.Stop()
	d.Stop()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Stop")
	}

	idx, _ := d.Current()
	time.Sleep(20 * time.Millisecond)
	if after, _ := d.Current(); after != idx {
		t.Errorf("index moved after Stop: %d -> %d", idx, after)
	}
}

func TestRun_ContextCancel(t *testing.T) {
	d := New(DefaultSlides, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		d.Run(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	d.Stop()
}
