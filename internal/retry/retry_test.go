package retry

import (
	"context"
	"errors"
	"testing"
	"time"
)

func testPolicy() Policy {
	return Policy{
		MaxElapsed:      200 * time.Millisecond,
		InitialInterval: time.Millisecond,
		MaxInterval:     5 * time.Millisecond,
	}
}

func TestDo_SucceedsFirstTry(t *testing.T) {
	p := testPolicy()

	calls := 0
	err := p.Do(context.Background(), "fn", nil, func() error {
		calls++
		return nil
	})

	if err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	if calls != 1 {
		t.Errorf("Expected 1 call, got %d", calls)
	}
}

func TestDo_RetriesUntilSuccess(t *testing.T) {
	p := testPolicy()

	calls := 0
	err := p.Do(context.Background(), "fn", nil, func() error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})

	if err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	if calls != 3 {
		t.Errorf("Expected 3 calls, got %d", calls)
	}
}

func TestDo_GiveUpStopsImmediately(t *testing.T) {
	p := testPolicy()
	p.GiveUp = func(err error) bool { return true }

	permanent := errors.New("permanent")
	calls := 0
	err := p.Do(context.Background(), "fn", nil, func() error {
		calls++
		return permanent
	})

	if !errors.Is(err, permanent) {
		t.Fatalf("Expected the original error, got %v", err)
	}
	if calls != 1 {
		t.Errorf("Expected 1 call, got %d", calls)
	}
}

func TestDo_ElapsedCeilingReturnsLastError(t *testing.T) {
	p := testPolicy()
	p.MaxElapsed = 20 * time.Millisecond

	last := errors.New("still failing")
	start := time.Now()
	err := p.Do(context.Background(), "fn", nil, func() error {
		return last
	})

	if !errors.Is(err, last) {
		t.Fatalf("Expected the last error, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > 150*time.Millisecond {
		t.Errorf("Ceiling not respected, ran for %v", elapsed)
	}
}

func TestDo_NoticesCarryAttemptDetails(t *testing.T) {
	p := testPolicy()

	var notices []Notice
	p.OnBackoff = func(n Notice) { notices = append(notices, n) }

	params := map[string]any{"temperature": 0.2}
	calls := 0
	err := p.Do(context.Background(), "BasicRequest", params, func() error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Do failed: %v", err)
	}

	if len(notices) != 2 {
		t.Fatalf("Expected 2 notices, got %d", len(notices))
	}
	for i, n := range notices {
		if n.Tries != i+1 {
			t.Errorf("Notice %d: expected tries=%d, got %d", i, i+1, n.Tries)
		}
		if n.Target != "BasicRequest" {
			t.Errorf("Notice %d: expected target BasicRequest, got %q", i, n.Target)
		}
		if n.Params["temperature"] != 0.2 {
			t.Errorf("Notice %d: params not carried through: %v", i, n.Params)
		}
		if n.Wait <= 0 {
			t.Errorf("Notice %d: expected positive wait, got %v", i, n.Wait)
		}
	}
}

func TestDo_ContextCancelAborts(t *testing.T) {
	p := testPolicy()
	p.MaxElapsed = time.Minute
	p.InitialInterval = 50 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	err := p.Do(ctx, "fn", nil, func() error {
		return errors.New("transient")
	})

	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}
}

func TestBackoff_GrowsAndCaps(t *testing.T) {
	p := Policy{InitialInterval: 10 * time.Millisecond, MaxInterval: 40 * time.Millisecond}

	small := p.backoff(1)
	large := p.backoff(10)

	// +/-20% jitter around 10ms and 40ms respectively.
	if small < 8*time.Millisecond || small > 12*time.Millisecond {
		t.Errorf("First backoff out of range: %v", small)
	}
	if large < 32*time.Millisecond || large > 48*time.Millisecond {
		t.Errorf("Capped backoff out of range: %v", large)
	}
}
