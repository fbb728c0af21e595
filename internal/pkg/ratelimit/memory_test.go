package ratelimit

import (
	"context"
	"testing"
	"time"
)

func TestMemoryLimiter_AllowsUpToMax(t *testing.T) {
	l := NewMemoryLimiter(5, time.Hour)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		ok, err := l.Allow(ctx, "1.2.3.4")
		if err != nil {
			t.Fatalf("Allow returned error: %v", err)
		}
		if !ok {
			t.Fatalf("submission %d should be allowed", i+1)
		}
		if err := l.Record(ctx, "1.2.3.4"); err != nil {
			t.Fatalf("Record returned error: %v", err)
		}
	}

	ok, err := l.Allow(ctx, "1.2.3.4")
	if err != nil {
		t.Fatalf("Allow returned error: %v", err)
	}
	if ok {
		t.Fatalf("6th submission within the window should be denied")
	}
}

func TestMemoryLimiter_KeysAreIndependent(t *testing.T) {
	l := NewMemoryLimiter(1, time.Hour)
	ctx := context.Background()

	_ = l.Record(ctx, "1.2.3.4")
	if ok, _ := l.Allow(ctx, "1.2.3.4"); ok {
		t.Fatalf("exhausted key should be denied")
	}
	if ok, _ := l.Allow(ctx, "5.6.7.8"); !ok {
		t.Fatalf("fresh key should be allowed")
	}
}

func TestMemoryLimiter_WindowSlides(t *testing.T) {
	l := NewMemoryLimiter(2, time.Hour)
	current := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return current }
	ctx := context.Background()

	_ = l.Record(ctx, "k")
	_ = l.Record(ctx, "k")
	if ok, _ := l.Allow(ctx, "k"); ok {
		t.Fatalf("limit reached, expected deny")
	}

	// 30 minutes later: both timestamps still inside the window.
	current = current.Add(30 * time.Minute)
	if ok, _ := l.Allow(ctx, "k"); ok {
		t.Fatalf("expected deny while window still covers both submissions")
	}

	// Just past one hour: the old timestamps fall out.
	current = current.Add(31 * time.Minute)
	if ok, _ := l.Allow(ctx, "k"); !ok {
		t.Fatalf("expected allow after the window elapsed")
	}
}
