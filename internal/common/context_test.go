package common

import (
	"context"
	"testing"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := context.Background()
	if got := RequestIDFromContext(ctx); got != "" {
		t.Fatalf("RequestIDFromContext(empty) = %q, want \"\"", got)
	}
	ctx = WithRequestID(ctx, "trace-42")
	if got := RequestIDFromContext(ctx); got != "trace-42" {
		t.Fatalf("RequestIDFromContext() = %q, want trace-42", got)
	}
}

func TestJobIDRoundTrip(t *testing.T) {
	ctx := WithJobID(context.Background(), "9f1c")
	if got := JobIDFromContext(ctx); got != "9f1c" {
		t.Fatalf("JobIDFromContext() = %q, want 9f1c", got)
	}
	// job and request keys do not collide
	if got := RequestIDFromContext(ctx); got != "" {
		t.Fatalf("RequestIDFromContext() = %q, want \"\"", got)
	}
}
