package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherRequiresRoots(t *testing.T) {
	_, _, err := StartWatcher(context.Background(), WatchConfig{})
	if err == nil {
		t.Fatal("StartWatcher() with no roots = nil error, want error")
	}
}

func TestWatcherInitialScan(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "existing.txt")
	if err := os.WriteFile(path, []byte("invoice"), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events, _, err := StartWatcher(ctx, WatchConfig{Roots: []string{dir}, InitialScan: true})
	if err != nil {
		t.Fatalf("StartWatcher() error: %v", err)
	}

	select {
	case got := <-events:
		if got != path {
			t.Fatalf("event = %q, want %q", got, path)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no initial-scan event received")
	}
}

func TestWatcherDebouncedWriteBurst(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events, _, err := StartWatcher(ctx, WatchConfig{
		Roots:    []string{dir},
		Debounce: 50 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("StartWatcher() error: %v", err)
	}

	path := filepath.Join(dir, "burst.csv")
	for i := 0; i < 3; i++ {
		if err := os.WriteFile(path, []byte("id;date\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		time.Sleep(5 * time.Millisecond)
	}

	select {
	case got := <-events:
		if got != path {
			t.Fatalf("event = %q, want %q", got, path)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no debounced event received")
	}
}

func TestWatcherIgnoresOtherExtensions(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events, _, err := StartWatcher(ctx, WatchConfig{Roots: []string{dir}})
	if err != nil {
		t.Fatalf("StartWatcher() error: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "notes.md"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	wanted := filepath.Join(dir, "wanted.pdf")
	if err := os.WriteFile(wanted, []byte("%PDF"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-events:
		if got != wanted {
			t.Fatalf("event = %q, want %q", got, wanted)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no event for allowed extension")
	}
}
