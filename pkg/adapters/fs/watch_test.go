package fs_test

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/citemark/pkg/core"
)

func TestWatchSeesNewRecords(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := repo.Initialize(ctx); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	events, err := repo.Watch(ctx)
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	// Give the watcher a moment to register before writing.
	time.Sleep(100 * time.Millisecond)

	if err := repo.Write(ctx, "record.md", []byte("x")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	deadline := time.After(5 * time.Second)
	for {
		select {
		case event, ok := <-events:
			if !ok {
				t.Fatal("event channel closed before the write was observed")
			}
			if event.Path == "record.md" {
				if event.Type != core.EventCreate && event.Type != core.EventModify {
					t.Errorf("event type = %s", event.Type)
				}
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for watch event")
		}
	}
}

func TestWatchStopsOnCancel(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx, cancel := context.WithCancel(context.Background())

	if err := repo.Initialize(ctx); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	events, err := repo.Watch(ctx)
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	cancel()

	select {
	case _, ok := <-events:
		if ok {
			// A buffered event may still arrive; drain until closure.
			for range events {
			}
		}
	case <-time.After(5 * time.Second):
		t.Fatal("event channel not closed after cancel")
	}
}
