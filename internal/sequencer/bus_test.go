package sequencer

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestBusPublishSubscribe(t *testing.T) {
	bus := NewBus(2)

	if err := bus.Publish(context.Background(), Event{Entry: LogEntry{Index: 1}}); err != nil {
		t.Fatalf("publish: %v", err)
	}

	select {
	case ev := <-bus.Subscribe():
		if ev.Entry.Index != 1 {
			t.Fatalf("unexpected event %+v", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for event")
	}

	bus.Close()
	bus.Close()

	if err := bus.Publish(context.Background(), Event{}); !errors.Is(err, ErrBusClosed) {
		t.Fatalf("expected ErrBusClosed, got %v", err)
	}
	if _, ok := <-bus.Subscribe(); ok {
		t.Fatal("expected closed channel")
	}
}

func TestBusPublishHonorsContext(t *testing.T) {
	bus := NewBus(1)
	if err := bus.Publish(context.Background(), Event{}); err != nil {
		t.Fatalf("publish: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if err := bus.Publish(ctx, Event{}); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}
