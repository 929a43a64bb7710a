package store

import (
	"testing"
	"time"
)

func TestBus_DeliversTypedEvent(t *testing.T) {
	bus := NewBus()
	events, cancel := bus.Subscribe()
	defer cancel()

	bus.Publish(Event{Key: "currency_u1", Value: "EUR"})

	select {
	case event := <-events:
		if event.Key != "currency_u1" || event.Value != "EUR" {
			t.Errorf("unexpected event: %+v", event)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestBus_PublishNeverBlocks(t *testing.T) {
	bus := NewBus()
	_, cancel := bus.Subscribe()
	defer cancel()

	// Overflow the subscriber buffer; extra events are dropped, not blocked on.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			bus.Publish(Event{Key: "data_u1"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}
}

func TestBus_CancelStopsDelivery(t *testing.T) {
	bus := NewBus()
	events, cancel := bus.Subscribe()
	cancel()

	if _, open := <-events; open {
		t.Error("expected channel closed after cancel")
	}

	// Publishing after cancel must not panic.
	bus.Publish(Event{Key: "data_u1"})
}
