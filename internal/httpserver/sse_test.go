package httpserver

import (
	"testing"
	"time"
)

func TestBroadcasterRegisterUnregister(t *testing.T) {
	b := NewBroadcaster()
	c1 := b.Register("p1")
	c2 := b.Register("p1")
	c3 := b.Register("p2")

	if b.ClientCount("p1") != 2 || b.ClientCount("p2") != 1 {
		t.Fatalf("unexpected counts: %d, %d", b.ClientCount("p1"), b.ClientCount("p2"))
	}
	b.Unregister(c1)
	b.Unregister(c1) // second call is a no-op
	b.Unregister(c2)
	b.Unregister(c3)
	if b.ClientCount("p1") != 0 || b.ClientCount("p2") != 0 {
		t.Fatal("expected no clients left")
	}
}

func TestBroadcastTargetsOnePlay(t *testing.T) {
	b := NewBroadcaster()
	c1 := b.Register("p1")
	c2 := b.Register("p2")
	defer b.Unregister(c1)
	defer b.Unregister(c2)

	b.Broadcast("p1", "hello")
	select {
	case msg := <-c1.ch:
		if msg != "hello" {
			t.Fatalf("expected hello, got %q", msg)
		}
	case <-time.After(100 * time.Millisecond):
		t.Fatal("c1 did not receive message")
	}
	select {
	case <-c2.ch:
		t.Fatal("c2 must not receive p1 messages")
	case <-time.After(20 * time.Millisecond):
	}
}

func TestBroadcastSkipsFullClient(t *testing.T) {
	b := NewBroadcaster()
	c := b.Register("p1")
	defer b.Unregister(c)

	done := make(chan struct{})
	go func() {
		for range sseChannelBuffer + 5 {
			b.Broadcast("p1", "x")
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("broadcast blocked on a full client")
	}
	if len(c.ch) != sseChannelBuffer {
		t.Fatalf("expected a full buffer, got %d", len(c.ch))
	}
}
