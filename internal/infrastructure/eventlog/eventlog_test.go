package eventlog

import (
	"strconv"
	"testing"
)

func TestRingNewestFirst(t *testing.T) {
	ring := NewRing(10)
	ring.Add(LevelInfo, "test", "first")
	ring.Add(LevelSuccess, "test", "second")

	entries := ring.List()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Message != "second" || entries[1].Message != "first" {
		t.Fatalf("expected newest first, got %q then %q", entries[0].Message, entries[1].Message)
	}
}

func TestRingCap(t *testing.T) {
	ring := NewRing(5)
	for i := 0; i < 12; i++ {
		ring.Add(LevelInfo, "test", "msg "+strconv.Itoa(i))
	}

	entries := ring.List()
	if len(entries) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(entries))
	}
	if entries[0].Message != "msg 11" {
		t.Fatalf("expected newest entry kept, got %q", entries[0].Message)
	}
}

func TestRingDetails(t *testing.T) {
	ring := NewRing(0)
	ring.Add(LevelError, "gateway", "charge failed", "http 500")

	entries := ring.List()
	if entries[0].Details != "http 500" {
		t.Fatalf("expected details recorded, got %q", entries[0].Details)
	}
	if entries[0].ID == "" || entries[0].Timestamp.IsZero() {
		t.Fatal("expected id and timestamp assigned")
	}
}

func TestRingClear(t *testing.T) {
	ring := NewRing(0)
	ring.Add(LevelInfo, "test", "msg")
	ring.Clear()
	if len(ring.List()) != 0 {
		t.Fatal("expected empty ring after clear")
	}
}
