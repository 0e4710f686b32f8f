package network

import (
	"testing"

	"github.com/leap-fish/necs/esync"
)

func TestSendWithoutConnection(t *testing.T) {
	c := NewClient()
	if err := c.SendInput(1, 0, 0); err == nil {
		t.Fatal("expected error when not connected")
	}
	if c.State() != StateDisconnected {
		t.Fatalf("state = %v", c.State())
	}
}

func TestLatestSnapshotKeepsNewest(t *testing.T) {
	c := NewClient()
	if c.LatestSnapshot() != nil {
		t.Fatal("expected no snapshot")
	}

	c.snapshotCh <- esync.WorldSnapshot{}
	got := c.LatestSnapshot()
	if got == nil {
		t.Fatal("snapshot lost")
	}
	if c.LatestSnapshot() != nil {
		t.Fatal("snapshot delivered twice")
	}
}

func TestServerURL(t *testing.T) {
	tests := []struct {
		address string
		want    string
	}{
		{"localhost:7373", "ws://localhost:7373"},
		{"ws://localhost:7373", "ws://localhost:7373"},
		{"wss://game.example.com:443", "wss://game.example.com:443"},
		{" 10.0.0.2:7373 ", "ws://10.0.0.2:7373"},
	}
	for _, tt := range tests {
		if got := serverURL(tt.address); got != tt.want {
			t.Errorf("serverURL(%q) = %q, want %q", tt.address, got, tt.want)
		}
	}
}
