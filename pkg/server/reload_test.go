package server

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/domkit-dev/domkit/pkg/dom"
)

func TestReloadBroadcast(t *testing.T) {
	s := New(nil, func() *dom.Document { return dom.NewDocument() })
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/__reload"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dialing reload endpoint: %v", err)
	}
	defer conn.Close()

	// The upgrade handler registers the client on its own goroutine.
	deadline := time.Now().Add(2 * time.Second)
	for s.reload.ClientCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("client never registered")
		}
		time.Sleep(10 * time.Millisecond)
	}

	s.Reload()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg ReloadMessage
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("reading reload message: %v", err)
	}
	if msg.Type != ReloadTypeFull {
		t.Errorf("message type = %q, want %q", msg.Type, ReloadTypeFull)
	}
}

func TestReloadBroadcastNoClients(t *testing.T) {
	s := New(nil, func() *dom.Document { return dom.NewDocument() })
	// Must not panic or block with nobody connected.
	s.Reload()
	if got := s.reload.ClientCount(); got != 0 {
		t.Errorf("ClientCount() = %d, want 0", got)
	}
}

func TestReloadClose(t *testing.T) {
	s := New(nil, func() *dom.Document { return dom.NewDocument() })
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/__reload"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dialing reload endpoint: %v", err)
	}
	defer conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for s.reload.ClientCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("client never registered")
		}
		time.Sleep(10 * time.Millisecond)
	}

	s.reload.Close()

	deadline = time.Now().Add(2 * time.Second)
	for s.reload.ClientCount() != 0 {
		if time.Now().After(deadline) {
			t.Fatal("clients not cleared after Close")
		}
		time.Sleep(10 * time.Millisecond)
	}
}
