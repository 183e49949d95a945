package live

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/glide-ui/glide/pkg/transition"
)

func TestIndexServesDemoPage(t *testing.T) {
	s := New(Config{Logger: discardLogger()})
	srv := httptest.NewServer(s.Router())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL + "/")
	if err != nil {
		t.Fatalf("GET / error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q, want text/html", ct)
	}

	buf := make([]byte, 64)
	n, _ := resp.Body.Read(buf)
	if !strings.Contains(string(buf[:n]), "<!doctype html") {
		t.Errorf("body does not start with a document: %q", buf[:n])
	}
}

func TestWebSocketAddRemoveRoundTrip(t *testing.T) {
	cfg := transition.DefaultConfig()
	cfg.Name = "fade"
	cfg.EnterTimeout = 60 * time.Millisecond
	cfg.LeaveTimeout = 60 * time.Millisecond

	s := New(Config{Transition: cfg, Logger: discardLogger()})
	srv := httptest.NewServer(s.Router())
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial error: %v", err)
	}
	defer conn.Close()

	writeAction := func(a action) {
		t.Helper()
		msg, _ := json.Marshal(a)
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			t.Fatalf("write error: %v", err)
		}
	}

	// Collect patches until the terminal op shows up.
	collect := func(until PatchOp) []Patch {
		t.Helper()
		var got []Patch
		conn.SetReadDeadline(time.Now().Add(5 * time.Second))
		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				t.Fatalf("read error after %d patches: %v", len(got), err)
			}
			var p Patch
			if err := json.Unmarshal(msg, &p); err != nil {
				t.Fatalf("patch decode error: %v", err)
			}
			got = append(got, p)
			if p.Op == until {
				return got
			}
		}
	}

	writeAction(action{Action: actionAdd})

	// Enter choreography: insert, base class, active class one flush
	// later, both removed at the timeout.
	enter := collect(OpClassRemove)
	if enter[0].Op != OpInsert || enter[0].ID != "item-1" {
		t.Fatalf("patch[0] = %+v, want insert item-1", enter[0])
	}
	if enter[1].Op != OpClassAdd || enter[1].Value != "fade-enter" {
		t.Fatalf("patch[1] = %+v, want class-add fade-enter", enter[1])
	}

	writeAction(action{Action: actionRemove, ID: "item-1"})

	leave := collect(OpRemove)
	sawLeaveClass := false
	for _, p := range leave {
		if p.Op == OpClassAdd && p.Value == "fade-leave" {
			sawLeaveClass = true
		}
	}
	if !sawLeaveClass {
		t.Errorf("leave patches = %+v, want class-add fade-leave", leave)
	}
	last := leave[len(leave)-1]
	if last.ID != "item-1" {
		t.Errorf("remove patch = %+v, want item-1", last)
	}
}
