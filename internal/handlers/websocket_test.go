package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"restaurant_menu/internal/models"
	"restaurant_menu/internal/service"

	"github.com/gorilla/websocket"
)

func dialFeed(t *testing.T, s *service.Service) *websocket.Conn {
	t.Helper()

	srv := httptest.NewServer(newTestRouter(s))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial %s: %v", url, err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readEnvelope(t *testing.T, conn *websocket.Conn) wsEnvelope {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var env wsEnvelope
	if err := conn.ReadJSON(&env); err != nil {
		t.Fatalf("read envelope: %v", err)
	}
	return env
}

func TestWSFeed_SnapshotThenChange(t *testing.T) {
	feed := newMockFeed()
	menus := &mockMenus{listResp: []models.Menu{{ID: "m1", Name: "Omelette"}}}
	conn := dialFeed(t, &service.Service{Menus: menus, Feed: feed})

	snap := readEnvelope(t, conn)
	if snap.Type != "menus" {
		t.Fatalf("expected initial menus envelope, got %q", snap.Type)
	}
	items, ok := snap.Data.([]interface{})
	if !ok || len(items) != 1 {
		t.Fatalf("unexpected snapshot data: %#v", snap.Data)
	}

	feed.ch <- service.ChangeEvent{
		Kind:   service.ChangeCreated,
		Entity: service.EntityMenu,
		ID:     "m2",
	}

	change := readEnvelope(t, conn)
	if change.Type != "change" {
		t.Fatalf("expected change envelope, got %q", change.Type)
	}
	data, ok := change.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("unexpected change data: %#v", change.Data)
	}
	if data["kind"] != service.ChangeCreated || data["id"] != "m2" {
		t.Fatalf("unexpected change payload: %v", data)
	}
}

func TestWSFeed_SnapshotErrorEnvelope(t *testing.T) {
	feed := newMockFeed()
	menus := &mockMenus{listErr: assertErr("db down")}
	conn := dialFeed(t, &service.Service{Menus: menus, Feed: feed})

	env := readEnvelope(t, conn)
	if env.Type != "error" || env.Error == "" {
		t.Fatalf("expected error envelope, got %+v", env)
	}
}

type assertErr string

func (e assertErr) Error() string { return string(e) }
