package ws

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"InsightFlow/internal/domain/models"
	"InsightFlow/pkg/logger"
)

func testHub(t *testing.T) (*Hub, *httptest.Server) {
	t.Helper()
	log, err := logger.New(&logger.Config{Level: "error", Format: "json", Output: "stderr"})
	require.NoError(t, err)

	hub := NewHub(log)
	e := echo.New()
	e.GET("/ws/board", hub.Handle)
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return hub, srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/board"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestHubBroadcastsEventsToSubscribers(t *testing.T) {
	hub, srv := testHub(t)
	defer hub.Close()

	a := dial(t, srv)
	b := dial(t, srv)

	event := models.StoreEvent{
		Kind:   models.EventStatus,
		Domain: models.DomainBonds,
		Status: models.StatusLoading,
		At:     time.Now().UTC(),
	}

	// subscription registers asynchronously with the upgrade
	require.Eventually(t, func() bool {
		hub.mu.Lock()
		defer hub.mu.Unlock()
		return len(hub.clients) == 2
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, hub.Deliver(context.Background(), event))

	for _, conn := range []*websocket.Conn{a, b} {
		conn.SetReadDeadline(time.Now().Add(time.Second))
		_, payload, err := conn.ReadMessage()
		require.NoError(t, err)

		var got models.StoreEvent
		require.NoError(t, json.Unmarshal(payload, &got))
		require.Equal(t, models.DomainBonds, got.Domain)
		require.Equal(t, models.StatusLoading, got.Status)
	}
}

func TestHubCloseDisconnectsSubscribers(t *testing.T) {
	hub, srv := testHub(t)

	conn := dial(t, srv)
	require.Eventually(t, func() bool {
		hub.mu.Lock()
		defer hub.mu.Unlock()
		return len(hub.clients) == 1
	}, time.Second, 5*time.Millisecond)

	hub.Close()

	conn.SetReadDeadline(time.Now().Add(time.Second))
	_, _, err := conn.ReadMessage()
	require.Error(t, err)
}
