package ws

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"expansion/internal/domain"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestHubStopsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	hub := NewHub(zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(stopped)
	}()

	hub.NotifyStatus(1, domain.StatusNotServed, domain.StatusPlanning)
	cancel()
	<-stopped

	assert.False(t, hub.Register(NewClient(nil)))
	hub.Unregister(NewClient(nil))
}

func TestStatusEventReachesClient(t *testing.T) {
	defer goleak.VerifyNone(t)

	hub := NewHub(zap.NewNop())
	hub.now = func() time.Time { return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC) }
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(stopped)
	}()

	e := echo.New()
	e.GET("/ws", NewWsHandler(hub, zap.NewNop()).HandleWs)
	srv := httptest.NewServer(e)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)

	// The handler registers after the upgrade; keep publishing until the client is in.
	stopPublishing := make(chan struct{})
	publisherDone := make(chan struct{})
	go func() {
		defer close(publisherDone)
		ticker := time.NewTicker(20 * time.Millisecond)
		defer ticker.Stop()
		for {
			hub.NotifyStatus(3106200, domain.StatusPlanning, domain.StatusExpansion)
			select {
			case <-stopPublishing:
				return
			case <-ticker.C:
			}
		}
	}()

	var ev StatusEvent
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(3*time.Second)))
	err = conn.ReadJSON(&ev)
	close(stopPublishing)
	<-publisherDone
	require.NoError(t, err)

	assert.Equal(t, TypeStatusChanged, ev.Type)
	assert.Equal(t, int64(3106200), ev.CityID)
	assert.Equal(t, domain.StatusExpansion, ev.To)
	assert.True(t, ev.OccurredAt.Equal(hub.now()))

	require.NoError(t, conn.Close())
	cancel()
	<-stopped
	srv.Close()
}
