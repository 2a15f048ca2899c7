// AngelaMos | 2026
// publisher_internal_test.go

package events

import (
	"context"
	"log/slog"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/templates/inventory-api/internal/config"
)

// silentBroker accepts TCP connections and never answers the AMQP
// handshake.
func silentBroker(t *testing.T) string {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	var (
		mu    sync.Mutex
		conns []net.Conn
	)
	go func() {
		for {
			c, err := ln.Accept()
			if err != nil {
				return
			}
			mu.Lock()
			conns = append(conns, c)
			mu.Unlock()
		}
	}()

	t.Cleanup(func() {
		_ = ln.Close()
		mu.Lock()
		defer mu.Unlock()
		for _, c := range conns {
			_ = c.Close()
		}
	})

	return "amqp://guest:guest@" + ln.Addr().String() + "/"
}

func TestNewAMQPPublisherHonorsDialTimeout(t *testing.T) {
	url := silentBroker(t)

	start := time.Now()
	_, err := NewAMQPPublisher(config.EventsConfig{
		URL:         url,
		Exchange:    "inventory.events",
		DialTimeout: 200 * time.Millisecond,
	}, nil)

	require.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestPublishFailsFastWhileReconnecting(t *testing.T) {
	p := &AMQPPublisher{
		url:         silentBroker(t),
		exchange:    "inventory.events",
		dialTimeout: time.Second,
		logger:      slog.Default(),
	}

	start := time.Now()
	err := p.Publish(context.Background(), "order.placed", map[string]int{"order_id": 1})
	elapsed := time.Since(start)

	require.ErrorIs(t, err, ErrPublisherUnavailable)
	assert.Less(t, elapsed, 500*time.Millisecond)

	p.mu.Lock()
	assert.True(t, p.reconnecting)
	p.mu.Unlock()

	err = p.Publish(context.Background(), "order.placed", map[string]int{"order_id": 2})
	require.ErrorIs(t, err, ErrPublisherUnavailable)

	require.NoError(t, p.Close())

	p.mu.Lock()
	assert.False(t, p.reconnecting)
	assert.Nil(t, p.conn)
	p.mu.Unlock()

	assert.ErrorIs(t, p.Publish(context.Background(), "order.placed", nil), ErrPublisherClosed)
}
