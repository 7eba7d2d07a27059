package ws

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VaniNagpal/Restaurant-Backend/entity"
)

// newEventServer runs a hub behind a test router whose auth is stubbed by
// the X-Test-User header, like the cart controller tests stub userId.
func newEventServer(t *testing.T) (*OrderHub, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hub := NewOrderHub()
	go hub.Run()

	r := gin.New()
	r.Use(func(c *gin.Context) {
		if id, err := strconv.Atoi(c.GetHeader("X-Test-User")); err == nil && id > 0 {
			c.Set("userId", uint(id))
		}
		c.Next()
	})
	r.GET("/ws/orders", hub.HandleWebSocket)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return hub, srv
}

func dialOrders(t *testing.T, srv *httptest.Server, userID uint) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/orders"
	header := http.Header{"X-Test-User": {strconv.Itoa(int(userID))}}
	conn, resp, err := websocket.DefaultDialer.Dial(url, header)
	require.NoError(t, err)
	if resp != nil {
		resp.Body.Close()
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

// waitForClients blocks until the hub has registered n connections for the
// user. Registration happens after the handshake, so dialers must wait
// before broadcasting.
func waitForClients(t *testing.T, hub *OrderHub, userID uint, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		hub.mu.Lock()
		got := len(hub.clients[userID])
		hub.mu.Unlock()
		if got == n {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("hub never reached %d connections for user %d", n, userID)
}

func readEvent(t *testing.T, conn *websocket.Conn) OrderEvent {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var ev OrderEvent
	require.NoError(t, conn.ReadJSON(&ev))
	return ev
}

func TestOrderPlacedReachesEveryConnection(t *testing.T) {
	hub, srv := newEventServer(t)

	// same user connected from two devices
	first := dialOrders(t, srv, 1)
	second := dialOrders(t, srv, 1)
	waitForClients(t, hub, 1, 2)

	hub.OrderPlaced(1, &entity.Order{ID: 7, TotalPrice: 3000})

	for _, conn := range []*websocket.Conn{first, second} {
		ev := readEvent(t, conn)
		assert.Equal(t, "order_placed", ev.Type)
		require.NotNil(t, ev.Order)
		assert.Equal(t, uint(7), ev.Order.ID)
		assert.Equal(t, int64(3000), ev.Order.TotalPrice)
	}
}

func TestEventsScopedToOrderingUser(t *testing.T) {
	hub, srv := newEventServer(t)

	alice := dialOrders(t, srv, 1)
	bob := dialOrders(t, srv, 2)
	waitForClients(t, hub, 1, 1)
	waitForClients(t, hub, 2, 1)

	hub.OrderPlaced(1, &entity.Order{ID: 9})

	ev := readEvent(t, alice)
	assert.Equal(t, uint(9), ev.Order.ID)

	// bob must see nothing for alice's order
	require.NoError(t, bob.SetReadDeadline(time.Now().Add(200*time.Millisecond)))
	var stray OrderEvent
	assert.Error(t, bob.ReadJSON(&stray))
}

func TestUnauthenticatedSocketRejected(t *testing.T) {
	_, srv := newEventServer(t)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/orders"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err, "handshake must fail without a user")
	assert.Nil(t, conn)
	if resp != nil {
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		resp.Body.Close()
	}
}

func TestClosedConnectionIsUnregistered(t *testing.T) {
	hub, srv := newEventServer(t)

	gone := dialOrders(t, srv, 1)
	stays := dialOrders(t, srv, 1)
	waitForClients(t, hub, 1, 2)

	gone.Close()
	waitForClients(t, hub, 1, 1)

	hub.OrderPlaced(1, &entity.Order{ID: 11})
	ev := readEvent(t, stays)
	assert.Equal(t, uint(11), ev.Order.ID)
}
