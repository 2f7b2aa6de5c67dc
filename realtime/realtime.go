package realtime

import (
	"sync"
	"time"

	"hypnoraffle/metrics"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Collections clients can subscribe to
const (
	CollectionParticipants = "participants"
	CollectionSessions     = "sessions"
	CollectionQrRefs       = "qr_refs"
	CollectionQrScans      = "qr_scans"
)

// Update types
const (
	UpdateSnapshot = "snapshot" // Data holds the whole collection
	UpdateScan     = "scan"     // Data holds a single scan event
)

const (
	writeTimeout = 10 * time.Second
	sendBuffer   = 32 // Updates queued per client before it is dropped as too slow
)

var (
	collectionClients = make(map[string]map[*Client]bool) // Map of collection name to connected clients
	broadcast         = make(chan Update, 64)              // Broadcast channel for updates
	mutex             sync.Mutex                           // Mutex to protect collectionClients
)

// Update is the message pushed to subscribers of a collection
type Update struct {
	Collection string      `json:"collection"`
	UpdateType string      `json:"update_type"`
	Data       interface{} `json:"data"`
	SentAt     time.Time   `json:"sent_at"`
}

// Client is one WebSocket subscription. Broadcasts are queued on send and written
// by the client's own goroutine, so a slow socket never holds the hub lock.
type Client struct {
	collection string
	conn       *websocket.Conn
	send       chan Update
	done       chan struct{}
	closeOnce  sync.Once
}

// ValidCollection reports whether clients may subscribe to name
func ValidCollection(name string) bool {
	switch name {
	case CollectionParticipants, CollectionSessions, CollectionQrRefs, CollectionQrScans:
		return true
	}
	return false
}

// RegisterClient adds conn to the collection's subscribers. Updates published from
// now on are queued until Start is called.
func RegisterClient(collection string, conn *websocket.Conn) *Client {
	client := &Client{
		collection: collection,
		conn:       conn,
		send:       make(chan Update, sendBuffer),
		done:       make(chan struct{}),
	}

	mutex.Lock()
	defer mutex.Unlock()

	if collectionClients[collection] == nil {
		collectionClients[collection] = make(map[*Client]bool)
	}
	collectionClients[collection][client] = true
	metrics.LiveSubscribers.WithLabelValues(collection).Inc()
	return client
}

// Start writes initial, then delivers the queued and future updates in order
func (c *Client) Start(initial *Update) error {
	if initial != nil {
		if err := writeUpdate(c.conn, *initial); err != nil {
			UnregisterClient(c)
			return err
		}
	}
	go c.writePump()
	return nil
}

// UnregisterClient removes a client from its collection and closes its connection
func UnregisterClient(c *Client) {
	mutex.Lock()
	removeClient(c)
	mutex.Unlock()
	c.close()
}

// Subscribers returns the number of clients subscribed to a collection
func Subscribers(collection string) int {
	mutex.Lock()
	defer mutex.Unlock()
	return len(collectionClients[collection])
}

// Publish queues an update for every subscriber of its collection
func Publish(update Update) {
	if update.SentAt.IsZero() {
		update.SentAt = time.Now()
	}
	broadcast <- update
}

func (c *Client) close() {
	c.closeOnce.Do(func() {
		close(c.done)
		c.conn.Close()
	})
}

func (c *Client) writePump() {
	for {
		select {
		case <-c.done:
			return
		case update := <-c.send:
			if err := writeUpdate(c.conn, update); err != nil {
				zap.L().Warn("websocket write error",
					zap.String("collection", c.collection),
					zap.Error(err),
				)
				UnregisterClient(c)
				return
			}
		}
	}
}

func removeClient(c *Client) {
	clients, exists := collectionClients[c.collection]
	if !exists || !clients[c] {
		return
	}
	delete(clients, c)
	metrics.LiveSubscribers.WithLabelValues(c.collection).Dec()
	if len(clients) == 0 {
		delete(collectionClients, c.collection)
	}
}

func writeUpdate(conn *websocket.Conn, update Update) error {
	conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return conn.WriteJSON(update)
}

func handleBroadcast() {
	for update := range broadcast {
		var dropped []*Client

		mutex.Lock()
		for client := range collectionClients[update.Collection] {
			select {
			case client.send <- update:
			default:
				removeClient(client)
				dropped = append(dropped, client)
			}
		}
		mutex.Unlock()

		for _, client := range dropped {
			zap.L().Warn("dropping slow websocket client", zap.String("collection", update.Collection))
			client.close()
		}
	}
}

func init() {
	go handleBroadcast()
}
