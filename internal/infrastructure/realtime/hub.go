package realtime

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

// Hub fans Redis pub/sub topics out to local websocket clients. A Redis
// subscription is held only while at least one client is on the topic:
// subscribe on first enter, unsubscribe on last exit.
type Hub struct {
	redis  *redis.Client
	mu     sync.Mutex
	topics map[string]*topicSub
}

type topicSub struct {
	clients map[*Client]bool
	pubsub  *redis.PubSub
	cancel  context.CancelFunc
}

type Client struct {
	hub   *Hub
	conn  *websocket.Conn
	send  chan []byte
	topic string
}

func NewHub(redisClient *redis.Client) *Hub {
	return &Hub{
		redis:  redisClient,
		topics: make(map[string]*topicSub),
	}
}

// Register attaches a websocket connection to a topic and starts its pumps.
// The returned client detaches itself when the connection drops.
func (h *Hub) Register(conn *websocket.Conn, topic string) *Client {
	client := &Client{
		hub:   h,
		conn:  conn,
		send:  make(chan []byte, 16),
		topic: topic,
	}

	h.mu.Lock()
	sub, ok := h.topics[topic]
	if !ok {
		ctx, cancel := context.WithCancel(context.Background())
		sub = &topicSub{
			clients: make(map[*Client]bool),
			pubsub:  h.redis.Subscribe(ctx, topic),
			cancel:  cancel,
		}
		h.topics[topic] = sub
		go h.pump(ctx, topic, sub.pubsub)
		log.Printf("realtime: subscribed to %s", topic)
	}
	sub.clients[client] = true
	h.mu.Unlock()

	go client.writePump()
	go client.readPump()
	return client
}

func (h *Hub) unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	sub, ok := h.topics[client.topic]
	if !ok {
		return
	}
	if _, ok := sub.clients[client]; !ok {
		return
	}
	delete(sub.clients, client)
	close(client.send)
	if len(sub.clients) == 0 {
		sub.cancel()
		_ = sub.pubsub.Close()
		delete(h.topics, client.topic)
		log.Printf("realtime: unsubscribed from %s", client.topic)
	}
}

// pump relays one Redis subscription to every local client on the topic.
func (h *Hub) pump(ctx context.Context, topic string, pubsub *redis.PubSub) {
	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			h.mu.Lock()
			sub, live := h.topics[topic]
			if live {
				for client := range sub.clients {
					select {
					case client.send <- []byte(msg.Payload):
					default:
						// Slow consumer: drop it rather than block the topic.
						delete(sub.clients, client)
						close(client.send)
					}
				}
				if len(sub.clients) == 0 {
					sub.cancel()
					_ = sub.pubsub.Close()
					delete(h.topics, topic)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Close tears down every topic subscription.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for topic, sub := range h.topics {
		for client := range sub.clients {
			close(client.send)
		}
		sub.cancel()
		_ = sub.pubsub.Close()
		delete(h.topics, topic)
	}
}

func (c *Client) readPump() {
	defer func() {
		c.hub.unregister(c)
		_ = c.conn.Close()
	}()
	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		// Subscribers are read-only; anything inbound besides control
		// frames is discarded.
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()
	for {
		select {
		case payload, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
