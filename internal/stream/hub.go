package stream

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	channelPrefix = "profiles:"
	channelSuffix = ":updated"
)

// Hub pushes fresh chart data to the viewers of a route. With redis
// configured, updates published by other instances are relayed as well.
type Hub struct {
	id      string
	redis   *redis.Client
	clients map[string]map[*Client]struct{}
	mu      sync.RWMutex
	cancel  context.CancelFunc
	ready   chan struct{}
}

type Client struct {
	Route string
	Send  chan []byte
}

type envelope struct {
	Origin  string          `json:"origin"`
	Payload json.RawMessage `json:"payload"`
}

func NewHub(redisClient *redis.Client) *Hub {
	ctx, cancel := context.WithCancel(context.Background())
	h := &Hub{
		id:      uuid.NewString(),
		redis:   redisClient,
		clients: map[string]map[*Client]struct{}{},
		cancel:  cancel,
		ready:   make(chan struct{}),
	}

	if redisClient != nil {
		go h.subscribeRedis(ctx)
	} else {
		close(h.ready)
	}
	return h
}

// Ready is closed once the redis subscription is active.
func (h *Hub) Ready() <-chan struct{} {
	return h.ready
}

func (h *Hub) Close() {
	h.cancel()
}

func (h *Hub) Register(route string) *Client {
	client := &Client{
		Route: route,
		Send:  make(chan []byte, 16),
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[route] == nil {
		h.clients[route] = map[*Client]struct{}{}
	}
	h.clients[route][client] = struct{}{}
	return client
}

func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if routeClients, ok := h.clients[client.Route]; ok {
		delete(routeClients, client)
		if len(routeClients) == 0 {
			delete(h.clients, client.Route)
		}
	}
	close(client.Send)
}

// Viewers reports how many local clients watch a route.
func (h *Hub) Viewers(route string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[route])
}

func (h *Hub) Broadcast(route string, payload []byte) {
	h.deliver(route, payload)

	if h.redis != nil {
		msg, err := json.Marshal(envelope{Origin: h.id, Payload: payload})
		if err != nil {
			log.Printf("encode update for %s: %v", route, err)
			return
		}
		if err = h.redis.Publish(context.Background(), redisChannel(route), msg).Err(); err != nil {
			log.Printf("redis publish error: %v", err)
		}
	}
}

// deliver holds the read lock while sending so Unregister cannot close a
// channel mid-send. Slow clients drop updates instead of blocking.
func (h *Hub) deliver(route string, payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients[route] {
		select {
		case client.Send <- payload:
		default:
		}
	}
}

func (h *Hub) subscribeRedis(ctx context.Context) {
	pubsub := h.redis.PSubscribe(ctx, channelPrefix+"*"+channelSuffix)
	defer pubsub.Close()

	if _, err := pubsub.Receive(ctx); err != nil {
		log.Printf("redis subscribe error: %v", err)
		close(h.ready)
		return
	}
	close(h.ready)

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var env envelope
			if err := json.Unmarshal([]byte(msg.Payload), &env); err != nil {
				log.Printf("redis message on %s: %v", msg.Channel, err)
				continue
			}
			if env.Origin == h.id {
				continue
			}
			h.deliver(routeFromChannel(msg.Channel), env.Payload)
		}
	}
}

func redisChannel(route string) string {
	return channelPrefix + route + channelSuffix
}

func routeFromChannel(ch string) string {
	// profiles:{route}:updated
	if !strings.HasPrefix(ch, channelPrefix) || !strings.HasSuffix(ch, channelSuffix) ||
		len(ch) <= len(channelPrefix)+len(channelSuffix) {
		return ""
	}
	return ch[len(channelPrefix) : len(ch)-len(channelSuffix)]
}
