package ws

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/Werneck0live/gestao-terceirizados/internal/models"
)

type Client struct {
	ID   string
	Send chan []byte
	// Kinds vazio recebe todos os eventos
	Kinds map[models.Kind]bool
}

// NewClient cria um cliente inscrito só nos kinds informados (?kinds=a,b).
func NewClient(kinds string, buf int) (*Client, error) {
	c := &Client{Send: make(chan []byte, buf)}
	for _, raw := range strings.Split(kinds, ",") {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		k, err := models.ParseKind(raw)
		if err != nil {
			return nil, err
		}
		if c.Kinds == nil {
			c.Kinds = make(map[models.Kind]bool)
		}
		c.Kinds[k] = true
	}
	return c, nil
}

func (c *Client) Wants(k models.Kind) bool {
	return len(c.Kinds) == 0 || c.Kinds[k]
}

type broadcastMsg struct {
	kind models.Kind
	msg  []byte
}

type Hub struct {
	mu       sync.RWMutex
	clients  map[string]*Client // id -> client
	register chan *Client
	unreg    chan *Client

	sendAll chan broadcastMsg

	log     *slog.Logger
	stop    chan struct{}
	stopped chan struct{}

	nextID atomic.Uint64
}

func NewHub(log *slog.Logger) *Hub {
	if log == nil {
		log = slog.Default()
	}
	return &Hub{
		clients:  make(map[string]*Client),
		register: make(chan *Client),
		unreg:    make(chan *Client),
		sendAll:  make(chan broadcastMsg, 1024),
		log:      log.With("cmp", "ws.hub"),
		stop:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
}

func (h *Hub) newID() string {
	id := h.nextID.Add(1)
	return fmt.Sprintf("c%d", id)
}

// Len devolve o número de clientes conectados.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) Run() {
	h.log.Info("hub_run_start")
	defer close(h.stopped)

	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			h.clients[c.ID] = c
			total := len(h.clients)
			h.mu.Unlock()
			h.log.Info("client_registered", "id", c.ID, "total", total)

		case c := <-h.unreg:
			h.drop(c)
			h.log.Info("client_unregistered", "id", c.ID, "total", h.Len())

		case b := <-h.sendAll:
			var slow []*Client
			h.mu.RLock()
			for _, c := range h.clients {
				if !c.Wants(b.kind) {
					continue
				}
				select {
				case c.Send <- b.msg:
				default:
					// cliente lento -> dropa para não travar o hub
					slow = append(slow, c)
				}
			}
			h.mu.RUnlock()
			for _, c := range slow {
				h.drop(c)
				h.log.Warn("client_dropped_slow", "id", c.ID)
			}

		case <-h.stop:
			h.mu.Lock()
			for id, c := range h.clients {
				close(c.Send)
				delete(h.clients, id)
			}
			h.mu.Unlock()
			h.log.Info("hub_run_stop")
			return
		}
	}
}

func (h *Hub) drop(c *Client) {
	if c == nil || c.ID == "" {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if cc, ok := h.clients[c.ID]; ok && cc == c {
		delete(h.clients, c.ID)
		close(c.Send)
	}
}

func (h *Hub) Stop() {
	close(h.stop)
	<-h.stopped
}

// Register devolve false se o hub já parou.
func (h *Hub) Register(c *Client) bool {
	if c.ID == "" {
		c.ID = h.newID()
	}
	select {
	case h.register <- c:
		return true
	case <-h.stopped:
		return false
	}
}

func (h *Hub) Unregister(c *Client) {
	select {
	case h.unreg <- c:
	case <-h.stopped:
	}
}

// Broadcast envia body a todos os clientes inscritos em kind.
func (h *Hub) Broadcast(kind models.Kind, body []byte) {
	select {
	case h.sendAll <- broadcastMsg{kind: kind, msg: body}:
	case <-h.stopped:
	}
}
