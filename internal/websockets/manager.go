package websockets

import (
	"sync"

	"server/config"
	"server/internal/database"
	"server/internal/events"
	"server/internal/logger"
	. "server/internal/models"

	"github.com/gofiber/websocket/v2"
)

// Manager fans status events out to the websocket connections of the user
// they concern. A user may hold several connections (tabs, devices).
type Manager struct {
	db       database.DB
	eventBus *events.EventBus
	config   config.Config
	log      logger.Logger

	mu          sync.RWMutex
	connections map[string]map[*websocket.Conn]bool
}

func New(db database.DB, eventBus *events.EventBus, config config.Config) (*Manager, error) {
	manager := &Manager{
		db:          db,
		eventBus:    eventBus,
		config:      config,
		log:         logger.New("websockets"),
		connections: make(map[string]map[*websocket.Conn]bool),
	}

	eventBus.Subscribe(events.StatusChannel, manager.handleStatusEvent)

	return manager, nil
}

// HandleWebSocket owns a connection for its lifetime. Unauthenticated
// upgrades are closed immediately.
func (m *Manager) HandleWebSocket(c *websocket.Conn) {
	log := m.log.Function("HandleWebSocket")

	user, ok := c.Locals("user").(User)
	if !ok {
		log.Warn("websocket upgrade without session")
		_ = c.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "authentication required"))
		_ = c.Close()
		return
	}

	m.register(user.ID, c)
	defer m.unregister(user.ID, c)

	log.Info("websocket connected", "userID", user.ID)

	// Drain the connection; clients only listen on this socket.
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			return
		}
	}
}

func (m *Manager) register(userID string, c *websocket.Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.connections[userID] == nil {
		m.connections[userID] = make(map[*websocket.Conn]bool)
	}
	m.connections[userID][c] = true
}

func (m *Manager) unregister(userID string, c *websocket.Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.connections[userID], c)
	if len(m.connections[userID]) == 0 {
		delete(m.connections, userID)
	}
	_ = c.Close()
}

func (m *Manager) handleStatusEvent(event events.Event) {
	log := m.log.Function("handleStatusEvent")

	m.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(m.connections[event.UserID]))
	for c := range m.connections[event.UserID] {
		conns = append(conns, c)
	}
	m.mu.RUnlock()

	for _, c := range conns {
		if err := c.WriteJSON(event); err != nil {
			log.Er("failed to push event", err, "userID", event.UserID)
		}
	}
}

// ConnectionCount reports the live connections for a user.
func (m *Manager) ConnectionCount(userID string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.connections[userID])
}
