package game

import (
	"math/rand"
	"sort"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/veldkamp/boardwalk-backend/app/models"
)

// Settings carries the game constants for every room a registry creates.
// Dice is injectable so tests can fix the rolls; left nil it defaults to two
// uniform [1,6] draws.
type Settings struct {
	MaxPlayers     int
	StartMoney     int
	PassGoBonus    int
	LuxuryTax      int
	IncomeTaxPct   int // percentage of net worth, rounded up
	AuctionTimeout time.Duration
	Dice           func() (int, int)
}

// DefaultSettings mirrors the stock game constants.
func DefaultSettings() Settings {
	return Settings{
		MaxPlayers:     6,
		StartMoney:     1500,
		PassGoBonus:    200,
		LuxuryTax:      75,
		IncomeTaxPct:   10,
		AuctionTimeout: 30 * time.Second,
	}
}

// Registry maps room ids to live rooms, creating them lazily on first
// reference. It is owned by the server process and passed to whatever needs
// it; there is no package-level instance.
type Registry struct {
	mu       sync.Mutex
	rooms    map[string]*Room
	settings Settings
	emitter  Emitter
}

func NewRegistry(settings Settings, emitter Emitter) *Registry {
	if settings.Dice == nil {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		var rngMu sync.Mutex
		settings.Dice = func() (int, int) {
			rngMu.Lock()
			defer rngMu.Unlock()
			return rng.Intn(6) + 1, rng.Intn(6) + 1
		}
	}
	return &Registry{
		rooms:    make(map[string]*Room),
		settings: settings,
		emitter:  emitter,
	}
}

// GetOrCreate returns the room for id, creating it on first reference.
// Repeated calls with the same id return the same instance.
func (g *Registry) GetOrCreate(id string) *Room {
	g.mu.Lock()
	defer g.mu.Unlock()
	r, ok := g.rooms[id]
	if !ok {
		r = newRoom(id, g.settings, g.emitter)
		g.rooms[id] = r
		log.WithField("room", id).Info("room created")
	}
	return r
}

func (g *Registry) Get(id string) (*Room, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	r, ok := g.rooms[id]
	return r, ok
}

// Join seats a player in the room, creating the room if needed. The returned
// index is the player's permanent seat and turn-order position.
func (g *Registry) Join(roomID string, name string, connID string) (*Room, int, error) {
	if roomID == "" || name == "" {
		return nil, 0, ErrMissingParameters
	}
	room := g.GetOrCreate(roomID)
	idx, err := room.Join(name, connID)
	if err != nil {
		return nil, 0, err
	}
	return room, idx, nil
}

// List reports every known room for the lobby, sorted by id.
func (g *Registry) List() []models.RoomInfo {
	g.mu.Lock()
	rooms := make([]*Room, 0, len(g.rooms))
	for _, r := range g.rooms {
		rooms = append(rooms, r)
	}
	g.mu.Unlock()

	infos := make([]models.RoomInfo, 0, len(rooms))
	for _, r := range rooms {
		infos = append(infos, r.Info())
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return infos
}
