package game

import (
	"fmt"
	"sync"

	"github.com/veldkamp/boardwalk-backend/app/models"
	"github.com/veldkamp/boardwalk-backend/platform/board"
)

// Room is one game. Every command and the auction timer callback lock mu and
// run to completion, so room state is never touched by two operations at
// once. Rooms are independent; there is no cross-room synchronization.
type Room struct {
	mu sync.Mutex

	ID            string
	Squares       []models.Square
	Players       []*models.Player
	CurrentPlayer int
	Rolled        bool
	ParkingPool   int

	auction  *Auction
	settings Settings
	emitter  Emitter
}

func newRoom(id string, settings Settings, emitter Emitter) *Room {
	return &Room{
		ID:       id,
		Squares:  board.Generate(),
		settings: settings,
		emitter:  emitter,
	}
}

// Join appends a player at the next seat. The caller broadcasts once the
// connection has entered the transport room, so the joiner sees the snapshot
// too.
func (r *Room) Join(name string, connID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.Players) >= r.settings.MaxPlayers {
		return 0, ErrRoomFull
	}
	p := &models.Player{
		Index:     len(r.Players),
		Name:      name,
		Money:     r.settings.StartMoney,
		Connected: true,
		ConnID:    connID,
	}
	r.Players = append(r.Players, p)
	return p.Index, nil
}

// MarkDisconnected flips the connected flag of the player bound to connID.
// The seat is never removed.
func (r *Room) MarkDisconnected(connID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.Players {
		if p.ConnID == connID {
			p.Connected = false
			r.broadcastState()
			return
		}
	}
}

// BroadcastState re-sends the current snapshot. Used for on-demand resync;
// it never mutates state.
func (r *Room) BroadcastState() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.broadcastState()
}

func (r *Room) Info() models.RoomInfo {
	r.mu.Lock()
	defer r.mu.Unlock()
	return models.RoomInfo{
		ID:         r.ID,
		Players:    len(r.Players),
		MaxPlayers: r.settings.MaxPlayers,
	}
}

// AuctionActive reports whether an auction is currently running.
func (r *Room) AuctionActive() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.auction != nil
}

func (r *Room) player(idx int) (*models.Player, error) {
	if idx < 0 || idx >= len(r.Players) {
		return nil, ErrInvalidPlayer
	}
	return r.Players[idx], nil
}

// snapshot copies the public state. Must be called with mu held.
func (r *Room) snapshot() models.GameUpdate {
	squares := make([]models.Square, len(r.Squares))
	copy(squares, r.Squares)
	players := make([]models.Player, len(r.Players))
	for i, p := range r.Players {
		players[i] = *p
	}
	up := models.GameUpdate{
		Squares:       squares,
		Players:       players,
		CurrentPlayer: r.CurrentPlayer,
		Rolled:        r.Rolled,
		ParkingPool:   r.ParkingPool,
	}
	if r.auction != nil {
		up.Auction = r.auction.view()
	}
	return up
}

func (r *Room) broadcastState() {
	r.emitter.ToRoom(r.ID, EventGameUpdate, r.snapshot())
}

func (r *Room) notice(format string, args ...interface{}) {
	r.emitter.ToRoom(r.ID, EventActionNotice, models.Notice{Message: fmt.Sprintf(format, args...)})
}

func intPtr(i int) *int { return &i }
