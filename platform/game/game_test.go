package game

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// recorder implements Emitter and captures every emit for assertions.
type emitted struct {
	Room  string
	Event string
	Data  interface{}
}

type recorder struct {
	mu     sync.Mutex
	events []emitted
}

func (r *recorder) ToRoom(roomID string, event string, data interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, emitted{Room: roomID, Event: event, Data: data})
}

func (r *recorder) ofEvent(event string) []emitted {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []emitted
	for _, e := range r.events {
		if e.Event == event {
			out = append(out, e)
		}
	}
	return out
}

func (r *recorder) last(event string) (emitted, bool) {
	evs := r.ofEvent(event)
	if len(evs) == 0 {
		return emitted{}, false
	}
	return evs[len(evs)-1], true
}

func (r *recorder) count(event string) int {
	return len(r.ofEvent(event))
}

// testSettings returns default settings with a scripted dice sequence.
func testSettings(dice ...int) Settings {
	s := DefaultSettings()
	if len(dice) > 0 {
		i := 0
		s.Dice = func() (int, int) {
			d1, d2 := dice[i], dice[i+1]
			i += 2
			return d1, d2
		}
	}
	return s
}

// newTestRoom builds a registry with the recorder, creates one room and
// seats the named players.
func newTestRoom(t *testing.T, rec *recorder, s Settings, names ...string) *Room {
	t.Helper()
	reg := NewRegistry(s, rec)
	var room *Room
	for i, name := range names {
		r, idx, err := reg.Join("test-room", name, "conn-"+name)
		require.NoError(t, err)
		require.Equal(t, i, idx)
		room = r
	}
	return room
}

func snapshotOf(r *Room) interface{} {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshot()
}

func moneyOf(r *Room, idx int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.Players[idx].Money
}

func ownerOf(r *Room, squareID int) *int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.Squares[squareID].Owner
}

func setPos(r *Room, idx int, pos int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Players[idx].Pos = pos
}

func setMoney(r *Room, idx int, money int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Players[idx].Money = money
}

func setOwner(r *Room, squareID int, owner int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Squares[squareID].Owner = intPtr(owner)
}

func setHouses(r *Room, squareID int, houses int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Squares[squareID].Houses = houses
}
