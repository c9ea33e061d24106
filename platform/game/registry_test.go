package game

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreateIsIdempotent(t *testing.T) {
	reg := NewRegistry(testSettings(), &recorder{})

	a := reg.GetOrCreate("alpha")
	b := reg.GetOrCreate("alpha")
	c := reg.GetOrCreate("beta")

	require.Same(t, a, b)
	require.NotSame(t, a, c)
}

func TestJoinAssignsSeatsInOrder(t *testing.T) {
	reg := NewRegistry(testSettings(), &recorder{})

	for i := 0; i < 3; i++ {
		room, idx, err := reg.Join("alpha", fmt.Sprintf("player-%d", i), fmt.Sprintf("conn-%d", i))
		require.NoError(t, err)
		assert.Equal(t, i, idx)
		assert.Equal(t, 1500, moneyOf(room, idx))
	}

	room, _ := reg.Get("alpha")
	require.Len(t, room.Players, 3)
	for i, p := range room.Players {
		assert.Equal(t, i, p.Index)
		assert.True(t, p.Connected)
		assert.Equal(t, 0, p.Pos)
	}
}

func TestJoinRejectsWhenRoomFull(t *testing.T) {
	s := testSettings()
	s.MaxPlayers = 2
	reg := NewRegistry(s, &recorder{})

	_, _, err := reg.Join("alpha", "a", "c1")
	require.NoError(t, err)
	_, _, err = reg.Join("alpha", "b", "c2")
	require.NoError(t, err)

	_, _, err = reg.Join("alpha", "c", "c3")
	require.ErrorIs(t, err, ErrRoomFull)

	room, _ := reg.Get("alpha")
	require.Len(t, room.Players, 2)
}

func TestJoinRequiresRoomAndName(t *testing.T) {
	reg := NewRegistry(testSettings(), &recorder{})

	_, _, err := reg.Join("", "a", "c1")
	require.ErrorIs(t, err, ErrMissingParameters)
	_, _, err = reg.Join("alpha", "", "c1")
	require.ErrorIs(t, err, ErrMissingParameters)
}

func TestListReportsOccupancy(t *testing.T) {
	reg := NewRegistry(testSettings(), &recorder{})
	reg.Join("beta", "a", "c1")
	reg.Join("alpha", "b", "c2")
	reg.Join("alpha", "c", "c3")

	infos := reg.List()
	require.Len(t, infos, 2)
	assert.Equal(t, "alpha", infos[0].ID)
	assert.Equal(t, 2, infos[0].Players)
	assert.Equal(t, 6, infos[0].MaxPlayers)
	assert.Equal(t, "beta", infos[1].ID)
	assert.Equal(t, 1, infos[1].Players)
}

func TestBroadcastStateDoesNotMutate(t *testing.T) {
	rec := &recorder{}
	room := newTestRoom(t, rec, testSettings(), "a", "b")

	before := snapshotOf(room)
	updates := rec.count(EventGameUpdate)

	room.BroadcastState()
	room.BroadcastState()

	assert.Equal(t, updates+2, rec.count(EventGameUpdate))
	assert.Equal(t, before, snapshotOf(room))
}

func TestMarkDisconnectedKeepsSeat(t *testing.T) {
	rec := &recorder{}
	room := newTestRoom(t, rec, testSettings(), "a", "b")

	room.MarkDisconnected("conn-a")

	require.Len(t, room.Players, 2)
	assert.False(t, room.Players[0].Connected)
	assert.True(t, room.Players[1].Connected)
}
