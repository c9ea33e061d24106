package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateLayout(t *testing.T) {
	squares := Generate()
	require.Len(t, squares, NumSquares)

	for _, sq := range squares {
		if sq.ID%10 == 0 {
			assert.Equal(t, 0, sq.Price, "corner %d", sq.ID)
			assert.Equal(t, 0, sq.Rent, "corner %d", sq.ID)
			assert.Nil(t, sq.GroupID, "corner %d", sq.ID)
		} else {
			assert.Equal(t, 100+(sq.ID%5)*20, sq.Price, "square %d", sq.ID)
			assert.Equal(t, 50, sq.HousePrice, "square %d", sq.ID)
			require.NotNil(t, sq.GroupID, "square %d", sq.ID)
			assert.Equal(t, (sq.ID%10)/2, *sq.GroupID, "square %d", sq.ID)
			if sq.Price >= 100 {
				assert.Equal(t, sq.Price/10, sq.Rent, "square %d", sq.ID)
			}
		}
		assert.Nil(t, sq.Owner)
		assert.Equal(t, 0, sq.Houses)
	}
}

func TestGenerateNamedSquares(t *testing.T) {
	squares := Generate()

	assert.Equal(t, "Start", squares[PosStart].Name)
	assert.Equal(t, "Income Tax", squares[PosIncomeTax].Name)
	assert.Equal(t, "Jail", squares[PosJail].Name)
	assert.Equal(t, "Free Parking", squares[PosFreeParking].Name)
	assert.Equal(t, "Go To Jail", squares[PosGoToJail].Name)
	assert.Equal(t, "Luxury Tax", squares[PosLuxuryTax].Name)
	assert.Equal(t, "Square 7", squares[7].Name)
}

func TestGroupsRepeatAcrossSides(t *testing.T) {
	squares := Generate()

	// the same offset on each side shares a group
	for _, ids := range [][]int{{1, 11, 21, 31}, {6, 16, 26, 36}} {
		first := squares[ids[0]].GroupID
		require.NotNil(t, first)
		for _, id := range ids[1:] {
			require.NotNil(t, squares[id].GroupID)
			assert.Equal(t, *first, *squares[id].GroupID)
		}
	}
}

func TestGetByID(t *testing.T) {
	squares := Generate()

	sq, err := GetByID(13, squares)
	require.NoError(t, err)
	assert.Equal(t, 13, sq.ID)

	_, err = GetByID(-1, squares)
	require.Error(t, err)
	_, err = GetByID(NumSquares, squares)
	require.Error(t, err)
}
