package board

import (
	"errors"
	"fmt"

	"github.com/veldkamp/boardwalk-backend/app/models"
)

const NumSquares = 40

// Special positions resolved during landing.
const (
	PosStart       = 0
	PosIncomeTax   = 4
	PosJail        = 10
	PosFreeParking = 20
	PosGoToJail    = 30
	PosLuxuryTax   = 38
)

// Generate builds the fixed 40-square layout. Corners are not purchasable;
// every other square gets a price derived from its position and shares a
// group id with the squares at the same offset on the other board sides, so
// monopolies repeat around the board.
func Generate() []models.Square {
	squares := make([]models.Square, NumSquares)
	for i := 0; i < NumSquares; i++ {
		corner := i%10 == 0
		price := 0
		if !corner {
			price = 100 + (i%5)*20
		}
		sq := models.Square{
			ID:         i,
			Name:       squareName(i),
			Price:      price,
			Rent:       baseRent(corner, price),
			HousePrice: housePrice(price),
		}
		if !corner {
			group := (i % 10) / 2
			sq.GroupID = &group
		}
		squares[i] = sq
	}
	return squares
}

func squareName(i int) string {
	switch i {
	case PosStart:
		return "Start"
	case PosIncomeTax:
		return "Income Tax"
	case PosJail:
		return "Jail"
	case PosFreeParking:
		return "Free Parking"
	case PosGoToJail:
		return "Go To Jail"
	case PosLuxuryTax:
		return "Luxury Tax"
	}
	return fmt.Sprintf("Square %d", i)
}

func baseRent(corner bool, price int) int {
	if corner {
		return 0
	}
	if r := price / 10; r > 10 {
		return r
	}
	return 10
}

func housePrice(price int) int {
	if p := price / 4; p > 50 {
		return p
	}
	return 50
}

func GetByID(id int, squares []models.Square) (models.Square, error) {
	if id < 0 || id >= len(squares) {
		return models.Square{}, errors.New("not found")
	}
	return squares[id], nil
}
