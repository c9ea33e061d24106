package game

// MaxHouses is the per-square cap: 4 houses plus a hotel.
const MaxHouses = 5

// Buy purchases the square the player is standing on.
func (r *Room) Buy(playerIdx int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, err := r.player(playerIdx)
	if err != nil {
		return err
	}
	sq := &r.Squares[p.Pos]
	if sq.Price == 0 || sq.Owner != nil {
		return ErrNotForSale
	}
	if p.Money < sq.Price {
		return ErrInsufficientFunds
	}

	p.Money -= sq.Price
	sq.Owner = intPtr(p.Index)
	r.broadcastState()
	r.notice("%s bought %s for %d.", p.Name, sq.Name, sq.Price)
	return nil
}

// BuildHouse adds one house to the square the player is standing on.
// Checked in order: ownership, buildability, monopoly, even building, house
// cap, funds — the first failure wins. There is no global house supply
// limit.
func (r *Room) BuildHouse(playerIdx int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, err := r.player(playerIdx)
	if err != nil {
		return err
	}
	sq := &r.Squares[p.Pos]
	if sq.Owner == nil || *sq.Owner != p.Index {
		return ErrNotOwner
	}
	if sq.GroupID == nil {
		return ErrNotBuildable
	}

	minHouses := sq.Houses
	for i := range r.Squares {
		g := r.Squares[i].GroupID
		if g == nil || *g != *sq.GroupID {
			continue
		}
		o := r.Squares[i].Owner
		if o == nil || *o != p.Index {
			return ErrNoMonopoly
		}
		if r.Squares[i].Houses < minHouses {
			minHouses = r.Squares[i].Houses
		}
	}
	if sq.Houses > minHouses {
		return ErrUnevenBuilding
	}
	if sq.Houses >= MaxHouses {
		return ErrMaxHousesReached
	}
	if p.Money < sq.HousePrice {
		return ErrInsufficientFunds
	}

	p.Money -= sq.HousePrice
	sq.Houses++
	r.broadcastState()
	r.notice("%s built a house on %s for %d.", p.Name, sq.Name, sq.HousePrice)
	return nil
}
