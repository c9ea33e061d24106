package game

import (
	"github.com/veldkamp/boardwalk-backend/app/models"
	"github.com/veldkamp/boardwalk-backend/platform/board"
)

// Roll moves the current player and resolves the landing. The dice outcome
// is returned so the transport can reply privately to the roller; everything
// else goes out as room broadcasts.
func (r *Room) Roll(playerIdx int) (models.RollResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, err := r.player(playerIdx)
	if err != nil {
		return models.RollResult{}, err
	}
	if r.CurrentPlayer != playerIdx {
		return models.RollResult{}, ErrNotYourTurn
	}
	if r.Rolled {
		return models.RollResult{}, ErrAlreadyRolled
	}

	die1, die2 := r.settings.Dice()
	steps := die1 + die2
	from := p.Pos
	p.Pos = (p.Pos + steps) % board.NumSquares
	if p.Pos < from {
		p.Money += r.settings.PassGoBonus
		r.notice("%s passed Start and collects %d.", p.Name, r.settings.PassGoBonus)
	}

	r.resolveLanding(p)
	r.Rolled = true
	r.broadcastState()
	return models.RollResult{Die1: die1, Die2: die2, Steps: steps}, nil
}

// resolveLanding applies the effect of p's destination square. The cases are
// a fixed priority order; the first match wins.
func (r *Room) resolveLanding(p *models.Player) {
	sq := &r.Squares[p.Pos]
	switch {
	case p.Pos == board.PosIncomeTax:
		pct := r.settings.IncomeTaxPct
		tax := (r.netWorth(p)*pct + 99) / 100 // rounded up
		paid := r.payIntoPool(p, tax)
		r.notice("%s pays Income Tax (%d%% of net worth = %d). %d goes to the Free Parking pool.", p.Name, pct, tax, paid)

	case p.Pos == board.PosLuxuryTax:
		paid := r.payIntoPool(p, r.settings.LuxuryTax)
		r.notice("%s pays Luxury Tax (%d). %d goes to the Free Parking pool.", p.Name, r.settings.LuxuryTax, paid)

	case p.Pos == board.PosFreeParking:
		if r.ParkingPool > 0 {
			p.Money += r.ParkingPool
			r.notice("%s landed on Free Parking and collects the pool of %d!", p.Name, r.ParkingPool)
			r.ParkingPool = 0
		} else {
			r.notice("%s landed on Free Parking, but the pool is empty.", p.Name)
		}

	case sq.Owner == nil && sq.Price > 0:
		// up to the mover to buy or start an auction

	case sq.Owner != nil && *sq.Owner != p.Index:
		rent := sq.Rent * (1 + sq.Houses)
		pay := rent
		if p.Money < pay {
			pay = p.Money
		}
		// the owner gets what was actually paid, not the nominal rent
		owner := r.Players[*sq.Owner]
		p.Money -= pay
		owner.Money += pay
		r.notice("%s pays %d rent to %s.", p.Name, pay, owner.Name)

	default:
		r.notice("%s landed on %s.", p.Name, sq.Name)
	}
}

// payIntoPool moves min(cash, amount) into the parking pool. An insolvent
// payer under-pays and play continues; no debt is created.
func (r *Room) payIntoPool(p *models.Player, amount int) int {
	pay := amount
	if p.Money < pay {
		pay = p.Money
	}
	p.Money -= pay
	r.ParkingPool += pay
	return pay
}

// netWorth is cash plus the nominal value of owned squares and their houses.
// Used only for income tax.
func (r *Room) netWorth(p *models.Player) int {
	worth := p.Money
	for _, sq := range r.Squares {
		if sq.Owner != nil && *sq.Owner == p.Index {
			worth += sq.Price + sq.Houses*sq.HousePrice
		}
	}
	return worth
}

// EndTurn advances the turn pointer and clears the rolled flag. Any joined
// player may end the turn; the caller is only bounds-checked.
func (r *Room) EndTurn(playerIdx int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, err := r.player(playerIdx); err != nil {
		return err
	}
	r.CurrentPlayer = (r.CurrentPlayer + 1) % len(r.Players)
	r.Rolled = false
	r.broadcastState()
	return nil
}
