package game

import (
	"sort"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/veldkamp/boardwalk-backend/app/models"
	"github.com/veldkamp/boardwalk-backend/platform/board"
)

// Auction is the at-most-one timed bidding machine per room. It runs
// independently of whose turn it is. The inactivity timer is owned here;
// every touch or resolution stops the previous one before anything else
// happens, so a stale fire can never race a fresh auction.
type Auction struct {
	PropertyID    int
	HighestBid    int
	HighestBidder int // -1 until the first bid
	Passed        map[int]bool
	LastActivity  time.Time

	timer *time.Timer
	gen   int // bumped on every re-arm; a fired timer from an older arm is void
}

// view must be called with the room lock held.
func (a *Auction) view() *models.AuctionView {
	v := &models.AuctionView{
		PropertyID: a.PropertyID,
		HighestBid: a.HighestBid,
		Active:     true,
		Passed:     make([]int, 0, len(a.Passed)),
	}
	if a.HighestBidder >= 0 {
		v.HighestBidderIndex = intPtr(a.HighestBidder)
	}
	for idx := range a.Passed {
		v.Passed = append(v.Passed, idx)
	}
	sort.Ints(v.Passed)
	return v
}

// StartAuction opens bidding on propertyID and arms the inactivity timer.
// Only the board bounds are validated; an owned square can be re-auctioned.
func (r *Room) StartAuction(playerIdx int, propertyID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.player(playerIdx); err != nil {
		return err
	}
	if r.auction != nil {
		return ErrAuctionInProgress
	}
	sq, err := board.GetByID(propertyID, r.Squares)
	if err != nil {
		return ErrInvalidProperty
	}

	a := &Auction{
		PropertyID:    propertyID,
		HighestBidder: -1,
		Passed:        make(map[int]bool),
		LastActivity:  time.Now(),
	}
	r.auction = a
	r.armTimer(a)

	r.emitter.ToRoom(r.ID, EventAuctionStarted, models.AuctionStarted{
		PropertyID:    propertyID,
		StartingPrice: sq.Price,
		HousePrice:    sq.HousePrice,
	})
	r.broadcastState()
	return nil
}

// Bid places amount on the active auction and pushes the inactivity
// deadline out.
func (r *Room) Bid(playerIdx int, amount int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, err := r.player(playerIdx)
	if err != nil {
		return err
	}
	a := r.auction
	if a == nil {
		return ErrNoAuction
	}
	if a.Passed[playerIdx] {
		return ErrAlreadyPassed
	}
	if amount <= a.HighestBid {
		return ErrBidTooLow
	}
	if p.Money < amount {
		return ErrInsufficientFunds
	}

	a.HighestBid = amount
	a.HighestBidder = playerIdx
	a.LastActivity = time.Now()
	r.armTimer(a)

	r.emitter.ToRoom(r.ID, EventAuctionBidUpdate, models.AuctionBidUpdate{
		HighestBid:         a.HighestBid,
		HighestBidderIndex: intPtr(a.HighestBidder),
	})
	r.broadcastState()
	return nil
}

// Pass withdraws playerIdx from the auction. Once at most one bidder is left
// and someone has bid, the auction resolves without waiting for the timer.
func (r *Room) Pass(playerIdx int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.player(playerIdx); err != nil {
		return err
	}
	a := r.auction
	if a == nil {
		return ErrNoAuction
	}

	a.Passed[playerIdx] = true
	a.LastActivity = time.Now()
	r.armTimer(a)
	r.emitter.ToRoom(r.ID, EventAuctionPassed, models.AuctionPassed{PlayerIndex: playerIdx})
	r.broadcastState()

	active := 0
	for _, p := range r.Players {
		if !a.Passed[p.Index] {
			active++
		}
	}
	if active <= 1 && a.HighestBidder >= 0 {
		r.resolveAuction()
	}
	return nil
}

// armTimer schedules the inactivity resolution for a, stopping the previous
// timer first. Stop cannot cancel a callback that already fired and is
// waiting on mu, so each arm also bumps a generation the callback must
// match: a timer from an older arm (or an older auction) is a no-op.
func (r *Room) armTimer(a *Auction) {
	if a.timer != nil {
		a.timer.Stop()
	}
	a.gen++
	gen := a.gen
	a.timer = time.AfterFunc(r.settings.AuctionTimeout, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if r.auction != a || a.gen != gen {
			return
		}
		r.resolveAuction()
	})
}

// resolveAuction settles and clears the auction. Must be called with mu
// held. The winner's solvency is re-checked here: their cash may have
// changed since the bid was placed.
func (r *Room) resolveAuction() {
	a := r.auction
	if a == nil {
		return
	}
	if a.timer != nil {
		a.timer.Stop()
	}

	ended := models.AuctionEnded{PropertyID: a.PropertyID}
	if a.HighestBidder >= 0 {
		winner := r.Players[a.HighestBidder]
		if winner.Money >= a.HighestBid {
			winner.Money -= a.HighestBid
			r.Squares[a.PropertyID].Owner = intPtr(a.HighestBidder)
			ended.WinnerIndex = intPtr(a.HighestBidder)
			ended.Amount = a.HighestBid
		} else {
			ended.Reason = "winner insufficient funds"
		}
	}

	log.WithFields(log.Fields{
		"room":     r.ID,
		"property": a.PropertyID,
		"bid":      a.HighestBid,
	}).Debug("auction resolved")

	r.emitter.ToRoom(r.ID, EventAuctionEnded, ended)
	r.auction = nil
	r.broadcastState()
}
