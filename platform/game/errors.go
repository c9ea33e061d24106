package game

import "errors"

// One sentinel per rejected command. The socket layer turns these into ack
// payloads or action_error emits, so the messages double as user-facing
// text. A failed command never partially applies.
var (
	ErrMissingParameters = errors.New("missing parameters")
	ErrRoomFull          = errors.New("room full")
	ErrMissingContext    = errors.New("missing context")
	ErrInvalidPlayer     = errors.New("invalid player")

	ErrNotYourTurn   = errors.New("not your turn")
	ErrAlreadyRolled = errors.New("already rolled this turn")

	ErrNotForSale        = errors.New("not for sale")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrNotOwner          = errors.New("you must own this square to build")
	ErrNotBuildable      = errors.New("houses cannot be built on this square")
	ErrNoMonopoly        = errors.New("you need a monopoly to build houses")
	ErrUnevenBuilding    = errors.New("build evenly across the group; start where there are the fewest houses")
	ErrMaxHousesReached  = errors.New("maximum number of houses reached")

	ErrAuctionInProgress = errors.New("auction already active")
	ErrNoAuction         = errors.New("no auction active")
	ErrAlreadyPassed     = errors.New("you passed")
	ErrBidTooLow         = errors.New("bid too low")
	ErrInvalidProperty   = errors.New("invalid property")
)
