package game

// Emitter is the fan-out port. Engines compute payloads under the room lock
// and hand them off; the socket layer multicasts them to every connection in
// the room. Keeping the core behind this interface keeps it testable without
// a transport.
type Emitter interface {
	ToRoom(roomID string, event string, data interface{})
}

// Event names shared with the transport layer.
const (
	EventGameUpdate       = "game_update"
	EventActionNotice     = "action_notice"
	EventActionError      = "action_error"
	EventAuctionStarted   = "auction_started"
	EventAuctionBidUpdate = "auction_bid_update"
	EventAuctionPassed    = "auction_passed"
	EventAuctionEnded     = "auction_ended"
)
