package models

// Outbound payloads. GameUpdate is the full-room snapshot broadcast after
// every mutation; the rest are the per-event payloads around it.

type GameUpdate struct {
	Squares       []Square     `json:"squares"`
	Players       []Player     `json:"players"`
	CurrentPlayer int          `json:"currentPlayer"`
	Rolled        bool         `json:"rolled"`
	Auction       *AuctionView `json:"auction"`
	ParkingPool   int          `json:"parkingPool"`
}

// AuctionView is the public projection of a running auction.
type AuctionView struct {
	PropertyID         int   `json:"propertyId"`
	HighestBid         int   `json:"highestBid"`
	HighestBidderIndex *int  `json:"highestBidderIndex"`
	Active             bool  `json:"active"`
	Passed             []int `json:"passed"`
}

type Notice struct {
	Message string `json:"message"`
}

// RollResult goes back privately to the roller only.
type RollResult struct {
	Die1  int `json:"die1"`
	Die2  int `json:"die2"`
	Steps int `json:"steps"`
}

type AuctionStarted struct {
	PropertyID    int `json:"propertyId"`
	StartingPrice int `json:"startingPrice"`
	HousePrice    int `json:"housePrice"`
}

type AuctionBidUpdate struct {
	HighestBid         int  `json:"highestBid"`
	HighestBidderIndex *int `json:"highestBidderIndex"`
}

type AuctionPassed struct {
	PlayerIndex int `json:"playerIndex"`
}

type AuctionEnded struct {
	WinnerIndex *int   `json:"winnerIndex"`
	Amount      int    `json:"amount"`
	PropertyID  int    `json:"propertyId"`
	Reason      string `json:"reason,omitempty"`
}

// RoomInfo is the lobby listing entry.
type RoomInfo struct {
	ID         string `json:"id"`
	Players    int    `json:"players"`
	MaxPlayers int    `json:"maxPlayers"`
}
