package models

// Player is one seat in a room. Index is assigned at join order and doubles
// as the turn-order position. ConnID binds the seat to a transport
// connection and never leaves the process.
type Player struct {
	Index     int    `json:"index"`
	Name      string `json:"name"`
	Pos       int    `json:"pos"`
	Money     int    `json:"money"`
	Connected bool   `json:"connected"`
	ConnID    string `json:"-"`
}
