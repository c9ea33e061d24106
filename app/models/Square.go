package models

// Square is one board position. Owner and GroupID are nil for unowned and
// ungrouped squares so they serialize as JSON null, matching the client
// protocol.
type Square struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Price      int    `json:"price"`
	Rent       int    `json:"rent"`
	Owner      *int   `json:"owner"`
	Houses     int    `json:"houses"`
	HousePrice int    `json:"housePrice"`
	GroupID    *int   `json:"groupId"`
}
