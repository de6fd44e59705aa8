package domain

// User is the loyalty record for one customer. Records are created lazily
// on first touch.
type User struct {
	UserID      string `json:"userId"`
	Points      int    `json:"points"`
	IsMember    bool   `json:"isMember"`
	LastOrderID string `json:"lastOrderId"`
}

// NewUser returns the default record for a first-seen user.
func NewUser(userID string) *User {
	return &User{UserID: userID, IsMember: true}
}
