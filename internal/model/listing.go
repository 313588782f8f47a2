package model

import "time"

type ListingStatus string

const (
	// StatusUnset is the initial state of every listing.
	StatusUnset     ListingStatus = ""
	StatusPurchased ListingStatus = "Purchased"
	StatusRequested ListingStatus = "Requested"
)

// Terminal reports whether the status is one of the closed states.
// A listing in a terminal state accepts no further transaction.
func (s ListingStatus) Terminal() bool {
	return s == StatusPurchased || s == StatusRequested
}

// Listing is a sale or donation offer. Price is nil exactly when the
// listing is a donation.
type Listing struct {
	ID          uint64        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Category    string        `json:"category"`
	IsDonation  bool          `json:"isDonation"`
	Price       *uint         `json:"price,omitempty"`
	PostedBy    string        `json:"postedBy"`
	Img         *string       `json:"img,omitempty"`
	Status      ListingStatus `json:"status"`
	CreatedAt   time.Time     `json:"createdAt"`
}
