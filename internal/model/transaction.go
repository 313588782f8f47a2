package model

type TransactionMode string

const (
	ModeBuy     TransactionMode = "buy"
	ModeRequest TransactionMode = "request"
)

// TransactionRequest carries the buyer/requester details for one action on
// one listing. It is ephemeral: applied to the listing's status and then
// discarded, never stored.
type TransactionRequest struct {
	Mode      TransactionMode
	ListingID uint64
	Name      string
	Contact   string
	// Message is the delivery address in buy mode and a free-form note in
	// request mode.
	Message string
}
