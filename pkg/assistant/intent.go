package assistant

// Intent is the classified purpose of a chat message
type Intent string

const (
	IntentOrderRequest    Intent = "order_request"
	IntentListingRequest  Intent = "listing_request"
	IntentAddToCart       Intent = "add_to_cart"
	IntentNearbyQuery     Intent = "nearby_query"
	IntentConfirmationYes Intent = "confirmation_yes"
	IntentConfirmationNo  Intent = "confirmation_no"
	IntentUnknown         Intent = "unknown"
)

// Role identifies which side of the marketplace the caller is on
type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleFarmer Role = "farmer"
)

// HistoryEntry is one prior turn of the conversation, echoed by the client
type HistoryEntry struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}
