package assistant

import (
	"errors"
	"fmt"
)

// Response is the user-facing outcome of one pipeline turn
type Response struct {
	Message string       `json:"message"`
	Data    ResponseData `json:"data"`
}

// ResponseData carries the structured payload alongside the message. The
// pendingConfirmation token, when present, must be echoed verbatim on the
// next turn.
type ResponseData struct {
	Intent              Intent   `json:"intent"`
	PendingConfirmation string   `json:"pendingConfirmation,omitempty"`
	OrderProcessed      bool     `json:"orderProcessed,omitempty"`
	ListingProcessed    bool     `json:"listingProcessed,omitempty"`
	CartUpdated         bool     `json:"cartUpdated,omitempty"`
	Persisted           *bool    `json:"persisted,omitempty"`
	EstimatedPrice      bool     `json:"estimatedPrice,omitempty"`
	ProductID           string   `json:"productId,omitempty"`
	OrderID             string   `json:"orderId,omitempty"`
	ErrorCode           string   `json:"errorCode,omitempty"`
	Actions             []string `json:"actions,omitempty"`
}

// Formatter turns pipeline outcomes into responses. Every error kind maps to
// a distinct, stable template so clients and tests can branch on content.
type Formatter struct{}

// NewFormatter creates a Formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

// FormatPrompt builds the confirmation prompt for a fresh actionable intent.
// product may be nil when the catalog could not be consulted.
func (f *Formatter) FormatPrompt(intent Intent, action PendingAction, token string, product *ProductSummary) Response {
	var msg string
	var actions []string

	switch action.Kind {
	case ActionOrder, ActionCart:
		if product != nil {
			total := product.Price * action.Quantity
			msg = fmt.Sprintf("I found %s from %s at ₹%.2f/%s. Total: ₹%.2f for %.0f%s. Shall I confirm?",
				product.Name, product.FarmName, product.Price, product.Unit, total, action.Quantity, action.Unit)
		} else {
			msg = fmt.Sprintf("I'll order %.0f%s of %s for you. Shall I confirm?",
				action.Quantity, action.Unit, action.Item)
		}
		actions = []string{"Yes, confirm", "No, cancel", "Find different product"}
	case ActionListing:
		if action.Price != nil {
			msg = fmt.Sprintf("You want to list %.0f%s of %s at ₹%.2f per %s. Should I add this to your inventory?",
				action.Quantity, action.Unit, action.Item, *action.Price, action.Unit)
		} else {
			msg = fmt.Sprintf("You want to list %.0f%s of %s. No price given, so I'll suggest the current market rate. Should I add this to your inventory?",
				action.Quantity, action.Unit, action.Item)
		}
		actions = []string{"Yes, list it", "No, let me change details"}
	}

	return Response{
		Message: msg,
		Data: ResponseData{
			Intent:              intent,
			PendingConfirmation: token,
			Actions:             actions,
		},
	}
}

// FormatReprompt handles an ambiguous confirmation: same question again, same
// token, untouched.
func (f *Formatter) FormatReprompt(action PendingAction, token string) Response {
	return Response{
		Message: "Please reply \"yes\" to confirm or \"no\" to cancel.",
		Data: ResponseData{
			Intent:              IntentUnknown,
			PendingConfirmation: token,
			Actions:             []string{"Yes, confirm", "No, cancel"},
		},
	}
}

// FormatCancelled acknowledges a denied pending action
func (f *Formatter) FormatCancelled() Response {
	return Response{
		Message: "No problem, I've cancelled that. Anything else I can help with?",
		Data:    ResponseData{Intent: IntentConfirmationNo},
	}
}

// FormatResult renders an execution outcome
func (f *Formatter) FormatResult(result ExecutionResult) Response {
	persisted := result.Persisted
	data := ResponseData{
		Intent:           IntentConfirmationYes,
		OrderProcessed:   result.OrderProcessed,
		ListingProcessed: result.ListingProcessed,
		CartUpdated:      result.CartUpdated,
		EstimatedPrice:   result.EstimatedPrice,
		Persisted:        &persisted,
		ProductID:        result.ProductID,
		OrderID:          result.OrderID,
	}
	if result.Err != nil {
		data.ErrorCode = ErrorCode(result.Err)
	}
	return Response{Message: result.Message, Data: data}
}

// FormatExtractionError maps slot extraction failures to their templates. No
// pending token is emitted: there is nothing well-formed to confirm.
func (f *Formatter) FormatExtractionError(intent Intent, err error) Response {
	var msg string
	switch {
	case errors.Is(err, ErrMissingQuantity):
		msg = "How much would you like? Please include a quantity, for example \"3 kg\"."
	case errors.Is(err, ErrInvalidQuantity):
		msg = "That quantity doesn't look right. Please use a positive amount, for example \"3 kg\"."
	case errors.Is(err, ErrUnknownItem):
		msg = "I didn't recognize that produce item. Try a common name like tomato, onion or banana."
	default:
		msg = "I couldn't read the details of that request. Could you rephrase it?"
	}
	return Response{
		Message: msg,
		Data: ResponseData{
			Intent:    intent,
			ErrorCode: ErrorCode(err),
		},
	}
}

// FormatNotFound renders a failed catalog lookup at prompt time
func (f *Formatter) FormatNotFound(intent Intent, item string) Response {
	return Response{
		Message: fmt.Sprintf("I couldn't find %s available nearby. Would you like me to check for similar products?", item),
		Data: ResponseData{
			Intent:    intent,
			ErrorCode: ErrorCode(ErrProductNotFound),
			Actions:   []string{"Find similar products", "Browse all products"},
		},
	}
}

// FormatNearby answers a proximity/browse query
func (f *Formatter) FormatNearby() Response {
	return Response{
		Message: "Here's what's fresh near you. You can also tell me what you need, like \"order 2 kg tomato\".",
		Data: ResponseData{
			Intent:  IntentNearbyQuery,
			Actions: []string{"Browse products", "Seasonal picks"},
		},
	}
}

// FormatUnknown is the role-specific fallback for messages the classifier
// could not place.
func (f *Formatter) FormatUnknown(role Role) Response {
	msg := "Welcome! I can help you find fresh produce and place orders. What are you looking for today?"
	actions := []string{"Browse products", "Track order", "Seasonal picks"}
	if role == RoleFarmer {
		msg = "Hello! I can help you list your produce and connect with customers. What would you like to do?"
		actions = []string{"List products", "Check inventory", "Market prices"}
	}
	return Response{
		Message: msg,
		Data:    ResponseData{Intent: IntentUnknown, Actions: actions},
	}
}
