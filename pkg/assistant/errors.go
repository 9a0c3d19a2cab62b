package assistant

import "errors"

// Pipeline errors. Extraction and execution failures are recovered into
// user-facing messages by the formatter; none of these escapes a request.
var (
	// ErrMissingQuantity indicates the message carried no quantity at all
	ErrMissingQuantity = errors.New("no quantity found in message")

	// ErrInvalidQuantity indicates a quantity was found but is not a positive number
	ErrInvalidQuantity = errors.New("quantity must be a positive number")

	// ErrUnknownItem indicates no crop from the vocabulary appears in the message
	ErrUnknownItem = errors.New("no known produce item found in message")

	// ErrProductNotFound indicates the named item resolved to no active product
	ErrProductNotFound = errors.New("product not found")

	// ErrInsufficientStock indicates the requested quantity exceeds available stock
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrPersistenceUnavailable indicates the backing store could not be reached.
	// Collaborators wrap connection-level failures with this sentinel so the
	// executor can degrade to a simulated result instead of failing the request.
	ErrPersistenceUnavailable = errors.New("persistence unavailable")

	// ErrInvalidToken indicates a pending-action token failed signature or
	// payload validation
	ErrInvalidToken = errors.New("invalid pending action token")
)

// ErrorCode returns the stable wire code for a pipeline error, or "" when the
// error is not part of the taxonomy.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrMissingQuantity):
		return "MISSING_QUANTITY"
	case errors.Is(err, ErrInvalidQuantity):
		return "INVALID_QUANTITY"
	case errors.Is(err, ErrUnknownItem):
		return "UNKNOWN_ITEM"
	case errors.Is(err, ErrProductNotFound):
		return "PRODUCT_NOT_FOUND"
	case errors.Is(err, ErrInsufficientStock):
		return "INSUFFICIENT_STOCK"
	case errors.Is(err, ErrPersistenceUnavailable):
		return "PERSISTENCE_UNAVAILABLE"
	case errors.Is(err, ErrInvalidToken):
		return "INVALID_TOKEN"
	default:
		return ""
	}
}
