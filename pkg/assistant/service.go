package assistant

import (
	"context"
	"errors"
	"time"

	"github.com/stellarsoil/marketplace/pkg/logger"
)

// Request is one inbound chat turn
type Request struct {
	Text         string
	Role         Role
	UserID       string
	PendingToken string
	History      []HistoryEntry
}

// Service wires the pipeline together: classify, extract, propose, confirm,
// execute, format. The service holds no per-conversation state; the pending
// action travels through the client as a signed token.
type Service struct {
	classifier *Classifier
	extractor  *Extractor
	codec      *TokenCodec
	executor   *Executor
	formatter  *Formatter
	catalog    ProductCatalog
	logger     logger.Logger
}

// NewService creates the assistant Service
func NewService(codec *TokenCodec, executor *Executor, catalog ProductCatalog, log logger.Logger) *Service {
	return &Service{
		classifier: NewClassifier(),
		extractor:  NewExtractor(),
		codec:      codec,
		executor:   executor,
		formatter:  NewFormatter(),
		catalog:    catalog,
		logger:     log,
	}
}

// HandleMessage processes one chat turn and always returns a well-formed
// response; pipeline errors are folded into user-facing messages.
func (s *Service) HandleMessage(ctx context.Context, req Request) Response {
	// A pending token shifts this turn into confirmation mode, provided the
	// token still verifies. The client is untrusted; a token that fails
	// validation is ignored and the message is classified from scratch.
	if req.PendingToken != "" {
		action, err := s.codec.Decode(req.PendingToken)
		if err == nil {
			return s.handleConfirmation(ctx, req, action)
		}
		s.logger.Warn("discarding invalid pending token", "user_id", req.UserID, "error", err)
	}

	intent := s.classifier.Classify(req.Text, req.Role)
	s.logger.Debug("classified message", "intent", intent, "role", req.Role)

	switch intent {
	case IntentOrderRequest:
		return s.proposeAction(ctx, req, intent, ActionOrder)
	case IntentAddToCart:
		return s.proposeAction(ctx, req, intent, ActionCart)
	case IntentListingRequest:
		return s.proposeAction(ctx, req, intent, ActionListing)
	case IntentNearbyQuery:
		return s.formatter.FormatNearby()
	default:
		return s.formatter.FormatUnknown(req.Role)
	}
}

// handleConfirmation resolves a follow-up message against a verified pending
// action.
func (s *Service) handleConfirmation(ctx context.Context, req Request, action PendingAction) Response {
	switch ResolveConfirmation(req.Text) {
	case Affirm:
		result := s.executor.Execute(ctx, req.UserID, action)
		return s.formatter.FormatResult(result)
	case Deny:
		return s.formatter.FormatCancelled()
	default:
		// Re-prompt with the identical token; the pending action is not lost
		return s.formatter.FormatReprompt(action, req.PendingToken)
	}
}

// proposeAction extracts slots, builds the pending action and returns the
// confirmation prompt. Nothing is persisted on this turn.
func (s *Service) proposeAction(ctx context.Context, req Request, intent Intent, kind ActionKind) Response {
	slots, err := s.extractor.Extract(req.Text, intent)
	if err != nil {
		return s.formatter.FormatExtractionError(intent, err)
	}

	action := PendingAction{
		Kind:      kind,
		Item:      slots.Item,
		Quantity:  slots.Quantity,
		Unit:      slots.Unit,
		Price:     slots.Price,
		CreatedAt: time.Now().UTC(),
	}

	// For buyer intents, quote from the live catalog and pin the product id
	// so confirmation executes against exactly what was quoted.
	var product *ProductSummary
	if kind == ActionOrder || kind == ActionCart {
		product, err = s.catalog.FindByName(ctx, slots.Item)
		switch {
		case err == nil && product != nil:
			action.ProductID = product.ID
		case errors.Is(err, ErrPersistenceUnavailable):
			// Quote blind; execution re-resolves (or degrades) later
			s.logger.Warn("catalog unavailable at prompt time", "item", slots.Item)
			product = nil
		default:
			return s.formatter.FormatNotFound(intent, slots.Item)
		}
	}

	token, err := s.codec.Encode(action)
	if err != nil {
		s.logger.Error("failed to encode pending action", "error", err)
		return s.formatter.FormatUnknown(req.Role)
	}

	return s.formatter.FormatPrompt(intent, action, token, product)
}
