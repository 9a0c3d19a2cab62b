package assistant

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ActionKind names the mutation a pending action proposes
type ActionKind string

const (
	ActionOrder   ActionKind = "order"
	ActionListing ActionKind = "listing"
	ActionCart    ActionKind = "cart"
)

// PendingAction is a proposed mutation awaiting user confirmation. The server
// keeps no copy between requests: the action is serialized into a signed
// token, handed to the client, and re-validated when it comes back.
type PendingAction struct {
	Kind      ActionKind `json:"kind"`
	Item      string     `json:"item"`
	ProductID string     `json:"product_id,omitempty"`
	Quantity  float64    `json:"quantity"`
	Unit      string     `json:"unit"`
	Price     *float64   `json:"price,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// Validate checks the action's internal consistency. The client holds the
// token between turns, so this runs again on every decode.
func (a PendingAction) Validate() error {
	switch a.Kind {
	case ActionOrder, ActionListing, ActionCart:
	default:
		return ErrInvalidToken
	}
	if a.Item == "" || a.Quantity <= 0 || a.Unit == "" {
		return ErrInvalidToken
	}
	if a.Price != nil && *a.Price <= 0 {
		return ErrInvalidToken
	}
	return nil
}

type pendingClaims struct {
	Action PendingAction `json:"action"`
	jwt.RegisteredClaims
}

// TokenCodec signs pending actions into tamper-evident tokens and verifies
// them on the way back. A zero ttl means tokens do not expire; staleness
// policy is a configuration decision, not a code change.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenCodec creates a TokenCodec signing with secret
func NewTokenCodec(secret []byte, ttl time.Duration) *TokenCodec {
	return &TokenCodec{secret: secret, ttl: ttl}
}

// Encode stamps the action and signs it into a compact token
func (c *TokenCodec) Encode(action PendingAction) (string, error) {
	if action.CreatedAt.IsZero() {
		action.CreatedAt = time.Now().UTC()
	}
	if err := action.Validate(); err != nil {
		return "", err
	}

	claims := pendingClaims{
		Action: action,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(action.CreatedAt),
			Issuer:   "stellarsoil-assistant",
		},
	}
	if c.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(action.CreatedAt.Add(c.ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// Decode verifies the token signature and re-validates the carried action
func (c *TokenCodec) Decode(tokenString string) (PendingAction, error) {
	var claims pendingClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return c.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return PendingAction{}, ErrInvalidToken
		}
		return PendingAction{}, ErrInvalidToken
	}
	if !token.Valid {
		return PendingAction{}, ErrInvalidToken
	}
	if err := claims.Action.Validate(); err != nil {
		return PendingAction{}, err
	}
	return claims.Action, nil
}
