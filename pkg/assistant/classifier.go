package assistant

import (
	"regexp"
	"strings"
)

// Classifier maps a free-text message and the caller's role to an Intent
// using an ordered table of (predicate, intent) rules evaluated top-down.
// It is a pure function of its inputs; confirmation handling lives in the
// Service, which only consults the confirmation resolver when a pending
// action accompanies the message.
type Classifier struct {
	rules []classifierRule
}

type classifierRule struct {
	matches func(text string, role Role) bool
	intent  Intent
}

var (
	cartPattern    = regexp.MustCompile(`(?i)\b(add|put)\b.*\bcart\b`)
	orderPattern   = regexp.MustCompile(`(?i)\b(order|buy|purchase|need|want|get me)\b`)
	listingPattern = regexp.MustCompile(`(?i)\b(list|sell|listing|i have|selling)\b`)
	nearbyPattern  = regexp.MustCompile(`(?i)\b(near me|nearby|close by|around me|available)\b`)
)

// NewClassifier creates a Classifier with the standard rule table
func NewClassifier() *Classifier {
	return &Classifier{
		rules: []classifierRule{
			{
				// Buyers asking to put something in the cart
				matches: func(text string, role Role) bool {
					return role == RoleBuyer && cartPattern.MatchString(text)
				},
				intent: IntentAddToCart,
			},
			{
				// Buyers ordering produce
				matches: func(text string, role Role) bool {
					return role == RoleBuyer && orderPattern.MatchString(text)
				},
				intent: IntentOrderRequest,
			},
			{
				// Farmers listing produce for sale
				matches: func(text string, role Role) bool {
					return role == RoleFarmer && listingPattern.MatchString(text)
				},
				intent: IntentListingRequest,
			},
			{
				// Proximity or availability searches, or a bare crop name
				matches: func(text string, role Role) bool {
					return nearbyPattern.MatchString(text) || matchCrop(text) != ""
				},
				intent: IntentNearbyQuery,
			},
		},
	}
}

// Classify returns the intent of text for the given role. Ambiguous phrasing
// still yields the matched intent; missing slots surface later as extraction
// errors rather than a reclassification.
func (c *Classifier) Classify(text string, role Role) Intent {
	text = strings.TrimSpace(text)
	if text == "" {
		return IntentUnknown
	}
	for _, r := range c.rules {
		if r.matches(text, role) {
			return r.intent
		}
	}
	return IntentUnknown
}
