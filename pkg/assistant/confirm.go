package assistant

import "strings"

// Decision is the outcome of matching a follow-up message against a pending
// action. Ambiguous never executes or discards; it re-prompts.
type Decision int

const (
	Ambiguous Decision = iota
	Affirm
	Deny
)

// Fixed confirmation vocabularies, matched whole against the normalized
// message. Anything outside both lists is Ambiguous.
var (
	affirmPhrases = []string{
		"yes", "y", "confirm", "yes confirm", "yes please", "ok", "okay",
		"sure", "proceed", "approve", "confirmed", "confirm order",
		"add to cart", "yes add to cart", "list it", "yes list it",
	}
	denyPhrases = []string{
		"no", "n", "cancel", "no thanks", "no cancel", "cancel it",
		"nope", "dont", "do not",
	}
)

// ResolveConfirmation classifies text as an affirmative, negative or
// ambiguous reply to a pending action. Matching is case-insensitive on the
// trimmed message with trailing punctuation stripped.
func ResolveConfirmation(text string) Decision {
	normalized := normalizeReply(text)
	for _, p := range affirmPhrases {
		if normalized == p {
			return Affirm
		}
	}
	for _, p := range denyPhrases {
		if normalized == p {
			return Deny
		}
	}
	return Ambiguous
}

func normalizeReply(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = strings.Trim(s, ".,!?")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, "'", "")
	return strings.Join(strings.Fields(s), " ")
}
