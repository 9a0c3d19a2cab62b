package assistant

import (
	"regexp"
	"strconv"
	"strings"
)

// Slots holds the structured fields pulled out of an order or listing message
type Slots struct {
	Item     string
	Quantity float64
	Unit     string
	Price    *float64
}

// Extractor pulls slots out of free text for actionable intents
type Extractor struct{}

// NewExtractor creates an Extractor
func NewExtractor() *Extractor {
	return &Extractor{}
}

var (
	numberPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)`)
	// Price per unit: "at 30 rupees", "for 30", "@ ₹30", "30 rs"
	pricePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:\bat\b|\bfor\b|@)\s*(?:₹|rs\.?\s*|rupees?\s*)?(\d+(?:\.\d+)?)\s*(?:rupees?|rs\.?|/-)?`),
		regexp.MustCompile(`₹\s*(\d+(?:\.\d+)?)`),
		regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:rupees?|rs\.?)\b`),
	}
	unitAfterNumber = regexp.MustCompile(`^\s*([a-zA-Z]+)`)
	wordPattern     = regexp.MustCompile(`[a-zA-Z]+`)
)

// Extract locates quantity, unit, item and (for listings) an optional price
// in text. Unit defaults to kg when omitted. Fails with ErrMissingQuantity,
// ErrInvalidQuantity or ErrUnknownItem; a missing listing price is legal and
// left nil for the pricing collaborator to fill in.
func (e *Extractor) Extract(text string, intent Intent) (Slots, error) {
	var slots Slots

	// Price spans are located first so their digits are not mistaken for
	// the quantity ("sell onion at 30 rupees" has no quantity).
	var price *float64
	var priceSpans [][]int
	if intent == IntentListingRequest {
		price, priceSpans = extractPrice(text)
	}

	qty, qtyEnd, found := extractQuantity(text, priceSpans)
	if !found {
		return slots, ErrMissingQuantity
	}
	if qty <= 0 {
		return slots, ErrInvalidQuantity
	}

	item := matchCrop(text)
	if item == "" {
		return slots, ErrUnknownItem
	}

	slots.Item = item
	slots.Quantity = qty
	slots.Unit = extractUnit(text, qtyEnd)
	slots.Price = price
	return slots, nil
}

// extractPrice returns the first price found in text and the spans covered by
// price expressions, so quantity extraction can skip them.
func extractPrice(text string) (*float64, [][]int) {
	var spans [][]int
	var price *float64
	for _, p := range pricePatterns {
		loc := p.FindStringSubmatchIndex(text)
		if loc == nil {
			continue
		}
		spans = append(spans, []int{loc[0], loc[1]})
		if price == nil {
			v, err := strconv.ParseFloat(text[loc[2]:loc[3]], 64)
			if err == nil {
				price = &v
			}
		}
	}
	return price, spans
}

// extractQuantity finds the first numeric or spelled-out quantity outside the
// given spans. It returns the value, the end offset of the match (for unit
// lookup) and whether anything was found.
func extractQuantity(text string, skip [][]int) (float64, int, bool) {
	for _, loc := range numberPattern.FindAllStringIndex(text, -1) {
		if inSpans(loc[0], skip) {
			continue
		}
		v, err := strconv.ParseFloat(text[loc[0]:loc[1]], 64)
		if err != nil {
			continue
		}
		return v, loc[1], true
	}

	// Spelled-out small numbers ("two kg tomatoes")
	lowered := strings.ToLower(text)
	for _, loc := range wordPattern.FindAllStringIndex(lowered, -1) {
		if inSpans(loc[0], skip) {
			continue
		}
		if v, ok := spelledNumbers[lowered[loc[0]:loc[1]]]; ok {
			// "a"/"an" only count as a quantity right before a unit or crop
			word := lowered[loc[0]:loc[1]]
			if (word == "a" || word == "an") && !followedByUnitOrCrop(lowered, loc[1]) {
				continue
			}
			return v, loc[1], true
		}
	}

	return 0, 0, false
}

// extractUnit reads the token right after the quantity and normalizes it,
// falling back to DefaultUnit.
func extractUnit(text string, after int) string {
	if after < len(text) {
		if m := unitAfterNumber.FindStringSubmatch(text[after:]); m != nil {
			if unit, ok := unitAliases[strings.ToLower(m[1])]; ok {
				return unit
			}
		}
	}
	return DefaultUnit
}

func followedByUnitOrCrop(lowered string, from int) bool {
	m := unitAfterNumber.FindStringSubmatch(lowered[from:])
	if m == nil {
		return false
	}
	if _, ok := unitAliases[strings.ToLower(m[1])]; ok {
		return true
	}
	return KnownCrop(strings.TrimSuffix(strings.TrimSuffix(m[1], "es"), "s")) || KnownCrop(m[1])
}

func inSpans(pos int, spans [][]int) bool {
	for _, s := range spans {
		if pos >= s[0] && pos < s[1] {
			return true
		}
	}
	return false
}
