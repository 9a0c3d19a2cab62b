package assistant

import (
	"sort"
	"strings"
)

// cropVocabulary lists the produce names the extractor recognizes. Multi-word
// entries are matched before their single-word suffixes (longest match wins).
var cropVocabulary = []string{
	"tomato", "potato", "onion", "carrot", "cabbage", "cauliflower",
	"brinjal", "ladyfinger", "green chili", "chili", "ginger", "garlic",
	"spinach", "coriander", "mint", "lettuce", "cucumber", "beetroot",
	"apple", "banana", "orange", "grapes", "mango", "papaya",
	"watermelon", "pomegranate", "lemon", "guava",
	"rice", "wheat", "maize",
}

// spelledNumbers maps small spelled-out quantities to their numeric value
var spelledNumbers = map[string]float64{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	"eleven": 11, "twelve": 12, "fifteen": 15, "twenty": 20,
	"half": 0.5, "a": 1, "an": 1,
	"zero": 0,
}

// unitAliases normalizes unit tokens to their canonical form
var unitAliases = map[string]string{
	"kg": "kg", "kgs": "kg", "kilo": "kg", "kilos": "kg",
	"kilogram": "kg", "kilograms": "kg",
	"g": "g", "gram": "g", "grams": "g",
	"l": "l", "liter": "l", "liters": "l", "litre": "l", "litres": "l",
	"piece": "piece", "pieces": "piece", "pc": "piece", "pcs": "piece",
	"dozen": "dozen", "dozens": "dozen",
	"bunch": "bunch", "bunches": "bunch",
}

// DefaultUnit is assumed when a message names no unit
const DefaultUnit = "kg"

func init() {
	// Longer vocabulary entries must win over shorter ones they contain
	sort.Slice(cropVocabulary, func(i, j int) bool {
		return len(cropVocabulary[i]) > len(cropVocabulary[j])
	})
}

// matchCrop returns the longest vocabulary entry present in text, or ""
func matchCrop(text string) string {
	lowered := strings.ToLower(text)
	for _, crop := range cropVocabulary {
		if containsWord(lowered, crop) {
			return crop
		}
	}
	return ""
}

// KnownCrop reports whether name is in the produce vocabulary
func KnownCrop(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, crop := range cropVocabulary {
		if crop == name {
			return true
		}
	}
	return false
}

// containsWord reports whether phrase occurs in text on word boundaries.
// A plural "s" directly after the phrase still counts ("tomatoes").
func containsWord(text, phrase string) bool {
	idx := 0
	for {
		i := strings.Index(text[idx:], phrase)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(phrase)
		beforeOK := start == 0 || !isWordChar(text[start-1])
		afterOK := end == len(text) || !isWordChar(text[end]) ||
			(text[end] == 's' && (end+1 == len(text) || !isWordChar(text[end+1]))) ||
			(strings.HasPrefix(text[end:], "es") && (end+2 == len(text) || !isWordChar(text[end+2])))
		if beforeOK && afterOK {
			return true
		}
		idx = start + 1
	}
}

func isWordChar(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}
