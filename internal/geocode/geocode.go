// Package geocode holds the pure rules for turning scraped link text into the
// set of valid alpha-2 codes and for resolving operator input against it.
package geocode

import "strings"

// ExpectedCount is the number of ISO 3166-1 alpha-2 codes the reference page lists.
const ExpectedCount = 249

// Default is used whenever operator input does not match a valid code.
const Default = "US"

// Outcome describes how a selection was resolved
type Outcome int

const (
	Matched Outcome = iota
	Empty           // nothing was entered
	Invalid         // something was entered but it is not a known code
)

// Selection is the resolved geo code and how it was reached
type Selection struct {
	Code    string
	Outcome Outcome
}

// Filter keeps texts that are exactly two characters long, in order, without dedup.
func Filter(texts []string) []string {
	codes := make([]string, 0, len(texts))
	for _, t := range texts {
		if len([]rune(t)) == 2 {
			codes = append(codes, t)
		}
	}
	return codes
}

// CountMismatch reports whether the parsed set differs from the expected size.
func CountMismatch(codes []string, expected int) bool {
	return len(codes) != expected
}

// Contains reports whether input case-insensitively equals any member of codes.
func Contains(codes []string, input string) bool {
	for _, c := range codes {
		if strings.EqualFold(c, input) {
			return true
		}
	}
	return false
}

// Select resolves operator input. A match keeps the input as typed, not the
// canonical member; anything else falls back to fallback.
func Select(codes []string, input, fallback string) Selection {
	if Contains(codes, input) {
		return Selection{Code: input, Outcome: Matched}
	}
	if input == "" {
		return Selection{Code: fallback, Outcome: Empty}
	}
	return Selection{Code: fallback, Outcome: Invalid}
}
