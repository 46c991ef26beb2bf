package models

import "strings"

// SentimentLabel is the coarse classification of a post.
type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "Positive"
	SentimentNegative SentimentLabel = "Negative"
	SentimentNeutral  SentimentLabel = "Neutral"
	// SentimentUnknown marks a failed classification. It must never be
	// logged or alerted as if it were neutral.
	SentimentUnknown SentimentLabel = "Unknown"
)

// ParseSentiment normalizes a raw classifier response to a label.
// Comparison is case-insensitive and tolerant of surrounding whitespace
// and a trailing period; anything else maps to SentimentUnknown.
func ParseSentiment(raw string) SentimentLabel {
	s := strings.TrimSpace(raw)
	s = strings.TrimSuffix(s, ".")
	switch strings.ToLower(s) {
	case "positive":
		return SentimentPositive
	case "negative":
		return SentimentNegative
	case "neutral":
		return SentimentNeutral
	default:
		return SentimentUnknown
	}
}

// Actionable reports whether the label should produce a log row and an
// alert email. Neutral and Unknown are always suppressed.
func (l SentimentLabel) Actionable() bool {
	return l == SentimentPositive || l == SentimentNegative
}
