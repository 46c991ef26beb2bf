package models

import "strings"

// Watch binds one ticker symbol to the keywords that match it.
type Watch struct {
	Ticker   string
	Keywords []string
}

// Watchlist is the ordered set of watched tickers. Order matters: when a
// title matches keywords of more than one ticker, the first entry wins.
// The list is built once at startup and never mutated.
type Watchlist []Watch

// Match returns the ticker of the first watch whose keywords appear,
// case-insensitively, as a substring of the title.
func (w Watchlist) Match(title string) (string, bool) {
	lower := strings.ToLower(title)
	for _, watch := range w {
		for _, kw := range watch.Keywords {
			if kw == "" {
				continue
			}
			if strings.Contains(lower, strings.ToLower(kw)) {
				return watch.Ticker, true
			}
		}
	}
	return "", false
}
