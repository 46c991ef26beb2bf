package models

import (
	"testing"
)

func TestWatchlistMatch(t *testing.T) {
	wl := Watchlist{
		{Ticker: "XYZ", Keywords: []string{"xyz corp"}},
		{Ticker: "AAPL", Keywords: []string{"apple", "aapl"}},
		{Ticker: "TSLA", Keywords: []string{"tesla"}},
	}

	tests := []struct {
		name       string
		title      string
		wantTicker string
		wantMatch  bool
	}{
		{"exact keyword", "XYZ Corp beats earnings", "XYZ", true},
		{"case insensitive", "BREAKING: APPLE announces buyback", "AAPL", true},
		{"substring inside word still matches", "I bought aapl calls", "AAPL", true},
		{"no keyword", "Fed raises rates again", "", false},
		{"ticker symbol alone is not a keyword", "XYZ to the moon", "", false},
		{"empty title", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ticker, ok := wl.Match(tt.title)
			if ok != tt.wantMatch || ticker != tt.wantTicker {
				t.Errorf("Match(%q) = (%q, %v), want (%q, %v)", tt.title, ticker, ok, tt.wantTicker, tt.wantMatch)
			}
		})
	}
}

func TestWatchlistMatchFirstEntryWins(t *testing.T) {
	wl := Watchlist{
		{Ticker: "FIRST", Keywords: []string{"shared keyword"}},
		{Ticker: "SECOND", Keywords: []string{"shared keyword"}},
	}

	for i := 0; i < 50; i++ {
		ticker, ok := wl.Match("post about the Shared Keyword here")
		if !ok || ticker != "FIRST" {
			t.Fatalf("iteration %d: Match = (%q, %v), want (FIRST, true)", i, ticker, ok)
		}
	}
}

func TestWatchlistMatchSkipsEmptyKeywords(t *testing.T) {
	wl := Watchlist{{Ticker: "XYZ", Keywords: []string{""}}}
	if _, ok := wl.Match("anything at all"); ok {
		t.Error("empty keyword must never match")
	}
}

func TestParseSentiment(t *testing.T) {
	tests := []struct {
		raw  string
		want SentimentLabel
	}{
		{"Positive", SentimentPositive},
		{"positive", SentimentPositive},
		{"NEGATIVE", SentimentNegative},
		{" Neutral.\n", SentimentNeutral},
		{"neutral", SentimentNeutral},
		{"Bullish", SentimentUnknown},
		{"Positive sentiment overall", SentimentUnknown},
		{"", SentimentUnknown},
	}

	for _, tt := range tests {
		if got := ParseSentiment(tt.raw); got != tt.want {
			t.Errorf("ParseSentiment(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestSentimentActionable(t *testing.T) {
	if !SentimentPositive.Actionable() || !SentimentNegative.Actionable() {
		t.Error("Positive and Negative must be actionable")
	}
	if SentimentNeutral.Actionable() || SentimentUnknown.Actionable() {
		t.Error("Neutral and Unknown must be suppressed")
	}
}

func TestComputePercentChange(t *testing.T) {
	prev := Float64Ptr(10.0)
	cur := Float64Ptr(11.0)

	got := ComputePercentChange(prev, cur)
	if got == nil {
		t.Fatal("expected a value")
	}
	if diff := *got - 10.0; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("ComputePercentChange(10, 11) = %v, want 10.0", *got)
	}

	if ComputePercentChange(nil, cur) != nil {
		t.Error("absent previous close must yield absent percent change")
	}
	if ComputePercentChange(prev, nil) != nil {
		t.Error("absent current price must yield absent percent change")
	}
	if ComputePercentChange(Float64Ptr(0), cur) != nil {
		t.Error("zero previous close must yield absent percent change")
	}
}

func TestLogRowCells(t *testing.T) {
	row := LogRow{
		Timestamp:     "2025-03-01 09:30:00",
		Ticker:        "XYZ",
		Company:       "XYZ Corp",
		Title:         "XYZ Corp beats earnings",
		Sentiment:     SentimentPositive,
		PreviousClose: Float64Ptr(10),
		CurrentPrice:  Float64Ptr(11),
		PercentChange: Float64Ptr(10),
		URL:           "https://example.com/post",
	}

	cells := row.Cells()
	if len(cells) != len(RowHeader) {
		t.Fatalf("got %d cells, want %d (one per header column)", len(cells), len(RowHeader))
	}
	if cells[0] != "2025-03-01 09:30:00" || cells[1] != "XYZ" || cells[2] != "XYZ Corp" {
		t.Errorf("unexpected leading cells: %v", cells[:3])
	}
	if cells[4] != "Positive" {
		t.Errorf("sentiment cell = %v, want Positive", cells[4])
	}
	if cells[8] != "https://example.com/post" {
		t.Errorf("url cell = %v", cells[8])
	}
}

func TestLogRowCellsAbsentValues(t *testing.T) {
	row := LogRow{
		Timestamp: "2025-03-01 09:30:00",
		Ticker:    "XYZ",
		Company:   "XYZ",
		Title:     "title",
		Sentiment: SentimentNegative,
	}

	cells := row.Cells()
	for _, i := range []int{5, 6, 7} {
		if cells[i] != "" {
			t.Errorf("cell %d = %v, want empty string for absent value", i, cells[i])
		}
	}
}
