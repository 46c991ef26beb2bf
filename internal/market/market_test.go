package market

import (
	"math"
	"testing"
)

func TestBuildSnapshotFullData(t *testing.T) {
	snap := BuildSnapshot("XYZ", "XYZ Corp", "XYZ", 11.0, []float64{9.5, 10.0, 11.0})

	if snap.Company != "XYZ Corp" {
		t.Errorf("Company = %q, want XYZ Corp", snap.Company)
	}
	if snap.CurrentPrice == nil || *snap.CurrentPrice != 11.0 {
		t.Fatalf("CurrentPrice = %v, want 11.0", snap.CurrentPrice)
	}
	if snap.PreviousClose == nil || *snap.PreviousClose != 10.0 {
		t.Fatalf("PreviousClose = %v, want 10.0 (second most recent close)", snap.PreviousClose)
	}
	if snap.PercentChange == nil || math.Abs(*snap.PercentChange-10.0) > 1e-9 {
		t.Errorf("PercentChange = %v, want 10.0", snap.PercentChange)
	}
}

func TestBuildSnapshotCompanyNameFallback(t *testing.T) {
	tests := []struct {
		name      string
		longName  string
		shortName string
		want      string
	}{
		{"long name preferred", "XYZ Corporation", "XYZ Corp", "XYZ Corporation"},
		{"short name when no long name", "", "XYZ Corp", "XYZ Corp"},
		{"ticker when neither", "", "", "XYZ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := BuildSnapshot("XYZ", tt.longName, tt.shortName, 1, nil)
			if snap.Company != tt.want {
				t.Errorf("Company = %q, want %q", snap.Company, tt.want)
			}
		})
	}
}

func TestBuildSnapshotAbsentLivePrice(t *testing.T) {
	snap := BuildSnapshot("XYZ", "XYZ Corp", "", 0, []float64{10.0, 11.0})

	if snap.CurrentPrice != nil {
		t.Error("zero live price must be treated as absent")
	}
	if snap.PreviousClose == nil || *snap.PreviousClose != 10.0 {
		t.Errorf("PreviousClose = %v, want 10.0", snap.PreviousClose)
	}
	if snap.PercentChange != nil {
		t.Error("percent change must be absent when the live price is absent")
	}
}

func TestBuildSnapshotInsufficientHistory(t *testing.T) {
	for _, closes := range [][]float64{nil, {}, {10.0}} {
		snap := BuildSnapshot("XYZ", "", "", 11.0, closes)
		if snap.PreviousClose != nil {
			t.Errorf("closes=%v: PreviousClose = %v, want absent with fewer than two sessions", closes, snap.PreviousClose)
		}
		if snap.PercentChange != nil {
			t.Errorf("closes=%v: PercentChange must be absent", closes)
		}
	}
}

func TestBuildSnapshotNeverMutatesInputsAcrossCalls(t *testing.T) {
	// Snapshots are computed fresh per post; two calls with the same data
	// must be independent values.
	a := BuildSnapshot("XYZ", "", "", 11.0, []float64{10, 11})
	b := BuildSnapshot("XYZ", "", "", 11.0, []float64{10, 11})

	*a.CurrentPrice = 99
	if *b.CurrentPrice != 11.0 {
		t.Error("snapshots must not share pointer state")
	}
}
