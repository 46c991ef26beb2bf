package models

// RowTimeFormat is the wall-clock timestamp layout used in log rows.
const RowTimeFormat = "2006-01-02 15:04:05"

// RowHeader is the fixed column header of the result log. Append calls
// must keep LogRow.Cells in this exact order.
var RowHeader = []string{
	"Timestamp", "Ticker", "Company", "Title", "Sentiment",
	"Yesterday Close", "Current Price", "Percent Change", "URL",
}

// LogRow is one qualifying event, appended to the result log. Append-only;
// rows are never updated or deleted.
type LogRow struct {
	Timestamp     string
	Ticker        string
	Company       string
	Title         string
	Sentiment     SentimentLabel
	PreviousClose *float64
	CurrentPrice  *float64
	PercentChange *float64
	URL           string
}

// Cells returns the row as spreadsheet cell values in RowHeader order.
// Absent numeric fields serialize as empty cells.
func (r LogRow) Cells() []interface{} {
	return []interface{}{
		r.Timestamp,
		r.Ticker,
		r.Company,
		r.Title,
		string(r.Sentiment),
		numericCell(r.PreviousClose),
		numericCell(r.CurrentPrice),
		numericCell(r.PercentChange),
		r.URL,
	}
}

func numericCell(v *float64) interface{} {
	if v == nil {
		return ""
	}
	return *v
}
