package dto

// HistoryPeriod is the supported range for historical price series.
type HistoryPeriod string

const (
	PeriodOneMonth    HistoryPeriod = "1mo"
	PeriodThreeMonths HistoryPeriod = "3mo"
	PeriodSixMonths   HistoryPeriod = "6mo"
	PeriodOneYear     HistoryPeriod = "1y"
)

// Valid reports whether the period is one of the supported ranges.
func (p HistoryPeriod) Valid() bool {
	switch p {
	case PeriodOneMonth, PeriodThreeMonths, PeriodSixMonths, PeriodOneYear:
		return true
	}
	return false
}

// Quote is a single market snapshot for a symbol.
type Quote struct {
	Symbol           string  `json:"symbol"`
	Name             string  `json:"name"`
	Price            float64 `json:"price"`
	Change           float64 `json:"change"`
	ChangePercent    float64 `json:"change_percent"`
	Volume           int64   `json:"volume"`
	AverageVolume    int64   `json:"average_volume"`
	MarketCap        int64   `json:"market_cap"`
	FiftyTwoWeekLow  float64 `json:"fifty_two_week_low"`
	FiftyTwoWeekHigh float64 `json:"fifty_two_week_high"`
	Beta             float64 `json:"beta"`
	TrailingPE       float64 `json:"trailing_pe"`
	ForwardPE        float64 `json:"forward_pe"`
}

// SearchResult is one ranked hit from a free-text symbol search.
type SearchResult struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Type   string `json:"type"`
}

// OHLCV is one daily bar of a historical price series.
type OHLCV struct {
	Timestamp int64   `json:"timestamp"`
	Open      float64 `json:"open"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Close     float64 `json:"close"`
	Volume    int64   `json:"volume"`
}
