package dataset

import "time"

// DailyMetric is one (country, date) sample. Country is empty for world aggregates.
type DailyMetric struct {
	Country   string    `json:"country,omitempty"`
	Date      time.Time `json:"date"`
	Confirmed int64     `json:"confirmed"`
	Deaths    int64     `json:"deaths"`
	Recovered int64     `json:"recovered"`
}

// CountrySnapshot holds a country's counters at its latest reported date.
type CountrySnapshot struct {
	Country   string    `json:"country"`
	Date      time.Time `json:"date"`
	Confirmed int64     `json:"confirmed"`
	Deaths    int64     `json:"deaths"`
	Recovered int64     `json:"recovered"`
}

type GlobalTotals struct {
	Confirmed int64 `json:"confirmed"`
	Deaths    int64 `json:"deaths"`
	Recovered int64 `json:"recovered"`
}

// TimeSeries is a date-ascending run of samples for one country, or for the
// whole world when Country is empty.
type TimeSeries struct {
	Country string        `json:"country,omitempty"`
	Points  []DailyMetric `json:"points"`
}

func (ts TimeSeries) IsWorld() bool {
	return ts.Country == ""
}

func (ts TimeSeries) Len() int {
	return len(ts.Points)
}
