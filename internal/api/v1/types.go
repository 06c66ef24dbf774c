package apiv1

// Pong defines model for Pong.
type Pong struct {
	Ping string `json:"ping"`
}

// Error defines model for Error.
type Error struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// CountryList defines model for CountryList.
type CountryList struct {
	Countries []string `json:"countries"`
}

// Totals defines model for Totals.
type Totals struct {
	Confirmed int64 `json:"confirmed"`
	Deaths    int64 `json:"deaths"`
	Recovered int64 `json:"recovered"`
}

// SnapshotEntry defines model for SnapshotEntry.
type SnapshotEntry struct {
	Country   string `json:"country"`
	Date      string `json:"date"`
	Confirmed int64  `json:"confirmed"`
	Deaths    int64  `json:"deaths"`
	Recovered int64  `json:"recovered"`
}

// Snapshot defines model for Snapshot.
type Snapshot struct {
	Countries []SnapshotEntry `json:"countries"`
}

// SeriesPoint defines model for SeriesPoint.
type SeriesPoint struct {
	Date      string `json:"date"`
	Confirmed int64  `json:"confirmed"`
	Deaths    int64  `json:"deaths"`
	Recovered int64  `json:"recovered"`
}

// Series defines model for Series. Country is empty for the worldwide view.
type Series struct {
	Country string        `json:"country"`
	Points  []SeriesPoint `json:"points"`
}

// CountryParams defines parameters shared by the series and country figure endpoints.
type CountryParams struct {
	Country *string `query:"country"`
}

// SelectionCount defines model for SelectionCount. Country is empty for the worldwide view.
type SelectionCount struct {
	Country    string `json:"country"`
	Selections int64  `json:"selections"`
}

// Selections defines model for Selections.
type Selections struct {
	Selections []SelectionCount `json:"selections"`
}

// SelectionsParams defines parameters for GetSelections.
type SelectionsParams struct {
	Limit *int `query:"limit"`
}
