package jhora

// ChartRequest is the body of a chart computation call
type ChartRequest struct {
	DOB       string  `json:"dob"`  // YYYY-MM-DD
	Time      string  `json:"time"` // HH:MM
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
	Timezone  float64 `json:"tz"`
	Language  string  `json:"language,omitempty"`
}

// ChartResponse mirrors the engine's horoscope tuple: placements (raw, with
// glyphs), one entry per divisional chart (12 houses each, bodies separated
// by newlines) and house indices
type ChartResponse struct {
	Placements   map[string]string `json:"placements"`
	Charts       [][]string        `json:"charts"`
	HouseIndices []int             `json:"house_indices"`
}

// NakshatraRequest asks for a single body's nakshatra
type NakshatraRequest struct {
	ChartRequest
	Body string `json:"body"`
}

// NakshatraResponse is the engine's nakshatra record for one body
type NakshatraResponse struct {
	Name string `json:"name"`
	Pada int    `json:"pada"`
	Lord string `json:"lord,omitempty"`
}
