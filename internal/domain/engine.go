package domain

// RawChart is the uncleaned compute engine output, mirroring the shape of
// the engine's horoscope tuple: placements may still carry astronomical
// glyphs, each chart is 12 house strings with bodies separated by newlines.
type RawChart struct {
	Placements   map[string]string `json:"placements"`
	Charts       [][]string        `json:"charts"`
	HouseIndices []int             `json:"house_indices"`
}
