package domain

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrHoroscopeNotFound is returned when no stored chart exists for an id
var ErrHoroscopeNotFound = errors.New("horoscope not found")

// Grahas are the nine classical bodies placed in every chart.
// Lagna (the ascendant) is handled separately.
var Grahas = []string{
	"Sun", "Moon", "Mars", "Mercury", "Jupiter",
	"Venus", "Saturn", "Rahu", "Ketu",
}

const BodyLagna = "Lagna"

// RaasiKey builds the placement key for a body ("Raasi-Sun", "Raasi-Lagna", ...)
func RaasiKey(body string) string {
	return "Raasi-" + body
}

// DivisionFactors is the divisional chart order produced by the compute
// engine: D1 first, then the harmonic factors in ascending order.
var DivisionFactors = []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 16, 20, 24, 27, 30, 40, 45, 60}

// Nakshatra is the lunar mansion info attached to a body position
type Nakshatra struct {
	Name string `json:"name"`
	Pada int    `json:"pada"`
	Lord string `json:"lord"`
}

// Valid reports whether the record is usable: known name and pada in [1,4].
// Engine output that fails this check is treated as a failed computation
// for that body and surfaced as null.
func (n *Nakshatra) Valid() bool {
	if n == nil {
		return false
	}
	if n.Pada < 1 || n.Pada > 4 {
		return false
	}
	return IsNakshatraName(n.Name)
}

// House is one slot of a divisional chart: the bodies occupying it, in order
type House []string

// HoroscopeData is the computed payload returned to the client.
// Nakshatra pointers are nil when that body's computation failed;
// a nil field never fails the request.
type HoroscopeData struct {
	ID                 uuid.UUID             `json:"id"`
	Placements         map[string]string     `json:"placements"`
	Charts             map[string][]House    `json:"charts"`
	HouseIndices       []int                 `json:"house_indices"`
	AscendantLord      *string               `json:"ascendant_lord"`
	AscendantNakshatra *Nakshatra            `json:"ascendant_nakshatra"`
	Nakshatras         map[string]*Nakshatra `json:"nakshatras"`
}

// ValidHouseIndices checks the 12-houses invariant: exactly 12 entries,
// each in [1,12]
func ValidHouseIndices(indices []int) bool {
	if len(indices) != 12 {
		return false
	}
	for _, idx := range indices {
		if idx < 1 || idx > 12 {
			return false
		}
	}
	return true
}

// Horoscope is the stored record of a computed chart
type Horoscope struct {
	ID        uuid.UUID       `json:"id" db:"id"`
	BirthDate string          `json:"dob" db:"birth_date"`
	BirthTime string          `json:"time" db:"birth_time"`
	Latitude  float64         `json:"lat" db:"latitude"`
	Longitude float64         `json:"lng" db:"longitude"`
	Timezone  float64         `json:"tz" db:"timezone"`
	Language  string          `json:"language" db:"language"`
	Data      json.RawMessage `json:"data" db:"data"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
}
