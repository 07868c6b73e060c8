package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// BirthData is the input of a chart computation
type BirthData struct {
	DOB       string  `json:"dob"`
	Time      string  `json:"time"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
	Timezone  float64 `json:"tz"`
	Language  string  `json:"language"`
}

// Validate checks formats and coordinate ranges before anything is sent to
// the compute engine
func (b *BirthData) Validate() error {
	if _, err := time.Parse(dateLayout, b.DOB); err != nil {
		return fmt.Errorf("invalid dob %q: expected YYYY-MM-DD", b.DOB)
	}
	if _, err := time.Parse(timeLayout, b.Time); err != nil {
		return fmt.Errorf("invalid time %q: expected HH:MM", b.Time)
	}
	if b.Latitude < -90 || b.Latitude > 90 {
		return fmt.Errorf("invalid lat %v: expected [-90, 90]", b.Latitude)
	}
	if b.Longitude < -180 || b.Longitude > 180 {
		return fmt.Errorf("invalid lng %v: expected [-180, 180]", b.Longitude)
	}
	if b.Timezone < -12 || b.Timezone > 14 {
		return fmt.Errorf("invalid tz %v: expected [-12, 14]", b.Timezone)
	}
	return nil
}

// Normalized returns a copy with defaults applied (language)
func (b BirthData) Normalized() BirthData {
	if b.Language == "" {
		b.Language = "en"
	}
	return b
}

// CacheKey derives a stable cache key from the normalized birth input
func (b BirthData) CacheKey() string {
	n := b.Normalized()
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%s|%.6f|%.6f|%.2f|%s",
		n.DOB, n.Time, n.Latitude, n.Longitude, n.Timezone, n.Language)))
	return "horoscope:" + hex.EncodeToString(sum[:])
}
