package horoscopeController

import (
	"github.com/dhanmoti/vedic-chart-backend-2/internal/domain"
)

// HoroscopeReq is the POST /horoscope body. Coordinates are pointers so
// the required binding rejects an absent field while an explicit 0 (the
// equator, the prime meridian, UTC) still passes.
type HoroscopeReq struct {
	DOB      string   `json:"dob" binding:"required"`  // YYYY-MM-DD
	Time     string   `json:"time" binding:"required"` // HH:MM
	Lat      *float64 `json:"lat" binding:"required"`
	Lng      *float64 `json:"lng" binding:"required"`
	Tz       *float64 `json:"tz" binding:"required"`
	Language string   `json:"language"`
}

func (r *HoroscopeReq) ToDomain() domain.BirthData {
	return domain.BirthData{
		DOB:       r.DOB,
		Time:      r.Time,
		Latitude:  *r.Lat,
		Longitude: *r.Lng,
		Timezone:  *r.Tz,
		Language:  r.Language,
	}
}

// Envelope is the success response wrapper
type Envelope struct {
	Status string                `json:"status"`
	Data   *domain.HoroscopeData `json:"data"`
}

func success(data *domain.HoroscopeData) Envelope {
	return Envelope{
		Status: "success",
		Data:   data,
	}
}
