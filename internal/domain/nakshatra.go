package domain

// Static Vedic lookup tables. These are fixed metadata (rulership
// assignments), not astronomy: all positional math stays in the external
// compute engine.

// nakshatraNames lists the 27 lunar mansions in zodiacal order
var nakshatraNames = []string{
	"Ashwini", "Bharani", "Krittika", "Rohini", "Mrigashira", "Ardra",
	"Punarvasu", "Pushya", "Ashlesha", "Magha", "Purva Phalguni",
	"Uttara Phalguni", "Hasta", "Chitra", "Swati", "Vishakha", "Anuradha",
	"Jyeshta", "Mula", "Purva Ashadha", "Uttara Ashadha", "Shravana",
	"Dhanishta", "Shatabhisha", "Purva Bhadrapada", "Uttara Bhadrapada",
	"Revati",
}

// vimshottariCycle repeats three times across the 27 nakshatras
var vimshottariCycle = []string{
	"Ketu", "Venus", "Sun", "Moon", "Mars", "Rahu", "Jupiter", "Saturn", "Mercury",
}

var nakshatraLords = func() map[string]string {
	lords := make(map[string]string, len(nakshatraNames))
	for i, name := range nakshatraNames {
		lords[name] = vimshottariCycle[i%len(vimshottariCycle)]
	}
	return lords
}()

// IsNakshatraName reports whether name is one of the 27 nakshatras
func IsNakshatraName(name string) bool {
	_, ok := nakshatraLords[name]
	return ok
}

// NakshatraLord returns the Vimshottari dasha lord of a nakshatra.
// Used to backfill the lord when the engine omits it.
func NakshatraLord(name string) (string, bool) {
	lord, ok := nakshatraLords[name]
	return lord, ok
}

// signLords maps each raasi to its ruling graha
var signLords = map[string]string{
	"Aries":       "Mars",
	"Taurus":      "Venus",
	"Gemini":      "Mercury",
	"Cancer":      "Moon",
	"Leo":         "Sun",
	"Virgo":       "Mercury",
	"Libra":       "Venus",
	"Scorpio":     "Mars",
	"Sagittarius": "Jupiter",
	"Capricorn":   "Saturn",
	"Aquarius":    "Saturn",
	"Pisces":      "Jupiter",
}

// SignLord returns the ruling graha of a zodiac sign
func SignLord(sign string) (string, bool) {
	lord, ok := signLords[sign]
	return lord, ok
}
