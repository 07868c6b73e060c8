package horoscopeService

import (
	"fmt"
	"strings"

	"github.com/dhanmoti/vedic-chart-backend-2/internal/domain"
)

// cleanText strips astronomical glyphs (non-ASCII) and newline artifacts
// from engine output, e.g. "Raasi-Sun☉" -> "Raasi-Sun"
func cleanText(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r == '\n':
			b.WriteByte(' ')
		case r < 0x80:
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// formatPlacements cleans placement keys and sign names
func formatPlacements(raw map[string]string) map[string]string {
	placements := make(map[string]string, len(raw))
	for k, v := range raw {
		placements[cleanText(k)] = cleanText(v)
	}
	return placements
}

// formatCharts labels the engine's chart list in divisional-factor order
// (D1, D2, ... D60) and splits each house into a clean body list. Charts
// past the known factor list are dropped, matching the engine order
// contract.
func formatCharts(raw [][]string) map[string][]domain.House {
	charts := make(map[string][]domain.House, len(raw))
	for idx, rawChart := range raw {
		if idx >= len(domain.DivisionFactors) {
			break
		}
		label := fmt.Sprintf("D%d", domain.DivisionFactors[idx])
		houses := make([]domain.House, 0, len(rawChart))
		for _, rawHouse := range rawChart {
			house := domain.House{}
			for _, body := range strings.Split(rawHouse, "\n") {
				if cleaned := cleanText(body); cleaned != "" {
					house = append(house, cleaned)
				}
			}
			houses = append(houses, house)
		}
		charts[label] = houses
	}
	return charts
}

// sanitizeNakshatra validates and cleans an engine nakshatra record;
// invalid records become nil (a per-body computation failure). The
// Vimshottari lord is backfilled from the static table when the engine
// omits it.
func sanitizeNakshatra(n *domain.Nakshatra) *domain.Nakshatra {
	if n == nil {
		return nil
	}

	cleaned := &domain.Nakshatra{
		Name: cleanText(n.Name),
		Pada: n.Pada,
		Lord: cleanText(n.Lord),
	}

	if cleaned.Lord == "" {
		if lord, ok := domain.NakshatraLord(cleaned.Name); ok {
			cleaned.Lord = lord
		}
	}

	if !cleaned.Valid() {
		return nil
	}
	return cleaned
}
