package reconcile

import (
	_ "embed"
	"encoding/json"

	"expansion/internal/domain"
)

//go:embed fallback_cities.json
var fallbackJSON []byte

// FallbackCities is the static dataset used when the backend has not persisted a city yet.
func FallbackCities() []domain.City {
	var cities []domain.City
	if err := json.Unmarshal(fallbackJSON, &cities); err != nil {
		panic("reconcile: invalid embedded fallback dataset: " + err.Error())
	}
	return cities
}

// mergeFallback appends fallback cities missing from the backend list. Backend values always win.
func mergeFallback(persisted, fallback []domain.City) []domain.City {
	seen := make(map[int64]struct{}, len(persisted))
	out := make([]domain.City, 0, len(persisted)+len(fallback))
	for _, c := range persisted {
		seen[c.ID] = struct{}{}
		out = append(out, c)
	}
	for _, c := range fallback {
		if _, ok := seen[c.ID]; ok {
			continue
		}
		out = append(out, c)
	}
	return out
}
