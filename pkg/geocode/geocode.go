// Package geocode resolves municipality seats to coordinates with the Google Maps geocoding API.
package geocode

import (
	"context"
	"errors"
	"fmt"

	"googlemaps.github.io/maps"
)

var ErrNotFound = errors.New("endereço não encontrado")

type Geocoder struct {
	client *maps.Client
	state  string
}

// NewGeocoder returns nil when apiKey is empty. baseURL overrides the API host when set.
func NewGeocoder(apiKey, state, baseURL string) (*Geocoder, error) {
	if apiKey == "" {
		return nil, nil
	}
	opts := []maps.ClientOption{maps.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, maps.WithBaseURL(baseURL))
	}
	client, err := maps.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("error creating maps client: %w", err)
	}
	return &Geocoder{client: client, state: state}, nil
}

// Locate returns the coordinates of the city's seat.
func (g *Geocoder) Locate(ctx context.Context, city string) (float64, float64, error) {
	req := &maps.GeocodingRequest{
		Address: city,
		Components: map[maps.Component]string{
			maps.ComponentAdministrativeArea: g.state,
			maps.ComponentCountry:            "BR",
		},
		Language: "pt-BR",
	}
	results, err := g.client.Geocode(ctx, req)
	if err != nil {
		return 0, 0, fmt.Errorf("geocode %s: %w", city, err)
	}
	if len(results) == 0 {
		return 0, 0, fmt.Errorf("%w: %s", ErrNotFound, city)
	}
	loc := results[0].Geometry.Location
	return loc.Lat, loc.Lng, nil
}
