package geoloc

import (
	"context"
	"errors"
)

// ErrUnavailable is returned when the device position cannot be obtained,
// whether through denial, hardware failure or timeout.
var ErrUnavailable = errors.New("current position unavailable")

// Position is a device coordinate pair.
type Position struct {
	Latitude  float64
	Longitude float64
}

// Provider obtains the device's current position. It is a single-shot
// request: the caller bounds it with a context deadline and decides whether
// to retry after a failure.
type Provider interface {
	CurrentPosition(ctx context.Context) (Position, error)
}

type staticProvider struct {
	pos Position
}

func (p staticProvider) CurrentPosition(ctx context.Context) (Position, error) {
	if err := ctx.Err(); err != nil {
		return Position{}, ErrUnavailable
	}
	return p.pos, nil
}

// Static returns a Provider that always reports the given coordinates. Kiosk
// devices resolve their position client-side and send it with the request.
func Static(lat, lon float64) Provider {
	return staticProvider{pos: Position{Latitude: lat, Longitude: lon}}
}

type unavailableProvider struct{}

func (unavailableProvider) CurrentPosition(ctx context.Context) (Position, error) {
	return Position{}, ErrUnavailable
}

// Unavailable returns a Provider that always fails, used when the device
// reported that it could not resolve a position.
func Unavailable() Provider {
	return unavailableProvider{}
}
