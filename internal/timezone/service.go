package timezone

import (
	"fmt"
	"sync"

	"github.com/ringsaturn/tzf"
)

// Service resolves coordinates to an IANA timezone name, so the answer
// pipeline can compute day boundaries local to the queried city.
type Service interface {
	GetTimezone(lat, lon float64) (string, error)
}

type service struct {
	finder tzf.F
}

var (
	instance *service
	initErr  error
	once     sync.Once
)

// NewService returns the shared timezone service. The tzf finder loads its
// polygon data into memory once, hence the singleton.
func NewService() (Service, error) {
	once.Do(func() {
		finder, err := tzf.NewDefaultFinder()
		if err != nil {
			initErr = fmt.Errorf("failed to initialize timezone finder: %w", err)
			return
		}
		instance = &service{finder: finder}
	})

	if initErr != nil {
		return nil, initErr
	}
	return instance, nil
}

func (s *service) GetTimezone(lat, lon float64) (string, error) {
	name := s.finder.GetTimezoneName(lon, lat)
	if name == "" {
		return "", fmt.Errorf("no timezone for coordinates lat=%f, lon=%f", lat, lon)
	}
	return name, nil
}
