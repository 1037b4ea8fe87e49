package route

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"summithub-profiles/internal/cache"
	"summithub-profiles/internal/profile"
	"summithub-profiles/internal/stream"
)

// Summary is the list view of a route.
type Summary struct {
	Name               string  `json:"name"`
	Mountain           string  `json:"mountain"`
	Label              string  `json:"route"`
	TotalDistance      float64 `json:"total_distance"`
	TotalElevationGain float64 `json:"total_elevation_gain"`
	Waypoints          int     `json:"waypoints"`
}

var ErrReadOnly = errors.New("route store not configured")

type Service struct {
	provider Provider
	store    *Store
	cache    *cache.Cache
	hub      *stream.Hub
}

// NewService wires the read path (provider), the optional write path
// (store), the artifact cache and the update hub. store, c and hub may be nil.
func NewService(provider Provider, store *Store, c *cache.Cache, hub *stream.Hub) *Service {
	return &Service{provider: provider, store: store, cache: c, hub: hub}
}

func (s *Service) List(ctx context.Context) ([]Summary, error) {
	routes, err := s.provider.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Summary, 0, len(routes))
	for _, r := range routes {
		r = r.Normalize()
		out = append(out, Summary{
			Name:               r.Name,
			Mountain:           r.Mountain,
			Label:              r.Label,
			TotalDistance:      r.TotalDistance,
			TotalElevationGain: r.TotalElevationGain,
			Waypoints:          len(r.Waypoints),
		})
	}
	return out, nil
}

func (s *Service) Route(ctx context.Context, name string) (profile.Route, error) {
	r, err := s.provider.Get(ctx, name)
	if err != nil {
		return profile.Route{}, err
	}
	return r.Normalize(), nil
}

func (s *Service) Interpolated(ctx context.Context, name string) ([]profile.InterpolatedPoint, error) {
	r, err := s.provider.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	return profile.Interpolate(r.Waypoints)
}

func (s *Service) Chart(ctx context.Context, name string) (profile.ChartData, error) {
	r, err := s.provider.Get(ctx, name)
	if err != nil {
		return profile.ChartData{}, err
	}
	return cache.Fetch(ctx, s.cache, cache.Key(name, cache.Chart), func() (profile.ChartData, error) {
		return profile.BuildChartData(r)
	})
}

func (s *Service) Gradient(ctx context.Context, name string) (profile.GradientStats, error) {
	r, err := s.provider.Get(ctx, name)
	if err != nil {
		return profile.GradientStats{}, err
	}
	return cache.Fetch(ctx, s.cache, cache.Key(name, cache.Gradient), func() (profile.GradientStats, error) {
		return profile.CalculateGradientStats(r.Waypoints)
	})
}

func (s *Service) Markdown(ctx context.Context, name string) (string, error) {
	r, err := s.Route(ctx, name)
	if err != nil {
		return "", err
	}
	stats, err := s.Gradient(ctx, name)
	if err != nil {
		return "", err
	}
	return profile.RenderMarkdown(r, stats)
}

// Save stores the route, drops its cached artifacts and pushes the new
// chart to anyone watching it.
func (s *Service) Save(ctx context.Context, r profile.Route) (profile.Route, error) {
	if s.store == nil {
		return profile.Route{}, ErrReadOnly
	}
	saved, err := s.store.Save(ctx, r)
	if err != nil {
		return profile.Route{}, err
	}
	s.invalidate(ctx, saved.Name)

	chart, err := cache.Fetch(ctx, s.cache, cache.Key(saved.Name, cache.Chart), func() (profile.ChartData, error) {
		return profile.BuildChartData(saved)
	})
	if err != nil {
		log.Printf("rebuild chart for %s: %v", saved.Name, err)
		return saved, nil
	}
	s.publish(saved.Name, chart)
	return saved, nil
}

func (s *Service) Delete(ctx context.Context, name string) error {
	if s.store == nil {
		return ErrReadOnly
	}
	if err := s.store.Delete(ctx, name); err != nil {
		return err
	}
	s.invalidate(ctx, name)
	return nil
}

func (s *Service) invalidate(ctx context.Context, name string) {
	if err := s.cache.Invalidate(ctx, name); err != nil {
		log.Printf("invalidate cache for %s: %v", name, err)
	}
}

func (s *Service) publish(name string, chart profile.ChartData) {
	if s.hub == nil {
		return
	}
	payload, err := json.Marshal(chart)
	if err != nil {
		log.Printf("encode chart for %s: %v", name, err)
		return
	}
	s.hub.Broadcast(name, payload)
}
