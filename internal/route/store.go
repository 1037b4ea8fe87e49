package route

import (
	"context"
	"errors"
	"fmt"

	"summithub-profiles/internal/db"
	"summithub-profiles/internal/profile"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Store keeps authored routes in Postgres.
type Store struct {
	db db.Querier
}

func NewStore(db db.Querier) *Store {
	return &Store{db: db}
}

const selectRoutes = `
		SELECT r.name, r.mountain, r.label, r.total_distance, r.total_elevation_gain,
		       w.name, w.distance, w.elevation, COALESCE(w.time_label, '')
		FROM routes r
		JOIN route_waypoints w ON w.route_id = r.id`

func (s *Store) List(ctx context.Context) ([]profile.Route, error) {
	rows, err := s.db.Query(ctx, selectRoutes+`
		ORDER BY r.name, w.seq
	`)
	if err != nil {
		return nil, err
	}
	return scanRoutes(rows)
}

func (s *Store) Get(ctx context.Context, name string) (profile.Route, error) {
	rows, err := s.db.Query(ctx, selectRoutes+`
		WHERE r.name = $1
		ORDER BY w.seq
	`, name)
	if err != nil {
		return profile.Route{}, err
	}
	routes, err := scanRoutes(rows)
	if err != nil {
		return profile.Route{}, err
	}
	if len(routes) == 0 {
		return profile.Route{}, fmt.Errorf("%w: %q", profile.ErrNotFound, name)
	}
	return routes[0], nil
}

// scanRoutes folds the joined rows back into routes. Rows must be grouped by
// route name.
func scanRoutes(rows pgx.Rows) ([]profile.Route, error) {
	defer rows.Close()

	var routes []profile.Route
	for rows.Next() {
		var r profile.Route
		var wp profile.Waypoint
		if err := rows.Scan(&r.Name, &r.Mountain, &r.Label, &r.TotalDistance, &r.TotalElevationGain,
			&wp.Name, &wp.Distance, &wp.Elevation, &wp.Time); err != nil {
			return nil, err
		}
		if n := len(routes); n == 0 || routes[n-1].Name != r.Name {
			routes = append(routes, r)
		}
		last := &routes[len(routes)-1]
		last.Waypoints = append(last.Waypoints, wp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return routes, nil
}

// Save validates the route and replaces any stored route of the same name.
func (s *Store) Save(ctx context.Context, r profile.Route) (profile.Route, error) {
	if err := r.Validate(); err != nil {
		return profile.Route{}, err
	}
	r = r.Normalize()

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return profile.Route{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var id string
	err = tx.QueryRow(ctx, `
		INSERT INTO routes (id, name, mountain, label, total_distance, total_elevation_gain)
		VALUES ($1,$2,$3,$4,$5,$6)
		ON CONFLICT (name) DO UPDATE
		SET mountain=EXCLUDED.mountain, label=EXCLUDED.label,
		    total_distance=EXCLUDED.total_distance, total_elevation_gain=EXCLUDED.total_elevation_gain
		RETURNING id
	`, uuid.NewString(), r.Name, r.Mountain, r.Label, r.TotalDistance, r.TotalElevationGain).Scan(&id)
	if err != nil {
		return profile.Route{}, err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM route_waypoints WHERE route_id=$1`, id); err != nil {
		return profile.Route{}, err
	}
	for i, wp := range r.Waypoints {
		_, err := tx.Exec(ctx, `
			INSERT INTO route_waypoints (route_id, seq, name, distance, elevation, time_label)
			VALUES ($1,$2,$3,$4,$5,$6)
		`, id, i, wp.Name, wp.Distance, wp.Elevation, nullable(wp.Time))
		if err != nil {
			return profile.Route{}, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return profile.Route{}, err
	}
	return r, nil
}

func (s *Store) Delete(ctx context.Context, name string) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM routes WHERE name=$1`, name)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %q", profile.ErrNotFound, name)
	}
	return nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Fallback serves routes from the store and falls back to the catalog for
// names the store does not know. Store routes shadow catalog routes of the
// same name.
type Fallback struct {
	store   Provider
	catalog *Catalog
}

// NewFallback accepts a nil store, in which case only the catalog is used.
func NewFallback(store *Store, catalog *Catalog) *Fallback {
	f := &Fallback{catalog: catalog}
	if store != nil {
		f.store = store
	}
	return f
}

func (f *Fallback) Get(ctx context.Context, name string) (profile.Route, error) {
	if f.store != nil {
		r, err := f.store.Get(ctx, name)
		if err == nil || !errors.Is(err, profile.ErrNotFound) {
			return r, err
		}
	}
	return f.catalog.Get(ctx, name)
}

func (f *Fallback) List(ctx context.Context) ([]profile.Route, error) {
	routes, err := f.catalog.List(ctx)
	if err != nil || f.store == nil {
		return routes, err
	}
	stored, err := f.store.List(ctx)
	if err != nil {
		return nil, err
	}

	pos := make(map[string]int, len(routes))
	for i, r := range routes {
		pos[r.Name] = i
	}
	for _, r := range stored {
		if i, ok := pos[r.Name]; ok {
			routes[i] = r
			continue
		}
		routes = append(routes, r)
	}
	return routes, nil
}
