package route

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"summithub-profiles/internal/profile"
)

// Provider supplies routes to the profile generator and the HTTP handlers.
type Provider interface {
	List(ctx context.Context) ([]profile.Route, error)
	Get(ctx context.Context, name string) (profile.Route, error)
}

// Catalog is an immutable, ordered table of routes.
type Catalog struct {
	routes []profile.Route
	index  map[string]int
}

func NewCatalog(routes []profile.Route) (*Catalog, error) {
	c := &Catalog{index: make(map[string]int, len(routes))}
	for _, r := range routes {
		if err := r.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.index[r.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate route %q", profile.ErrInvalidInput, r.Name)
		}
		c.index[r.Name] = len(c.routes)
		c.routes = append(c.routes, copyRoute(r))
	}
	return c, nil
}

func (c *Catalog) List(_ context.Context) ([]profile.Route, error) {
	out := make([]profile.Route, len(c.routes))
	for i, r := range c.routes {
		out[i] = copyRoute(r)
	}
	return out, nil
}

func (c *Catalog) Get(_ context.Context, name string) (profile.Route, error) {
	i, ok := c.index[name]
	if !ok {
		return profile.Route{}, fmt.Errorf("%w: %q", profile.ErrNotFound, name)
	}
	return copyRoute(c.routes[i]), nil
}

type catalogEntry struct {
	Name string `json:"name"`
	profile.Route
}

// LoadCatalog reads a JSON array of routes, each carrying its catalog name
// next to the profile_data fields.
func LoadCatalog(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read routes file: %w", err)
	}
	var entries []catalogEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("%w: parse routes file %s: %v", profile.ErrInvalidInput, path, err)
	}
	routes := make([]profile.Route, len(entries))
	for i, e := range entries {
		e.Route.Name = e.Name
		routes[i] = e.Route
	}
	return NewCatalog(routes)
}

func copyRoute(r profile.Route) profile.Route {
	r.Waypoints = append([]profile.Waypoint(nil), r.Waypoints...)
	return r
}

// Builtin returns the catalog of the six documented courses.
func Builtin() *Catalog {
	c, err := NewCatalog(builtinRoutes)
	if err != nil {
		panic(err)
	}
	return c
}

var builtinRoutes = []profile.Route{
	{
		Name:               "奥穂高岳",
		Mountain:           "奥穂高岳",
		Label:              "上高地〜涸沢経由",
		TotalDistance:      10.5,
		TotalElevationGain: 1580,
		Waypoints: []profile.Waypoint{
			{Name: "上高地BT", Distance: 0.0, Elevation: 1510, Time: "06:00"},
			{Name: "明神池", Distance: 2.1, Elevation: 1530, Time: "07:30"},
			{Name: "徳沢ロッヂ", Distance: 3.4, Elevation: 1560, Time: "08:30"},
			{Name: "横尾山荘", Distance: 5.4, Elevation: 1620, Time: "09:30"},
			{Name: "本谷橋", Distance: 6.8, Elevation: 1850, Time: "11:00"},
			{Name: "涸沢ヒュッテ", Distance: 8.3, Elevation: 2300, Time: "12:00"},
			{Name: "ザイテングラード", Distance: 9.2, Elevation: 2800, Time: "14:00"},
			{Name: "奥穂高岳山頂", Distance: 10.5, Elevation: 3190, Time: "15:00"},
		},
	},
	{
		Name:               "槍ヶ岳",
		Mountain:           "槍ヶ岳",
		Label:              "上高地〜槍沢経由",
		TotalDistance:      11.0,
		TotalElevationGain: 1670,
		Waypoints: []profile.Waypoint{
			{Name: "上高地BT", Distance: 0.0, Elevation: 1510, Time: "06:00"},
			{Name: "明神池", Distance: 2.1, Elevation: 1530, Time: "07:30"},
			{Name: "徳沢ロッヂ", Distance: 3.4, Elevation: 1560, Time: "08:30"},
			{Name: "横尾山荘", Distance: 5.4, Elevation: 1620, Time: "09:30"},
			{Name: "槍沢ロッヂ", Distance: 7.8, Elevation: 2100, Time: "12:00"},
			{Name: "大曲", Distance: 8.5, Elevation: 2050, Time: "13:00"},
			{Name: "槍ヶ岳山荘", Distance: 10.2, Elevation: 3020, Time: "15:30"},
			{Name: "槍ヶ岳山頂", Distance: 11.0, Elevation: 3180, Time: "16:30"},
		},
	},
	{
		Name:               "立山",
		Mountain:           "立山（雄山）",
		Label:              "室堂〜一ノ越経由",
		TotalDistance:      2.4,
		TotalElevationGain: 583,
		Waypoints: []profile.Waypoint{
			{Name: "室堂ターミナル", Distance: 0.0, Elevation: 2450, Time: "08:00"},
			{Name: "みくりが池", Distance: 0.8, Elevation: 2405, Time: "08:15"},
			{Name: "一ノ越", Distance: 1.5, Elevation: 2700, Time: "09:00"},
			{Name: "雄山神社", Distance: 2.2, Elevation: 2992, Time: "09:40"},
			{Name: "雄山山頂", Distance: 2.4, Elevation: 3003, Time: "10:00"},
		},
	},
	{
		Name:               "木曽駒ヶ岳",
		Mountain:           "木曽駒ヶ岳",
		Label:              "千畳敷経由",
		TotalDistance:      2.5,
		TotalElevationGain: 344,
		Waypoints: []profile.Waypoint{
			{Name: "千畳敷駅", Distance: 0.0, Elevation: 2612, Time: "08:00"},
			{Name: "八丁坂取付", Distance: 0.3, Elevation: 2650, Time: "08:15"},
			{Name: "乗越浄土", Distance: 1.2, Elevation: 2850, Time: "09:30"},
			{Name: "中岳", Distance: 1.8, Elevation: 2925, Time: "10:00"},
			{Name: "木曽駒ヶ岳山頂", Distance: 2.5, Elevation: 2956, Time: "10:30"},
		},
	},
	{
		Name:               "北岳",
		Mountain:           "北岳",
		Label:              "広河原〜白根御池経由",
		TotalDistance:      7.5,
		TotalElevationGain: 1700,
		Waypoints: []profile.Waypoint{
			{Name: "広河原", Distance: 0.0, Elevation: 1520, Time: "06:00"},
			{Name: "白根御池小屋分岐", Distance: 2.8, Elevation: 1950, Time: "08:30"},
			{Name: "白根御池小屋", Distance: 3.5, Elevation: 2230, Time: "10:00"},
			{Name: "草すべり", Distance: 5.0, Elevation: 2500, Time: "12:00"},
			{Name: "小太郎尾根分岐", Distance: 6.2, Elevation: 2900, Time: "13:30"},
			{Name: "肩の小屋", Distance: 6.8, Elevation: 2983, Time: "14:00"},
			{Name: "北岳山頂", Distance: 7.5, Elevation: 3193, Time: "14:30"},
		},
	},
	{
		Name:               "西穂高岳",
		Mountain:           "西穂高岳",
		Label:              "新穂高ロープウェイ経由",
		TotalDistance:      4.0,
		TotalElevationGain: 753,
		Waypoints: []profile.Waypoint{
			{Name: "西穂高口駅", Distance: 0.0, Elevation: 2156, Time: "08:30"},
			{Name: "西穂山荘", Distance: 1.2, Elevation: 2400, Time: "09:40"},
			{Name: "西穂丸山", Distance: 1.7, Elevation: 2500, Time: "10:20"},
			{Name: "西穂独標", Distance: 2.7, Elevation: 2701, Time: "11:30"},
			{Name: "ピラミッドピーク", Distance: 3.5, Elevation: 2851, Time: "12:30"},
			{Name: "西穂高岳山頂", Distance: 4.0, Elevation: 2909, Time: "13:00"},
		},
	},
}
