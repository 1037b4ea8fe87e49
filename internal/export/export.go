package export

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"summithub-profiles/internal/profile"
	"summithub-profiles/internal/route"
)

const (
	ProfileDataFile  = "profile_data.json"
	InterpolatedFile = "interpolated_data.json"
	ChartDataFile    = "chart_data.json"
	GradientFile     = "gradient_stats.json"
	MarkdownFile     = "profile.md"
)

var (
	mkdirAll  = os.MkdirAll
	writeFile = os.WriteFile
)

// Artifacts holds everything generated for one route.
type Artifacts struct {
	Route        profile.Route
	Interpolated []profile.InterpolatedPoint
	Chart        profile.ChartData
	Gradient     profile.GradientStats
	Markdown     string
}

// Build computes all artifacts of a route without touching the filesystem.
func Build(r profile.Route) (Artifacts, error) {
	if err := r.Validate(); err != nil {
		return Artifacts{}, err
	}
	r = r.Normalize()

	points, err := profile.Interpolate(r.Waypoints)
	if err != nil {
		return Artifacts{}, err
	}
	stats, err := profile.CalculateGradientStats(r.Waypoints)
	if err != nil {
		return Artifacts{}, err
	}
	md, err := profile.RenderMarkdown(r, stats)
	if err != nil {
		return Artifacts{}, err
	}
	return Artifacts{
		Route:        r,
		Interpolated: points,
		Chart:        profile.AssembleChartData(r, points),
		Gradient:     stats,
		Markdown:     md,
	}, nil
}

// Write stores the artifacts under dir/<route name>/. Files are written one
// after another; when one fails the earlier ones are left in place.
func Write(dir string, a Artifacts) ([]string, error) {
	if err := profile.ValidateName(a.Route.Name); err != nil {
		return nil, err
	}
	routeDir := filepath.Join(dir, a.Route.Name)
	if err := mkdirAll(routeDir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", routeDir, err)
	}

	var written []string
	for _, f := range []struct {
		name string
		v    any
	}{
		{ProfileDataFile, a.Route},
		{InterpolatedFile, a.Interpolated},
		{ChartDataFile, a.Chart},
		{GradientFile, a.Gradient},
	} {
		path := filepath.Join(routeDir, f.name)
		if err := writeJSON(path, f.v); err != nil {
			return written, err
		}
		written = append(written, path)
	}

	path := filepath.Join(routeDir, MarkdownFile)
	if err := writeFile(path, []byte(a.Markdown), 0o644); err != nil {
		return written, fmt.Errorf("write %s: %w", path, err)
	}
	return append(written, path), nil
}

// writeJSON indents with two spaces and keeps non-ASCII text readable.
func writeJSON(path string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := writeFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Failure records a route that could not be generated.
type Failure struct {
	Route string
	Err   error
}

type Report struct {
	Generated []string
	Failed    []Failure
}

func (r Report) Err() error {
	if len(r.Failed) == 0 {
		return nil
	}
	errs := make([]error, len(r.Failed))
	for i, f := range r.Failed {
		errs[i] = fmt.Errorf("%s: %w", f.Route, f.Err)
	}
	return errors.Join(errs...)
}

// Generate builds and writes the artifacts of a single route.
func Generate(ctx context.Context, provider route.Provider, dir, name string) ([]string, error) {
	r, err := provider.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	a, err := Build(r)
	if err != nil {
		return nil, err
	}
	return Write(dir, a)
}

// GenerateAll processes every route the provider knows. A failing route is
// logged and recorded, then the batch moves on.
func GenerateAll(ctx context.Context, provider route.Provider, dir string) (Report, error) {
	routes, err := provider.List(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("list routes: %w", err)
	}

	var report Report
	for _, r := range routes {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		log.Printf("generating profile for %s", r.Name)

		a, err := Build(r)
		if err != nil {
			log.Printf("skip %s: %v", r.Name, err)
			report.Failed = append(report.Failed, Failure{Route: r.Name, Err: err})
			continue
		}
		paths, err := Write(dir, a)
		for _, p := range paths {
			log.Printf("  wrote %s", p)
		}
		if err != nil {
			log.Printf("write %s: %v", r.Name, err)
			report.Failed = append(report.Failed, Failure{Route: r.Name, Err: err})
			continue
		}
		report.Generated = append(report.Generated, r.Name)
	}
	return report, nil
}

// GenerateNamed runs Generate for each name, continuing past unknown or
// invalid routes.
func GenerateNamed(ctx context.Context, provider route.Provider, dir string, names []string) Report {
	var report Report
	for _, name := range names {
		if _, err := Generate(ctx, provider, dir, name); err != nil {
			log.Printf("skip %s: %v", name, err)
			report.Failed = append(report.Failed, Failure{Route: name, Err: err})
			continue
		}
		report.Generated = append(report.Generated, name)
	}
	return report
}
