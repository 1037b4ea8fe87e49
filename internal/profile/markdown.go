package profile

import (
	"fmt"
	"strings"
	"text/template"
)

var markdownTemplate = template.Must(template.New("profile").Funcs(template.FuncMap{
	"f1":      func(v float64) string { return fmt.Sprintf("%.1f", v) },
	"f0":      func(v float64) string { return fmt.Sprintf("%.0f", v) },
	"signed":  func(v float64) string { return fmt.Sprintf("%+.0f", v) },
	"feature": func(g float64) string { return Classify(g).Japanese() },
}).Parse(`
## コースプロファイル（標高グラフ）

### 標高変化の概要
- **総距離**: {{f1 .Route.TotalDistance}}km
- **獲得標高**: +{{f0 .Route.TotalElevationGain}}m
- **平均勾配**: {{f1 .Stats.AverageGradient}}%
- **最大勾配**: {{f1 .Stats.MaxGradient}}%

<div id="elevation-profile-chart" class="mt-4" style="height: 400px;">
    <!-- Chart.jsグラフがここに表示される -->
</div>

### 区間別詳細
| 区間 | 距離 | 標高差 | 勾配 | 特徴 |
|------|------|--------|------|------|
{{- range .Stats.Sections}}
| {{.Section}} | {{f1 .Distance}}km | {{signed .ElevationDiff}}m | {{f1 .Gradient}}% | {{feature .Gradient}} |
{{- end}}
`))

// RenderMarkdown produces the course-profile section embedded in a
// mountain's guide page: an overview, the chart placeholder and one table
// row per gradient section.
func RenderMarkdown(route Route, stats GradientStats) (string, error) {
	var b strings.Builder
	err := markdownTemplate.Execute(&b, struct {
		Route Route
		Stats GradientStats
	}{route.Normalize(), stats})
	if err != nil {
		return "", fmt.Errorf("render markdown for %q: %w", route.Name, err)
	}
	return b.String(), nil
}
