package render

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"strings"

	"github.com/jamwevan/MATH-440/gauss"
	"github.com/jamwevan/MATH-440/grouping"
)

// Palette colors identical rows; it is cycled when there are more groups.
var Palette = []string{
	"#d1ffd1", "#d1e7ff", "#ffd1d1", "#fff7d1", "#d1fff5", "#ffd1f9", "#e1d1ff", "#ffd9d1",
}

const mathJaxURL = "https://cdnjs.cloudflare.com/ajax/libs/mathjax/2.7.7/MathJax.js?config=TeX-AMS-MML_HTMLorMML"

var page = template.Must(template.New("table").Parse(`<html><head><title>Gauss Sum Table</title>
<script type="text/javascript" async src="{{.Script}}"></script>
<style>table { border-collapse: collapse; width: 100%; }th, td { border: 1px solid black; padding: 5px; text-align: center; font-size: 18px; }th { background-color: #f2f2f2; }
{{range .Colors}}.{{.Class}} { background-color: {{.Color}}; }
{{end}}</style>
</head><body>
<h2>Gauss Sum Table for GF({{.Q}}^2)</h2>
<div style="overflow-x:auto;"><table>
<tr><th>\( \theta \backslash \alpha \)</th>{{range .Alphas}}<th>\( \alpha = {{.}} \)</th>{{end}}</tr>
{{range .Rows}}<tr class="{{.Class}}"><td>\( {{.Theta}} \)</td>{{range .Cells}}<td>\( {{.}} \)</td>{{end}}</tr>
{{end}}</table>
</div>
</body></html>
`))

type colorClass struct {
	Class template.CSS
	Color template.CSS
}

type htmlRow struct {
	Theta int
	Class string
	Cells []string
}

type htmlPage struct {
	Script string
	Q      int
	Colors []colorClass
	Alphas []int
	Rows   []htmlRow
}

// ColorOf returns the palette color of the group at position i.
func ColorOf(i int) string {
	return Palette[i%len(Palette)]
}

func className(color string) string {
	return "color-" + strings.TrimPrefix(color, "#")
}

// HTML writes the table with every row shaded by the color of its group.
func HTML(w io.Writer, t *gauss.Table, groups []grouping.Group) error {
	labels := grouping.Labels(groups, t.Rows())

	data := htmlPage{Script: mathJaxURL, Q: t.Q()}
	used := make(map[string]bool)
	for i := range groups {
		c := ColorOf(i)
		if used[c] {
			continue
		}
		used[c] = true
		data.Colors = append(data.Colors, colorClass{Class: template.CSS(className(c)), Color: template.CSS(c)})
	}
	for alpha := 0; alpha < t.Cols(); alpha++ {
		data.Alphas = append(data.Alphas, alpha)
	}
	for theta := 0; theta < t.Rows(); theta++ {
		row := htmlRow{Theta: theta, Class: className(ColorOf(labels[theta]))}
		for _, x := range t.Row(theta) {
			row.Cells = append(row.Cells, x.LaTeX())
		}
		data.Rows = append(data.Rows, row)
	}
	return page.Execute(w, data)
}

// SaveHTML writes HTML to filename.
func SaveHTML(filename string, t *gauss.Table, groups []grouping.Group) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create %s: %w", filename, err)
	}
	defer f.Close()
	if err := HTML(f, t, groups); err != nil {
		return fmt.Errorf("render %s: %w", filename, err)
	}
	return f.Close()
}
