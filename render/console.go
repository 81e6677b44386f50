// Package render presents a computed table and its row groups, as a fixed
// width console listing or as an HTML page with MathJax cells.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jamwevan/MATH-440/grouping"
)

const ruleWidth = 80

// Console writes one line per group: the theta set, a match marker and the size.
func Console(w io.Writer, q int, groups []grouping.Group) error {
	rule := strings.Repeat("-", ruleWidth)
	modHeader := fmt.Sprintf("Mod %d", q-1)

	var sb strings.Builder
	fmt.Fprintln(&sb, rule)
	fmt.Fprintf(&sb, "%-20s %-20s %-20s\n", "Theta", modHeader, "Size")
	fmt.Fprintln(&sb, rule)
	for _, g := range groups {
		fmt.Fprintf(&sb, "%-20s %-20s %-20d\n", thetaSet(g), "True", g.Size())
	}
	fmt.Fprintln(&sb, rule)

	_, err := io.WriteString(w, sb.String())
	return err
}

func thetaSet(g grouping.Group) string {
	parts := make([]string, len(g))
	for i, theta := range g {
		parts[i] = fmt.Sprint(theta)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
