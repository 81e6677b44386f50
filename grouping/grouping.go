// Package grouping partitions the rows of a Gauss sum table into classes
// of exactly equal rows.
package grouping

import (
	"sort"
)

// Group is a set of theta indices with identical rows, in increasing order.
type Group []int

// Min returns the smallest theta of g.
func (g Group) Min() int { return g[0] }

// Size returns the number of rows in g.
func (g Group) Size() int { return len(g) }

// Rower is the part of gauss.Table that grouping needs.
type Rower interface {
	Rows() int
	RowKey(theta int) string
}

// Rows groups the rows of t by exact value. Groups are ordered by
// decreasing size, ties broken by increasing smallest theta.
func Rows(t Rower) []Group {
	index := make(map[string]int)
	var groups []Group
	for theta := 0; theta < t.Rows(); theta++ {
		key := t.RowKey(theta)
		if i, ok := index[key]; ok {
			groups[i] = append(groups[i], theta)
			continue
		}
		index[key] = len(groups)
		groups = append(groups, Group{theta})
	}
	sort.SliceStable(groups, func(i, j int) bool {
		if len(groups[i]) != len(groups[j]) {
			return len(groups[i]) > len(groups[j])
		}
		return groups[i].Min() < groups[j].Min()
	})
	return groups
}

// Labels maps every theta to the position of its group in groups.
func Labels(groups []Group, rows int) []int {
	labels := make([]int, rows)
	for i, g := range groups {
		for _, theta := range g {
			labels[theta] = i
		}
	}
	return labels
}
