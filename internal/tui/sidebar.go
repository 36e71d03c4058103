package tui

import (
	"fmt"
	"math"
	"sort"

	list "github.com/charmbracelet/bubbles/list"

	"slimeatlas/internal/geom"
)

// chunkItem is a slime chunk in the sidebar.
type chunkItem struct {
	chunk geom.Chunk
	dist  float64
}

func (c chunkItem) Title() string {
	return fmt.Sprintf("chunk %d, %d", c.chunk.X, c.chunk.Z)
}

func (c chunkItem) Description() string {
	o := c.chunk.Origin()
	return fmt.Sprintf("at %g, %g  (%.0f away)", o.X, o.Z, c.dist)
}

func (c chunkItem) FilterValue() string { return c.Title() }

// syncSidebar lists the slime chunks of the latest frame, nearest first.
func (m *Model) syncSidebar() {
	if m.sidebarSeq == m.s.frameSeq {
		return
	}
	m.sidebarSeq = m.s.frameSeq
	f := m.s.frame
	items := make([]list.Item, 0, len(f.Marked))
	for _, c := range f.Marked {
		d := c.Center().Sub(f.Center)
		items = append(items, chunkItem{chunk: c, dist: math.Hypot(d.X, d.Z)})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(chunkItem).dist < items[j].(chunkItem).dist })
	m.l.SetItems(items)
}
