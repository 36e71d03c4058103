package tui

import "slimeatlas/internal/geom"

const (
	sidebarWidth = 28
	headerHeight = 1
	footerHeight = 2
	sliderLabel  = "scale "
)

// layout is the screen geometry shared by View and the mouse handlers.
type layout struct {
	mapX, mapY int
	mapW, mapH int

	sliderX, sliderY, sliderW int
}

func (m Model) layout() layout {
	var lo layout
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 4 {
		contentHeight = 4
	}
	if m.showSidebar {
		lo.mapX = sidebarWidth + 1
	}
	lo.mapY = headerHeight
	lo.mapW = m.width - lo.mapX
	if lo.mapW < 10 {
		lo.mapW = 10
	}
	lo.mapH = contentHeight

	lo.sliderX = len(sliderLabel)
	lo.sliderY = headerHeight + contentHeight + 1
	lo.sliderW = lo.mapW * 30 / 100
	if lo.sliderW < 10 {
		lo.sliderW = 10
	}
	return lo
}

// surfaceSize is the map area in braille dots.
func (lo layout) surfaceSize() geom.Size {
	return geom.Size{W: lo.mapW * dotsPerCol, H: lo.mapH * dotsPerRow}
}

func (lo layout) inMap(x, y int) bool {
	return x >= lo.mapX && x < lo.mapX+lo.mapW && y >= lo.mapY && y < lo.mapY+lo.mapH
}

func (lo layout) inSlider(x, y int) bool {
	return y == lo.sliderY && x >= lo.sliderX && x < lo.sliderX+lo.sliderW
}

// sliderFraction maps a column on the slider to [0, 1].
func (lo layout) sliderFraction(x int) float64 {
	if lo.sliderW <= 1 {
		return 0
	}
	return float64(clampInt(x-lo.sliderX, 0, lo.sliderW-1)) / float64(lo.sliderW-1)
}
