package ui

import (
	"image"

	"cgol/internal/core"
)

const (
	panelPadding  = 8
	panelWidth    = 200
	lineHeight    = 18
	buttonSize    = 14
	buttonGap     = 4
	textBaseline  = 13
	paramIndent   = 8
	valueRightPad = 2*buttonSize + 2*buttonGap + panelPadding
)

type hudRow struct {
	label  string
	value  string
	header bool
	top    int

	control   *core.ParameterControl
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// layoutRows turns a snapshot into positioned rows. Parameters with a
// matching control get -/+ buttons on the right edge.
func layoutRows(snap core.ParameterSnapshot, controls []core.ParameterControl) ([]hudRow, int) {
	byKey := make(map[string]*core.ParameterControl, len(controls))
	for i := range controls {
		byKey[controls[i].Key] = &controls[i]
	}

	var rows []hudRow
	top := panelPadding
	for _, group := range snap.Groups {
		rows = append(rows, hudRow{label: group.Name, header: true, top: top})
		top += lineHeight
		for _, p := range group.Params {
			row := hudRow{label: p.Label, value: p.Value, top: top}
			if ctrl, ok := byKey[p.Key]; ok {
				buttonY := top + (lineHeight-buttonSize)/2
				row.control = ctrl
				row.plusRect = image.Rect(panelWidth-panelPadding-buttonSize, buttonY, panelWidth-panelPadding, buttonY+buttonSize)
				row.minusRect = image.Rect(row.plusRect.Min.X-buttonGap-buttonSize, buttonY, row.plusRect.Min.X-buttonGap, buttonY+buttonSize)
			}
			rows = append(rows, row)
			top += lineHeight
		}
	}
	return rows, top + panelPadding
}

// hitButton finds the control button under (x, y) in panel coordinates.
func hitButton(rows []hudRow, x, y int) (*hudRow, int, bool) {
	for i := range rows {
		row := &rows[i]
		if row.control == nil {
			continue
		}
		if pointInRect(x, y, row.minusRect) {
			return row, -1, true
		}
		if pointInRect(x, y, row.plusRect) {
			return row, 1, true
		}
	}
	return nil, 0, false
}

// adjustValue applies one step in direction dir, clamped to the control bounds.
func adjustValue(ctrl core.ParameterControl, current, dir int) int {
	step := ctrl.Step
	if step <= 0 {
		step = 1
	}
	return ctrl.Clamp(current + dir*step)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}
