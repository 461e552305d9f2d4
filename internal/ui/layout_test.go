package ui

import (
	"testing"

	"cgol/internal/core"
)

func testSnapshot() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Simulation", Params: []core.Parameter{
			{Key: "generation", Label: "Generation", Value: "12"},
			{Key: "period_ms", Label: "Period ms", Value: "150"},
		}},
		{Name: "Grid", Params: []core.Parameter{
			{Key: "cols", Label: "Columns", Value: "20"},
		}},
	}}
}

func TestLayoutRows(t *testing.T) {
	controls := []core.ParameterControl{{Key: "period_ms", Step: 25, Min: 25, HasMin: true}}
	rows, height := layoutRows(testSnapshot(), controls)
	if len(rows) != 5 {
		t.Fatalf("expected 2 headers and 3 params, got %d rows", len(rows))
	}
	if !rows[0].header || !rows[3].header {
		t.Fatal("group names should be header rows")
	}
	if height != panelPadding*2+5*lineHeight {
		t.Fatalf("unexpected panel height %d", height)
	}
	for i, row := range rows {
		hasControl := row.control != nil
		if hasControl != (i == 2) {
			t.Fatalf("row %d (%s) control=%v", i, row.label, hasControl)
		}
	}
	period := rows[2]
	if period.minusRect.Max.X > period.plusRect.Min.X {
		t.Fatal("minus button should sit left of plus")
	}
	if period.plusRect.Max.X != panelWidth-panelPadding {
		t.Fatalf("plus button should align to the panel edge, got %v", period.plusRect)
	}
}

func TestHitButton(t *testing.T) {
	controls := []core.ParameterControl{{Key: "period_ms", Step: 25}}
	rows, _ := layoutRows(testSnapshot(), controls)
	plus := rows[2].plusRect
	row, dir, ok := hitButton(rows, plus.Min.X+1, plus.Min.Y+1)
	if !ok || dir != 1 || row.label != "Period ms" {
		t.Fatalf("expected plus hit on period, got ok=%v dir=%d", ok, dir)
	}
	minus := rows[2].minusRect
	if _, dir, ok := hitButton(rows, minus.Min.X, minus.Min.Y); !ok || dir != -1 {
		t.Fatalf("expected minus hit, got ok=%v dir=%d", ok, dir)
	}
	if _, _, ok := hitButton(rows, 1, 1); ok {
		t.Fatal("panel padding is not a button")
	}
}

func TestAdjustValue(t *testing.T) {
	ctrl := core.ParameterControl{Step: 25, Min: 25, HasMin: true, Max: 100, HasMax: true}
	if got := adjustValue(ctrl, 50, -1); got != 25 {
		t.Fatalf("expected 25, got %d", got)
	}
	if got := adjustValue(ctrl, 25, -1); got != 25 {
		t.Fatalf("minimum must hold, got %d", got)
	}
	if got := adjustValue(ctrl, 90, 1); got != 100 {
		t.Fatalf("maximum must hold, got %d", got)
	}
	if got := adjustValue(core.ParameterControl{}, 3, 1); got != 4 {
		t.Fatalf("zero step defaults to 1, got %d", got)
	}
}
