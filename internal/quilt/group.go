package quilt

import "fmt"

// SelectForGrouping adds placements to the grouping selection. Placements
// already selected or no longer on the canvas are skipped.
func (a *Application) SelectForGrouping(placements ...*Placement) {
	for _, p := range placements {
		if !a.Placements.Contains(p) || a.IsSelected(p) {
			continue
		}
		a.selection = append(a.selection, p)
	}
}

// ToggleSelection flips p in or out of the grouping selection and reports
// whether it is selected afterwards.
func (a *Application) ToggleSelection(p *Placement) bool {
	for i, s := range a.selection {
		if s == p {
			a.selection = append(a.selection[:i], a.selection[i+1:]...)
			return false
		}
	}
	if !a.Placements.Contains(p) {
		return false
	}
	a.selection = append(a.selection, p)
	return true
}

func (a *Application) IsSelected(p *Placement) bool {
	for _, s := range a.selection {
		if s == p {
			return true
		}
	}
	return false
}

// Selection returns the selected placements in selection order.
func (a *Application) Selection() []*Placement {
	out := make([]*Placement, len(a.selection))
	copy(out, a.selection)
	return out
}

func (a *Application) ClearSelection() {
	a.selection = nil
}

// UseStoredPatches displays the stored patches at the given indices, each
// in the packed slot after the last placement, and selects them for
// grouping. An index out of range aborts before anything is drawn.
func (a *Application) UseStoredPatches(indices []int) ([]*Placement, error) {
	patches := make([]*Patch, 0, len(indices))
	for _, i := range indices {
		patch, err := a.Store.At(i)
		if err != nil {
			return nil, err
		}
		patches = append(patches, patch)
	}
	placed := make([]*Placement, 0, len(patches))
	for _, patch := range patches {
		placed = append(placed, a.DisplayPatch(patch, a.Placements.Len()))
	}
	a.SelectForGrouping(placed...)
	return placed, nil
}

// GroupSelected merges the selected placements into one patch covering
// their bounding box. The merged patch takes the color of the last
// selected placement. The selected placements are removed from the canvas;
// their patches stay in the store. An empty selection returns nil, nil.
func (a *Application) GroupSelected() (*Placement, error) {
	if len(a.selection) == 0 {
		return nil, nil
	}

	var bounds Rect
	var color string
	first := true
	for _, p := range a.selection {
		r, ok := a.Scene.Coords(p.Handle)
		if !ok {
			continue
		}
		if first {
			bounds = r
			first = false
		} else {
			bounds = bounds.Union(r)
		}
		if a.opts.StrictGroupColor && color != "" && color != p.Patch.Color {
			return nil, fmt.Errorf("%s and %s: %w", color, p.Patch.Color, ErrMixedColors)
		}
		color = p.Patch.Color
	}
	if first {
		a.ClearSelection()
		return nil, nil
	}
	if a.Store.Full() {
		return nil, fmt.Errorf("group %d patches: %w", len(a.selection), ErrCapacity)
	}

	coords := bounds.Min()
	merged := &Patch{
		Size:   Size{bounds.Width(), bounds.Height()},
		Color:  color,
		Coords: &coords,
	}
	if err := a.Store.Add(merged); err != nil {
		return nil, err
	}
	h := a.Scene.CreateRectangle(bounds, color, color)
	placement := &Placement{Handle: h, Patch: merged}
	a.Placements.Append(placement)

	active, dragging := a.Drag.Active()
	for _, p := range a.selection {
		if dragging && p.Handle == active {
			a.Drag.Forget()
		}
		a.Scene.Delete(p.Handle)
		a.Placements.Remove(p.Handle)
	}
	a.ClearSelection()
	return placement, nil
}
