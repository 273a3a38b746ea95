package quilt

// Options tune the behavior of an Application.
type Options struct {
	// StrictGroupColor makes GroupSelected refuse a selection with more
	// than one color. When false the last selected placement's color is
	// used for the merged patch.
	StrictGroupColor bool
}

// Application owns the whole editing state of one design. Every editor
// action goes through it.
type Application struct {
	Store      *Store
	Placements *PlacementList
	Scene      *Scene
	Drag       DragController

	selection []*Placement
	opts      Options
}

func New(opts Options) *Application {
	return &Application{
		Store:      NewStore(),
		Placements: NewPlacementList(),
		Scene:      NewScene(),
		opts:       opts,
	}
}

// CreatePatch stores a new patch of the given color and displays it in
// the next packed slot.
func (a *Application) CreatePatch(color string) (*Placement, error) {
	patch, err := a.Store.Create(color)
	if err != nil {
		return nil, err
	}
	return a.DisplayPatch(patch, a.Store.Len()-1), nil
}

// DisplayPatch draws patch in the index'th packed slot and appends the
// placement. The patch receives coordinates only on its first display.
func (a *Application) DisplayPatch(patch *Patch, index int) *Placement {
	pos := PackedPosition(index, patch.Size)
	if patch.Coords == nil {
		coords := pos
		patch.Coords = &coords
	}
	h := a.Scene.CreateRectangle(RectAt(pos, patch.Size), patch.Color, patch.Color)
	p := &Placement{Handle: h, Patch: patch}
	a.Placements.Append(p)
	return p
}

// PlacementAt returns the topmost placement under p.
func (a *Application) PlacementAt(p Point) (*Placement, bool) {
	h, ok := a.Scene.TopmostAt(p)
	if !ok {
		return nil, false
	}
	return a.Placements.Lookup(h)
}

// Rect returns the current on-canvas extent of a placement.
func (a *Application) Rect(p *Placement) (Rect, bool) {
	return a.Scene.Coords(p.Handle)
}

// PressAt starts dragging the placement nearest to p.
func (a *Application) PressAt(p Point) bool {
	return a.Drag.Press(a.Scene, a.Placements, p)
}

// DragTo moves the dragged placement with the pointer.
func (a *Application) DragTo(p Point) bool {
	return a.Drag.Move(a.Scene, p)
}

// Release drops the dragged placement onto the grid.
func (a *Application) Release() (Rect, bool) {
	return a.Drag.Release(a.Scene, a.Placements)
}

func (a *Application) CancelDrag() bool {
	return a.Drag.Cancel(a.Scene, a.Placements)
}
