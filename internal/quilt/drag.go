package quilt

// DragState is the state of the drag controller.
type DragState int

const (
	Idle DragState = iota
	Dragging
)

func (s DragState) String() string {
	switch s {
	case Idle:
		return "IDLE"
	case Dragging:
		return "DRAGGING"
	default:
		return "UNKNOWN"
	}
}

// DragController follows one pointer drag: press picks the nearest item,
// motion moves it freely, release snaps it to a single grid cell.
type DragController struct {
	state  DragState
	active Handle
	offset Point
	origin Rect
}

func (d *DragController) State() DragState {
	return d.state
}

// Active returns the handle being dragged.
func (d *DragController) Active() (Handle, bool) {
	return d.active, d.state == Dragging
}

// Press starts a drag on the item nearest to p. It returns false when the
// scene is empty.
func (d *DragController) Press(s *Scene, l *PlacementList, p Point) bool {
	if d.state == Dragging {
		d.Cancel(s, l)
	}
	h, ok := s.FindClosest(p)
	if !ok {
		return false
	}
	r, _ := s.Coords(h)
	d.state = Dragging
	d.active = h
	d.offset = p.Sub(r.Min())
	d.origin = r
	s.Configure(h, HighlightColor, HighlightWidth)
	return true
}

// Move places the dragged item's top-left at p minus the press offset.
func (d *DragController) Move(s *Scene, p Point) bool {
	if d.state != Dragging {
		return false
	}
	r, ok := s.Coords(d.active)
	if !ok {
		d.reset()
		return false
	}
	to := p.Sub(d.offset)
	return s.Move(d.active, to.X-r.X1, to.Y-r.Y1)
}

// Release snaps the dragged item's top-left to the grid and resizes it to
// exactly one grid cell, whatever its size before. It returns the final
// rectangle, or false when nothing was being dragged.
func (d *DragController) Release(s *Scene, l *PlacementList) (Rect, bool) {
	if d.state != Dragging {
		return Rect{}, false
	}
	h := d.active
	d.reset()
	r, ok := s.Coords(h)
	if !ok {
		return Rect{}, false
	}
	snapped := RectAt(Snap(r.Min()), Square(GridSize))
	s.SetCoords(h, snapped)
	d.unhighlight(s, l, h)
	return snapped, true
}

// Cancel ends a drag without snapping and puts the item back where the
// press found it.
func (d *DragController) Cancel(s *Scene, l *PlacementList) bool {
	if d.state != Dragging {
		return false
	}
	h, origin := d.active, d.origin
	d.reset()
	if !s.SetCoords(h, origin) {
		return false
	}
	d.unhighlight(s, l, h)
	return true
}

// Forget drops the drag without touching the scene. It is used when the
// dragged item is deleted.
func (d *DragController) Forget() {
	d.reset()
}

func (d *DragController) unhighlight(s *Scene, l *PlacementList, h Handle) {
	outline := ""
	if p, ok := l.Lookup(h); ok {
		outline = p.Patch.Color
	} else if item, ok := s.Item(h); ok {
		outline = item.Fill
	}
	s.Configure(h, outline, normalWidth)
}

func (d *DragController) reset() {
	d.state = Idle
	d.active = 0
	d.offset = Point{}
	d.origin = Rect{}
}
