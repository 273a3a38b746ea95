package quilt

// Handle identifies one rectangle in a Scene. The zero Handle is never
// issued.
type Handle uint64

// Item is one drawn rectangle.
type Item struct {
	Handle  Handle
	Rect    Rect
	Fill    string
	Outline string
	Width   float64
}

// Scene is the drawing surface: rectangles in z-order, bottom first.
// Renderers read it through Items and never see placements or patches.
type Scene struct {
	next  Handle
	items map[Handle]*Item
	order []Handle
}

func NewScene() *Scene {
	return &Scene{
		items: make(map[Handle]*Item),
		order: make([]Handle, 0),
	}
}

// CreateRectangle adds a rectangle on top of the scene with a 1px outline.
func (s *Scene) CreateRectangle(r Rect, fill, outline string) Handle {
	s.next++
	h := s.next
	s.items[h] = &Item{
		Handle:  h,
		Rect:    r.Canon(),
		Fill:    fill,
		Outline: outline,
		Width:   normalWidth,
	}
	s.order = append(s.order, h)
	return h
}

func (s *Scene) Coords(h Handle) (Rect, bool) {
	item, ok := s.items[h]
	if !ok {
		return Rect{}, false
	}
	return item.Rect, true
}

func (s *Scene) SetCoords(h Handle, r Rect) bool {
	item, ok := s.items[h]
	if !ok {
		return false
	}
	item.Rect = r.Canon()
	return true
}

// Move translates an item by (dx, dy).
func (s *Scene) Move(h Handle, dx, dy float64) bool {
	item, ok := s.items[h]
	if !ok {
		return false
	}
	item.Rect = item.Rect.Translate(Point{dx, dy})
	return true
}

// Configure changes the outline color and width of an item.
func (s *Scene) Configure(h Handle, outline string, width float64) bool {
	item, ok := s.items[h]
	if !ok {
		return false
	}
	item.Outline = outline
	item.Width = width
	return true
}

func (s *Scene) Item(h Handle) (Item, bool) {
	item, ok := s.items[h]
	if !ok {
		return Item{}, false
	}
	return *item, true
}

func (s *Scene) Delete(h Handle) bool {
	if _, ok := s.items[h]; !ok {
		return false
	}
	delete(s.items, h)
	for i, oh := range s.order {
		if oh == h {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Clear removes every item. Handles keep increasing so that a stale
// handle never names a new item.
func (s *Scene) Clear() {
	s.items = make(map[Handle]*Item)
	s.order = s.order[:0]
}

func (s *Scene) Len() int {
	return len(s.order)
}

// FindClosest returns the item nearest to p. Items containing p are at
// distance zero; on a tie the topmost item wins.
func (s *Scene) FindClosest(p Point) (Handle, bool) {
	best := Handle(0)
	bestDist := -1.0
	for i := len(s.order) - 1; i >= 0; i-- {
		h := s.order[i]
		d := s.items[h].Rect.Distance(p)
		if bestDist < 0 || d < bestDist {
			best, bestDist = h, d
		}
	}
	return best, bestDist >= 0
}

// TopmostAt returns the topmost item whose rectangle contains p.
func (s *Scene) TopmostAt(p Point) (Handle, bool) {
	for i := len(s.order) - 1; i >= 0; i-- {
		h := s.order[i]
		if s.items[h].Rect.Contains(p) {
			return h, true
		}
	}
	return 0, false
}

// Items returns a copy of every item, bottom first.
func (s *Scene) Items() []Item {
	out := make([]Item, 0, len(s.order))
	for _, h := range s.order {
		out = append(out, *s.items[h])
	}
	return out
}
