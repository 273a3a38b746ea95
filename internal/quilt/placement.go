package quilt

// Placement is one on-canvas occurrence of a patch. Several placements
// may share a patch.
type Placement struct {
	Handle Handle
	Patch  *Patch
}

// PlacementList is the ordered list of placements on the canvas, indexed
// by scene handle.
type PlacementList struct {
	items    []*Placement
	byHandle map[Handle]*Placement
}

func NewPlacementList() *PlacementList {
	return &PlacementList{
		items:    make([]*Placement, 0),
		byHandle: make(map[Handle]*Placement),
	}
}

func (l *PlacementList) Append(p *Placement) {
	l.items = append(l.items, p)
	l.byHandle[p.Handle] = p
}

func (l *PlacementList) Lookup(h Handle) (*Placement, bool) {
	p, ok := l.byHandle[h]
	return p, ok
}

// Contains reports whether p itself, not just its handle, is listed.
func (l *PlacementList) Contains(p *Placement) bool {
	if p == nil {
		return false
	}
	found, ok := l.byHandle[p.Handle]
	return ok && found == p
}

func (l *PlacementList) Remove(h Handle) bool {
	if _, ok := l.byHandle[h]; !ok {
		return false
	}
	delete(l.byHandle, h)
	for i, p := range l.items {
		if p.Handle == h {
			l.items = append(l.items[:i], l.items[i+1:]...)
			break
		}
	}
	return true
}

func (l *PlacementList) Clear() {
	l.items = l.items[:0]
	l.byHandle = make(map[Handle]*Placement)
}

func (l *PlacementList) Len() int {
	return len(l.items)
}

func (l *PlacementList) At(i int) *Placement {
	return l.items[i]
}

// All returns the placements in display order.
func (l *PlacementList) All() []*Placement {
	out := make([]*Placement, len(l.items))
	copy(out, l.items)
	return out
}
