package quilt

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Record is one saved rectangle: its extent as x1,y1,x2,y2, its color and
// the size of the patch it was drawn from.
type Record struct {
	Coords [4]float64 `json:"coords"`
	Color  string     `json:"color"`
	Size   Size       `json:"size"`
}

// Rect returns the record's extent.
func (r Record) Rect() Rect {
	return Rect{r.Coords[0], r.Coords[1], r.Coords[2], r.Coords[3]}
}

// MarshalJSON writes a square size as one number and any other size as a
// [w, h] pair.
func (s Size) MarshalJSON() ([]byte, error) {
	if s.IsSquare() {
		return json.Marshal(s.W)
	}
	return json.Marshal([2]float64{s.W, s.H})
}

func (s *Size) UnmarshalJSON(data []byte) error {
	var edge float64
	if err := json.Unmarshal(data, &edge); err == nil {
		*s = Square(edge)
		return nil
	}
	var pair []float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return errors.New("size must be a number or a pair of numbers")
	}
	if len(pair) != 2 {
		return fmt.Errorf("size pair has %d values, want 2", len(pair))
	}
	*s = Size{pair[0], pair[1]}
	return nil
}

// Serialize records every placement using its current on-canvas extent,
// so that drags are captured even though the patch coordinates are not
// updated by them.
func Serialize(l *PlacementList, s *Scene) []Record {
	records := make([]Record, 0, l.Len())
	for _, p := range l.All() {
		r, ok := s.Coords(p.Handle)
		if !ok {
			continue
		}
		records = append(records, Record{
			Coords: [4]float64{r.X1, r.Y1, r.X2, r.Y2},
			Color:  p.Patch.Color,
			Size:   p.Patch.Size,
		})
	}
	return records
}

// Encode writes records as an indented JSON array.
func Encode(w io.Writer, records []Record) error {
	if records == nil {
		records = []Record{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// Decode reads and validates a project document. Every record must carry
// coords (four numbers), color (a string) and size (a number or a pair).
// Any violation is reported as ErrFormat and no records are returned.
func Decode(r io.Reader) ([]Record, error) {
	var raw []map[string]json.RawMessage
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: unexpected data after the record list", ErrFormat)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: document is not a list of records", ErrFormat)
	}
	records := make([]Record, 0, len(raw))
	for i, fields := range raw {
		rec, err := decodeRecord(fields)
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrFormat, i, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func decodeRecord(fields map[string]json.RawMessage) (Record, error) {
	var rec Record
	for _, name := range []string{"coords", "color", "size"} {
		if v, ok := fields[name]; !ok || isNull(v) {
			return rec, fmt.Errorf("missing %q", name)
		}
	}

	var coords []float64
	if err := json.Unmarshal(fields["coords"], &coords); err != nil {
		return rec, errors.New("coords must be numbers")
	}
	if len(coords) != 4 {
		return rec, fmt.Errorf("coords has %d values, want 4", len(coords))
	}
	copy(rec.Coords[:], coords)

	if err := json.Unmarshal(fields["color"], &rec.Color); err != nil {
		return rec, errors.New("color must be a string")
	}
	if err := json.Unmarshal(fields["size"], &rec.Size); err != nil {
		return rec, err
	}
	return rec, nil
}

func isNull(v json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(v), []byte("null"))
}

// Load replaces the canvas with the given records. The scene, the
// placement list, the selection and any drag are cleared first; the
// patch store is left alone.
func (a *Application) Load(records []Record) {
	a.Drag.Forget()
	a.ClearSelection()
	a.Scene.Clear()
	a.Placements.Clear()
	for _, rec := range records {
		r := rec.Rect()
		h := a.Scene.CreateRectangle(r, rec.Color, rec.Color)
		coords := Point{rec.Coords[0], rec.Coords[1]}
		patch := &Patch{Size: rec.Size, Color: rec.Color, Coords: &coords}
		a.Placements.Append(&Placement{Handle: h, Patch: patch})
	}
}

// Snapshot serializes the current canvas.
func (a *Application) Snapshot() []Record {
	return Serialize(a.Placements, a.Scene)
}
