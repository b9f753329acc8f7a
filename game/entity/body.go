package entity

import "color-snake/game/types"

// Segment is one occupied cell of a snake or wall.
type Segment struct {
	Pos types.Point
}

func NewSegment(pos types.Point) Segment {
	return Segment{Pos: pos}
}

// Body is an ordered chain of segments. For a snake the front is the cell
// right behind the head and the back is the tail.
type Body struct {
	segments []Segment
}

func NewBody(segments ...Segment) Body {
	b := Body{segments: make([]Segment, 0, len(segments)+4)}
	b.segments = append(b.segments, segments...)
	return b
}

func (b *Body) PushFront(s Segment) {
	b.segments = append(b.segments, Segment{})
	copy(b.segments[1:], b.segments)
	b.segments[0] = s
}

func (b *Body) PushBack(s Segment) {
	b.segments = append(b.segments, s)
}

// PopBack removes and returns the last segment. ok is false on an empty body.
func (b *Body) PopBack() (s Segment, ok bool) {
	if len(b.segments) == 0 {
		return Segment{}, false
	}
	s = b.segments[len(b.segments)-1]
	b.segments = b.segments[:len(b.segments)-1]
	return s, true
}

func (b Body) Len() int {
	return len(b.segments)
}

func (b Body) Front() (Segment, bool) {
	if len(b.segments) == 0 {
		return Segment{}, false
	}
	return b.segments[0], true
}

func (b Body) Back() (Segment, bool) {
	if len(b.segments) == 0 {
		return Segment{}, false
	}
	return b.segments[len(b.segments)-1], true
}

// Contains reports whether any segment sits on p.
func (b Body) Contains(p types.Point) bool {
	for _, s := range b.segments {
		if s.Pos == p {
			return true
		}
	}
	return false
}

// Positions returns a copy of the segment positions in chain order.
func (b Body) Positions() []types.Point {
	out := make([]types.Point, len(b.segments))
	for i, s := range b.segments {
		out[i] = s.Pos
	}
	return out
}

// Clone returns a body that shares no storage with b.
func (b Body) Clone() Body {
	return NewBody(b.segments...)
}
