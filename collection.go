// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package shaape

import (
	"reflect"
	"sort"
)

// Footprint is implemented by entities representing the diagram's overall bounding region.
// The first one in a collection is the scale reference for the canvas.
type Footprint interface {
	Drawable
	// NaturalSize returns the unscaled extent in diagram units.
	NaturalSize() Vec
}

// NaturalSize implements Footprint. It is not affected by Scale.
func (b *Background) NaturalSize() Vec {
	return b.natural
}

// Collection is the ordered set of entities found by the stages, in discovery order.
//
// A Collection is a value: Append never writes to the receiver's backing array, so a stage
// can't change what an earlier stage handed out.
type Collection []Entity

// Append returns a new collection holding c followed by e.
func (c Collection) Append(e ...Entity) Collection {
	out := make(Collection, len(c), len(c)+len(e))
	copy(out, c)
	return append(out, e...)
}

// Footprint returns the first Footprint in collection order.
func (c Collection) Footprint() (Footprint, error) {
	for _, o := range c {
		if f, ok := o.(Footprint); ok {
			return f, nil
		}
	}
	return nil, &MissingBackgroundError{Entities: len(c)}
}

// Drawables returns the Drawable entities, in collection order.
func (c Collection) Drawables() []Drawable {
	var out []Drawable
	for _, o := range c {
		if d, ok := o.(Drawable); ok {
			out = append(out, d)
		}
	}
	return out
}

// DrawOrder returns a copy of c in paint order: Drawable entities first, top most then left
// most by minimum corner, followed by every other entity in its original order. Entities
// sharing a minimum corner keep their relative order.
func (c Collection) DrawOrder() Collection {
	var drawables, others Collection
	for _, o := range c {
		if _, ok := o.(Drawable); ok {
			drawables = append(drawables, o)
		} else {
			others = append(others, o)
		}
	}
	sort.Stable(byMin(drawables))
	return drawables.Append(others...)
}

// Scale rescales every Scalable entity and returns how many scalings were applied. Pointer
// entities are scaled exactly once even if they appear more than once. Any other Scalable is
// scaled once per occurrence.
func (c Collection) Scale(f ScaleFactor) int {
	seen := make(map[Scalable]struct{}, len(c))
	n := 0
	for _, o := range c {
		s, ok := o.(Scalable)
		if !ok {
			continue
		}
		if reflect.ValueOf(s).Kind() == reflect.Pointer {
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
		}
		s.Scale(f)
		n++
	}
	return n
}

// byMin sorts Drawable entities by minimum corner.
type byMin Collection

func (o byMin) Len() int      { return len(o) }
func (o byMin) Swap(i, j int) { o[i], o[j] = o[j], o[i] }

// Less returns in order top most, then left most.
func (o byMin) Less(i, j int) bool {
	lp := o[i].(Drawable).Min()
	rp := o[j].(Drawable).Min()
	if lp.Y != rp.Y {
		return lp.Y < rp.Y
	}
	return lp.X < rp.X
}
