// Package pathfind routes NPCs across a single map with A*.
package pathfind

import (
	"container/heap"
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/overworld/internal/positions"
	"github.com/samdwyer/overworld/internal/telemetry"
	"github.com/samdwyer/overworld/internal/world"
)

type node struct {
	coords    positions.Coordinate
	direction positions.Direction
	cost      int32
	estimate  int32
	seq       int
	index     int
}

// openSet is a min-heap ordered by estimated total cost, then by cost so
// far, then by insertion order so equal inputs give equal paths.
type openSet []*node

func (s openSet) Len() int { return len(s) }

func (s openSet) Less(i, j int) bool {
	if s[i].estimate != s[j].estimate {
		return s[i].estimate < s[j].estimate
	}
	if s[i].cost != s[j].cost {
		return s[i].cost < s[j].cost
	}
	return s[i].seq < s[j].seq
}

func (s openSet) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
	s[i].index = i
	s[j].index = j
}

func (s *openSet) Push(x any) {
	n := x.(*node)
	n.index = len(*s)
	*s = append(*s, n)
}

func (s *openSet) Pop() any {
	old := *s
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*s = old[:n-1]
	return item
}

type step struct {
	from      positions.Coordinate
	direction positions.Direction
}

// Find returns the shortest sequence of steps from from to dest on m.
// Every step lands in bounds, off blocker, on a walkable code; elevation is
// ignored. Tiles occupied by NPCs count as obstacles. The path's turn is
// dest's direction. ok is false when no route exists.
func Find(ctx context.Context, from positions.Position, dest positions.Destination, blocker positions.Coordinate, m *world.WorldMap) (path positions.Path, ok bool) {
	_, span := telemetry.Tracer("pathfind").Start(ctx, "overworld.pathfind")
	defer span.End()

	path, ok, expanded := search(from, dest, blocker, m)
	span.SetAttributes(
		attribute.String("path.map", m.ID.String()),
		attribute.Bool("path.found", ok),
		attribute.Int("path.length", path.Len()),
		attribute.Int("path.expanded", expanded),
	)
	return path, ok
}

func search(from positions.Position, dest positions.Destination, blocker positions.Coordinate, m *world.WorldMap) (positions.Path, bool, int) {
	goal := dest.Coords
	start := &node{
		coords:    from.Coords,
		direction: from.Direction,
		estimate:  from.Coords.Manhattan(goal),
	}

	open := &openSet{}
	heap.Push(open, start)
	best := map[positions.Coordinate]int32{start.coords: 0}
	came := map[positions.Coordinate]step{}
	closed := map[positions.Coordinate]struct{}{}
	seq := 1

	for open.Len() > 0 {
		current := heap.Pop(open).(*node)
		if _, done := closed[current.coords]; done {
			continue
		}
		closed[current.coords] = struct{}{}

		if current.coords == goal {
			return positions.Path{
				Queue: reconstruct(came, start.coords, goal),
				Turn:  dest.Direction,
			}, true, len(closed)
		}

		for _, d := range positions.Directions {
			next := current.coords.InDirection(d)
			if !passable(next, blocker, m) {
				continue
			}
			cost := current.cost + 1
			if known, seen := best[next]; seen && known <= cost {
				continue
			}
			best[next] = cost
			came[next] = step{from: current.coords, direction: d}
			heap.Push(open, &node{
				coords:    next,
				direction: d,
				cost:      cost,
				estimate:  cost + next.Manhattan(goal),
				seq:       seq,
			})
			seq++
		}
	}
	return positions.Path{}, false, len(closed)
}

func passable(c, blocker positions.Coordinate, m *world.WorldMap) bool {
	if c == blocker {
		return false
	}
	code, ok := m.LocalMovement(c)
	return ok && code.Walkable()
}

func reconstruct(came map[positions.Coordinate]step, start, goal positions.Coordinate) []positions.Direction {
	var reversed []positions.Direction
	for at := goal; at != start; {
		s := came[at]
		reversed = append(reversed, s.direction)
		at = s.from
	}
	queue := make([]positions.Direction, len(reversed))
	for i, d := range reversed {
		queue[len(reversed)-1-i] = d
	}
	return queue
}
