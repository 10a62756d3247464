package geometry

// Assemble chains segments that share endpoints into maximal components.
//
// Segments are consumed from a pool in stable input order: the first
// remaining segment seeds a new component, then the pool is rescanned for any
// segment whose start or end exactly equals either end of the growing
// component, appending it in the correct orientation (reversed when it
// connects backwards). A component stops growing when no remaining segment
// touches it. Endpoint equality is exact, matching how the boundary source
// encodes shared nodes; no epsilon is applied.
//
// The scan is O(remaining) per extension, O(n²) overall. Fine for the
// hundreds of ways a borough boundary carries, too slow for tens of
// thousands.
//
// Given the same input order the component grouping is deterministic; the
// emitted vertex order within a component depends on extension order and is
// not a stability guarantee.
func Assemble(segments []Segment) []Component {
	pool := make([]Segment, len(segments))
	copy(pool, segments)

	var components []Component
	for len(pool) > 0 {
		chain := Component(pool[0].Coords())
		pool = pool[1:]

		for {
			joined := false
			for i := range pool {
				next, ok := join(chain, pool[i])
				if !ok {
					continue
				}
				chain = next
				pool = append(pool[:i], pool[i+1:]...)
				joined = true
				break
			}
			if !joined {
				break
			}
		}
		components = append(components, chain)
	}
	return components
}

// join attaches seg to either end of the chain if an endpoint matches,
// dropping the shared coordinate so it is not doubled.
func join(chain Component, seg Segment) (Component, bool) {
	head := chain[0]
	tail := chain[len(chain)-1]
	coords := seg.Coords()

	switch {
	case seg.Start() == tail:
		return append(chain, coords[1:]...), true
	case seg.End() == tail:
		reverse(coords)
		return append(chain, coords[1:]...), true
	case seg.End() == head:
		return append(Component(coords), chain[1:]...), true
	case seg.Start() == head:
		reverse(coords)
		return append(Component(coords), chain[1:]...), true
	}
	return chain, false
}

// SelectCanonical picks the representative boundary among assembled
// components and guarantees it is a closed ring.
//
// Components with fewer than 3 distinct vertices are discarded; among the
// survivors the one with the greatest vertex count wins (first wins on a
// tie). This is a heuristic: a borough's outlying islands form smaller
// components and are silently dropped. If the selected component is open it
// is closed by appending its first coordinate.
//
// Returns ErrNoBoundary when nothing survives filtering.
func SelectCanonical(components []Component) (Ring, error) {
	var best Component
	for _, c := range components {
		if c.DistinctVertices() < 3 {
			continue
		}
		if len(c) > len(best) {
			best = c
		}
	}
	if best == nil {
		return nil, ErrNoBoundary
	}

	ring := make(Ring, len(best), len(best)+1)
	copy(ring, best)
	if ring[0] != ring[len(ring)-1] {
		ring = append(ring, ring[0])
	}
	return ring, nil
}

func reverse(coords []Coordinate) {
	for i, j := 0, len(coords)-1; i < j; i, j = i+1, j-1 {
		coords[i], coords[j] = coords[j], coords[i]
	}
}
