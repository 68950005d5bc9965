package geom

// SharedBoundary extracts the portion of boundary b that coincides with
// boundary a at the given tolerance: a segment of b is kept when both of
// its endpoints and its midpoint lie within tol of some segment of a.
// Kept segments are chained into maximal polylines before returning.
//
// This is the contact between two dissolved, interior-disjoint unit
// polygons: the product a general overlay engine reaches via
// buffer-intersect-boundary round trips.
//
// Returns ErrBadTolerance for tol <= 0.
// Complexity: O(s_a · s_b) over segment counts.
func SharedBoundary(a, b MultiLine, tol float64) (MultiLine, error) {
	if tol <= 0 {
		return nil, ErrBadTolerance
	}
	var kept MultiLine
	for _, l := range b {
		for i := 1; i < len(l); i++ {
			p, q := l[i-1], l[i]
			mid := Point{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2}
			if distanceToMultiLine(p, a) <= tol &&
				distanceToMultiLine(q, a) <= tol &&
				distanceToMultiLine(mid, a) <= tol {
				kept = append(kept, Line{p, q})
			}
		}
	}
	if kept.IsEmpty() {
		return nil, nil
	}

	return MergeLines(kept, tol), nil
}

// TrimNear removes every segment of boundary whose midpoint lies within
// radius of any of the trim lines, splitting polylines at the removed
// segments. Used to subtract fault buffer zones from unit boundaries so
// fault traces never register as unit-unit contacts.
//
// Returns ErrBadTolerance for radius <= 0.
// Complexity: O(s_b · s_t) over segment counts.
func TrimNear(boundary MultiLine, trim MultiLine, radius float64) (MultiLine, error) {
	if radius <= 0 {
		return nil, ErrBadTolerance
	}
	if trim.IsEmpty() {
		return boundary, nil
	}
	var out MultiLine
	for _, l := range boundary {
		var run Line
		flush := func() {
			if len(run) >= 2 {
				out = append(out, run)
			}
			run = nil
		}
		for i := 1; i < len(l); i++ {
			p, q := l[i-1], l[i]
			mid := Point{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2}
			if distanceToMultiLine(mid, trim) <= radius {
				flush()

				continue
			}
			if len(run) == 0 {
				run = append(run, p)
			}
			run = append(run, q)
		}
		flush()
	}

	return out, nil
}

// MergeLines chains the polylines of ml into maximal polylines, joining
// ends that lie within snapTol of each other. Joining is greedy and
// deterministic: lines are consumed in input order, and each chain is
// extended at both ends until no line fits. Multi-part lines that cannot
// be joined are returned as-is.
// Complexity: O(n²) over line count.
func MergeLines(ml MultiLine, snapTol float64) MultiLine {
	pool := make([]Line, 0, len(ml))
	for _, l := range ml {
		if len(l) >= 2 {
			pool = append(pool, l)
		}
	}
	used := make([]bool, len(pool))
	var out MultiLine

	for i := range pool {
		if used[i] {
			continue
		}
		used[i] = true
		chain := append(Line(nil), pool[i]...)

		for {
			extended := false
			for j := range pool {
				if used[j] {
					continue
				}
				cand := pool[j]
				head, tail := chain[0], chain[len(chain)-1]
				switch {
				case tail.Dist(cand[0]) <= snapTol:
					chain = append(chain, cand[1:]...)
				case tail.Dist(cand[len(cand)-1]) <= snapTol:
					chain = append(chain, reverse(cand)[1:]...)
				case head.Dist(cand[len(cand)-1]) <= snapTol:
					chain = append(cand[:len(cand)-1:len(cand)-1], chain...)
				case head.Dist(cand[0]) <= snapTol:
					rev := reverse(cand)
					chain = append(rev[:len(rev)-1:len(rev)-1], chain...)
				default:
					continue
				}
				used[j] = true
				extended = true
			}
			if !extended {
				break
			}
		}
		out = append(out, chain)
	}

	return out
}

// reverse returns a reversed copy of l.
func reverse(l Line) Line {
	out := make(Line, len(l))
	for i, p := range l {
		out[len(l)-1-i] = p
	}

	return out
}
