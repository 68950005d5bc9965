package strat

import (
	"log/slog"
	"math"

	"stratigraph/contact"
	"stratigraph/geology"
	"stratigraph/geom"
	"stratigraph/raster"
)

// DefaultRayLength is the projection distance, in map units, cast from
// each orientation observation along its dip direction.
const DefaultRayLength = 1000.0

// observationTie is the net-preference magnitude at or below which a unit
// pair is treated as undecided and linked in both directions.
const observationTie = 1

// ObservationProjection infers the order from structural field evidence.
// Each orientation observation casts a ray down its dip direction; the
// first unit boundary the ray crosses, the DTM elevations at both ends and
// the measured dip angle decide whether the crossed unit structurally
// covers the observation site (younger) or underlies it (older). The
// accumulated younger→older frequencies become a directed preference
// graph, resolved as an approximate Hamiltonian path exactly as
// MaxContacts resolves its contact graph.
//
// Observations whose containing unit is not unique are skipped with a log
// entry. Units the preference graph leaves disconnected are patched in
// from raw contact adjacency at maximum penalty weight, so sparse
// orientation coverage degrades the result instead of failing it.
type ObservationProjection struct {
	contacts  contact.Table
	obs       []geology.Orientation
	dtm       *raster.Grid
	rayLength float64
	log       *slog.Logger
}

// ObservationOption configures the sorter.
type ObservationOption func(*ObservationProjection)

// WithRayLength overrides the projection distance.
func WithRayLength(length float64) ObservationOption {
	return func(s *ObservationProjection) {
		if length > 0 {
			s.rayLength = length
		}
	}
}

// NewObservationProjection builds the sorter. A nil logger selects
// slog.Default().
func NewObservationProjection(
	contacts contact.Table,
	obs []geology.Orientation,
	dtm *raster.Grid,
	log *slog.Logger,
	opts ...ObservationOption,
) *ObservationProjection {
	s := &ObservationProjection{
		contacts:  contacts,
		obs:       obs,
		dtm:       dtm,
		rayLength: DefaultRayLength,
		log:       logOrDefault(log),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Name implements Sorter.
func (s *ObservationProjection) Name() string { return "observation_projection" }

// Requires implements Sorter.
func (s *ObservationProjection) Requires() []Input {
	return []Input{NeedContacts, NeedOrientations, NeedDTM}
}

// Sort implements Sorter. Complexity: O(o·v) ray casting over o
// observations and v boundary vertices, plus O(n²) path resolution.
func (s *ObservationProjection) Sort(units *geology.UnitTable) ([]string, error) {
	if err := ensureUnits(units); err != nil {
		return nil, err
	}
	if len(s.contacts) == 0 {
		return nil, missing(NeedContacts)
	}
	if len(s.obs) == 0 {
		return nil, missing(NeedOrientations)
	}
	if s.dtm == nil {
		return nil, missing(NeedDTM)
	}

	n := units.Len()
	freq := s.accumulate(units)

	// Net-preference directed edges. Stronger preference → lower weight,
	// so preferred transitions are the cheap path edges.
	maxNet := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if net := abs(freq[i*n+j] - freq[j*n+i]); net > maxNet {
				maxNet = net
			}
		}
	}
	type edge struct{ w float64 }
	pref := make(map[[2]int]edge)
	connected := make([]bool, n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			total := freq[i*n+j] + freq[j*n+i]
			if total == 0 {
				continue
			}
			net := freq[i*n+j] - freq[j*n+i]
			w := float64(maxNet + 1 - abs(net))
			switch {
			case net > observationTie:
				pref[[2]int{i, j}] = edge{w: w}
			case net < -observationTie:
				pref[[2]int{j, i}] = edge{w: w}
			default:
				// Near-tie: keep both directions on the table.
				pref[[2]int{i, j}] = edge{w: w}
				pref[[2]int{j, i}] = edge{w: w}
			}
			connected[i], connected[j] = true, true
		}
	}

	// Patch disconnected units in from raw contact adjacency at maximum
	// penalty, so sparse orientation coverage never loses a unit that has
	// mapped contacts.
	id := make(map[string]int, n)
	for i := 0; i < n; i++ {
		id[units.At(i).Name] = i
	}
	penalty := float64(maxNet + 2)
	patched := 0
	for _, r := range s.contacts {
		u, okU := id[r.UnitName1]
		v, okV := id[r.UnitName2]
		if !okU || !okV || u == v {
			continue
		}
		if connected[u] && connected[v] {
			continue
		}
		pref[[2]int{u, v}] = edge{w: penalty}
		pref[[2]int{v, u}] = edge{w: penalty}
		connected[u], connected[v] = true, true
		patched++
	}
	if patched > 0 {
		s.log.Info("patched disconnected units into preference graph from contacts",
			"edges", patched)
	}

	// Units with neither evidence nor contacts join as age-sorted leftovers.
	var names []string
	var leftovers []string
	remap := make([]int, n)
	for i := 0; i < n; i++ {
		if connected[i] {
			remap[i] = len(names)
			names = append(names, units.At(i).Name)
		} else {
			remap[i] = -1
			leftovers = append(leftovers, units.At(i).Name)
		}
	}
	if len(names) == 0 {
		return appendByAge(nil, leftovers, units), nil
	}

	// Symmetric weight matrix over the connected units for the path solver.
	m := len(names)
	w := make([]float64, m*m)
	missingEdge := penalty + 1
	for i := range w {
		w[i] = missingEdge
	}
	for key, e := range pref {
		u, v := remap[key[0]], remap[key[1]]
		if u < 0 || v < 0 {
			continue
		}
		if e.w < w[u*m+v] {
			w[u*m+v], w[v*m+u] = e.w, e.w
		}
	}

	tour := twoOptPath(w, m, nearestNeighbourPath(w, m, 0))
	chain := directedChain(tour)
	pre := completePreorder(chainPreorder(chain, tour[0], m), m)
	reverseInts(pre)

	// Orient the path by the accumulated evidence: consecutive pairs
	// should run younger→older front to back.
	score := 0
	for k := 1; k < len(pre); k++ {
		a, b := originalID(remap, pre[k-1]), originalID(remap, pre[k])
		score += freq[a*n+b] - freq[b*n+a]
	}
	if score < 0 {
		reverseInts(pre)
	}

	order := make([]string, 0, n)
	for _, u := range pre {
		order = append(order, names[u])
	}

	return appendByAge(order, leftovers, units), nil
}

// accumulate builds the younger→older frequency matrix from all usable
// observations. freq[i*n+j] counts evidence that unit i is younger than
// unit j.
func (s *ObservationProjection) accumulate(units *geology.UnitTable) []int {
	n := units.Len()
	freq := make([]int, n*n)
	skipped := 0
	for _, o := range s.obs {
		pt := o.Point()

		// Containing unit must be unique.
		host := -1
		ambiguous := false
		for i := 0; i < n; i++ {
			if units.At(i).Geometry.Contains(pt) {
				if host >= 0 {
					ambiguous = true

					break
				}
				host = i
			}
		}
		if host < 0 || ambiguous {
			skipped++

			continue
		}

		// Nearest boundary crossing into another unit along the dip ray.
		ray := geom.Raycast(pt, o.DipDirection, s.rayLength)
		crossed, crossPt, dist := -1, geom.Point{}, math.Inf(1)
		for i := 0; i < n; i++ {
			if i == host {
				continue
			}
			hits := units.At(i).Geometry.BoundaryCrossings(ray)
			if len(hits) == 0 {
				continue
			}
			if d := pt.Dist(hits[0]); d < dist {
				crossed, crossPt, dist = i, hits[0], d
			}
		}
		if crossed < 0 {
			continue
		}

		// Project the dip plane to the crossing point: above the actual
		// surface there means the crossed unit covers the observation site.
		z0 := s.dtm.Height(pt.X, pt.Y)
		z1 := s.dtm.Height(crossPt.X, crossPt.Y)
		zProj := z0 - dist*math.Tan(o.Dip*math.Pi/180)
		if zProj > z1 {
			freq[crossed*n+host]++ // crossed unit is the younger cover
		} else {
			freq[host*n+crossed]++ // crossed unit dips away underneath
		}
	}
	if skipped > 0 {
		s.log.Info("skipped orientation observations with ambiguous containing unit",
			"count", skipped)
	}

	return freq
}

// originalID maps a remapped (connected-subset) id back to the unit-table
// id.
func originalID(remap []int, sub int) int {
	for orig, m := range remap {
		if m == sub {
			return orig
		}
	}

	return -1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
