package colour

import (
	"fmt"
	"math/rand"

	"stratigraph/geology"
)

// Assign fills in a pseudo-random hex colour for every unit that has none,
// drawn from a generator seeded with seed. One draw happens per table
// position whether or not the unit needs a colour, so a unit's colour
// depends only on its position and the seed, never on how many other units
// arrived pre-coloured.
func Assign(units *geology.UnitTable, seed int64) {
	if units == nil {
		return
	}
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < units.Len(); i++ {
		c := hex(rng)
		u := units.At(i)
		if u.Colour != "" {
			continue
		}
		_ = units.SetColour(u.Name, c)
	}
}

// hex draws one #RRGGBB colour.
func hex(rng *rand.Rand) string {
	return fmt.Sprintf("#%02X%02X%02X", rng.Intn(256), rng.Intn(256), rng.Intn(256))
}

// Counter hands out sequential integer identifiers. The zero value starts
// at zero.
type Counter struct {
	next int
}

// NewCounter returns a counter whose first NextID call yields start.
func NewCounter(start int) *Counter { return &Counter{next: start} }

// NextID returns the current identifier and advances the counter.
func (c *Counter) NextID() int {
	id := c.next
	c.next++

	return id
}
