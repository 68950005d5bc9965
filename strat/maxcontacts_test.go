package strat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stratigraph/contact"
	"stratigraph/geology"
	"stratigraph/strat"
)

func TestMaxContacts_ChainStaysAdjacent(t *testing.T) {
	units := table(t, "A", "B", "C")
	contacts := contact.Table{
		contactRow("A", "B", 10),
		contactRow("B", "C", 5),
	}

	order, err := strat.NewMaxContacts(contacts, quiet()).Sort(units)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"A", "B", "C"}, order)
	assert.Equal(t, 1, absInt(position(order, "A")-position(order, "B")))
	assert.Equal(t, 1, absInt(position(order, "B")-position(order, "C")))
}

func TestMaxContacts_ContactlessUnitsAppendedByAge(t *testing.T) {
	units := agedTable(t,
		geology.Unit{Name: "A", MinAge: geology.AgeUnknown, MaxAge: geology.AgeUnknown},
		geology.Unit{Name: "B", MinAge: geology.AgeUnknown, MaxAge: geology.AgeUnknown},
		geology.Unit{Name: "drifter_old", MinAge: 80, MaxAge: 100},
		geology.Unit{Name: "drifter_young", MinAge: 0, MaxAge: 10},
		geology.Unit{Name: "undated", MinAge: geology.AgeUnknown, MaxAge: geology.AgeUnknown},
	)
	contacts := contact.Table{contactRow("A", "B", 3)}

	order, err := strat.NewMaxContacts(contacts, quiet()).Sort(units)
	require.NoError(t, err)
	require.Len(t, order, 5)
	// The contact-bearing pair leads; leftovers trail at the old end,
	// age-ascending with undated units last.
	assert.ElementsMatch(t, []string{"A", "B"}, order[:2])
	assert.Equal(t, []string{"drifter_young", "drifter_old", "undated"}, order[2:])
}

func TestMaxContacts_FullPermutationOnDenseGraph(t *testing.T) {
	units := table(t, "A", "B", "C", "D")
	contacts := contact.Table{
		contactRow("A", "B", 9),
		contactRow("B", "C", 8),
		contactRow("C", "D", 7),
		contactRow("A", "C", 1),
		contactRow("B", "D", 1),
	}

	order, err := strat.NewMaxContacts(contacts, quiet()).Sort(units)
	require.NoError(t, err)
	assert.ElementsMatch(t, units.Names(), order)
	// The long contacts form the cheap chain A-B-C-D; the path keeps them
	// adjacent in some direction.
	assert.Equal(t, 1, absInt(position(order, "A")-position(order, "B")))
	assert.Equal(t, 1, absInt(position(order, "B")-position(order, "C")))
	assert.Equal(t, 1, absInt(position(order, "C")-position(order, "D")))
}

func TestMaxContacts_MissingContacts(t *testing.T) {
	_, err := strat.NewMaxContacts(nil, quiet()).Sort(table(t, "A"))
	require.ErrorIs(t, err, strat.ErrMissingInput)
	assert.Contains(t, err.Error(), "contact")
}
