package clauses

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allAssignments enumerates the full cartesian product of the variable domain
func allAssignments() []Assignment {
	out := []Assignment{{}}
	for _, v := range Variables {
		var next []Assignment
		for _, partial := range out {
			for _, value := range domain[v].Values {
				a := partial.Clone()
				a[v] = value
				next = append(next, a)
			}
		}
		out = next
	}
	return out
}

func TestSelect_MandatoryAlwaysPresent(t *testing.T) {
	s := NewSelector(DefaultCatalog())
	for _, a := range allAssignments() {
		sel, err := s.Select(a, SelectOptions{})
		require.NoError(t, err)
		for _, id := range krRules.Mandatory {
			assert.Contains(t, sel.SelectedIDs, id, "assignment %v", a)
		}
	}
}

func TestSelect_SortedAndUnique(t *testing.T) {
	s := NewSelector(DefaultCatalog())
	for _, a := range allAssignments() {
		sel, err := s.Select(a, SelectOptions{})
		require.NoError(t, err)

		seen := map[string]bool{}
		for i, c := range sel.Clauses {
			assert.False(t, seen[c.ID], "duplicate %s for %v", c.ID, a)
			seen[c.ID] = true
			if i > 0 {
				assert.LessOrEqual(t, sel.Clauses[i-1].SortOrder(), c.SortOrder())
			}
		}
		assert.Empty(t, sel.Warnings)
	}
}

func TestSelect_SelectedClausesSatisfyTheirGates(t *testing.T) {
	s := NewSelector(DefaultCatalog())
	for _, a := range allAssignments() {
		sel, err := s.Select(a, SelectOptions{})
		require.NoError(t, err)
		for _, c := range sel.Clauses {
			assert.True(t, c.Matches(a), "clause %s selected for %v", c.ID, a)
		}
	}
}

func TestSelect_ExclusionWins(t *testing.T) {
	rules := Rules{
		Mandatory: []string{"a", "b"},
		PerVariable: map[Variable]map[string][]string{
			Location: {LocationRemote: {"c"}},
		},
		Conditional: []ConditionalRule{{
			Name:       "adds-d",
			Conditions: []Condition{{Variable: Location, Values: []string{LocationRemote}}},
			Operator:   OperatorOr,
			ClauseIDs:  []string{"d"},
		}},
		Exclusion: []ExclusionRule{{
			Name:       "drops-all",
			Conditions: []Condition{{Variable: Location, Values: []string{LocationRemote}}},
			ClauseIDs:  []string{"a", "c", "d"},
		}},
	}
	catalog, err := NewCatalog(rules,
		Clause{ID: "a", Order: 1},
		Clause{ID: "b", Order: 2},
		Clause{ID: "c", Order: 3},
		Clause{ID: "d", Order: 4},
	)
	require.NoError(t, err)

	sel, err := NewSelector(catalog).Select(Assignment{Location: LocationRemote}, SelectOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, sel.SelectedIDs)

	sel, err = NewSelector(catalog).Select(Assignment{Location: LocationOnsite}, SelectOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, sel.SelectedIDs)
}

func TestSelect_ExclusionRequiresEveryCondition(t *testing.T) {
	s := NewSelector(DefaultCatalog())

	sel, err := s.Select(Assignment{
		ExecutionCycle: CycleSingle,
		ServiceType:    TypeManufacturing,
		Complexity:     ComplexityComplex,
		ProjectScale:   ScaleSmall,
		Location:       LocationHybrid,
		Equipment:      EquipmentIntangible,
	}, SelectOptions{})
	require.NoError(t, err)
	// small_simple_light needs complexity=simple too
	assert.Contains(t, sel.SelectedIDs, "milestone_review")
	assert.Contains(t, sel.SelectedIDs, "delay_penalty")
}

func TestSelect_LogoDesignScenario(t *testing.T) {
	s := NewSelector(DefaultCatalog())
	sel, err := s.Select(Assignment{
		ExecutionCycle: CycleSingle,
		ServiceType:    TypeManufacturing,
		Complexity:     ComplexitySimple,
		ProjectScale:   ScaleSmall,
		Location:       LocationRemote,
		Equipment:      EquipmentIntangible,
	}, SelectOptions{})
	require.NoError(t, err)

	want := []string{
		"contract_purpose", "parties", "payment_basic", "effective_date", "governing_law",
		"manufacturing_deliverable", "simple_workflow", "remote_work", "small_scale_payment",
	}
	for _, id := range want {
		assert.Contains(t, sel.SelectedIDs, id)
	}
	assert.NotContains(t, sel.SelectedIDs, "onsite_work")
	assert.NotContains(t, sel.SelectedIDs, "milestone_review")
	assert.Contains(t, sel.SelectedIDs, "data_security")
}

func TestSelect_UnknownValuesWarnButProceed(t *testing.T) {
	s := NewSelector(DefaultCatalog())
	sel, err := s.Select(Assignment{
		ExecutionCycle: "yearly",
		ServiceType:    TypeService,
		Location:       LocationRemote,
	}, SelectOptions{})
	require.NoError(t, err)

	assert.Contains(t, sel.SelectedIDs, "service_scope")
	assert.Contains(t, sel.SelectedIDs, "remote_work")
	assert.NotContains(t, sel.SelectedIDs, "single_delivery")
	assert.Contains(t, sel.Warnings, `invalid value "yearly" for variable execution_cycle`)
	assert.Contains(t, sel.Warnings, "missing variable complexity")
}

func TestSelect_UnknownClauseIDsAreSkipped(t *testing.T) {
	catalog, err := NewCatalog(Rules{Mandatory: []string{"a", "ghost"}}, Clause{ID: "a"})
	require.NoError(t, err)

	sel, err := NewSelector(catalog).Select(DefaultAssignment(), SelectOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, sel.SelectedIDs)
	assert.Equal(t, []string{"mandatory references unknown clause ghost"}, catalog.Check())
}

func TestSelect_MissingOrderSortsLast(t *testing.T) {
	catalog, err := NewCatalog(Rules{Mandatory: []string{"late", "early", "tie"}},
		Clause{ID: "late"},
		Clause{ID: "early", Order: 5},
		Clause{ID: "tie", Order: DefaultOrder},
	)
	require.NoError(t, err)

	sel, err := NewSelector(catalog).Select(Assignment{}, SelectOptions{})
	require.NoError(t, err)
	// late and tie share 999; catalog insertion breaks the tie
	assert.Equal(t, []string{"early", "late", "tie"}, sel.SelectedIDs)
}

func TestSelect_Options(t *testing.T) {
	s := NewSelector(DefaultCatalog())
	a := Assignment{
		ExecutionCycle: CycleContinuous,
		ServiceType:    TypeComplex,
		Complexity:     ComplexityComplex,
		ProjectScale:   ScaleLarge,
		Location:       LocationOnsite,
		Equipment:      EquipmentLarge,
	}

	full, err := s.Select(a, SelectOptions{})
	require.NoError(t, err)

	t.Run("essential only", func(t *testing.T) {
		sel, err := s.Select(a, SelectOptions{EssentialOnly: true})
		require.NoError(t, err)
		require.NotEmpty(t, sel.Clauses)
		for _, c := range sel.Clauses {
			assert.True(t, c.Essential, c.ID)
		}
	})

	t.Run("exclude then include", func(t *testing.T) {
		sel, err := s.Select(a, SelectOptions{
			ExcludeIDs: []string{"insurance", "warranty"},
			IncludeIDs: []string{"warranty", "remote_work", "parties", "ghost"},
		})
		require.NoError(t, err)
		assert.NotContains(t, sel.SelectedIDs, "insurance")
		assert.Contains(t, sel.SelectedIDs, "warranty")
		assert.Contains(t, sel.SelectedIDs, "remote_work")
		assert.NotContains(t, sel.SelectedIDs, "ghost")
		assert.Len(t, sel.SelectedIDs, len(full.SelectedIDs))
		assert.True(t, sort.SliceIsSorted(sel.Clauses, func(i, j int) bool {
			return sel.Clauses[i].SortOrder() < sel.Clauses[j].SortOrder()
		}))
	})

	t.Run("max clauses keeps essentials", func(t *testing.T) {
		var essential int
		for _, c := range full.Clauses {
			if c.Essential {
				essential++
			}
		}
		sel, err := s.Select(a, SelectOptions{MaxClauses: essential + 2})
		require.NoError(t, err)
		assert.Len(t, sel.Clauses, essential+2)

		var optional []string
		for _, c := range full.Clauses {
			if !c.Essential {
				optional = append(optional, c.ID)
			}
		}
		assert.Contains(t, sel.SelectedIDs, optional[0])
		assert.Contains(t, sel.SelectedIDs, optional[1])
		assert.NotContains(t, sel.SelectedIDs, optional[2])
	})

	t.Run("max below essential count", func(t *testing.T) {
		sel, err := s.Select(a, SelectOptions{MaxClauses: 1})
		require.NoError(t, err)
		for _, c := range sel.Clauses {
			assert.True(t, c.Essential)
		}
	})
}

func TestSelectSafe_FallsBackToFailsafe(t *testing.T) {
	var s *Selector
	sel, err := s.SelectSafe(DefaultAssignment(), SelectOptions{})
	require.ErrorIs(t, err, ErrNoCatalog)
	assert.Equal(t, []string{"contract_purpose", "payment_basic", "completion_basic"}, sel.SelectedIDs)
}

func TestNewCatalog_RejectsDuplicates(t *testing.T) {
	_, err := NewCatalog(Rules{}, Clause{ID: "payment_detailed"}, Clause{ID: "payment_detailed"})
	assert.EqualError(t, err, "duplicate clause id: payment_detailed")
}

func TestDefaultCatalog_ReferencesResolve(t *testing.T) {
	catalog := DefaultCatalog()
	assert.Empty(t, catalog.Check())

	got := catalog.ForVariable(ProjectScale, ScaleLarge)
	if diff := cmp.Diff([]string{"payment_detailed", "payment_guarantee", "performance_bond"}, got); diff != "" {
		t.Errorf("ForVariable mismatch (-want +got):\n%s", diff)
	}
}
