package clauses

import (
	"errors"
	"fmt"
)

// ErrNoCatalog is returned when a selector has no catalog to read from
var ErrNoCatalog = errors.New("clause catalog not set")

// SelectOptions post-process the selected set, in field order
type SelectOptions struct {
	EssentialOnly bool     `json:"essential_only,omitempty"`
	ExcludeIDs    []string `json:"exclude_ids,omitempty"`
	IncludeIDs    []string `json:"include_ids,omitempty"`
	MaxClauses    int      `json:"max_clauses,omitempty"`
}

// Selection is the ordered, deduplicated clause set for one assignment
type Selection struct {
	Clauses     []Clause `json:"clauses"`
	SelectedIDs []string `json:"selected_ids"`
	Warnings    []string `json:"warnings,omitempty"`
}

// Selector applies a catalog's rule table to variable assignments
type Selector struct {
	catalog *Catalog
}

// NewSelector creates a selector over catalog
func NewSelector(catalog *Catalog) *Selector {
	return &Selector{catalog: catalog}
}

// Catalog returns the catalog the selector reads
func (s *Selector) Catalog() *Catalog {
	return s.catalog
}

// idSet is an insertion-ordered set of clause ids
type idSet struct {
	order []string
	seen  map[string]bool
}

func newIDSet() *idSet {
	return &idSet{seen: make(map[string]bool)}
}

func (s *idSet) add(ids ...string) {
	for _, id := range ids {
		if s.seen[id] {
			continue
		}
		s.seen[id] = true
		s.order = append(s.order, id)
	}
}

func (s *idSet) remove(ids ...string) {
	for _, id := range ids {
		delete(s.seen, id)
	}
}

func (s *idSet) list() []string {
	out := make([]string, 0, len(s.seen))
	for _, id := range s.order {
		if s.seen[id] {
			out = append(out, id)
		}
	}
	return out
}

// Select computes the clause set for assignment.
// Invalid or unknown values only produce warnings.
func (s *Selector) Select(assignment Assignment, opts SelectOptions) (sel *Selection, err error) {
	defer func() {
		if r := recover(); r != nil {
			sel = nil
			err = fmt.Errorf("clause selection panicked: %v", r)
		}
	}()

	if s == nil || s.catalog == nil {
		return nil, ErrNoCatalog
	}

	rules := s.catalog.rules
	working := newIDSet()

	// 1. mandatory
	working.add(rules.Mandatory...)

	// 2. per-variable
	for _, v := range Variables {
		value, ok := assignment[v]
		if !ok {
			continue
		}
		working.add(rules.PerVariable[v][value]...)
	}

	// 3. conditional
	for _, rule := range rules.Conditional {
		if rule.Matches(assignment) {
			working.add(rule.ClauseIDs...)
		}
	}

	// 4. exclusion, strictly after every additive source
	for _, rule := range rules.Exclusion {
		if rule.Matches(assignment) {
			working.remove(rule.ClauseIDs...)
		}
	}

	// 5. resolve, drop unknown ids, sort
	clauses := s.resolve(working.list())
	clauses = s.applyOptions(clauses, opts)

	return &Selection{
		Clauses:     clauses,
		SelectedIDs: clauseIDs(clauses),
		Warnings:    ValidateAssignment(assignment),
	}, nil
}

// SelectSafe is Select with the failsafe set substituted on failure
func (s *Selector) SelectSafe(assignment Assignment, opts SelectOptions) (*Selection, error) {
	sel, err := s.Select(assignment, opts)
	if err != nil {
		failsafe := FailsafeClauses()
		return &Selection{
			Clauses:     failsafe,
			SelectedIDs: clauseIDs(failsafe),
			Warnings:    []string{err.Error()},
		}, err
	}
	return sel, nil
}

func (s *Selector) resolve(ids []string) []Clause {
	clauses := make([]Clause, 0, len(ids))
	for _, id := range ids {
		if clause, ok := s.catalog.Get(id); ok {
			clauses = append(clauses, clause)
		}
	}
	s.catalog.sortClauses(clauses)
	return clauses
}

func (s *Selector) applyOptions(clauses []Clause, opts SelectOptions) []Clause {
	if opts.EssentialOnly {
		kept := clauses[:0:0]
		for _, c := range clauses {
			if c.Essential {
				kept = append(kept, c)
			}
		}
		clauses = kept
	}

	if len(opts.ExcludeIDs) > 0 {
		exclude := make(map[string]bool, len(opts.ExcludeIDs))
		for _, id := range opts.ExcludeIDs {
			exclude[id] = true
		}
		kept := clauses[:0:0]
		for _, c := range clauses {
			if !exclude[c.ID] {
				kept = append(kept, c)
			}
		}
		clauses = kept
	}

	if len(opts.IncludeIDs) > 0 {
		present := make(map[string]bool, len(clauses))
		for _, c := range clauses {
			present[c.ID] = true
		}
		for _, id := range opts.IncludeIDs {
			if present[id] {
				continue
			}
			if clause, ok := s.catalog.Get(id); ok {
				clauses = append(clauses, clause)
				present[id] = true
			}
		}
		s.catalog.sortClauses(clauses)
	}

	if opts.MaxClauses > 0 && len(clauses) > opts.MaxClauses {
		var essential, optional []Clause
		for _, c := range clauses {
			if c.Essential {
				essential = append(essential, c)
			} else {
				optional = append(optional, c)
			}
		}
		budget := opts.MaxClauses - len(essential)
		if budget < 0 {
			budget = 0
		}
		if budget < len(optional) {
			optional = optional[:budget]
		}
		clauses = append(essential, optional...)
		s.catalog.sortClauses(clauses)
	}

	return clauses
}

func clauseIDs(clauses []Clause) []string {
	ids := make([]string, len(clauses))
	for i, c := range clauses {
		ids[i] = c.ID
	}
	return ids
}

// FailsafeClauses is the minimal set used when selection fails
func FailsafeClauses() []Clause {
	return []Clause{
		{
			ID:        "contract_purpose",
			Title:     "계약의 목적",
			Content:   "본 계약은 갑이 을에게 위탁하는 업무의 수행에 관하여 필요한 사항을 정함을 목적으로 한다.",
			Essential: true,
			Order:     1,
		},
		{
			ID:        "payment_basic",
			Title:     "계약 금액 및 지급",
			Content:   "갑은 을이 업무를 완료한 후 당사자가 합의한 계약 금액을 을에게 지급한다.",
			Essential: true,
			Order:     30,
		},
		{
			ID:        "completion_basic",
			Title:     "업무의 완료",
			Content:   "을은 합의된 기한 내에 업무를 완료하고 그 결과를 갑에게 통지하며, 갑은 이를 확인한다.",
			Essential: true,
			Order:     40,
		},
	}
}
