package clauses

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultOrder is used for clauses that declare no order
const DefaultOrder = 999

// Operator combines the conditions of a rule
type Operator string

const (
	OperatorAnd Operator = "AND"
	OperatorOr  Operator = "OR"
)

// Condition matches when the assignment's value for Variable is one of Values
type Condition struct {
	Variable Variable `json:"variable" yaml:"variable"`
	Values   []string `json:"values" yaml:"values"`
}

// Matches reports whether the condition holds for the assignment
func (c Condition) Matches(a Assignment) bool {
	value, ok := a[c.Variable]
	if !ok {
		return false
	}
	for _, allowed := range c.Values {
		if allowed == value {
			return true
		}
	}
	return false
}

// evaluate applies op across conditions. An empty list never matches.
func evaluate(op Operator, conditions []Condition, a Assignment) bool {
	if len(conditions) == 0 {
		return false
	}
	if op == OperatorOr {
		for _, c := range conditions {
			if c.Matches(a) {
				return true
			}
		}
		return false
	}
	for _, c := range conditions {
		if !c.Matches(a) {
			return false
		}
	}
	return true
}

// Clause is a titled, templated paragraph of contract text
type Clause struct {
	ID        string `json:"id" yaml:"id"`
	Title     string `json:"title" yaml:"title"`
	Content   string `json:"content" yaml:"content"`
	Essential bool   `json:"essential" yaml:"essential"`
	Order     int    `json:"order,omitempty" yaml:"order,omitempty"`

	// Variables is an any-match gate of "variable:value" strings
	Variables []string `json:"variables,omitempty" yaml:"variables,omitempty"`
	// Conditions gate the clause with Operator (AND when unset)
	Conditions []Condition `json:"conditions,omitempty" yaml:"conditions,omitempty"`
	Operator   Operator    `json:"operator,omitempty" yaml:"operator,omitempty"`
}

// SortOrder returns Order, or DefaultOrder when unset
func (c Clause) SortOrder() int {
	if c.Order == 0 {
		return DefaultOrder
	}
	return c.Order
}

// Matches evaluates the clause's own gate. Ungated clauses always match.
func (c Clause) Matches(a Assignment) bool {
	if len(c.Variables) > 0 {
		for _, gate := range c.Variables {
			name, value, ok := strings.Cut(gate, ":")
			if ok && a[Variable(name)] == value {
				return true
			}
		}
		return false
	}
	if len(c.Conditions) > 0 {
		op := c.Operator
		if op == "" {
			op = OperatorAnd
		}
		return evaluate(op, c.Conditions, a)
	}
	return true
}

// ConditionalRule adds ClauseIDs when its predicate holds
type ConditionalRule struct {
	Name       string      `json:"name" yaml:"name"`
	Conditions []Condition `json:"conditions" yaml:"conditions"`
	Operator   Operator    `json:"operator" yaml:"operator"`
	ClauseIDs  []string    `json:"clause_ids" yaml:"clause_ids"`
}

// Matches evaluates the rule's predicate
func (r ConditionalRule) Matches(a Assignment) bool {
	op := r.Operator
	if op == "" {
		op = OperatorAnd
	}
	return evaluate(op, r.Conditions, a)
}

// ExclusionRule removes ClauseIDs when every condition holds
type ExclusionRule struct {
	Name       string      `json:"name" yaml:"name"`
	Conditions []Condition `json:"conditions" yaml:"conditions"`
	ClauseIDs  []string    `json:"clause_ids" yaml:"clause_ids"`
}

// Matches evaluates the rule's predicate. Exclusions are always AND.
func (r ExclusionRule) Matches(a Assignment) bool {
	return evaluate(OperatorAnd, r.Conditions, a)
}

// Rules is the declarative selection table
type Rules struct {
	Mandatory   []string                         `json:"mandatory" yaml:"mandatory"`
	PerVariable map[Variable]map[string][]string `json:"per_variable" yaml:"per_variable"`
	Conditional []ConditionalRule                `json:"conditional" yaml:"conditional"`
	Exclusion   []ExclusionRule                  `json:"exclusion" yaml:"exclusion"`
}

// Catalog is an immutable set of clauses keyed by id
type Catalog struct {
	clauses map[string]Clause
	index   map[string]int
	ids     []string
	rules   Rules
}

// NewCatalog builds a catalog. Duplicate ids are rejected.
func NewCatalog(rules Rules, defs ...Clause) (*Catalog, error) {
	c := &Catalog{
		clauses: make(map[string]Clause, len(defs)),
		index:   make(map[string]int, len(defs)),
		ids:     make([]string, 0, len(defs)),
		rules:   rules,
	}
	for _, def := range defs {
		if def.ID == "" {
			return nil, fmt.Errorf("clause %q has no id", def.Title)
		}
		if _, exists := c.clauses[def.ID]; exists {
			return nil, fmt.Errorf("duplicate clause id: %s", def.ID)
		}
		c.index[def.ID] = len(c.ids)
		c.ids = append(c.ids, def.ID)
		c.clauses[def.ID] = def
	}
	return c, nil
}

// Get returns the clause with id
func (c *Catalog) Get(id string) (Clause, bool) {
	clause, ok := c.clauses[id]
	return clause, ok
}

// IDs returns clause ids in insertion order
func (c *Catalog) IDs() []string {
	return append([]string(nil), c.ids...)
}

// Len returns the number of clauses
func (c *Catalog) Len() int {
	return len(c.ids)
}

// Rules returns the catalog's selection table
func (c *Catalog) Rules() Rules {
	return c.rules
}

// ForVariable lists the clause ids the per-variable table maps to (variable, value)
func (c *Catalog) ForVariable(v Variable, value string) []string {
	return append([]string(nil), c.rules.PerVariable[v][value]...)
}

// Check lists rule references to clause ids the catalog does not define
func (c *Catalog) Check() []string {
	var warnings []string
	missing := func(source string, ids []string) {
		for _, id := range ids {
			if _, ok := c.clauses[id]; !ok {
				warnings = append(warnings, fmt.Sprintf("%s references unknown clause %s", source, id))
			}
		}
	}

	missing("mandatory", c.rules.Mandatory)
	for _, v := range Variables {
		values := c.rules.PerVariable[v]
		keys := make([]string, 0, len(values))
		for value := range values {
			keys = append(keys, value)
		}
		sort.Strings(keys)
		for _, value := range keys {
			missing(fmt.Sprintf("%s:%s", v, value), values[value])
		}
	}
	for _, r := range c.rules.Conditional {
		missing("conditional "+r.Name, r.ClauseIDs)
	}
	for _, r := range c.rules.Exclusion {
		missing("exclusion "+r.Name, r.ClauseIDs)
	}
	return warnings
}

// less orders clauses by Order, then catalog position
func (c *Catalog) less(a, b Clause) bool {
	if a.SortOrder() != b.SortOrder() {
		return a.SortOrder() < b.SortOrder()
	}
	ia, oka := c.index[a.ID]
	ib, okb := c.index[b.ID]
	if oka && okb {
		return ia < ib
	}
	return oka && !okb
}

func (c *Catalog) sortClauses(list []Clause) {
	sort.SliceStable(list, func(i, j int) bool { return c.less(list[i], list[j]) })
}
