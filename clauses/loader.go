package clauses

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// catalogFile is the YAML layout of an alternate catalog
type catalogFile struct {
	Clauses []Clause `yaml:"clauses"`
	Rules   Rules    `yaml:"rules"`
}

// declaredOrders sees whether an order key was written, which Clause.Order
// cannot tell apart from an omitted one
type declaredOrders struct {
	Clauses []struct {
		ID    string `yaml:"id"`
		Order *int   `yaml:"order"`
	} `yaml:"clauses"`
}

// LoadCatalog reads a YAML catalog of the form {clauses: [...], rules: {...}}
// An order, when given, must be positive; omit it to sort a clause last.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var file catalogFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	if len(file.Clauses) == 0 {
		return nil, fmt.Errorf("catalog defines no clauses")
	}

	var orders declaredOrders
	if err := yaml.Unmarshal(data, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	for _, c := range orders.Clauses {
		if c.Order != nil && *c.Order <= 0 {
			return nil, fmt.Errorf("clause %s: order must be positive, got %d", c.ID, *c.Order)
		}
	}
	for i := range file.Rules.Conditional {
		op := file.Rules.Conditional[i].Operator
		if op != "" && op != OperatorAnd && op != OperatorOr {
			return nil, fmt.Errorf("conditional rule %q: unknown operator %q", file.Rules.Conditional[i].Name, op)
		}
	}
	return NewCatalog(file.Rules, file.Clauses...)
}

// LoadCatalogFile opens path and loads it with LoadCatalog
func LoadCatalogFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()
	return LoadCatalog(f)
}
