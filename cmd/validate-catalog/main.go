package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"contractdraft-backend/clauses"

	"github.com/spf13/cobra"
)

var errInvalidCatalog = errors.New("catalog check failed")

type options struct {
	strict bool
	assign []string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "validate-catalog [file...]",
		Short: "Check YAML clause catalogs",
		Long: `Loads each clause catalog, reports rule references to unknown clauses and
optionally prints the selection for an assignment. With no files the built-in
catalog is checked.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.strict, "strict", false, "treat catalog warnings as failures")
	cmd.Flags().StringArrayVarP(&opts.assign, "set", "s", nil, "variable=value to preview a selection (repeatable)")
	return cmd
}

func run(out io.Writer, files []string, opts *options) error {
	var assignment clauses.Assignment
	if len(opts.assign) > 0 {
		var err error
		if assignment, err = parseAssignment(opts.assign); err != nil {
			return err
		}
	}

	failed := false
	check := func(name string, catalog *clauses.Catalog) {
		warnings := catalog.Check()
		fmt.Fprintf(out, "%s: %d clauses, %d warnings\n", name, catalog.Len(), len(warnings))
		for _, w := range warnings {
			fmt.Fprintf(out, "  warning: %s\n", w)
		}
		if opts.strict && len(warnings) > 0 {
			failed = true
		}
		if assignment != nil {
			preview(out, catalog, assignment)
		}
	}

	if len(files) == 0 {
		check("built-in", clauses.DefaultCatalog())
	}
	for _, path := range files {
		catalog, err := clauses.LoadCatalogFile(path)
		if err != nil {
			fmt.Fprintf(out, "%s: %v\n", path, err)
			failed = true
			continue
		}
		check(path, catalog)
	}

	if failed {
		return errInvalidCatalog
	}
	return nil
}

func preview(out io.Writer, catalog *clauses.Catalog, assignment clauses.Assignment) {
	full := clauses.DefaultAssignment().Merge(assignment)
	sel, err := clauses.NewSelector(catalog).SelectSafe(full, clauses.SelectOptions{})
	if err != nil {
		fmt.Fprintf(out, "  selection failed, failsafe used: %v\n", err)
	}
	for _, w := range sel.Warnings {
		fmt.Fprintf(out, "  assignment: %s\n", w)
	}
	for _, c := range sel.Clauses {
		mark := " "
		if c.Essential {
			mark = "*"
		}
		fmt.Fprintf(out, "  %s %3d %-28s %s\n", mark, c.SortOrder(), c.ID, c.Title)
	}
}

// parseAssignment reads name=value pairs
func parseAssignment(pairs []string) (clauses.Assignment, error) {
	a := clauses.Assignment{}
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" || value == "" {
			return nil, fmt.Errorf("invalid --set %q, want variable=value", pair)
		}
		a[clauses.Variable(strings.TrimSpace(name))] = strings.TrimSpace(value)
	}
	return a, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
