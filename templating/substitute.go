package templating

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"contractdraft-backend/clauses"
)

// MissingValue replaces any token left without a dictionary entry
const MissingValue = "[정보 없음]"

var tokenRE = regexp.MustCompile(`\{[^{}]*\}`)

// Dictionary maps placeholder names to display values. Values are strings or
// numbers; nil renders as an empty string.
type Dictionary map[string]interface{}

// Keys returns the dictionary keys in sorted order
func (d Dictionary) Keys() []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (d Dictionary) replacer() *strings.Replacer {
	pairs := make([]string, 0, len(d)*2)
	for _, k := range d.Keys() {
		pairs = append(pairs, "{"+k+"}", stringify(d[k]))
	}
	return strings.NewReplacer(pairs...)
}

func stringify(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}

// SubstituteText fills every known {key} token, then replaces whatever tokens
// remain with MissingValue so no template syntax survives.
func SubstituteText(text string, dict Dictionary) string {
	return fill(text, dict.replacer())
}

// fill repeats the marker pass because replacing an inner token can close a
// new outer one, as in "{{x}}". Each pass removes a brace pair, so it ends.
func fill(text string, r *strings.Replacer) string {
	out := r.Replace(text)
	for tokenRE.MatchString(out) {
		out = tokenRE.ReplaceAllLiteralString(out, MissingValue)
	}
	return out
}

// Substitute returns copies of the clauses with their content resolved against dict.
// Titles are resolved the same way.
func Substitute(list []clauses.Clause, dict Dictionary) []clauses.Clause {
	r := dict.replacer()
	out := make([]clauses.Clause, len(list))
	for i, c := range list {
		c.Title = fill(c.Title, r)
		c.Content = fill(c.Content, r)
		out[i] = c
	}
	return out
}

// Tokens lists the distinct placeholder names used in text, in order of first use
func Tokens(text string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, tok := range tokenRE.FindAllString(text, -1) {
		name := tok[1 : len(tok)-1]
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}
