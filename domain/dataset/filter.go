package dataset

import (
	"fmt"
	"strings"

	"tabstat/domain/core"
)

// Condition is a row filter predicate applied to one cell
type Condition string

const (
	CondEquals         Condition = "eq"
	CondNotEquals      Condition = "ne"
	CondGreater        Condition = "gt"
	CondLess           Condition = "lt"
	CondGreaterOrEqual Condition = "ge"
	CondLessOrEqual    Condition = "le"
	CondContains       Condition = "contains"
	CondNotContains    Condition = "not_contains"
	CondStartsWith     Condition = "starts_with"
	CondEndsWith       Condition = "ends_with"
	CondEmpty          Condition = "empty"
	CondNotEmpty       Condition = "not_empty"
)

var conditionAliases = map[string]Condition{
	"eq": CondEquals, "=": CondEquals, "==": CondEquals,
	"ne": CondNotEquals, "!=": CondNotEquals,
	"gt": CondGreater, ">": CondGreater,
	"lt": CondLess, "<": CondLess,
	"ge": CondGreaterOrEqual, ">=": CondGreaterOrEqual,
	"le": CondLessOrEqual, "<=": CondLessOrEqual,
	"contains": CondContains, "not_contains": CondNotContains,
	"starts_with": CondStartsWith, "ends_with": CondEndsWith,
	"empty": CondEmpty, "not_empty": CondNotEmpty,
}

// symbolic operators, longest first so ">=" wins over ">"
var symbolicOperators = []string{">=", "<=", "!=", "==", ">", "<", "="}

// ParseCondition accepts condition names ("starts_with") and operators (">=")
func ParseCondition(s string) (Condition, error) {
	if c, ok := conditionAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return c, nil
	}
	return "", core.NewParameterError("condition", fmt.Sprintf("%q is not a filter condition", s))
}

func (c Condition) numeric() bool {
	switch c {
	case CondGreater, CondLess, CondGreaterOrEqual, CondLessOrEqual:
		return true
	}
	return false
}

func (c Condition) takesValue() bool {
	return c != CondEmpty && c != CondNotEmpty
}

// Filter keeps the rows whose cell in Column satisfies Condition against Value.
// Text conditions compare the cell text exactly (case-sensitive); ordering
// conditions compare numerically and never match a non-numeric cell.
type Filter struct {
	Column    string
	Condition Condition
	Value     string
}

// NewFilter validates the condition and, for ordering conditions, the value
func NewFilter(column string, condition Condition, value string) (Filter, error) {
	column = strings.TrimSpace(column)
	if column == "" {
		return Filter{}, core.NewParameterError("filter", "column cannot be empty")
	}
	if _, err := ParseCondition(string(condition)); err != nil {
		return Filter{}, err
	}
	if condition.numeric() {
		if _, ok := parseNumber(value); !ok {
			return Filter{}, core.NewParameterError("filter", fmt.Sprintf("%s needs a numeric value, got %q", condition, value))
		}
	}
	return Filter{Column: column, Condition: condition, Value: value}, nil
}

// ParseFilter reads an expression such as "units>=10", "region = north" or
// "name starts_with Jo". Word conditions are separated from the column and
// value by whitespace; empty and not_empty take no value.
func ParseFilter(expr string) (Filter, error) {
	expr = strings.TrimSpace(expr)
	fields := strings.Fields(expr)
	if len(fields) >= 2 {
		if c, err := ParseCondition(fields[1]); err == nil && !strings.ContainsAny(fields[1], "=<>!") {
			rest := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(strings.TrimPrefix(expr, fields[0])), fields[1]))
			if !c.takesValue() && rest != "" {
				return Filter{}, core.NewParameterError("filter", fmt.Sprintf("%s takes no value in %q", c, expr))
			}
			return NewFilter(fields[0], c, rest)
		}
	}

	at, op := -1, ""
	for _, candidate := range symbolicOperators {
		if i := strings.Index(expr, candidate); i >= 0 && (at < 0 || i < at || (i == at && len(candidate) > len(op))) {
			at, op = i, candidate
		}
	}
	if at < 0 {
		return Filter{}, core.NewParameterError("filter", fmt.Sprintf("no condition in %q", expr))
	}
	c, _ := ParseCondition(op)
	return NewFilter(expr[:at], c, strings.TrimSpace(expr[at+len(op):]))
}

// Match reports whether cell satisfies the filter
func (f Filter) Match(cell string) bool {
	switch f.Condition {
	case CondEquals:
		return cell == f.Value
	case CondNotEquals:
		return cell != f.Value
	case CondContains:
		return strings.Contains(cell, f.Value)
	case CondNotContains:
		return !strings.Contains(cell, f.Value)
	case CondStartsWith:
		return strings.HasPrefix(cell, f.Value)
	case CondEndsWith:
		return strings.HasSuffix(cell, f.Value)
	case CondEmpty:
		return cell == ""
	case CondNotEmpty:
		return cell != ""
	}

	v, ok := parseNumber(cell)
	if !ok {
		return false
	}
	bound, ok := parseNumber(f.Value)
	if !ok {
		return false
	}
	switch f.Condition {
	case CondGreater:
		return v > bound
	case CondLess:
		return v < bound
	case CondGreaterOrEqual:
		return v >= bound
	case CondLessOrEqual:
		return v <= bound
	}
	return false
}

func (f Filter) String() string {
	if !f.Condition.takesValue() {
		return fmt.Sprintf("%s %s", f.Column, f.Condition)
	}
	return fmt.Sprintf("%s %s %s", f.Column, f.Condition, f.Value)
}

// Filter returns a new table holding the rows that satisfy f. Rows are shared
// with t, not copied.
func (t *Table) Filter(f Filter) (*Table, error) {
	idx, err := t.ColumnIndex(f.Column)
	if err != nil {
		return nil, err
	}
	out := &Table{Name: t.Name, Headers: t.Headers, Rows: make([][]string, 0, len(t.Rows))}
	for _, row := range t.Rows {
		if f.Match(row[idx]) {
			out.Rows = append(out.Rows, row)
		}
	}
	return out, nil
}
