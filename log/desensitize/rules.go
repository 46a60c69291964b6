package desensitize

import (
	"fmt"
	"regexp"
)

// Rule rewrites sensitive parts of a log line. Rules are immutable, whether a
// rule runs is decided by the Hook holding it.
type Rule interface {
	Name() string
	Apply(s string) string
}

// ContentRule rewrites every match of a pattern anywhere in the line
type ContentRule struct {
	name        string
	pattern     *regexp.Regexp
	replacement string
}

// NewContentRule compiles pattern into a ContentRule. replacement may refer to
// submatches as $1, ${name}.
func NewContentRule(name, pattern, replacement string) (*ContentRule, error) {
	if name == "" {
		return nil, fmt.Errorf("rule name cannot be empty")
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("rule %s: %w", name, err)
	}
	return &ContentRule{name: name, pattern: re, replacement: replacement}, nil
}

func (r *ContentRule) Name() string {
	return r.name
}

func (r *ContentRule) Apply(s string) string {
	return r.pattern.ReplaceAllString(s, r.replacement)
}

// FieldRule masks the string value of a JSON field, escaped quotes included
type FieldRule struct {
	field   string
	pattern *regexp.Regexp
}

// NewFieldRule builds a FieldRule for field, which also names the rule
func NewFieldRule(field string) (*FieldRule, error) {
	if field == "" {
		return nil, fmt.Errorf("field name cannot be empty")
	}
	re := regexp.MustCompile(`("` + regexp.QuoteMeta(field) + `"\s*:\s*")(?:[^"\\]|\\.)*"`)
	return &FieldRule{field: field, pattern: re}, nil
}

func (r *FieldRule) Name() string {
	return r.field
}

func (r *FieldRule) Apply(s string) string {
	return r.pattern.ReplaceAllString(s, "${1}"+mask+`"`)
}
