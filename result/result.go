// Package result holds the accumulator the validation engine writes
// diagnostics and match scores into, plus the total order used to rank
// anyOf/oneOf alternatives.
package result

import "fmt"

// Severity classifies a Diagnostic. The engine never escalates past the
// package default of Warning on its own; callers may promote it.
type Severity int

const (
	Warning Severity = iota
	Error
	Info
	Hint
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Info:
		return "info"
	case Hint:
		return "hint"
	default:
		return "warning"
	}
}

// DiagnosticCode tags the handful of problems a caller may want to
// distinguish programmatically. Most problems carry no code.
type DiagnosticCode int

const (
	NoCode DiagnosticCode = iota
	EnumValueMismatch
)

// Diagnostic is a single user-visible validation problem.
type Diagnostic struct {
	Offset   uint32
	Length   uint32
	Severity Severity
	Message  string
	Code     DiagnosticCode
}

// ValidationResult accumulates diagnostics and match scores for one
// validate() call and its descendants. The zero value is ready to use.
type ValidationResult struct {
	Problems []Diagnostic

	PropertiesMatches      uint32
	PropertiesValueMatches uint32
	PrimaryValueMatches    uint32

	EnumValueMatch bool
	EnumValues     []any

	// TypeMismatches counts "type" keyword failures recorded against this
	// result, plus those of every result merged into it. It is not one of the core four match
	// scores; it exists purely as compare()'s final tiebreaker, so
	// that among two anyOf/oneOf branches tied on every other score a
	// branch whose value isn't even the right shape of data loses to
	// one whose value just violates a narrower constraint (e.g. a
	// numeric range) on an otherwise-matching type.
	TypeMismatches uint32
}

// New returns an empty ValidationResult. Provided for symmetry with the
// rest of the package's constructors; the zero value works equally well.
func New() *ValidationResult {
	return &ValidationResult{}
}

// HasProblems reports whether any diagnostic has been recorded.
func (r *ValidationResult) HasProblems() bool {
	return len(r.Problems) > 0
}

// AddProblem appends a single diagnostic.
func (r *ValidationResult) AddProblem(d Diagnostic) {
	r.Problems = append(r.Problems, d)
}

// Merge appends other's problems onto r and adds other's TypeMismatches
// to r's. The four match scores are untouched; callers
// combining scores alongside problems use MergePropertyMatch or do it
// manually, per the keyword that is merging (see validate package).
func (r *ValidationResult) Merge(other *ValidationResult) {
	r.Problems = append(r.Problems, other.Problems...)
	r.TypeMismatches += other.TypeMismatches
}

// MergeEnumValues reconciles two failed enum matches: when both sides
// missed and both carry candidate values, the union is formed and every
// EnumValueMismatch diagnostic already recorded on r is rewritten to
// list it.
func (r *ValidationResult) MergeEnumValues(other *ValidationResult) {
	if r.EnumValueMatch || other.EnumValueMatch {
		return
	}
	if len(r.EnumValues) == 0 || len(other.EnumValues) == 0 {
		return
	}
	r.EnumValues = append(r.EnumValues, other.EnumValues...)
	msg := EnumMismatchMessage(r.EnumValues)
	for i := range r.Problems {
		if r.Problems[i].Code == EnumValueMismatch {
			r.Problems[i].Message = msg
		}
	}
}

// EnumMismatchMessage renders the "Value is not accepted. Valid values:
// ..." message for a set of candidate enum values. Exported so the
// validate package's initial enum/const diagnostics use the identical
// wording that MergeEnumValues later rewrites to.
func EnumMismatchMessage(values []any) string {
	msg := "Value is not accepted. Valid values: "
	for i, v := range values {
		if i > 0 {
			msg += ", "
		}
		msg += fmt.Sprintf("%q", fmt.Sprint(v))
	}
	return msg
}

// MergePropertyMatch folds a child result (produced validating one
// property, tuple element, or dependency) into r: child's problems are
// appended, propertiesMatches is bumped, and propertiesValueMatches and
// primaryValueMatches are bumped per the rules in the validation-result
// algebra.
func (r *ValidationResult) MergePropertyMatch(child *ValidationResult) {
	r.Merge(child)
	r.PropertiesMatches++

	if child.EnumValueMatch || (!child.HasProblems() && child.PropertiesMatches > 0) {
		r.PropertiesValueMatches++
	}
	if child.EnumValueMatch && len(child.EnumValues) == 1 {
		r.PrimaryValueMatches++
	}
}

// Compare implements the total order used to pick the best anyOf/oneOf
// branch. It returns a negative number if r ranks worse than other,
// zero if they rank equally, and a positive number if r ranks better.
func (r *ValidationResult) Compare(other *ValidationResult) int {
	if c := compareBool(!r.HasProblems(), !other.HasProblems()); c != 0 {
		return c
	}
	if c := compareBool(r.EnumValueMatch, other.EnumValueMatch); c != 0 {
		return c
	}
	if c := compareUint(r.PrimaryValueMatches, other.PrimaryValueMatches); c != 0 {
		return c
	}
	if c := compareUint(r.PropertiesValueMatches, other.PropertiesValueMatches); c != 0 {
		return c
	}
	if c := compareUint(r.PropertiesMatches, other.PropertiesMatches); c != 0 {
		return c
	}
	// Final tiebreaker, beyond the four-integer + enum-flag tuple:
	// fewer type mismatches wins, so a branch that at least has the
	// right shape of data outranks one that doesn't, when every other
	// score ties.
	return compareUint(other.TypeMismatches, r.TypeMismatches)
}

// compareBool ranks true above false, matching the "beats" language of
// the ranking rules (no-problems beats has-problems, enum match beats
// no match).
func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return 1
	default:
		return -1
	}
}

func compareUint(a, b uint32) int {
	switch {
	case a == b:
		return 0
	case a > b:
		return 1
	default:
		return -1
	}
}
