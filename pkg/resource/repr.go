package resource

import (
	"fmt"
	"strings"
)

// displayValues resolves the representation preference list. Each tuple is
// tried in order, its attributes resolved in reverse; a tuple with any
// unresolvable attribute is abandoned for the next one. full keeps a leading
// identity value, short omits it.
func (r *Resource) displayValues() (short, full []any) {
	for _, tuple := range r.typ.Repr {
		short, full = nil, nil
		ok := true
		for i := len(tuple) - 1; i >= 0; i-- {
			attr := tuple[i]
			v, err := r.Get(attr)
			if err != nil || v == nil {
				ok = false
				break
			}
			full = append([]any{v}, full...)
			if attr != "id" {
				short = append([]any{v}, short...)
			}
		}
		if ok && len(full) > 0 {
			break
		}
		short, full = nil, nil
	}

	// An unsaved resource drops its trailing value so a meaningless field
	// does not surface before the first save. Intentionally literal; see
	// the display tests for the resulting shapes.
	if r.IsNew() && len(full) > 2 {
		short = short[:len(short)-1]
		full = full[:len(full)-1]
	}
	return short, full
}

// String returns the short human display of the resource, omitting a leading
// numeric identity.
func (r *Resource) String() string {
	short, full := r.displayValues()
	if len(short) == 0 {
		if len(full) == 0 {
			return ""
		}
		return fmt.Sprintf("%v", full[0])
	}
	return joinValues(short)
}

// Inspect returns the structured identifier view, keeping the identity:
// <issuekit.Issue #1 "Fix bug">.
func (r *Resource) Inspect() string {
	_, full := r.displayValues()

	var b strings.Builder
	b.WriteString("<issuekit.")
	b.WriteString(r.typ.Name)
	if len(full) > 0 {
		if isNumeric(full[0]) {
			fmt.Fprintf(&b, " #%v", full[0])
			full = full[1:]
		}
		if len(full) > 0 {
			fmt.Fprintf(&b, " %q", joinValues(full))
		}
	}
	b.WriteString(">")
	return b.String()
}

func joinValues(values []any) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%v", v)
	}
	return strings.Join(parts, " ")
}

func isNumeric(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return true
	}
	return false
}
