package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/issuekit/issuekit/pkg/resource"
	"github.com/ohler55/ojg/oj"
)

// printJSON writes v to stdout as indented JSON, using the same codec
// the transport speaks on the wire.
func printJSON(v any) error {
	_, err := fmt.Println(oj.JSON(v, 2))
	return err
}

// newTable returns an aligned column writer on stdout. Callers flush it
// when done.
func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
}

// printCollection renders a collection either as JSON or as an aligned table
// with the given columns.
func printCollection(coll *resource.Collection, columns []string) error {
	items, err := coll.All()
	if err != nil {
		return formatAPIError(err)
	}

	if jsonOutput {
		rows := make([]map[string]any, 0, len(items))
		for _, r := range items {
			rows = append(rows, r.Raw())
		}
		return printJSON(rows)
	}

	w := newTable()
	fmt.Fprintln(w, strings.ToUpper(strings.Join(columns, "\t")))
	for _, r := range items {
		cells := make([]string, 0, len(columns))
		for _, col := range columns {
			cells = append(cells, cellValue(r, col))
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	return w.Flush()
}

// printResource renders a single resource either as JSON or as a key/value
// listing of its wire attributes.
func printResource(r *resource.Resource) error {
	if jsonOutput {
		return printJSON(r.Raw())
	}

	fmt.Println(r.Inspect())
	names := r.Names()
	sort.Strings(names)

	w := newTable()
	for _, name := range names {
		// Raw access keeps display from triggering lazy relation fetches.
		v := r.Raw()[name]
		if v == nil {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\n", name, rawValue(v))
	}
	return w.Flush()
}

// cellValue resolves an attribute for display. Composite attributes collapse
// to their name, absent attributes render empty.
func cellValue(r *resource.Resource, attr string) string {
	v, err := r.Get(attr)
	if err != nil || v == nil {
		return ""
	}
	switch val := v.(type) {
	case *resource.Resource:
		return val.String()
	case *resource.Collection:
		n, err := val.Len()
		if err != nil {
			return ""
		}
		return fmt.Sprintf("(%d)", n)
	default:
		return rawValue(v)
	}
}

func rawValue(v any) string {
	switch val := v.(type) {
	case map[string]any:
		if name, ok := val["name"]; ok {
			return fmt.Sprintf("%v", name)
		}
		return fmt.Sprintf("%v", val)
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			parts = append(parts, rawValue(item))
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprintf("%v", val)
	}
}
