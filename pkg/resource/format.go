package resource

import (
	"fmt"
	"strings"
)

// FormatPath fills an endpoint path template: {0} takes the identity, named
// placeholders take values from params. Placeholders with no matching value
// are left in place.
func FormatPath(template string, id any, params map[string]any) string {
	path := template
	if id != nil {
		path = strings.ReplaceAll(path, "{0}", fmt.Sprintf("%v", id))
	}
	for name, value := range params {
		path = strings.ReplaceAll(path, "{"+name+"}", fmt.Sprintf("%v", value))
	}
	return path
}
