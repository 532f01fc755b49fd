package tracker

import "github.com/issuekit/issuekit/pkg/resource"

// TimeEntryType is the configuration of the time entry resource.
var TimeEntryType = &resource.Type{
	Name:             "TimeEntry",
	MinServerVersion: "1.1",
	ContainerMany:    "time_entries",
	ContainerOne:     "time_entry",
	QueryAll:         "/time_entries.json",
	QueryOne:         "/time_entries/{0}.json",
	QueryFilter:      "/time_entries.json",
	QueryCreate:      "/time_entries.json",
	QueryUpdate:      "/time_entries/{0}.json",
	QueryDelete:      "/time_entries/{0}.json",
	Repr:             [][]string{{"id"}},
	Behavior:         timeEntryBehavior{},
}

func init() { resource.Register(TimeEntryType) }

type timeEntryBehavior struct {
	resource.BaseBehavior
}

// DecodeAttr renames the range fields to the reserved words the wire uses.
func (timeEntryBehavior) DecodeAttr(attr string, value any, m resource.Manager) (string, any, bool) {
	switch attr {
	case "from_date":
		return "from", value, false
	case "to_date":
		return "to", value, false
	}
	return attr, value, false
}
