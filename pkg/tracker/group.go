package tracker

import "github.com/issuekit/issuekit/pkg/resource"

// GroupType is the configuration of the group resource. Membership changes
// go through the GroupUsers helper, not attribute writes.
var GroupType = &resource.Type{
	Name:             "Group",
	MinServerVersion: "2.1",
	ContainerMany:    "groups",
	ContainerOne:     "group",
	QueryAll:         "/groups.json",
	QueryOne:         "/groups/{0}.json",
	QueryCreate:      "/groups.json",
	QueryUpdate:      "/groups/{0}.json",
	QueryDelete:      "/groups/{0}.json",
	Includes:         []string{"memberships", "users"},
}

func init() { resource.Register(GroupType) }
