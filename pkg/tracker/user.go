package tracker

import "github.com/issuekit/issuekit/pkg/resource"

// UserType is the configuration of the user resource. User relations use the
// assigned_to foreign key, except time entries which are keyed by user.
var UserType = &resource.Type{
	Name:             "User",
	MinServerVersion: "1.1",
	ContainerMany:    "users",
	ContainerOne:     "user",
	QueryAll:         "/users.json",
	QueryOne:         "/users/{0}.json",
	QueryFilter:      "/users.json",
	QueryCreate:      "/users.json",
	QueryUpdate:      "/users/{0}.json",
	QueryDelete:      "/users/{0}.json",
	Repr:             [][]string{{"id", "firstname", "lastname"}, {"id", "name"}},
	Includes:         []string{"memberships", "groups"},
	Relations:        []string{"issues", "time_entries"},
	RelationKey:      "assigned_to",
	Unconvertible:    []string{"status"},
	CreateReadonly:   append(resource.BaseCreateReadonly(), "api_key", "last_login_on"),
	Behavior:         userBehavior{},
}

func init() { resource.Register(UserType) }

type userBehavior struct {
	resource.BaseBehavior
}

func (userBehavior) GetAttr(r *resource.Resource, attr string) (any, bool, error) {
	if attr == "time_entries" {
		v, err := r.FetchRelation("time_entries", "user")
		return v, true, err
	}
	return nil, false, nil
}
