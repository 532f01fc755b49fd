package resource

// Process-wide attribute mapping tables shared by every resource type.
// They are initialized once and never mutated afterwards.

// embeddedCollectionTypes maps attribute names whose wire value is an array
// of resource fragments to the type the fragments wrap into.
var embeddedCollectionTypes = map[string]string{
	"trackers":         "Tracker",
	"issue_categories": "IssueCategory",
	"custom_fields":    "CustomField",
	"groups":           "Group",
	"users":            "User",
	"memberships":      "ProjectMembership",
	"relations":        "IssueRelation",
	"attachments":      "Attachment",
	"watchers":         "User",
	"journals":         "IssueJournal",
	"children":         "Issue",
	"roles":            "Role",
}

// embeddedResourceTypes maps attribute names whose wire value is a single
// resource fragment to the type the fragment wraps into.
var embeddedResourceTypes = map[string]string{
	"author":        "User",
	"assigned_to":   "User",
	"project":       "Project",
	"tracker":       "Tracker",
	"status":        "IssueStatus",
	"user":          "User",
	"issue":         "Issue",
	"priority":      "Enumeration",
	"activity":      "Enumeration",
	"category":      "IssueCategory",
	"fixed_version": "Version",
}

// relationFetchTypes maps relation attribute names to the type requested
// from the server with a filtered query.
var relationFetchTypes = map[string]string{
	"wiki_pages":       "WikiPage",
	"memberships":      "ProjectMembership",
	"issue_categories": "IssueCategory",
	"versions":         "Version",
	"news":             "News",
	"relations":        "IssueRelation",
	"time_entries":     "TimeEntry",
	"issues":           "Issue",
}

// singleIDMirrors maps convenience id attributes to the composite attribute
// that is stubbed alongside them, so an immediate read of the composite does
// not require a round trip.
var singleIDMirrors = map[string]string{
	"parent_id":        "parent",
	"project_id":       "project",
	"tracker_id":       "tracker",
	"priority_id":      "priority",
	"assigned_to_id":   "assigned_to",
	"category_id":      "category",
	"fixed_version_id": "fixed_version",
	"parent_issue_id":  "parent",
	"issue_id":         "issue",
	"activity_id":      "activity",
}

// multiIDMirrors is the plural counterpart of singleIDMirrors: setting the
// id list also stubs a list of composites.
var multiIDMirrors = map[string]string{
	"user_ids": "users",
	"role_ids": "roles",
}
