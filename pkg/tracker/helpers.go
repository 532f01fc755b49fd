package tracker

import (
	"fmt"
	"net/http"

	"github.com/issuekit/issuekit/pkg/resource"
)

// Watchers mutates an issue's watcher list directly through the transport.
// These are out-of-band relationship calls: they bypass the change set and
// never interact with Save.
type Watchers struct {
	m       resource.Manager
	issueID any
}

// NewWatchers binds a watcher helper to an issue. The watchers endpoints
// appeared in server version 2.3; a declared older server fails fast with a
// VersionMismatchError.
func NewWatchers(issue *resource.Resource) (*Watchers, error) {
	m := issue.Manager()
	if err := checkVersion(m.Settings(), "issue watchers", "2.3"); err != nil {
		return nil, err
	}
	return &Watchers{m: m, issueID: issue.InternalID()}, nil
}

// Add puts a user on the issue's watcher list.
func (w *Watchers) Add(userID int) error {
	path := fmt.Sprintf("/issues/%v/watchers.json", w.issueID)
	_, err := w.m.Request(http.MethodPost, path, map[string]any{"user_id": userID})
	return err
}

// Remove takes a user off the issue's watcher list.
func (w *Watchers) Remove(userID int) error {
	path := fmt.Sprintf("/issues/%v/watchers/%d.json", w.issueID, userID)
	_, err := w.m.Request(http.MethodDelete, path, nil)
	return err
}

// GroupUsers mutates a group's membership directly through the transport,
// bypassing the change set.
type GroupUsers struct {
	m       resource.Manager
	groupID any
}

// NewGroupUsers binds a membership helper to a group.
func NewGroupUsers(group *resource.Resource) *GroupUsers {
	return &GroupUsers{m: group.Manager(), groupID: group.InternalID()}
}

// Add puts a user into the group.
func (g *GroupUsers) Add(userID int) error {
	path := fmt.Sprintf("/groups/%v/users.json", g.groupID)
	_, err := g.m.Request(http.MethodPost, path, map[string]any{"user_id": userID})
	return err
}

// Remove takes a user out of the group.
func (g *GroupUsers) Remove(userID int) error {
	path := fmt.Sprintf("/groups/%v/users/%d.json", g.groupID, userID)
	_, err := g.m.Request(http.MethodDelete, path, nil)
	return err
}

// DownloadAttachment streams an attachment's content into dir, using the
// attachment's own filename when filename is empty. It returns the written
// path.
func (c *Client) DownloadAttachment(attachment *resource.Resource, dir, filename string) (string, error) {
	contentURL, err := attachment.Get("content_url")
	if err != nil {
		return "", err
	}
	u, ok := contentURL.(string)
	if !ok || u == "" {
		return "", fmt.Errorf("attachment has no content url")
	}
	if filename == "" {
		if name, err := attachment.Get("filename"); err == nil {
			filename, _ = name.(string)
		}
	}
	return c.transport.Download(u, dir, filename)
}
