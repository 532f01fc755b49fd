package tracker

import (
	"io"
	"net/http"
	"testing"

	"github.com/ohler55/ojg/oj"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueVersionAlias(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s", r.URL.Path)
	}))

	issue := c.Issues().ToResource(map[string]any{"id": 1})
	require.NoError(t, issue.Set("version_id", 5))

	// The write lands under the wire name, and the composite is stubbed
	// alongside it.
	assert.Equal(t, 5, issue.Changes()["fixed_version_id"])
	assert.Equal(t, map[string]any{"id": 5}, issue.Raw()["fixed_version"])
}

func TestIssueVersionAliasResolvesComposite(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s", r.URL.Path)
	}))

	issue := c.Issues().ToResource(map[string]any{
		"id":            1,
		"fixed_version": map[string]any{"id": 5, "name": "1.0"},
	})

	v, err := issue.Get("version")
	require.NoError(t, err)
	require.NotNil(t, v)
	milestone, ok := v.(interface{ String() string })
	require.True(t, ok)
	assert.Equal(t, "1.0", milestone.String())
}

func TestProjectEnabledModulesFlatten(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s", r.URL.Path)
	}))

	project := c.Projects().ToResource(map[string]any{
		"id": 1,
		"enabled_modules": []any{
			map[string]any{"id": 10, "name": "issue_tracking"},
			map[string]any{"id": 11, "name": "wiki"},
		},
	})

	v, err := project.Get("enabled_modules")
	require.NoError(t, err)
	assert.Equal(t, []any{"issue_tracking", "wiki"}, v)
}

func TestProjectURLUsesIdentifier(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s", r.URL.Path)
	}))

	project := c.Projects().ToResource(map[string]any{"id": 1, "identifier": "infra"})
	url := project.URL()
	assert.Contains(t, url, "/projects/infra")
	assert.NotContains(t, url, ".json")
}

func TestTimeEntryRangeRename(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s", r.URL.Path)
	}))

	entry := c.TimeEntries().ToResource(map[string]any{"id": 1})
	require.NoError(t, entry.Set("from_date", "2024-01-01"))
	require.NoError(t, entry.Set("to_date", "2024-01-31"))

	assert.Equal(t, "2024-01-01", entry.Changes()["from"])
	assert.Equal(t, "2024-01-31", entry.Changes()["to"])
}

func TestUserTimeEntriesRelationKey(t *testing.T) {
	var gotPath, gotUserID string
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUserID = r.URL.Query().Get("user_id")
		writeJSON(w, map[string]any{"time_entries": []any{
			map[string]any{"id": 1, "hours": 2.5},
		}, "total_count": 1})
	}))

	user := c.Users().ToResource(map[string]any{"id": 3})
	v, err := user.Get("time_entries")
	require.NoError(t, err)

	col, ok := v.(interface{ Len() (int, error) })
	require.True(t, ok)
	n, err := col.Len()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "/time_entries.json", gotPath)
	assert.Equal(t, "3", gotUserID)
}

func TestUserIssuesUseAssignedToKey(t *testing.T) {
	var gotAssignee string
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAssignee = r.URL.Query().Get("assigned_to_id")
		writeJSON(w, map[string]any{"issues": []any{}, "total_count": 0})
	}))

	user := c.Users().ToResource(map[string]any{"id": 3})
	v, err := user.Get("issues")
	require.NoError(t, err)
	col, ok := v.(interface{ Len() (int, error) })
	require.True(t, ok)
	_, err = col.Len()
	require.NoError(t, err)
	assert.Equal(t, "3", gotAssignee)
}

func TestWikiPageTitleIdentity(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s", r.URL.Path)
	}))

	page := c.WikiPages(1).ToResource(map[string]any{
		"title":      "Setup",
		"created_on": "2024-01-01T00:00:00Z",
	})
	assert.Equal(t, "Setup", page.InternalID())
	assert.False(t, page.IsNew())
}

func TestWikiPageSaveBumpsVersion(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody map[string]any
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		data, _ := io.ReadAll(r.Body)
		parsed, _ := oj.Parse(data)
		gotBody, _ = parsed.(map[string]any)
		w.WriteHeader(http.StatusNoContent)
	}))

	page := c.WikiPages(1).ToResource(map[string]any{
		"title":      "Setup",
		"text":       "old text",
		"version":    3,
		"created_on": "2024-01-01T00:00:00Z",
	})

	require.NoError(t, page.Set("text", "new text"))
	require.NoError(t, page.Save())

	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/projects/1/wiki/Setup.json", gotPath)
	assert.Equal(t, map[string]any{"wiki_page": map[string]any{"text": "new text"}}, gotBody)

	// The server acknowledges with an empty body; the version advances
	// client-side.
	assert.Equal(t, 4, page.Raw()["version"])
}

func TestWikiPageTextAutoRefresh(t *testing.T) {
	var gotPath string
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		writeJSON(w, map[string]any{"wiki_page": map[string]any{
			"title":      "Setup",
			"text":       "full body",
			"created_on": "2024-01-01T00:00:00Z",
		}})
	}))

	// Index listings return pages without their text.
	page := c.WikiPages(1).ToResource(map[string]any{
		"title":      "Setup",
		"created_on": "2024-01-01T00:00:00Z",
	})

	v, err := page.Get("text")
	require.NoError(t, err)
	assert.Equal(t, "full body", v)
	assert.Equal(t, "/projects/1/wiki/Setup.json", gotPath)
}

func TestWikiPageDeleteCarriesProjectScope(t *testing.T) {
	var gotPath string
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))

	page := c.WikiPages(7).ToResource(map[string]any{
		"title":      "Obsolete",
		"created_on": "2024-01-01T00:00:00Z",
	})
	require.NoError(t, page.Delete(nil))
	assert.Equal(t, "/projects/7/wiki/Obsolete.json", gotPath)
}
