package tracker

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/issuekit/issuekit/pkg/resource"
	"github.com/ohler55/ojg/oj"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchersAddAndRemove(t *testing.T) {
	type call struct{ method, path, body string }
	var calls []call
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		calls = append(calls, call{r.Method, r.URL.Path, string(data)})
		w.WriteHeader(http.StatusNoContent)
	}))

	issue := c.Issues().ToResource(map[string]any{"id": 42})
	watchers, err := NewWatchers(issue)
	require.NoError(t, err)

	require.NoError(t, watchers.Add(7))
	require.NoError(t, watchers.Remove(7))

	require.Len(t, calls, 2)
	assert.Equal(t, http.MethodPost, calls[0].method)
	assert.Equal(t, "/issues/42/watchers.json", calls[0].path)
	assert.JSONEq(t, `{"user_id":7}`, calls[0].body)
	assert.Equal(t, http.MethodDelete, calls[1].method)
	assert.Equal(t, "/issues/42/watchers/7.json", calls[1].path)
}

func TestWatchersVersionGate(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s", r.URL.Path)
	}), WithServerVersion("2.2"))

	issue := c.Issues().ToResource(map[string]any{"id": 42})
	_, err := NewWatchers(issue)

	var mismatch *resource.VersionMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "2.3", mismatch.Required)
}

func TestGroupUsersAddAndRemove(t *testing.T) {
	var paths []string
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))

	group := c.Groups().ToResource(map[string]any{"id": 9})
	users := NewGroupUsers(group)

	require.NoError(t, users.Add(3))
	require.NoError(t, users.Remove(3))
	assert.Equal(t, []string{
		"POST /groups/9/users.json",
		"DELETE /groups/9/users/3.json",
	}, paths)
}

func TestDownloadAttachment(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/attachments/download/5/report.pdf" {
			_, _ = w.Write([]byte("pdf bytes"))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		data, _ := oj.Marshal(map[string]any{})
		_, _ = w.Write(data)
	}))

	dir := t.TempDir()
	attachment := c.Attachments().ToResource(map[string]any{
		"id":          5,
		"filename":    "report.pdf",
		"content_url": c.Transport().BaseURL() + "/attachments/download/5/report.pdf",
	})

	dest, err := c.DownloadAttachment(attachment, dir, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "report.pdf"), dest)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "pdf bytes", string(data))
}

func TestDownloadAttachmentWithoutContentURL(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s", r.URL.Path)
	}))

	attachment := c.Attachments().ToResource(map[string]any{"id": 5, "content_url": ""})
	_, err := c.DownloadAttachment(attachment, t.TempDir(), "")
	assert.ErrorContains(t, err, "no content url")
}
