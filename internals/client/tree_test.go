// file: internals/client/tree_test.go
package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

const treePayload = `{
	"success": true,
	"tree": [
		{
			"id": "s1", "name": "Biology",
			"chapters": [
				{
					"id": "c1", "subject_id": "s1", "name": "Cells",
					"questions": [
						{"id": "q-direct-1", "subject_id": "s1", "chapter_id": "c1",
						 "question_text": "Direct?", "status": "pending", "question_options": []}
					],
					"topics": [
						{"id": "t1", "chapter_id": "c1", "name": "Mitosis",
						 "questions": [
							{"id": "qq1", "subject_id": "s1", "chapter_id": "c1", "topic_id": "t1",
							 "question_text": "Phase?", "status": "approved",
							 "question_options": [
								{"option_key": "a", "content": "Prophase"},
								{"option_key": "b", "content": "Metaphase"}
							 ]}
						 ]}
					]
				}
			]
		}
	]
}`

func treeServer(t *testing.T, fail *bool) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/admin/subjects/tree", r.URL.Path)
		if fail != nil && *fail {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"success":false,"message":"boom"}`))
			return
		}
		w.Write([]byte(treePayload))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestTreeStoreLoad(t *testing.T) {
	srv := treeServer(t, nil)
	store := NewTreeStore(NewGateway(srv.URL, "tok"))

	require.False(t, store.Loaded())
	require.NoError(t, store.LoadTree(context.Background()))
	require.True(t, store.Loaded())

	subjects := store.Subjects()
	require.Len(t, subjects, 1)
	require.Equal(t, "Biology", subjects[0].Name)
	require.Len(t, subjects[0].Chapters, 1)
	require.Len(t, subjects[0].Chapters[0].Questions, 1)
	require.Len(t, subjects[0].Chapters[0].Topics, 1)
	require.Len(t, subjects[0].Chapters[0].Topics[0].Questions, 1)

	q := store.FindQuestion("qq1")
	require.NotNil(t, q)
	require.Equal(t, "approved", q.Status)
	require.Nil(t, store.FindQuestion("missing"))
}

// Reloads never touch the expansion map: keys opened before a refetch stay
// open after it, keys never toggled stay closed.
func TestExpansionSurvivesReload(t *testing.T) {
	srv := treeServer(t, nil)
	store := NewTreeStore(NewGateway(srv.URL, "tok"))
	ctx := context.Background()

	require.NoError(t, store.LoadTree(ctx))

	store.Toggle("s1")
	store.Toggle("c1")
	store.Toggle(QuestionKey("qq1"))
	require.True(t, store.IsExpanded("s1"))
	require.True(t, store.IsExpanded(QuestionKey("qq1")))

	for i := 0; i < 5; i++ {
		require.NoError(t, store.InvalidateAndReload(ctx))
	}

	require.True(t, store.IsExpanded("s1"))
	require.True(t, store.IsExpanded("c1"))
	require.True(t, store.IsExpanded(QuestionKey("qq1")))
	require.False(t, store.IsExpanded("t1"))
	require.ElementsMatch(t,
		[]string{"s1", "c1", "q-qq1"},
		store.ExpandedKeys())

	// explicit toggle is the only thing that closes a node
	store.Toggle("s1")
	require.False(t, store.IsExpanded("s1"))
}

// A failed reload surfaces the error and keeps the previous snapshot.
func TestReloadFailureKeepsSnapshot(t *testing.T) {
	fail := false
	srv := treeServer(t, &fail)
	store := NewTreeStore(NewGateway(srv.URL, "tok"))
	ctx := context.Background()

	require.NoError(t, store.LoadTree(ctx))
	store.Toggle("s1")

	fail = true
	err := store.InvalidateAndReload(ctx)
	require.Error(t, err)

	var gwErr *GatewayError
	require.ErrorAs(t, err, &gwErr)
	require.Equal(t, "boom", gwErr.Message)

	require.Len(t, store.Subjects(), 1, "stale snapshot must remain")
	require.True(t, store.IsExpanded("s1"))

	// user-initiated retry is the recovery path
	fail = false
	require.NoError(t, store.InvalidateAndReload(ctx))
	require.Len(t, store.Subjects(), 1)
}

func TestNetworkErrorType(t *testing.T) {
	srv := treeServer(t, nil)
	url := srv.URL
	srv.Close()

	store := NewTreeStore(NewGateway(url, "tok"))
	err := store.LoadTree(context.Background())
	require.Error(t, err)

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
}

// A body that isn't the API's JSON (a proxy error page, say) is a transport
// problem, not a server verdict.
func TestNonJSONResponseIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>502 Bad Gateway</html>"))
	}))
	t.Cleanup(srv.Close)

	store := NewTreeStore(NewGateway(srv.URL, "tok"))
	err := store.LoadTree(context.Background())
	var nerr *NetworkError
	require.ErrorAs(t, err, &nerr)
	var gerr *GatewayError
	require.False(t, errors.As(err, &gerr), "must not be classified as a server response")
}
