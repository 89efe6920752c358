// file: internals/features/content/subjects/controller/subject_controller_test.go
package controller_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	chapterRoute "medlearn_backend/internals/features/content/chapters/route"
	questionRoute "medlearn_backend/internals/features/content/questions/route"
	subjectDTO "medlearn_backend/internals/features/content/subjects/dto"
	subjectRoute "medlearn_backend/internals/features/content/subjects/route"
	topicRoute "medlearn_backend/internals/features/content/topics/route"
	"medlearn_backend/internals/testutil"
)

func newContentApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db := testutil.OpenDB(t)
	app := testutil.NewApp(t)
	admin := app.Group("/api/admin")
	subjectRoute.SubjectAdminRoutes(admin, db)
	chapterRoute.ChapterAdminRoutes(admin, db)
	topicRoute.TopicAdminRoutes(admin, db)
	questionRoute.QuestionAdminRoutes(admin, db)
	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (int, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out), "body: %s", raw)
	return resp.StatusCode, out
}

func createdID(t *testing.T, body map[string]any) string {
	t.Helper()
	data, ok := body["data"].(map[string]any)
	require.True(t, ok, "missing data in %v", body)
	id, ok := data["id"].(string)
	require.True(t, ok)
	return id
}

func fetchTree(t *testing.T, app *fiber.App) []subjectDTO.SubjectNode {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/subjects/tree", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Success bool                     `json:"success"`
		Tree    []subjectDTO.SubjectNode `json:"tree"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.True(t, out.Success)
	return out.Tree
}

func TestSubjectCRUD(t *testing.T) {
	app, _ := newContentApp(t)

	status, body := doJSON(t, app, http.MethodPost, "/api/admin/subjects", fiber.Map{
		"name": "Anatomy", "description": "Human anatomy",
	})
	require.Equal(t, http.StatusCreated, status)
	require.Equal(t, true, body["success"])
	id := createdID(t, body)

	status, body = doJSON(t, app, http.MethodPut, "/api/admin/subjects/"+id, fiber.Map{
		"name": "Gross Anatomy",
	})
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "Gross Anatomy", body["data"].(map[string]any)["name"])

	status, body = doJSON(t, app, http.MethodGet, "/api/admin/subjects?q=gross", nil)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, body["data"].([]any), 1)

	status, _ = doJSON(t, app, http.MethodDelete, "/api/admin/subjects/"+id, nil)
	require.Equal(t, http.StatusOK, status)

	status, body = doJSON(t, app, http.MethodGet, "/api/admin/subjects/"+id, nil)
	require.Equal(t, http.StatusNotFound, status)
	require.Equal(t, false, body["success"])
}

func TestSubjectCreateValidation(t *testing.T) {
	app, _ := newContentApp(t)

	status, body := doJSON(t, app, http.MethodPost, "/api/admin/subjects", fiber.Map{
		"name": "",
	})
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, false, body["success"])
}

// Deleting a subject must take every chapter, topic, question and option
// with it; the tree reloaded afterwards reflects exactly the store.
func TestSubjectCascadeDelete(t *testing.T) {
	app, db := newContentApp(t)

	_, body := doJSON(t, app, http.MethodPost, "/api/admin/subjects", fiber.Map{"name": "Physiology"})
	subjectID := createdID(t, body)

	_, body = doJSON(t, app, http.MethodPost, "/api/admin/chapters", fiber.Map{
		"subject_id": subjectID, "name": "Cardio",
	})
	chapterID := createdID(t, body)

	_, body = doJSON(t, app, http.MethodPost, "/api/admin/topics", fiber.Map{
		"chapter_id": chapterID, "name": "Heart Rate",
	})
	topicID := createdID(t, body)

	// one question under the topic, one directly under the chapter
	status, body := doJSON(t, app, http.MethodPost, "/api/admin/questions", fiber.Map{
		"subject_id": subjectID, "chapter_id": chapterID, "topic_id": topicID,
		"question_text": "What raises heart rate?",
		"options": []fiber.Map{
			{"option_key": "a", "content": "Adrenaline"},
			{"option_key": "b", "content": "Acetylcholine"},
		},
		"correct_key": "a",
	})
	require.Equal(t, http.StatusCreated, status, "body: %v", body)

	status, body = doJSON(t, app, http.MethodPost, "/api/admin/questions", fiber.Map{
		"subject_id": subjectID, "chapter_id": chapterID,
		"question_text": "Direct chapter question?",
		"options": []fiber.Map{
			{"option_key": "a", "content": "Yes"},
			{"option_key": "b", "content": "No"},
		},
	})
	require.Equal(t, http.StatusCreated, status, "body: %v", body)

	tree := fetchTree(t, app)
	require.Len(t, tree, 1)
	require.Len(t, tree[0].Chapters, 1)
	require.Len(t, tree[0].Chapters[0].Topics, 1)
	require.Len(t, tree[0].Chapters[0].Topics[0].Questions, 1)
	require.Len(t, tree[0].Chapters[0].Questions, 1)

	status, _ = doJSON(t, app, http.MethodDelete, "/api/admin/subjects/"+subjectID, nil)
	require.Equal(t, http.StatusOK, status)

	// tree snapshot is consistent with the store: nothing dangles
	require.Empty(t, fetchTree(t, app))

	var liveQuestions int64
	require.NoError(t, db.Table("questions").Where("deleted_at IS NULL").Count(&liveQuestions).Error)
	require.Zero(t, liveQuestions)

	// options are removed outright, not soft-deleted
	var optionRows int64
	require.NoError(t, db.Table("question_options").Count(&optionRows).Error)
	require.Zero(t, optionRows)
}

func TestChapterCascadeDeleteKeepsSiblings(t *testing.T) {
	app, _ := newContentApp(t)

	_, body := doJSON(t, app, http.MethodPost, "/api/admin/subjects", fiber.Map{"name": "Pharma"})
	subjectID := createdID(t, body)

	_, body = doJSON(t, app, http.MethodPost, "/api/admin/chapters", fiber.Map{
		"subject_id": subjectID, "name": "Doomed",
	})
	doomedID := createdID(t, body)

	_, body = doJSON(t, app, http.MethodPost, "/api/admin/chapters", fiber.Map{
		"subject_id": subjectID, "name": "Survivor",
	})
	survivorID := createdID(t, body)

	status, _ := doJSON(t, app, http.MethodDelete, "/api/admin/chapters/"+doomedID, nil)
	require.Equal(t, http.StatusOK, status)

	tree := fetchTree(t, app)
	require.Len(t, tree, 1)
	require.Len(t, tree[0].Chapters, 1)
	require.Equal(t, survivorID, tree[0].Chapters[0].ID.String())
}
