// file: internals/features/content/questions/controller/question_controller_test.go
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

	"medlearn_backend/internals/client"
	chapterRoute "medlearn_backend/internals/features/content/chapters/route"
	questionRoute "medlearn_backend/internals/features/content/questions/route"
	subjectDTO "medlearn_backend/internals/features/content/subjects/dto"
	subjectRoute "medlearn_backend/internals/features/content/subjects/route"
	topicRoute "medlearn_backend/internals/features/content/topics/route"
	"medlearn_backend/internals/testutil"
)

func newApp(t *testing.T) (*fiber.App, *gorm.DB) {
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

func request(t *testing.T, app *fiber.App, method, path string, body any) (int, map[string]any) {
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

func mustID(t *testing.T, body map[string]any) string {
	t.Helper()
	data, ok := body["data"].(map[string]any)
	require.True(t, ok, "missing data in %v", body)
	return data["id"].(string)
}

func seedHierarchy(t *testing.T, app *fiber.App, subject, chapter, topic string) (string, string, string) {
	t.Helper()
	_, body := request(t, app, http.MethodPost, "/api/admin/subjects", fiber.Map{"name": subject})
	subjectID := mustID(t, body)
	_, body = request(t, app, http.MethodPost, "/api/admin/chapters", fiber.Map{
		"subject_id": subjectID, "name": chapter,
	})
	chapterID := mustID(t, body)
	topicID := ""
	if topic != "" {
		_, body = request(t, app, http.MethodPost, "/api/admin/topics", fiber.Map{
			"chapter_id": chapterID, "name": topic,
		})
		topicID = mustID(t, body)
	}
	return subjectID, chapterID, topicID
}

func TestCreateQuestionRequiresTwoOptions(t *testing.T) {
	app, _ := newApp(t)
	subjectID, chapterID, _ := seedHierarchy(t, app, "Chem", "Acids", "")

	status, body := request(t, app, http.MethodPost, "/api/admin/questions", fiber.Map{
		"subject_id": subjectID, "chapter_id": chapterID,
		"question_text": "pH of water?",
		"options": []fiber.Map{
			{"option_key": "a", "content": "7"},
		},
	})
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, false, body["success"])

	// two keys but only one filled content counts as one option
	status, body = request(t, app, http.MethodPost, "/api/admin/questions", fiber.Map{
		"subject_id": subjectID, "chapter_id": chapterID,
		"question_text": "pH of water?",
		"options": []fiber.Map{
			{"option_key": "a", "content": "7"},
			{"option_key": "b", "content": ""},
		},
	})
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, false, body["success"])
}

func TestCreateQuestionCorrectKeyMustMatchOption(t *testing.T) {
	app, _ := newApp(t)
	subjectID, chapterID, _ := seedHierarchy(t, app, "Chem", "Acids", "")

	status, _ := request(t, app, http.MethodPost, "/api/admin/questions", fiber.Map{
		"subject_id": subjectID, "chapter_id": chapterID,
		"question_text": "pH of water?",
		"options": []fiber.Map{
			{"option_key": "a", "content": "7"},
			{"option_key": "b", "content": "1"},
		},
		"correct_key": "d",
	})
	require.Equal(t, http.StatusBadRequest, status)
}

func TestCreateQuestionRejectsForeignTopic(t *testing.T) {
	app, _ := newApp(t)
	subjectID, chapterID, _ := seedHierarchy(t, app, "Chem", "Acids", "")
	_, _, otherTopicID := seedHierarchy(t, app, "Physics", "Optics", "Lenses")

	status, _ := request(t, app, http.MethodPost, "/api/admin/questions", fiber.Map{
		"subject_id": subjectID, "chapter_id": chapterID, "topic_id": otherTopicID,
		"question_text": "Misfiled question?",
		"options": []fiber.Map{
			{"option_key": "a", "content": "Yes"},
			{"option_key": "b", "content": "No"},
		},
	})
	require.Equal(t, http.StatusBadRequest, status)
}

// Any edit through the admin form drops the question back to pending. Only
// the status endpoint approves or rejects.
func TestUpdateQuestionResetsStatus(t *testing.T) {
	app, _ := newApp(t)
	subjectID, chapterID, _ := seedHierarchy(t, app, "Chem", "Acids", "")

	_, body := request(t, app, http.MethodPost, "/api/admin/questions", fiber.Map{
		"subject_id": subjectID, "chapter_id": chapterID,
		"question_text": "pH of water?",
		"options": []fiber.Map{
			{"option_key": "a", "content": "7"},
			{"option_key": "b", "content": "1"},
		},
		"correct_key": "a",
	})
	questionID := mustID(t, body)

	status, body := request(t, app, http.MethodPut, "/api/admin/questions/"+questionID+"/status", fiber.Map{
		"status": "approved",
	})
	require.Equal(t, http.StatusOK, status)

	status, body = request(t, app, http.MethodGet, "/api/admin/questions/"+questionID, nil)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "approved", body["data"].(map[string]any)["status"])

	status, body = request(t, app, http.MethodPut, "/api/admin/questions/"+questionID, fiber.Map{
		"subject_id": subjectID, "chapter_id": chapterID,
		"question_text": "pH of pure water?",
		"options": []fiber.Map{
			{"option_key": "a", "content": "7"},
			{"option_key": "b", "content": "14"},
		},
		"correct_key": "a",
	})
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "pending", body["data"].(map[string]any)["status"])
}

func TestUpdateQuestionStatusRejectsUnknownValue(t *testing.T) {
	app, _ := newApp(t)
	subjectID, chapterID, _ := seedHierarchy(t, app, "Chem", "Acids", "")

	_, body := request(t, app, http.MethodPost, "/api/admin/questions", fiber.Map{
		"subject_id": subjectID, "chapter_id": chapterID,
		"question_text": "pH of water?",
		"options": []fiber.Map{
			{"option_key": "a", "content": "7"},
			{"option_key": "b", "content": "1"},
		},
	})
	questionID := mustID(t, body)

	status, _ := request(t, app, http.MethodPut, "/api/admin/questions/"+questionID+"/status", fiber.Map{
		"status": "published",
	})
	require.Equal(t, http.StatusBadRequest, status)
}

func loadTree(t *testing.T, app *fiber.App) []subjectDTO.SubjectNode {
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
	return out.Tree
}

// The full editorial walk-through: build Biology → Cell Biology → Mitosis,
// author a question, approve it, then delete the topic and watch the
// cascade leave the rest of the hierarchy alone.
func TestEditorialFlowEndToEnd(t *testing.T) {
	app, _ := newApp(t)
	subjectID, chapterID, topicID := seedHierarchy(t, app, "Biology", "Cell Biology", "Mitosis")

	status, body := request(t, app, http.MethodPost, "/api/admin/questions", fiber.Map{
		"subject_id": subjectID, "chapter_id": chapterID, "topic_id": topicID,
		"question_text": "In which phase do chromosomes align at the equator?",
		"options": []fiber.Map{
			{"option_key": "a", "content": "Prophase"},
			{"option_key": "b", "content": "Metaphase"},
			{"option_key": "c", "content": "Anaphase"},
			{"option_key": "d", "content": "Telophase"},
		},
		"correct_key": "b",
	})
	require.Equal(t, http.StatusCreated, status, "body: %v", body)
	questionID := mustID(t, body)
	require.Equal(t, "pending", body["data"].(map[string]any)["status"])

	tree := loadTree(t, app)
	require.Len(t, tree, 1)
	require.Equal(t, "Biology", tree[0].Name)
	require.Len(t, tree[0].Chapters, 1)
	require.Len(t, tree[0].Chapters[0].Topics, 1)
	questions := tree[0].Chapters[0].Topics[0].Questions
	require.Len(t, questions, 1)
	require.Equal(t, questionID, questions[0].ID.String())
	require.Len(t, questions[0].Options, 4)

	status, _ = request(t, app, http.MethodPut, "/api/admin/questions/"+questionID+"/status", fiber.Map{
		"status": "approved",
	})
	require.Equal(t, http.StatusOK, status)

	tree = loadTree(t, app)
	require.Equal(t, "approved", string(tree[0].Chapters[0].Topics[0].Questions[0].Status))

	// deleting the topic takes its questions with it, nothing else
	status, _ = request(t, app, http.MethodDelete, "/api/admin/topics/"+topicID, nil)
	require.Equal(t, http.StatusOK, status)

	tree = loadTree(t, app)
	require.Len(t, tree, 1)
	require.Len(t, tree[0].Chapters, 1)
	require.Empty(t, tree[0].Chapters[0].Topics)
	require.Empty(t, tree[0].Chapters[0].Questions)

	status, _ = request(t, app, http.MethodGet, "/api/admin/questions/"+questionID, nil)
	require.Equal(t, http.StatusNotFound, status)
}

// Editing through the dashboard form sends the full object back, so the
// generated explanation and the uploaded image must survive the round trip.
func TestEditThroughFormKeepsGeneratedFields(t *testing.T) {
	app, _ := newApp(t)
	subjectID, chapterID, _ := seedHierarchy(t, app, "Chem", "Acids", "")

	_, body := request(t, app, http.MethodPost, "/api/admin/questions", fiber.Map{
		"subject_id": subjectID, "chapter_id": chapterID,
		"question_text": "pH of pure water at 25C?",
		"explanation":   "Water autoionizes; at 25C the pH is 7.",
		"image_url":     "https://bucket.example/questions/images/ph.webp",
		"correct_key":   "a",
		"options": []fiber.Map{
			{"option_key": "a", "content": "7"},
			{"option_key": "b", "content": "14"},
		},
	})
	questionID := mustID(t, body)

	// seed the edit form from the stored record
	status, body := request(t, app, http.MethodGet, "/api/admin/questions/"+questionID, nil)
	require.Equal(t, http.StatusOK, status)
	raw, err := json.Marshal(body["data"])
	require.NoError(t, err)
	var snapshot client.TreeQuestion
	require.NoError(t, json.Unmarshal(raw, &snapshot))

	form := client.QuestionFormFromTree(snapshot)
	form.QuestionText = "pH of pure water at 25 degrees C?"

	// PUT exactly what FormController.Submit would send
	status, body = request(t, app, http.MethodPut, "/api/admin/questions/"+questionID, form)
	require.Equal(t, http.StatusOK, status, "body: %v", body)

	data := body["data"].(map[string]any)
	require.Equal(t, "pH of pure water at 25 degrees C?", data["question_text"])
	require.Equal(t, "Water autoionizes; at 25C the pH is 7.", data["explanation"])
	require.Equal(t, "https://bucket.example/questions/images/ph.webp", data["image_url"])
	require.Equal(t, "pending", data["status"])
}
