// file: internals/client/forms_test.go
package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

// countingServer answers every request with a success envelope and counts
// the requests it saw.
func countingServer(t *testing.T) (*httptest.Server, *atomic.Int64) {
	t.Helper()
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{"success":true,"message":"ok","data":{"id":"x"}}`))
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

// reentrantTripper serves canned envelopes and, on the first request,
// re-invokes the form's Submit from inside the round trip, mimicking a
// second click landing while the first request is still in flight.
type reentrantTripper struct {
	form   *FormController[SubjectForm]
	calls  int
	reErr  error
	reDone bool
}

func (rt *reentrantTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	rt.calls++
	if !rt.reDone {
		rt.reDone = true
		rt.reErr = rt.form.Submit(req.Context())
	}
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(`{"success":true,"message":"ok"}`)),
		Header:     make(http.Header),
		Request:    req,
	}, nil
}

func TestValidationFailureMakesNoRequest(t *testing.T) {
	srv, calls := countingServer(t)
	gw := NewGateway(srv.URL, "tok")
	ctx := context.Background()

	form := NewSubjectForm(gw, AlwaysConfirm)
	form.Open(ModeCreate, nil, "")
	form.Fields.Name = ""

	err := form.Submit(ctx)
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "name", verr.Field)
	require.Zero(t, calls.Load(), "client-side rejection must not reach the network")
	require.True(t, form.IsOpen(), "form stays open after a failed submit")

	// fixing the field makes the same submit succeed
	form.Fields.Name = "Anatomy"
	require.NoError(t, form.Submit(ctx))
	require.Equal(t, int64(1), calls.Load())
	require.False(t, form.IsOpen())
}

func TestQuestionFormDefaultsAndValidation(t *testing.T) {
	srv, calls := countingServer(t)
	form := NewQuestionForm(NewGateway(srv.URL, "tok"), AlwaysConfirm)

	form.Open(ModeCreate, nil, "")
	require.Len(t, form.Fields.Options, 4)
	require.Equal(t, []string{"a", "b", "c", "d"}, []string{
		form.Fields.Options[0].OptionKey,
		form.Fields.Options[1].OptionKey,
		form.Fields.Options[2].OptionKey,
		form.Fields.Options[3].OptionKey,
	})

	form.Fields.SubjectID = "s1"
	form.Fields.ChapterID = "c1"
	form.Fields.QuestionText = "Only one answer filled?"
	form.Fields.Options[0].Content = "yes"

	err := form.Submit(context.Background())
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "question_options", verr.Field)
	require.Zero(t, calls.Load())

	form.Fields.Options[1].Content = "no"
	form.Fields.CorrectKey = "c"
	err = form.Submit(context.Background())
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "correct_key", verr.Field)
	require.Zero(t, calls.Load())

	form.Fields.CorrectKey = "a"
	require.NoError(t, form.Submit(context.Background()))
	require.Equal(t, int64(1), calls.Load())
}

func TestPlanFormDefaults(t *testing.T) {
	srv, _ := countingServer(t)
	form := NewPlanForm(NewGateway(srv.URL, "tok"), AlwaysConfirm)

	form.Open(ModeCreate, nil, "")
	require.Equal(t, map[string]bool{
		"question_bank":  true,
		"explanations":   true,
		"audio_playback": false,
		"progress_stats": false,
		"offline_access": false,
	}, form.Fields.AccessFeatures)

	form.Fields.Name = "Premium"
	form.Fields.DurationDays = 0
	err := form.Submit(context.Background())
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "duration_days", verr.Field)
}

func TestUserFormPasswordRules(t *testing.T) {
	srv, calls := countingServer(t)
	gw := NewGateway(srv.URL, "tok")
	ctx := context.Background()

	form := NewUserForm(gw, AlwaysConfirm)

	// create: password mandatory
	form.Open(ModeCreate, nil, "")
	form.Fields.Name = "A User"
	form.Fields.Email = "a@example.com"
	err := form.Submit(ctx)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "password", verr.Field)
	require.Zero(t, calls.Load())

	form.Fields.Password = "secret1"
	require.NoError(t, form.Submit(ctx))

	// edit: blank password means "keep current one"
	form.Open(ModeEdit, &UserForm{Name: "A User", Email: "a@example.com"}, "u1")
	require.NoError(t, form.Submit(ctx))

	// but a provided password is still length-checked
	form.Open(ModeEdit, &UserForm{Name: "A User", Email: "a@example.com", Password: "abc"}, "u1")
	err = form.Submit(ctx)
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "password", verr.Field)
}

func TestTestimonialMessageLength(t *testing.T) {
	srv, calls := countingServer(t)
	form := NewTestimonialForm(NewGateway(srv.URL, "tok"), AlwaysConfirm)

	form.Open(ModeCreate, nil, "")
	form.Fields.Name = "Happy Student"
	form.Fields.Message = "too short"

	err := form.Submit(context.Background())
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "message", verr.Field)
	require.Zero(t, calls.Load())
}

// Rapid double submit issues exactly one request; the second call is a
// no-op while the first is in flight.
func TestDoubleSubmitIsNoOp(t *testing.T) {
	gw := NewGateway("http://forms.test", "tok")
	form := NewSubjectForm(gw, AlwaysConfirm)
	rt := &reentrantTripper{form: form}
	gw.HTTP = &http.Client{Transport: rt}

	form.Open(ModeCreate, nil, "")
	form.Fields.Name = "Anatomy"

	require.NoError(t, form.Submit(context.Background()))
	require.NoError(t, rt.reErr, "in-flight second submit must be a silent no-op")
	require.Equal(t, 1, rt.calls)
	require.False(t, form.IsSubmitting())
	require.False(t, form.IsOpen())
}

func TestServerRejectionKeepsFormOpen(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"success":false,"message":"Subject name already exists"}`))
	}))
	t.Cleanup(srv.Close)

	form := NewSubjectForm(NewGateway(srv.URL, "tok"), AlwaysConfirm)
	form.Open(ModeCreate, nil, "")
	form.Fields.Name = "Anatomy"

	err := form.Submit(context.Background())
	var gwErr *GatewayError
	require.ErrorAs(t, err, &gwErr)
	require.Equal(t, "Subject name already exists", gwErr.Message)

	require.True(t, form.IsOpen())
	require.Equal(t, "Anatomy", form.Fields.Name, "entered values survive a rejection")
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	srv, calls := countingServer(t)
	gw := NewGateway(srv.URL, "tok")
	ctx := context.Background()

	declined := NewSubjectForm(gw, ConfirmFunc(func(string) bool { return false }))
	err := declined.Delete(ctx, "s1")
	require.ErrorIs(t, err, ErrNotConfirmed)
	require.Zero(t, calls.Load(), "declined confirmation must not delete")

	var prompt string
	accepting := NewSubjectForm(gw, ConfirmFunc(func(p string) bool {
		prompt = p
		return true
	}))
	require.NoError(t, accepting.Delete(ctx, "s1"))
	require.Equal(t, int64(1), calls.Load())
	require.Contains(t, prompt, "subject", "prompt names the entity type")
}

func TestEditModeSeedsFromInitial(t *testing.T) {
	srv, _ := countingServer(t)
	form := NewPlanForm(NewGateway(srv.URL, "tok"), AlwaysConfirm)

	initial := PlanForm{
		Name:         "Basic",
		Price:        99000,
		DurationDays: 30,
		DeviceLimit:  2,
		AccessFeatures: map[string]bool{
			"question_bank": true,
		},
	}
	form.Open(ModeEdit, &initial, "p1")
	require.Equal(t, ModeEdit, form.Mode())
	require.Equal(t, "Basic", form.Fields.Name)
	require.Equal(t, float64(99000), form.Fields.Price)
}

// The edit payload must carry the generated fields back unchanged, or a
// plain text edit would wipe the doctor's explanation and the image.
func TestQuestionEditCarriesGeneratedFields(t *testing.T) {
	var captured []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{"success":true,"message":"ok"}`))
	}))
	t.Cleanup(srv.Close)

	explanation := "Water autoionizes; at 25C the pH is 7."
	image := "https://bucket.example/questions/images/ph.webp"
	correct := "a"
	snapshot := TreeQuestion{
		ID:           "q1",
		SubjectID:    "s1",
		ChapterID:    "c1",
		QuestionText: "pH of pure water?",
		Explanation:  &explanation,
		ImageURL:     &image,
		Status:       "approved",
		CorrectKey:   &correct,
		Options: []TreeOption{
			{OptionKey: "a", Content: "7"},
			{OptionKey: "b", Content: "14"},
		},
	}

	form := NewQuestionForm(NewGateway(srv.URL, "tok"), AlwaysConfirm)
	initial := QuestionFormFromTree(snapshot)
	form.Open(ModeEdit, &initial, "q1")
	form.Fields.QuestionText = "pH of pure water at 25C?"
	require.NoError(t, form.Submit(context.Background()))

	var sent map[string]any
	require.NoError(t, json.Unmarshal(captured, &sent))
	require.Equal(t, explanation, sent["explanation"])
	require.Equal(t, image, sent["image_url"])
	require.Equal(t, "pending", sent["status"], "edits always go back through review")
	require.Equal(t, "pH of pure water at 25C?", sent["question_text"])
	require.Len(t, sent["options"].([]any), 2)
}

func TestQuestionCreatePayloadHasNullGeneratedFields(t *testing.T) {
	var captured []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{"success":true,"message":"ok"}`))
	}))
	t.Cleanup(srv.Close)

	form := NewQuestionForm(NewGateway(srv.URL, "tok"), AlwaysConfirm)
	form.Open(ModeCreate, nil, "")
	form.Fields.SubjectID = "s1"
	form.Fields.ChapterID = "c1"
	form.Fields.QuestionText = "2+2?"
	form.Fields.Options[0].Content = "4"
	form.Fields.Options[1].Content = "5"
	require.NoError(t, form.Submit(context.Background()))

	var sent map[string]any
	require.NoError(t, json.Unmarshal(captured, &sent))
	require.Contains(t, sent, "explanation")
	require.Nil(t, sent["explanation"])
	require.Contains(t, sent, "image_url")
	require.Nil(t, sent["image_url"])
	require.Equal(t, "pending", sent["status"])
}

func TestOnSuccessRunsAfterAcceptedSubmitOnly(t *testing.T) {
	srv, _ := countingServer(t)
	form := NewSubjectForm(NewGateway(srv.URL, "tok"), AlwaysConfirm)

	reloads := 0
	form.OnSuccess(func() { reloads++ })

	// validation failure: no request, no reload
	form.Open(ModeCreate, nil, "")
	require.Error(t, form.Submit(context.Background()))
	require.Zero(t, reloads)

	form.Fields.Name = "Anatomy"
	require.NoError(t, form.Submit(context.Background()))
	require.Equal(t, 1, reloads)
	require.False(t, form.IsOpen(), "form is already closed when the reload hook runs")
}

func TestOnSuccessSkippedOnServerRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"success":false,"message":"duplicate"}`))
	}))
	t.Cleanup(srv.Close)

	form := NewSubjectForm(NewGateway(srv.URL, "tok"), AlwaysConfirm)
	reloads := 0
	form.OnSuccess(func() { reloads++ })

	form.Open(ModeCreate, nil, "")
	form.Fields.Name = "Anatomy"
	require.Error(t, form.Submit(context.Background()))
	require.Zero(t, reloads)
	require.True(t, form.IsOpen())
}
