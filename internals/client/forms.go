// file: internals/client/forms.go
package client

import (
	"context"
	"net/http"
)

type FormMode int

const (
	ModeCreate FormMode = iota
	ModeEdit
)

// FormController is the create/edit state machine shared by every entity
// form. A controller is closed until Open, validates synchronously before
// any request, and refuses re-entry while a submit is in flight.
type FormController[T any] struct {
	gw        *Gateway
	entity    string
	path      string
	defaults  func() T
	validate  func(fields T, mode FormMode) *ValidationError
	confirmer Confirmer

	open       bool
	mode       FormMode
	editID     string
	submitting bool
	onSuccess  func()

	Fields T
}

func newFormController[T any](
	gw *Gateway,
	entity, path string,
	defaults func() T,
	validate func(T, FormMode) *ValidationError,
	confirmer Confirmer,
) *FormController[T] {
	return &FormController[T]{
		gw:        gw,
		entity:    entity,
		path:      path,
		defaults:  defaults,
		validate:  validate,
		confirmer: confirmer,
	}
}

// Open seeds the form. Create mode starts from entity defaults; edit mode
// copies the existing record and remembers its id for the PUT.
func (f *FormController[T]) Open(mode FormMode, initial *T, editID string) {
	f.open = true
	f.mode = mode
	f.submitting = false
	if mode == ModeEdit && initial != nil {
		f.Fields = *initial
		f.editID = editID
	} else {
		f.Fields = f.defaults()
		f.editID = ""
	}
}

func (f *FormController[T]) Close() {
	f.open = false
	f.submitting = false
}

func (f *FormController[T]) IsOpen() bool       { return f.open }
func (f *FormController[T]) IsSubmitting() bool { return f.submitting }
func (f *FormController[T]) Mode() FormMode     { return f.mode }

// OnSuccess registers a callback run after every accepted submit, once the
// form has closed. The dashboard wires TreeStore.InvalidateAndReload here so
// a saved record shows up in the tree immediately.
func (f *FormController[T]) OnSuccess(fn func()) { f.onSuccess = fn }

// Submit validates and issues exactly one POST (create) or PUT (edit).
// Validation failure aborts before any request. A submit while one is
// already in flight is a no-op. On success the form closes; on server
// rejection it stays open with the entered values intact.
func (f *FormController[T]) Submit(ctx context.Context) error {
	if !f.open || f.submitting {
		return nil
	}
	if f.validate != nil {
		if verr := f.validate(f.Fields, f.mode); verr != nil {
			return verr
		}
	}

	f.submitting = true
	defer func() { f.submitting = false }()

	method, path := http.MethodPost, f.path
	if f.mode == ModeEdit {
		method, path = http.MethodPut, f.path+"/"+f.editID
	}
	if err := f.gw.Do(ctx, method, path, f.Fields, nil); err != nil {
		return err
	}

	f.open = false
	if f.onSuccess != nil {
		f.onSuccess()
	}
	return nil
}

// Delete asks the confirmer first; a dismissed prompt issues no request.
func (f *FormController[T]) Delete(ctx context.Context, id string) error {
	if f.confirmer == nil || !f.confirmer.Confirm("Delete this "+f.entity+"?") {
		return ErrNotConfirmed
	}
	return f.gw.Do(ctx, http.MethodDelete, f.path+"/"+id, nil, nil)
}

/* =========================================================
   Entity form payloads + defaults + validation rules
========================================================= */

type SubjectForm struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func NewSubjectForm(gw *Gateway, confirmer Confirmer) *FormController[SubjectForm] {
	return newFormController(gw, "subject", "/api/admin/subjects",
		func() SubjectForm { return SubjectForm{} },
		func(f SubjectForm, _ FormMode) *ValidationError {
			if f.Name == "" {
				return &ValidationError{Field: "name", Message: "name is required"}
			}
			return nil
		}, confirmer)
}

type ChapterForm struct {
	SubjectID   string `json:"subject_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func NewChapterForm(gw *Gateway, confirmer Confirmer) *FormController[ChapterForm] {
	return newFormController(gw, "chapter", "/api/admin/chapters",
		func() ChapterForm { return ChapterForm{} },
		func(f ChapterForm, _ FormMode) *ValidationError {
			if f.SubjectID == "" {
				return &ValidationError{Field: "subject_id", Message: "parent subject is required"}
			}
			if f.Name == "" {
				return &ValidationError{Field: "name", Message: "name is required"}
			}
			return nil
		}, confirmer)
}

type TopicForm struct {
	ChapterID   string `json:"chapter_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func NewTopicForm(gw *Gateway, confirmer Confirmer) *FormController[TopicForm] {
	return newFormController(gw, "topic", "/api/admin/topics",
		func() TopicForm { return TopicForm{} },
		func(f TopicForm, _ FormMode) *ValidationError {
			if f.ChapterID == "" {
				return &ValidationError{Field: "chapter_id", Message: "parent chapter is required"}
			}
			if f.Name == "" {
				return &ValidationError{Field: "name", Message: "name is required"}
			}
			return nil
		}, confirmer)
}

type OptionForm struct {
	OptionKey string `json:"option_key"`
	Content   string `json:"content"`
}

// QuestionForm submits the full object on create and edit. Explanation and
// ImageURL ride along unchanged so an edit never wipes the generated
// explanation or the uploaded image; Status always goes up as "pending",
// since only the status endpoint approves or rejects.
type QuestionForm struct {
	SubjectID    string       `json:"subject_id"`
	ChapterID    string       `json:"chapter_id"`
	TopicID      *string      `json:"topic_id,omitempty"`
	QuestionText string       `json:"question_text"`
	Explanation  *string      `json:"explanation"`
	ImageURL     *string      `json:"image_url"`
	Status       string       `json:"status"`
	Options      []OptionForm `json:"options"`
	CorrectKey   string       `json:"correct_key,omitempty"`
}

// A fresh question form starts with four empty lettered options.
func defaultQuestionForm() QuestionForm {
	return QuestionForm{
		Status: "pending",
		Options: []OptionForm{
			{OptionKey: "a"}, {OptionKey: "b"}, {OptionKey: "c"}, {OptionKey: "d"},
		},
	}
}

// QuestionFormFromTree seeds an edit form from a tree snapshot row. Every
// persisted field is carried over, with status reset to pending for the
// round trip.
func QuestionFormFromTree(q TreeQuestion) QuestionForm {
	f := QuestionForm{
		SubjectID:    q.SubjectID,
		ChapterID:    q.ChapterID,
		TopicID:      q.TopicID,
		QuestionText: q.QuestionText,
		Explanation:  q.Explanation,
		ImageURL:     q.ImageURL,
		Status:       "pending",
	}
	if q.CorrectKey != nil {
		f.CorrectKey = *q.CorrectKey
	}
	for _, op := range q.Options {
		f.Options = append(f.Options, OptionForm{OptionKey: op.OptionKey, Content: op.Content})
	}
	return f
}

func validateQuestionForm(f QuestionForm, _ FormMode) *ValidationError {
	if f.SubjectID == "" {
		return &ValidationError{Field: "subject_id", Message: "subject is required"}
	}
	if f.ChapterID == "" {
		return &ValidationError{Field: "chapter_id", Message: "chapter is required"}
	}
	if f.QuestionText == "" {
		return &ValidationError{Field: "question_text", Message: "question text is required"}
	}
	filled := 0
	for _, op := range f.Options {
		if op.Content != "" {
			filled++
		}
	}
	if filled < 2 {
		return &ValidationError{Field: "question_options", Message: "at least 2 options are required"}
	}
	if f.CorrectKey != "" {
		found := false
		for _, op := range f.Options {
			if op.Content != "" && op.OptionKey == f.CorrectKey {
				found = true
				break
			}
		}
		if !found {
			return &ValidationError{Field: "correct_key", Message: "correct answer must match a filled option"}
		}
	}
	return nil
}

func NewQuestionForm(gw *Gateway, confirmer Confirmer) *FormController[QuestionForm] {
	return newFormController(gw, "question", "/api/admin/questions",
		defaultQuestionForm, validateQuestionForm, confirmer)
}

type PlanForm struct {
	Name           string          `json:"name"`
	Description    string          `json:"description,omitempty"`
	Price          float64         `json:"price"`
	DurationDays   int             `json:"duration_days"`
	DeviceLimit    int             `json:"device_limit"`
	AccessFeatures map[string]bool `json:"access_features"`
	IsActive       *bool           `json:"is_active,omitempty"`
}

// defaultPlanForm seeds the fixed feature map every new plan starts from.
func defaultPlanForm() PlanForm {
	return PlanForm{
		DurationDays: 30,
		DeviceLimit:  1,
		AccessFeatures: map[string]bool{
			"question_bank":  true,
			"explanations":   true,
			"audio_playback": false,
			"progress_stats": false,
			"offline_access": false,
		},
	}
}

func validatePlanForm(f PlanForm, _ FormMode) *ValidationError {
	if f.Name == "" {
		return &ValidationError{Field: "name", Message: "name is required"}
	}
	if f.Price < 0 {
		return &ValidationError{Field: "price", Message: "price must not be negative"}
	}
	if f.DurationDays <= 0 {
		return &ValidationError{Field: "duration_days", Message: "duration must be a positive integer"}
	}
	if f.DeviceLimit <= 0 {
		return &ValidationError{Field: "device_limit", Message: "device limit must be a positive integer"}
	}
	return nil
}

func NewPlanForm(gw *Gateway, confirmer Confirmer) *FormController[PlanForm] {
	return newFormController(gw, "plan", "/api/admin/plans",
		defaultPlanForm, validatePlanForm, confirmer)
}

type AddonForm struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	FeatureKey  string  `json:"feature_key"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

func NewAddonForm(gw *Gateway, confirmer Confirmer) *FormController[AddonForm] {
	return newFormController(gw, "addon", "/api/admin/addons",
		func() AddonForm { return AddonForm{} },
		func(f AddonForm, _ FormMode) *ValidationError {
			if f.Name == "" {
				return &ValidationError{Field: "name", Message: "name is required"}
			}
			if f.Price < 0 {
				return &ValidationError{Field: "price", Message: "price must not be negative"}
			}
			if f.FeatureKey == "" {
				return &ValidationError{Field: "feature_key", Message: "feature key is required"}
			}
			return nil
		}, confirmer)
}

type TestimonialForm struct {
	Name        string `json:"name"`
	Title       string `json:"title,omitempty"`
	Message     string `json:"message"`
	Rating      int    `json:"rating,omitempty"`
	IsPublished *bool  `json:"is_published,omitempty"`
}

func NewTestimonialForm(gw *Gateway, confirmer Confirmer) *FormController[TestimonialForm] {
	return newFormController(gw, "testimonial", "/api/admin/testimonials",
		func() TestimonialForm { return TestimonialForm{} },
		func(f TestimonialForm, _ FormMode) *ValidationError {
			if f.Name == "" {
				return &ValidationError{Field: "name", Message: "name is required"}
			}
			if len(f.Message) < 10 {
				return &ValidationError{Field: "message", Message: "message must be at least 10 characters"}
			}
			return nil
		}, confirmer)
}

type UserForm struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role,omitempty"`
	IsActive *bool  `json:"is_active,omitempty"`
}

func validateUserForm(f UserForm, mode FormMode) *ValidationError {
	if f.Name == "" {
		return &ValidationError{Field: "name", Message: "name is required"}
	}
	if !emailPattern.MatchString(f.Email) {
		return &ValidationError{Field: "email", Message: "invalid email format"}
	}
	if f.Phone != "" && !phonePattern.MatchString(f.Phone) {
		return &ValidationError{Field: "phone", Message: "invalid phone format"}
	}
	// Password is mandatory on create, optional on edit.
	if mode == ModeCreate && len(f.Password) < 6 {
		return &ValidationError{Field: "password", Message: "password must be at least 6 characters"}
	}
	if mode == ModeEdit && f.Password != "" && len(f.Password) < 6 {
		return &ValidationError{Field: "password", Message: "password must be at least 6 characters"}
	}
	return nil
}

func NewUserForm(gw *Gateway, confirmer Confirmer) *FormController[UserForm] {
	return newFormController(gw, "user", "/api/admin/users",
		func() UserForm { return UserForm{} }, validateUserForm, confirmer)
}

type DoctorForm struct {
	UserID         *string `json:"user_id,omitempty"`
	Name           string  `json:"name"`
	Specialization string  `json:"specialization,omitempty"`
	Bio            string  `json:"bio,omitempty"`
	Email          string  `json:"email,omitempty"`
	PhotoURL       string  `json:"photo_url,omitempty"`
	IsActive       *bool   `json:"is_active,omitempty"`
}

func NewDoctorForm(gw *Gateway, confirmer Confirmer) *FormController[DoctorForm] {
	return newFormController(gw, "doctor", "/api/admin/doctors",
		func() DoctorForm { return DoctorForm{} },
		func(f DoctorForm, _ FormMode) *ValidationError {
			if f.Name == "" {
				return &ValidationError{Field: "name", Message: "name is required"}
			}
			if f.Email != "" && !emailPattern.MatchString(f.Email) {
				return &ValidationError{Field: "email", Message: "invalid email format"}
			}
			return nil
		}, confirmer)
}
