// file: internals/client/tree.go
package client

import (
	"context"
)

/* =========================================================
   Tree snapshot types (mirror of GET /api/admin/subjects/tree)
========================================================= */

type TreeOption struct {
	OptionKey string `json:"option_key"`
	Content   string `json:"content"`
}

type TreeQuestion struct {
	ID           string       `json:"id"`
	SubjectID    string       `json:"subject_id"`
	ChapterID    string       `json:"chapter_id"`
	TopicID      *string      `json:"topic_id,omitempty"`
	QuestionText string       `json:"question_text"`
	Explanation  *string      `json:"explanation,omitempty"`
	ImageURL     *string      `json:"image_url,omitempty"`
	Status       string       `json:"status"`
	CorrectKey   *string      `json:"correct_key,omitempty"`
	FemaleAudio  *string      `json:"female_explanation_audio_url,omitempty"`
	MaleAudio    *string      `json:"male_explanation_audio_url,omitempty"`
	Options      []TreeOption `json:"question_options"`
}

type TreeTopic struct {
	ID        string         `json:"id"`
	ChapterID string         `json:"chapter_id"`
	Name      string         `json:"name"`
	Questions []TreeQuestion `json:"questions"`
}

type TreeChapter struct {
	ID        string         `json:"id"`
	SubjectID string         `json:"subject_id"`
	Name      string         `json:"name"`
	Questions []TreeQuestion `json:"questions"`
	Topics    []TreeTopic    `json:"topics"`
}

type TreeSubject struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Chapters []TreeChapter `json:"chapters"`
}

// QuestionKey builds the expansion-map key for a question row. Question keys
// are prefixed so they never collide with subject/chapter/topic ids.
func QuestionKey(questionID string) string {
	return "q-" + questionID
}

/* =========================================================
   TreeStore
========================================================= */

// TreeStore holds the latest full hierarchy snapshot plus the expansion
// state of the tree view. Expansion is tracked apart from the snapshot, so a
// reload never collapses what the user opened.
type TreeStore struct {
	gw       *Gateway
	subjects []TreeSubject
	loaded   bool
	expanded map[string]bool
}

func NewTreeStore(gw *Gateway) *TreeStore {
	return &TreeStore{
		gw:       gw,
		expanded: map[string]bool{},
	}
}

// LoadTree fetches the whole hierarchy in one request. On failure the
// previous snapshot stays in place and the error is returned for the caller
// to surface; there is no automatic retry.
func (s *TreeStore) LoadTree(ctx context.Context) error {
	var next []TreeSubject
	if err := s.gw.FetchTree(ctx, &next); err != nil {
		return err
	}
	if next == nil {
		next = []TreeSubject{}
	}
	s.subjects = next
	s.loaded = true
	return nil
}

// InvalidateAndReload is the post-mutation refresh: always a full refetch,
// never a local patch of the snapshot.
func (s *TreeStore) InvalidateAndReload(ctx context.Context) error {
	return s.LoadTree(ctx)
}

// Subjects returns the current snapshot. Empty until the first successful
// load.
func (s *TreeStore) Subjects() []TreeSubject {
	if s.subjects == nil {
		return []TreeSubject{}
	}
	return s.subjects
}

func (s *TreeStore) Loaded() bool { return s.loaded }

// Toggle flips the expansion state of a node key. Only explicit toggles
// mutate the expansion map.
func (s *TreeStore) Toggle(key string) {
	s.expanded[key] = !s.expanded[key]
}

func (s *TreeStore) IsExpanded(key string) bool {
	return s.expanded[key]
}

// ExpandedKeys snapshots the keys currently open, for assertions and for
// persisting view state.
func (s *TreeStore) ExpandedKeys() []string {
	keys := make([]string, 0, len(s.expanded))
	for k, v := range s.expanded {
		if v {
			keys = append(keys, k)
		}
	}
	return keys
}

// FindQuestion walks the snapshot for a question id, checking both direct
// chapter questions and topic questions.
func (s *TreeStore) FindQuestion(questionID string) *TreeQuestion {
	for si := range s.subjects {
		for ci := range s.subjects[si].Chapters {
			ch := &s.subjects[si].Chapters[ci]
			for qi := range ch.Questions {
				if ch.Questions[qi].ID == questionID {
					return &ch.Questions[qi]
				}
			}
			for ti := range ch.Topics {
				t := &ch.Topics[ti]
				for qi := range t.Questions {
					if t.Questions[qi].ID == questionID {
						return &t.Questions[qi]
					}
				}
			}
		}
	}
	return nil
}
