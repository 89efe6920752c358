// file: internals/features/content/subjects/dto/tree_dto.go
package dto

import (
	"github.com/google/uuid"

	chapterModel "medlearn_backend/internals/features/content/chapters/model"
	questionModel "medlearn_backend/internals/features/content/questions/model"
	subjectModel "medlearn_backend/internals/features/content/subjects/model"
	topicModel "medlearn_backend/internals/features/content/topics/model"
)

/* =========================================================
   TREE (GET /api/admin/subjects/tree)
   Full snapshot of the hierarchy; the dashboard refetches it
   wholesale after every mutation.
========================================================= */

type QuestionNode struct {
	ID           uuid.UUID                           `json:"id"`
	SubjectID    uuid.UUID                           `json:"subject_id"`
	ChapterID    uuid.UUID                           `json:"chapter_id"`
	TopicID      *uuid.UUID                          `json:"topic_id,omitempty"`
	QuestionText string                              `json:"question_text"`
	Explanation  *string                             `json:"explanation,omitempty"`
	ImageURL     *string                             `json:"image_url,omitempty"`
	Status       questionModel.QuestionStatus        `json:"status"`
	CorrectKey   *string                             `json:"correct_key,omitempty"`
	FemaleAudio  *string                             `json:"female_explanation_audio_url,omitempty"`
	MaleAudio    *string                             `json:"male_explanation_audio_url,omitempty"`
	Options      []questionModel.QuestionOptionModel `json:"question_options"`
}

type TopicNode struct {
	ID          uuid.UUID      `json:"id"`
	ChapterID   uuid.UUID      `json:"chapter_id"`
	Name        string         `json:"name"`
	Description *string        `json:"description,omitempty"`
	Questions   []QuestionNode `json:"questions"`
}

type ChapterNode struct {
	ID          uuid.UUID      `json:"id"`
	SubjectID   uuid.UUID      `json:"subject_id"`
	Name        string         `json:"name"`
	Description *string        `json:"description,omitempty"`
	Questions   []QuestionNode `json:"questions"` // direct questions (topic_id null)
	Topics      []TopicNode    `json:"topics"`
}

type SubjectNode struct {
	ID          uuid.UUID     `json:"id"`
	Name        string        `json:"name"`
	Description *string       `json:"description,omitempty"`
	Chapters    []ChapterNode `json:"chapters"`
}

func NewQuestionNode(q questionModel.QuestionModel) QuestionNode {
	opts := q.Options
	if opts == nil {
		opts = []questionModel.QuestionOptionModel{}
	}
	return QuestionNode{
		ID:           q.ID,
		SubjectID:    q.SubjectID,
		ChapterID:    q.ChapterID,
		TopicID:      q.TopicID,
		QuestionText: q.QuestionText,
		Explanation:  q.Explanation,
		ImageURL:     q.ImageURL,
		Status:       q.Status,
		CorrectKey:   q.CorrectKey,
		FemaleAudio:  q.FemaleExplanationAudioURL,
		MaleAudio:    q.MaleExplanationAudioURL,
		Options:      opts,
	}
}

// BuildTree assembles the nested snapshot from flat, already-filtered rows.
// Empty child sets stay as empty arrays, never null, so the client can index
// blindly.
func BuildTree(
	subjects []subjectModel.SubjectModel,
	chapters []chapterModel.ChapterModel,
	topics []topicModel.TopicModel,
	questions []questionModel.QuestionModel,
) []SubjectNode {
	topicNodes := make(map[uuid.UUID]*TopicNode, len(topics))
	topicsByChapter := make(map[uuid.UUID][]uuid.UUID)
	for _, t := range topics {
		topicNodes[t.ID] = &TopicNode{
			ID:          t.ID,
			ChapterID:   t.ChapterID,
			Name:        t.Name,
			Description: t.Description,
			Questions:   []QuestionNode{},
		}
		topicsByChapter[t.ChapterID] = append(topicsByChapter[t.ChapterID], t.ID)
	}

	chapterNodes := make(map[uuid.UUID]*ChapterNode, len(chapters))
	chaptersBySubject := make(map[uuid.UUID][]uuid.UUID)
	for _, ch := range chapters {
		chapterNodes[ch.ID] = &ChapterNode{
			ID:          ch.ID,
			SubjectID:   ch.SubjectID,
			Name:        ch.Name,
			Description: ch.Description,
			Questions:   []QuestionNode{},
			Topics:      []TopicNode{},
		}
		chaptersBySubject[ch.SubjectID] = append(chaptersBySubject[ch.SubjectID], ch.ID)
	}

	for _, q := range questions {
		node := NewQuestionNode(q)
		if q.TopicID != nil {
			if tn, ok := topicNodes[*q.TopicID]; ok {
				tn.Questions = append(tn.Questions, node)
			}
			continue
		}
		if cn, ok := chapterNodes[q.ChapterID]; ok {
			cn.Questions = append(cn.Questions, node)
		}
	}

	for chID, ids := range topicsByChapter {
		cn, ok := chapterNodes[chID]
		if !ok {
			continue
		}
		for _, tid := range ids {
			cn.Topics = append(cn.Topics, *topicNodes[tid])
		}
	}

	out := make([]SubjectNode, 0, len(subjects))
	for _, s := range subjects {
		sn := SubjectNode{
			ID:          s.ID,
			Name:        s.Name,
			Description: s.Description,
			Chapters:    []ChapterNode{},
		}
		for _, chID := range chaptersBySubject[s.ID] {
			sn.Chapters = append(sn.Chapters, *chapterNodes[chID])
		}
		out = append(out, sn)
	}
	return out
}
