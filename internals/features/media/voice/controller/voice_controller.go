// file: internals/features/media/voice/controller/voice_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	questionModel "medlearn_backend/internals/features/content/questions/model"
	speechService "medlearn_backend/internals/features/media/voice/service"
	helper "medlearn_backend/internals/helpers"
	ossHelper "medlearn_backend/internals/helpers/oss"
)

// AudioStorage is the slice of the object storage service the voice
// lifecycle needs.
type AudioStorage interface {
	UploadBytes(folder, ext, contentType string, data []byte) (string, error)
	DeleteByPublicURL(raw string) error
}

// VoiceController owns the per-voice TTS audio assets of a question. The two
// voices are fully independent: generating or deleting one never touches the
// other, or the explanation text.
type VoiceController struct {
	DB      *gorm.DB
	Speech  *speechService.SpeechClient
	Storage AudioStorage
}

func (h *VoiceController) storage() (AudioStorage, error) {
	if h.Storage != nil {
		return h.Storage, nil
	}
	svc, err := ossHelper.FromEnv()
	if err != nil {
		return nil, err
	}
	return svc, nil
}

type generateVoiceRequest struct {
	Voice      string `json:"voice"`
	Regenerate bool   `json:"regenerate"`
}

func voiceColumn(voice string) string {
	if voice == speechService.VoiceMale {
		return "male_explanation_audio_url"
	}
	return "female_explanation_audio_url"
}

func currentVoiceURL(q questionModel.QuestionModel, voice string) *string {
	if voice == speechService.VoiceMale {
		return q.MaleExplanationAudioURL
	}
	return q.FemaleExplanationAudioURL
}

func resolveVoice(c *fiber.Ctx, bodyVoice string) (string, error) {
	voice := strings.ToLower(strings.TrimSpace(c.Query("voice")))
	if voice == "" {
		voice = strings.ToLower(strings.TrimSpace(bodyVoice))
	}
	if voice != speechService.VoiceMale && voice != speechService.VoiceFemale {
		return "", fiber.NewError(fiber.StatusBadRequest, "voice must be male or female")
	}
	return voice, nil
}

// POST /api/doctor/questions/:id/voice?voice=male|female
func (h *VoiceController) GenerateVoice(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var req generateVoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	voice, err := resolveVoice(c, req.Voice)
	if err != nil {
		return err
	}

	var q questionModel.QuestionModel
	if err := h.DB.First(&q, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Question not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch question")
	}
	if q.Explanation == nil || strings.TrimSpace(*q.Explanation) == "" {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "Question has no explanation to synthesize")
	}

	if existing := currentVoiceURL(q, voice); existing != nil && *existing != "" && !req.Regenerate {
		return helper.JsonOK(c, "", fiber.Map{"url": *existing})
	}

	audio, err := h.Speech.Synthesize(c.Context(), *q.Explanation, voice)
	if err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "Failed to synthesize audio")
	}

	svc, err := h.storage()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Storage is not configured")
	}
	url, err := svc.UploadBytes("questions/audio/"+voice, "mp3", "audio/mpeg", audio)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to upload audio")
	}

	// Regenerate replaces the object; the stale one is best-effort deleted.
	if prev := currentVoiceURL(q, voice); prev != nil && *prev != "" {
		_ = svc.DeleteByPublicURL(*prev)
	}

	if err := h.DB.Model(&questionModel.QuestionModel{}).
		Where("id = ?", id).
		Update(voiceColumn(voice), url).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to store audio url")
	}

	return helper.JsonOK(c, "Audio generated", fiber.Map{"url": url})
}

// DELETE /api/doctor/questions/:id/voice?voice=male|female
func (h *VoiceController) DeleteVoice(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	voice, err := resolveVoice(c, "")
	if err != nil {
		return err
	}

	var q questionModel.QuestionModel
	if err := h.DB.First(&q, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Question not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch question")
	}

	if prev := currentVoiceURL(q, voice); prev != nil && *prev != "" {
		if svc, err := h.storage(); err == nil {
			_ = svc.DeleteByPublicURL(*prev)
		}
	}

	if err := h.DB.Model(&questionModel.QuestionModel{}).
		Where("id = ?", id).
		Update(voiceColumn(voice), nil).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to clear audio url")
	}

	return helper.JsonDeleted(c, "Audio removed", fiber.Map{"id": id, "voice": voice})
}
