// file: internals/features/media/voice/service/speech_service.go
package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"medlearn_backend/internals/configs"
)

const (
	VoiceMale   = "male"
	VoiceFemale = "female"
)

// SpeechClient talks to the external generation service that produces
// explanation text and TTS audio for questions.
type SpeechClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

type SpeechOption func(*SpeechClient)

func WithBaseURL(url string) SpeechOption {
	return func(s *SpeechClient) {
		s.baseURL = strings.TrimRight(url, "/")
	}
}

func WithHTTPClient(client *http.Client) SpeechOption {
	return func(s *SpeechClient) {
		s.client = client
	}
}

func NewSpeechClient(apiKey string, opts ...SpeechOption) *SpeechClient {
	s := &SpeechClient{
		apiKey:  apiKey,
		baseURL: "https://api.speech.internal/v1",
		client:  http.DefaultClient,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FromEnv builds a client from SPEECH_API_BASE_URL / SPEECH_API_KEY.
func FromEnv() *SpeechClient {
	opts := []SpeechOption{}
	if base := configs.GetEnv("SPEECH_API_BASE_URL"); base != "" {
		opts = append(opts, WithBaseURL(base))
	}
	return NewSpeechClient(configs.GetEnv("SPEECH_API_KEY"), opts...)
}

type explanationRequest struct {
	QuestionText string   `json:"question_text"`
	Options      []string `json:"options,omitempty"`
	CorrectKey   string   `json:"correct_key,omitempty"`
}

type explanationResponse struct {
	Text string `json:"text"`
}

// GenerateExplanation asks the service to write an explanation for a question.
func (s *SpeechClient) GenerateExplanation(ctx context.Context, questionText string, options []string, correctKey string) (string, error) {
	body, err := json.Marshal(explanationRequest{
		QuestionText: questionText,
		Options:      options,
		CorrectKey:   correctKey,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	respBody, err := s.post(ctx, "/explanations", "application/json", body)
	if err != nil {
		return "", err
	}

	var out explanationResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if strings.TrimSpace(out.Text) == "" {
		return "", fmt.Errorf("empty explanation in response")
	}
	return out.Text, nil
}

type synthesizeRequest struct {
	Text  string `json:"text"`
	Voice string `json:"voice"`
}

// Synthesize renders text to speech with the given voice and returns the
// raw audio bytes (mp3).
func (s *SpeechClient) Synthesize(ctx context.Context, text, voice string) ([]byte, error) {
	if voice != VoiceMale && voice != VoiceFemale {
		return nil, fmt.Errorf("unknown voice %q", voice)
	}
	body, err := json.Marshal(synthesizeRequest{Text: text, Voice: voice})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	return s.post(ctx, "/synthesize", "application/json", body)
}

func (s *SpeechClient) post(ctx context.Context, path, contentType string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("speech api error (status %d): %s", resp.StatusCode, string(respBody))
	}
	return respBody, nil
}
