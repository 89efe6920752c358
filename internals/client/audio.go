// file: internals/client/audio.go
package client

import (
	"context"
	"net/http"
)

// AssetKind names the three per-question generated assets. Each kind has its
// own busy flag and its own local field; operations on one kind never touch
// the others.
type AssetKind string

const (
	AssetExplanation AssetKind = "explanation"
	AssetFemaleAudio AssetKind = "female_audio"
	AssetMaleAudio   AssetKind = "male_audio"
)

// QuestionAssets is the locally cached asset state of one question card.
type QuestionAssets struct {
	Explanation    string
	FemaleAudioURL string
	MaleAudioURL   string
}

// AudioController drives generate/regenerate/delete of explanation text and
// TTS audio. State is patched locally per field on success; the tree
// snapshot is left alone.
type AudioController struct {
	gw        *Gateway
	confirmer Confirmer

	busy   map[string]bool
	assets map[string]*QuestionAssets
}

func NewAudioController(gw *Gateway, confirmer Confirmer) *AudioController {
	return &AudioController{
		gw:        gw,
		confirmer: confirmer,
		busy:      map[string]bool{},
		assets:    map[string]*QuestionAssets{},
	}
}

func busyKey(questionID string, kind AssetKind) string {
	return questionID + ":" + string(kind)
}

// IsBusy reports whether the given asset of the given question has an
// operation in flight.
func (a *AudioController) IsBusy(questionID string, kind AssetKind) bool {
	return a.busy[busyKey(questionID, kind)]
}

// Assets returns the cached state for a question, creating it on first use.
func (a *AudioController) Assets(questionID string) *QuestionAssets {
	if a.assets[questionID] == nil {
		a.assets[questionID] = &QuestionAssets{}
	}
	return a.assets[questionID]
}

// Seed primes the local cache from a loaded tree snapshot.
func (a *AudioController) Seed(q TreeQuestion) {
	st := a.Assets(q.ID)
	if q.Explanation != nil {
		st.Explanation = *q.Explanation
	}
	if q.FemaleAudio != nil {
		st.FemaleAudioURL = *q.FemaleAudio
	}
	if q.MaleAudio != nil {
		st.MaleAudioURL = *q.MaleAudio
	}
}

type generateAssetRequest struct {
	Voice      string `json:"voice,omitempty"`
	Regenerate bool   `json:"regenerate"`
}

type explanationPayload struct {
	Text string `json:"text"`
}

type voicePayload struct {
	URL string `json:"url"`
}

// Generate issues exactly one request for the asset and patches only its
// field on success. While an operation for the same question+kind is in
// flight, further calls are no-ops. Failures leave the prior state intact.
func (a *AudioController) Generate(ctx context.Context, questionID string, kind AssetKind, regenerate bool) error {
	key := busyKey(questionID, kind)
	if a.busy[key] {
		return nil
	}
	a.busy[key] = true
	defer func() { a.busy[key] = false }()

	st := a.Assets(questionID)

	switch kind {
	case AssetExplanation:
		var out explanationPayload
		err := a.gw.Do(ctx, http.MethodPost,
			"/api/doctor/questions/"+questionID+"/explanation",
			generateAssetRequest{Regenerate: regenerate}, &out)
		if err != nil {
			return err
		}
		st.Explanation = out.Text
	case AssetFemaleAudio, AssetMaleAudio:
		voice := "female"
		if kind == AssetMaleAudio {
			voice = "male"
		}
		var out voicePayload
		err := a.gw.Do(ctx, http.MethodPost,
			"/api/doctor/questions/"+questionID+"/voice?voice="+voice,
			generateAssetRequest{Voice: voice, Regenerate: regenerate}, &out)
		if err != nil {
			return err
		}
		if kind == AssetMaleAudio {
			st.MaleAudioURL = out.URL
		} else {
			st.FemaleAudioURL = out.URL
		}
	}
	return nil
}

// Delete clears one asset after confirmation. On success only the targeted
// field is emptied locally.
func (a *AudioController) Delete(ctx context.Context, questionID string, kind AssetKind) error {
	if a.confirmer == nil || !a.confirmer.Confirm("Delete this "+string(kind)+"?") {
		return ErrNotConfirmed
	}

	key := busyKey(questionID, kind)
	if a.busy[key] {
		return nil
	}
	a.busy[key] = true
	defer func() { a.busy[key] = false }()

	var path string
	switch kind {
	case AssetExplanation:
		path = "/api/doctor/questions/" + questionID + "/explanation"
	case AssetMaleAudio:
		path = "/api/doctor/questions/" + questionID + "/voice?voice=male"
	case AssetFemaleAudio:
		path = "/api/doctor/questions/" + questionID + "/voice?voice=female"
	}
	if err := a.gw.Do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return err
	}

	st := a.Assets(questionID)
	switch kind {
	case AssetExplanation:
		st.Explanation = ""
	case AssetMaleAudio:
		st.MaleAudioURL = ""
	case AssetFemaleAudio:
		st.FemaleAudioURL = ""
	}
	return nil
}
