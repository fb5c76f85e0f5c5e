package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/DrNour/adaptive-translation-platform/internal/delivery/http/entity"
	"github.com/DrNour/adaptive-translation-platform/internal/pkg/llm"
	"github.com/DrNour/adaptive-translation-platform/internal/pkg/metrics"
	"github.com/sirupsen/logrus"
)

type TranslateUsecase interface {
	// Translate produces a machine draft for the learner to post-edit,
	// plus glossary suggestions from the source's content words.
	Translate(ctx context.Context, req entity.TranslateRequest) (*entity.TranslateResponse, error)
}

type TranslateConfig struct {
	LLM *llm.Client
	Log *logrus.Logger
}

type translateUsecase struct {
	cfg TranslateConfig
}

func NewTranslateUsecase(cfg TranslateConfig) TranslateUsecase {
	return &translateUsecase{cfg: cfg}
}

func (u *translateUsecase) Translate(ctx context.Context, req entity.TranslateRequest) (*entity.TranslateResponse, error) {
	if strings.TrimSpace(req.SourceText) == "" {
		return nil, entity.ErrMissingSourceText
	}
	targetLang := req.TargetLang
	if targetLang == "" {
		targetLang = "ar"
	}

	if u.cfg.LLM == nil || !u.cfg.LLM.Configured() {
		return nil, entity.ErrTranslationBackend
	}

	prompt := fmt.Sprintf(`Translate the following text into the language with BCP 47 tag %q.
Respond with JSON only: {"translation": "<the translated text>"}

Text:
%s`, targetLang, req.SourceText)

	raw, err := u.cfg.LLM.GenerateJSON(ctx, prompt)
	if err != nil {
		u.cfg.Log.WithError(err).Warn("machine translation backend failed")
		return nil, entity.ErrTranslationBackend
	}

	var parsed struct {
		Translation string `json:"translation"`
	}
	cleaned := strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(strings.TrimSpace(raw), "```json"), "```"))
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil || parsed.Translation == "" {
		return nil, entity.ErrTranslationBackend
	}

	return &entity.TranslateResponse{
		MachineTranslation: parsed.Translation,
		Glossary:           extractGlossary(req.SourceText),
	}, nil
}

// extractGlossary picks up to five of the most frequent source words
// longer than three characters, ties broken alphabetically.
func extractGlossary(text string) []string {
	counts := map[string]int{}
	for _, token := range metrics.Tokenize(text) {
		if len([]rune(token)) > 3 {
			counts[token]++
		}
	}

	words := make([]string, 0, len(counts))
	for word := range counts {
		words = append(words, word)
	}
	sort.Slice(words, func(i, j int) bool {
		if counts[words[i]] != counts[words[j]] {
			return counts[words[i]] > counts[words[j]]
		}
		return words[i] < words[j]
	})

	if len(words) > 5 {
		words = words[:5]
	}
	return words
}
