package nlp

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

// GeminiGrammarChecker runs the grammar pass against the Gemini API.
// Like the other checkers it merges backend matches with the local
// heuristics and degrades to heuristics alone on any backend failure.
type GeminiGrammarChecker struct {
	apiKey  string
	model   string
	timeout time.Duration
	log     *logrus.Logger
}

func NewGeminiGrammarChecker(apiKey, model string, timeout time.Duration, log *logrus.Logger) *GeminiGrammarChecker {
	if model == "" {
		model = "gemini-2.0-flash"
	}
	if timeout <= 0 {
		timeout = 4 * time.Second
	}
	return &GeminiGrammarChecker{
		apiKey:  apiKey,
		model:   model,
		timeout: timeout,
		log:     log,
	}
}

func (c *GeminiGrammarChecker) Check(ctx context.Context, text, langTag string) ([]GrammarIssue, error) {
	issues := heuristicIssues(text)
	if c.apiKey == "" {
		return issues, nil
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  c.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		c.warn(err, "gemini client init failed, using heuristics only")
		return issues, nil
	}

	prompt := fmt.Sprintf(`Find grammar and fluency errors in the following %s text.
For each error return a short message and up to 3 replacement suggestions.
Return ONLY valid JSON: {"matches":[{"message":"...","replacements":["..."]}]}

Text:
%s`, langTag, text)

	resp, err := client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(float32(0)),
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		c.warn(err, "gemini grammar call failed, using heuristics only")
		return issues, nil
	}

	parsed, err := parseGrammarMatches(resp.Text())
	if err != nil {
		c.warn(err, "gemini grammar response invalid, using heuristics only")
		return issues, nil
	}

	return append(issues, parsed...), nil
}

func (c *GeminiGrammarChecker) warn(err error, msg string) {
	if c.log != nil {
		c.log.WithError(err).Warn(msg)
	}
}
