package nlp

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/DrNour/adaptive-translation-platform/internal/pkg/llm"
	"github.com/DrNour/adaptive-translation-platform/internal/pkg/metrics"
	"github.com/sirupsen/logrus"
)

// GrammarIssue is a single flagged fluency problem with up to three
// suggested replacements.
type GrammarIssue struct {
	Message      string   `json:"message"`
	Replacements []string `json:"replacements,omitempty"`
}

// GrammarChecker flags grammar and fluency issues in a candidate
// translation. Implementations must degrade rather than fail: a checker
// that cannot reach its backend falls back to heuristics.
type GrammarChecker interface {
	Check(ctx context.Context, text, langTag string) ([]GrammarIssue, error)
}

var (
	punctRunRe   = regexp.MustCompile(`[!?.,;:]{2,}`)
	multiSpaceRe = regexp.MustCompile(`\S(\s{2,})\S`)
)

// HeuristicGrammarChecker is the dependency-free default: it flags
// repeated adjacent words, punctuation runs and extra whitespace.
type HeuristicGrammarChecker struct{}

func NewHeuristicGrammarChecker() *HeuristicGrammarChecker {
	return &HeuristicGrammarChecker{}
}

func (c *HeuristicGrammarChecker) Check(_ context.Context, text, _ string) ([]GrammarIssue, error) {
	return heuristicIssues(text), nil
}

func heuristicIssues(text string) []GrammarIssue {
	var issues []GrammarIssue

	tokens := metrics.Tokenize(text)
	for i := 1; i < len(tokens); i++ {
		if tokens[i] == tokens[i-1] {
			issues = append(issues, GrammarIssue{
				Message:      fmt.Sprintf("repeated word %q", tokens[i]),
				Replacements: []string{tokens[i]},
			})
		}
	}

	for _, run := range punctRunRe.FindAllString(text, -1) {
		issues = append(issues, GrammarIssue{
			Message:      fmt.Sprintf("punctuation run %q", run),
			Replacements: []string{string(run[0])},
		})
	}

	if multiSpaceRe.MatchString(text) {
		issues = append(issues, GrammarIssue{
			Message:      "extra whitespace between words",
			Replacements: []string{" "},
		})
	}

	return issues
}

// LLMGrammarChecker asks an OpenAI-compatible backend for grammar
// matches and merges them with the local heuristics. Backend failures
// degrade to heuristics alone.
type LLMGrammarChecker struct {
	client *llm.Client
	log    *logrus.Logger
}

func NewLLMGrammarChecker(client *llm.Client, log *logrus.Logger) *LLMGrammarChecker {
	return &LLMGrammarChecker{client: client, log: log}
}

type grammarMatchesJSON struct {
	Matches []struct {
		Message      string   `json:"message"`
		Replacements []string `json:"replacements"`
	} `json:"matches"`
}

func (c *LLMGrammarChecker) Check(ctx context.Context, text, langTag string) ([]GrammarIssue, error) {
	issues := heuristicIssues(text)
	if !c.client.Configured() {
		return issues, nil
	}

	prompt := fmt.Sprintf(`You are a grammar checker for the language tagged %q.
Find grammar and fluency errors in the text below. For each error return a short
message and up to 3 replacement suggestions. If there are no errors return an
empty list.

Text:
%s

Return ONLY valid JSON, no markdown:
{"matches":[{"message":"...","replacements":["..."]}]}`, langTag, text)

	raw, err := c.client.GenerateJSON(ctx, prompt)
	if err != nil {
		if c.log != nil {
			c.log.WithError(err).Warn("grammar backend unavailable, using heuristics only")
		}
		return issues, nil
	}

	parsed, err := parseGrammarMatches(raw)
	if err != nil {
		if c.log != nil {
			c.log.WithError(err).Warn("grammar backend returned invalid json, using heuristics only")
		}
		return issues, nil
	}

	return append(issues, parsed...), nil
}

func parseGrammarMatches(raw string) ([]GrammarIssue, error) {
	clean := strings.TrimSpace(raw)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")
	clean = strings.TrimSpace(clean)

	var parsed grammarMatchesJSON
	if err := json.Unmarshal([]byte(clean), &parsed); err != nil {
		return nil, fmt.Errorf("grammar matches are not valid json: %w", err)
	}

	issues := make([]GrammarIssue, 0, len(parsed.Matches))
	for _, m := range parsed.Matches {
		if m.Message == "" {
			continue
		}
		replacements := m.Replacements
		if len(replacements) > 3 {
			replacements = replacements[:3]
		}
		issues = append(issues, GrammarIssue{Message: m.Message, Replacements: replacements})
	}
	return issues, nil
}
