package config

import (
	"time"

	"github.com/DrNour/adaptive-translation-platform/internal/delivery/http/handler"
	"github.com/DrNour/adaptive-translation-platform/internal/delivery/http/middleware"
	"github.com/DrNour/adaptive-translation-platform/internal/delivery/http/repository"
	"github.com/DrNour/adaptive-translation-platform/internal/delivery/http/route"
	"github.com/DrNour/adaptive-translation-platform/internal/delivery/http/usecase"
	"github.com/DrNour/adaptive-translation-platform/internal/pkg/idioms"
	"github.com/DrNour/adaptive-translation-platform/internal/pkg/llm"
	"github.com/DrNour/adaptive-translation-platform/internal/pkg/nlp"
	"github.com/DrNour/adaptive-translation-platform/internal/pkg/validate"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

type BootstrapConfig struct {
	Api       *fiber.App
	Config    *viper.Viper
	DB        *gorm.DB
	Log       *logrus.Logger
	Validator *validate.Validator
}

func Bootstrap(config *BootstrapConfig) {

	mid := middleware.NewMiddleware(&middleware.MiddlewareConfig{
		Log:    config.Log,
		Config: config.Config,
	})

	timeout := time.Duration(config.Config.GetInt("nlp.backend_timeout_ms")) * time.Millisecond
	client := llm.NewClient(
		config.Config.GetString("llm.api_key"),
		config.Config.GetString("llm.model"),
		config.Config.GetString("llm.embedding_model"),
		config.Config.GetString("llm.base_url"),
		timeout,
	)

	var semantic nlp.SemanticScorer = nlp.NewTFIDFScorer()
	if config.Config.GetString("nlp.semantic.backend") == "embedding" && client.Configured() {
		semantic = nlp.NewEmbeddingScorer(client, config.Log)
	}

	var grammar nlp.GrammarChecker = nlp.NewHeuristicGrammarChecker()
	switch config.Config.GetString("nlp.grammar.backend") {
	case "gemini":
		if key := config.Config.GetString("llm.gemini.api_key"); key != "" {
			grammar = nlp.NewGeminiGrammarChecker(key, config.Config.GetString("llm.gemini.model"), timeout, config.Log)
		}
	case "llm":
		if client.Configured() {
			grammar = nlp.NewLLMGrammarChecker(client, config.Log)
		}
	}

	dict, err := idioms.Load(config.Config.GetString("idioms.path"))
	if err != nil {
		config.Log.WithError(err).Warn("idiom dictionary unreadable, idiom checks disabled")
		dict = idioms.Dictionary{}
	}
	collocations := nlp.LoadCollocationTable(
		config.Config.GetString("collocations.path"),
		config.Config.GetInt("collocations.threshold"),
	)

	submissionRepo := repository.NewSubmissionRepository(config.DB)
	profileRepo := repository.NewLearnerProfileRepository(config.DB)
	practiceRepo := repository.NewPracticeRepository(config.DB)

	profileUsecase := usecase.NewLearnerProfileUsecase(usecase.LearnerProfileConfig{
		DB:         config.DB,
		Repository: profileRepo,
		Log:        config.Log,
	})
	practiceUsecase := usecase.NewPracticeUsecase(usecase.PracticeConfig{
		DB:          config.DB,
		Repository:  practiceRepo,
		Submissions: submissionRepo,
		Profiles:    profileRepo,
		Semantic:    semantic,
		LLM:         client,
		Config:      config.Config,
		Log:         config.Log,
	})
	classifier := usecase.NewClassifier(grammar, dict, collocations,
		config.Config.GetFloat64("scoring.semantic_threshold"), config.Log)
	scoringUsecase := usecase.NewScoringUsecase(usecase.ScoringConfig{
		DB:         config.DB,
		Repository: submissionRepo,
		Profiles:   profileUsecase,
		Practice:   practiceUsecase,
		Classifier: classifier,
		Semantic:   semantic,
		Config:     config.Config,
		Log:        config.Log,
	})
	translateUsecase := usecase.NewTranslateUsecase(usecase.TranslateConfig{
		LLM: client,
		Log: config.Log,
	})

	submissionHandler := handler.NewSubmissionHandler(config.Validator, config.Log, scoringUsecase, profileUsecase, translateUsecase)
	practiceHandler := handler.NewPracticeHandler(config.Validator, config.Log, practiceUsecase)

	route.Setup(&route.RouteConfig{
		Api:               config.Api,
		Middleware:        mid,
		SubmissionHandler: submissionHandler,
		PracticeHandler:   practiceHandler,
	})

}
