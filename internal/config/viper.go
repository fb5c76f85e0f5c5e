package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

func NewViper() *viper.Viper {
	config := viper.New()

	if os.Getenv("ENV") == "production" {
		config.SetConfigName("config.prod")
	} else {
		config.SetConfigName("config")
	}

	config.SetConfigType("yaml")
	config.AddConfigPath(".")

	setDefaults(config)

	if err := config.ReadInConfig(); err != nil {
		// Running without a config file is fine, the defaults cover
		// everything except database credentials.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
	}

	return config
}

func setDefaults(config *viper.Viper) {
	config.SetDefault("app.name", "adaptive-translation-platform")
	config.SetDefault("api.port", 8080)

	config.SetDefault("log.level", "info")
	config.SetDefault("log.format", "text")

	config.SetDefault("database.driver", "postgres")
	config.SetDefault("database.sslmode", "disable")
	config.SetDefault("database.timezone", "UTC")

	config.SetDefault("scoring.semantic_threshold", 65)
	config.SetDefault("scoring.lexical_threshold", 30)
	config.SetDefault("scoring.chrf_threshold", 40)
	config.SetDefault("practice.max_items", 3)
	config.SetDefault("practice.seed", true)

	config.SetDefault("nlp.semantic.backend", "tfidf")
	config.SetDefault("nlp.grammar.backend", "heuristic")
	config.SetDefault("nlp.backend_timeout_ms", 4000)

	config.SetDefault("idioms.path", "data/idioms.json")
	config.SetDefault("collocations.path", "data/collocations.json")
	config.SetDefault("collocations.threshold", 2)
}
