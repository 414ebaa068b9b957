// Package config loads engine tunables from defaults, an optional
// nodi.yaml, and NODI_-prefixed environment variables, in increasing
// precedence.
package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"

	"github.com/nickelliottpimm/nodi-boardgame/ai"
)

type Config struct {
	// Lookahead pruning limits.
	MoveLimit  int
	ReplyLimit int
	// Score band for the random tie-break.
	TieEpsilon float64
	// Parallelism of the first-ply evaluation; 0 means GOMAXPROCS.
	Threads int
	// Evaluator terms, defaulting to ai.DefaultWeights. Override
	// individual terms with weights.<term> keys or NODI_WEIGHTS_<TERM>.
	Weights ai.Weights

	LogLevel string
}

// Load reads configuration. A missing config file is fine; a malformed
// one is not.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("move_limit", 10)
	v.SetDefault("reply_limit", 6)
	v.SetDefault("tie_epsilon", 8.0)
	v.SetDefault("threads", 0)
	v.SetDefault("log_level", "info")

	w := ai.DefaultWeights
	for key, field := range weightFields(&w) {
		v.SetDefault("weights."+key, *field)
	}

	v.SetEnvPrefix("nodi")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("nodi")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	for key, field := range weightFields(&w) {
		*field = v.GetFloat64("weights." + key)
	}

	return &Config{
		MoveLimit:  v.GetInt("move_limit"),
		ReplyLimit: v.GetInt("reply_limit"),
		TieEpsilon: v.GetFloat64("tie_epsilon"),
		Threads:    v.GetInt("threads"),
		Weights:    w,
		LogLevel:   v.GetString("log_level"),
	}, nil
}

// weightFields maps each weights.* config key to the evaluator term it
// overrides.
func weightFields(w *ai.Weights) map[string]*float64 {
	return map[string]*float64{
		"single":             &w.Single,
		"king":               &w.King,
		"key":                &w.Key,
		"value_point":        &w.ValuePoint,
		"ray_bonus":          &w.RayBonus,
		"mobility":           &w.Mobility,
		"combine_bonus":      &w.CombineBonus,
		"capture_bonus":      &w.CaptureBonus,
		"king_capture_bonus": &w.KingCaptureBonus,
		"key_capture_bonus":  &w.KeyCaptureBonus,
		"center_nudge":       &w.CenterNudge,
		"recapture_penalty":  &w.RecapturePenalty,
	}
}
