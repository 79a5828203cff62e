package config

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/rs/zerolog/log"
)

const path = "infra/config"

// MustLoad loads the config for the given key
func MustLoad(key string, v interface{}) []byte {

	b, err := ioutil.ReadFile(fmt.Sprintf("%s/%s.json", path, key))
	if err != nil {
		panic(fmt.Sprintf("could not load config for %s: %s", key, err.Error()))
	}

	err = json.Unmarshal(b, v)
	if err != nil {
		panic(fmt.Sprintf("could not unmarshal the config for %s: %s", key, err.Error()))
	}

	log.Info().Str("config", key).Msg("loaded config")

	return b

}

// RGB is a color endpoint of the output palette.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Session holds the tunable parameters of a playground session.
type Session struct {
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	Activation string  `json:"activation"`
	Rate       float64 `json:"learningRate"`
	Limit      int     `json:"epochLimit"`
	IntervalMs int     `json:"intervalMs"`
	Random     bool    `json:"randomWeights"`
	Disabled   RGB     `json:"disabled"`
	Enabled    RGB     `json:"enabled"`
}

// Default is the reference configuration.
func Default() Session {
	return Session{
		Width:      500,
		Height:     500,
		Activation: "step",
		Rate:       0.4,
		Limit:      500,
		IntervalMs: 100,
		Disabled:   RGB{R: 220, G: 60, B: 60},
		Enabled:    RGB{R: 60, G: 200, B: 90},
	}
}

// Load reads the session config, falling back to the defaults
// when no config file is present in the working directory.
func Load() Session {
	if _, err := os.Stat(fmt.Sprintf("%s/session.json", path)); err != nil {
		log.Info().Msg("no session config found, using defaults")
		return Default()
	}
	var s Session
	MustLoad("session", &s)
	return s
}
