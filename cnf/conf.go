// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2024 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//   This file is part of LINGPROF.
//
//  LINGPROF is free software: you can redistribute it and/or modify
//  it under the terms of the GNU General Public License as published by
//  the Free Software Foundation, either version 3 of the License, or
//  (at your option) any later version.
//
//  LINGPROF is distributed in the hope that it will be useful,
//  but WITHOUT ANY WARRANTY; without even the implied warranty of
//  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//  GNU General Public License for more details.
//
//  You should have received a copy of the GNU General Public License
//  along with LINGPROF.  If not, see <https://www.gnu.org/licenses/>.

package cnf

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/rs/zerolog/log"
)

const (
	dfltLanguage = "en"
)

// Conf is a global configuration of the profiler. Embedding
// applications typically load it from a JSON file via LoadConfig;
// library callers may also build it in code.
type Conf struct {
	// Language of analyzed documents. Only "en" is supported by the
	// default tagger; a custom Tagger capability lifts the restriction.
	Language string `json:"language"`

	// TaggerLexicon contains extra word -> tag entries merged into the
	// default tagger's lexicon (domain terminology, proper names etc.).
	TaggerLexicon map[string]string `json:"taggerLexicon"`

	LogFile  string           `json:"logFile"`
	LogLevel logging.LogLevel `json:"logLevel"`

	srcPath string
}

func (conf *Conf) IsDebugMode() bool {
	return conf.LogLevel == "debug"
}

// GetSourcePath returns an absolute path of a file
// the config was loaded from.
func (conf *Conf) GetSourcePath() string {
	if conf.srcPath == "" {
		return ""
	}
	if filepath.IsAbs(conf.srcPath) {
		return conf.srcPath
	}
	var cwd string
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "[failed to get working dir]"
	}
	return filepath.Join(cwd, conf.srcPath)
}

func LoadConfig(path string) *Conf {
	if path == "" {
		log.Fatal().Msg("Cannot load config - path not specified")
	}
	rawData, err := os.ReadFile(path)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot load config")
	}
	var conf Conf
	conf.srcPath = path
	err = json.Unmarshal(rawData, &conf)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot load config")
	}
	return &conf
}

func ValidateAndDefaults(conf *Conf) {
	if conf.Language == "" {
		conf.Language = dfltLanguage
		log.Warn().Msgf("language not specified, using default: %s", dfltLanguage)
	}
	if conf.Language != dfltLanguage {
		log.Warn().
			Str("language", conf.Language).
			Msg("the built-in tagger supports only `en`; supply a custom tagger capability")
	}
	if conf.LogLevel == "" {
		conf.LogLevel = "info"
		log.Warn().Msg("logLevel not specified, using default: info")
	}
}
