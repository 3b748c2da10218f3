// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package hebrew

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"gopkg.in/yaml.v3"
)

// ErrInvalidProfile indicates a profile configuration failed to compile.
var ErrInvalidProfile = errors.New("invalid language profile")

const (
	// DefaultMinKeywordLength is the minimum rune length for a query token
	// to count as a keyword.
	DefaultMinKeywordLength = 2

	defaultSeparatorPattern = `[\s,.;:()\[\]{}"'־\-–—/\\]+`
	defaultSectionPattern   = `סעיף\s+\d+[\p{L}\p{N}_()״"׳-]*`

	defaultMarksLo = 0x0591
	defaultMarksHi = 0x05C7
)

// Profile is the compiled, immutable bundle of script-specific tables used
// for matching: the combining-mark range to strip, the token separators, the
// stop-word set, the citation pattern, and the minimum keyword length.
// A Profile has no mutable state and is safe for concurrent use.
type Profile struct {
	stopWords     map[string]bool
	separators    *regexp.Regexp
	section       *regexp.Regexp
	strip         transform.Transformer
	minKeywordLen int
}

// ProfileConfig is the serializable form of a Profile. It can be written in
// YAML so other scripts or jurisdictions can supply their own tables without
// code changes. Zero-valued fields fall back to the built-in Hebrew defaults.
type ProfileConfig struct {
	StopWords        []string `yaml:"stop_words"`
	SeparatorPattern string   `yaml:"separator_pattern"`
	SectionPattern   string   `yaml:"section_pattern"`
	MinKeywordLength int      `yaml:"min_keyword_length"`
	MarksLo          int32    `yaml:"marks_lo"`
	MarksHi          int32    `yaml:"marks_hi"`
}

// DefaultProfileConfig returns the built-in Hebrew tables.
func DefaultProfileConfig() ProfileConfig {
	return ProfileConfig{
		StopWords:        append([]string(nil), defaultStopWords...),
		SeparatorPattern: defaultSeparatorPattern,
		SectionPattern:   defaultSectionPattern,
		MinKeywordLength: DefaultMinKeywordLength,
		MarksLo:          defaultMarksLo,
		MarksHi:          defaultMarksHi,
	}
}

// NewProfile compiles a ProfileConfig into a Profile. Zero-valued fields keep
// their Hebrew defaults; invalid patterns or mark ranges are rejected.
func NewProfile(cfg ProfileConfig) (*Profile, error) {
	if len(cfg.StopWords) == 0 {
		cfg.StopWords = defaultStopWords
	}
	if cfg.SeparatorPattern == "" {
		cfg.SeparatorPattern = defaultSeparatorPattern
	}
	if cfg.SectionPattern == "" {
		cfg.SectionPattern = defaultSectionPattern
	}
	if cfg.MinKeywordLength <= 0 {
		cfg.MinKeywordLength = DefaultMinKeywordLength
	}
	if cfg.MarksLo == 0 && cfg.MarksHi == 0 {
		cfg.MarksLo, cfg.MarksHi = defaultMarksLo, defaultMarksHi
	}

	if cfg.MarksLo <= 0 || cfg.MarksHi < cfg.MarksLo || cfg.MarksHi > 0xFFFF {
		return nil, fmt.Errorf("%w: marks range %#x..%#x", ErrInvalidProfile, cfg.MarksLo, cfg.MarksHi)
	}

	separators, err := regexp.Compile(cfg.SeparatorPattern)
	if err != nil {
		return nil, fmt.Errorf("%w: separator pattern: %w", ErrInvalidProfile, err)
	}

	section, err := regexp.Compile(cfg.SectionPattern)
	if err != nil {
		return nil, fmt.Errorf("%w: section pattern: %w", ErrInvalidProfile, err)
	}

	stopWords := make(map[string]bool, len(cfg.StopWords))
	for _, w := range cfg.StopWords {
		stopWords[w] = true
	}

	marks := &unicode.RangeTable{
		R16: []unicode.Range16{{Lo: uint16(cfg.MarksLo), Hi: uint16(cfg.MarksHi), Stride: 1}},
	}

	return &Profile{
		stopWords:     stopWords,
		separators:    separators,
		section:       section,
		strip:         runes.Remove(runes.In(marks)),
		minKeywordLen: cfg.MinKeywordLength,
	}, nil
}

// LoadProfile reads a YAML profile override from path. Fields absent from the
// file keep the built-in Hebrew defaults.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile %s: %w", path, err)
	}

	var cfg ProfileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %w", ErrInvalidProfile, path, err)
	}

	return NewProfile(cfg)
}

// DefaultProfile returns the built-in Hebrew profile. The returned value is
// shared and immutable.
func DefaultProfile() *Profile {
	return defaultProfile
}

var defaultProfile = &Profile{
	stopWords:     defaultStopWordSet(),
	separators:    regexp.MustCompile(defaultSeparatorPattern),
	section:       regexp.MustCompile(defaultSectionPattern),
	strip:         runes.Remove(runes.In(&unicode.RangeTable{R16: []unicode.Range16{{Lo: defaultMarksLo, Hi: defaultMarksHi, Stride: 1}}})),
	minKeywordLen: DefaultMinKeywordLength,
}

func defaultStopWordSet() map[string]bool {
	set := make(map[string]bool, len(defaultStopWords))
	for _, w := range defaultStopWords {
		set[w] = true
	}
	return set
}
