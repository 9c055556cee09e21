package prosegeek

import (
	"os"
	"reflect"
	"strings"
	"sync"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ═══════════════════════════════════════════════════════════════════════════════
// CONFIGURATION
// ═══════════════════════════════════════════════════════════════════════════════
// Settings come from an external store (a settings file, a host editor) as a
// loose key/value mapping. They are resolved at exactly one place:
//
//	defaults (struct tags) ← external mapping ← validation
//
// Keys missing from the mapping, or present with a null value, keep their
// default. Unknown keys are reported back to the caller and otherwise ignored.
//
// Settings.Config then turns the resolved values into an AnalysisConfig,
// reading the stopword list up front so a bad path fails before any text is
// analyzed.
// ═══════════════════════════════════════════════════════════════════════════════

// Settings mirrors the external configuration surface.
type Settings struct {
	FilterStopwords       bool   `mapstructure:"filter_stopwords" json:"filter_stopwords" default:"true"`
	StopwordsFilepath     string `mapstructure:"stopwords_filepath" json:"stopwords_filepath"`
	StripHTML             bool   `mapstructure:"strip_html" json:"strip_html" default:"true"`
	StripMarkdown         bool   `mapstructure:"strip_markdown" json:"strip_markdown" default:"true"`
	TopWordCount          int    `mapstructure:"top_word_count" json:"top_word_count" default:"20" validate:"min=0"`
	TopBigramsCount       int    `mapstructure:"top_bigrams_count" json:"top_bigrams_count" default:"10" validate:"min=0"`
	TopTrigramsCount      int    `mapstructure:"top_trigrams_count" json:"top_trigrams_count" default:"10" validate:"min=0"`
	CollocationFilter     int    `mapstructure:"collocation_filter" json:"collocation_filter" default:"3" validate:"min=1"`
	Stemmer               string `mapstructure:"stemmer" json:"stemmer" default:"porter" validate:"omitempty,oneof=porter porter2"`
	PronunciationFilepath string `mapstructure:"pronunciation_filepath" json:"pronunciation_filepath"`
}

// DefaultSettings returns the documented defaults.
func DefaultSettings() Settings {
	var s Settings
	// defaults.Set only fails on malformed tags, which are fixed above.
	_ = defaults.Set(&s)
	return s
}

// ResolveSettings merges external over the defaults and validates the result.
// unused lists the keys of external that match no setting.
func ResolveSettings(external map[string]any) (s Settings, unused []string, err error) {
	s = DefaultSettings()

	var md mapstructure.Metadata
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:   &s,
		Metadata: &md,
		TagName:  "mapstructure",
	})
	if err != nil {
		return s, nil, errors.Wrap(err, "build settings decoder")
	}
	if err := dec.Decode(external); err != nil {
		return s, nil, configError("settings", err)
	}

	if err := s.Validate(); err != nil {
		return s, md.Unused, err
	}
	return s, md.Unused, nil
}

// settingsValidator reports fields by their external setting name.
var settingsValidator = sync.OnceValue(func() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return strings.SplitN(f.Tag.Get("mapstructure"), ",", 2)[0]
	})
	return v
})

// Validate checks value ranges. The returned error is a ConfigurationError
// keyed by the external setting name.
func (s Settings) Validate() error {
	err := settingsValidator().Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return configError(fe.Field(), errors.Errorf("value %v fails %q", fe.Value(), fe.Tag()+paramSuffix(fe.Param())))
	}
	return configError("settings", err)
}

func paramSuffix(param string) string {
	if param == "" {
		return ""
	}
	return "=" + param
}

// LoadSettingsFile reads a JSON or YAML settings file into a mapping.
// YAML is a superset of JSON, so host editor settings files parse as is.
func LoadSettingsFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, configError("settings", errors.Wrapf(err, "read %s", path))
	}
	m := map[string]any{}
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, configError("settings", errors.Wrapf(err, "parse %s", path))
	}
	return m, nil
}

// AnalysisConfig is the resolved, immutable configuration of a run.
type AnalysisConfig struct {
	FilterStopwords    bool
	Stopwords          StopwordSet
	StripHTML          bool
	StripMarkdown      bool
	TopWordCount       int
	TopBigramCount     int
	TopTrigramCount    int
	CollocationMinFreq int
	Stemmer            Stemmer

	// Pronunciations is optional; without it no readability scores are
	// computed.
	Pronunciations *PronunciationSource
}

// Config resolves file-backed settings. The stopword list is read here, and
// only when filtering is on; the pronunciation dictionary is read lazily on
// first use.
func (s Settings) Config() (AnalysisConfig, error) {
	if err := s.Validate(); err != nil {
		return AnalysisConfig{}, err
	}

	stemmer, err := NewStemmer(s.Stemmer)
	if err != nil {
		return AnalysisConfig{}, err
	}

	cfg := AnalysisConfig{
		FilterStopwords:    s.FilterStopwords,
		StripHTML:          s.StripHTML,
		StripMarkdown:      s.StripMarkdown,
		TopWordCount:       s.TopWordCount,
		TopBigramCount:     s.TopBigramsCount,
		TopTrigramCount:    s.TopTrigramsCount,
		CollocationMinFreq: s.CollocationFilter,
		Stemmer:            stemmer,
	}

	if s.FilterStopwords {
		if cfg.Stopwords, err = LoadStopwords(s.StopwordsFilepath); err != nil {
			return AnalysisConfig{}, err
		}
	}
	if s.PronunciationFilepath != "" {
		cfg.Pronunciations = NewPronunciationSource(s.PronunciationFilepath)
	}
	return cfg, nil
}

// DefaultConfig returns the default configuration with the bundled stopwords.
func DefaultConfig() AnalysisConfig {
	cfg, err := DefaultSettings().Config()
	if err != nil {
		// Defaults touch no files and pass validation.
		panic(err)
	}
	return cfg
}

// Validate checks a programmatically built config.
func (c AnalysisConfig) Validate() error {
	switch {
	case c.TopWordCount < 0:
		return configError("top_word_count", errors.New("must be >= 0"))
	case c.TopBigramCount < 0:
		return configError("top_bigrams_count", errors.New("must be >= 0"))
	case c.TopTrigramCount < 0:
		return configError("top_trigrams_count", errors.New("must be >= 0"))
	case c.CollocationMinFreq < 1:
		return configError("collocation_filter", errors.New("must be >= 1"))
	case c.FilterStopwords && c.Stopwords == nil:
		return configError("stopwords_filepath", errors.New("stopword filtering enabled without a stopword set"))
	}
	return nil
}

// activeStopwords is the set the pipeline filters with: nil when filtering is
// off, so nothing is removed and no n-gram is skipped.
func (c AnalysisConfig) activeStopwords() StopwordSet {
	if !c.FilterStopwords {
		return nil
	}
	return c.Stopwords
}

func (c AnalysisConfig) stemmer() Stemmer {
	if c.Stemmer == nil {
		return PorterStemmer{}
	}
	return c.Stemmer
}
