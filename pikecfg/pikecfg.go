// Package pikecfg loads build-time configuration for the lexer/parser
// pipeline from TOML, following the teacher's toml.Unmarshal-into-struct
// pattern (internal/tqw.ScanFileInfo). This covers ambient build knobs only
// - minimization on/off, the bad-regex literal fallback, trace logging -
// not grammar or lexical-rule authoring, which remains a Go-level concern
// (lex.LexicalRule, grammar.Production) rather than a config-file format.
package pikecfg

import "github.com/BurntSushi/toml"

// BuildConfig holds the ambient knobs exposed to callers assembling a
// Tokenizer/LALRTable pair, as opposed to the grammar/ruleset content
// itself.
type BuildConfig struct {
	// Minimize toggles DFA minimization (C6) after subset construction.
	Minimize bool `toml:"minimize"`
	// BadRegexFallback makes a rule with an unparsable pattern fall back to
	// a literal string match instead of aborting the build.
	BadRegexFallback bool `toml:"bad_regex_fallback"`
	// Trace turns on step-by-step shift/reduce/goto logging during Parse.
	Trace bool `toml:"trace"`
}

// DefaultConfig returns the configuration Build/BuildTable use when no
// config file is supplied: minimization on, fallback off (per spec's
// opt-in, not default, literal-fallback policy), tracing off.
func DefaultConfig() BuildConfig {
	return BuildConfig{Minimize: true}
}

// Load parses TOML-encoded configuration data into a BuildConfig, seeded
// with DefaultConfig's values for any field the data doesn't set.
func Load(data []byte) (BuildConfig, error) {
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return BuildConfig{}, err
	}
	return cfg, nil
}
