package lex

import (
	"github.com/dekarrin/pike/automaton"
	"github.com/dekarrin/pike/perr"
	"github.com/dekarrin/pike/pikecfg"
	"github.com/dekarrin/pike/regex"
	"github.com/google/uuid"
)

// BuildOption configures Build. Grounded on the functional-options style
// used throughout the teacher repo's constructors.
type BuildOption func(*buildConfig)

type buildConfig struct {
	minimize          bool
	badRegexFallback  bool
}

// WithMinimization toggles DFA minimization (C6) after subset construction.
// Enabled by default; tests that want to inspect the unminimized DFA's
// state count can disable it.
func WithMinimization(enabled bool) BuildOption {
	return func(c *buildConfig) { c.minimize = enabled }
}

// WithBadRegexFallback makes Build treat a rule whose Pattern fails to
// compile as a literal string match instead of returning a perr.BuildError,
// per the spec's opt-in (not default) literal-fallback policy.
func WithBadRegexFallback() BuildOption {
	return func(c *buildConfig) { c.badRegexFallback = true }
}

// Tokenizer is the compiled product of Build: a fused, (optionally)
// minimized DFA plus the bookkeeping Tokenize needs to turn DFA runs back
// into Tokens.
type Tokenizer struct {
	BuildID uuid.UUID
	dfa     *automaton.DFA
	rules   []LexicalRule
}

// Build compiles rules into a Tokenizer: each rule's Pattern is compiled to
// an NFA fragment (package regex), the fragments are imported into one
// shared arena and their accept states tagged with (Kind, Priority), the
// fused NFA is subset-constructed into a DFA (C5), and minimized (C6)
// unless disabled.
func Build(rules []LexicalRule, opts ...BuildOption) (*Tokenizer, error) {
	cfg := buildConfig{minimize: true}
	for _, o := range opts {
		o(&cfg)
	}

	if len(rules) == 0 {
		return nil, perr.NewBadRegex(0, "no rules given")
	}

	b := automaton.NewBuilder()
	fusedStart := b.AddState()

	for i, rule := range rules {
		frag, err := regex.Compile(rule.Pattern, automaton.NewBuilder())
		if err != nil {
			if cfg.badRegexFallback {
				frag, err = literalFragment(rule.Pattern)
			}
			if err != nil {
				return nil, perr.NewBuildError(i, err)
			}
		}

		remap := b.Import(frag)
		b.AddEpsilon(fusedStart, remap[frag.Start])

		for _, id := range frag.States() {
			if frag.Accept(id) != nil {
				b.SetAccept(remap[id], automaton.AcceptTag{Kind: string(rule.Kind), Priority: rule.Priority})
			}
		}
	}

	fused := b.Build(fusedStart)
	dfa := fused.ToDFA()
	if cfg.minimize {
		dfa = dfa.Minimize()
	}

	return &Tokenizer{
		BuildID: uuid.New(),
		dfa:     dfa,
		rules:   rules,
	}, nil
}

// BuildWithConfig is Build, with its options taken from an ambient
// pikecfg.BuildConfig instead of BuildOption values - the bridge most
// callers loading settings from a TOML file will use.
func BuildWithConfig(rules []LexicalRule, cfg pikecfg.BuildConfig) (*Tokenizer, error) {
	opts := []BuildOption{WithMinimization(cfg.Minimize)}
	if cfg.BadRegexFallback {
		opts = append(opts, WithBadRegexFallback())
	}
	return Build(rules, opts...)
}

// literalFragment compiles pattern as a literal string match (each rune
// escaped) rather than as a regular expression, for WithBadRegexFallback.
func literalFragment(pattern string) (*automaton.NFA, error) {
	b := automaton.NewBuilder()
	start := b.AddState()
	cur := start
	for _, c := range pattern {
		next := b.AddState()
		b.AddSymbol(cur, c, next)
		cur = next
	}
	b.SetAccept(cur, automaton.AcceptTag{})
	return b.Build(start), nil
}
