package lex

// Tokenize scans input against t's fused DFA using maximal munch: at each
// position, follow transitions as far as possible, remembering the last
// position at which the DFA was in an accepting state; when no further
// transition exists, emit the token for that last-accepting run (or, if no
// accepting state was ever reached, a one-rune UNKNOWN token) and resume
// scanning from just after it. A trailing EOF token is always appended.
// Ignore-tagged rules' tokens are matched but dropped from the output.
//
// Per spec's priority design note, the DFA's accept tag already encodes
// which rule wins a same-length tie (automaton.winningTag baked that in
// during fusion/subset-construction/minimization), so Tokenize never
// re-derives a priority here - it only reads tag.Kind off the winning
// accept state.
func (t *Tokenizer) Tokenize(input string) ([]Token, error) {
	runes := []rune(input)
	var out []Token

	pos := 0
	line, col := 1, 1

	advance := func(n int) {
		for i := 0; i < n; i++ {
			if runes[pos+i] == '\n' {
				line++
				col = 1
			} else {
				col++
			}
		}
	}

	for pos < len(runes) {
		lastAccept := -1
		var lastKind TokenKind

		state := t.dfa.Start
		cur := pos
		if tag := t.dfa.Accept(state); tag != nil {
			lastAccept = cur
			lastKind = TokenKind(tag.Kind)
		}

		for cur < len(runes) {
			next, ok := t.dfa.Next(state, runes[cur])
			if !ok {
				break
			}
			state = next
			cur++
			if tag := t.dfa.Accept(state); tag != nil {
				lastAccept = cur
				lastKind = TokenKind(tag.Kind)
			}
		}

		if lastAccept == -1 || lastAccept == pos {
			// no rule matched even a single rune here (or the only match was
			// zero-length, e.g. a rule like "a*" accepting on the empty
			// prefix) - emit UNKNOWN for exactly one rune and resume
			// scanning past it. A zero-length token would never advance pos,
			// looping forever.
			tok := Token{Kind: KindUnknown, Lexeme: string(runes[pos]), Position: pos, Line: line, Column: col}
			out = append(out, tok)
			advance(1)
			pos++
			continue
		}

		lexeme := string(runes[pos:lastAccept])
		tok := Token{Kind: lastKind, Lexeme: lexeme, Position: pos, Line: line, Column: col}
		if !t.ignoreKind(lastKind) {
			out = append(out, tok)
		}
		advance(lastAccept - pos)
		pos = lastAccept
	}

	out = append(out, Token{Kind: KindEOF, Position: pos, Line: line, Column: col})
	return out, nil
}

func (t *Tokenizer) ignoreKind(kind TokenKind) bool {
	for _, r := range t.rules {
		if r.Kind == kind && r.Ignore {
			return true
		}
	}
	return false
}
