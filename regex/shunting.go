package regex

import "github.com/dekarrin/pike/perr"

// precedence ranks the binary/postfix regex operators for the shunting-yard
// conversion, per spec §4.2: union lowest, explicit concatenation next,
// then the postfix repetition operators, all left-associative.
func precedence(k tokenKind) int {
	switch k {
	case tokUnion:
		return 1
	case tokConcat:
		return 2
	case tokStar, tokPlus, tokQuestion:
		return 3
	default:
		return 0
	}
}

func isOperator(k tokenKind) bool {
	switch k {
	case tokUnion, tokConcat, tokStar, tokPlus, tokQuestion:
		return true
	default:
		return false
	}
}

func isPostfixUnary(k tokenKind) bool {
	return k == tokStar || k == tokPlus || k == tokQuestion
}

// toPostfix converts the preprocessed infix token stream to postfix order
// using Dijkstra's shunting-yard algorithm, the standard bridge between an
// infix regex and the Thompson construction's left-to-right postfix scan.
func toPostfix(infix []ppToken) ([]ppToken, error) {
	var output []ppToken
	var ops []ppToken

	popWhile := func(cond func(top ppToken) bool) {
		for len(ops) > 0 && cond(ops[len(ops)-1]) {
			output = append(output, ops[len(ops)-1])
			ops = ops[:len(ops)-1]
		}
	}

	for _, t := range infix {
		switch {
		case t.kind == tokLiteral:
			output = append(output, t)
		case t.kind == tokLParen:
			ops = append(ops, t)
		case t.kind == tokRParen:
			popWhile(func(top ppToken) bool { return top.kind != tokLParen })
			if len(ops) == 0 {
				return nil, perr.NewBadRegex(t.pos, "unmatched closing parenthesis")
			}
			ops = ops[:len(ops)-1] // discard the '('
		case isOperator(t.kind):
			popWhile(func(top ppToken) bool {
				return isOperator(top.kind) && precedence(top.kind) >= precedence(t.kind)
			})
			ops = append(ops, t)
		}
	}

	popWhile(func(top ppToken) bool { return true })
	for _, t := range output {
		if t.kind == tokLParen {
			return nil, perr.NewBadRegex(t.pos, "unmatched opening parenthesis")
		}
	}

	return output, nil
}
