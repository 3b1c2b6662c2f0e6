package parser

import (
	"math"

	"github.com/ava12/rdp/internal/ints"
	"github.com/ava12/rdp/internal/queue"
	"github.com/ava12/rdp/lexer"
)

// unbounded is the leading depth of alternatives that can reach a left-recursive cycle.
const unbounded = math.MaxInt32

const (
	leadUnknown = iota
	leadActive
	leadDone
)

type altInfo struct {
	nullable bool
	first    *ints.Set
	lead     int
}

type ruleInfo[T, R any] struct {
	children  []RuleType[T, R]
	nullable  bool
	first     *ints.Set
	lead      int
	leadState int
	alts      []altInfo
}

// analysis holds static properties of the rules reachable from the root rule:
//   - nullable: the rule (alternative) can succeed without consuming a token;
//   - first: categories of tokens the rule (alternative) can start with;
//   - lead: the deepest rule nesting the rule (alternative) can reach without consuming a token.
//
// An alternative that is not nullable, does not contain the current token category
// in its first set and cannot reach the depth limit is bound to fail softly.
type analysis[T lexer.Token[T], R Rule[T, R]] struct {
	tokens map[T]int
	rules  map[R]*ruleInfo[T, R]
	order  []R
}

func analyze[T lexer.Token[T], R Rule[T, R]](root R) *analysis[T, R] {
	a := &analysis[T, R]{
		tokens: make(map[T]int),
		rules:  make(map[R]*ruleInfo[T, R]),
	}

	q := queue.NewUnique(root)
	for !q.IsEmpty() {
		r, _ := q.First()
		children := r.Children()
		a.rules[r] = &ruleInfo[T, R]{
			children: children,
			first:    &ints.Set{},
			alts:     make([]altInfo, len(children)),
		}
		a.order = append(a.order, r)

		for _, alt := range children {
			if alt.kind == TokenKind {
				if _, f := a.tokens[alt.token]; !f {
					a.tokens[alt.token] = len(a.tokens)
				}
			}
			for _, s := range alt.rules {
				q.Append(s)
			}
		}
	}

	a.computeNullable()
	a.computeFirst()
	for _, r := range a.order {
		a.leadDepth(r)
	}
	for _, r := range a.order {
		ri := a.rules[r]
		for i, alt := range ri.children {
			ri.alts[i].nullable = a.isNullable(alt)
			ri.alts[i].first = &ints.Set{}
			a.addFirst(ri.alts[i].first, alt)
		}
	}
	return a
}

func (a *analysis[T, R]) isNullable(alt RuleType[T, R]) bool {
	switch alt.kind {
	case TokenKind:
		return false
	case RepeatKind:
		return true
	default:
		for _, s := range alt.rules {
			if !a.rules[s].nullable {
				return false
			}
		}
		return true
	}
}

func (a *analysis[T, R]) computeNullable() {
	for changed := true; changed; {
		changed = false
		for _, r := range a.order {
			ri := a.rules[r]
			if ri.nullable {
				continue
			}

			for _, alt := range ri.children {
				if a.isNullable(alt) {
					ri.nullable = true
					changed = true
					break
				}
			}
		}
	}
}

func (a *analysis[T, R]) addFirst(dst *ints.Set, alt RuleType[T, R]) (changed bool) {
	if alt.kind == TokenKind {
		index := a.tokens[alt.token]
		if !dst.Contains(index) {
			dst.Add(index)
			changed = true
		}
		return
	}

	for _, s := range alt.rules {
		si := a.rules[s]
		changed = dst.Union(si.first) || changed
		if alt.kind != SequenceKind || !si.nullable {
			break
		}
	}
	return
}

func (a *analysis[T, R]) computeFirst() {
	for changed := true; changed; {
		changed = false
		for _, r := range a.order {
			ri := a.rules[r]
			for _, alt := range ri.children {
				changed = a.addFirst(ri.first, alt) || changed
			}
		}
	}
}

func (a *analysis[T, R]) leadDepth(r R) int {
	ri := a.rules[r]
	switch ri.leadState {
	case leadDone:
		return ri.lead
	case leadActive:
		return unbounded
	}

	ri.leadState = leadActive
	lead := 0
	for i, alt := range ri.children {
		ri.alts[i].lead = a.altLead(alt)
		lead = max(lead, ri.alts[i].lead)
	}
	ri.lead = lead
	ri.leadState = leadDone
	return lead
}

func (a *analysis[T, R]) altLead(alt RuleType[T, R]) int {
	result := 0
	for _, s := range alt.rules {
		depth := a.leadDepth(s)
		if depth < unbounded {
			depth++
		}
		result = max(result, depth)
		if alt.kind != SequenceKind || !a.rules[s].nullable {
			break
		}
	}
	return result
}

// canSkip returns true if each of the first count alternatives of rule r
// is bound to fail with noAlternative when tried at given position and depth.
// Nothing is skipped at the end of token stream, where failures are tokensExhausted.
func (a *analysis[T, R]) canSkip(r R, count int, next *lexer.ParsedToken[T], depth, maxDepth int) bool {
	ri := a.rules[r]
	if ri == nil || next == nil || count > len(ri.alts) {
		return false
	}

	category := -1
	if index, f := a.tokens[next.Token]; f {
		category = index
	}

	for _, alt := range ri.alts[:count] {
		if alt.nullable || alt.first.Contains(category) || alt.lead >= maxDepth-depth {
			return false
		}
	}
	return true
}
