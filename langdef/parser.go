package langdef

import (
	"bytes"
	"errors"
	"io"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/ava12/rdp/internal/queue"
	"github.com/ava12/rdp/parser"
)

type tokenSpec struct {
	Name       string   `yaml:"name"`
	Pattern    string   `yaml:"pattern"`
	Next       []string `yaml:"next"`
	Terminator bool     `yaml:"terminator"`
}

type alternativeSpec struct {
	Token    *string   `yaml:"token"`
	Rule     *string   `yaml:"rule"`
	Repeat   *string   `yaml:"repeat"`
	Sequence *[]string `yaml:"sequence"`
}

type ruleSpec struct {
	Name         string            `yaml:"name"`
	Alternatives []alternativeSpec `yaml:"alternatives"`
}

type grammarSpec struct {
	Start  []string    `yaml:"start"`
	Tokens []tokenSpec `yaml:"tokens"`
	Rules  []ruleSpec  `yaml:"rules"`
}

// ParseString parses grammar description, name is used in error messages.
func ParseString(name, content string) (*Grammar, error) {
	return Parse(name, []byte(content))
}

// Parse parses grammar description, name is used in error messages.
func Parse(name string, content []byte) (*Grammar, error) {
	var spec grammarSpec
	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)
	e := dec.Decode(&spec)
	if e != nil && !errors.Is(e, io.EOF) {
		return nil, decodeError(name, e)
	}

	c := &buildContext{
		name: name,
		g: &Grammar{
			name:       name,
			root:       &TokenDef{name: RootTokenName},
			tokenIndex: make(map[string]*TokenDef),
			ruleIndex:  make(map[string]*RuleDef),
		},
	}
	e = c.build(&spec)
	if e != nil {
		return nil, e
	}

	return c.g, nil
}

type buildContext struct {
	name string
	g    *Grammar
}

func (c *buildContext) build(spec *grammarSpec) error {
	for _, step := range []func(*grammarSpec) error{c.defineTokens, c.linkTokens, c.checkTerminator, c.defineRules, c.buildRules} {
		if e := step(spec); e != nil {
			return e
		}
	}
	return nil
}

func (c *buildContext) defineTokens(spec *grammarSpec) error {
	for i, ts := range spec.Tokens {
		if ts.Name == "" {
			return emptyNameError(c.name, "token", i)
		}
		if c.g.tokenIndex[ts.Name] != nil {
			return defTokenError(c.name, ts.Name)
		}
		if _, e := regexp.Compile(ts.Pattern); e != nil {
			return regexpError(c.name, ts.Name, e)
		}

		t := &TokenDef{name: ts.Name, pattern: ts.Pattern, terminator: ts.Terminator}
		c.g.tokens = append(c.g.tokens, t)
		c.g.tokenIndex[t.name] = t
	}
	return nil
}

func (c *buildContext) resolveTokens(names []string, where string) ([]*TokenDef, error) {
	res := make([]*TokenDef, len(names))
	for i, n := range names {
		res[i] = c.g.tokenIndex[n]
		if res[i] == nil {
			return nil, unknownTokenError(c.name, n, where)
		}
	}
	return res, nil
}

func (c *buildContext) linkTokens(spec *grammarSpec) (e error) {
	c.g.root.next, e = c.resolveTokens(spec.Start, "start")
	if e != nil {
		return
	}

	for i, ts := range spec.Tokens {
		c.g.tokens[i].next, e = c.resolveTokens(ts.Next, "successors of token "+ts.Name)
		if e != nil {
			return
		}
	}
	return nil
}

func (c *buildContext) checkTerminator(*grammarSpec) error {
	q := queue.NewUnique(c.g.root)
	for !q.IsEmpty() {
		t, _ := q.First()
		if t.terminator {
			return nil
		}

		for _, n := range t.next {
			q.Append(n)
		}
	}
	return noTerminatorError(c.name)
}

func (c *buildContext) defineRules(spec *grammarSpec) error {
	if len(spec.Rules) == 0 {
		return noRulesError(c.name)
	}

	for i, rs := range spec.Rules {
		if rs.Name == "" {
			return emptyNameError(c.name, "rule", i)
		}
		if c.g.ruleIndex[rs.Name] != nil {
			return defRuleError(c.name, rs.Name)
		}

		r := &RuleDef{name: rs.Name}
		c.g.rules = append(c.g.rules, r)
		c.g.ruleIndex[r.name] = r
	}
	return nil
}

func (c *buildContext) buildRules(spec *grammarSpec) error {
	for i, rs := range spec.Rules {
		if len(rs.Alternatives) == 0 {
			return noAlternativesError(c.name, rs.Name)
		}

		r := c.g.rules[i]
		r.alternatives = make([]Alternative, len(rs.Alternatives))
		for j, as := range rs.Alternatives {
			alt, e := c.buildAlternative(rs.Name, j, &as)
			if e != nil {
				return e
			}
			r.alternatives[j] = alt
		}
	}
	return nil
}

func (c *buildContext) resolveRule(name, rule string) (*RuleDef, error) {
	r := c.g.ruleIndex[name]
	if r == nil {
		return nil, unknownRuleError(c.name, name, "rule "+rule)
	}
	return r, nil
}

func (c *buildContext) buildAlternative(rule string, index int, as *alternativeSpec) (alt Alternative, e error) {
	kinds := 0
	for _, set := range []bool{as.Token != nil, as.Rule != nil, as.Repeat != nil, as.Sequence != nil} {
		if set {
			kinds++
		}
	}
	if kinds != 1 {
		return alt, wrongAlternativeError(c.name, rule, index)
	}

	var r *RuleDef
	switch {
	case as.Token != nil:
		t := c.g.tokenIndex[*as.Token]
		if t == nil {
			return alt, unknownTokenError(c.name, *as.Token, "rule "+rule)
		}
		return parser.Match[*TokenDef, *RuleDef](t), nil

	case as.Rule != nil:
		r, e = c.resolveRule(*as.Rule, rule)
		if e == nil {
			alt = parser.Sub[*TokenDef](r)
		}

	case as.Repeat != nil:
		r, e = c.resolveRule(*as.Repeat, rule)
		if e == nil {
			alt = parser.Repeat[*TokenDef](r)
		}

	default:
		if len(*as.Sequence) == 0 {
			return alt, emptySequenceError(c.name, rule, index)
		}

		rules := make([]*RuleDef, len(*as.Sequence))
		for i, name := range *as.Sequence {
			rules[i], e = c.resolveRule(name, rule)
			if e != nil {
				return
			}
		}
		alt = parser.Sequence[*TokenDef](rules...)
	}
	return
}
