package langdef

import (
	"github.com/ava12/rdp/lexer"
	"github.com/ava12/rdp/parser"
)

// RootTokenName is the name of implicit root category, its successors are listed in "start" key.
const RootTokenName = "$start"

// TokenDef is a lexical category defined in grammar description.
// Categories are compared by identity, so tokens of different grammars never match.
type TokenDef struct {
	name       string
	pattern    string
	next       []*TokenDef
	terminator bool
}

func (t *TokenDef) Name() string {
	return t.name
}

func (t *TokenDef) Pattern() string {
	return t.pattern
}

func (t *TokenDef) Next() []*TokenDef {
	return t.next
}

func (t *TokenDef) IsTerminator() bool {
	return t.terminator
}

func (t *TokenDef) String() string {
	return t.name
}

type Alternative = parser.RuleType[*TokenDef, *RuleDef]

// RuleDef is a grammar rule defined in grammar description.
type RuleDef struct {
	name         string
	alternatives []Alternative
}

func (r *RuleDef) Name() string {
	return r.name
}

// Children returns alternatives of the rule, the result must not be modified.
func (r *RuleDef) Children() []Alternative {
	return r.alternatives
}

func (r *RuleDef) String() string {
	return r.name
}

// Grammar holds tokens and rules defined in one description.
type Grammar struct {
	name       string
	root       *TokenDef
	tokens     []*TokenDef
	rules      []*RuleDef
	tokenIndex map[string]*TokenDef
	ruleIndex  map[string]*RuleDef
}

// Name returns the name grammar was parsed with.
func (g *Grammar) Name() string {
	return g.name
}

// Root returns the implicit root category.
func (g *Grammar) Root() *TokenDef {
	return g.root
}

// Document returns the root rule, i.e. the first one defined.
func (g *Grammar) Document() *RuleDef {
	return g.rules[0]
}

// Token returns the category with given name or nil.
func (g *Grammar) Token(name string) *TokenDef {
	return g.tokenIndex[name]
}

// Rule returns the rule with given name or nil.
func (g *Grammar) Rule(name string) *RuleDef {
	return g.ruleIndex[name]
}

// Tokens returns categories in definition order, the root one is not included.
func (g *Grammar) Tokens() []*TokenDef {
	return g.tokens
}

// Rules returns rules in definition order.
func (g *Grammar) Rules() []*RuleDef {
	return g.rules
}

// Lexer creates lexer for the grammar categories.
func (g *Grammar) Lexer() (*lexer.Lexer[*TokenDef], error) {
	return lexer.New(g.root)
}

// Parser creates parser for the grammar rules.
func (g *Grammar) Parser(opts ...parser.Option) *parser.Parser[*TokenDef, *RuleDef] {
	return parser.New[*TokenDef, *RuleDef](opts...)
}
