/*
Package langdef builds lexical categories and grammar rules from a YAML description,
so a grammar can be loaded at run time instead of being declared as Go types.

Description is a YAML document with three keys:

	start: [number, end]     # categories allowed at the start of input
	tokens:                  # lexical categories
	  - name: number
	    pattern: '\s*(-?\d+)\s*'
	    next: [plus, semicolon]
	  - name: plus
	    pattern: '\s*(\+)\s*'
	    next: [number]
	  - name: semicolon
	    pattern: '\s*(;)\s*'
	    next: [number, end]
	  - name: end
	    pattern: '\s*$'
	    terminator: true
	rules:                   # grammar rules, the first one is the root
	  - name: document
	    alternatives:
	      - sequence: [statements, end]
	  - name: statements
	    alternatives:
	      - repeat: statement
	  - name: statement
	    alternatives:
	      - sequence: [sum, semicolon]
	  - name: sum
	    alternatives:
	      - sequence: [number, plus, sum]
	      - rule: number
	  - name: number
	    alternatives:
	      - token: number
	  - name: plus
	    alternatives:
	      - token: plus
	  - name: semicolon
	    alternatives:
	      - token: semicolon
	  - name: end
	    alternatives:
	      - token: end

Token patterns use RE2 syntax, see lexer.Token for literal extraction rules.
Token and rule names live in separate namespaces. Every alternative must have
exactly one of token, rule, repeat, or sequence keys, referenced tokens and rules must be defined.
At least one terminator category must be reachable from start categories.

Unknown keys are errors. Errors returned by this package are *rdp.Error with LangDefErrors class codes.
*/
package langdef
