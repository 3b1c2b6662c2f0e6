package langdef

import (
	"github.com/ava12/rdp"
)

const (
	DecodeError = rdp.LangDefErrors + iota
	EmptyNameError
	TokenDefinedError
	RuleDefinedError
	WrongRegexpError
	UnknownTokenError
	UnknownRuleError
	WrongAlternativeError
	NoAlternativesError
	EmptySequenceError
	NoRulesError
	NoTerminatorError
)

func decodeError(name string, e error) *rdp.Error {
	return rdp.FormatError(DecodeError, "%s: cannot decode grammar: %s", name, e)
}

func emptyNameError(name, what string, index int) *rdp.Error {
	return rdp.FormatError(EmptyNameError, "%s: %s #%d has no name", name, what, index)
}

func defTokenError(name, token string) *rdp.Error {
	return rdp.FormatError(TokenDefinedError, "%s: token %q already defined", name, token)
}

func defRuleError(name, rule string) *rdp.Error {
	return rdp.FormatError(RuleDefinedError, "%s: rule %q already defined", name, rule)
}

func regexpError(name, token string, e error) *rdp.Error {
	return rdp.FormatError(WrongRegexpError, "%s: incorrect pattern for token %q (%s)", name, token, e)
}

func unknownTokenError(name, token, where string) *rdp.Error {
	return rdp.FormatError(UnknownTokenError, "%s: undefined token %q in %s", name, token, where)
}

func unknownRuleError(name, rule, where string) *rdp.Error {
	return rdp.FormatError(UnknownRuleError, "%s: undefined rule %q in %s", name, rule, where)
}

func wrongAlternativeError(name, rule string, index int) *rdp.Error {
	return rdp.FormatError(WrongAlternativeError,
		"%s: alternative #%d of rule %q must have exactly one of token, rule, repeat, sequence keys", name, index, rule)
}

func noAlternativesError(name, rule string) *rdp.Error {
	return rdp.FormatError(NoAlternativesError, "%s: rule %q has no alternatives", name, rule)
}

func emptySequenceError(name, rule string, index int) *rdp.Error {
	return rdp.FormatError(EmptySequenceError, "%s: alternative #%d of rule %q is an empty sequence", name, index, rule)
}

func noRulesError(name string) *rdp.Error {
	return rdp.FormatError(NoRulesError, "%s: no rules defined", name)
}

func noTerminatorError(name string) *rdp.Error {
	return rdp.FormatError(NoTerminatorError, "%s: no terminator token reachable from start", name)
}
