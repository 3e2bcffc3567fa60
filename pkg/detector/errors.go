package detector

import (
	"fmt"
	"strings"
)

// InvalidRuleSetError reports a framework whose declared parent is neither the
// active runtime nor another framework in the rule set. This is a
// rule-authoring defect and fails matcher construction.
type InvalidRuleSetError struct {
	Framework string
	Parent    string
}

func (e *InvalidRuleSetError) Error() string {
	return fmt.Sprintf("invalid rule set: framework %q declares unknown parent %q", e.Framework, e.Parent)
}

// AmbiguousRuntimeError reports that more than one runtime detector matched
// the same codebase. Runtime predicates are expected to be mutually exclusive.
type AmbiguousRuntimeError struct {
	Runtimes []string
}

func (e *AmbiguousRuntimeError) Error() string {
	return fmt.Sprintf("ambiguous runtime: %s all matched", strings.Join(e.Runtimes, ", "))
}

// AmbiguousFrameworkError reports that two or more framework chains survived
// embeds resolution. It names the most-specific framework of each surviving
// chain so the rule-set gap (or codebase contradiction) is visible.
type AmbiguousFrameworkError struct {
	Frameworks []string
}

func (e *AmbiguousFrameworkError) Error() string {
	return fmt.Sprintf("ambiguous framework detection: %s", strings.Join(e.Frameworks, ", "))
}
