package mux

import (
	"fmt"
	"regexp"
)

// varMatcher validates a single route variable value.
// *regexp.Regexp satisfies this interface.
type varMatcher interface {
	MatchString(string) bool
	String() string
}

// patternMacros maps macro names to their compiled matchers.
// Used in route variable definitions: {name:macro}.
var patternMacros = func() map[string]varMatcher {
	raw := map[string]string{
		"uuid":     `[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`,
		"int":      `[0-9]+`,
		"float":    `[0-9]*\.?[0-9]+`,
		"slug":     `[a-zA-Z0-9]+(?:-[a-zA-Z0-9]+)*`,
		"alpha":    `[a-zA-Z]+`,
		"alphanum": `[a-zA-Z0-9]+`,
		"date":     `[0-9]{4}-[0-9]{2}-[0-9]{2}`,
		"hex":      `[0-9a-fA-F]+`,
	}

	m := make(map[string]varMatcher, len(raw))
	for name, pattern := range raw {
		m[name] = regexp.MustCompile(fmt.Sprintf("^%s$", pattern))
	}

	return m
}()

// compileConstraint returns the matcher for a variable constraint. Known
// macro names resolve to their pre-compiled matcher; anything else is
// compiled as an anchored regular expression.
func compileConstraint(constraint string) (varMatcher, error) {
	if m, ok := patternMacros[constraint]; ok {
		return m, nil
	}

	re, err := regexp.Compile(fmt.Sprintf("^(?:%s)$", constraint))
	if err != nil {
		return nil, err
	}

	return re, nil
}
