package mux

import (
	"fmt"
	"strings"
)

// segment is one "/"-delimited piece of a path template.
type segment struct {
	// literal is the raw text for static segments; empty for variables.
	literal string
	// name is the variable name; empty for static segments.
	name string
	// matcher constrains the variable value; nil accepts any non-empty value.
	matcher varMatcher
}

func (s segment) isVar() bool {
	return s.name != ""
}

// pathTemplate stores a parsed route path template.
type pathTemplate struct {
	// template is the original template string.
	template string
	// segments are the parsed segments, without the leading slash.
	segments []segment
	// prefix indicates a prefix match.
	prefix bool
	// varsN are the variable names in order.
	varsN []string
}

// parseTemplate parses a path template per RFC 3986 Section 3.3.
// Variables are written ":name", "{name}" or "{name:constraint}" and must
// occupy a whole segment.
func parseTemplate(tpl string, prefix bool) (*pathTemplate, error) {
	if !strings.HasPrefix(tpl, "/") {
		return nil, fmt.Errorf("mux: path must start with a slash, got %q", tpl)
	}

	raw := strings.Split(tpl[1:], "/")
	if prefix && len(raw) > 0 && raw[len(raw)-1] == "" {
		// "/api/" as a prefix matches the same paths as "/api".
		raw = raw[:len(raw)-1]
	}

	pt := &pathTemplate{
		template: tpl,
		segments: make([]segment, 0, len(raw)),
		prefix:   prefix,
	}

	for _, part := range raw {
		seg, err := parseSegment(part, tpl)
		if err != nil {
			return nil, err
		}
		if seg.isVar() {
			for _, existing := range pt.varsN {
				if existing == seg.name {
					return nil, fmt.Errorf("mux: duplicated route variable %q", seg.name)
				}
			}
			pt.varsN = append(pt.varsN, seg.name)
		}
		pt.segments = append(pt.segments, seg)
	}

	return pt, nil
}

func parseSegment(part, tpl string) (segment, error) {
	switch {
	case strings.HasPrefix(part, ":"):
		name := part[1:]
		if name == "" || strings.ContainsAny(name, "{}") {
			return segment{}, fmt.Errorf("mux: invalid variable %q in %q", part, tpl)
		}
		return segment{name: name}, nil

	case strings.HasPrefix(part, "{"):
		if !strings.HasSuffix(part, "}") || strings.Count(part, "{") != 1 {
			return segment{}, fmt.Errorf("mux: unbalanced braces in %q", tpl)
		}
		name, constraint, hasConstraint := strings.Cut(part[1:len(part)-1], ":")
		if name == "" {
			return segment{}, fmt.Errorf("mux: missing name in %q from %q", part, tpl)
		}
		seg := segment{name: name}
		if hasConstraint {
			m, err := compileConstraint(constraint)
			if err != nil {
				return segment{}, fmt.Errorf("mux: invalid pattern %q in variable %q: %w", constraint, name, err)
			}
			seg.matcher = m
		}
		return seg, nil

	case strings.ContainsAny(part, "{}"):
		return segment{}, fmt.Errorf("mux: variables must span a whole segment in %q", tpl)
	}

	return segment{literal: part}, nil
}

// match reports whether the path matches the template and returns the
// extracted variables.
func (t *pathTemplate) match(path string) (map[string]string, bool) {
	parts := strings.Split(strings.TrimPrefix(path, "/"), "/")

	if t.prefix {
		if len(parts) < len(t.segments) {
			return nil, false
		}
	} else if len(parts) != len(t.segments) {
		return nil, false
	}

	var vars map[string]string
	for i, seg := range t.segments {
		part := parts[i]
		if !seg.isVar() {
			if part != seg.literal {
				return nil, false
			}
			continue
		}
		if part == "" {
			return nil, false
		}
		if seg.matcher != nil && !seg.matcher.MatchString(part) {
			return nil, false
		}
		if vars == nil {
			vars = make(map[string]string, len(t.varsN))
		}
		vars[seg.name] = part
	}

	return vars, true
}
