package swagger

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DocumentPath rewrites route variables into document path syntax:
// "/users/:id" and "/users/{id:int}" both become "/users/{id}". A colon
// token runs to the end of its segment.
func DocumentPath(url string) string {
	segments := strings.Split(url, "/")
	for i, seg := range segments {
		if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") {
			name, _, _ := strings.Cut(seg[1:len(seg)-1], ":")
			segments[i] = "{" + name + "}"
			continue
		}

		if idx := strings.IndexByte(seg, ':'); idx >= 0 && idx < len(seg)-1 {
			segments[i] = seg[:idx] + "{" + seg[idx+1:] + "}"
		}
	}
	return strings.Join(segments, "/")
}

// CamelName derives an operation nickname from a URL: segments split on
// "/" and "_" are joined in camel case, dropping everything that is not a
// letter or digit. "/users/:id/post_tags" becomes "usersIdPostTags".
func CamelName(url string) string {
	words := strings.FieldsFunc(DocumentPath(url), func(r rune) bool {
		return r == '/' || r == '_'
	})

	lower := cases.Lower(language.Und)
	title := cases.Title(language.Und, cases.NoLower)

	var b strings.Builder
	for _, w := range words {
		w = strings.Map(func(r rune) rune {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				return r
			}
			return -1
		}, w)
		if w == "" {
			continue
		}

		if b.Len() == 0 {
			b.WriteString(lower.String(w))
		} else {
			b.WriteString(title.String(w))
		}
	}
	return b.String()
}

// resourceKey returns the first segment of url, the default resource
// grouping key.
func resourceKey(url string) string {
	parts := strings.SplitN(url, "/", 3)
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}
