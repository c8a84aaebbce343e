package enum

import (
	"strings"
	"unicode"
)

// constName normalizes an identifier to constant form: underscores are
// inserted at case transitions (including the tail of an acronym run) and
// before digit runs, everything is upper-cased, and runs of separators
// collapse to one underscore. Both declared constant names and predicate
// arguments pass through it, so "remoteWorker", "remote_worker", and
// "REMOTE_WORKER" all normalize to the same form.
//
//	constName("remoteWorker")  // "REMOTE_WORKER"
//	constName("HTTPServer")    // "HTTP_SERVER"
//	constName("area51")        // "AREA_51"
//	constName("foo--bar")      // "FOO_BAR"
func constName(name string) string {
	runes := []rune(name)
	var b strings.Builder
	b.Grow(len(name) + len(name)/2)

	for i, r := range runes {
		if r == '_' || r == '-' || r == ' ' || r == '.' {
			b.WriteRune('_')
			continue
		}
		if i > 0 && boundaryBefore(runes, i) {
			b.WriteRune('_')
		}
		b.WriteRune(unicode.ToUpper(r))
	}

	words := strings.FieldsFunc(b.String(), func(r rune) bool { return r == '_' })
	return strings.Join(words, "_")
}

// boundaryBefore reports whether a word boundary falls before runes[i]:
// an upper-case rune after a lower-case or digit rune, the last upper-case
// rune of a run that is followed by lower case ("HTTPServer" breaks before
// the S), or the start of a digit run.
func boundaryBefore(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	switch {
	case unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)):
		return true
	case unicode.IsUpper(r) && unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
		return true
	case unicode.IsDigit(r) && unicode.IsLetter(prev):
		return true
	}
	return false
}
