package shape

import (
	"regexp"
	"strings"
)

var (
	attrRe  = regexp.MustCompile(`^[\w-]+$`)
	upperRe = regexp.MustCompile(`[A-Z]`)
)

// AttrName returns the canonical form of an attribute name.
//
// Names must consist only of word characters and hyphens; anything else is
// rejected with ok == false. Names starting with "data" or "aria" are
// converted from camelCase to kebab-case: dataFooBar becomes data-foo-bar.
// Other names are returned unchanged, case included.
func AttrName(name string) (string, bool) {
	if !attrRe.MatchString(name) {
		return "", false
	}
	if strings.HasPrefix(name, "data") || strings.HasPrefix(name, "aria") {
		name = strings.ToLower(upperRe.ReplaceAllString(name, "-$0"))
	}
	return name, true
}
