package scripts

import (
	"regexp"
	"strings"
)

var (
	tokenDisallowed = regexp.MustCompile(`[^a-zA-Z0-9\-_=:.]`)
	titleDisallowed = regexp.MustCompile(`[^a-zA-Z0-9 \-_]`)
)

// DefaultSheetTitle is used when a sheet is created without a title.
const DefaultSheetTitle = "InboxBench Report"

// ValidToken reports whether tok is non-empty and uses only the API token charset.
func ValidToken(tok string) bool {
	return tok != "" && !tokenDisallowed.MatchString(tok)
}

// CleanURL strips quote characters.
func CleanURL(u string) string {
	return strings.NewReplacer(`"`, "", `'`, "").Replace(u)
}

// CleanEmail strips quote characters and spaces.
func CleanEmail(e string) string {
	return strings.NewReplacer(`"`, "", `'`, "", " ", "").Replace(e)
}

// CleanTitle keeps letters, digits, spaces, dashes and underscores.
func CleanTitle(t string) string {
	if t == "" {
		t = DefaultSheetTitle
	}
	return titleDisallowed.ReplaceAllString(t, "")
}
