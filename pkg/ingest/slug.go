package ingest

import (
	"regexp"
	"strings"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	hyphenRun     = regexp.MustCompile(`-+`)
)

// ToID derives the canonical record id from a display name. Question marks
// become a literal "question" token so names like "Great ? Block Ruins"
// keep the punctuation as a meaningful part of the id
// ("great-question-block-ruins"). Pure function; applying it to an already
// valid slug returns the slug unchanged.
func ToID(name string) string {
	ret := strings.ToLower(name)
	ret = strings.ReplaceAll(ret, "?", " question ")
	ret = whitespaceRun.ReplaceAllString(ret, "-")
	ret = strings.ReplaceAll(ret, ".", "")
	ret = strings.ReplaceAll(ret, "'", "")
	ret = strings.ReplaceAll(ret, "_", "-")
	ret = hyphenRun.ReplaceAllString(ret, "-")
	return strings.Trim(ret, "-")
}
