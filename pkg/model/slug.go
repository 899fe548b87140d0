package model

import "regexp"

// SlugPattern matches the identifier format used for all record ids and tags.
var SlugPattern = regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)*$`)

func IsSlug(arg string) bool {
	return SlugPattern.MatchString(arg)
}
