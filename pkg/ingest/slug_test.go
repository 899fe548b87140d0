package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hiddenvector/mkw-data-api/pkg/model"
)

func TestToID(t *testing.T) {
	tests := []struct {
		name string
		arg  string
		want string
	}{
		{name: "simple", arg: "Mario", want: "mario"},
		{name: "spaces", arg: "Standard Kart", want: "standard-kart"},
		{name: "question mark", arg: "Great ? Block Ruins", want: "great-question-block-ruins"},
		{name: "periods", arg: "R.O.B. H.O.G.", want: "rob-hog"},
		{name: "apostrophe", arg: "Toad's Factory", want: "toads-factory"},
		{name: "underscore", arg: "dk_spaceport", want: "dk-spaceport"},
		{name: "whitespace runs", arg: "Cheep   Cheep  Falls", want: "cheep-cheep-falls"},
		{name: "leading and trailing space", arg: "  Peach Beach  ", want: "peach-beach"},
		{name: "hyphenated source name", arg: "Sky-High Sundae", want: "sky-high-sundae"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToID(tt.arg)
			assert.Equal(t, tt.want, got)
			assert.True(t, model.IsSlug(got), "result %q must be a slug", got)
		})
	}
}

func TestToID_IdempotentOnOutput(t *testing.T) {
	for _, arg := range []string{
		"Great ? Block Ruins",
		"R.O.B. H.O.G.",
		"Toad's Factory",
		"Salty Salty Speedway",
	} {
		slug := ToID(arg)
		assert.Equal(t, slug, ToID(slug))
	}
}
