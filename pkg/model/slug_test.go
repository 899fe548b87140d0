package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSlug(t *testing.T) {
	valid := []string{"mario", "baby-mario", "rob-hog", "great-question-block-ruins", "x1", "a"}
	for _, arg := range valid {
		assert.True(t, IsSlug(arg), arg)
	}
	invalid := []string{"", "Mario", "baby mario", "-mario", "mario-", "1up", "mario--kart", "über"}
	for _, arg := range invalid {
		assert.False(t, IsSlug(arg), arg)
	}
}
