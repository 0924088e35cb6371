package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Government Announces New Economic Policy": "government-announces-new-economic-policy",
		"Award-Winning Film Breaks Box Office":     "award-winning-film-breaks-box-office",
		"  Café  Olé!  ":                           "cafe-ole",
		"C++ & Go -- 2024":                         "c-go-2024",
		"":                                         "",
	}
	for input, want := range cases {
		assert.Equal(t, want, Slugify(input), input)
	}
}

func TestIsValidSlug(t *testing.T) {
	assert.True(t, IsValidSlug("politics"))
	assert.True(t, IsValidSlug("stock-markets-2024"))

	assert.False(t, IsValidSlug(""))
	assert.False(t, IsValidSlug("Politics"))
	assert.False(t, IsValidSlug("-leading"))
	assert.False(t, IsValidSlug("double--hyphen"))
	assert.False(t, IsValidSlug("with space"))
}

func TestUnderscore(t *testing.T) {
	assert.Equal(t, "category_id", Underscore("CategoryID"))
	assert.Equal(t, "featured_image", Underscore("FeaturedImage"))
	assert.Equal(t, "title", Underscore("Title"))
	assert.Equal(t, "id", Underscore("ID"))
}

func TestSanitizeHTML(t *testing.T) {
	out := SanitizeHTML(`<p onclick="x()">Hello</p><script>alert(1)</script>`)
	assert.Equal(t, "<p>Hello</p>", out)
}
