package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilter_Length(t *testing.T) {
	f := NewFilter(FilterConfig{})

	ok, reason := f.Check(strings.Repeat("a", 600))
	assert.True(t, ok, reason)

	ok, reason = f.Check(strings.Repeat("a", 601))
	assert.False(t, ok)
	assert.Contains(t, reason, "length")

	ok, reason = f.Check("   \t\n  ")
	assert.False(t, ok)
	assert.Contains(t, reason, "empty")

	ok, reason = f.Check("")
	assert.False(t, ok)
	assert.Contains(t, reason, "empty")
}

func TestFilter_BannedTerms(t *testing.T) {
	f := NewFilter(FilterConfig{})

	ok, reason := f.Check("This will cure your Depression in a week")
	assert.False(t, ok, "case insensitive match")
	assert.Contains(t, reason, "depress")

	ok, reason = f.Check("YOU MUST work harder than everyone")
	assert.False(t, ok)
	assert.Contains(t, reason, "you must")

	ok, _ = f.Check("Keep calm and keep shipping")
	assert.True(t, ok)
}

func TestFilter_EmojiDensity(t *testing.T) {
	f := NewFilter(FilterConfig{})

	ok, _ := f.Check("Have a great day! 🎈🎉")
	assert.True(t, ok, "two emojis pass")

	ok, reason := f.Check("Have a great day! 🎈🎉✨")
	assert.False(t, ok, "three emojis fail")
	assert.Contains(t, reason, "emoji")

	// composed sequences count as single emojis
	ok, _ = f.Check("Team spirit 👩‍💻 and flags 🇩🇪")
	assert.True(t, ok)
}

func TestFilter_Ordering(t *testing.T) {
	f := NewFilter(FilterConfig{})

	// text that is both too long and contains a banned term reports length
	text := strings.Repeat("x", 590) + " this is about politics " + strings.Repeat("y", 20)
	ok, reason := f.Check(text)
	assert.False(t, ok)
	assert.Contains(t, reason, "length", "length check runs before banned terms")

	// banned term plus too many emojis reports the banned term
	ok, reason = f.Check("politics 🎈🎉✨")
	assert.False(t, ok)
	assert.Contains(t, reason, "politic", "banned terms run before emoji count")
}

func TestFilter_CustomLimits(t *testing.T) {
	f := NewFilter(FilterConfig{MaxLength: 10, MaxEmoji: 1})

	ok, _ := f.Check("short one")
	assert.True(t, ok)

	ok, reason := f.Check("way too long for this limit")
	assert.False(t, ok)
	assert.Contains(t, reason, "length")

	ok, _ = f.Check("hi 🎈🎉")
	assert.False(t, ok)
}
