package content

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/forPelevin/gomoji"
)

// default filter limits
const (
	DefaultMaxLength = 600
	DefaultMaxEmoji  = 2
)

// bannedTerms are checked as case-insensitive substrings. The list is
// deliberately blunt: a motivational bot has no business getting anywhere
// near medical advice, religion, politics or guilt-tripping.
var bannedTerms = []string{
	// medical / psychological
	"depress",
	"anxiety",
	"therapy",
	"diagnos",
	"medication",
	"suicid",
	"burnout",
	// profanity
	"fuck",
	"shit",
	"bastard",
	"asshole",
	// religious / political
	"jesus",
	"allah",
	"prayer",
	"church",
	"politic",
	"election",
	"liberal",
	"conservative",
	// guilt-inducing imperatives
	"you must",
	"you have to",
	"no excuses",
	"stop being lazy",
	"everyone else is",
}

// Filter runs the content safety checks. Checks run in a fixed order
// (length, banned terms, emoji density) and the first failure wins; the
// returned reason describes that failing check only.
type Filter struct {
	maxLength int
	maxEmoji  int
}

// FilterConfig holds filter limits; zero values get the defaults.
type FilterConfig struct {
	MaxLength int
	MaxEmoji  int
}

// NewFilter creates a filter with the given limits.
func NewFilter(cfg FilterConfig) *Filter {
	if cfg.MaxLength <= 0 {
		cfg.MaxLength = DefaultMaxLength
	}
	if cfg.MaxEmoji <= 0 {
		cfg.MaxEmoji = DefaultMaxEmoji
	}
	return &Filter{maxLength: cfg.MaxLength, maxEmoji: cfg.MaxEmoji}
}

// Check reports whether text is safe to send and, when it isn't, a
// human-readable reason for the first failing check.
func (f *Filter) Check(text string) (ok bool, reason string) {
	if strings.TrimSpace(text) == "" {
		return false, "text is empty"
	}
	if n := utf8.RuneCountInString(text); n > f.maxLength {
		return false, fmt.Sprintf("text length %d exceeds limit of %d characters", n, f.maxLength)
	}

	lower := strings.ToLower(text)
	for _, term := range bannedTerms {
		if strings.Contains(lower, term) {
			return false, fmt.Sprintf("text contains banned term %q", term)
		}
	}

	// gomoji handles composed sequences (flags, ZWJ joins, skin tones) as
	// single emojis, which is what the density cap is about
	if n := len(gomoji.FindAll(text)); n > f.maxEmoji {
		return false, fmt.Sprintf("too many emojis: %d exceeds limit of %d", n, f.maxEmoji)
	}

	return true, ""
}
