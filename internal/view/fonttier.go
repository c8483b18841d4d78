package view

import "unicode/utf8"

// FontTier is a display size class for a slide face, from XL up to 9XL.
type FontTier int

// Font tiers, smallest first
const (
	TierXL FontTier = iota
	Tier2XL
	Tier3XL
	Tier4XL
	Tier5XL
	Tier7XL
	Tier9XL
)

var tierNames = [...]string{"xl", "2xl", "3xl", "4xl", "5xl", "7xl", "9xl"}

func (t FontTier) String() string {
	if t < 0 || int(t) >= len(tierNames) {
		return "xl"
	}
	return tierNames[t]
}

type tierStep struct {
	maxLen int
	tier   FontTier
}

var (
	frontSteps = []tierStep{{4, Tier9XL}, {8, Tier7XL}, {16, Tier5XL}, {25, Tier4XL}}
	backSteps  = []tierStep{{10, Tier4XL}, {25, Tier3XL}, {40, Tier2XL}}
)

// FrontTier returns the tier for content text. Length is counted in runes.
func FrontTier(text string) FontTier {
	return pickTier(text, frontSteps, Tier3XL)
}

// BackTier returns the tier for explanation text
func BackTier(text string) FontTier {
	return pickTier(text, backSteps, TierXL)
}

func pickTier(text string, steps []tierStep, fallback FontTier) FontTier {
	n := utf8.RuneCountInString(text)
	for _, s := range steps {
		if n <= s.maxLen {
			return s.tier
		}
	}
	return fallback
}
