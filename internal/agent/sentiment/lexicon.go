// internal/agent/sentiment/lexicon.go
package sentiment

// lexicon maps lowercase words to a polarity in [-1, 1]. Scores follow the
// usual pattern-lexicon conventions: strong adjectives at the extremes,
// hedged or mild words near the thresholds.
var lexicon = map[string]float64{
	// positive
	"amazing":     0.8,
	"awesome":     1.0,
	"best":        1.0,
	"better":      0.5,
	"brilliant":   0.9,
	"delighted":   0.8,
	"excellent":   1.0,
	"fantastic":   0.9,
	"glad":        0.5,
	"good":        0.7,
	"great":       0.8,
	"happy":       0.8,
	"helpful":     0.6,
	"impressed":   0.7,
	"like":        0.3,
	"love":        0.5,
	"nice":        0.6,
	"perfect":     1.0,
	"pleased":     0.6,
	"smooth":      0.4,
	"thanks":      0.3,
	"thank":       0.3,
	"wonderful":   1.0,

	// negative
	"angry":         -0.8,
	"annoyed":       -0.6,
	"annoying":      -0.6,
	"awful":         -1.0,
	"bad":           -0.7,
	"broken":        -0.4,
	"confusing":     -0.4,
	"disappointed":  -0.75,
	"disappointing": -0.75,
	"frustrated":    -0.6,
	"frustrating":   -0.6,
	"furious":       -0.9,
	"hate":          -0.8,
	"horrible":      -1.0,
	"miserable":     -0.8,
	"pathetic":      -0.8,
	"poor":          -0.4,
	"ridiculous":    -0.6,
	"sad":           -0.5,
	"slow":          -0.3,
	"terrible":      -1.0,
	"unacceptable":  -0.8,
	"unhappy":       -0.6,
	"unusable":      -0.7,
	"useless":       -0.6,
	"worst":         -1.0,
	"worthless":     -0.8,
	"wrong":         -0.5,
}

// negators invert and dampen the polarity of the word they precede.
var negators = map[string]bool{
	"not":    true,
	"no":     true,
	"never":  true,
	"nobody": true,
	"none":   true,
	"cannot": true,
	"can't":  true,
	"won't":  true,
	"don't":  true,
	"isn't":  true,
	"wasn't": true,
}
