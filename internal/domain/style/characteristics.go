package style

import "strings"

// Complexity grades how many distinct flavor dimensions a style asks for.
type Complexity string

const (
	ComplexitySimple   Complexity = "simple"
	ComplexityModerate Complexity = "moderate"
	ComplexityComplex  Complexity = "complex"
)

// Characteristics are qualitative traits derived from a guide's text and
// numeric ranges. They are recomputed per analysis call and never stored.
type Characteristics struct {
	IsHopForward  bool
	IsMaltForward bool
	IsBalanced    bool
	IsDark        bool
	IsLight       bool
	Complexity    Complexity

	HopKeywords    []string
	MaltKeywords   []string
	FlavorKeywords []string
}

const maxKeywords = 50

// Association thresholds for the keyword-overlap scores.
const (
	forwardThreshold  = 0.3
	balancedThreshold = 0.2
)

var stopWords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "but": true, "by": true, "for": true, "from": true,
	"has": true, "have": true, "in": true, "is": true, "it": true,
	"its": true, "may": true, "no": true, "not": true, "of": true,
	"on": true, "or": true, "should": true, "that": true, "the": true,
	"this": true, "to": true, "with": true, "will": true, "can": true,
	"very": true, "some": true, "more": true, "most": true, "than": true,
}

var hopAssociated = map[string]bool{
	"hop": true, "hops": true, "hoppy": true, "bitter": true,
	"bitterness": true, "citrus": true, "citrusy": true, "pine": true,
	"piney": true, "resin": true, "resinous": true, "grapefruit": true,
	"tropical": true, "floral": true, "dank": true, "herbal": true,
	"spicy": true, "ipa": true, "dry-hopped": true, "juicy": true,
}

var maltAssociated = map[string]bool{
	"malt": true, "malty": true, "malts": true, "caramel": true,
	"toffee": true, "bready": true, "bread": true, "biscuit": true,
	"toast": true, "toasty": true, "roast": true, "roasted": true,
	"roasty": true, "chocolate": true, "coffee": true, "nutty": true,
	"sweet": true, "sweetness": true, "grainy": true, "rich": true,
}

var flavorDescriptors = map[string]bool{
	"citrus": true, "pine": true, "tropical": true, "floral": true,
	"caramel": true, "toffee": true, "chocolate": true, "coffee": true,
	"fruity": true, "estery": true, "spicy": true, "herbal": true,
	"earthy": true, "smoky": true, "tart": true, "crisp": true,
	"dry": true, "juicy": true, "nutty": true, "bready": true,
	"roasty": true, "dank": true,
}

// Color boundaries on the SRM range. Numeric signals outrank any text
// inference for color, since published ranges are authoritative.
const (
	darkMinSRM  = 15.0
	darkMaxSRM  = 25.0
	lightMaxSRM = 6.0
)

// AnalyzeCharacteristics derives a guide's qualitative traits. Missing
// text fields degrade gracefully: scores trend to zero and the style
// reads as balanced with simple complexity.
func AnalyzeCharacteristics(g Guide) Characteristics {
	tokens := tokenize(strings.Join([]string{
		g.Aroma, g.Flavor, g.Appearance, g.OverallImpression,
	}, " "))

	var hopMatches, maltMatches []string
	flavorSeen := map[string]bool{}
	for _, tok := range tokens {
		if hopAssociated[tok] {
			hopMatches = append(hopMatches, tok)
		}
		if maltAssociated[tok] {
			maltMatches = append(maltMatches, tok)
		}
		if flavorDescriptors[tok] && !flavorSeen[tok] {
			flavorSeen[tok] = true
		}
	}

	var hopScore, maltScore float64
	if len(tokens) > 0 {
		hopScore = float64(len(hopMatches)) / float64(len(tokens))
		maltScore = float64(len(maltMatches)) / float64(len(tokens))
	}

	c := Characteristics{
		IsHopForward:  hopScore > maltScore && hopScore > forwardThreshold,
		IsMaltForward: maltScore > hopScore && maltScore > forwardThreshold,
		HopKeywords:   hopMatches,
		MaltKeywords:  maltMatches,
		Complexity:    complexityFor(len(flavorSeen)),
	}
	c.IsBalanced = !c.IsHopForward && !c.IsMaltForward &&
		abs(hopScore-maltScore) < balancedThreshold

	for tok := range flavorSeen {
		c.FlavorKeywords = append(c.FlavorKeywords, tok)
	}

	// SRM bounds override text for color.
	if g.SRM.Defined() {
		if (g.SRM.Min != nil && *g.SRM.Min > darkMinSRM) ||
			(g.SRM.Max != nil && *g.SRM.Max > darkMaxSRM) {
			c.IsDark = true
		}
		if !c.IsDark && g.SRM.Max != nil && *g.SRM.Max < lightMaxSRM {
			c.IsLight = true
		}
	}

	return c
}

func complexityFor(distinctFlavors int) Complexity {
	switch {
	case distinctFlavors >= 6:
		return ComplexityComplex
	case distinctFlavors >= 3:
		return ComplexityModerate
	default:
		return ComplexitySimple
	}
}

// tokenize lowercases, splits on non-letter boundaries, strips stop
// words, and caps the token stream at maxKeywords.
func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !(r >= 'a' && r <= 'z') && r != '-'
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, "-")
		if f == "" || stopWords[f] {
			continue
		}
		tokens = append(tokens, f)
		if len(tokens) == maxKeywords {
			break
		}
	}
	return tokens
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
