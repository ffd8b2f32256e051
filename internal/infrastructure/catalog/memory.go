// Package catalog provides the style guide catalog: a built-in guideline
// set, a Redis-backed cache repository, and a caching decorator that
// composes the two.
package catalog

import (
	"context"
	"sort"
	"strings"

	"github.com/brewsmith/v1/internal/domain/style"
	"github.com/brewsmith/v1/internal/ports/outbound"
	"github.com/brewsmith/v1/pkg/errors"
)

// MemoryCatalog serves style guides from a built-in table. Lookups by
// name are case-insensitive.
type MemoryCatalog struct {
	byID   map[string]style.Guide
	byName map[string]string // lowercased name -> ID
}

// NewMemoryCatalog creates a catalog over the built-in guideline set.
func NewMemoryCatalog() *MemoryCatalog {
	return NewMemoryCatalogWith(builtinGuides())
}

// NewMemoryCatalogWith creates a catalog over an explicit guide list.
func NewMemoryCatalogWith(guides []style.Guide) *MemoryCatalog {
	c := &MemoryCatalog{
		byID:   make(map[string]style.Guide, len(guides)),
		byName: make(map[string]string, len(guides)),
	}
	for _, g := range guides {
		c.byID[g.ID] = g
		c.byName[strings.ToLower(g.Name)] = g.ID
	}
	return c
}

var _ outbound.StyleCatalog = (*MemoryCatalog)(nil)

// FindByID returns the guide with the given identifier.
func (c *MemoryCatalog) FindByID(ctx context.Context, id string) (*style.Guide, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	guide, ok := c.byID[id]
	if !ok {
		return nil, errors.NewStyleNotFoundError(id)
	}
	return &guide, nil
}

// FindByName returns the guide with the given name, ignoring case.
func (c *MemoryCatalog) FindByName(ctx context.Context, name string) (*style.Guide, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	id, ok := c.byName[strings.ToLower(name)]
	if !ok {
		return nil, errors.NewStyleNotFoundError(name)
	}
	guide := c.byID[id]
	return &guide, nil
}

// List returns every guide ordered by identifier.
func (c *MemoryCatalog) List(ctx context.Context) ([]style.Guide, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	guides := make([]style.Guide, 0, len(c.byID))
	for _, g := range c.byID {
		guides = append(guides, g)
	}
	sort.Slice(guides, func(i, j int) bool { return guides[i].ID < guides[j].ID })
	return guides, nil
}

// builtinGuides is a working subset of the 2021 BJCP guidelines covering
// the styles the engine's preference table knows about.
func builtinGuides() []style.Guide {
	return []style.Guide{
		{
			ID:                "21A",
			Name:              "American IPA",
			Category:          "IPA",
			Aroma:             "Prominent hop aroma, citrus, pine, tropical fruit, resinous. Low clean malt in support.",
			Flavor:            "Hop flavor is medium to very high with a medium-high to very high hop bitterness. Malt is clean and dry in the finish.",
			Appearance:        "Medium gold to light reddish-amber, clear to slightly hazy.",
			OverallImpression: "A decidedly hoppy and bitter, moderately strong American pale ale with a dry finish showcasing modern hop varieties.",
			OG:                style.NewRange(1.056, 1.070),
			FG:                style.NewRange(1.008, 1.014),
			ABV:               style.NewRange(5.5, 7.5),
			IBU:               style.NewRange(40, 70),
			SRM:               style.NewRange(6, 14),
		},
		{
			ID:                "22A",
			Name:              "Double IPA",
			Category:          "Strong American Ale",
			Aroma:             "Intense hop aroma, citrus, resinous, tropical, dank. Clean, neutral malt underneath.",
			Flavor:            "High to absurdly high hop flavor and bitterness, dry finish, restrained supporting malt.",
			Appearance:        "Gold to light orange-copper, generally clear.",
			OverallImpression: "An intensely hoppy, fairly strong pale ale. Bigger than an American IPA in both alcohol and hop character without heavy maltiness.",
			OG:                style.NewRange(1.065, 1.085),
			FG:                style.NewRange(1.008, 1.018),
			ABV:               style.NewRange(7.5, 10.0),
			IBU:               style.NewRange(60, 100),
			SRM:               style.NewRange(6, 14),
		},
		{
			ID:                "18B",
			Name:              "American Pale Ale",
			Category:          "Pale American Ale",
			Aroma:             "Moderate hop aroma from American or New World varieties, citrus or floral. Low to moderate grainy or lightly toasty malt.",
			Flavor:            "Moderate to high hop flavor with moderate bitterness balanced by a clean, supportive malt presence.",
			Appearance:        "Pale golden to light amber, generally clear.",
			OverallImpression: "An average-strength, hop-forward pale ale balanced enough to stay refreshing and drinkable.",
			OG:                style.NewRange(1.045, 1.060),
			FG:                style.NewRange(1.010, 1.015),
			ABV:               style.NewRange(4.5, 6.2),
			IBU:               style.NewRange(30, 50),
			SRM:               style.NewRange(5, 10),
		},
		{
			ID:                "20B",
			Name:              "American Stout",
			Category:          "American Porter and Stout",
			Aroma:             "Strong roasted malt, coffee, dark chocolate. Medium to high hop aroma, often citrusy or resinous.",
			Flavor:            "Bold roasted malt flavors, coffee-like bitterness reinforced by assertive hopping. Medium to full body, dark and rich.",
			Appearance:        "Jet black to very dark brown with a thick tan head.",
			OverallImpression: "A fairly strong, highly roasted, bitter, hoppy dark stout with bold roasted malt flavors.",
			OG:                style.NewRange(1.050, 1.075),
			FG:                style.NewRange(1.010, 1.022),
			ABV:               style.NewRange(5.0, 7.0),
			IBU:               style.NewRange(35, 75),
			SRM:               style.NewRange(30, 40),
		},
		{
			ID:                "5D",
			Name:              "German Pils",
			Category:          "Pale Bitter European Beer",
			Aroma:             "Light grainy-sweet pilsner malt, distinctive flowery, spicy or herbal hops. Clean fermentation.",
			Flavor:            "Crisp, clean, dry with moderate hop bitterness and a light grainy malt character. Very light body.",
			Appearance:        "Straw to light gold, brilliant clarity.",
			OverallImpression: "A light-bodied, highly attenuated, gold-colored German lager with a crisp bitterness and a dry, lingering finish.",
			OG:                style.NewRange(1.044, 1.050),
			FG:                style.NewRange(1.008, 1.013),
			ABV:               style.NewRange(4.4, 5.2),
			IBU:               style.NewRange(22, 40),
			SRM:               style.NewRange(2, 4),
		},
		{
			ID:                "15A",
			Name:              "Irish Red Ale",
			Category:          "Irish Beer",
			Aroma:             "Low to moderate malt aroma, caramel, toffee, toast. Little to no hop aroma.",
			Flavor:            "Moderate caramel malt flavor, sometimes buttered toast or toffee, with a characteristic dry roasted finish. Low hop bitterness in balance.",
			Appearance:        "Medium amber to medium reddish-copper, clear.",
			OverallImpression: "An easy-drinking malt-focused amber ale with an initial malty sweetness and a dry finish.",
			OG:                style.NewRange(1.036, 1.046),
			FG:                style.NewRange(1.010, 1.014),
			ABV:               style.NewRange(3.8, 5.0),
			IBU:               style.NewRange(18, 28),
			SRM:               style.NewRange(9, 14),
		},
	}
}
