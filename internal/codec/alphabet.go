// Copyright 2026 The blocks Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Block alphabet: a closed enumeration of named tokens ("blocks") that
// the wire grammar is built from. Every block has a canonical name of
// the form "namespace:identifier" and belongs to exactly one family.
// Six of the families (wool, concrete, terracotta, glazed-terracotta,
// planks, stained-glass) additionally carry a base-91 digit value; see
// digits.go.

package codec

import "fmt"

// Family identifies which group of the alphabet a Block belongs to.
// Family membership is a partition: no block belongs to two families.
type Family int

const (
	FamilyNone Family = iota
	FamilyWool
	FamilyConcrete
	FamilyTerracotta
	FamilyGlazedTerracotta
	FamilyPlanks
	FamilyStainedGlass
	FamilyLog
	FamilyMarker
)

// String returns the family's lowercase identifier, matching the
// vocabulary used by spec prose ("wool", "marker", ...).
func (f Family) String() string {
	switch f {
	case FamilyWool:
		return "wool"
	case FamilyConcrete:
		return "concrete"
	case FamilyTerracotta:
		return "terracotta"
	case FamilyGlazedTerracotta:
		return "glazed-terracotta"
	case FamilyPlanks:
		return "planks"
	case FamilyStainedGlass:
		return "stained-glass"
	case FamilyLog:
		return "log"
	case FamilyMarker:
		return "marker"
	default:
		return "none"
	}
}

// isDigitFamily reports whether family members carry a base-91 digit value.
func (f Family) isDigitFamily() bool {
	switch f {
	case FamilyWool, FamilyConcrete, FamilyTerracotta, FamilyGlazedTerracotta, FamilyPlanks, FamilyStainedGlass:
		return true
	default:
		return false
	}
}

// Block is an immutable value drawn from the fixed alphabet. The zero
// Block is not a valid member of the alphabet; always obtain Blocks
// from Lookup, BlockOfDigit, or one of the package-level well-known
// Block variables.
type Block struct {
	name    string
	family  Family
	ordinal int // 0-based offset within family for digit/planks/log members, -1 otherwise
}

// Name returns the block's canonical "namespace:identifier" string.
func (b Block) Name() string { return b.name }

// String implements fmt.Stringer, returning the canonical name.
func (b Block) String() string { return b.name }

// Family returns the family the block belongs to.
func (b Block) Family() Family { return b.family }

// IsWool reports whether b belongs to the wool family.
func (b Block) IsWool() bool { return b.family == FamilyWool }

// IsConcrete reports whether b belongs to the concrete family.
func (b Block) IsConcrete() bool { return b.family == FamilyConcrete }

// IsTerracotta reports whether b belongs to the terracotta family.
func (b Block) IsTerracotta() bool { return b.family == FamilyTerracotta }

// IsGlazedTerracotta reports whether b belongs to the glazed-terracotta family.
func (b Block) IsGlazedTerracotta() bool { return b.family == FamilyGlazedTerracotta }

// IsPlanks reports whether b belongs to the planks family.
func (b Block) IsPlanks() bool { return b.family == FamilyPlanks }

// IsStainedGlass reports whether b belongs to the stained-glass family.
func (b Block) IsStainedGlass() bool { return b.family == FamilyStainedGlass }

// IsLog reports whether b belongs to the log family.
func (b Block) IsLog() bool { return b.family == FamilyLog }

// IsDigit reports whether b carries a base-91 digit value.
func (b Block) IsDigit() bool { return b.family.isDigitFamily() }

// IsLight reports whether b is one of the alphabet's light-emitting
// blocks (the froglights, shroomlight, glowstone, sea lantern). This
// predicate has no grammar role; it mirrors a light-emitting grouping
// carried over from the underlying block catalog.
func (b Block) IsLight() bool {
	switch b {
	case Shroomlight, Glowstone, SeaLantern, OchreFroglight, VerdantFroglight, PearlescentFroglight:
		return true
	default:
		return false
	}
}

// IsZero reports whether b is the zero Block (never a member of the alphabet).
func (b Block) IsZero() bool { return b.name == "" }

var registry = make(map[string]Block)

// register adds a block to the global name registry. Panics on a
// duplicate name since the alphabet is defined once at init time.
func register(name string, family Family, ordinal int) Block {
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("codec: duplicate block name %q", name))
	}
	b := Block{name: name, family: family, ordinal: ordinal}
	registry[name] = b
	return b
}

// Lookup resolves a canonical block name to its Block value. It fails
// with UnknownBlockTypeError for any name outside the alphabet.
func Lookup(name string) (Block, error) {
	b, ok := registry[name]
	if !ok {
		return Block{}, &UnknownBlockTypeError{Name: name}
	}
	return b, nil
}

// AlphabetSize returns the number of distinct blocks in the registry.
func AlphabetSize() int { return len(registry) }

const mcNamespace = "minecraft"

func mc(id string) string { return mcNamespace + ":" + id }

// dyeColors is the canonical 16-entry ordering shared by every
// 16-member digit family; its index is the family-local digit ordinal.
var dyeColors = [16]string{
	"white", "orange", "magenta", "light_blue",
	"yellow", "lime", "pink", "gray",
	"light_gray", "cyan", "purple", "blue",
	"brown", "green", "red", "black",
}

// woodTypes is the canonical 11-entry ordering for the planks family.
var woodTypes = [11]string{
	"oak", "spruce", "birch", "jungle", "acacia", "dark_oak",
	"mangrove", "cherry", "bamboo", "crimson", "warped",
}

// unusedLogs are the log-family members that exist only to pad the
// alphabet; the grammar never emits them. Their family ordinals
// continue the sequence started by the well-known log vars below.
var unusedLogs = []string{
	"birch_log", "jungle_log", "acacia_log", "mangrove_log", "bamboo_block",
}

// unusedMarkers pads the marker family with alphabet members the
// grammar never emits, the way the original catalog defines far more
// block names than any single production touches.
var unusedMarkers = []string{
	"obsidian", "netherite_block", "iron_block", "copper_block",
	"lapis_block", "quartz_block", "bookshelf", "crafting_table",
	"furnace", "chest", "ender_chest", "anvil", "beacon",
	"nether_bricks", "soul_sand", "magma_block", "sponge", "target",
	"lodestone", "respawn_anchor", "netherrack", "basalt", "tuff",
}

func init() {
	for i, color := range dyeColors {
		register(mc(color+"_wool"), FamilyWool, i)
		register(mc(color+"_concrete"), FamilyConcrete, i)
		register(mc(color+"_terracotta"), FamilyTerracotta, i)
		register(mc(color+"_glazed_terracotta"), FamilyGlazedTerracotta, i)
		register(mc(color+"_stained_glass"), FamilyStainedGlass, i)
	}
	for i, wood := range woodTypes {
		register(mc(wood+"_planks"), FamilyPlanks, i)
	}
	for i, name := range unusedLogs {
		register(mc(name), FamilyLog, 6+i)
	}
	for _, name := range unusedMarkers {
		register(mc(name), FamilyMarker, -1)
	}
}

// Well-known marker blocks (Table M and the structural production
// table), plus the log-family blocks that double as structural
// markers. Each is registered exactly once, here, at package
// variable initialization time so the well-known vars below can
// reference them directly without depending on init() ordering.
var (
	EndStone              = register(mc("end_stone"), FamilyMarker, -1)
	RawIronBlock          = register(mc("raw_iron_block"), FamilyMarker, -1)
	RawCopperBlock        = register(mc("raw_copper_block"), FamilyMarker, -1)
	RawGoldBlock          = register(mc("raw_gold_block"), FamilyMarker, -1)
	Shroomlight           = register(mc("shroomlight"), FamilyMarker, -1)
	Glowstone             = register(mc("glowstone"), FamilyMarker, -1)
	ChiseledDeepslate     = register(mc("chiseled_deepslate"), FamilyMarker, -1)
	OchreFroglight        = register(mc("ochre_froglight"), FamilyMarker, -1)
	VerdantFroglight      = register(mc("verdant_froglight"), FamilyMarker, -1)
	PearlescentFroglight  = register(mc("pearlescent_froglight"), FamilyMarker, -1)
	SeaLantern            = register(mc("sea_lantern"), FamilyMarker, -1)
	Blackstone            = register(mc("blackstone"), FamilyMarker, -1)
	GildedBlackstone      = register(mc("gilded_blackstone"), FamilyMarker, -1)
	Prismarine            = register(mc("prismarine"), FamilyMarker, -1)
	DarkPrismarine        = register(mc("dark_prismarine"), FamilyMarker, -1)
	RedstoneBlock         = register(mc("redstone_block"), FamilyMarker, -1)
	RedstoneLamp          = register(mc("redstone_lamp"), FamilyMarker, -1)
	Bedrock               = register(mc("bedrock"), FamilyMarker, -1)
	CoalBlock             = register(mc("coal_block"), FamilyMarker, -1)
	PurpurBlock           = register(mc("purpur_block"), FamilyMarker, -1)
	PurpurPillar          = register(mc("purpur_pillar"), FamilyMarker, -1)
	GoldBlock             = register(mc("gold_block"), FamilyMarker, -1)
	EmeraldBlock          = register(mc("emerald_block"), FamilyMarker, -1)
	DiamondBlock          = register(mc("diamond_block"), FamilyMarker, -1)
	AmethystBlock         = register(mc("amethyst_block"), FamilyMarker, -1)

	// Log-family blocks that also serve as structural markers. Ordinals
	// 0-5 here; unusedLogs continues the sequence at 6 in init().
	OakLog      = register(mc("oak_log"), FamilyLog, 0)
	SpruceLog   = register(mc("spruce_log"), FamilyLog, 1)
	DarkOakLog  = register(mc("dark_oak_log"), FamilyLog, 2)
	CherryLog   = register(mc("cherry_log"), FamilyLog, 3)
	CrimsonStem = register(mc("crimson_stem"), FamilyLog, 4)
	WarpedStem  = register(mc("warped_stem"), FamilyLog, 5)
)
