// Copyright 2026 The blocks Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Base-91 digit codec. Six ordered families of the block alphabet
// (five 16-member families and one 11-member family) together form a
// 91-symbol digit space. digitValue and blockOfDigit are total
// inverses of each other on their respective domains.

package codec

// Base is the numeric base of the digit alphabet: 16*5 + 11 = 91.
const Base = 91

// digitFamilies lists the families that carry digits, in ascending
// base order, together with the base-91 value of their first member.
var digitFamilies = []struct {
	family Family
	base   int
	size   int
}{
	{FamilyWool, 0, 16},
	{FamilyConcrete, 16, 16},
	{FamilyTerracotta, 32, 16},
	{FamilyGlazedTerracotta, 48, 16},
	{FamilyPlanks, 64, 11},
	{FamilyStainedGlass, 75, 16},
}

func digitBase(f Family) (base, size int, ok bool) {
	for _, df := range digitFamilies {
		if df.family == f {
			return df.base, df.size, true
		}
	}
	return 0, 0, false
}

// digitValue returns the 0-based base-91 value of b, the family base
// plus b's offset within its family. It fails with BlockToBitError if
// b does not belong to a digit family.
func digitValue(b Block) (int, error) {
	base, _, ok := digitBase(b.family)
	if !ok {
		return 0, &BlockToBitError{Block: b}
	}
	return base + b.ordinal, nil
}

// blockOfDigit returns the block whose base-91 value is v. It fails
// with BitToBlockError if v is outside 0..90.
func blockOfDigit(v int) (Block, error) {
	if v < 0 || v >= Base {
		return Block{}, &BitToBlockError{Value: v}
	}
	for _, df := range digitFamilies {
		if v >= df.base && v < df.base+df.size {
			ordinal := v - df.base
			name := nameForDigit(df.family, ordinal)
			b, ok := registry[name]
			if !ok {
				return Block{}, &BitToBlockError{Value: v}
			}
			return b, nil
		}
	}
	return Block{}, &BitToBlockError{Value: v}
}

// nameForDigit reconstructs the canonical block name for a digit
// family member from its ordinal, mirroring the naming used when the
// family was populated in alphabet.go.
func nameForDigit(f Family, ordinal int) string {
	switch f {
	case FamilyWool:
		return mc(dyeColors[ordinal] + "_wool")
	case FamilyConcrete:
		return mc(dyeColors[ordinal] + "_concrete")
	case FamilyTerracotta:
		return mc(dyeColors[ordinal] + "_terracotta")
	case FamilyGlazedTerracotta:
		return mc(dyeColors[ordinal] + "_glazed_terracotta")
	case FamilyStainedGlass:
		return mc(dyeColors[ordinal] + "_stained_glass")
	case FamilyPlanks:
		return mc(woodTypes[ordinal] + "_planks")
	default:
		return ""
	}
}
