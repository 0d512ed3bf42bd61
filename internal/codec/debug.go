// Copyright 2026 The blocks Project Contributors
// SPDX-License-Identifier: Apache-2.0

package codec

import "github.com/davecgh/go-spew/spew"

// dumpConfig formats diagnostic values compactly, without pointer
// addresses, for inclusion in error contexts and test failure output.
var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// DumpValue renders v for diagnostics. The reflection adapter uses it
// in CustomError messages to show a value of an unsupported kind on
// marshal, or the known field list on an unknown-field unmarshal error.
func DumpValue(v any) string {
	return dumpConfig.Sdump(v)
}
