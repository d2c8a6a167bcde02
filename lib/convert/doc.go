// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package convert turns a document file into its counterpart in the
// other encoding. A .json file becomes a binary file with the same
// stem in the same directory, and a binary file becomes a .json file.
//
// The binary side accepts several extensions. The first one in
// [Converter.Extensions] is the extension given to binary output, so
// the same converter serves both the .lens and .dat conventions:
//
//	converter := convert.Converter{
//	    Extensions:   docfile.Extensions{Text: []string{".json"}, Binary: []string{".dat"}},
//	    NarrowFloats: true,
//	}
//	result, err := converter.Convert("calibration/front.json")
//	// result.Destination == "calibration/front.dat"
package convert
