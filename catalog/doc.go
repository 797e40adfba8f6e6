// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package catalog holds the ordered question list the form walks through.

Default returns the built-in catalog. A replacement can be loaded from YAML:

	year: 2026
	questions:
	  - id: 1
	    text: Song of the year
	    type: multiple
	    maxAnswers: 3

Question ids are stable across catalog versions; answers are keyed by id, so a
renumbered catalog would misattribute answers in old links.
*/
package catalog
