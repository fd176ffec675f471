// Package cellref is a compact, allocation-free codec between ASCII cell
// references and coordinates on multi-dimensional boards.
//
// 🚀 What is cellref?
//
//	A small, dependency-free library that turns strings like "c8B" into
//	board coordinates and back:
//		• cell/      — the codec: Parse, Validate, Format over 1–3 axis refs
//		• numeral/   — bijective base-26 and 1-indexed decimal segment codecs
//		• charclass/ — the cyclic character-class grammar behind segmentation
//		• board/     — fixed-size boards addressed and indexed by references
//
// ✨ Why choose cellref?
//
//   - Canonical encoding – every coordinate has exactly one spelling, every
//     valid string round-trips byte-for-byte
//   - Precise errors – seven sentinel errors, one per failure mode, in a
//     fixed priority order
//   - Pure Go – no cgo, no hidden deps, zero allocation on the hot paths
//   - Concurrency-safe by construction – stateless pure functions throughout
//
// Quick ASCII example:
//
//	    "c8B"
//	     │││
//	     ││└── axis 2: 'B'  (uppercase bijective base-26) → 1
//	     │└─── axis 1: '8'  (1-indexed decimal)           → 7
//	     └──── axis 0: 'c'  (lowercase bijective base-26) → 2
//
// One to three axes, each 0..255; the longest reference is "iv256IV".
// Dive into the per-package docs for grammar details and error semantics.
//
//	go get github.com/katalvlaran/cellref
package cellref
