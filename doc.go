// Package nix is an in-memory implementation of the NIX scientific data
// model's region-of-interest engine: it turns physically meaningful tag
// annotations (positions in seconds, hertz, millivolts, ...) into concrete
// multi-dimensional slices of annotated data arrays.
//
// 🚀 What is nix?
//
//	A small, immutable-by-design library that brings together:
//		• Shapes: N-D extent vectors with elementwise arithmetic
//		• Units: SI-prefix scaling between compatible unit strings
//		• Dimensions: per-axis semantics — Sampled, Range and Set
//		• Entities: DataArray, Tag, MultiTag, Feature and DataView
//		• Access: position→index mapping, (offset,count) resolution,
//		  bounds checking and deferred-read slice retrieval
//
// ✨ Why choose nix?
//
//   - Physical-coordinate worldview — tag a recording at 0.5s for 100ms
//     and get back exactly the samples that window covers
//   - Rock-solid guarantees — validation always precedes reads, errors
//     are sentinel values matched with errors.Is
//   - Pure Go — no cgo, no hidden deps
//
// Everything is organized under five subpackages:
//
//	core/      — Shape (N-D sizes) and the shared error taxonomy
//	units/     — SI-prefixed unit parsing and scaling factors
//	dimension/ — Sampled/Range/Set descriptors and position→index mapping
//	data/      — DataArray, Tag, MultiTag, Feature and DataView entities
//	access/    — region resolution and slice retrieval on top of it all
//
// Quick ASCII example:
//
//	signal (1000 samples @ 1 kHz, unit "s")
//	├────────────────┬██████████┬───────────┤
//	0s             0.5s       0.6s         1s
//
//	a Tag with position [0.5], extent [0.1] and units ["s"] selects
//	offset=[500], count=[100] of the referenced array.
//
// Dive into the per-package docs for tutorials and complexity notes.
//
//	go get github.com/saurabhiiit/nix
package nix
