// Package rule implements MarkovJunior's Rule type: a pair of input/output
// boxes plus the precomputed tables (ishifts, oshifts) that let a RuleNode's
// matcher jump straight to the positions a changed cell could newly
// satisfy, instead of rescanning the whole grid.
//
// A Rule's input box stores one bitmask per cell (so unions and the '*'
// wildcard are native); its output box stores either a concrete color or
// the 0xFF "leave unchanged" sentinel. Symmetry generation (Symmetries)
// builds the rule's orbit under a symmetry.Transform subgroup and
// deduplicates by pattern equality, the same closure-then-dedup shape
// symmetry.closure uses for the transforms themselves.
//
// Construction follows two paths: inline patterns via the pattern grammar
// (parsePattern, New) and glued image/voxel boxes via a pre-decoded
// resource.Bitmap (NewFromBitmap) — the PNG/VOX codec itself is out of
// scope; this package only consumes the interface resource.Loader exposes.
package rule
