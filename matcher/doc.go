// Package matcher implements the incremental pattern matcher every RuleNode
// variant shares: a flat candidate pool plus a per-rule, per-cell mask that
// deduplicates origins and lets stale candidates be evicted at consumption
// time.
//
// The first scan walks every grid cell; every later scan walks only the
// cells the change log's tail touched. Both paths share one primitive
// (scanCell): for a changed cell's new color, rule.Rule's IShifts table
// gives every relative offset at which that color is newly admissible, so
// the matcher only ever re-tests origins a change could plausibly have
// newly satisfied — a frontier walk driven by a fixed offset table instead
// of a blind nested loop over the whole grid and rule set.
package matcher
