// Package grid defines the Grid type: a flat 3D array of cell colors over a
// small alphabet, plus the wave-bitmask machinery that lets a rule pattern
// accept unions of colors ("wildcards" included) at a single cell.
//
// A Grid owns:
//
//   - Three dimensions MX, MY, MZ (MZ == 1 is the 2D case).
//   - A flat byte array State of length MX*MY*MZ; State[i] < len(Characters)
//     always holds.
//   - An ordered alphabet Characters (at most 64 symbols — one byte per cell
//     is enough because C <= 64).
//   - Values, the inverse of Characters: Values[Characters[i]] == byte(i).
//   - Waves, a map from a source character (a single symbol, '*', or a
//     union symbol declared via AddUnion) to the bitmask of colors it
//     accepts.
//
// Grid is constructed once per <grid> root or per map/wfc node (which may
// resize it); Clear resets every cell to color 0, the first character of the
// alphabet. Mask is a same-sized scratch buffer AllNode-style rewrites use to
// prevent within-step write collisions; it is owned by Grid so repeated
// scans don't reallocate it every step.
package grid
