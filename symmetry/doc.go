// Package symmetry enumerates the symmetry groups MarkovJunior rules are
// generated under: the 8-element group of the square (rotations and
// reflections about one axis) and the 48-element group of the cube.
//
// Both groups are built from two or three generating transforms (reflect,
// a 90-degree rotation about z, and in 3D a 90-degree rotation about y)
// closed under composition with a queue-and-seen-set walk over group
// elements: generators are pushed, already-seen elements (by a canonical
// signature) are skipped, and the walk terminates when the queue is empty
// and the group is closed.
package symmetry
