// Package resource declares the interfaces the interpreter core consumes
// from its external collaborators, without implementing them: a resource
// loader for PNG/VOX rule and sample files, and a logger for surfacing load
// errors. Both the CLI/batch driver and the concrete PNG/VOX codecs are
// out of scope; this package is the seam a host application plugs them in
// through.
package resource
