package resource

import (
	"log"
	"os"
)

// DefaultLogger returns a Logger writing to stderr with a "mjrun: " prefix
// and source line flags: a plain stdlib log.Logger, matching a zero-
// dependency module that never reaches for a structured-logging library.
func DefaultLogger() Logger {
	return log.New(os.Stderr, "mjrun: ", log.Lshortfile)
}

// NullLoader is a Loader that always reports resources as absent. It lets
// callers exercise the core interpreter (whose only use of Loader is the
// rule/wfc file-resource path) without wiring in a real PNG/VOX codec.
type NullLoader struct{}

// LoadImage always fails: NullLoader carries no resources.
func (NullLoader) LoadImage(path string) (*Bitmap, error) {
	return nil, &LoadError{Path: path, Reason: "no loader configured"}
}

// LoadVox always fails: NullLoader carries no resources.
func (NullLoader) LoadVox(path string) (*Bitmap, error) {
	return nil, &LoadError{Path: path, Reason: "no loader configured"}
}

// LoadError reports a resource that could not be decoded, with enough
// context for a host to log file/cause and abandon just the offending
// model.
type LoadError struct {
	Path   string
	Reason string
}

func (e *LoadError) Error() string {
	return "resource: " + e.Path + ": " + e.Reason
}
