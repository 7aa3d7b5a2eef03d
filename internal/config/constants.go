package config

// Version is the current dieterc version.
var Version = "0.1.0"

const SourceFileExt = ".dtr"

// SourceFileExtensions are all recognized source file extensions.
var SourceFileExtensions = []string{".dtr", ".dieter"}

// TrimSourceExt removes any recognized source extension from a filename.
// Returns the original string if no extension matches.
func TrimSourceExt(name string) string {
	for _, ext := range SourceFileExtensions {
		if len(name) >= len(ext) && name[len(name)-len(ext):] == ext {
			return name[:len(name)-len(ext)]
		}
	}
	return name
}

// HasSourceExt returns true if the path ends with any recognized source extension.
func HasSourceExt(path string) bool {
	for _, ext := range SourceFileExtensions {
		if len(path) >= len(ext) && path[len(path)-len(ext):] == ext {
			return true
		}
	}
	return false
}

// IsTestMode is a flag for test runs. Nothing in this module reads it:
// String() output always includes a freshened type variable's numeric ID.
var IsTestMode = false

// Names of the intrinsic procedures the checker treats as implicitly
// forward-declared (see the prelude package): new_ref, succ and equal are
// mentioned by the language article without a defining module.
const (
	NewRefFuncName = "new_ref"
	SuccFuncName   = "succ"
	EqualFuncName  = "equal"
)
