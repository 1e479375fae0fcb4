// pkg/compress/validate.go
package compress

import (
	"errors"
	"io"
	"os"
)

// openFile opens a candidate for the readability check
var openFile = func(name string) (io.ReadCloser, error) {
	return os.Open(name)
}

// Validate splits paths into readable regular files and rejected ones.
// It never fails: every problem becomes a ValidationError in the result.
func Validate(paths []string) Validation {
	var v Validation
	for _, path := range paths {
		if reason, ok := checkPath(path); !ok {
			v.Invalid = append(v.Invalid, ValidationError{Path: path, Reason: reason})
			continue
		}
		v.Valid = append(v.Valid, path)
	}
	return v
}

// checkPath stats path (following symlinks) and reads its first byte
func checkPath(path string) (Reason, bool) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return ReasonNotExist, false
	}

	f, err := openFile(path)
	if err != nil {
		return ReasonPermissionDenied, false
	}
	defer f.Close()

	var first [1]byte
	if _, err := f.Read(first[:]); err != nil && !errors.Is(err, io.EOF) {
		return ReasonPermissionDenied, false
	}
	return "", true
}
