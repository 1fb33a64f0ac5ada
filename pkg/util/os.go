package util

import "os"

// MkdirAllX calls os.MkdirAll with the passed permissions but with +x for
// the user and group, so the created directory is openable regardless of
// the permissions given.
func MkdirAllX(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm|0110)
}
