//go:build !unix

package observability

import "os"

// lockFile is a no-op where flock(2) is unavailable; the in-process mutex
// still serializes writes.
func lockFile(*os.File) (unlock func() error, err error) {
	return func() error { return nil }, nil
}
