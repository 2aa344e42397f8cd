//go:build !unix

package meta

import "io/fs"

// ownership is a no-op where uid/gid metadata is unavailable; the long
// layout leaves the columns blank.
func ownership(_ fs.FileInfo) (string, string) {
	return "", ""
}
