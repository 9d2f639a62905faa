//go:build !linux

package fs

import "time"

func accessTime(*Metadata) (time.Time, error) {
	return time.Time{}, unsupported("access time")
}

func birthTime(*Metadata) (time.Time, error) {
	return time.Time{}, unsupported("creation time")
}
