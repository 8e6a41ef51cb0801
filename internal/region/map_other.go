// internal/region/map_other.go
//go:build !unix

package region

import "errors"

// Map is only available on unix targets.
func Map(path string, offset int64, size int, wordSize int) (*Region, func() error, error) {
	return nil, nil, errors.New("region: map not supported on this platform")
}
