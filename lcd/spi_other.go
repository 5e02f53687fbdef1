//go:build !linux

package lcd

import (
	"errors"
	"runtime"
)

// Open fails: spidev and sysfs GPIO are Linux only.
func Open(cfg Config) (*PCD8544, error) {
	return nil, errors.New("lcd: not supported on " + runtime.GOOS)
}
