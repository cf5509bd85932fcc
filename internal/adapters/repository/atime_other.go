//go:build !linux && !darwin

package repository

import (
	"os"
	"time"
)

// No portable access time here; fall back to the modification time
func accessTime(info os.FileInfo) time.Time {
	return info.ModTime()
}
