package Utils

import (
	"fmt"

	"github.com/shirou/gopsutil/v3/disk"
)

// DiskUsage returns usage of the filesystem that holds path.
func DiskUsage(path string) (*disk.UsageStat, error) {
	usage, err := disk.Usage(path)
	if err != nil {
		return nil, fmt.Errorf("disk usage for %s: %w", path, err)
	}
	return usage, nil
}
