//go:build linux

package alloc

import (
	"bytes"
	"os"

	"golang.org/x/sys/unix"
)

// RSS returns the resident set size of the current process in bytes, read
// from /proc/self/statm. Returns 0 if the file cannot be read or parsed.
//
// This is a full /proc read and parse on every call; it is meant for
// occasional reporting, not hot loops.
func RSS() int64 {
	data, err := os.ReadFile("/proc/self/statm")
	if err != nil {
		return 0
	}

	// statm: size resident shared text lib data dt (values in pages).
	fields := bytes.Fields(data)
	if len(fields) < 2 {
		return 0
	}

	pages := int64(0)
	for _, ch := range fields[1] {
		if ch < '0' || ch > '9' {
			return 0
		}
		pages = pages*10 + int64(ch-'0')
	}

	return pages * int64(os.Getpagesize())
}

// MemorySize returns the physical memory size of the machine in bytes, or 0
// if it cannot be determined.
func MemorySize() int64 {
	var info unix.Sysinfo_t
	if err := unix.Sysinfo(&info); err != nil {
		return 0
	}

	return int64(info.Totalram) * int64(info.Unit)
}
