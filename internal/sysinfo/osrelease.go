package sysinfo

import (
	"fmt"

	"github.com/joho/godotenv"
)

// osReleasePaths lists the platform identification files in lookup order,
// per the os-release spec.
var osReleasePaths = []string{"/etc/os-release", "/usr/lib/os-release"}

// OSReleaseField returns the value of a key from the os-release file.
// The second return reports whether the key was present.
func OSReleaseField(key string) (string, bool, error) {
	for _, path := range osReleasePaths {
		fields, err := godotenv.Read(path)
		if err != nil {
			if IsNotExist(err) {
				continue
			}
			return "", false, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		value, ok := fields[key]
		return value, ok, nil
	}
	return "", false, nil
}
