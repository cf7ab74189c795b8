package sysinfo

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// PressureKind selects which line of a PSI pressure file to read.
type PressureKind string

const (
	PressureSome PressureKind = "some"
	PressureFull PressureKind = "full"
)

// ErrNoPressureData means the pressure file exists but does not carry the
// requested line ("full" is missing for some controllers on older
// kernels).
var ErrNoPressureData = errors.New("pressure line not present")

// ResourcePressure holds the three rolling averages of one PSI line, in
// percent.
type ResourcePressure struct {
	Avg10  float64
	Avg60  float64
	Avg300 float64
}

// PressureSupported reports whether the kernel exposes Pressure Stall
// Information at all.
func PressureSupported() bool {
	_, err := os.Stat("/proc/pressure")
	return err == nil
}

// ReadResourcePressure parses the line of the given kind from a pressure
// file, e.g. "some avg10=0.12 avg60=1.30 avg300=0.50 total=113".
func ReadResourcePressure(path string, kind PressureKind) (ResourcePressure, error) {
	f, err := os.Open(path)
	if err != nil {
		return ResourcePressure{}, err
	}
	defer func() {
		_ = f.Close()
	}()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || fields[0] != string(kind) {
			continue
		}

		var p ResourcePressure
		seen := 0
		for _, field := range fields[1:] {
			key, value, ok := strings.Cut(field, "=")
			if !ok {
				continue
			}
			var dst *float64
			switch key {
			case "avg10":
				dst = &p.Avg10
			case "avg60":
				dst = &p.Avg60
			case "avg300":
				dst = &p.Avg300
			default:
				continue
			}
			v, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return ResourcePressure{}, fmt.Errorf("malformed pressure field %q in %s: %w", field, path, err)
			}
			*dst = v
			seen++
		}
		if seen != 3 {
			return ResourcePressure{}, fmt.Errorf("incomplete pressure line in %s", path)
		}
		return p, nil
	}
	if err := scanner.Err(); err != nil {
		return ResourcePressure{}, err
	}
	return ResourcePressure{}, ErrNoPressureData
}
