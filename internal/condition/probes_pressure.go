package condition

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hostcond-org/hostcond/internal/logger"
	"github.com/hostcond-org/hostcond/internal/stringutil"
	"github.com/hostcond-org/hostcond/internal/sysinfo"
)

// probePressure backs the three pressure condition types. The parameter
// is "<limit>[/<window>]" for system-wide pressure, or
// "<slice>:<limit>[/<window>]" to check one slice's cgroup instead.
//
// Pressure checks are advisory: whenever the kernel or the cgroup setup
// cannot answer, the check is skipped and counts as passed rather than
// blocking the work it gates.
func probePressure(ctx context.Context, c *Condition, _ []string) (bool, error) {
	if !pressureSupported() {
		logger.Debug(ctx, "pressure stall information not supported, skipping check")
		return true, nil
	}

	var resource string
	var controller sysinfo.ControllerMask
	switch c.Type {
	case TypeMemoryPressure:
		resource, controller = "memory", sysinfo.ControllerMemory
	case TypeCPUPressure:
		resource, controller = "cpu", sysinfo.ControllerCPU
	case TypeIOPressure:
		resource, controller = "io", sysinfo.ControllerIO
	default:
		panic(fmt.Sprintf("condition type %s is not a pressure type", c.Type))
	}

	scope, value, scoped := strings.Cut(c.Parameter, ":")
	var pressurePath string
	if !scoped {
		value = c.Parameter
		pressurePath = filepath.Join(procPressureDir, resource)
	} else {
		unified, err := allUnified()
		if err != nil {
			return false, err
		}
		if !unified {
			logger.Debug(ctx, "per-slice pressure requires the unified cgroup hierarchy, skipping check")
			return true, nil
		}

		mask, err := supportedControllers()
		if err != nil {
			return false, err
		}
		if !mask.Contains(controller) {
			logger.Debug(ctx, "cgroup controller not available, skipping check",
				"controller", resource)
			return true, nil
		}

		slicePath, err := sliceToPath(strings.TrimSpace(scope))
		if err != nil {
			return false, err
		}
		own, err := ownCgroupPath()
		if err != nil {
			return false, err
		}
		// As the init process our own cgroup is init.scope; the slices
		// live next to it, not below it.
		own = strings.TrimSuffix(own, "/init.scope")
		pressurePath = filepath.Join(cgroupMountDir, own, slicePath, resource+".pressure")
	}

	limitStr := value
	avg := func(p sysinfo.ResourcePressure) float64 { return p.Avg300 }
	if idx := strings.LastIndexByte(value, '/'); idx >= 0 {
		limitStr = value[:idx]
		switch strings.TrimSpace(value[idx+1:]) {
		case "10sec", "10s":
			avg = func(p sysinfo.ResourcePressure) float64 { return p.Avg10 }
		case "1min", "60sec", "60s":
			avg = func(p sysinfo.ResourcePressure) float64 { return p.Avg60 }
		case "5min", "300sec", "300s":
			avg = func(p sysinfo.ResourcePressure) float64 { return p.Avg300 }
		default:
			return false, fmt.Errorf("unsupported pressure window in %q", c.Parameter)
		}
	}

	permyriad, err := stringutil.ParsePermyriad(strings.TrimSpace(limitStr))
	if err != nil {
		return false, fmt.Errorf("failed to parse pressure limit %q: %w", limitStr, err)
	}
	limit := float64(permyriad) / 100.0

	// Prefer the "full" line; the cpu controller only publishes "some".
	pressure, err := readResourcePressure(pressurePath, sysinfo.PressureFull)
	if errors.Is(err, sysinfo.ErrNoPressureData) {
		pressure, err = readResourcePressure(pressurePath, sysinfo.PressureSome)
	}
	if err != nil {
		if sysinfo.IsNotExist(err) {
			// The resource is not tracked here, or the cgroup vanished
			// while we were looking.
			logger.Debug(ctx, "pressure file does not exist, skipping check",
				"path", pressurePath)
			return true, nil
		}
		return false, err
	}

	return avg(pressure) <= limit, nil
}
