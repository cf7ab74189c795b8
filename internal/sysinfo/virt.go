package sysinfo

import (
	"os"
	"strings"

	"github.com/shirou/gopsutil/v4/host"
)

// containerMarkers maps well-known container indicator files to the
// container engine name they identify.
var containerMarkers = []struct {
	path string
	name string
}{
	{"/.dockerenv", "docker"},
	{"/run/.containerenv", "podman"},
}

// DetectVirtualization returns the name of the virtualization engine the
// system runs under, and whether it is a VM or a container. An empty name
// means bare metal.
func DetectVirtualization() (name string, isContainer bool, err error) {
	// Container detection first: inside a container the VM the host may
	// run on is irrelevant.
	if env, err := ReadVirtualLine("/run/systemd/container"); err == nil && env != "" {
		return env, true, nil
	}
	for _, marker := range containerMarkers {
		if _, err := os.Stat(marker.path); err == nil {
			return marker.name, true, nil
		}
	}

	system, role, err := host.Virtualization()
	if err != nil {
		return "", false, err
	}
	if system == "" || role != "guest" {
		return "", false, nil
	}
	if isContainerEngine(system) {
		return system, true, nil
	}
	return system, false, nil
}

func isContainerEngine(name string) bool {
	switch name {
	case "docker", "podman", "lxc", "lxc-libvirt", "systemd-nspawn", "rkt", "openvz", "wsl", "proot", "pouch":
		return true
	}
	return false
}

// RunningInUserNS reports whether the process runs inside a user
// namespace with a non-identity uid mapping.
func RunningInUserNS() bool {
	data, err := ReadVirtualLine("/proc/self/uid_map")
	if err != nil {
		return false
	}
	fields := strings.Fields(data)
	// The identity mapping of the initial namespace is "0 0 4294967295".
	return !(len(fields) == 3 && fields[0] == "0" && fields[1] == "0" && fields[2] == "4294967295")
}
