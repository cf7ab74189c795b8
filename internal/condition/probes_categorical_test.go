package condition

import (
	"context"
	"io/fs"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hostcond-org/hostcond/internal/sysinfo"
)

func TestProbeVirtualization(t *testing.T) {
	ctx := context.Background()

	t.Run("VM", func(t *testing.T) {
		swap(t, &detectVirtualization, func() (string, bool, error) { return "kvm", false, nil })

		tests := []struct {
			param    string
			expected bool
		}{
			{"yes", true},
			{"no", false},
			{"vm", true},
			{"container", false},
			{"kvm", true},
			{"qemu", false},
		}
		for _, tc := range tests {
			met, err := probeVirtualization(ctx, testCondition(t, TypeVirtualization, tc.param), nil)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, met, "param %q", tc.param)
		}
	})

	t.Run("Container", func(t *testing.T) {
		swap(t, &detectVirtualization, func() (string, bool, error) { return "docker", true, nil })

		tests := []struct {
			param    string
			expected bool
		}{
			{"yes", true},
			{"vm", false},
			{"container", true},
			{"docker", true},
			{"podman", false},
		}
		for _, tc := range tests {
			met, err := probeVirtualization(ctx, testCondition(t, TypeVirtualization, tc.param), nil)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, met, "param %q", tc.param)
		}
	})

	t.Run("BareMetal", func(t *testing.T) {
		swap(t, &detectVirtualization, func() (string, bool, error) { return "", false, nil })

		met, err := probeVirtualization(ctx, testCondition(t, TypeVirtualization, "no"), nil)
		require.NoError(t, err)
		assert.True(t, met)

		met, err = probeVirtualization(ctx, testCondition(t, TypeVirtualization, "vm"), nil)
		require.NoError(t, err)
		assert.False(t, met)
	})

	t.Run("PrivateUsers", func(t *testing.T) {
		swap(t, &runningInUserNS, func() bool { return true })
		met, err := probeVirtualization(ctx, testCondition(t, TypeVirtualization, "private-users"), nil)
		require.NoError(t, err)
		assert.True(t, met)
	})
}

func TestProbeArchitecture(t *testing.T) {
	ctx := context.Background()
	swap(t, &systemArchitecture, func() (string, error) { return "x86-64", nil })

	met, err := probeArchitecture(ctx, testCondition(t, TypeArchitecture, "x86-64"), nil)
	require.NoError(t, err)
	assert.True(t, met)

	met, err = probeArchitecture(ctx, testCondition(t, TypeArchitecture, "arm64"), nil)
	require.NoError(t, err)
	assert.False(t, met)

	_, err = probeArchitecture(ctx, testCondition(t, TypeArchitecture, "vax"), nil)
	assert.Error(t, err)

	// "native" matches when the kernel reports the architecture this
	// binary was built for.
	swap(t, &systemArchitecture, func() (string, error) { return sysinfo.NativeArchitecture(), nil })
	met, err = probeArchitecture(ctx, testCondition(t, TypeArchitecture, "native"), nil)
	require.NoError(t, err)
	assert.True(t, met)
}

func TestProbeSecurity(t *testing.T) {
	ctx := context.Background()
	swap(t, &selinuxEnabled, func() bool { return true })
	swap(t, &apparmorEnabled, func() bool { return false })
	swap(t, &hasTPM2, func() bool { return true })

	tests := []struct {
		param    string
		expected bool
	}{
		{"selinux", true},
		{"SELinux", true},
		{"apparmor", false},
		{"tpm2", true},
		// Unknown technologies are absent, not an error.
		{"sel1nux", false},
	}
	for _, tc := range tests {
		met, err := probeSecurity(ctx, testCondition(t, TypeSecurity, tc.param), nil)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, met, "param %q", tc.param)
	}
}

func TestProbeHost(t *testing.T) {
	ctx := context.Background()
	swap(t, &hostname, func() (string, error) { return "webserver-01", nil })

	t.Run("HostnameGlob", func(t *testing.T) {
		tests := []struct {
			param    string
			expected bool
		}{
			{"webserver-01", true},
			{"WEBSERVER-*", true}, // case-insensitive
			{"webserver-??", true},
			{"db-*", false},
		}
		for _, tc := range tests {
			met, err := probeHost(ctx, testCondition(t, TypeHost, tc.param), nil)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, met, "param %q", tc.param)
		}
	})

	t.Run("MachineID", func(t *testing.T) {
		machine := uuid.MustParse("0f2b64a4-52f3-4a14-9a6a-9eba5a0c1b2f")
		swap(t, &machineID, func() (uuid.UUID, error) { return machine, nil })

		// Both the dashed and the plain-hex forms must match.
		met, err := probeHost(ctx, testCondition(t, TypeHost, "0f2b64a4-52f3-4a14-9a6a-9eba5a0c1b2f"), nil)
		require.NoError(t, err)
		assert.True(t, met)

		met, err = probeHost(ctx, testCondition(t, TypeHost, "0f2b64a452f34a149a6a9eba5a0c1b2f"), nil)
		require.NoError(t, err)
		assert.True(t, met)

		met, err = probeHost(ctx, testCondition(t, TypeHost, "00000000000000000000000000000000"), nil)
		require.NoError(t, err)
		assert.False(t, met)
	})
}

func TestProbeACPower(t *testing.T) {
	ctx := context.Background()
	swap(t, &onACPower, func() (bool, error) { return true, nil })

	met, err := probeACPower(ctx, testCondition(t, TypeACPower, "true"), nil)
	require.NoError(t, err)
	assert.True(t, met)

	met, err = probeACPower(ctx, testCondition(t, TypeACPower, "false"), nil)
	require.NoError(t, err)
	assert.False(t, met)

	_, err = probeACPower(ctx, testCondition(t, TypeACPower, "plugged"), nil)
	assert.Error(t, err)
}

func TestProbeFirmware(t *testing.T) {
	ctx := context.Background()

	t.Run("UEFI", func(t *testing.T) {
		swap(t, &isEFIBoot, func() bool { return true })
		met, err := probeFirmware(ctx, testCondition(t, TypeFirmware, "uefi"), nil)
		require.NoError(t, err)
		assert.True(t, met)
	})

	t.Run("DeviceTree", func(t *testing.T) {
		swap(t, &hasDeviceTree, func() (bool, error) { return false, nil })
		met, err := probeFirmware(ctx, testCondition(t, TypeFirmware, "device-tree"), nil)
		require.NoError(t, err)
		assert.False(t, met)
	})

	t.Run("DeviceTreeCompatible", func(t *testing.T) {
		swap(t, &deviceTreeCompatible, func() ([]string, error) {
			return []string{"acme,board-v2", "acme,soc"}, nil
		})

		met, err := probeFirmware(ctx, testCondition(t, TypeFirmware, "device-tree-compatible(acme,soc)"), nil)
		require.NoError(t, err)
		assert.True(t, met)

		met, err = probeFirmware(ctx, testCondition(t, TypeFirmware, "device-tree-compatible(other,soc)"), nil)
		require.NoError(t, err)
		assert.False(t, met)

		// Malformed argument is a plain mismatch, not an error.
		met, err = probeFirmware(ctx, testCondition(t, TypeFirmware, "device-tree-compatible("), nil)
		require.NoError(t, err)
		assert.False(t, met)
	})

	t.Run("SMBIOSField", func(t *testing.T) {
		swap(t, &dmiField, func(field string) (string, error) {
			switch field {
			case "board_vendor":
				return "ACME Inc", nil
			case "bios_version":
				return "2.10", nil
			default:
				return "", fs.ErrNotExist
			}
		})

		tests := []struct {
			param    string
			expected bool
		}{
			{`smbios-field(board_vendor = "ACME Inc")`, true},
			{`smbios-field(board_vendor != "ACME Inc")`, false},
			{`smbios-field(board_vendor =$ ACME*)`, true},
			{`smbios-field(board_vendor !=$ ACME*)`, false},
			{"smbios-field(bios_version >= 2.9)", true},
			{"smbios-field(bios_version < 2.9)", false},
			// A field the firmware does not publish never matches.
			{"smbios-field(product_name = whatever)", false},
		}
		for _, tc := range tests {
			met, err := probeFirmware(ctx, testCondition(t, TypeFirmware, tc.param), nil)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, met, "param %q", tc.param)
		}

		_, err := probeFirmware(ctx, testCondition(t, TypeFirmware, "smbios-field(board_vendor)"), nil)
		assert.Error(t, err)

		_, err = probeFirmware(ctx, testCondition(t, TypeFirmware, "smbios-field(board_vendor = a b)"), nil)
		assert.Error(t, err)
	})

	t.Run("Unsupported", func(t *testing.T) {
		met, err := probeFirmware(ctx, testCondition(t, TypeFirmware, "bios"), nil)
		require.NoError(t, err)
		assert.False(t, met)
	})
}
