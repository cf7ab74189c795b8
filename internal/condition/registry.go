package condition

import (
	"context"
	"fmt"
)

// probeFunc inspects one piece of system state. It returns the raw
// outcome before negation, or an error when no answer could be
// determined. env is the environment snapshot, consulted only by the
// environment probe.
type probeFunc func(ctx context.Context, c *Condition, env []string) (bool, error)

// conditionProbes maps every condition type to its probe. Completeness
// is asserted by tests; a missing entry is a programming error caught by
// Test.
var conditionProbes = map[Type]probeFunc{
	TypePathExists:             probePathExists,
	TypePathExistsGlob:         probePathExistsGlob,
	TypePathIsDirectory:        probePathIsDirectory,
	TypePathIsSymbolicLink:     probePathIsSymbolicLink,
	TypePathIsMountPoint:       probePathIsMountPoint,
	TypePathIsReadWrite:        probePathIsReadWrite,
	TypePathIsEncrypted:        probePathIsEncrypted,
	TypeDirectoryNotEmpty:      probeDirectoryNotEmpty,
	TypeFileNotEmpty:           probeFileNotEmpty,
	TypeFileIsExecutable:       probeFileIsExecutable,
	TypeKernelCommandLine:      probeKernelCommandLine,
	TypeKernelVersion:          probeKernelVersion,
	TypeCredential:             probeCredential,
	TypeVirtualization:         probeVirtualization,
	TypeSecurity:               probeSecurity,
	TypeCapability:             probeCapability,
	TypeHost:                   probeHost,
	TypeACPower:                probeACPower,
	TypeArchitecture:           probeArchitecture,
	TypeFirmware:               probeFirmware,
	TypeNeedsUpdate:            probeNeedsUpdate,
	TypeFirstBoot:              probeFirstBoot,
	TypeUser:                   probeUser,
	TypeGroup:                  probeGroup,
	TypeControlGroupController: probeControlGroupController,
	TypeCPUs:                   probeCPUs,
	TypeMemory:                 probeMemory,
	TypeEnvironment:            probeEnvironment,
	TypeCPUFeature:             probeCPUFeature,
	TypeOSRelease:              probeOSRelease,
	TypeMemoryPressure:         probePressure,
	TypeCPUPressure:            probePressure,
	TypeIOPressure:             probePressure,
}

// Test evaluates the condition against the live system, applies
// negation, records the result and returns the effective outcome. A
// probe error is recorded as ResultError and returned; negation is not
// applied to errors.
func (c *Condition) Test(ctx context.Context, env []string) (bool, error) {
	probe, ok := conditionProbes[c.Type]
	if !ok {
		panic(fmt.Sprintf("no probe registered for condition type %s", c.Type))
	}

	outcome, err := probe(ctx, c, env)
	if err != nil {
		c.Result = ResultError
		return false, err
	}

	effective := outcome != c.Negate
	if effective {
		c.Result = ResultSucceeded
	} else {
		c.Result = ResultFailed
	}
	return effective, nil
}
