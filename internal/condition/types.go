// Package condition implements a declarative runtime-condition engine:
// typed, parameterized predicates about live system state that decide
// whether a unit of work should proceed. Conditions are transient values,
// re-evaluated on every pass; evaluation observes the system and never
// mutates it.
package condition

import "fmt"

// Type identifies one kind of condition. The probe registry carries
// exactly one probe per type.
type Type int

const (
	TypePathExists Type = iota
	TypePathExistsGlob
	TypePathIsDirectory
	TypePathIsSymbolicLink
	TypePathIsMountPoint
	TypePathIsReadWrite
	TypePathIsEncrypted
	TypeDirectoryNotEmpty
	TypeFileNotEmpty
	TypeFileIsExecutable
	TypeKernelCommandLine
	TypeKernelVersion
	TypeCredential
	TypeVirtualization
	TypeSecurity
	TypeCapability
	TypeHost
	TypeACPower
	TypeArchitecture
	TypeFirmware
	TypeNeedsUpdate
	TypeFirstBoot
	TypeUser
	TypeGroup
	TypeControlGroupController
	TypeCPUs
	TypeMemory
	TypeEnvironment
	TypeCPUFeature
	TypeOSRelease
	TypeMemoryPressure
	TypeCPUPressure
	TypeIOPressure

	typeMax
)

var conditionNames = map[Type]string{
	TypePathExists:             "ConditionPathExists",
	TypePathExistsGlob:         "ConditionPathExistsGlob",
	TypePathIsDirectory:        "ConditionPathIsDirectory",
	TypePathIsSymbolicLink:     "ConditionPathIsSymbolicLink",
	TypePathIsMountPoint:       "ConditionPathIsMountPoint",
	TypePathIsReadWrite:        "ConditionPathIsReadWrite",
	TypePathIsEncrypted:        "ConditionPathIsEncrypted",
	TypeDirectoryNotEmpty:      "ConditionDirectoryNotEmpty",
	TypeFileNotEmpty:           "ConditionFileNotEmpty",
	TypeFileIsExecutable:       "ConditionFileIsExecutable",
	TypeKernelCommandLine:      "ConditionKernelCommandLine",
	TypeKernelVersion:          "ConditionKernelVersion",
	TypeCredential:             "ConditionCredential",
	TypeVirtualization:         "ConditionVirtualization",
	TypeSecurity:               "ConditionSecurity",
	TypeCapability:             "ConditionCapability",
	TypeHost:                   "ConditionHost",
	TypeACPower:                "ConditionACPower",
	TypeArchitecture:           "ConditionArchitecture",
	TypeFirmware:               "ConditionFirmware",
	TypeNeedsUpdate:            "ConditionNeedsUpdate",
	TypeFirstBoot:              "ConditionFirstBoot",
	TypeUser:                   "ConditionUser",
	TypeGroup:                  "ConditionGroup",
	TypeControlGroupController: "ConditionControlGroupController",
	TypeCPUs:                   "ConditionCPUs",
	TypeMemory:                 "ConditionMemory",
	TypeEnvironment:            "ConditionEnvironment",
	TypeCPUFeature:             "ConditionCPUFeature",
	TypeOSRelease:              "ConditionOSRelease",
	TypeMemoryPressure:         "ConditionMemoryPressure",
	TypeCPUPressure:            "ConditionCPUPressure",
	TypeIOPressure:             "ConditionIOPressure",
}

// String returns the display name of the type, e.g.
// "ConditionPathExists".
func (t Type) String() string {
	if name, ok := conditionNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Condition(%d)", int(t))
}

// AssertName returns the assertion-flavored display name of the type,
// e.g. "AssertPathExists". Assertions share evaluation semantics with
// conditions; only how callers react to a failed list differs.
func (t Type) AssertName() string {
	if name, ok := conditionNames[t]; ok {
		return "Assert" + name[len("Condition"):]
	}
	return fmt.Sprintf("Assert(%d)", int(t))
}

// Valid reports whether t is a known condition type.
func (t Type) Valid() bool {
	return t >= 0 && t < typeMax
}

// TypeFromName resolves a display name like "ConditionPathExists" or
// "AssertPathExists" back to its type. isAssert reports which flavor the
// name used.
func TypeFromName(name string) (t Type, isAssert bool, ok bool) {
	for t, n := range conditionNames {
		if name == n {
			return t, false, true
		}
		if name == "Assert"+n[len("Condition"):] {
			return t, true, true
		}
	}
	return 0, false, false
}

// Result is the outcome of the most recent evaluation of a condition.
type Result int

const (
	// ResultUntested is the initial state before any evaluation.
	ResultUntested Result = iota
	ResultSucceeded
	ResultFailed
	// ResultError means the probe could not determine an answer.
	ResultError
)

var resultNames = map[Result]string{
	ResultUntested:  "untested",
	ResultSucceeded: "succeeded",
	ResultFailed:    "failed",
	ResultError:     "error",
}

func (r Result) String() string {
	if name, ok := resultNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Result(%d)", int(r))
}
