package condition

import (
	"github.com/hostcond-org/hostcond/internal/sysinfo"
)

// Probes reach the live system exclusively through these seams so tests
// can substitute recorded snapshots for kernel state.
var (
	kernelCommandLine    = sysinfo.KernelCommandLine
	kernelRelease        = sysinfo.KernelRelease
	physicalMemory       = sysinfo.PhysicalMemory
	cpusInAffinityMask   = sysinfo.CPUsInAffinityMask
	osReleaseField       = sysinfo.OSReleaseField
	detectVirtualization = sysinfo.DetectVirtualization
	runningInUserNS      = sysinfo.RunningInUserNS
	onACPower            = sysinfo.OnACPower
	boundingCapabilities = sysinfo.BoundingCapabilities
	hasCPUFeature        = sysinfo.HasCPUFeature
	pressureSupported    = sysinfo.PressureSupported
	readResourcePressure = sysinfo.ReadResourcePressure
	allUnified           = sysinfo.AllUnified
	supportedControllers = sysinfo.SupportedControllers
	ownCgroupPath        = sysinfo.OwnCgroupPath
	dmiField             = sysinfo.DMIField
	deviceTreeCompatible = sysinfo.DeviceTreeCompatible
	hasDeviceTree        = sysinfo.HasDeviceTree
	isEFIBoot            = sysinfo.IsEFIBoot
	machineID            = sysinfo.MachineID
	hostname             = sysinfo.Hostname
	isFirstBoot          = sysinfo.IsFirstBoot
	inInitrd             = sysinfo.InInitrd
	systemArchitecture   = sysinfo.Architecture
	isMountPoint         = sysinfo.IsMountPoint
	isReadOnlyFS         = sysinfo.IsReadOnlyFS
	isEncrypted          = sysinfo.IsEncrypted
	fileMTime            = sysinfo.MTime
	credentialsDir       = sysinfo.CredentialsDir
	encryptedCredsDir    = sysinfo.EncryptedCredentialsDir
	isPID1               = sysinfo.IsPID1
	currentUserName      = sysinfo.CurrentUserName
	lookupUserID         = sysinfo.LookupUserID
	inGroupID            = sysinfo.InGroupID
	inGroupName          = sysinfo.InGroupName
	selinuxEnabled       = sysinfo.SELinuxEnabled
	smackEnabled         = sysinfo.SmackEnabled
	apparmorEnabled      = sysinfo.AppArmorEnabled
	tomoyoEnabled        = sysinfo.TomoyoEnabled
	imaEnabled           = sysinfo.IMAEnabled
	auditEnabled         = sysinfo.AuditEnabled
	isEFISecureBoot      = sysinfo.IsEFISecureBoot
	hasTPM2              = sysinfo.HasTPM2
)

// Pure lookups with no system state behind them; aliased here so probe
// code reads uniformly.
var (
	capabilityFromName       = sysinfo.CapabilityFromName
	maskFromControllerString = sysinfo.MaskFromString
	sliceToPath              = sysinfo.SliceToPath
)

// Paths probes derive other paths from; overridable for the same reason.
var (
	procPressureDir = "/proc/pressure"
	cgroupMountDir  = "/sys/fs/cgroup"
	usrDir          = "/usr"
)

// Kernel command line switches that override probe outcomes.
const (
	cmdlineFirstBootOverride   = "hostcond.condition-first-boot"
	cmdlineNeedsUpdateOverride = "hostcond.condition-needs-update"
)
