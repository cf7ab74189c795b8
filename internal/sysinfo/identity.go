package sysinfo

import (
	"os"
	"os/user"
	"strconv"
)

// SystemUIDMax is the highest uid reserved for system users on typical
// Linux deployments.
const SystemUIDMax = 999

// ParseUID parses a string as a numeric uid. Decorated forms like "+5"
// are rejected.
func ParseUID(s string) (int, bool) {
	id, err := strconv.Atoi(s)
	if err != nil || id < 0 || s != strconv.Itoa(id) {
		return 0, false
	}
	return id, true
}

// IsSystemUID reports whether the uid belongs to the system account
// range.
func IsSystemUID(uid int) bool {
	return uid <= SystemUIDMax
}

// LookupUserID resolves a user name to its uid. The second return is
// false when the user does not exist.
func LookupUserID(name string) (int, bool) {
	u, err := user.Lookup(name)
	if err != nil {
		return 0, false
	}
	id, err := strconv.Atoi(u.Uid)
	if err != nil {
		return 0, false
	}
	return id, true
}

// CurrentUserName returns the name of the user the process runs as,
// falling back to the numeric uid when the user database has no entry.
func CurrentUserName() string {
	u, err := user.Current()
	if err != nil {
		return strconv.Itoa(os.Getuid())
	}
	return u.Username
}

// InGroupID reports whether the process's real, effective or
// supplementary gids include id.
func InGroupID(id int) bool {
	if os.Getgid() == id || os.Getegid() == id {
		return true
	}
	groups, err := os.Getgroups()
	if err != nil {
		return false
	}
	for _, g := range groups {
		if g == id {
			return true
		}
	}
	return false
}

// InGroupName reports whether the process is a member of the named group.
func InGroupName(name string) bool {
	g, err := user.LookupGroup(name)
	if err != nil {
		return false
	}
	id, err := strconv.Atoi(g.Gid)
	if err != nil {
		return false
	}
	return InGroupID(id)
}
