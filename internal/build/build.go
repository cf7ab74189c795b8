package build

import "strings"

var (
	Version = "dev"
	AppName = "Hostcond"
	Slug    = ""
)

func init() {
	if Slug == "" {
		Slug = strings.ToLower(AppName)
	}
}
