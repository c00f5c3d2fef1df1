package version

import "fmt"

const (
	appMajor uint = 0
	appMinor uint = 1
	appPatch uint = 0
)

// appBuild can be overridden at build time with
// '-ldflags "-X github.com/calibranet/calibrad/version.appBuild=foo"'.
var appBuild string

// Version returns the application version as a properly formed string.
func Version() string {
	version := fmt.Sprintf("%d.%d.%d", appMajor, appMinor, appPatch)
	if appBuild != "" {
		version = fmt.Sprintf("%s-%s", version, appBuild)
	}
	return version
}
