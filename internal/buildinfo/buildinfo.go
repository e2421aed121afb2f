package buildinfo

import "runtime/debug"

var BuildInfo *debug.BuildInfo

func init() {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		bi = &debug.BuildInfo{}
	}
	BuildInfo = bi
}

// Version is the main module version, "(devel)" for local builds.
func Version() string {
	return BuildInfo.Main.Version
}
