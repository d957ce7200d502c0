package version

import (
	"runtime/debug"
	"strings"
)

// ModulePath is the import path of this module.
const ModulePath = "github.com/kbukum/apiclient"

const devVersion = "dev"

var (
	// Version overrides the version found in build info. Set at build time.
	Version = ""
	// readBuildInfo is replaced in tests.
	readBuildInfo = debug.ReadBuildInfo
)

// Info describes the running apiclient build.
type Info struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	IsRelease bool   `json:"is_release"`
	IsDirty   bool   `json:"is_dirty"`
}

// Get returns the version information of the apiclient module in the
// current binary.
func Get() Info {
	info := Info{Version: Version}
	bi, ok := readBuildInfo()
	if ok {
		info.GoVersion = bi.GoVersion
		if info.Version == "" {
			info.Version = moduleVersion(bi)
		}
		for _, s := range bi.Settings {
			if s.Key == "vcs.modified" && bi.Main.Path == ModulePath {
				info.IsDirty = s.Value == "true"
			}
		}
	}
	if info.Version == "" || info.Version == "(devel)" {
		info.Version = devVersion
	}
	// Pre-release and pseudo versions carry a "-" suffix.
	info.IsRelease = info.Version != devVersion &&
		!info.IsDirty &&
		!strings.Contains(info.Version, "-")
	return info
}

// moduleVersion finds this module either as the main module or as a dependency.
func moduleVersion(bi *debug.BuildInfo) string {
	if bi.Main.Path == ModulePath {
		return bi.Main.Version
	}
	for _, dep := range bi.Deps {
		if dep.Path != ModulePath {
			continue
		}
		if dep.Replace != nil && dep.Replace.Version != "" {
			return dep.Replace.Version
		}
		return dep.Version
	}
	return ""
}

// UserAgent is the default User-Agent header sent by the transport.
func UserAgent() string {
	return "apiclient/" + strings.TrimPrefix(Get().Version, "v")
}
