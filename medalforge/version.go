package medalforge

import (
	"fmt"
	"runtime/debug"
	"strings"
	"sync"
)

const repoName = "github.com/medalforge/medalforge-go"

var (
	goVersion     string
	moduleVersion string
	once          = sync.Once{}
)

// GetVersion returns running go version and medalforge-go version
func GetVersion() (string, string) {
	once.Do(func() {
		buildInfo, found := debug.ReadBuildInfo()
		if !found {
			return
		}
		goVersion = buildInfo.GoVersion

		for _, dep := range buildInfo.Deps {
			if strings.HasPrefix(dep.Path, repoName) {
				moduleVersion = dep.Version
				return
			}
		}
	})
	return goVersion, moduleVersion
}

func userAgent() string {
	goVer, modVer := GetVersion()
	if modVer == "" {
		modVer = "devel"
	}
	return fmt.Sprintf("medalforge-go/%s (%s)", modVer, goVer)
}
