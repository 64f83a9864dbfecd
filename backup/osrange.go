package backup

import (
	"fmt"

	version "github.com/hashicorp/go-version"

	"github.com/xenbackup/xenbackup/types"
)

// checkOSRange warns when a platform config declares an OS version range
// no device can satisfy. Values the server returns in a non-version form
// are skipped.
func checkOSRange(appName, platform string, cfg *types.PlatformConfig) {
	if cfg.MinOsVersion == "" || cfg.MaxOsVersion == "" {
		return
	}

	min, err := version.NewVersion(cfg.MinOsVersion)
	if err != nil {
		return
	}
	max, err := version.NewVersion(cfg.MaxOsVersion)
	if err != nil {
		return
	}

	if min.GreaterThan(max) {
		WarnLogger(LogHolder{
			AppName:  appName,
			Platform: platform,
			Message:  fmt.Sprintf("minimum OS version %s is above maximum %s", cfg.MinOsVersion, cfg.MaxOsVersion),
		})
	}
}
