// Package utils provides helper functions shared across goomba, including version retrieval.
package utils

import (
	"runtime/debug"
)

const (
	unknownVersion        = "unknown"
	developmentVersion    = "(devel)"
	vcsRevisionSettingKey = "vcs.revision"
	vcsModifiedSettingKey = "vcs.modified"
	dirtySuffix           = "-dirty"
	shortRevisionLength   = 12
)

// GetApplicationVersion reports the module version recorded in the build information.
// Development builds fall back to the VCS revision stamped by the Go toolchain.
func GetApplicationVersion() string {
	buildInfo, buildInfoAvailable := debug.ReadBuildInfo()
	if !buildInfoAvailable {
		return unknownVersion
	}
	return versionFromBuildInfo(buildInfo)
}

func versionFromBuildInfo(buildInfo *debug.BuildInfo) string {
	if buildInfo.Main.Version != EmptyString && buildInfo.Main.Version != developmentVersion {
		return buildInfo.Main.Version
	}

	var revision string
	var modified bool
	for _, setting := range buildInfo.Settings {
		switch setting.Key {
		case vcsRevisionSettingKey:
			revision = setting.Value
		case vcsModifiedSettingKey:
			modified = setting.Value == "true"
		}
	}
	if revision == EmptyString {
		return unknownVersion
	}
	if len(revision) > shortRevisionLength {
		revision = revision[:shortRevisionLength]
	}
	if modified {
		revision += dirtySuffix
	}
	return revision
}
