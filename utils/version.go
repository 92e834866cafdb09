package utils

import (
	"strings"

	"github.com/hashicorp/go-version"
)

// VersionConfig holds dashboard build version requirements
type VersionConfig struct {
	CurrentStable string
	MinSupported  string
	Deprecated    string
}

var DefaultVersionConfig = VersionConfig{
	CurrentStable: "1.2.0", // Latest dashboard build
	MinSupported:  "1.0.0", // Minimum supported build
	Deprecated:    "0.9.0", // Builds below this are deprecated
}

// CheckVersionStatus determines if a dashboard client build needs upgrading
func CheckVersionStatus(clientVersion string, config *VersionConfig) (status string, needsUpgrade bool, severity string) {
	if config == nil {
		config = &DefaultVersionConfig
	}

	// Clean version string (remove 'v' prefix if present)
	clientVersion = strings.TrimPrefix(clientVersion, "v")

	clientVer, err := version.NewVersion(clientVersion)
	if err != nil {
		return "unknown", false, "info"
	}

	current, _ := version.NewVersion(config.CurrentStable)
	minSupported, _ := version.NewVersion(config.MinSupported)
	deprecated, _ := version.NewVersion(config.Deprecated)

	// Check if deprecated (critical)
	if clientVer.LessThan(deprecated) {
		return "deprecated", true, "critical"
	}

	// Check if below minimum supported (warning)
	if clientVer.LessThan(minSupported) {
		return "outdated", true, "warning"
	}

	// Check if not on latest stable (info)
	if clientVer.LessThan(current) {
		return "outdated", true, "info"
	}

	// On latest or newer
	return "current", false, "none"
}

// GetUpgradeMessage returns a human-readable upgrade message
func GetUpgradeMessage(clientVersion string, config *VersionConfig) string {
	if config == nil {
		config = &DefaultVersionConfig
	}

	_, needsUpgrade, severity := CheckVersionStatus(clientVersion, config)

	if !needsUpgrade {
		return ""
	}

	switch severity {
	case "critical":
		return "CRITICAL: This dashboard build is deprecated and no longer supported. Upgrade to " + config.CurrentStable + " immediately."
	case "warning":
		return "WARNING: This dashboard build is outdated. Please upgrade to " + config.CurrentStable + " soon."
	case "info":
		return "INFO: A newer dashboard build " + config.CurrentStable + " is available."
	}

	return ""
}
