package env

import (
	"os"
	"runtime"
)

// Returns true if the agent is running inside the official docker release
// image.
func InDocker() bool {
	_, inDocker := os.LookupEnv("__X_VALUECELL_AGENT_DOCKER")
	return inDocker
}

// Platform returns the label used by the ValueCell backend to bucket
// installations by operating system. The vocabulary matches what the desktop
// application reports, so "darwin" becomes "macos".
func Platform() string {
	return platformFor(runtime.GOOS)
}

func platformFor(goos string) string {
	switch goos {
	case "darwin":
		return "macos"
	case "windows":
		return "windows"
	case "linux":
		return "linux"
	default:
		return goos
	}
}
