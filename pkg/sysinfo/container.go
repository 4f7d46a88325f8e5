package sysinfo

import (
	"os"
	"runtime"
	"strings"
)

// detectContainer checks whether the current process is running inside a
// container. It returns true plus the container type string ("docker",
// "podman", "lxc") or false with an empty string.
func detectContainer(lookupEnv func(string) (string, bool)) (bool, string) {
	// Podman sets CONTAINER=podman in its default environment.
	if lookupEnv != nil {
		if v, ok := lookupEnv("CONTAINER"); ok && v != "" {
			return true, strings.ToLower(v)
		}
	}

	// Docker creates /.dockerenv as a sentinel file.
	if fileExists("/.dockerenv") {
		return true, "docker"
	}

	// Podman creates /run/.containerenv.
	if fileExists("/run/.containerenv") {
		return true, "podman"
	}

	if runtime.GOOS == "linux" {
		if data, err := os.ReadFile("/proc/1/cgroup"); err == nil {
			if ct := parseCgroup(string(data)); ct != "" {
				return true, ct
			}
		}
	}

	return false, ""
}

// parseCgroup inspects cgroup content for container runtime signatures.
func parseCgroup(content string) string {
	lower := strings.ToLower(content)
	if strings.Contains(lower, "docker") || strings.Contains(lower, "containerd") {
		return "docker"
	}
	if strings.Contains(lower, "lxc") {
		return "lxc"
	}
	// Podman uses cgroup paths with libpod.
	if strings.Contains(lower, "libpod") {
		return "podman"
	}
	return ""
}

// fileExists reports whether the given path exists and is not a directory.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
