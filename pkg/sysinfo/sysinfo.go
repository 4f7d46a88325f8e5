// Package sysinfo describes the host the lock screen runs on, for the
// runtime line in the shade. It is read once at startup.
package sysinfo

import (
	"context"
	"fmt"
	"strings"

	"github.com/shirou/gopsutil/v4/host"
)

// Host is a short description of the machine.
type Host struct {
	Platform        string // "ubuntu", "debian", "darwin"
	PlatformVersion string // "24.04", "14.5"
	Kernel          string // "6.8.0-45-generic"
	Container       string // "docker", "podman", "lxc", ""
}

// Collect queries gopsutil for the host platform. Container detection never
// fails; a gopsutil error is returned alongside whatever was gathered.
func Collect(ctx context.Context, lookupEnv func(string) (string, bool)) (Host, error) {
	var h Host
	_, h.Container = detectContainer(lookupEnv)

	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return h, fmt.Errorf("host info: %w", err)
	}
	h.Platform = info.Platform
	h.PlatformVersion = info.PlatformVersion
	h.Kernel = parseKernelVersion(info.KernelVersion)
	return h, nil
}

// String renders the host as one line, e.g. "debian 12 · 6.1.0 · docker".
// Empty parts are left out.
func (h Host) String() string {
	var parts []string
	if p := strings.TrimSpace(h.Platform + " " + h.PlatformVersion); p != "" {
		parts = append(parts, p)
	}
	if h.Kernel != "" {
		parts = append(parts, h.Kernel)
	}
	if h.Container != "" {
		parts = append(parts, h.Container)
	}
	return strings.Join(parts, " · ")
}

// parseKernelVersion trims whitespace and a leading "Linux version " as
// found in /proc/version, keeping only the version token.
func parseKernelVersion(raw string) string {
	s := strings.TrimSpace(raw)
	if rest, ok := strings.CutPrefix(s, "Linux version "); ok {
		s = rest
		if idx := strings.IndexByte(s, ' '); idx >= 0 {
			s = s[:idx]
		}
	}
	return s
}
