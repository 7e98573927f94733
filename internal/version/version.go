// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package version carries the build metadata stamped into the salon binary.
package version

// Info holds the values injected through -ldflags at build time. A binary
// built without them reports the dev defaults from cmd/salon.
type Info struct {
	Version   string // release tag, e.g. "v1.2.3"
	GitCommit string // short commit hash
	BuildTime string // RFC3339 build timestamp
}
