// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CloudiX Hosting

// Package config loads, merges, and validates the application configuration
// from environment variables, command-line flags, an optional JSON file,
// and built-in defaults. The merged result is exposed as an immutable
// [ClientConfig] constructed once at startup and passed by reference into
// every component that needs it — nothing reads configuration from ambient
// or global scope.
package config
