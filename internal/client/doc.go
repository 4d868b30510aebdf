// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CloudiX Hosting

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI, the application services, and the background
// update worker into a single process lifecycle.
package client
