// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CloudiX Hosting

// Package store implements the local persistence layer: two named
// key-value documents ("user-data" and "settings") backed by a single
// SQLite file, plus a typed repository view over the user document.
//
// The store assumes exactly one running process. It is safe for
// concurrent use within that process, but not across processes.
package store
