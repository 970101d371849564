// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app runs one bootstrap of the authorization service: it reads the
// seed files, opens the store and cache, loads the seed and turns the
// outcome into a process exit code.
package app
