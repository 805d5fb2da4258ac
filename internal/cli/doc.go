// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements the pull-remote-news command runtime.
//
// It resolves runtime options, checks that the project root holds
// config/config.yaml, loads the tiered configuration and wires the sync tool
// adapter, the local archive and the pull service together. Exactly one mode
// runs per invocation (status, list-dates or pull) and its outcome is turned
// into a process exit code.
package cli
