// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The fraenkctl Authors

// Package client implements the fraenkctl application runtime.
//
// It wires the usage service and the report renderer into a single linear
// pipeline: authenticate, list contracts, fetch consumption, render. Each run
// performs at most four network calls and nothing is retried.
package client
