// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The fraenkctl Authors

// Package session models the in-memory authentication state of one client
// run.
//
// The carrier API has an implicit ordering: the customer id (derived from the
// access token) must exist before contracts can be listed, and a contract id
// must exist before consumption can be fetched. Instead of letting an
// out-of-order call build a request path with an empty segment, the state is
// made explicit as a small enum and every adapter operation validates its
// precondition via [Session.Require].
package session

import (
	"errors"
	"fmt"
)

// ErrPrecondition indicates that an operation was called before the session
// reached the state it requires.
var ErrPrecondition = errors.New("session precondition not met")

// State is the position of a session in the login pipeline.
type State int

const (
	// StateUnauthenticated is the zero state of a fresh session.
	StateUnauthenticated State = iota
	// StateAwaitingMFA is entered after login initiation returned an MFA
	// challenge; the SMS code has not been submitted yet.
	StateAwaitingMFA
	// StateAuthenticated is entered after login completion stored the
	// tokens and derived the customer id.
	StateAuthenticated
	// StateContractsLoaded is entered after a non-empty contract listing
	// stored the first contract's id.
	StateContractsLoaded
)

// String implements [fmt.Stringer].
func (s State) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAwaitingMFA:
		return "awaiting-mfa"
	case StateAuthenticated:
		return "authenticated"
	case StateContractsLoaded:
		return "contracts-loaded"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Session is a value-type snapshot of the client's authentication state.
// Login completion replaces the whole value at once; it never merges with a
// previous session.
type Session struct {
	State        State
	AccessToken  string
	RefreshToken string
	CustomerID   string
	ContractID   string
}

// Require returns a wrapped [ErrPrecondition] if the session has not reached
// want yet. States are ordered, so a session in a later state satisfies every
// earlier requirement.
func (s Session) Require(want State) error {
	if s.State < want {
		return fmt.Errorf("%w: have %s, want %s", ErrPrecondition, s.State, want)
	}
	return nil
}
