package service

import "errors"

var (
	// ErrLoginInitiation wraps a failure of the first login step.
	ErrLoginInitiation = errors.New("login initiation failed")
	// ErrLoginCompletion wraps a failure of the SMS-code login step.
	ErrLoginCompletion = errors.New("login completion failed")
	// ErrNoMFAToken indicates an MFA challenge without a challenge token.
	ErrNoMFAToken = errors.New("no mfa token received")
	// ErrFetchContracts wraps a failure of the contract listing.
	ErrFetchContracts = errors.New("failed to fetch contracts")
	// ErrFetchConsumption wraps a failure of the consumption fetch.
	ErrFetchConsumption = errors.New("failed to fetch data consumption")
	// ErrFixtureNotFound indicates a missing fixture file in dry-run mode.
	ErrFixtureNotFound = errors.New("fixture not found")
)
