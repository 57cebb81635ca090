package service

import (
	"context"

	"github.com/fraenktools/fraenkctl/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/usage_service_mock.go -package=mock

// UsageService runs the fixed fraenk pipeline: authenticate, list contracts,
// fetch the consumption report. The fixture-backed implementation substitutes
// static files for the two reads and skips authentication entirely.
type UsageService interface {
	// Login performs the two-step MFA handshake (or accepts the carrier's
	// rare direct authentication). It is a no-op in fixture mode.
	Login(ctx context.Context, creds models.Credentials) error

	// FetchContracts returns the customer's contracts. On the live path
	// this also pins the first contract for the consumption fetch.
	FetchContracts(ctx context.Context) ([]models.Contract, error)

	// FetchConsumption returns the consumption report for the pinned
	// contract.
	FetchConsumption(ctx context.Context) (models.ConsumptionReport, error)
}

// CodePrompter supplies the out-of-band SMS code during login completion.
type CodePrompter interface {
	// PromptCode blocks until the user provides the SMS code or aborts.
	PromptCode(ctx context.Context) (string, error)
}

// ProgressFunc receives user-facing progress messages emitted during the
// login handshake ("SMS sent!", ...). A nil ProgressFunc silences them.
type ProgressFunc func(msg string)
