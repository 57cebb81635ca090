// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The fraenkctl Authors

package service

import (
	"context"
	"fmt"

	"github.com/fraenktools/fraenkctl/internal/adapter"
	"github.com/fraenktools/fraenkctl/internal/logger"
	"github.com/fraenktools/fraenkctl/models"
)

type usageService struct {
	adapter  adapter.CarrierAdapter
	prompter CodePrompter
	progress ProgressFunc
	logger   *logger.Logger
}

// NewUsageService constructs the live [UsageService] on top of the carrier
// adapter. prompter is consulted once per login, after the carrier has sent
// the SMS code; progress may be nil.
func NewUsageService(carrier adapter.CarrierAdapter, prompter CodePrompter, progress ProgressFunc, log *logger.Logger) UsageService {
	return &usageService{adapter: carrier, prompter: prompter, progress: progress, logger: log}
}

func (s *usageService) report(msg string) {
	if s.progress != nil {
		s.progress(msg)
	}
}

// Login implements [UsageService]. It initiates the login, and on the usual
// MFA branch prompts for the SMS code and completes the handshake. Nothing is
// retried; each step's error is wrapped with the step that failed.
func (s *usageService) Login(ctx context.Context, creds models.Credentials) error {
	s.report("Initiating login (MFA SMS will be sent)...")
	outcome, err := s.adapter.InitiateLogin(ctx, creds)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrLoginInitiation, err)
	}

	if !outcome.MFARequired() {
		// The carrier authenticated directly; the adapter has already
		// completed the session.
		s.logger.Info().Msg("authenticated without mfa")
		s.report("Login successful!")
		return nil
	}

	challenge := outcome.Challenge
	if challenge.MFAToken == "" {
		return fmt.Errorf("%w: %s", ErrNoMFAToken, challenge.ErrorDescription)
	}
	s.report("SMS sent!")

	smsCode, err := s.prompter.PromptCode(ctx)
	if err != nil {
		return fmt.Errorf("prompt sms code: %w", err)
	}

	s.report("Completing login with SMS code...")
	if _, err = s.adapter.CompleteLogin(ctx, creds, smsCode, challenge.MFAToken); err != nil {
		return fmt.Errorf("%w: %v", ErrLoginCompletion, err)
	}

	s.logger.Info().Msg("login successful")
	s.report("Login successful!")
	return nil
}

// FetchContracts implements [UsageService].
func (s *usageService) FetchContracts(ctx context.Context) ([]models.Contract, error) {
	contracts, err := s.adapter.ListContracts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchContracts, err)
	}
	s.logger.Debug().Int("count", len(contracts)).Msg("contracts fetched")
	return contracts, nil
}

// FetchConsumption implements [UsageService]. The cache-bypass directive is
// always sent on the live path; intermediary caching is only acceptable for
// callers that opt in at the adapter level.
func (s *usageService) FetchConsumption(ctx context.Context) (models.ConsumptionReport, error) {
	report, err := s.adapter.DataConsumption(ctx, false)
	if err != nil {
		return models.ConsumptionReport{}, fmt.Errorf("%w: %v", ErrFetchConsumption, err)
	}
	return report, nil
}
