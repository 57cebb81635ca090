// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The fraenkctl Authors

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fraenktools/fraenkctl/internal/logger"
	"github.com/fraenktools/fraenkctl/internal/mock"
	"github.com/fraenktools/fraenkctl/models"
)

func testCreds() models.Credentials {
	return models.Credentials{Username: "0151123456789", Password: "secret"}
}

func mfaOutcome(token string) models.LoginOutcome {
	return models.LoginOutcome{Challenge: &models.MFAChallenge{
		Error:            "mfa_required",
		ErrorDescription: "SMS sent",
		MFAToken:         token,
	}}
}

func TestLogin_MFAFlow(t *testing.T) {
	ctrl := gomock.NewController(t)
	carrier := mock.NewMockCarrierAdapter(ctrl)
	prompter := mock.NewMockCodePrompter(ctrl)
	ctx := context.Background()
	creds := testCreds()

	gomock.InOrder(
		carrier.EXPECT().InitiateLogin(ctx, creds).Return(mfaOutcome("abc"), nil),
		prompter.EXPECT().PromptCode(ctx).Return("123456", nil),
		carrier.EXPECT().CompleteLogin(ctx, creds, "123456", "abc").Return(models.AuthResult{AccessToken: "t"}, nil),
	)

	var messages []string
	svc := NewUsageService(carrier, prompter, func(msg string) { messages = append(messages, msg) }, logger.Nop())

	require.NoError(t, svc.Login(ctx, creds))
	assert.Equal(t, []string{
		"Initiating login (MFA SMS will be sent)...",
		"SMS sent!",
		"Completing login with SMS code...",
		"Login successful!",
	}, messages)
}

func TestLogin_DirectAuthSkipsPrompt(t *testing.T) {
	ctrl := gomock.NewController(t)
	carrier := mock.NewMockCarrierAdapter(ctrl)
	prompter := mock.NewMockCodePrompter(ctrl)
	ctx := context.Background()

	carrier.EXPECT().InitiateLogin(ctx, testCreds()).
		Return(models.LoginOutcome{Auth: &models.AuthResult{AccessToken: "t"}}, nil)

	var messages []string
	svc := NewUsageService(carrier, prompter, func(msg string) { messages = append(messages, msg) }, logger.Nop())

	require.NoError(t, svc.Login(ctx, testCreds()))
	assert.Contains(t, messages, "Login successful!")
	assert.NotContains(t, messages, "SMS sent!")
}

func TestLogin_InitiationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	carrier := mock.NewMockCarrierAdapter(ctrl)
	ctx := context.Background()

	carrier.EXPECT().InitiateLogin(ctx, testCreds()).
		Return(models.LoginOutcome{}, errors.New("connection refused"))

	svc := NewUsageService(carrier, mock.NewMockCodePrompter(ctrl), nil, logger.Nop())

	err := svc.Login(ctx, testCreds())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLoginInitiation)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestLogin_ChallengeWithoutToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	carrier := mock.NewMockCarrierAdapter(ctrl)
	ctx := context.Background()

	carrier.EXPECT().InitiateLogin(ctx, testCreds()).Return(mfaOutcome(""), nil)

	svc := NewUsageService(carrier, mock.NewMockCodePrompter(ctrl), nil, logger.Nop())

	err := svc.Login(ctx, testCreds())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoMFAToken)
	assert.Contains(t, err.Error(), "SMS sent")
}

func TestLogin_PromptError(t *testing.T) {
	ctrl := gomock.NewController(t)
	carrier := mock.NewMockCarrierAdapter(ctrl)
	prompter := mock.NewMockCodePrompter(ctrl)
	ctx := context.Background()

	gomock.InOrder(
		carrier.EXPECT().InitiateLogin(ctx, testCreds()).Return(mfaOutcome("abc"), nil),
		prompter.EXPECT().PromptCode(ctx).Return("", errors.New("aborted")),
	)

	svc := NewUsageService(carrier, prompter, nil, logger.Nop())

	err := svc.Login(ctx, testCreds())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "prompt sms code")
}

func TestLogin_CompletionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	carrier := mock.NewMockCarrierAdapter(ctrl)
	prompter := mock.NewMockCodePrompter(ctrl)
	ctx := context.Background()

	gomock.InOrder(
		carrier.EXPECT().InitiateLogin(ctx, testCreds()).Return(mfaOutcome("abc"), nil),
		prompter.EXPECT().PromptCode(ctx).Return("000000", nil),
		carrier.EXPECT().CompleteLogin(ctx, testCreds(), "000000", "abc").
			Return(models.AuthResult{}, errors.New("http 401: invalid_mtan")),
	)

	svc := NewUsageService(carrier, prompter, nil, logger.Nop())

	err := svc.Login(ctx, testCreds())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLoginCompletion)
}

func TestFetchContracts(t *testing.T) {
	ctrl := gomock.NewController(t)
	carrier := mock.NewMockCarrierAdapter(ctrl)
	ctx := context.Background()

	want := []models.Contract{{ID: "12345678"}, {ID: "87654321"}}
	carrier.EXPECT().ListContracts(ctx).Return(want, nil)

	svc := NewUsageService(carrier, mock.NewMockCodePrompter(ctrl), nil, logger.Nop())

	got, err := svc.FetchContracts(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFetchContracts_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	carrier := mock.NewMockCarrierAdapter(ctrl)
	ctx := context.Background()

	carrier.EXPECT().ListContracts(ctx).Return(nil, errors.New("http 403: forbidden"))

	svc := NewUsageService(carrier, mock.NewMockCodePrompter(ctrl), nil, logger.Nop())

	_, err := svc.FetchContracts(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFetchContracts)
}

func TestFetchConsumption_BypassesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	carrier := mock.NewMockCarrierAdapter(ctrl)
	ctx := context.Background()

	want := models.ConsumptionReport{Customer: models.ConsumptionCustomer{MSISDN: "0151 - 29489521"}}
	carrier.EXPECT().DataConsumption(ctx, false).Return(want, nil)

	svc := NewUsageService(carrier, mock.NewMockCodePrompter(ctrl), nil, logger.Nop())

	got, err := svc.FetchConsumption(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFetchConsumption_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	carrier := mock.NewMockCarrierAdapter(ctrl)
	ctx := context.Background()

	carrier.EXPECT().DataConsumption(ctx, false).
		Return(models.ConsumptionReport{}, errors.New("http 502: bad gateway"))

	svc := NewUsageService(carrier, mock.NewMockCodePrompter(ctrl), nil, logger.Nop())

	_, err := svc.FetchConsumption(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFetchConsumption)
}
