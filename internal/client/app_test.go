package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fraenktools/fraenkctl/internal/config"
	"github.com/fraenktools/fraenkctl/internal/logger"
	"github.com/fraenktools/fraenkctl/internal/mock"
	"github.com/fraenktools/fraenkctl/models"
)

func testConfig() *config.ClientConfig {
	return &config.ClientConfig{
		DryRun:   config.ClientDryRun{FixturesDir: "fixtures"},
		LogLevel: "info",
	}
}

func sampleReport() models.ConsumptionReport {
	return models.ConsumptionReport{
		Customer: models.ConsumptionCustomer{MSISDN: "0151 - 29489521", ContractType: "POST_PAID"},
		Raw:      json.RawMessage(`{"customer":{"msisdn":"0151 - 29489521"},"passes":[]}`),
	}
}

func TestRun_LivePipeline(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockUsageService(ctrl)
	creds := models.Credentials{Username: "0151123456789", Password: "secret"}
	ctx := context.Background()

	gomock.InOrder(
		svc.EXPECT().Login(ctx, creds).Return(nil),
		svc.EXPECT().FetchContracts(ctx).Return([]models.Contract{{ID: "12345678"}}, nil),
		svc.EXPECT().FetchConsumption(ctx).Return(sampleReport(), nil),
	)

	var out bytes.Buffer
	app := NewApp(svc, creds, testConfig(), &out, logger.Nop())

	require.NoError(t, app.Run(ctx))
	assert.Contains(t, out.String(), "Fetching contracts...")
	assert.Contains(t, out.String(), "Found 1 contract(s)")
	assert.Contains(t, out.String(), "Fetching data consumption...")
	assert.Contains(t, out.String(), "Phone: 0151 - 29489521")
}

func TestRun_DryRunSkipsLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockUsageService(ctrl)
	ctx := context.Background()

	gomock.InOrder(
		svc.EXPECT().FetchContracts(ctx).Return([]models.Contract{{ID: "12345678"}}, nil),
		svc.EXPECT().FetchConsumption(ctx).Return(sampleReport(), nil),
	)

	cfg := testConfig()
	cfg.DryRun.Enabled = true

	var out bytes.Buffer
	app := NewApp(svc, models.Credentials{}, cfg, &out, logger.Nop())

	require.NoError(t, app.Run(ctx))
	assert.Contains(t, out.String(), "Running in DRY-RUN mode (using fixtures)")
	assert.Contains(t, out.String(), "Loading mock contracts...")
	assert.Contains(t, out.String(), "Loading mock data consumption...")
}

func TestRun_JSONModeOutputsOnlyPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockUsageService(ctrl)
	ctx := context.Background()

	svc.EXPECT().Login(ctx, gomock.Any()).Return(nil)
	svc.EXPECT().FetchContracts(ctx).Return([]models.Contract{{ID: "12345678"}}, nil)
	svc.EXPECT().FetchConsumption(ctx).Return(sampleReport(), nil)

	cfg := testConfig()
	cfg.Output.JSON = true

	var out bytes.Buffer
	app := NewApp(svc, models.Credentials{}, cfg, &out, logger.Nop())

	require.NoError(t, app.Run(ctx))
	assert.True(t, json.Valid(out.Bytes()), "JSON mode must emit nothing but the payload")
	assert.NotContains(t, out.String(), "Fetching contracts...")
}

func TestRun_QuietModeSuppressesInfo(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockUsageService(ctrl)
	ctx := context.Background()

	svc.EXPECT().Login(ctx, gomock.Any()).Return(nil)
	svc.EXPECT().FetchContracts(ctx).Return(nil, nil)
	svc.EXPECT().FetchConsumption(ctx).Return(sampleReport(), nil)

	cfg := testConfig()
	cfg.Output.Quiet = true

	var out bytes.Buffer
	app := NewApp(svc, models.Credentials{}, cfg, &out, logger.Nop())

	require.NoError(t, app.Run(ctx))
	assert.NotContains(t, out.String(), "Fetching contracts...")
	assert.NotContains(t, out.String(), "Found")
	// The report itself still renders.
	assert.Contains(t, out.String(), "Phone: 0151 - 29489521")
}

func TestRun_LoginErrorAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockUsageService(ctrl)
	ctx := context.Background()

	wantErr := errors.New("login failed")
	svc.EXPECT().Login(ctx, gomock.Any()).Return(wantErr)

	var out bytes.Buffer
	app := NewApp(svc, models.Credentials{}, testConfig(), &out, logger.Nop())

	err := app.Run(ctx)
	require.ErrorIs(t, err, wantErr)
}

func TestRun_FetchContractsErrorAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockUsageService(ctrl)
	ctx := context.Background()

	wantErr := errors.New("contracts failed")
	gomock.InOrder(
		svc.EXPECT().Login(ctx, gomock.Any()).Return(nil),
		svc.EXPECT().FetchContracts(ctx).Return(nil, wantErr),
	)

	var out bytes.Buffer
	app := NewApp(svc, models.Credentials{}, testConfig(), &out, logger.Nop())

	require.ErrorIs(t, app.Run(context.Background()), wantErr)
}

func TestNewProgressFunc(t *testing.T) {
	var out bytes.Buffer
	progress := NewProgressFunc(testConfig(), &out)
	progress("SMS sent!")
	assert.Equal(t, "SMS sent!\n", out.String())

	out.Reset()
	cfg := testConfig()
	cfg.Output.JSON = true
	NewProgressFunc(cfg, &out)("SMS sent!")
	assert.Empty(t, out.String())

	out.Reset()
	cfg = testConfig()
	cfg.Output.Quiet = true
	NewProgressFunc(cfg, &out)("SMS sent!")
	assert.Empty(t, out.String())
}
