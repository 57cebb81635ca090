package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/fraenktools/fraenkctl/internal/config"
	"github.com/fraenktools/fraenkctl/internal/logger"
	"github.com/fraenktools/fraenkctl/internal/session"
	"github.com/fraenktools/fraenkctl/internal/utils"
	"github.com/fraenktools/fraenkctl/models"
)

// mfaRequiredCode is the carrier's error code on the expected 401 response
// to login initiation.
const mfaRequiredCode = "mfa_required"

type carrierAdapter struct {
	client *utils.HTTPClient

	session session.Session

	logger *logger.Logger
}

// NewCarrierAdapter constructs the resty-based [CarrierAdapter]. It
// normalises and validates the base URL from apiCfg.BaseURL and configures
// the underlying HTTP client with the resolved base URL and request timeout.
//
// Returns an error if apiCfg.BaseURL is empty or cannot be parsed as a valid
// URL.
func NewCarrierAdapter(apiCfg config.ClientAPI, log *logger.Logger) (CarrierAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(apiCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(apiCfg.RequestTimeout)

	return &carrierAdapter{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Session implements [CarrierAdapter]. It returns a snapshot of the current
// session state.
func (h *carrierAdapter) Session() session.Session {
	return h.session
}

// InitiateLogin implements [CarrierAdapter]. It POSTs the form-encoded
// credentials to POST /login. A 401 carrying the mfa_required error code is
// the expected branch and returns the challenge; a 200 is the rare no-MFA
// branch and completes the session directly. Every other status maps to an
// error via mapHTTPError.
func (h *carrierAdapter) InitiateLogin(ctx context.Context, creds models.Credentials) (models.LoginOutcome, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeaders(session.DeviceHeaders()).
		SetFormData(map[string]string{
			"grant_type": "password",
			"username":   creds.Username,
			"password":   creds.Password,
			"scope":      "app",
		}).
		Post("/login")
	if err != nil {
		return models.LoginOutcome{}, fmt.Errorf("login initiation request: %w", err)
	}

	if resp.StatusCode() == http.StatusUnauthorized {
		var challenge models.MFAChallenge
		if jsonErr := json.Unmarshal(resp.Body(), &challenge); jsonErr == nil && challenge.Error == mfaRequiredCode {
			h.session = session.Session{State: session.StateAwaitingMFA}
			h.logger.Debug().Msg("mfa challenge received")
			return models.LoginOutcome{Challenge: &challenge}, nil
		}
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Int("status", resp.StatusCode()).Msg("login initiation failed")
		return models.LoginOutcome{}, err
	}

	// No-MFA branch: the carrier authenticated on the first call.
	var auth models.AuthResult
	if err = json.Unmarshal(resp.Body(), &auth); err != nil {
		return models.LoginOutcome{}, fmt.Errorf("decode login response: %w", err)
	}
	if err = h.completeSession(auth); err != nil {
		return models.LoginOutcome{}, err
	}

	return models.LoginOutcome{Auth: &auth}, nil
}

// CompleteLogin implements [CarrierAdapter]. It POSTs the SMS code and the
// challenge token to POST /login-with-mfa, then stores the tokens and the
// derived customer id. Requires [session.StateAwaitingMFA].
func (h *carrierAdapter) CompleteLogin(ctx context.Context, creds models.Credentials, smsCode, mfaToken string) (models.AuthResult, error) {
	if err := h.session.Require(session.StateAwaitingMFA); err != nil {
		return models.AuthResult{}, err
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeaders(session.DeviceHeaders()).
		SetFormData(map[string]string{
			"username":  creds.Username,
			"password":  creds.Password,
			"mtan":      smsCode,
			"mfa_token": mfaToken,
		}).
		Post("/login-with-mfa")
	if err != nil {
		return models.AuthResult{}, fmt.Errorf("login completion request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResult{}, err
	}

	var auth models.AuthResult
	if err = json.Unmarshal(resp.Body(), &auth); err != nil {
		return models.AuthResult{}, fmt.Errorf("decode login response: %w", err)
	}
	if err = h.completeSession(auth); err != nil {
		return models.AuthResult{}, err
	}

	return auth, nil
}

// completeSession derives the customer id from the access token and replaces
// the session value in one assignment. The parse happens first so a malformed
// token leaves the previous session untouched.
func (h *carrierAdapter) completeSession(auth models.AuthResult) error {
	customerID, err := utils.ParseCustomerIDFromJWT(auth.AccessToken)
	if err != nil {
		return fmt.Errorf("derive customer id: %w", err)
	}

	h.session = session.Session{
		State:        session.StateAuthenticated,
		AccessToken:  auth.AccessToken,
		RefreshToken: auth.RefreshToken,
		CustomerID:   customerID,
	}
	h.logger.Debug().Str("customer_id", customerID).Msg("session authenticated")
	return nil
}

// ListContracts implements [CarrierAdapter]. It GETs
// /customers/{customerID}/contracts with bearer auth. Requires
// [session.StateAuthenticated].
func (h *carrierAdapter) ListContracts(ctx context.Context) ([]models.Contract, error) {
	if err := h.session.Require(session.StateAuthenticated); err != nil {
		return nil, err
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeaders(session.AuthHeaders(h.session)).
		Get("/customers/" + h.session.CustomerID + "/contracts")
	if err != nil {
		return nil, fmt.Errorf("list contracts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var contracts []models.Contract
	if err = json.Unmarshal(resp.Body(), &contracts); err != nil {
		return nil, fmt.Errorf("decode contracts response: %w", err)
	}

	if len(contracts) > 0 {
		h.session.ContractID = contracts[0].ID
		h.session.State = session.StateContractsLoaded
	}

	return contracts, nil
}

// DataConsumption implements [CarrierAdapter]. It GETs
// /customers/{customerID}/contracts/{contractID}/dataconsumption with bearer
// auth. Requires [session.StateContractsLoaded]. The server-provided payload
// is preserved verbatim in the report's Raw field.
func (h *carrierAdapter) DataConsumption(ctx context.Context, useCache bool) (models.ConsumptionReport, error) {
	if err := h.session.Require(session.StateContractsLoaded); err != nil {
		return models.ConsumptionReport{}, err
	}

	headers := session.AuthHeaders(h.session)
	if !useCache {
		headers["Cache-Control"] = "no-cache"
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeaders(headers).
		Get("/customers/" + h.session.CustomerID + "/contracts/" + h.session.ContractID + "/dataconsumption")
	if err != nil {
		return models.ConsumptionReport{}, fmt.Errorf("data consumption request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ConsumptionReport{}, err
	}

	var report models.ConsumptionReport
	if err = json.Unmarshal(resp.Body(), &report); err != nil {
		return models.ConsumptionReport{}, fmt.Errorf("decode consumption response: %w", err)
	}
	report.Raw = append(json.RawMessage(nil), resp.Body()...)

	return report, nil
}
