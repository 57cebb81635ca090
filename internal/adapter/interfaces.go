package adapter

import (
	"context"

	"github.com/fraenktools/fraenkctl/internal/session"
	"github.com/fraenktools/fraenkctl/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/carrier_adapter_mock.go -package=mock

// CarrierAdapter defines the four operations of the fraenk login-and-fetch
// pipeline. Implementations own the session state for one run; operations
// must be called in pipeline order and fail fast with a wrapped
// [session.ErrPrecondition] otherwise.
//
// The adapter is not safe for concurrent use: a second login on the same
// instance overwrites the session.
type CarrierAdapter interface {
	// InitiateLogin submits the password credentials. The usual outcome is
	// an MFA challenge (the carrier sends an SMS code out of band); the
	// rare no-MFA outcome is a direct auth result, in which case the
	// session is completed exactly as CompleteLogin would have done.
	// Any response other than 200 or the mfa_required 401 is an error.
	InitiateLogin(ctx context.Context, creds models.Credentials) (models.LoginOutcome, error)

	// CompleteLogin submits the SMS code together with the challenge token
	// from InitiateLogin. On success it stores the access/refresh tokens
	// and the customer id derived from the access token, atomically
	// replacing any previous session state. A malformed access token fails
	// the call without touching the session.
	CompleteLogin(ctx context.Context, creds models.Credentials, smsCode, mfaToken string) (models.AuthResult, error)

	// ListContracts fetches the customer's contracts. A non-empty result
	// stores the first contract's id for the consumption call; an empty
	// result leaves any previously stored contract id untouched.
	ListContracts(ctx context.Context) ([]models.Contract, error)

	// DataConsumption fetches the consumption report for the stored
	// contract. With useCache=false (the normal case) a Cache-Control
	// no-cache directive is attached; with useCache=true it is omitted,
	// permitting intermediary caching.
	DataConsumption(ctx context.Context, useCache bool) (models.ConsumptionReport, error)

	// Session returns a snapshot of the current session state.
	Session() session.Session
}
