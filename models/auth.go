package models

// Credentials is a username/password pair resolved from the environment or a
// credentials file. It is only held for the duration of the two login calls
// and never persisted.
type Credentials struct {
	Username string
	Password string
}

// MFAChallenge is the body of the expected 401 response to login initiation.
// The carrier signals "mfa_required" and hands out a one-shot challenge token
// that must be echoed back together with the SMS code.
type MFAChallenge struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
	MFAToken         string `json:"mfa_token"`
}

// AuthResult is the body of a successful login response.
type AuthResult struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

// LoginOutcome is the result of login initiation. Exactly one field is set:
// Challenge on the usual MFA path, Auth when the carrier skips MFA and
// authenticates directly on the first call.
type LoginOutcome struct {
	Challenge *MFAChallenge
	Auth      *AuthResult
}

// MFARequired reports whether the outcome is the MFA branch.
func (o LoginOutcome) MFARequired() bool {
	return o.Challenge != nil
}
