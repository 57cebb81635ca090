package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMissingSubject indicates a structurally valid token whose payload has no
// "sub" claim.
var ErrMissingSubject = errors.New("token has no subject claim")

// ParseCustomerIDFromJWT derives the carrier customer id from an access
// token without verifying its signature. The token is only inspected, never
// trusted: the server remains the authority on every authenticated call.
//
// The subject claim has been observed in the form "f:uuid:<numeric-id>"; when
// it contains colons the customer id is the part after the last one,
// otherwise the subject is used verbatim.
//
// Returns an error if the token does not have three dot-separated segments,
// the payload is not valid base64url/JSON, or the subject claim is absent.
func ParseCustomerIDFromJWT(tokenString string) (string, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return "", fmt.Errorf("decode access token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return "", fmt.Errorf("read token subject: %w", err)
	}
	if sub == "" {
		return "", ErrMissingSubject
	}

	if idx := strings.LastIndex(sub, ":"); idx >= 0 {
		return sub[idx+1:], nil
	}
	return sub, nil
}
