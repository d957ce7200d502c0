package httpclient

import (
	"fmt"
	"net/http"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
)

// AuthType identifies the authentication method.
type AuthType int

const (
	// AuthNone disables authentication.
	AuthNone AuthType = iota
	// AuthBearer uses Bearer token authentication.
	AuthBearer
	// AuthBasic uses HTTP Basic authentication.
	AuthBasic
	// AuthAPIKey uses API key authentication (header or query parameter).
	AuthAPIKey
	// AuthCustom uses a custom authentication function.
	AuthCustom
	// AuthJWT signs a fresh bearer token for every request.
	AuthJWT
)

// AuthConfig configures request authentication.
type AuthConfig struct {
	// Type is the authentication method.
	Type AuthType
	// Token is the bearer token (AuthBearer).
	Token string
	// Username is the basic auth username (AuthBasic).
	Username string
	// Password is the basic auth password (AuthBasic).
	Password string
	// Key is the API key value (AuthAPIKey).
	Key string
	// In specifies where to place the API key: "header" (default) or "query" (AuthAPIKey).
	In string
	// Name is the header or query parameter name (AuthAPIKey). Defaults to "X-API-Key".
	Name string
	// Apply is a custom function to modify the request (AuthCustom).
	Apply func(*http.Request)
	// Signer produces the token (AuthJWT).
	Signer *JWTSigner
}

// JWTSigner signs short-lived tokens for outbound requests.
type JWTSigner struct {
	// Method is the signing algorithm, e.g. gojwt.SigningMethodHS256.
	Method gojwt.SigningMethod
	// Key is the signing key: []byte for HMAC, a private key for RSA/ECDSA/EdDSA.
	Key any
	// Claims returns the claims for one token. Called once per request.
	Claims func() gojwt.Claims
}

// Sign returns a signed token string.
func (s *JWTSigner) Sign() (string, error) {
	token := gojwt.NewWithClaims(s.Method, s.Claims())
	signed, err := token.SignedString(s.Key)
	if err != nil {
		return "", fmt.Errorf("httpclient: sign token: %w", err)
	}
	return signed, nil
}

// BearerAuth creates a bearer token auth config.
func BearerAuth(token string) *AuthConfig {
	return &AuthConfig{Type: AuthBearer, Token: token}
}

// BasicAuth creates a basic auth config.
func BasicAuth(username, password string) *AuthConfig {
	return &AuthConfig{Type: AuthBasic, Username: username, Password: password}
}

// APIKeyAuth creates an API key auth config sent via header.
func APIKeyAuth(key string) *AuthConfig {
	return &AuthConfig{Type: AuthAPIKey, Key: key, In: "header", Name: "X-API-Key"}
}

// APIKeyAuthHeader creates an API key auth config with a custom header name.
func APIKeyAuthHeader(key, headerName string) *AuthConfig {
	return &AuthConfig{Type: AuthAPIKey, Key: key, In: "header", Name: headerName}
}

// APIKeyAuthQuery creates an API key auth config sent via query parameter.
func APIKeyAuthQuery(key, paramName string) *AuthConfig {
	return &AuthConfig{Type: AuthAPIKey, Key: key, In: "query", Name: paramName}
}

// CustomAuth creates a custom auth config with a request modifier function.
func CustomAuth(fn func(*http.Request)) *AuthConfig {
	return &AuthConfig{Type: AuthCustom, Apply: fn}
}

// JWTAuth creates an auth config that signs a token per request.
func JWTAuth(signer *JWTSigner) *AuthConfig {
	return &AuthConfig{Type: AuthJWT, Signer: signer}
}

// HS256Auth signs HMAC-SHA256 tokens carrying the registered issuer and
// subject claims, valid for ttl from the moment of the request.
func HS256Auth(secret []byte, issuer, subject string, ttl time.Duration) *AuthConfig {
	return JWTAuth(&JWTSigner{
		Method: gojwt.SigningMethodHS256,
		Key:    secret,
		Claims: func() gojwt.Claims {
			now := time.Now()
			return gojwt.RegisteredClaims{
				Issuer:    issuer,
				Subject:   subject,
				IssuedAt:  gojwt.NewNumericDate(now),
				ExpiresAt: gojwt.NewNumericDate(now.Add(ttl)),
			}
		},
	})
}

// apply applies authentication to an HTTP request.
func (a *AuthConfig) apply(req *http.Request) error {
	if a == nil {
		return nil
	}
	switch a.Type {
	case AuthBearer:
		req.Header.Set("Authorization", "Bearer "+a.Token)
	case AuthBasic:
		req.SetBasicAuth(a.Username, a.Password)
	case AuthAPIKey:
		name := a.Name
		if name == "" {
			name = "X-API-Key"
		}
		if a.In == "query" {
			q := req.URL.Query()
			q.Set(name, a.Key)
			req.URL.RawQuery = q.Encode()
		} else {
			req.Header.Set(name, a.Key)
		}
	case AuthCustom:
		if a.Apply != nil {
			a.Apply(req)
		}
	case AuthJWT:
		if a.Signer == nil {
			return fmt.Errorf("httpclient: jwt auth without signer")
		}
		token, err := a.Signer.Sign()
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return nil
}
