// internal/identity/verifier.go
package identity

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/garasilabs/maganghub/internal/domain"
)

//go:generate mockgen -typed -source=./verifier.go -destination=../mocks/mock_verifier.go -package=mocks Verifier

// Identity is the result of resolving an external provider token: the only
// two facts the login/register paths need.
type Identity struct {
	Email string
	Name  string
}

// Verifier resolves an opaque provider token into an Identity. The concrete
// implementation is chosen at startup, so the provider boundary stays
// swappable instead of being baked into the auth flow.
type Verifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}

// InsecureVerifier accepts a base64url-encoded JSON payload of the form
// {"email": "...", "name": "..."} and trusts it without any signature check.
// It exists for local development and tests only, standing in for a real
// provider callback.
type InsecureVerifier struct{}

func NewInsecureVerifier() *InsecureVerifier { return &InsecureVerifier{} }

func (v *InsecureVerifier) Verify(ctx context.Context, token string) (*Identity, error) {
	raw, err := base64.RawURLEncoding.DecodeString(strings.TrimSpace(token))
	if err != nil {
		return nil, fmt.Errorf("decoding identity token: %w", err)
	}

	var claims struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := json.Unmarshal(raw, &claims); err != nil {
		return nil, fmt.Errorf("parsing identity token: %w", err)
	}

	if claims.Email == "" {
		return nil, domain.ErrInvalidIdentity
	}
	return &Identity{Email: claims.Email, Name: claims.Name}, nil
}

// EncodeInsecureToken builds a token the InsecureVerifier accepts. Used by
// tests and the magangctl development CLI.
func EncodeInsecureToken(email, name string) string {
	raw, _ := json.Marshal(map[string]string{"email": email, "name": name})
	return base64.RawURLEncoding.EncodeToString(raw)
}
