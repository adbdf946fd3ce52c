package googleauth

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// TokenProvider supplies OAuth2 bearer tokens for the requested scopes.
type TokenProvider interface {
	Token(ctx context.Context, scopes ...string) (string, error)
}

// BearerHeader builds the Authorization header value for a token
func BearerHeader(token string) string {
	return "Bearer " + token
}

// Provider acquires tokens from Google credentials on disk. It understands
// service account JSON as well as OAuth client JSON paired with a previously
// saved token file.
type Provider struct {
	credentialsFile string
	tokenFile       string
}

// NewProvider creates a token provider backed by the given credential files
func NewProvider(credentialsFile, tokenFile string) *Provider {
	return &Provider{
		credentialsFile: credentialsFile,
		tokenFile:       tokenFile,
	}
}

// Token returns an access token for the resolved scopes.
// Scope aliases like "sheets" and "drive.readonly" are expanded via ResolveScopes.
func (p *Provider) Token(ctx context.Context, scopes ...string) (string, error) {
	resolved := ResolveScopes(scopes...)

	b, err := os.ReadFile(p.credentialsFile)
	if err != nil {
		return "", fmt.Errorf("failed to read credentials file: %w", err)
	}

	// Service account and authorized-user JSON are both handled here
	if creds, err := google.CredentialsFromJSON(ctx, b, resolved...); err == nil {
		tok, err := creds.TokenSource.Token()
		if err != nil {
			return "", fmt.Errorf("failed to fetch token: %w", err)
		}
		return tok.AccessToken, nil
	}

	// Fall back to OAuth client JSON with a cached user token
	config, err := google.ConfigFromJSON(b, resolved...)
	if err != nil {
		return "", fmt.Errorf("unrecognized credentials format: %w", err)
	}

	cached, err := p.readCachedToken()
	if err != nil {
		return "", err
	}

	tok, err := config.TokenSource(ctx, cached).Token()
	if err != nil {
		return "", fmt.Errorf("failed to refresh token: %w", err)
	}

	// Persist rotated tokens so the refresh survives the process
	if tok.AccessToken != cached.AccessToken {
		if err := p.writeCachedToken(tok); err != nil {
			log.Debug().Err(err).Str("token_file", p.tokenFile).Msg("Failed to cache refreshed token")
		}
	}

	return tok.AccessToken, nil
}

func (p *Provider) readCachedToken() (*oauth2.Token, error) {
	f, err := os.Open(p.tokenFile)
	if err != nil {
		return nil, fmt.Errorf("no saved token (run the authorization flow first): %w", err)
	}
	defer f.Close()

	tok := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(tok); err != nil {
		return nil, fmt.Errorf("failed to decode token file: %w", err)
	}
	return tok, nil
}

func (p *Provider) writeCachedToken(tok *oauth2.Token) error {
	f, err := os.OpenFile(p.tokenFile, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewEncoder(f).Encode(tok)
}
