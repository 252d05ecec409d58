package fcm

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// ScopeMessaging is the OAuth2 scope required to call the FCM v1 send API.
const ScopeMessaging = "https://www.googleapis.com/auth/firebase.messaging"

// TokenSourceFromFile loads a service-account key file and returns a token
// source that exchanges it for short-lived bearer tokens. The exchange is a
// network round trip against the identity provider and happens when the
// first token is requested; nothing is cached across process invocations.
// If no scopes are given, ScopeMessaging is used.
func TokenSourceFromFile(ctx context.Context, path string, scopes ...string) (oauth2.TokenSource, error) {
	if len(scopes) == 0 {
		scopes = []string{ScopeMessaging}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read service account key: %w", err)
	}

	creds, err := google.CredentialsFromJSON(ctx, data, scopes...)
	if err != nil {
		return nil, fmt.Errorf("invalid service account key %s: %w", path, err)
	}

	return creds.TokenSource, nil
}
