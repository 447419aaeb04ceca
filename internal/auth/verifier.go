// Package auth verifies bearer credentials against the external identity
// provider. Only the verified email claim is trusted downstream.
package auth

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"etuition/internal/errdefs"
)

// TokenVerifier resolves a bearer token to a verified email.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, idToken string) (string, error)
}

type FirebaseVerifier struct {
	client *fbauth.Client
}

func NewFirebaseVerifier(ctx context.Context, credentialsFile string) (*FirebaseVerifier, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to init identity provider app: %w", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to init identity provider client: %w", err)
	}

	return &FirebaseVerifier{client: client}, nil
}

func (v *FirebaseVerifier) VerifyToken(ctx context.Context, idToken string) (string, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", errdefs.ErrUnauthorized
	}

	email, ok := token.Claims["email"].(string)
	if !ok || email == "" {
		return "", errdefs.ErrUnauthorized
	}
	return email, nil
}
