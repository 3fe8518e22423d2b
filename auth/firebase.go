package auth

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go"
	fbauth "firebase.google.com/go/auth"
	"google.golang.org/api/option"

	"github.com/agusputra69/pawranger-api/config"
)

var (
	firebaseAuth *fbauth.Client
	projectID    string
)

// InitFirebase wires the Firebase Auth client used to verify Google ID
// tokens. Must run before the auth routes are served.
func InitFirebase(cfg config.App) error {
	ctx := context.Background()

	projectID = cfg.FirebaseProjectID
	opt := option.WithCredentialsJSON([]byte(cfg.FirebaseCredentials))

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opt)
	if err != nil {
		return fmt.Errorf("init firebase app: %w", err)
	}

	firebaseAuth, err = app.Auth(ctx)
	if err != nil {
		return fmt.Errorf("init firebase auth client: %w", err)
	}
	return nil
}

// verifyGoogleToken checks the Firebase ID token and returns uid, email,
// name, picture.
func verifyGoogleToken(ctx context.Context, idToken string) (string, string, string, string, error) {
	token, err := firebaseAuth.VerifyIDTokenAndCheckRevoked(ctx, idToken)
	if err != nil {
		return "", "", "", "", fmt.Errorf("invalid firebase id token: %w", err)
	}
	if token.Audience != projectID {
		return "", "", "", "", fmt.Errorf("invalid token audience")
	}

	email, _ := token.Claims["email"].(string)
	name, _ := token.Claims["name"].(string)
	picture, _ := token.Claims["picture"].(string)
	return token.UID, email, name, picture, nil
}
