package auth

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// LocalVerifier validates HS256 tokens signed with a shared secret. It exists
// for deployments without Firebase, mainly local development and CI.
type LocalVerifier struct {
	secret []byte
}

// NewLocalVerifier returns a verifier for tokens signed with secret.
func NewLocalVerifier(secret string) *LocalVerifier {
	return &LocalVerifier{secret: []byte(secret)}
}

func (v *LocalVerifier) Verify(ctx context.Context, idToken string) (*Principal, error) {
	token, err := jwt.Parse(idToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	uid, ok := claims["sub"].(string)
	if !ok || uid == "" {
		return nil, fmt.Errorf("%w: missing sub claim", ErrInvalidToken)
	}
	email, _ := claims["email"].(string)
	return &Principal{UID: uid, Email: email}, nil
}
