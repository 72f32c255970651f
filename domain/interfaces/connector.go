package interfaces

import (
	"context"
	"encoding/json"

	"masquerade/domain/entities"
)

// CallHandler forwards remote operations for one named object on one host
type CallHandler interface {
	Invoke(ctx context.Context, op entities.RemoteOperation) (json.RawMessage, error)
}

// TokenService performs the OAuth2 token exchange
type TokenService interface {
	Token(ctx context.Context, user, password, grantType string) (entities.AccessToken, error)
}
