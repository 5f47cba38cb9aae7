package ports

import "context"

// SecretStore holds the Trello API key and token at rest, addressed by
// opaque keys such as "trello/api_key".
type SecretStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
