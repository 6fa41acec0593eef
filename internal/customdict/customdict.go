package customdict

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// CustomDict stores user-added vocabulary in a Redis set, one set per
// language, so several models serving different languages can share a
// single Redis instance.
type CustomDict struct {
	client *redis.Client
	key    string
}

// New creates a CustomDict for the given language on the provided
// Redis client.
func New(client *redis.Client, language string) *CustomDict {
	return &CustomDict{client: client, key: "spellkit:custom:" + language}
}

// Add inserts a word into the custom dictionary.
func (cd *CustomDict) Add(ctx context.Context, word string) error {
	return cd.client.SAdd(ctx, cd.key, word).Err()
}

// Remove deletes a word from the custom dictionary.
func (cd *CustomDict) Remove(ctx context.Context, word string) error {
	return cd.client.SRem(ctx, cd.key, word).Err()
}

// All returns all words stored in the custom dictionary.
func (cd *CustomDict) All(ctx context.Context) ([]string, error) {
	return cd.client.SMembers(ctx, cd.key).Result()
}
