package answercache

import (
	"context"
	"time"

	"github.com/valkey-io/valkey-go"

	"faqpilot/internal/domain/qa"
	apperrors "faqpilot/pkg/errors"
)

// ValkeyCache stores external completions in a Valkey-compatible database.
type ValkeyCache struct {
	client valkey.Client
	prefix string
}

// NewValkeyCache constructs the cache.
func NewValkeyCache(client valkey.Client, prefix string) *ValkeyCache {
	if prefix == "" {
		prefix = "qa"
	}
	return &ValkeyCache{client: client, prefix: prefix}
}

func (c *ValkeyCache) Get(ctx context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, nil
	}
	resp := c.client.Do(ctx, c.client.B().Get().Key(c.answerKey(key)).Build())
	answer, err := resp.ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return "", false, nil
		}
		return "", false, apperrors.Wrap(apperrors.CodeStorage, "answer cache get", err)
	}
	return answer, true, nil
}

func (c *ValkeyCache) Save(ctx context.Context, key, answer string, ttl time.Duration) error {
	if key == "" {
		return nil
	}
	builder := c.client.B().Set().Key(c.answerKey(key)).Value(answer)
	var cmd valkey.Completed
	if ttl > 0 {
		if ttl < time.Second {
			ttl = time.Second
		}
		cmd = builder.Ex(ttl).Build()
	} else {
		cmd = builder.Build()
	}
	if err := c.client.Do(ctx, cmd).Error(); err != nil {
		return apperrors.Wrap(apperrors.CodeStorage, "answer cache save", err)
	}
	return nil
}

func (c *ValkeyCache) answerKey(key string) string {
	return c.prefix + ":answer:" + key
}

var _ qa.AnswerCache = (*ValkeyCache)(nil)
