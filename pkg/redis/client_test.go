package redis

import (
	"testing"
	"time"

	"github.com/broger/storefront-backend/pkg/config"
)

func TestOptionsFromConfigRequiresTarget(t *testing.T) {
	if _, err := optionsFromConfig(config.RedisConfig{}); err == nil {
		t.Fatal("expected error when url and address are both empty")
	}
}

func TestOptionsFromConfigParsesURL(t *testing.T) {
	opts, err := optionsFromConfig(config.RedisConfig{
		URL:         "redis://:secret@localhost:6380/2",
		PoolSize:    7,
		DialTimeout: 3 * time.Second,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.Addr != "localhost:6380" {
		t.Fatalf("unexpected addr %q", opts.Addr)
	}
	if opts.DB != 2 {
		t.Fatalf("unexpected db %d", opts.DB)
	}
	if opts.PoolSize != 7 {
		t.Fatalf("expected pool size fallback, got %d", opts.PoolSize)
	}
}

func TestCartKeyNamespacing(t *testing.T) {
	c := &Client{}
	if got := c.CartKey("sess-1"); got != "broger:cart:sess-1" {
		t.Fatalf("unexpected cart key %q", got)
	}
}
