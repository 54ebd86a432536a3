package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerate_ComposesOwnerTimestampAndExtension(t *testing.T) {
	gen := NewKeyGenerator("restaurant-logos/")
	gen.now = func() time.Time { return time.UnixMilli(1712345678901) }

	key := gen.Generate("Logo.PNG", "biz-42")

	assert.True(t, strings.HasPrefix(key, "restaurant-logos/biz-42_1712345678901_"), key)
	assert.True(t, strings.HasSuffix(key, ".png"), key)
}

func TestGenerate_LowercasesExtension(t *testing.T) {
	gen := NewKeyGenerator("")

	key := gen.Generate("photo.JPEG", "biz-1")

	assert.True(t, strings.HasSuffix(key, ".jpeg"), key)
}

func TestGenerate_ToleratesMissingExtension(t *testing.T) {
	gen := NewKeyGenerator("covers/")

	key := gen.Generate("logo", "biz-1")

	assert.True(t, strings.HasPrefix(key, "covers/biz-1_"), key)
	assert.False(t, strings.Contains(key, "."), key)
}

func TestGenerate_SameInputsNeverCollide(t *testing.T) {
	gen := NewKeyGenerator("restaurant-logos/")

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		key := gen.Generate("logo.jpg", "biz-1")
		assert.False(t, seen[key], "duplicate key %s", key)
		seen[key] = true
	}
}
