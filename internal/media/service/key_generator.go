package service

import (
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// KeyGenerator produces storage keys that are unique with extremely high
// probability: owner id, millisecond timestamp, and a random token, so the
// same filename uploaded twice never collides. Keys are never reused, which
// is what lets stored objects carry an immutable cache directive.
type KeyGenerator struct {
	prefix string
	now    func() time.Time
}

func NewKeyGenerator(prefix string) *KeyGenerator {
	return &KeyGenerator{prefix: prefix, now: time.Now}
}

// Generate builds a key like "restaurant-logos/biz-1_1712345678901_3f2a9c.jpg".
// Filenames without an extension are tolerated; the extension segment is then
// simply absent.
func (g *KeyGenerator) Generate(originalName, ownerID string) string {
	timestamp := g.now().UnixMilli()
	token := strings.ReplaceAll(uuid.New().String(), "-", "")[:13]
	ext := strings.ToLower(path.Ext(originalName))

	return fmt.Sprintf("%s%s_%d_%s%s", g.prefix, ownerID, timestamp, token, ext)
}
