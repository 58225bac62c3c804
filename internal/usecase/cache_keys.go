package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"worklink/internal/repository"
)

const (
	browseCachePrefix          = "jobs:browse:"
	recommendationCachePrefix  = "recs:user:"
	recommendationCacheVersion = "v1"
)

// browseCacheKey derives a stable key from the normalized filter so that
// equivalent searches share one cache entry regardless of input casing or
// stray whitespace.
func browseCacheKey(f repository.JobFilter) string {
	payload := struct {
		Keyword string `json:"keyword"`
		City    string `json:"city"`
		Country string `json:"country"`
		Remote  bool   `json:"remote"`
		Type    string `json:"type"`
		Limit   int    `json:"limit"`
		Offset  int    `json:"offset"`
	}{
		Keyword: normalizeCacheValue(f.Keyword),
		City:    normalizeCacheValue(f.City),
		Country: normalizeCacheValue(f.Country),
		Remote:  f.Remote,
		Type:    normalizeCacheValue(f.EmploymentType),
		Limit:   f.Limit,
		Offset:  f.Offset,
	}

	b, err := json.Marshal(payload)
	if err != nil {
		b = []byte(fmt.Sprintf("%+v", payload))
	}
	sum := sha256.Sum256(b)
	return browseCachePrefix + hex.EncodeToString(sum[:])
}

func normalizeCacheValue(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

func recommendationsCacheKey(seekerID uuid.UUID, limit int) string {
	return fmt.Sprintf("%s%s:%s:limit:%d", recommendationCachePrefix, seekerID, recommendationCacheVersion, limit)
}

// recommendationsCachePattern matches every cached page for one seeker, used
// when a profile edit or a new application makes the cached ranking stale.
func recommendationsCachePattern(seekerID uuid.UUID) string {
	return fmt.Sprintf("%s%s:*", recommendationCachePrefix, seekerID)
}
