package identity

import (
	"encoding/binary"
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must ensure key construction prevents cross-entity collisions (prefix by domain/type).
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// ProjectUUID identifies a generation request by brand and domain.
func ProjectUUID(brand, domain string) uuid.UUID {
	return UUID("go-sitegen:project:" + strings.ToLower(strings.TrimSpace(brand)) + ":" + strings.ToLower(strings.TrimSpace(domain)))
}

// PageUUID identifies a page within a project.
func PageUUID(projectID uuid.UUID, pageName string) uuid.UUID {
	return UUID("go-sitegen:page:" + projectID.String() + ":" + strings.ToLower(strings.TrimSpace(pageName)))
}

// ProjectSeed derives a stable seed for project-wide choices such as fonts
// and animation sets.
func ProjectSeed(brand, domain string) int64 {
	uid := ProjectUUID(brand, domain)
	return int64(binary.BigEndian.Uint64(uid[:8]) & 0x7fffffffffffffff)
}

// PageSeed derives a stable layout seed for a page. The same brand, domain,
// and page always produce the same seed, so regenerating a project yields the
// same layout and template choices.
func PageSeed(brand, domain, pageName string) int64 {
	uid := PageUUID(ProjectUUID(brand, domain), pageName)
	seed := int64(binary.BigEndian.Uint64(uid[:8]) & 0x7fffffffffffffff)
	return seed
}
