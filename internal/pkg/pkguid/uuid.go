package pkguid

import "github.com/google/uuid"

// UUID mints time-ordered UUIDv7 strings, used as correlation IDs.
type UUID struct{}

func NewUUID() *UUID {
	return &UUID{}
}

func (*UUID) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}

var _ StringID = (*UUID)(nil)
