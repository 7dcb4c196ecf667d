// Package repository persists the family's collections in SurrealDB.
//
// Every record carries a family field, and all queries scope on it, so
// one database can host several households. Writes are full-content
// upserts keyed by the client-generated ID; the merge layer re-lists
// collections rather than reading individual write results.
package repository

import (
	"github.com/ella-quan/meowhome/internal/database"
)

// FamilyRepository handles data access for a single family's collections.
type FamilyRepository struct {
	db     database.Database
	family string
}

// NewFamilyRepository creates a repository scoped to the given family.
func NewFamilyRepository(db database.Database, family string) *FamilyRepository {
	return &FamilyRepository{db: db, family: family}
}
