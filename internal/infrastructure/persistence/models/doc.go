// Package models contains GORM-specific persistence models that map to
// database tables. These models are separate from the domain entities to keep
// the domain layer free from ORM concerns: models carry all GORM annotations,
// mappers convert between the two, and repositories operate on models only.
package models
