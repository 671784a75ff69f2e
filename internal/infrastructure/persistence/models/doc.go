// Package models contains GORM-specific persistence models that map to database tables.
// These models are separate from domain entities to keep the domain layer free of
// ORM concerns. Each model carries a ToDomain method and a FromDomain constructor.
package models
