package repository

import (
	"duty-roster-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// RosterDocumentRepositoryInterface defines the interface for roster document repository operations
type RosterDocumentRepositoryInterface interface {
	GetByKey(key string) (*models.RosterDocument, error)
	Upsert(doc *models.RosterDocument, columns []string) error
}
