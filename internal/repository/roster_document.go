package repository

import (
	"duty-roster-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RosterDocumentRepository handles database operations for roster documents
type RosterDocumentRepository struct {
	db *gorm.DB
}

// Ensure RosterDocumentRepository implements RosterDocumentRepositoryInterface
var _ RosterDocumentRepositoryInterface = (*RosterDocumentRepository)(nil)

// NewRosterDocumentRepository creates a new roster document repository
func NewRosterDocumentRepository(db *gorm.DB) *RosterDocumentRepository {
	return &RosterDocumentRepository{db: db}
}

// GetByKey retrieves a roster document by its key
func (r *RosterDocumentRepository) GetByKey(key string) (*models.RosterDocument, error) {
	var doc models.RosterDocument
	if err := r.db.First(&doc, "key = ?", key).Error; err != nil {
		return nil, err
	}
	return &doc, nil
}

// Upsert creates the document or, if it exists, overwrites only the given columns
func (r *RosterDocumentRepository) Upsert(doc *models.RosterDocument, columns []string) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns(columns),
	}).Create(doc).Error
}
