package database

import (
	"fmt"

	"github.com/example/engmemory/pkg/models"
)

// CategoryRepository manages word categories and their assignments.
type CategoryRepository struct{}

// NewCategoryRepository creates a new repository instance.
func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{}
}

// Create inserts a new category and fills in its ID.
func (r *CategoryRepository) Create(category *models.Category) error {
	if DB.DriverName() == "postgres" {
		return DB.QueryRow(DB.Rebind(`
			INSERT INTO categories (name, description, color)
			VALUES (?, ?, ?)
			RETURNING id`),
			category.Name, category.Description, category.Color,
		).Scan(&category.ID)
	}

	result, err := DB.Exec(DB.Rebind(`
		INSERT INTO categories (name, description, color)
		VALUES (?, ?, ?)`),
		category.Name, category.Description, category.Color,
	)
	if err != nil {
		return fmt.Errorf("failed to create category: %v", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert ID: %v", err)
	}
	category.ID = id
	return nil
}

// GetAll returns all categories ordered by name.
func (r *CategoryRepository) GetAll() ([]models.Category, error) {
	var categories []models.Category
	err := DB.Select(&categories, `
		SELECT id, name, description, color, created_at
		FROM categories
		ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %v", err)
	}
	return categories, nil
}

// Assign links a word to a category. Assigning twice is a no-op.
func (r *CategoryRepository) Assign(word string, categoryID int64) error {
	_, err := DB.Exec(DB.Rebind(`
		INSERT INTO word_categories (word, category_id)
		VALUES (?, ?)
		ON CONFLICT (word, category_id) DO NOTHING`),
		word, categoryID,
	)
	if err != nil {
		return fmt.Errorf("failed to assign category: %v", err)
	}
	return nil
}

// GetWordCategories returns the categories assigned to a word.
func (r *CategoryRepository) GetWordCategories(word string) ([]models.Category, error) {
	var categories []models.Category
	err := DB.Select(&categories, DB.Rebind(`
		SELECT c.id, c.name, c.description, c.color, c.created_at
		FROM categories c
		JOIN word_categories wc ON wc.category_id = c.id
		WHERE wc.word = ?
		ORDER BY c.name`),
		word,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get word categories: %v", err)
	}
	return categories, nil
}
