// Package catalog reads the static learning-resource and question catalogs.
package catalog

import (
	"context"

	"github.com/dmitrijs2005/staffscore/internal/server/models"
)

type Repository interface {
	LearningResources(ctx context.Context) ([]models.LearningResource, error)
	Questions(ctx context.Context) ([]models.Question, error)
}
