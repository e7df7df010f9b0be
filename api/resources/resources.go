// FilePath: api/resources/resources.go
package resources

import (
	"context"

	"github.com/guitarkeep/hub/internal/models"
)

// QueryService is what the HTTP resources need from the service layer
type QueryService interface {
	ListEntries(ctx context.Context, r models.TimeRange) ([]models.QueryResultEntry, error)
	ListEntriesByRoomType(ctx context.Context, roomType string, r models.TimeRange) ([]models.QueryResultEntry, error)
	ListEntriesByDataType(ctx context.Context, dataType string, r models.TimeRange) ([]models.QueryResultEntry, error)
	AverageAll(ctx context.Context) ([]models.AggregatedEntry, error)
	AverageByRoomType(ctx context.Context, roomType string) ([]models.AggregatedEntry, error)
	Categories() models.CategoryListing
	Health(ctx context.Context) error
}

// Resources holds all HTTP resource handlers
type Resources struct {
	Entries    *EntryHandlers
	Averages   *AverageHandlers
	Health     *HealthHandlers
	Categories *CategoryHandlers
}

// NewResources creates a new Resources instance
func NewResources(svc QueryService) *Resources {
	return &Resources{
		Entries:    &EntryHandlers{service: svc},
		Averages:   &AverageHandlers{service: svc},
		Health:     &HealthHandlers{service: svc},
		Categories: &CategoryHandlers{service: svc},
	}
}
