package out

import (
	"context"

	drillout "hindidrill/internal/modules/drill/port/out"
	catalogin "hindidrill/internal/modules/catalog/port/in"
)

type CatalogAdapter struct {
	catalog catalogin.Usecase
}

func NewCatalogAdapter(catalog catalogin.Usecase) drillout.LessonCatalog {
	return &CatalogAdapter{catalog: catalog}
}

func (a *CatalogAdapter) Confirm(ctx context.Context, lessonID string) error {
	_, err := a.catalog.Get(ctx, lessonID)
	return err
}
