package usecase

import (
	"context"

	"github.com/santoscleaning/website-api/internal/entity"
	"github.com/santoscleaning/website-api/pkg/logger"
)

// SeedCatalog inserts the default service offerings when the catalog is
// empty. Runs once at startup; an already-populated catalog is left
// alone.
func SeedCatalog(ctx context.Context, repo entity.ServiceRepositoryInterface, log logger.Logger) error {
	count, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if err := repo.InsertMany(ctx, DefaultOfferings()); err != nil {
		return err
	}

	log.Info("default service offerings seeded")
	return nil
}

// DefaultOfferings is the fixed catalog. "Starting from" prices.
func DefaultOfferings() []*entity.ServiceOffering {
	return []*entity.ServiceOffering{
		entity.NewServiceOffering(
			"Deep Cleaning",
			"Complete top-to-bottom cleaning ideal for first-time visits, post-renovation, or long periods without service. Includes hidden and hard-to-reach spots.",
			159.0,
			4,
			[]string{"All rooms", "Kitchen deep clean", "Bathroom sanitization", "Window cleaning", "Baseboards", "Light fixtures"},
		),
		entity.NewServiceOffering(
			"Regular Maintenance",
			"Ongoing cleaning to keep your space fresh. Includes kitchen, bathrooms, bedrooms, floors, and all visible surfaces.",
			69.0,
			2,
			[]string{"Surface cleaning", "Vacuuming", "Mopping", "Bathroom cleaning", "Kitchen cleaning", "Dusting"},
		),
		entity.NewServiceOffering(
			"Move-In / Move-Out Cleaning",
			"Detailed cleaning to prepare a home for new occupants or leave it spotless after moving. Includes inside cabinets, baseboards, and appliances.",
			173.0,
			6,
			[]string{"Complete deep clean", "Cabinet interiors", "Appliance cleaning", "Wall washing", "Closet cleaning", "Garage cleaning"},
		),
	}
}
