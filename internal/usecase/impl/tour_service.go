package impl

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"time"

	"natours/internal/domain/entity"
	domainerrors "natours/internal/domain/errors"
	"natours/internal/domain/repository"
	"natours/internal/domain/service"
	"natours/internal/errors"
	"natours/internal/usecase"

	"github.com/paulmach/orb"
	"go.uber.org/fx"
)

const (
	statsMinRating  = 4.5
	monthlyPlanSize = 12
)

// tourService implements the TourUsecase interface.
type tourService struct {
	*resourceService[entity.Tour]

	tourRepo repository.TourRepository
	geo      service.GeoService
	logger   *slog.Logger
}

// TourServiceParams holds dependencies for TourService, injected by Fx.
type TourServiceParams struct {
	fx.In

	TourRepo   repository.TourRepository
	GeoService service.GeoService
	Logger     *slog.Logger
}

// NewTourService is the constructor for tourService.
func NewTourService(params TourServiceParams) usecase.TourUsecase {
	return &tourService{
		resourceService: newResourceService[entity.Tour](params.TourRepo, nil),
		tourRepo:        params.TourRepo,
		geo:             params.GeoService,
		logger:          params.Logger,
	}
}

func (srv *tourService) GetBySlug(ctx context.Context, slug string) (*entity.Tour, error) {
	tour, err := srv.tourRepo.FindBySlug(ctx, slug)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, domainerrors.ErrTourNameNotFound
	}
	if err != nil {
		return nil, err
	}

	return tour, nil
}

// Stats groups the well rated tours by difficulty.
func (srv *tourService) Stats(ctx context.Context) ([]*entity.TourStats, error) {
	return srv.tourRepo.Stats(ctx, statsMinRating)
}

// MonthlyPlan counts the tour starts of every month of year, busiest month first.
func (srv *tourService) MonthlyPlan(ctx context.Context, year int) ([]*entity.MonthlyPlan, error) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)

	tours, err := srv.tourRepo.FindStartingBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	byMonth := make(map[time.Month]*entity.MonthlyPlan)
	for _, tour := range tours {
		for _, start := range tour.StartDates {
			start = start.UTC()
			if start.Before(from) || !start.Before(to) {
				continue
			}

			plan, ok := byMonth[start.Month()]
			if !ok {
				plan = &entity.MonthlyPlan{Month: int(start.Month()), Tours: []string{}}
				byMonth[start.Month()] = plan
			}
			plan.NumTourStarts++
			plan.Tours = append(plan.Tours, tour.Name)
		}
	}

	plans := make([]*entity.MonthlyPlan, 0, len(byMonth))
	for _, plan := range byMonth {
		plans = append(plans, plan)
	}
	slices.SortFunc(plans, func(a, b *entity.MonthlyPlan) int {
		if c := cmp.Compare(b.NumTourStarts, a.NumTourStarts); c != 0 {
			return c
		}

		return cmp.Compare(a.Month, b.Month)
	})
	if len(plans) > monthlyPlanSize {
		plans = plans[:monthlyPlanSize]
	}

	return plans, nil
}

// Within narrows the store lookup to the bounding box of the search cap, then
// keeps the tours that lie on the cap itself.
func (srv *tourService) Within(ctx context.Context, center orb.Point, distance float64, unit entity.DistanceUnit) ([]*entity.Tour, error) {
	radians := unit.Radians(distance)

	candidates, err := srv.tourRepo.FindStartingWithin(ctx, srv.geo.CapBound(center, radians))
	if err != nil {
		return nil, err
	}

	tours := make([]*entity.Tour, 0, len(candidates))
	for _, tour := range candidates {
		if tour.StartLocation == nil {
			continue
		}
		if p, ok := tour.StartLocation.Point(); ok && srv.geo.InCap(center, p, radians) {
			tours = append(tours, tour)
		}
	}

	return tours, nil
}

func (srv *tourService) Distances(ctx context.Context, center orb.Point, unit entity.DistanceUnit) ([]*entity.TourDistance, error) {
	tours, err := srv.tourRepo.FindWithStartLocation(ctx)
	if err != nil {
		return nil, err
	}

	distances := make([]*entity.TourDistance, 0, len(tours))
	for _, tour := range tours {
		if tour.StartLocation == nil {
			continue
		}
		p, ok := tour.StartLocation.Point()
		if !ok {
			continue
		}
		distances = append(distances, &entity.TourDistance{
			ID:       tour.ID,
			Name:     tour.Name,
			Distance: unit.FromMeters(srv.geo.Distance(center, p)),
		})
	}
	slices.SortStableFunc(distances, func(a, b *entity.TourDistance) int {
		return cmp.Compare(a.Distance, b.Distance)
	})

	return distances, nil
}
