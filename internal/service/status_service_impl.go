package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/gardenplan/internal/domain"
	"github.com/alexanderramin/gardenplan/internal/repository"
)

type statusService struct {
	states repository.StateRepo
}

func NewStatusService(states repository.StateRepo) StatusService {
	return &statusService{states: states}
}

func (s *statusService) Summary(ctx context.Context) (domain.Summary, error) {
	st, err := s.states.Load(ctx)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("loading garden: %w", err)
	}
	return st.Summary(), nil
}

// Check looks for plantings of deleted plants, beds outside the grid and
// incompatible neighbours in the current week.
func (s *statusService) Check(ctx context.Context) (*CheckReport, error) {
	st, err := s.states.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading garden: %w", err)
	}
	return &CheckReport{
		Week:        st.CurrentWeek,
		Dangling:    st.DanglingPlantings(),
		OutOfBounds: st.OutOfBoundsBeds(),
		Conflicts:   st.CompanionConflicts(st.CurrentWeek),
	}, nil
}
