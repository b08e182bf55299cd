package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/alexanderramin/gardenplan/internal/domain"
	"github.com/alexanderramin/gardenplan/internal/repository"
	"github.com/alexanderramin/gardenplan/internal/testutil"
	"github.com/stretchr/testify/require"
)

type services struct {
	db       *sql.DB
	states   repository.StateRepo
	garden   GardenService
	imports  ImportService
	exports  ExportService
	status   StatusService
	inspect  InspectService
	observed *recordingObserver
}

func setupServices(t *testing.T) *services {
	t.Helper()
	database := testutil.NewTestDB(t)
	states := repository.NewSQLiteStateRepo(database)
	uow := testutil.NewTestUoW(database)
	obs := &recordingObserver{}
	return &services{
		db:       database,
		states:   states,
		garden:   NewGardenService(states, uow, obs),
		imports:  NewImportService(uow, obs),
		exports:  NewExportService(states, obs),
		status:   NewStatusService(states),
		inspect:  NewInspectService(
			repository.NewSQLiteGardenRepo(database),
			repository.NewSQLitePlantRepo(database),
			repository.NewSQLiteBedRepo(database),
			repository.NewSQLiteSlotRepo(database),
			repository.NewSQLitePlantingRepo(database),
			obs,
		),
		observed: obs,
	}
}

// seedBed stores a 4x2 bed "North" at the origin with one 2x2 slot.
func seedBed(t *testing.T, svc GardenService) (domain.Bed, domain.Slot) {
	t.Helper()
	slot := testutil.NewTestSlot("1", testutil.WithSlotID("s1"), testutil.WithSlotRect(0, 0, 2, 2))
	bed := testutil.NewTestBed("North", testutil.WithBedID("b1"), testutil.WithBedRect(0, 0, 4, 2))
	_, err := svc.Dispatch(context.Background(),
		domain.AddBed{Bed: bed},
		domain.AddSlot{BedID: bed.ID, Slot: slot},
	)
	require.NoError(t, err)
	return bed, slot
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) last() UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	if len(o.events) == 0 {
		return UseCaseEvent{}
	}
	return o.events[len(o.events)-1]
}
