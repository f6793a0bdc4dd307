package usecase

import (
	"context"
	"errors"
	"strings"

	"chatter-metrics-service/internal/metrics/core/domain"
	"chatter-metrics-service/internal/metrics/core/ports"

	"github.com/google/uuid"
)

var (
	ErrSavedReportNotFound = errors.New("saved report not found")
	ErrForbidden           = errors.New("only the owner can modify this report")
	ErrMissingOwner        = errors.New("user id is required")
	ErrInvalidSavedReport  = errors.New("invalid saved report")
)

const maxReportNameLen = 120

type CreateSavedReportInput struct {
	OwnerID     string
	Name        string
	Description string
	Config      domain.ReportConfig
	Public      bool
}

type SavedReportsUseCase struct {
	store  ports.SavedReportPort
	runner *RunReportUseCase
	now    Clock
	newID  func() uuid.UUID
}

func NewSavedReportsUseCase(store ports.SavedReportPort, runner *RunReportUseCase) *SavedReportsUseCase {
	return &SavedReportsUseCase{store: store, runner: runner, now: systemClock, newID: uuid.New}
}

func (uc *SavedReportsUseCase) WithClock(c Clock) *SavedReportsUseCase {
	uc.now = c
	return uc
}

// Create stores cfg once it resolves to a valid report.
func (uc *SavedReportsUseCase) Create(ctx context.Context, in CreateSavedReportInput) (domain.SavedReport, error) {
	owner := strings.TrimSpace(in.OwnerID)
	if owner == "" {
		return domain.SavedReport{}, ErrMissingOwner
	}
	name := strings.TrimSpace(in.Name)
	if name == "" || len(name) > maxReportNameLen {
		return domain.SavedReport{}, ErrInvalidSavedReport
	}
	if _, err := in.Config.Resolve(uc.now()); err != nil {
		return domain.SavedReport{}, err
	}

	r := domain.SavedReport{
		ID:          uc.newID(),
		OwnerID:     owner,
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Config:      in.Config,
		Public:      in.Public,
		CreatedAt:   uc.now(),
	}
	if err := uc.store.CreateSavedReport(ctx, r); err != nil {
		return domain.SavedReport{}, err
	}
	return r, nil
}

func (uc *SavedReportsUseCase) List(ctx context.Context, viewerID string) ([]domain.SavedReport, error) {
	return uc.store.ListSavedReports(ctx, strings.TrimSpace(viewerID))
}

// Get hides reports the viewer cannot see behind ErrSavedReportNotFound.
func (uc *SavedReportsUseCase) Get(ctx context.Context, id uuid.UUID, viewerID string) (domain.SavedReport, error) {
	r, err := uc.store.GetSavedReport(ctx, id)
	if errors.Is(err, ports.ErrSavedReportNotFound) {
		return domain.SavedReport{}, ErrSavedReportNotFound
	}
	if err != nil {
		return domain.SavedReport{}, err
	}
	if !r.VisibleTo(strings.TrimSpace(viewerID)) {
		return domain.SavedReport{}, ErrSavedReportNotFound
	}
	return r, nil
}

func (uc *SavedReportsUseCase) Delete(ctx context.Context, id uuid.UUID, viewerID string) error {
	r, err := uc.Get(ctx, id, viewerID)
	if err != nil {
		return err
	}
	if r.OwnerID != strings.TrimSpace(viewerID) {
		return ErrForbidden
	}
	if err := uc.store.DeleteSavedReport(ctx, id); err != nil {
		if errors.Is(err, ports.ErrSavedReportNotFound) {
			return ErrSavedReportNotFound
		}
		return err
	}
	return nil
}

// Run replays the stored configuration. Presets resolve against today.
func (uc *SavedReportsUseCase) Run(ctx context.Context, id uuid.UUID, viewerID string) (*RunReportResult, error) {
	r, err := uc.Get(ctx, id, viewerID)
	if err != nil {
		return nil, err
	}
	return uc.runner.Execute(ctx, r.Config)
}
