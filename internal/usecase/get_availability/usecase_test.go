package get_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	availCache "github.com/m04kA/SMC-ReservationService/internal/infra/cache/availability"
)

type fakeReservationRepo struct {
	reservations []*domain.Reservation
	err          error
	calls        int
}

func (f *fakeReservationRepo) FindForDay(_ context.Context, _ int64, _, _ time.Time, _ bool) ([]*domain.Reservation, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.reservations, nil
}

type fakeCache struct {
	stored   map[string][]domain.TimeWindow
	getErr   error
	setErr   error
	setCalls int
}

func newFakeCache() *fakeCache {
	return &fakeCache{stored: make(map[string][]domain.TimeWindow)}
}

func (f *fakeCache) Get(_ context.Context, resourceID int64, date time.Time) ([]domain.TimeWindow, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	key := availCache.Key(resourceID, date)
	windows, ok := f.stored[key]
	if !ok {
		return nil, availCache.ErrCacheMiss
	}
	return windows, nil
}

func (f *fakeCache) Set(_ context.Context, resourceID int64, date time.Time, windows []domain.TimeWindow) error {
	f.setCalls++
	if f.setErr != nil {
		return f.setErr
	}
	f.stored[availCache.Key(resourceID, date)] = windows
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestExecute_CacheMissComputesAndPopulates(t *testing.T) {
	dayStart := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	repo := &fakeReservationRepo{
		reservations: []*domain.Reservation{
			{
				ResourceID: 7,
				StartTime:  dayStart.Add(10 * time.Hour),
				EndTime:    dayStart.Add(12 * time.Hour),
				Status:     domain.StatusConfirmed,
			},
		},
	}
	cache := newFakeCache()
	uc := NewUseCase(repo, cache, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{ResourceID: 7, Date: dayStart})

	require.NoError(t, err)
	require.Len(t, resp.Windows, 2)
	assert.Equal(t, 1, repo.calls)
	assert.Equal(t, 1, cache.setCalls)

	// Повторный запрос обслуживается кэшем, журнал не трогаем
	resp2, err := uc.Execute(context.Background(), &Request{ResourceID: 7, Date: dayStart})
	require.NoError(t, err)
	assert.Equal(t, resp.Windows, resp2.Windows)
	assert.Equal(t, 1, repo.calls)
}

func TestExecute_CacheFailureDegradesToDirectCompute(t *testing.T) {
	dayStart := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	repo := &fakeReservationRepo{}
	cache := newFakeCache()
	cache.getErr = availCache.ErrCacheUnavailable
	cache.setErr = availCache.ErrCacheUnavailable

	uc := NewUseCase(repo, cache, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{ResourceID: 7, Date: dayStart})

	require.NoError(t, err)
	require.Len(t, resp.Windows, 1)
	assert.Equal(t, dayStart, resp.Windows[0].Start)
	assert.Equal(t, dayStart.Add(24*time.Hour), resp.Windows[0].End)
}

func TestExecute_StorageFailureIsFatal(t *testing.T) {
	repo := &fakeReservationRepo{err: errors.New("connection refused")}
	cache := newFakeCache()

	uc := NewUseCase(repo, cache, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		ResourceID: 7,
		Date:       time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}

func TestExecute_DateNormalizedToUTCDay(t *testing.T) {
	repo := &fakeReservationRepo{}
	cache := newFakeCache()
	uc := NewUseCase(repo, cache, noopLogger{})

	// Время внутри дня приводится к началу суток UTC
	middleOfDay := time.Date(2026, 3, 14, 15, 30, 0, 0, time.UTC)

	resp, err := uc.Execute(context.Background(), &Request{ResourceID: 7, Date: middleOfDay})

	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), resp.Date)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&fakeReservationRepo{}, newFakeCache(), noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{ResourceID: 0, Date: time.Now()})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{ResourceID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
