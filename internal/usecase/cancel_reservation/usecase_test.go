package cancel_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	policyRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/policy"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
)

type fakeReservationRepo struct {
	reservation     *domain.Reservation
	getErr          error
	cancelErr       error
	cancelledStatus domain.ReservationStatus
	cancelledReason string
}

func (f *fakeReservationRepo) GetByID(_ context.Context, _ int64) (*domain.Reservation, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	// Копия: use case мутирует результат после Cancel
	r := *f.reservation
	return &r, nil
}

func (f *fakeReservationRepo) Cancel(_ context.Context, _ int64, status domain.ReservationStatus, reason string) error {
	if f.cancelErr != nil {
		return f.cancelErr
	}
	f.cancelledStatus = status
	f.cancelledReason = reason
	return nil
}

type fakeResourceRepo struct {
	resource *domain.Resource
	err      error
}

func (f *fakeResourceRepo) GetByID(_ context.Context, _ int64) (*domain.Resource, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.resource, nil
}

type fakePolicyRepo struct {
	policy *domain.CancellationPolicy
	err    error
}

func (f *fakePolicyRepo) GetByBusinessID(_ context.Context, _ int64) (*domain.CancellationPolicy, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.policy, nil
}

type fakeCache struct {
	evictedDays map[int64][]time.Time
}

func newFakeCache() *fakeCache {
	return &fakeCache{evictedDays: make(map[int64][]time.Time)}
}

func (f *fakeCache) EvictDays(_ context.Context, resourceID int64, days []time.Time) error {
	f.evictedDays[resourceID] = append(f.evictedDays[resourceID], days...)
	return nil
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time { return f.now }

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func confirmedAt(start time.Time) *domain.Reservation {
	return &domain.Reservation{
		ID:         42,
		ResourceID: 1,
		PartySize:  2,
		StartTime:  start,
		EndTime:    start.Add(2 * time.Hour),
		Status:     domain.StatusConfirmed,
	}
}

func policyWithFreeBefore(minutes int) *fakePolicyRepo {
	return &fakePolicyRepo{
		policy: &domain.CancellationPolicy{ID: 1, BusinessID: 1, FreeBeforeMinutes: minutes},
	}
}

func newTestUseCase(
	reservations *fakeReservationRepo,
	policies *fakePolicyRepo,
	cache *fakeCache,
	now time.Time,
) *UseCase {
	uc := NewUseCase(
		reservations,
		&fakeResourceRepo{resource: &domain.Resource{ID: 1, BusinessID: 1, Capacity: 4}},
		policies,
		cache,
		noopLogger{},
	)
	uc.timeProvider = &fixedTime{now: now}
	return uc
}

func TestExecute_FreeCancellation(t *testing.T) {
	start := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	reservations := &fakeReservationRepo{reservation: confirmedAt(start)}
	cache := newFakeCache()

	// Отмена в 09:00 при пороге 60 минут: ровно 60 минут до начала - FREE
	uc := newTestUseCase(reservations, policyWithFreeBefore(60), cache,
		time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{ReservationID: 42, Reason: "планы изменились"})

	require.NoError(t, err)
	assert.Equal(t, string(domain.CancellationFree), resp.Classification)
	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	assert.Equal(t, domain.StatusCancelled, reservations.cancelledStatus)
	require.Len(t, cache.evictedDays[1], 1)
}

func TestExecute_LateCancellation(t *testing.T) {
	start := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	reservations := &fakeReservationRepo{reservation: confirmedAt(start)}
	cache := newFakeCache()

	// Отмена в 09:55 при пороге 60 минут - LATE
	uc := newTestUseCase(reservations, policyWithFreeBefore(60), cache,
		time.Date(2026, 3, 14, 9, 55, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{ReservationID: 42, Reason: "опаздываю"})

	require.NoError(t, err)
	assert.Equal(t, string(domain.CancellationLate), resp.Classification)
	assert.Equal(t, string(domain.StatusLateCancelled), resp.Status)
	assert.Equal(t, domain.StatusLateCancelled, reservations.cancelledStatus)
}

func TestExecute_NoPolicyMeansFreeBeforeStart(t *testing.T) {
	start := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	reservations := &fakeReservationRepo{reservation: confirmedAt(start)}

	// Политики нет: freeBeforeMinutes = 0, отмена за минуту до начала - FREE
	policies := &fakePolicyRepo{err: policyRepo.ErrPolicyNotFound}
	uc := newTestUseCase(reservations, policies, newFakeCache(),
		time.Date(2026, 3, 14, 9, 59, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{ReservationID: 42, Reason: "не приду"})

	require.NoError(t, err)
	assert.Equal(t, string(domain.CancellationFree), resp.Classification)
}

func TestExecute_AfterStartIsLate(t *testing.T) {
	start := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	reservations := &fakeReservationRepo{reservation: confirmedAt(start)}

	// Даже без политики отмена после начала брони - LATE
	policies := &fakePolicyRepo{err: policyRepo.ErrPolicyNotFound}
	uc := newTestUseCase(reservations, policies, newFakeCache(),
		time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{ReservationID: 42, Reason: "забыл"})

	require.NoError(t, err)
	assert.Equal(t, string(domain.CancellationLate), resp.Classification)
}

func TestExecute_DoubleCancelRejected(t *testing.T) {
	start := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	reservation := confirmedAt(start)
	reservation.Status = domain.StatusCancelled

	reservations := &fakeReservationRepo{reservation: reservation}
	uc := newTestUseCase(reservations, policyWithFreeBefore(60), newFakeCache(),
		time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC))

	_, err := uc.Execute(context.Background(), &Request{ReservationID: 42, Reason: "ещё раз"})

	assert.ErrorIs(t, err, ErrNotConfirmed)
}

func TestExecute_LateCancelledIsTerminal(t *testing.T) {
	start := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	reservation := confirmedAt(start)
	reservation.Status = domain.StatusLateCancelled

	reservations := &fakeReservationRepo{reservation: reservation}
	uc := newTestUseCase(reservations, policyWithFreeBefore(60), newFakeCache(),
		time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC))

	_, err := uc.Execute(context.Background(), &Request{ReservationID: 42, Reason: "передумал"})

	assert.ErrorIs(t, err, ErrNotConfirmed)
}

func TestExecute_NotFound(t *testing.T) {
	reservations := &fakeReservationRepo{getErr: reservationRepo.ErrReservationNotFound}
	uc := newTestUseCase(reservations, policyWithFreeBefore(60), newFakeCache(), time.Now().UTC())

	_, err := uc.Execute(context.Background(), &Request{ReservationID: 42, Reason: "причина"})

	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestExecute_ReasonRequired(t *testing.T) {
	reservations := &fakeReservationRepo{reservation: confirmedAt(time.Now().UTC().Add(time.Hour))}
	uc := newTestUseCase(reservations, policyWithFreeBefore(60), newFakeCache(), time.Now().UTC())

	_, err := uc.Execute(context.Background(), &Request{ReservationID: 42, Reason: "   "})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_MidnightSpanEvictsBothDays(t *testing.T) {
	reservation := &domain.Reservation{
		ID:         42,
		ResourceID: 1,
		PartySize:  2,
		StartTime:  time.Date(2026, 3, 14, 23, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2026, 3, 15, 1, 0, 0, 0, time.UTC),
		Status:     domain.StatusConfirmed,
	}
	reservations := &fakeReservationRepo{reservation: reservation}
	cache := newFakeCache()

	uc := newTestUseCase(reservations, policyWithFreeBefore(60), cache,
		time.Date(2026, 3, 14, 20, 0, 0, 0, time.UTC))

	_, err := uc.Execute(context.Background(), &Request{ReservationID: 42, Reason: "планы изменились"})

	require.NoError(t, err)
	require.Len(t, cache.evictedDays[1], 2)
	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), cache.evictedDays[1][0])
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), cache.evictedDays[1][1])
}
