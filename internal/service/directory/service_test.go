package directory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	businessRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/business"
	"github.com/m04kA/SMC-ReservationService/internal/service/directory/models"
)

type fakeBusinessRepo struct {
	business *domain.Business
	getErr   error
	nextID   int64
}

func (f *fakeBusinessRepo) Create(_ context.Context, b *domain.Business) (*domain.Business, error) {
	f.nextID++
	created := *b
	created.ID = f.nextID
	created.CreatedAt = time.Now().UTC()
	return &created, nil
}

func (f *fakeBusinessRepo) GetByID(_ context.Context, _ int64) (*domain.Business, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.business, nil
}

type fakeResourceRepo struct {
	resources []*domain.Resource
	nextID    int64
}

func (f *fakeResourceRepo) Create(_ context.Context, r *domain.Resource) (*domain.Resource, error) {
	f.nextID++
	created := *r
	created.ID = f.nextID
	created.CreatedAt = time.Now().UTC()
	f.resources = append(f.resources, &created)
	return &created, nil
}

func (f *fakeResourceRepo) GetByID(_ context.Context, id int64) (*domain.Resource, error) {
	for _, r := range f.resources {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeResourceRepo) ListByBusiness(_ context.Context, _ int64) ([]*domain.Resource, error) {
	return f.resources, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func existingBusiness() *fakeBusinessRepo {
	return &fakeBusinessRepo{
		business: &domain.Business{ID: 1, Name: "Кафе у моря", Type: "RESTAURANT"},
	}
}

func TestCreateBusiness(t *testing.T) {
	svc := NewService(&fakeBusinessRepo{}, &fakeResourceRepo{}, noopLogger{})

	resp, err := svc.CreateBusiness(context.Background(), &models.CreateBusinessRequest{
		Name: "  Кафе у моря  ",
		Type: "RESTAURANT",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Кафе у моря", resp.Name)
}

func TestCreateBusiness_Validation(t *testing.T) {
	svc := NewService(&fakeBusinessRepo{}, &fakeResourceRepo{}, noopLogger{})

	_, err := svc.CreateBusiness(context.Background(), &models.CreateBusinessRequest{Type: "RESTAURANT"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.CreateBusiness(context.Background(), &models.CreateBusinessRequest{Name: "Кафе"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateResource(t *testing.T) {
	resources := &fakeResourceRepo{}
	svc := NewService(existingBusiness(), resources, noopLogger{})

	resp, err := svc.CreateResource(context.Background(), 1, &models.CreateResourceRequest{
		Name:     "Столик 5",
		Capacity: 4,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, int64(1), resp.BusinessID)
	assert.Equal(t, 4, resp.Capacity)
}

func TestCreateResource_CapacityMustBePositive(t *testing.T) {
	svc := NewService(existingBusiness(), &fakeResourceRepo{}, noopLogger{})

	_, err := svc.CreateResource(context.Background(), 1, &models.CreateResourceRequest{
		Name:     "Столик 5",
		Capacity: 0,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.CreateResource(context.Background(), 1, &models.CreateResourceRequest{
		Name:     "Столик 5",
		Capacity: -1,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateResource_BusinessNotFound(t *testing.T) {
	businesses := &fakeBusinessRepo{getErr: businessRepo.ErrBusinessNotFound}
	svc := NewService(businesses, &fakeResourceRepo{}, noopLogger{})

	_, err := svc.CreateResource(context.Background(), 99, &models.CreateResourceRequest{
		Name:     "Столик 5",
		Capacity: 4,
	})

	assert.ErrorIs(t, err, ErrBusinessNotFound)
}

func TestListResources(t *testing.T) {
	resources := &fakeResourceRepo{}
	svc := NewService(existingBusiness(), resources, noopLogger{})

	for i := 0; i < 3; i++ {
		_, err := svc.CreateResource(context.Background(), 1, &models.CreateResourceRequest{
			Name:     "Столик",
			Capacity: 2,
		})
		require.NoError(t, err)
	}

	resp, err := svc.ListResources(context.Background(), 1)

	require.NoError(t, err)
	assert.Len(t, resp.Resources, 3)
}
