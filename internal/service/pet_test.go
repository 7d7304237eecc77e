package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnomesuite/petstore-api/internal/dto"
	"github.com/gnomesuite/petstore-api/internal/model"
	"github.com/gnomesuite/petstore-api/internal/repository"
)

func newPetService() *PetService {
	return NewPetService(repository.NewPetRepository(repository.SeedPets()))
}

func TestPetService_CreateAppliesDefaults(t *testing.T) {
	svc := NewPetService(repository.NewPetRepository(nil))

	resp, err := svc.Create(context.Background(), dto.CreatePetRequest{
		Name:     "Rex",
		Category: model.CategoryDog,
		Price:    decimal.NewFromFloat(50),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, model.PetStatusAvailable, resp.Status)
	assert.Equal(t, []string{}, resp.Tags)
	assert.Equal(t, []string{}, resp.PhotoURLs)
	assert.False(t, resp.CreatedAt.IsZero())
	assert.Nil(t, resp.UpdatedAt)
}

func TestPetService_CreateAssignsMaxPlusOne(t *testing.T) {
	svc := newPetService()

	resp, err := svc.Create(context.Background(), dto.CreatePetRequest{
		Name:     "Nemo",
		Category: model.CategoryFish,
		Price:    decimal.NewFromFloat(5),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4), resp.ID)
}

func TestPetService_GetByID_NotFound(t *testing.T) {
	svc := newPetService()
	_, err := svc.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, ErrPetNotFound)
}

func TestPetService_UpdateIsSparse(t *testing.T) {
	svc := newPetService()
	sold := model.PetStatusSold

	resp, err := svc.Update(context.Background(), 1, dto.UpdatePetRequest{Status: &sold})
	require.NoError(t, err)

	// Only the provided field changed.
	assert.Equal(t, model.PetStatusSold, resp.Status)
	assert.Equal(t, "Buddy", resp.Name)
	assert.Equal(t, model.CategoryDog, resp.Category)
	require.NotNil(t, resp.UpdatedAt)
	assert.True(t, resp.UpdatedAt.After(resp.CreatedAt) || resp.UpdatedAt.Equal(resp.CreatedAt))
}

func TestPetService_Update_NotFound(t *testing.T) {
	svc := newPetService()
	name := "Ghost"
	_, err := svc.Update(context.Background(), 999, dto.UpdatePetRequest{Name: &name})
	assert.ErrorIs(t, err, ErrPetNotFound)
}

func TestPetService_DeleteThenGet(t *testing.T) {
	svc := newPetService()
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, 1))
	_, err := svc.GetByID(ctx, 1)
	assert.ErrorIs(t, err, ErrPetNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, 1), ErrPetNotFound)
}

func TestPetService_Inventory(t *testing.T) {
	svc := newPetService()
	ctx := context.Background()

	counts, err := svc.Inventory(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[model.PetStatus]int{
		model.PetStatusAvailable: 2,
		model.PetStatusSold:      1,
	}, counts)

	total := 0
	for _, n := range counts {
		total += n
	}
	pets, err := svc.List(ctx, dto.ListPetsRequest{Limit: 100})
	require.NoError(t, err)
	assert.Equal(t, len(pets), total)
}
