package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnomesuite/petstore-api/internal/model"
)

func newPet(name string) *model.Pet {
	return &model.Pet{
		Name:     name,
		Category: model.CategoryDog,
		Status:   model.PetStatusAvailable,
		Price:    decimal.NewFromFloat(10),
	}
}

func TestPetRepo_CreateAssignsSequentialIDs(t *testing.T) {
	repo := NewPetRepository(nil)
	ctx := context.Background()

	first := newPet("a")
	require.NoError(t, repo.Create(ctx, first))
	assert.Equal(t, int64(1), first.ID)
	assert.False(t, first.CreatedAt.IsZero())
	assert.Nil(t, first.UpdatedAt)

	second := newPet("b")
	require.NoError(t, repo.Create(ctx, second))
	assert.Equal(t, int64(2), second.ID)
}

func TestPetRepo_CreateAfterDeletingMax(t *testing.T) {
	repo := NewPetRepository(nil)
	ctx := context.Background()

	for _, name := range []string{"a", "b", "c"} {
		require.NoError(t, repo.Create(ctx, newPet(name)))
	}
	require.NoError(t, repo.Delete(ctx, 3))

	// max()+1 over the survivors: the freed id comes back.
	p := newPet("d")
	require.NoError(t, repo.Create(ctx, p))
	assert.Equal(t, int64(3), p.ID)
}

func TestPetRepo_SeededLookup(t *testing.T) {
	repo := NewPetRepository(SeedPets())
	ctx := context.Background()

	pet, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, pet)
	assert.Equal(t, "Buddy", pet.Name)

	pet, err = repo.GetByID(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, pet)
}

func TestPetRepo_ListFiltersAreConjunctive(t *testing.T) {
	repo := NewPetRepository(SeedPets())
	ctx := context.Background()

	available, err := repo.List(ctx, model.PetStatusAvailable, "", 10, 0)
	require.NoError(t, err)
	assert.Len(t, available, 2)

	cats, err := repo.List(ctx, "", model.CategoryCat, 10, 0)
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, "Whiskers", cats[0].Name)

	both, err := repo.List(ctx, model.PetStatusAvailable, model.CategoryBird, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, both)
}

func TestPetRepo_ListPagination(t *testing.T) {
	repo := NewPetRepository(SeedPets())
	ctx := context.Background()

	page, err := repo.List(ctx, "", "", 2, 0)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, int64(1), page[0].ID)
	assert.Equal(t, int64(2), page[1].ID)

	rest, err := repo.List(ctx, "", "", 2, 2)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, int64(3), rest[0].ID)

	past, err := repo.List(ctx, "", "", 10, 50)
	require.NoError(t, err)
	assert.NotNil(t, past)
	assert.Empty(t, past)
}

func TestPetRepo_UpdatePreservesPosition(t *testing.T) {
	repo := NewPetRepository(SeedPets())
	ctx := context.Background()

	pet, err := repo.GetByID(ctx, 2)
	require.NoError(t, err)
	pet.Status = model.PetStatusSold
	require.NoError(t, repo.Update(ctx, pet))
	assert.NotNil(t, pet.UpdatedAt)

	all, err := repo.List(ctx, "", "", 10, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, int64(2), all[1].ID)
	assert.Equal(t, model.PetStatusSold, all[1].Status)
}

func TestPetRepo_UpdateMissing(t *testing.T) {
	repo := NewPetRepository(nil)
	err := repo.Update(context.Background(), &model.Pet{ID: 42})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPetRepo_DeleteThenGet(t *testing.T) {
	repo := NewPetRepository(SeedPets())
	ctx := context.Background()

	require.NoError(t, repo.Delete(ctx, 1))

	pet, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, pet)

	assert.ErrorIs(t, repo.Delete(ctx, 1), ErrNotFound)
}

func TestPetRepo_CountByStatus(t *testing.T) {
	repo := NewPetRepository(SeedPets())
	ctx := context.Background()

	counts, err := repo.CountByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[model.PetStatus]int{
		model.PetStatusAvailable: 2,
		model.PetStatusSold:      1,
	}, counts)

	// Zero-count statuses must be absent, not zero.
	_, pending := counts[model.PetStatusPending]
	assert.False(t, pending)
}

func TestOrderRepo_CRUD(t *testing.T) {
	repo := NewOrderRepository()
	ctx := context.Background()

	order := &model.Order{PetID: 1, UserID: 1, Quantity: 2, Status: model.OrderStatusPlaced}
	require.NoError(t, repo.Create(ctx, order))
	assert.Equal(t, int64(1), order.ID)

	found, err := repo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, 2, found.Quantity)

	placed, err := repo.List(ctx, model.OrderStatusPlaced, 10, 0)
	require.NoError(t, err)
	assert.Len(t, placed, 1)

	cancelled, err := repo.List(ctx, model.OrderStatusCancelled, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, cancelled)

	require.NoError(t, repo.Delete(ctx, order.ID))
	found, err = repo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestUserRepo_LookupsAreCaseSensitive(t *testing.T) {
	repo := NewUserRepository(SeedUsers())
	ctx := context.Background()

	u, err := repo.GetByUsername(ctx, "johndoe")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, int64(1), u.ID)

	u, err = repo.GetByUsername(ctx, "JohnDoe")
	require.NoError(t, err)
	assert.Nil(t, u)

	u, err = repo.GetByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	require.NotNil(t, u)

	u, err = repo.GetByEmail(ctx, "JANE@example.com")
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestUserRepo_ListPagination(t *testing.T) {
	repo := NewUserRepository(SeedUsers())
	ctx := context.Background()

	page, err := repo.List(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "janedoe", page[0].Username)

	past, err := repo.List(ctx, 10, 5)
	require.NoError(t, err)
	assert.Empty(t, past)
}
