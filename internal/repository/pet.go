package repository

import (
	"context"
	"sync"
	"time"

	"github.com/gnomesuite/petstore-api/internal/model"
)

type PetRepository interface {
	Create(ctx context.Context, pet *model.Pet) error
	GetByID(ctx context.Context, id int64) (*model.Pet, error)
	List(ctx context.Context, status model.PetStatus, category model.PetCategory, limit, offset int) ([]model.Pet, error)
	Update(ctx context.Context, pet *model.Pet) error
	Delete(ctx context.Context, id int64) error
	CountByStatus(ctx context.Context) (map[model.PetStatus]int, error)
}

// memPetRepo keeps pets in insertion order for the process lifetime.
// The mutex serializes every scan-then-mutate sequence.
type memPetRepo struct {
	mu   sync.Mutex
	pets []model.Pet
}

func NewPetRepository(seed []model.Pet) PetRepository {
	return &memPetRepo{pets: append([]model.Pet(nil), seed...)}
}

func (r *memPetRepo) Create(_ context.Context, pet *model.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	pet.ID = nextID(len(r.pets), func(i int) int64 { return r.pets[i].ID })
	pet.CreatedAt = time.Now().UTC()
	pet.UpdatedAt = nil
	r.pets = append(r.pets, *pet)
	return nil
}

func (r *memPetRepo) GetByID(_ context.Context, id int64) (*model.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.pets {
		if r.pets[i].ID == id {
			p := r.pets[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (r *memPetRepo) List(_ context.Context, status model.PetStatus, category model.PetCategory, limit, offset int) ([]model.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	filtered := make([]model.Pet, 0, len(r.pets))
	for _, p := range r.pets {
		if status != "" && p.Status != status {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		filtered = append(filtered, p)
	}
	return paginate(filtered, limit, offset), nil
}

func (r *memPetRepo) Update(_ context.Context, pet *model.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.pets {
		if r.pets[i].ID == pet.ID {
			now := time.Now().UTC()
			pet.UpdatedAt = &now
			r.pets[i] = *pet
			return nil
		}
	}
	return ErrNotFound
}

func (r *memPetRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.pets {
		if r.pets[i].ID == id {
			r.pets = append(r.pets[:i], r.pets[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *memPetRepo) CountByStatus(_ context.Context) (map[model.PetStatus]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	counts := make(map[model.PetStatus]int)
	for _, p := range r.pets {
		counts[p.Status]++
	}
	return counts, nil
}
