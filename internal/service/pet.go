package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gnomesuite/petstore-api/internal/dto"
	"github.com/gnomesuite/petstore-api/internal/model"
	"github.com/gnomesuite/petstore-api/internal/repository"
)

var ErrPetNotFound = errors.New("pet not found")

type PetService struct {
	petRepo repository.PetRepository
}

func NewPetService(petRepo repository.PetRepository) *PetService {
	return &PetService{petRepo: petRepo}
}

func (s *PetService) Create(ctx context.Context, req dto.CreatePetRequest) (*dto.PetResponse, error) {
	pet := &model.Pet{
		Name:        req.Name,
		Category:    req.Category,
		Status:      req.Status,
		Tags:        req.Tags,
		Price:       req.Price,
		Description: req.Description,
		PhotoURLs:   req.PhotoURLs,
	}
	if pet.Status == "" {
		pet.Status = model.PetStatusAvailable
	}
	if pet.Tags == nil {
		pet.Tags = []string{}
	}
	if pet.PhotoURLs == nil {
		pet.PhotoURLs = []string{}
	}

	if err := s.petRepo.Create(ctx, pet); err != nil {
		return nil, fmt.Errorf("create pet: %w", err)
	}
	resp := toPetResponse(pet)
	return &resp, nil
}

func (s *PetService) GetByID(ctx context.Context, id int64) (*dto.PetResponse, error) {
	pet, err := s.petRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get pet: %w", err)
	}
	if pet == nil {
		return nil, ErrPetNotFound
	}
	resp := toPetResponse(pet)
	return &resp, nil
}

func (s *PetService) List(ctx context.Context, req dto.ListPetsRequest) ([]dto.PetResponse, error) {
	pets, err := s.petRepo.List(ctx, req.Status, req.Category, req.Limit, req.Offset)
	if err != nil {
		return nil, fmt.Errorf("list pets: %w", err)
	}

	items := make([]dto.PetResponse, 0, len(pets))
	for i := range pets {
		items = append(items, toPetResponse(&pets[i]))
	}
	return items, nil
}

// Update merges only the fields present in the payload onto the stored pet.
func (s *PetService) Update(ctx context.Context, id int64, req dto.UpdatePetRequest) (*dto.PetResponse, error) {
	pet, err := s.petRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get pet: %w", err)
	}
	if pet == nil {
		return nil, ErrPetNotFound
	}

	if req.Name != nil {
		pet.Name = *req.Name
	}
	if req.Category != nil {
		pet.Category = *req.Category
	}
	if req.Status != nil {
		pet.Status = *req.Status
	}
	if req.Tags != nil {
		pet.Tags = *req.Tags
	}
	if req.Price != nil {
		pet.Price = *req.Price
	}
	if req.Description != nil {
		pet.Description = req.Description
	}
	if req.PhotoURLs != nil {
		pet.PhotoURLs = *req.PhotoURLs
	}

	if err := s.petRepo.Update(ctx, pet); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPetNotFound
		}
		return nil, fmt.Errorf("update pet: %w", err)
	}
	resp := toPetResponse(pet)
	return &resp, nil
}

func (s *PetService) Delete(ctx context.Context, id int64) error {
	if err := s.petRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPetNotFound
		}
		return fmt.Errorf("delete pet: %w", err)
	}
	return nil
}

// Inventory tallies current pets by status. Statuses with no pets are absent.
func (s *PetService) Inventory(ctx context.Context) (map[model.PetStatus]int, error) {
	counts, err := s.petRepo.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("count pets: %w", err)
	}
	return counts, nil
}

func toPetResponse(p *model.Pet) dto.PetResponse {
	return dto.PetResponse{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		Status:      p.Status,
		Tags:        p.Tags,
		Price:       p.Price,
		Description: p.Description,
		PhotoURLs:   p.PhotoURLs,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
