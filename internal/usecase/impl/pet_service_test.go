package impl

import (
	"context"
	"testing"

	"canpestre/internal/domain/entity"
	"canpestre/internal/domain/repository"
	mockRepo "canpestre/internal/mocks/repository"
	"canpestre/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPetService_CreatePet(t *testing.T) {
	mockPetRepo := mockRepo.NewMockPetRepository(t)
	mockLocationRepo := mockRepo.NewMockLocationRepository(t)
	service := NewPetService(mockPetRepo, mockLocationRepo)

	ctx := context.Background()
	input := &usecase.PetInput{
		Nombre:  "Firulais",
		Peso:    12.5,
		Edad:    3,
		Especie: "perro",
		DuenoID: 1,
	}

	created := &entity.Pet{
		ID:        8,
		Nombre:    "Firulais",
		DuenoID:   1,
		DuenoInfo: &entity.Owner{ID: 1, Nombre: "María"},
	}

	mockPetRepo.EXPECT().
		CreatePet(ctx, mock.AnythingOfType("*entity.Pet")).
		Run(func(ctx context.Context, pet *entity.Pet) {
			pet.ID = 8
		}).
		Return(nil)
	mockPetRepo.EXPECT().
		FindPetByID(ctx, int64(8)).
		Return(created, nil)

	pet, err := service.CreatePet(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, int64(8), pet.ID)
	require.NotNil(t, pet.DuenoInfo)
	assert.Equal(t, "María", pet.DuenoInfo.Nombre)
}

func TestPetService_CreatePet_UnknownOwner(t *testing.T) {
	mockPetRepo := mockRepo.NewMockPetRepository(t)
	mockLocationRepo := mockRepo.NewMockLocationRepository(t)
	service := NewPetService(mockPetRepo, mockLocationRepo)

	ctx := context.Background()
	mockPetRepo.EXPECT().
		CreatePet(ctx, mock.Anything).
		Return(repository.ErrPetOwnerMissing)

	_, err := service.CreatePet(ctx, &usecase.PetInput{Nombre: "Firulais", DuenoID: 99})
	assert.ErrorIs(t, err, repository.ErrPetOwnerMissing)
}

func TestPetService_GetPet_AttachesLatestLocation(t *testing.T) {
	mockPetRepo := mockRepo.NewMockPetRepository(t)
	mockLocationRepo := mockRepo.NewMockLocationRepository(t)
	service := NewPetService(mockPetRepo, mockLocationRepo)

	ctx := context.Background()
	latest := &entity.Location{ID: 20, MascotaID: 8}

	mockPetRepo.EXPECT().
		FindPetByID(ctx, int64(8)).
		Return(&entity.Pet{ID: 8, Nombre: "Firulais"}, nil)
	mockLocationRepo.EXPECT().
		FindLatestByPet(ctx, int64(8)).
		Return(latest, nil)

	pet, err := service.GetPet(ctx, 8)
	require.NoError(t, err)
	assert.Equal(t, latest, pet.UltimaUbicacion)
}

func TestPetService_GetPet_NoLocationYet(t *testing.T) {
	mockPetRepo := mockRepo.NewMockPetRepository(t)
	mockLocationRepo := mockRepo.NewMockLocationRepository(t)
	service := NewPetService(mockPetRepo, mockLocationRepo)

	ctx := context.Background()
	mockPetRepo.EXPECT().
		FindPetByID(ctx, int64(8)).
		Return(&entity.Pet{ID: 8}, nil)
	mockLocationRepo.EXPECT().
		FindLatestByPet(ctx, int64(8)).
		Return(nil, repository.ErrLocationNotFound)

	pet, err := service.GetPet(ctx, 8)
	require.NoError(t, err)
	assert.Nil(t, pet.UltimaUbicacion)
}

func TestPetService_ListPets_AttachesLocations(t *testing.T) {
	mockPetRepo := mockRepo.NewMockPetRepository(t)
	mockLocationRepo := mockRepo.NewMockLocationRepository(t)
	service := NewPetService(mockPetRepo, mockLocationRepo)

	ctx := context.Background()
	mockPetRepo.EXPECT().
		FindAllPets(ctx).
		Return([]*entity.Pet{{ID: 1}, {ID: 2}}, nil)
	mockLocationRepo.EXPECT().
		FindLatestByPet(ctx, int64(1)).
		Return(&entity.Location{ID: 30, MascotaID: 1}, nil)
	mockLocationRepo.EXPECT().
		FindLatestByPet(ctx, int64(2)).
		Return(nil, repository.ErrLocationNotFound)

	pets, err := service.ListPets(ctx)
	require.NoError(t, err)
	require.Len(t, pets, 2)
	assert.NotNil(t, pets[0].UltimaUbicacion)
	assert.Nil(t, pets[1].UltimaUbicacion)
}

func TestPetService_DeletePet_NotFound(t *testing.T) {
	mockPetRepo := mockRepo.NewMockPetRepository(t)
	mockLocationRepo := mockRepo.NewMockLocationRepository(t)
	service := NewPetService(mockPetRepo, mockLocationRepo)

	ctx := context.Background()
	mockPetRepo.EXPECT().
		DeletePet(ctx, int64(77)).
		Return(repository.ErrPetNotFound)

	assert.ErrorIs(t, service.DeletePet(ctx, 77), repository.ErrPetNotFound)
}
