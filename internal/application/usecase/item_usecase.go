package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Amenidades-api/internal/application/dto"
	"github.com/jhoicas/Amenidades-api/internal/domain"
	"github.com/jhoicas/Amenidades-api/internal/domain/entity"
	"github.com/jhoicas/Amenidades-api/internal/domain/repository"
	"github.com/jhoicas/Amenidades-api/internal/domain/spotcheck"
)

// ItemUseCase CRUD de amenidades por ubicación.
type ItemUseCase struct {
	itemRepo repository.InventoryItemRepository
}

// NewItemUseCase construye el caso de uso de amenidades.
func NewItemUseCase(itemRepo repository.InventoryItemRepository) *ItemUseCase {
	return &ItemUseCase{itemRepo: itemRepo}
}

// Create da de alta una amenidad. El nombre es único por ubicación; el estado
// inicial se clasifica con las mismas bandas que usa la reconciliación para
// que nunca quede sin valor.
func (uc *ItemUseCase) Create(in dto.CreateItemRequest) (*entity.InventoryItem, error) {
	if in.Name == "" || in.Location == "" || in.Quantity < 0 || in.RebuyQuantity < 0 || in.Tolerance < 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.itemRepo.GetByLocationAndName(in.Location, in.Name)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	item := &entity.InventoryItem{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Location:      in.Location,
		Quantity:      in.Quantity,
		RebuyQuantity: in.RebuyQuantity,
		Tolerance:     in.Tolerance,
		Status:        initialStatus(in.Quantity, in.RebuyQuantity),
		UnitPrice:     in.UnitPrice,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.itemRepo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

// GetByID obtiene una amenidad.
func (uc *ItemUseCase) GetByID(id string) (*entity.InventoryItem, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return item, nil
}

// ListByLocation lista las amenidades de una ubicación.
func (uc *ItemUseCase) ListByLocation(location string) ([]*entity.InventoryItem, error) {
	if location == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.itemRepo.ListByLocation(location)
}

// Update actualiza cantidades y umbrales. El estado se reclasifica con la
// nueva cantidad; la ubicación no cambia por aquí.
func (uc *ItemUseCase) Update(id string, in dto.UpdateItemRequest) (*entity.InventoryItem, error) {
	if in.Quantity < 0 || in.RebuyQuantity < 0 || in.Tolerance < 0 {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		item.Name = in.Name
	}
	item.Quantity = in.Quantity
	item.RebuyQuantity = in.RebuyQuantity
	item.Tolerance = in.Tolerance
	if in.UnitPrice != nil {
		item.UnitPrice = in.UnitPrice
	}
	item.Status = initialStatus(item.Quantity, item.RebuyQuantity)
	item.UpdatedAt = time.Now()
	if err := uc.itemRepo.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

// Delete elimina una amenidad por ID.
func (uc *ItemUseCase) Delete(id string) error {
	return uc.itemRepo.Delete(id)
}

// initialStatus clasifica fuera de una reconciliación, con la cantidad en
// sistema en el papel de cantidad verificada. Usa las mismas bandas que el
// motor para que el estado nunca quede fuera de los tres valores.
func initialStatus(quantity, rebuy int) entity.ItemStatus {
	return spotcheck.ClassifyStatus(quantity, rebuy)
}
