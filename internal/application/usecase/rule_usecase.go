package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Amenidades-api/internal/application/dto"
	"github.com/jhoicas/Amenidades-api/internal/domain"
	"github.com/jhoicas/Amenidades-api/internal/domain/entity"
	"github.com/jhoicas/Amenidades-api/internal/domain/repository"
)

// RuleUseCase CRUD de reglas de consumo y de sus asignaciones a ítems.
type RuleUseCase struct {
	ruleRepo     repository.ConsumptionRuleRepository
	itemRuleRepo repository.ItemRuleRepository
}

// NewRuleUseCase construye el caso de uso de reglas.
func NewRuleUseCase(ruleRepo repository.ConsumptionRuleRepository, itemRuleRepo repository.ItemRuleRepository) *RuleUseCase {
	return &RuleUseCase{ruleRepo: ruleRepo, itemRuleRepo: itemRuleRepo}
}

// Create da de alta una regla de consumo. El texto no se valida contra los
// patrones del evaluador: texto irreconocible cae al fallback en el cálculo,
// nunca bloquea la operación por calidad de datos.
func (uc *RuleUseCase) Create(in dto.CreateRuleRequest) (*entity.ConsumptionRule, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	rule := &entity.ConsumptionRule{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.ruleRepo.Create(rule); err != nil {
		return nil, err
	}
	return rule, nil
}

// List lista reglas con paginación.
func (uc *RuleUseCase) List(page dto.PageRequest) ([]*entity.ConsumptionRule, error) {
	page.DefaultPage()
	return uc.ruleRepo.List(page.Limit, page.Offset)
}

// Update actualiza nombre y descripción de una regla.
func (uc *RuleUseCase) Update(id string, in dto.CreateRuleRequest) (*entity.ConsumptionRule, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	rule, err := uc.ruleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rule == nil {
		return nil, domain.ErrNotFound
	}
	rule.Name = in.Name
	rule.Description = in.Description
	rule.UpdatedAt = time.Now()
	if err := uc.ruleRepo.Update(rule); err != nil {
		return nil, err
	}
	return rule, nil
}

// Delete elimina una regla por ID.
func (uc *RuleUseCase) Delete(id string) error {
	return uc.ruleRepo.Delete(id)
}

// Assign asocia una regla al par (ítem, tipo de propiedad). Si el par ya
// tiene regla, la reemplaza: el par es único por invariante de dominio.
func (uc *RuleUseCase) Assign(in dto.AssignRuleRequest) (*entity.ItemRule, error) {
	if in.ItemName == "" || in.RuleID == "" {
		return nil, domain.ErrInvalidInput
	}
	propertyType := entity.PropertyType(in.PropertyType)
	switch propertyType {
	case entity.PropertyEntirePlace, entity.PropertyPrivateRoom, entity.PropertySharedRoom:
	default:
		return nil, domain.ErrInvalidInput
	}
	rule, err := uc.ruleRepo.GetByID(in.RuleID)
	if err != nil {
		return nil, err
	}
	if rule == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	assignment := &entity.ItemRule{
		ID:           uuid.New().String(),
		ItemName:     in.ItemName,
		PropertyType: propertyType,
		RuleID:       in.RuleID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.itemRuleRepo.Upsert(assignment); err != nil {
		return nil, err
	}
	return assignment, nil
}

// ListAssignments lista asignaciones con paginación.
func (uc *RuleUseCase) ListAssignments(page dto.PageRequest) ([]*entity.ItemRule, error) {
	page.DefaultPage()
	return uc.itemRuleRepo.List(page.Limit, page.Offset)
}

// DeleteAssignment elimina una asignación por ID.
func (uc *RuleUseCase) DeleteAssignment(id string) error {
	return uc.itemRuleRepo.Delete(id)
}
