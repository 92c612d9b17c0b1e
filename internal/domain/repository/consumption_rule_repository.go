package repository

import "github.com/jhoicas/Amenidades-api/internal/domain/entity"

// ConsumptionRuleRepository define el puerto de persistencia para ConsumptionRule (DIP).
type ConsumptionRuleRepository interface {
	Create(rule *entity.ConsumptionRule) error
	GetByID(id string) (*entity.ConsumptionRule, error)
	GetByIDs(ids []string) ([]*entity.ConsumptionRule, error)
	List(limit, offset int) ([]*entity.ConsumptionRule, error)
	Update(rule *entity.ConsumptionRule) error
	Delete(id string) error
}
