package usecase

import (
	"fmt"
	"time"

	"github.com/jhoicas/Amenidades-api/internal/application/dto"
	"github.com/jhoicas/Amenidades-api/internal/domain"
	"github.com/jhoicas/Amenidades-api/internal/domain/entity"
	"github.com/jhoicas/Amenidades-api/internal/domain/repository"
)

// AlarmUseCase gestión del ciclo de vida de alarmas: listar, completar,
// posponer. Las alarmas las crea el motor de spot check; aquí solo se
// gestionan.
type AlarmUseCase struct {
	alarmRepo repository.AlarmRepository
}

// NewAlarmUseCase construye el caso de uso de alarmas.
func NewAlarmUseCase(alarmRepo repository.AlarmRepository) *AlarmUseCase {
	return &AlarmUseCase{alarmRepo: alarmRepo}
}

// List lista alarmas filtrando por estado y/o tipo (vacío = sin filtro).
func (uc *AlarmUseCase) List(status, alarmType string, page dto.PageRequest) ([]*entity.Alarm, error) {
	page.DefaultPage()
	return uc.alarmRepo.List(entity.AlarmStatus(status), entity.AlarmType(alarmType), page.Limit, page.Offset)
}

// Complete marca la alarma como completada y anota quién y cuándo.
func (uc *AlarmUseCase) Complete(id, operatorName string) (*entity.Alarm, error) {
	return uc.transition(id, entity.AlarmCompleted, operatorName, "completada")
}

// Snooze pospone la alarma y anota quién y cuándo.
func (uc *AlarmUseCase) Snooze(id, operatorName string) (*entity.Alarm, error) {
	return uc.transition(id, entity.AlarmSnoozed, operatorName, "pospuesta")
}

func (uc *AlarmUseCase) transition(id string, to entity.AlarmStatus, operatorName, verb string) (*entity.Alarm, error) {
	alarm, err := uc.alarmRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if alarm == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	entry := fmt.Sprintf("%s por %s el %s", verb, operatorName, now.Format("2006-01-02 15:04"))
	if alarm.ActionLog != "" {
		alarm.ActionLog += "\n"
	}
	alarm.ActionLog += entry
	alarm.Status = to
	alarm.UpdatedAt = now
	if err := uc.alarmRepo.Update(alarm); err != nil {
		return nil, err
	}
	return alarm, nil
}
