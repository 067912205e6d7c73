package models

import (
	"time"

	"team-backoffice/internal/costcalc"
)

type TeamSettings struct {
	ID                      int                         `db:"id"`
	TeamID                  int                         `db:"team_id"`
	NumberOfEmployees       int                         `db:"number_of_employees"`
	AverageHoursPerEmployee int                         `db:"average_hours_per_employee"`
	OverheadCosts           JSONList[costcalc.CostItem] `db:"overhead_costs"`
	EquipmentCosts          JSONList[costcalc.CostItem] `db:"equipment_costs"`
	GeneralCosts            JSONList[costcalc.CostItem] `db:"general_costs"`
	CreatedAt               time.Time                   `db:"created_at"`
	UpdatedAt               time.Time                   `db:"updated_at"`
}

func (s *TeamSettings) Calc() costcalc.Settings {
	return costcalc.Settings{
		NumberOfEmployees:       s.NumberOfEmployees,
		AverageHoursPerEmployee: s.AverageHoursPerEmployee,
		OverheadCosts:           s.OverheadCosts,
		EquipmentCosts:          s.EquipmentCosts,
		GeneralCosts:            s.GeneralCosts,
	}
}
