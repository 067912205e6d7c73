// Package costcalc allocates a company's indirect costs to projects.
//
// The annual indirect costs of three categories are spread evenly over the
// company's production hours. The resulting hourly rate is then charged to a
// project for every hour it is estimated to take.
package costcalc

type CostItem struct {
	Name   string  `json:"name" validate:"required,max=255"`
	Amount float64 `json:"amount" validate:"gte=0"`
}

type Settings struct {
	NumberOfEmployees       int        `json:"number_of_employees" validate:"gte=0"`
	AverageHoursPerEmployee int        `json:"average_hours_per_employee" validate:"gte=0"`
	OverheadCosts           []CostItem `json:"overhead_costs" validate:"dive"`
	EquipmentCosts          []CostItem `json:"equipment_costs" validate:"dive"`
	GeneralCosts            []CostItem `json:"general_costs" validate:"dive"`
}

// DefaultSettings are served to teams that never saved their own.
func DefaultSettings() Settings {
	return Settings{
		NumberOfEmployees:       5,
		AverageHoursPerEmployee: 1800,
		OverheadCosts: []CostItem{
			{Name: "Kontorlokaler", Amount: 120000},
			{Name: "Administrative lønninger", Amount: 350000},
			{Name: "Strøm og kommunale avgifter", Amount: 45000},
			{Name: "Forsikringer", Amount: 85000},
		},
		EquipmentCosts: []CostItem{
			{Name: "Utstyrsavskrivninger", Amount: 180000},
			{Name: "Utstyrsvedlikehold", Amount: 65000},
			{Name: "Småverktøy", Amount: 30000},
		},
		GeneralCosts: []CostItem{
			{Name: "Opplæring", Amount: 40000},
			{Name: "HMS-programmer", Amount: 55000},
			{Name: "IT-systemer", Amount: 70000},
			{Name: "Profesjonelle tjenester", Amount: 90000},
		},
	}
}

func Total(items []CostItem) float64 {
	var sum float64
	for _, item := range items {
		sum += item.Amount
	}
	return sum
}

func (s Settings) TotalAnnualHours() int {
	return s.NumberOfEmployees * s.AverageHoursPerEmployee
}

func (s Settings) TotalIndirectCosts() float64 {
	return Total(s.OverheadCosts) + Total(s.EquipmentCosts) + Total(s.GeneralCosts)
}

// Rate is the indirect cost per production hour, 0 without production hours.
func (s Settings) Rate() float64 {
	hours := s.TotalAnnualHours()
	if hours <= 0 {
		return 0
	}
	return s.TotalIndirectCosts() / float64(hours)
}

// ProjectCost is the indirect cost carried by a project of the given hours.
func (s Settings) ProjectCost(projectHours float64) float64 {
	return projectHours * s.Rate()
}

type Category struct {
	Total       float64 `json:"total"`
	ProjectCost float64 `json:"project_cost"`
	Percentage  float64 `json:"percentage"`
}

type Breakdown struct {
	ProjectName              string   `json:"project_name"`
	ProjectHours             float64  `json:"project_hours"`
	ProjectIndirectCost      float64  `json:"project_indirect_cost"`
	IndirectCostRate         float64  `json:"indirect_cost_rate"`
	NumberOfEmployees        int      `json:"number_of_employees"`
	AverageHoursPerEmployee  int      `json:"average_hours_per_employee"`
	TotalAnnualHours         int      `json:"total_annual_hours"`
	TotalAnnualIndirectCosts float64  `json:"total_annual_indirect_costs"`
	Overhead                 Category `json:"overhead"`
	Equipment                Category `json:"equipment"`
	General                  Category `json:"general"`
}

func Compute(s Settings, projectName string, projectHours float64) Breakdown {
	hours := s.TotalAnnualHours()
	indirect := s.TotalIndirectCosts()

	category := func(items []CostItem) Category {
		total := Total(items)
		c := Category{Total: total}
		if hours > 0 {
			c.ProjectCost = total / float64(hours) * projectHours
		}
		if indirect > 0 {
			c.Percentage = total / indirect * 100
		}
		return c
	}

	return Breakdown{
		ProjectName:              projectName,
		ProjectHours:             projectHours,
		ProjectIndirectCost:      s.ProjectCost(projectHours),
		IndirectCostRate:         s.Rate(),
		NumberOfEmployees:        s.NumberOfEmployees,
		AverageHoursPerEmployee:  s.AverageHoursPerEmployee,
		TotalAnnualHours:         hours,
		TotalAnnualIndirectCosts: indirect,
		Overhead:                 category(s.OverheadCosts),
		Equipment:                category(s.EquipmentCosts),
		General:                  category(s.GeneralCosts),
	}
}
