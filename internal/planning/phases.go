package planning

// PhasesForProjectType returns the standard phase breakdown for a project
// type. Only sprinkler systems have a built-in breakdown so far; other types
// return an empty plan.
func PhasesForProjectType(projectType string) []Phase {
	if projectType != "sprinkler_system" {
		return nil
	}
	return []Phase{
		{
			ID:          "1",
			Name:        "Planning & Design",
			Description: "Site survey, design, ASIB approval",
			Tasks: []PlannedTask{
				{ID: "1-1", Name: "Site Survey & Assessment", Description: "Measure site, assess requirements", EstimatedHours: 4, HourlyRate: 150, EstimatedCost: 600, Status: "pending"},
				{ID: "1-2", Name: "System Design", Description: "Create sprinkler system design", EstimatedHours: 8, HourlyRate: 150, EstimatedCost: 1200, Status: "pending"},
				{ID: "1-3", Name: "ASIB Submission", Description: "Submit design for ASIB approval", EstimatedHours: 2, HourlyRate: 150, MaterialsCost: 500, EstimatedCost: 800, Status: "pending"},
			},
			EstimatedCost: 2600,
			Status:        PhaseNotStarted,
		},
		{
			ID:          "2",
			Name:        "Procurement & Fabrication",
			Description: "Order materials, fabricate pipework",
			Tasks: []PlannedTask{
				{ID: "2-1", Name: "Material Procurement", Description: "Order pipes, fittings, valves, sprinkler heads", EstimatedHours: 4, HourlyRate: 120, MaterialsCost: 25000, EstimatedCost: 25480, Status: "pending"},
				{ID: "2-2", Name: "Fabrication - Pipework", Description: "Fabricate pipe sections off-site", EstimatedHours: 16, HourlyRate: 150, MaterialsCost: 5000, EstimatedCost: 7400, Status: "pending"},
				{ID: "2-3", Name: "Fabrication - Mounting Brackets", Description: "Fabricate mounting brackets", EstimatedHours: 8, HourlyRate: 150, MaterialsCost: 500, EstimatedCost: 1700, Status: "pending"},
			},
			EstimatedCost: 34580,
			Status:        PhaseNotStarted,
			Dependencies:  []string{"1"},
		},
		{
			ID:          "3",
			Name:        "Installation",
			Description: "Install sprinkler system on site",
			Tasks: []PlannedTask{
				{ID: "3-1", Name: "Pipe Installation", Description: "Install main and branch pipework", EstimatedHours: 32, HourlyRate: 150, MaterialsCost: 2000, EstimatedCost: 6800, Status: "pending"},
				{ID: "3-2", Name: "Sprinkler Head Installation", Description: "Install and position all sprinkler heads", EstimatedHours: 16, HourlyRate: 150, MaterialsCost: 1500, EstimatedCost: 3900, Status: "pending"},
				{ID: "3-3", Name: "Valve Installation", Description: "Install control valves and check valves", EstimatedHours: 8, HourlyRate: 150, MaterialsCost: 3000, EstimatedCost: 4200, Status: "pending"},
			},
			EstimatedCost: 14900,
			Status:        PhaseNotStarted,
			Dependencies:  []string{"2"},
		},
		{
			ID:          "4",
			Name:        "Testing & Commissioning",
			Description: "Pressure tests, final inspections, handover",
			Tasks: []PlannedTask{
				{ID: "4-1", Name: "Pressure Testing", Description: "Hydraulic pressure test per ASIB requirements", EstimatedHours: 4, HourlyRate: 150, EstimatedCost: 600, Status: "pending"},
				{ID: "4-2", Name: "System Commissioning", Description: "Commission and test entire system", EstimatedHours: 8, HourlyRate: 150, EstimatedCost: 1200, Status: "pending"},
				{ID: "4-3", Name: "Final Documentation", Description: "Complete certificates and handover docs", EstimatedHours: 4, HourlyRate: 150, EstimatedCost: 600, Status: "pending"},
			},
			EstimatedCost: 2400,
			Status:        PhaseNotStarted,
			Dependencies:  []string{"3"},
		},
	}
}
