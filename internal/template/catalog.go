package template

import "github.com/firedeskhq/firedesk/internal/task"

// Catalog returns the built-in fire-protection project templates.
// Estimated costs are in rand and cover materials plus subcontracted work;
// labor is priced separately from estimated hours.
func Catalog() []ProjectTemplate {
	return []ProjectTemplate{
		{
			ID:             "tpl-sprinkler-commercial",
			Name:           "Commercial Sprinkler System",
			Description:    "Design and install a wet-pipe sprinkler system for a commercial building",
			Category:       CategoryCommercial,
			EstimatedHours: 120,
			EstimatedCost:  52000,
			DefaultTasks: []TemplateTask{
				{
					Name:           "Site Survey & Assessment",
					Description:    "Measure site, assess water supply and hazard classification",
					Priority:       task.PriorityHigh,
					EstimatedHours: 4,
					RequiredSkills: []string{"surveying"},
				},
				{
					Name:           "System Design",
					Description:    "Hydraulic calculations and sprinkler layout for ASIB submission",
					Priority:       task.PriorityHigh,
					EstimatedHours: 16,
					RequiredSkills: []string{"design", "hydraulics"},
					Dependencies:   []string{"Site Survey & Assessment"},
				},
				{
					Name:           "Material Procurement",
					Description:    "Order pipes, fittings, valves and sprinkler heads",
					Priority:       task.PriorityMedium,
					EstimatedHours: 8,
					Dependencies:   []string{"System Design"},
				},
				{
					Name:           "Pipe Installation",
					Description:    "Install main and branch pipework",
					Priority:       task.PriorityHigh,
					EstimatedHours: 48,
					RequiredSkills: []string{"sprinkler"},
					Equipment:      []string{"scissor lift", "pipe threader"},
					Dependencies:   []string{"Material Procurement"},
				},
				{
					Name:           "Sprinkler Head Mounting",
					Description:    "Install and position all sprinkler heads",
					Priority:       task.PriorityMedium,
					EstimatedHours: 24,
					RequiredSkills: []string{"sprinkler"},
					Dependencies:   []string{"Pipe Installation"},
				},
				{
					Name:           "Pressure Testing",
					Description:    "Hydraulic pressure test per ASIB requirements",
					Priority:       task.PriorityHigh,
					EstimatedHours: 8,
					Dependencies:   []string{"Sprinkler Head Mounting"},
				},
				{
					Name:           "System Commissioning",
					Description:    "Commission the system and hand over certificates",
					Priority:       task.PriorityHigh,
					EstimatedHours: 12,
					Dependencies:   []string{"Pressure Testing"},
				},
			},
			RequiredResources: []string{"scissor lift", "pressure test rig"},
		},
		{
			ID:             "tpl-fire-alarm",
			Name:           "Fire Alarm Installation",
			Description:    "Install an addressable fire detection and alarm system",
			Category:       CategoryCommercial,
			EstimatedHours: 64,
			EstimatedCost:  18000,
			DefaultTasks: []TemplateTask{
				{
					Name:           "Site Survey",
					Description:    "Zone layout and detector coverage assessment",
					Priority:       task.PriorityHigh,
					EstimatedHours: 4,
					RequiredSkills: []string{"surveying"},
				},
				{
					Name:           "Panel & Detector Installation",
					Description:    "Mount control panel, detectors and call points",
					Priority:       task.PriorityHigh,
					EstimatedHours: 32,
					RequiredSkills: []string{"fire alarm", "electrical"},
					Dependencies:   []string{"Site Survey"},
				},
				{
					Name:           "Cabling & Loop Wiring",
					Description:    "Run detection loops and sounder circuits",
					Priority:       task.PriorityMedium,
					EstimatedHours: 16,
					RequiredSkills: []string{"electrical"},
					Dependencies:   []string{"Site Survey"},
				},
				{
					Name:           "Cause & Effect Testing",
					Description:    "Program and test cause-and-effect matrix",
					Priority:       task.PriorityHigh,
					EstimatedHours: 8,
					Dependencies:   []string{"Panel & Detector Installation", "Cabling & Loop Wiring"},
				},
				{
					Name:           "Client Training & Documentation",
					Description:    "Operator training and handover documentation",
					Priority:       task.PriorityLow,
					EstimatedHours: 4,
					Dependencies:   []string{"Cause & Effect Testing"},
				},
			},
			RequiredResources: []string{"loop tester", "smoke pellets"},
		},
		{
			ID:             "tpl-maintenance",
			Name:           "Annual Maintenance Contract",
			Description:    "Scheduled maintenance visits for installed fire systems",
			Category:       CategoryCommercial,
			EstimatedHours: 24,
			EstimatedCost:  6000,
			DefaultTasks: []TemplateTask{
				{
					Name:           "Quarterly Inspection Visit",
					Description:    "Inspect valves, gauges and alarm panel",
					Priority:       task.PriorityMedium,
					EstimatedHours: 6,
					RequiredSkills: []string{"inspection"},
				},
				{
					Name:           "Pump Service",
					Description:    "Service fire pumps and jockey pump",
					Priority:       task.PriorityHigh,
					EstimatedHours: 8,
					RequiredSkills: []string{"mechanical"},
				},
				{
					Name:           "Maintenance Documentation",
					Description:    "Update logbook and compliance records",
					Priority:       task.PriorityLow,
					EstimatedHours: 2,
				},
			},
		},
		{
			ID:             "tpl-inspection",
			Name:           "Compliance Inspection",
			Description:    "Once-off fire system compliance inspection and report",
			Category:       CategoryIndustrial,
			EstimatedHours: 12,
			EstimatedCost:  3500,
			DefaultTasks: []TemplateTask{
				{
					Name:           "System Inspection",
					Description:    "Full inspection of sprinkler and detection systems",
					Priority:       task.PriorityHigh,
					EstimatedHours: 8,
					RequiredSkills: []string{"inspection"},
				},
				{
					Name:           "Inspection Report & Documentation",
					Description:    "Compile findings and remedial recommendations",
					Priority:       task.PriorityMedium,
					EstimatedHours: 4,
				},
			},
		},
	}
}

// Find returns the catalog template with the given id, or nil.
func Find(id string) *ProjectTemplate {
	for _, t := range Catalog() {
		if t.ID == id {
			return &t
		}
	}
	return nil
}

// DefaultSubcontractors is the standing list of known external trades.
func DefaultSubcontractors() []SubcontractorInfo {
	return []SubcontractorInfo{
		{Name: "John Smith", Trade: "Fire Alarm Technician", HourlyRate: 120, Available: true},
		{Name: "Mike Johnson", Trade: "Sprinkler Systems Specialist", HourlyRate: 150, Available: true},
		{Name: "Sarah Williams", Trade: "Electrical Installer", HourlyRate: 100, Available: true},
		{Name: "David Brown", Trade: "Control Systems Engineer", HourlyRate: 180, Available: true},
	}
}
