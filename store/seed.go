package store

import "github.com/gmuffiness/agentfloor/world"

// SeedOrganization returns the demo floor used when the database is empty:
// five department rooms and eleven agents across three vendors.
func SeedOrganization() *world.Organization {
	return &world.Organization{
		ID:     "org-1",
		Name:   "Acme Corp",
		Budget: 15000,
		Departments: []*world.Department{
			{
				ID:            "dept-1",
				Name:          "Backend Team",
				Layout:        world.Layout{X: 50, Y: 50, Width: 300, Height: 240},
				PrimaryVendor: world.VendorAnthropic,
				Budget:        4500,
				MonthlySpend:  3800,
				Agents: []*world.Agent{
					{
						ID: "agent-1", Name: "Claude Backend",
						Vendor: world.VendorAnthropic, Status: world.StatusActive,
						Model: "Claude Sonnet 4.5", MonthlyCost: 1500,
						Position:  world.Position{X: 80, Y: 100},
						Skills:    []string{"Code Generation", "Code Review", "Debugging", "API Design"},
						Tools:     []string{"Filesystem", "PostgreSQL", "GitHub", "Redis"},
						SubAgents: []string{"planner", "coder", "tester"},
					},
					{
						ID: "agent-2", Name: "GPT API Builder",
						Vendor: world.VendorOpenAI, Status: world.StatusActive,
						Model: "GPT-4o", MonthlyCost: 1200,
						Position: world.Position{X: 200, Y: 100},
						Skills:   []string{"Code Generation", "Testing", "API Design"},
						Tools:    []string{"Filesystem", "GitHub", "PostgreSQL"},
					},
					{
						ID: "agent-3", Name: "Claude Debugger",
						Vendor: world.VendorAnthropic, Status: world.StatusIdle,
						Model: "Claude Haiku 4.5", MonthlyCost: 1100,
						Position: world.Position{X: 140, Y: 190},
						Skills:   []string{"Debugging", "Testing", "Code Review"},
						Tools:    []string{"Filesystem", "PostgreSQL", "Slack"},
					},
				},
			},
			{
				ID:            "dept-2",
				Name:          "Frontend Team",
				Layout:        world.Layout{X: 400, Y: 50, Width: 270, Height: 220},
				PrimaryVendor: world.VendorOpenAI,
				Budget:        3000,
				MonthlySpend:  2400,
				Agents: []*world.Agent{
					{
						ID: "agent-4", Name: "GPT UI Designer",
						Vendor: world.VendorOpenAI, Status: world.StatusActive,
						Model: "GPT-4o", MonthlyCost: 1300,
						Position: world.Position{X: 440, Y: 100},
						Skills:   []string{"Code Generation", "Code Review", "Documentation"},
						Tools:    []string{"Filesystem", "GitHub", "Puppeteer"},
					},
					{
						ID: "agent-5", Name: "Claude Frontend",
						Vendor: world.VendorAnthropic, Status: world.StatusActive,
						Model: "Claude Sonnet 4.5", MonthlyCost: 1100,
						Position: world.Position{X: 560, Y: 100},
						Skills:   []string{"Code Generation", "Testing", "Refactoring"},
						Tools:    []string{"Filesystem", "GitHub"},
					},
				},
			},
			{
				ID:            "dept-3",
				Name:          "Data Team",
				Layout:        world.Layout{X: 720, Y: 50, Width: 300, Height: 240},
				PrimaryVendor: world.VendorGoogle,
				Budget:        4000,
				MonthlySpend:  3200,
				Agents: []*world.Agent{
					{
						ID: "agent-6", Name: "Gemini Analyst",
						Vendor: world.VendorGoogle, Status: world.StatusActive,
						Model: "Gemini 2.0 Flash", MonthlyCost: 1200,
						Position: world.Position{X: 760, Y: 100},
						Skills:   []string{"Data Analysis", "Code Generation", "Documentation"},
						Tools:    []string{"BigQuery", "Filesystem"},
					},
					{
						ID: "agent-7", Name: "Gemini Pipeline",
						Vendor: world.VendorGoogle, Status: world.StatusActive,
						Model: "Gemini 2.0 Flash", MonthlyCost: 1000,
						Position: world.Position{X: 880, Y: 100},
						Skills:   []string{"Data Analysis", "Deployment"},
						Tools:    []string{"BigQuery", "Filesystem"},
					},
					{
						ID: "agent-8", Name: "Claude Data QA",
						Vendor: world.VendorAnthropic, Status: world.StatusError,
						Model: "Claude Haiku 4.5", MonthlyCost: 1000,
						Position: world.Position{X: 820, Y: 190},
						Skills:   []string{"Testing", "Data Analysis", "Debugging"},
						Tools:    []string{"Filesystem", "PostgreSQL", "BigQuery", "Slack"},
					},
				},
			},
			{
				ID:            "dept-4",
				Name:          "DevOps Team",
				Layout:        world.Layout{X: 50, Y: 340, Width: 240, Height: 200},
				PrimaryVendor: world.VendorAnthropic,
				Budget:        1500,
				MonthlySpend:  1100,
				Agents: []*world.Agent{
					{
						ID: "agent-9", Name: "Claude DevOps",
						Vendor: world.VendorAnthropic, Status: world.StatusActive,
						Model: "Claude Sonnet 4.5", MonthlyCost: 1100,
						Position:  world.Position{X: 130, Y: 410},
						Skills:    []string{"Deployment", "Debugging", "Documentation"},
						Tools:     []string{"Kubernetes", "Terraform", "GitHub"},
						SubAgents: []string{"provisioner", "monitor"},
					},
				},
			},
			{
				ID:            "dept-5",
				Name:          "Security Team",
				Layout:        world.Layout{X: 340, Y: 340, Width: 270, Height: 200},
				PrimaryVendor: world.VendorOpenAI,
				Budget:        2000,
				MonthlySpend:  1700,
				Agents: []*world.Agent{
					{
						ID: "agent-10", Name: "GPT Security",
						Vendor: world.VendorOpenAI, Status: world.StatusActive,
						Model: "GPT-4o", MonthlyCost: 950,
						Position: world.Position{X: 400, Y: 400},
						Skills:   []string{"Security Scan", "Code Review", "Debugging"},
						Tools:    []string{"Filesystem", "GitHub", "SonarQube"},
					},
					{
						ID: "agent-11", Name: "Claude Auditor",
						Vendor: world.VendorAnthropic, Status: world.StatusIdle,
						Model: "Claude Haiku 4.5", MonthlyCost: 750,
						Position: world.Position{X: 520, Y: 400},
						Skills:   []string{"Security Scan", "Documentation", "Code Review"},
						Tools:    []string{"Filesystem", "GitHub"},
					},
				},
			},
		},
	}
}
