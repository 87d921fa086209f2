package model

// Goal is a savings target with accumulated progress.
type Goal struct {
	ID                  FlexID  `json:"id"`
	Name                string  `json:"name"`
	TargetAmount        float64 `json:"targetAmount"`
	CurrentAmount       float64 `json:"currentAmount"`
	TargetDate          Date    `json:"targetDate"`
	MonthlyContribution float64 `json:"monthlyContribution,omitempty"`
}

// CreateGoal is the payload for creating a goal.
type CreateGoal struct {
	Name                string  `json:"name"`
	TargetAmount        float64 `json:"targetAmount"`
	CurrentAmount       float64 `json:"currentAmount"`
	TargetDate          Date    `json:"targetDate"`
	MonthlyContribution float64 `json:"monthlyContribution,omitempty"`
}

// UpdateGoal carries the mutable goal fields.
type UpdateGoal struct {
	Name                *string  `json:"name,omitempty"`
	TargetAmount        *float64 `json:"targetAmount,omitempty"`
	CurrentAmount       *float64 `json:"currentAmount,omitempty"`
	TargetDate          *Date    `json:"targetDate,omitempty"`
	MonthlyContribution *float64 `json:"monthlyContribution,omitempty"`
}
