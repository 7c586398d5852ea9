package model

// AppConfig holds application-wide preferences and default solver settings.
type AppConfig struct {
	// Defaults applied to new plans
	DefaultWeights      BalanceWeights `json:"default_weights"`
	DefaultMaxSolutions int            `json:"default_max_solutions"`
	DefaultSeed         int64          `json:"default_seed"` // 0 = seed from the clock

	// Application preferences
	RecentPlans []string `json:"recent_plans"`
}

// DefaultAppConfig returns an AppConfig populated with the same defaults
// as DefaultBalance().
func DefaultAppConfig() AppConfig {
	balance := DefaultBalance()
	return AppConfig{
		DefaultWeights:      balance.Weights,
		DefaultMaxSolutions: balance.MaxSolutionsToEvaluate,
		DefaultSeed:         0,
		RecentPlans:         []string{},
	}
}

// ApplyToBalance copies the config's defaults into a balance config.
// Used when creating a new plan so it inherits the user's saved defaults.
func (c AppConfig) ApplyToBalance(b *BalanceConfig) {
	b.Weights = c.DefaultWeights
	if c.DefaultMaxSolutions > 0 {
		b.MaxSolutionsToEvaluate = c.DefaultMaxSolutions
	}
}

// RememberPlan records a plan path at the head of the recent list,
// dropping duplicates and keeping at most ten entries.
func (c *AppConfig) RememberPlan(path string) {
	recent := []string{path}
	for _, p := range c.RecentPlans {
		if p != path {
			recent = append(recent, p)
		}
	}
	if len(recent) > 10 {
		recent = recent[:10]
	}
	c.RecentPlans = recent
}
