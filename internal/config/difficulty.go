package config

// DifficultyManager scales scroll speed as score milestones are reached.
// The modifier starts at 1 and grows by a fixed step per milestone with no
// upper bound.
type DifficultyManager struct {
	step       float64
	milestones int
}

// NewDifficultyManager creates a difficulty manager at modifier 1.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{step: cfg.ModifierStep}
}

// OnMilestone raises the speed modifier by one step.
func (d *DifficultyManager) OnMilestone() {
	d.milestones++
}

// Milestones returns how many milestones were reached since the last reset.
func (d *DifficultyManager) Milestones() int {
	return d.milestones
}

// Modifier returns the current speed modifier (>= 1).
// Computed from the milestone count so repeated steps never drift.
func (d *DifficultyManager) Modifier() float64 {
	return 1 + float64(d.milestones)*d.step
}

// Speed returns the effective scroll speed for the given base speed.
func (d *DifficultyManager) Speed(baseSpeed float64) float64 {
	return baseSpeed * d.Modifier()
}

// Reset returns the modifier to 1.
func (d *DifficultyManager) Reset() {
	d.milestones = 0
}
