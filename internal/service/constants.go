package service

const (
	// History limits
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 500

	// Wheel nudges
	NudgeStep     = 1  // one option
	NudgePageStep = 10 // page up / page down
)
