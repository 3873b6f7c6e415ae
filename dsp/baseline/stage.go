package baseline

// Stage is the lifecycle position of a BubbleFill estimation.
type Stage int

const (
	StageInit Stage = iota
	StageGrowing
	StageConverged
	StageMaxIterReached
	StageAssembled
)

func (s Stage) String() string {
	switch s {
	case StageInit:
		return "init"
	case StageGrowing:
		return "growing"
	case StageConverged:
		return "converged"
	case StageMaxIterReached:
		return "max_iter_reached"
	case StageAssembled:
		return "assembled"
	default:
		return "unknown"
	}
}

// Status reports how the growth loop ended.
type Status int

const (
	// StatusConverged means the last pass lifted no pixel by Epsilon or more.
	StatusConverged Status = iota
	// StatusMaxIterations means the pass limit was hit first. The baseline
	// is still valid but may sit lower than the converged one.
	StatusMaxIterations
)

func (s Status) String() string {
	switch s {
	case StatusConverged:
		return "converged"
	case StatusMaxIterations:
		return "max_iterations"
	default:
		return "unknown"
	}
}
