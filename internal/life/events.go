package life

// Initialized is emitted once per Initialize with the starting counts.
type Initialized struct {
	Total  int
	Dead   int
	Living int
	Steps  int
}

// Changed is emitted after Start, Pause, every Step, and after cell edits
// made outside a step.
type Changed struct {
	Dead    int
	Living  int
	Steps   int
	Running bool
}

// Stats is a point-in-time view of the engine counters.
type Stats struct {
	Total  int
	Living int
	Dead   int
	Steps  int
}

// StepResult describes what a single Step did.
type StepResult struct {
	Advanced bool // false when the step was a no-op on an empty grid
	Births   int
	Deaths   int
	Steps    int // step counter after the call
}
