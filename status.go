package bt

// Status is the outcome of ticking a node.
type Status int

const (
	// Running indicates the node has work in progress and must be ticked
	// again to make further progress.
	Running Status = iota + 1
	// Success indicates the node's attempt completed successfully.
	Success
	// Failure indicates the node's attempt completed unsuccessfully.
	// Failure is an ordinary control-flow value, not an error.
	Failure
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Success:
		return "success"
	case Failure:
		return "failure"
	default:
		return "unknown"
	}
}
