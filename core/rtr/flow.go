package rtr

// flow tells the Add loop what to do next.
type flow int

const (
	flowStop  flow = iota // pattern fully stored
	flowBegin             // re-enter the loop on a parameter node
	flowNext              // advance to the next byte
)
