package models

// RoseState is the derived health of the rose, never stored.
type RoseState string

const (
	RoseRevival   RoseState = "revival"
	RoseWilting   RoseState = "wilting"
	RoseBudding   RoseState = "budding"
	RoseBlooming  RoseState = "blooming"
	RoseFullBloom RoseState = "fullBloom"
)

// RoseStates is ordered worst to best.
var RoseStates = []RoseState{RoseRevival, RoseWilting, RoseBudding, RoseBlooming, RoseFullBloom}

// Rank returns the position of the state in RoseStates, or -1 when unknown.
func (r RoseState) Rank() int {
	for i, s := range RoseStates {
		if s == r {
			return i
		}
	}
	return -1
}

// Label is the human wording used by renderers.
func (r RoseState) Label() string {
	switch r {
	case RoseFullBloom:
		return "Full bloom"
	case RoseBlooming:
		return "Blooming"
	case RoseBudding:
		return "Budding"
	case RoseWilting:
		return "Wilting"
	case RoseRevival:
		return "Waiting for revival"
	default:
		return string(r)
	}
}
