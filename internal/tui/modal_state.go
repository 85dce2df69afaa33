package tui

type ModalType int

const (
	ModalNone ModalType = iota
	ModalCheckIn
	ModalFox
	ModalAddGoal
	ModalRename
)

// ModalState is the open overlay. Text is edited in Model.input.
type ModalState interface {
	Type() ModalType
}

// CheckInState is the daily check-in for one goal.
type CheckInState struct {
	GoalID string
}

func (s *CheckInState) Type() ModalType { return ModalCheckIn }

// FoxState is the weekly reflection. Once submitted the answer waits for the
// prince's reply before it is stored.
type FoxState struct {
	Submitted bool
	Answer    string
}

func (s *FoxState) Type() ModalType { return ModalFox }

type AddGoalState struct {
	StyleIdx int
}

func (s *AddGoalState) Type() ModalType { return ModalAddGoal }

type RenameState struct {
	GoalID string
}

func (s *RenameState) Type() ModalType { return ModalRename }
