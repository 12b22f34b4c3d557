package models

// Phase is the progression state of a tournament.
type Phase string

const (
	PhaseRegistration       Phase = "Registration"
	PhaseGroupsInProgress   Phase = "GroupsInProgress"
	PhaseGroupsComplete     Phase = "GroupsComplete"
	PhaseSemisInProgress    Phase = "SemisInProgress"
	PhaseSemisComplete      Phase = "SemisComplete"
	PhaseFinalsInProgress   Phase = "FinalsInProgress"
	PhaseTournamentComplete Phase = "TournamentComplete"
)

// Description is the status line shown to users for the phase.
func (p Phase) Description() string {
	switch p {
	case PhaseRegistration:
		return "registration open, waiting for the draw"
	case PhaseGroupsInProgress:
		return "group stage in progress"
	case PhaseGroupsComplete:
		return "group stage complete, semifinals pending"
	case PhaseSemisInProgress:
		return "semifinals in progress"
	case PhaseSemisComplete:
		return "semifinals complete, final and third-place match pending"
	case PhaseFinalsInProgress:
		return "final and third-place match in progress"
	case PhaseTournamentComplete:
		return "tournament complete"
	default:
		return "unknown phase"
	}
}
