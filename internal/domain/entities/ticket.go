package entities

// TicketCreationRequest is the tracker-agnostic shape handed to the ticket
// collaborator when an action item is converted into an external ticket.
type TicketCreationRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description,omitempty"`
	Priority    string   `json:"priority"`
	IssueType   string   `json:"issue_type"`
	Labels      []string `json:"labels,omitempty"`
	Assignee    string   `json:"assignee,omitempty"`
}

// FromActionItem builds a ticket request from an action item. Description
// becomes the ticket title, the priority maps onto the tracker's three-level
// scheme (anything outside low/medium/high collapses to Medium), and the
// assignee carries over unchanged.
func (TicketCreationRequest) FromActionItem(item *ActionItem) TicketCreationRequest {
	return TicketCreationRequest{
		Title:       item.Description,
		Description: item.Notes,
		Priority:    ticketPriority(item.Priority),
		IssueType:   "Task",
		Labels:      []string{"meeting-action-item"},
		Assignee:    item.AssignedTo,
	}
}

func ticketPriority(p ActionItemPriority) string {
	switch p {
	case ActionItemPriorityHigh:
		return "High"
	case ActionItemPriorityMedium:
		return "Medium"
	case ActionItemPriorityLow:
		return "Low"
	default:
		return "Medium"
	}
}
