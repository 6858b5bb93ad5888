package entities

// AnalyticsSummary holds aggregate statistics over a user's meetings, tasks
// and teams. CompletionRate is a whole percentage, 0 when there are no tasks.
type AnalyticsSummary struct {
	TotalTasks      int `json:"total_tasks"`
	CompletedTasks  int `json:"completed_tasks"`
	PendingTasks    int `json:"pending_tasks"`
	InProgressTasks int `json:"in_progress_tasks"`
	CompletionRate  int `json:"completion_rate"`
	TotalMeetings   int `json:"total_meetings"`
	TotalTeams      int `json:"total_teams"`
	TeamMeetings    int `json:"team_meetings"`
}
