package reports

import (
	"github.com/propdesk/property-management-api/internal/constants"
	"github.com/propdesk/property-management-api/internal/models"
)

// TaskMonthGroup is one creation-month bucket within a board column.
type TaskMonthGroup struct {
	Month string        `json:"month"`
	Tasks []models.Task `json:"tasks"`
}

// TaskColumn is one status column of the task board.
type TaskColumn struct {
	Status models.TaskStatus `json:"status"`
	Months []TaskMonthGroup  `json:"months"`
}

// BuildTaskBoard partitions tasks into the four fixed status columns, then
// sub-groups each column by creation month. The archived flag selects which
// side of the archive toggle is shown; archived tasks are hidden, not gone.
// Tasks are expected in creation order and keep it within each bucket.
func BuildTaskBoard(tasks []models.Task, showArchived bool) []TaskColumn {
	columns := make([]TaskColumn, len(models.AllTaskStatuses))
	colIndex := make(map[models.TaskStatus]int, len(models.AllTaskStatuses))
	for i, status := range models.AllTaskStatuses {
		columns[i] = TaskColumn{Status: status}
		colIndex[status] = i
	}

	monthIndex := make(map[models.TaskStatus]map[string]int)

	for _, task := range tasks {
		if task.IsArchived != showArchived {
			continue
		}
		ci, ok := colIndex[task.Status]
		if !ok {
			continue
		}

		month := task.CreatedAt.Format(constants.MonthKeyLayout)
		if monthIndex[task.Status] == nil {
			monthIndex[task.Status] = make(map[string]int)
		}
		mi, ok := monthIndex[task.Status][month]
		if !ok {
			mi = len(columns[ci].Months)
			monthIndex[task.Status][month] = mi
			columns[ci].Months = append(columns[ci].Months, TaskMonthGroup{Month: month})
		}
		columns[ci].Months[mi].Tasks = append(columns[ci].Months[mi].Tasks, task)
	}
	return columns
}
