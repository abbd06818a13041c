package http

import (
	"smart-task-scheduler/internal/task"
	"smart-task-scheduler/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Title    string `json:"title"    example:"Fix bug"`
	Priority string `json:"priority" example:"High"`
	Deadline string `json:"deadline" example:"2024-06-01"`
}

func (r createReq) toInput() task.CreateInput {
	return task.CreateInput{
		Title:    r.Title,
		Priority: r.Priority,
		Deadline: r.Deadline,
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Priority  string            `json:"priority"`
	Rank      int               `json:"rank"`
	Deadline  response.Date     `json:"deadline"  swaggertype:"string" example:"2024-06-01"`
	Display   string            `json:"display"   example:"Fix bug (High) - Due: 2024-06-01"`
	CreatedAt response.DateTime `json:"created_at" swaggertype:"string"`
}

func newTaskResp(t task.Task) taskResp {
	return taskResp{
		ID:        t.ID(),
		Title:     t.Title(),
		Priority:  string(t.Priority()),
		Rank:      t.Priority().Rank(),
		Deadline:  response.Date(t.Deadline().Time()),
		Display:   t.String(),
		CreatedAt: response.DateTime(t.CreatedAt()),
	}
}

type createResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newCreateResp(out task.CreateOutput) createResp {
	return createResp{Task: newTaskResp(out.Task)}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Lines []string   `json:"lines"`
	Total int        `json:"total"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{
		Tasks: tasks,
		Lines: out.Lines(),
		Total: out.Total,
	}
}
