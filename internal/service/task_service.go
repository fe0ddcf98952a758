package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"deskboard/internal/domain"
	"deskboard/internal/provider"

	"go.opentelemetry.io/otel/trace"
)

type ClickUpAPI interface {
	AuthorizedUser(ctx context.Context) (*provider.ClickUpUserResponse, error)
	TeamTasks(ctx context.Context, teamID string) (*provider.ClickUpTasksResponse, error)
}

// TaskService is the credential-holding relay behind the tasks widget
// and the /api/clickup/tasks proxy: it resolves the token's first team,
// pulls that team's tasks with subtasks, and reshapes them.
type TaskService struct {
	tracer   trace.Tracer
	provider ClickUpAPI
	token    string
}

func NewTaskService(tracer trace.Tracer, p ClickUpAPI, token string) *TaskService {
	return &TaskService{
		tracer:   tracer,
		provider: p,
		token:    token,
	}
}

// GetTasks runs the two-step upstream sequence. A token with no team
// memberships yields an empty list, not an error.
func (s *TaskService) GetTasks(ctx context.Context) ([]domain.Task, error) {
	ctx, span := s.tracer.Start(ctx, "task-service.get-tasks")
	defer span.End()

	if s.token == "" {
		return nil, domain.NewConfigError("ClickUp API token not configured")
	}

	user, err := s.provider.AuthorizedUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch user: %w", err)
	}
	if len(user.User.Teams) == 0 {
		return []domain.Task{}, nil
	}

	teamID := user.User.Teams[0].ID
	resp, err := s.provider.TeamTasks(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("fetch tasks: %w", err)
	}

	tasks := make([]domain.Task, 0, len(resp.Tasks))
	for _, raw := range resp.Tasks {
		tasks = append(tasks, reshapeTask(raw))
	}
	return tasks, nil
}

func reshapeTask(raw provider.ClickUpRawTask) domain.Task {
	task := domain.Task{
		ID:     raw.ID,
		Name:   raw.Name,
		Status: raw.Status.Status,
		List:   domain.TaskRef{ID: raw.List.ID, Name: raw.List.Name},
		URL:    raw.URL,
	}
	if raw.DueDate != "" {
		if ms, err := strconv.ParseInt(raw.DueDate, 10, 64); err == nil {
			iso := time.UnixMilli(ms).UTC().Format(time.RFC3339)
			task.DueDate = &iso
		}
	}
	if raw.Priority != nil {
		if n, err := strconv.Atoi(raw.Priority.ID); err == nil {
			task.Priority = &n
		}
	}
	if raw.Folder != nil {
		task.Folder = &domain.TaskRef{ID: raw.Folder.ID, Name: raw.Folder.Name}
	}
	if raw.Space != nil {
		task.Space = &domain.TaskRef{ID: raw.Space.ID, Name: raw.Space.Name}
	}
	return task
}

// DueDateBand renders a due date relative to now: overdue, today,
// tomorrow, "n days" out to a week, then a plain local date.
func DueDateBand(now, due time.Time) string {
	nowDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dueDay := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, now.Location())
	days := int(dueDay.Sub(nowDay).Hours() / 24)

	switch {
	case days < 0:
		return "Overdue"
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days <= 7:
		return fmt.Sprintf("%d days", days)
	default:
		return due.Format("1/2/2006")
	}
}

// PriorityLabel maps ClickUp's numeric priority to its display band.
func PriorityLabel(priority *int) string {
	if priority == nil {
		return ""
	}
	switch *priority {
	case 1:
		return "Urgent"
	case 2:
		return "High"
	case 3:
		return "Normal"
	default:
		return "Low"
	}
}

// TasksToEvents projects tasks with due dates onto the calendar.
func TasksToEvents(tasks []domain.Task) []domain.CalendarEvent {
	events := make([]domain.CalendarEvent, 0, len(tasks))
	for _, task := range tasks {
		if task.DueDate == nil {
			continue
		}
		due, err := time.Parse(time.RFC3339, *task.DueDate)
		if err != nil {
			continue
		}
		events = append(events, domain.CalendarEvent{
			Date:  due,
			Title: task.Name,
			Type:  domain.EventTask,
		})
	}
	return events
}
