package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"deskboard/internal/domain"
	"deskboard/internal/provider"
)

type mockClickUp struct {
	user     *provider.ClickUpUserResponse
	tasks    *provider.ClickUpTasksResponse
	userErr  error
	tasksErr error

	userCalls  int
	tasksCalls int
	lastTeamID string
}

func (m *mockClickUp) AuthorizedUser(ctx context.Context) (*provider.ClickUpUserResponse, error) {
	m.userCalls++
	if m.userErr != nil {
		return nil, m.userErr
	}
	return m.user, nil
}

func (m *mockClickUp) TeamTasks(ctx context.Context, teamID string) (*provider.ClickUpTasksResponse, error) {
	m.tasksCalls++
	m.lastTeamID = teamID
	if m.tasksErr != nil {
		return nil, m.tasksErr
	}
	return m.tasks, nil
}

func userWithTeams(ids ...string) *provider.ClickUpUserResponse {
	resp := &provider.ClickUpUserResponse{}
	for _, id := range ids {
		resp.User.Teams = append(resp.User.Teams, provider.ClickUpTeam{ID: id})
	}
	return resp
}

func rawTask(id string) provider.ClickUpRawTask {
	var raw provider.ClickUpRawTask
	raw.ID = id
	raw.Name = "Task " + id
	raw.Status.Status = "to do"
	raw.List = provider.ClickUpRef{ID: "l1", Name: "Inbox"}
	raw.URL = "https://app.clickup.com/t/" + id
	return raw
}

func TestTaskServiceMissingToken(t *testing.T) {
	t.Parallel()

	mock := &mockClickUp{}
	svc := NewTaskService(testTracer, mock, "")

	_, err := svc.GetTasks(context.Background())
	if !domain.IsConfig(err) {
		t.Fatalf("expected config error, got %v", err)
	}
	if err.Error() != "ClickUp API token not configured" {
		t.Fatalf("unexpected message: %s", err.Error())
	}
	if mock.userCalls != 0 {
		t.Fatal("no upstream call should be attempted without a token")
	}
}

func TestTaskServiceNoTeamsIsEmptyNotError(t *testing.T) {
	t.Parallel()

	mock := &mockClickUp{user: userWithTeams()}
	svc := NewTaskService(testTracer, mock, "pk_token")

	tasks, err := svc.GetTasks(context.Background())
	if err != nil {
		t.Fatalf("zero teams must not be an error: %v", err)
	}
	if tasks == nil || len(tasks) != 0 {
		t.Fatalf("expected empty task list, got %#v", tasks)
	}
	if mock.tasksCalls != 0 {
		t.Fatal("task listing should be skipped without a team")
	}
}

func TestTaskServiceUsesFirstTeam(t *testing.T) {
	t.Parallel()

	mock := &mockClickUp{
		user:  userWithTeams("team-1", "team-2"),
		tasks: &provider.ClickUpTasksResponse{Tasks: []provider.ClickUpRawTask{rawTask("t1")}},
	}
	svc := NewTaskService(testTracer, mock, "pk_token")

	tasks, err := svc.GetTasks(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.lastTeamID != "team-1" {
		t.Fatalf("expected first team, got %s", mock.lastTeamID)
	}
	if len(tasks) != 1 || tasks[0].ID != "t1" {
		t.Fatalf("unexpected tasks: %+v", tasks)
	}
}

func TestTaskServiceStepTwoFailureIsFatal(t *testing.T) {
	t.Parallel()

	mock := &mockClickUp{
		user:     userWithTeams("team-1"),
		tasksErr: &domain.UpstreamError{Service: "clickup", Status: http.StatusBadGateway, Body: "bad"},
	}
	svc := NewTaskService(testTracer, mock, "pk_token")

	if _, err := svc.GetTasks(context.Background()); err == nil {
		t.Fatal("step-2 failure should not yield partial results")
	}
}

func TestReshapeTask(t *testing.T) {
	t.Parallel()

	raw := rawTask("t9")
	raw.DueDate = "1756684800000" // 2025-09-01T00:00:00Z
	raw.Priority = &struct {
		Priority string `json:"priority"`
		ID       string `json:"id"`
	}{Priority: "urgent", ID: "1"}
	raw.Folder = &provider.ClickUpRef{ID: "f1", Name: "Q3"}
	raw.Space = &provider.ClickUpRef{ID: "s1", Name: "Office"}

	task := reshapeTask(raw)
	if task.DueDate == nil {
		t.Fatal("due date should be set")
	}
	want := time.UnixMilli(1756684800000).UTC().Format(time.RFC3339)
	if *task.DueDate != want {
		t.Fatalf("due date %s, want %s", *task.DueDate, want)
	}
	if task.Priority == nil || *task.Priority != 1 {
		t.Fatalf("unexpected priority: %+v", task.Priority)
	}
	if task.Folder == nil || task.Folder.Name != "Q3" || task.Space == nil || task.Space.Name != "Office" {
		t.Fatalf("unexpected refs: %+v", task)
	}
}

func TestReshapeTaskNullables(t *testing.T) {
	t.Parallel()

	raw := rawTask("t10")
	raw.DueDate = "not-a-number"

	task := reshapeTask(raw)
	if task.DueDate != nil {
		t.Fatal("unparsable due date should be nil")
	}
	if task.Priority != nil || task.Folder != nil || task.Space != nil {
		t.Fatalf("absent fields should stay nil: %+v", task)
	}
}

func TestDueDateBand(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.Local)

	cases := []struct {
		due  time.Time
		want string
	}{
		{now.AddDate(0, 0, -2), "Overdue"},
		{now.Add(6 * time.Hour), "Today"},
		{now.AddDate(0, 0, 1), "Tomorrow"},
		{now.AddDate(0, 0, 4), "4 days"},
		{now.AddDate(0, 0, 7), "7 days"},
	}
	for _, c := range cases {
		if got := DueDateBand(now, c.due); got != c.want {
			t.Fatalf("due %v: got %q, want %q", c.due, got, c.want)
		}
	}

	far := now.AddDate(0, 0, 20)
	if got := DueDateBand(now, far); got != far.Format("1/2/2006") {
		t.Fatalf("far dates should render as plain dates, got %q", got)
	}
}

func TestPriorityLabel(t *testing.T) {
	t.Parallel()

	n := func(v int) *int { return &v }
	cases := []struct {
		in   *int
		want string
	}{
		{nil, ""},
		{n(1), "Urgent"},
		{n(2), "High"},
		{n(3), "Normal"},
		{n(4), "Low"},
		{n(9), "Low"},
	}
	for _, c := range cases {
		if got := PriorityLabel(c.in); got != c.want {
			t.Fatalf("PriorityLabel(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestTasksToEvents(t *testing.T) {
	t.Parallel()

	due := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC).Format(time.RFC3339)
	tasks := []domain.Task{
		{ID: "t1", Name: "With due", DueDate: &due},
		{ID: "t2", Name: "No due"},
	}

	events := TasksToEvents(tasks)
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Title != "With due" || events[0].Type != domain.EventTask {
		t.Fatalf("unexpected event: %+v", events[0])
	}
}
