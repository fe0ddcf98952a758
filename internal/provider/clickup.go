package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"deskboard/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

const clickUpBaseURL = "https://api.clickup.com/api/v2"

// ClickUpProvider calls the ClickUp API with the server-held personal
// token. The token never appears in anything returned to clients.
type ClickUpProvider struct {
	client  *http.Client
	baseURL string
	token   string
	tracer  trace.Tracer
}

func NewClickUpProvider(tracer trace.Tracer, token string) *ClickUpProvider {
	return &ClickUpProvider{
		client:  &http.Client{Timeout: 15 * time.Second},
		baseURL: clickUpBaseURL,
		token:   token,
		tracer:  tracer,
	}
}

type ClickUpTeam struct {
	ID string `json:"id"`
}

type ClickUpUserResponse struct {
	User struct {
		Teams []ClickUpTeam `json:"teams"`
	} `json:"user"`
}

type ClickUpRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ClickUpRawTask struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status struct {
		Status string `json:"status"`
	} `json:"status"`
	DueDate  string `json:"due_date"`
	Priority *struct {
		Priority string `json:"priority"`
		ID       string `json:"id"`
	} `json:"priority"`
	List   ClickUpRef  `json:"list"`
	Folder *ClickUpRef `json:"folder"`
	Space  *ClickUpRef `json:"space"`
	URL    string      `json:"url"`
}

type ClickUpTasksResponse struct {
	Tasks []ClickUpRawTask `json:"tasks"`
}

// AuthorizedUser fetches the token's user record, including team
// memberships.
func (p *ClickUpProvider) AuthorizedUser(ctx context.Context) (*ClickUpUserResponse, error) {
	_, span := p.tracer.Start(ctx, "clickup.authorized-user")
	defer span.End()

	body, err := p.doRequest(ctx, p.baseURL+"/user")
	if err != nil {
		return nil, err
	}

	var payload ClickUpUserResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("parse user response: %w", err)
	}
	return &payload, nil
}

// TeamTasks fetches all tasks for a team, subtasks included.
func (p *ClickUpProvider) TeamTasks(ctx context.Context, teamID string) (*ClickUpTasksResponse, error) {
	_, span := p.tracer.Start(ctx, "clickup.team-tasks")
	defer span.End()

	endpoint := fmt.Sprintf("%s/team/%s/task?subtasks=true", p.baseURL, teamID)
	body, err := p.doRequest(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var payload ClickUpTasksResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("parse tasks response: %w", err)
	}
	return &payload, nil
}

func (p *ClickUpProvider) doRequest(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", p.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return nil, &domain.UpstreamError{Service: "clickup", Status: resp.StatusCode, Body: string(body)}
	}

	return io.ReadAll(resp.Body)
}
