package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/taskease/internal/client/models"
	"github.com/dmitrijs2005/taskease/internal/common"
)

type TaskAPI interface {
	ListTasks(ctx context.Context, q models.TaskQuery) ([]models.Task, error)
	TaskSummary(ctx context.Context) (*models.TaskSummary, error)
	GetTask(ctx context.Context, id int) (*models.Task, error)
	CreateTask(ctx context.Context, in models.TaskInput) (*models.Task, error)
	UpdateTask(ctx context.Context, id int, in models.TaskInput) (*models.Task, error)
	DeleteTask(ctx context.Context, id int) error
}

// TaskForm is the raw text entered for a task. Blank fields are left out of
// an update.
type TaskForm struct {
	Title       string
	Description string
	Deadline    string
	Status      string
	CategoryID  string
}

// DateLayout is the short deadline format accepted besides RFC 3339.
const DateLayout = "2006-01-02"

// ParseDeadline accepts YYYY-MM-DD (midnight UTC) or an RFC 3339 timestamp.
func ParseDeadline(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: deadline %q must be YYYY-MM-DD or RFC 3339", common.ErrorValidation, s)
}

// ParseTaskForm validates f. On create, title and deadline are required and
// status defaults to ToDo.
func ParseTaskForm(f TaskForm, create bool) (models.TaskInput, error) {
	var in models.TaskInput

	title := strings.TrimSpace(f.Title)
	deadline := strings.TrimSpace(f.Deadline)
	if create && (title == "" || deadline == "") {
		return in, fmt.Errorf("%w: title and deadline are required", common.ErrorValidation)
	}
	if title != "" {
		in.Title = &title
	}
	if d := strings.TrimSpace(f.Description); d != "" {
		in.Description = &d
	}
	if deadline != "" {
		t, err := ParseDeadline(deadline)
		if err != nil {
			return in, err
		}
		in.Deadline = &t
	}

	switch st := strings.TrimSpace(f.Status); {
	case st != "":
		parsed, err := models.ParseTaskStatus(st)
		if err != nil {
			return in, fmt.Errorf("%w: %v", common.ErrorValidation, err)
		}
		in.Status = &parsed
	case create:
		todo := models.TaskStatusToDo
		in.Status = &todo
	}

	if c := strings.TrimSpace(f.CategoryID); c != "" {
		id, err := strconv.Atoi(c)
		if err != nil || id <= 0 {
			return in, fmt.Errorf("%w: category id %q must be a positive number", common.ErrorValidation, c)
		}
		in.CategoryID = &id
	}
	return in, nil
}

type TaskService interface {
	List(ctx context.Context, q models.TaskQuery) ([]models.Task, error)
	Get(ctx context.Context, id int) (*models.Task, error)
	Create(ctx context.Context, f TaskForm) (*models.Task, error)
	Update(ctx context.Context, id int, f TaskForm) (*models.Task, error)
	SetStatus(ctx context.Context, id int, status string) (*models.Task, error)
	Delete(ctx context.Context, id int) error
}

type taskService struct {
	api TaskAPI
}

func NewTaskService(api TaskAPI) TaskService {
	return &taskService{api: api}
}

func (s *taskService) List(ctx context.Context, q models.TaskQuery) ([]models.Task, error) {
	if q.SortOrder != "" && q.SortOrder != models.SortOrderAsc && q.SortOrder != models.SortOrderDesc {
		return nil, fmt.Errorf("%w: sort order must be asc or desc", common.ErrorValidation)
	}
	if q.SortBy != "" && q.SortBy != models.SortByCreatedAt && q.SortBy != models.SortByDeadline {
		return nil, fmt.Errorf("%w: sort field must be createdAt or deadline", common.ErrorValidation)
	}
	q.Search = strings.TrimSpace(q.Search)
	return s.api.ListTasks(ctx, q)
}

func (s *taskService) Get(ctx context.Context, id int) (*models.Task, error) {
	return s.api.GetTask(ctx, id)
}

func (s *taskService) Create(ctx context.Context, f TaskForm) (*models.Task, error) {
	in, err := ParseTaskForm(f, true)
	if err != nil {
		return nil, err
	}
	return s.api.CreateTask(ctx, in)
}

func (s *taskService) Update(ctx context.Context, id int, f TaskForm) (*models.Task, error) {
	in, err := ParseTaskForm(f, false)
	if err != nil {
		return nil, err
	}
	if in == (models.TaskInput{}) {
		return nil, common.ErrNothingToUpdate
	}
	return s.api.UpdateTask(ctx, id, in)
}

func (s *taskService) SetStatus(ctx context.Context, id int, status string) (*models.Task, error) {
	st, err := models.ParseTaskStatus(status)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorValidation, err)
	}
	return s.api.UpdateTask(ctx, id, models.TaskInput{Status: &st})
}

func (s *taskService) Delete(ctx context.Context, id int) error {
	return s.api.DeleteTask(ctx, id)
}
