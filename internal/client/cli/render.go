package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/taskease/internal/client/client"
	"github.com/dmitrijs2005/taskease/internal/client/models"
	"github.com/dmitrijs2005/taskease/internal/client/services"
	"github.com/dmitrijs2005/taskease/internal/common"
)

var (
	colorAccent  = lipgloss.Color("#20B9B4")
	colorMuted   = lipgloss.Color("#6C7A89")
	colorSuccess = lipgloss.Color("#2ECC71")
	colorWarning = lipgloss.Color("#F4D03F")
	colorError   = lipgloss.Color("#E74C3C")
)

var styles = struct {
	Title   lipgloss.Style
	Bold    lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Box     lipgloss.Style
}{
	Title:   lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
	Bold:    lipgloss.NewStyle().Bold(true),
	Muted:   lipgloss.NewStyle().Foreground(colorMuted),
	Success: lipgloss.NewStyle().Foreground(colorSuccess),
	Warning: lipgloss.NewStyle().Foreground(colorWarning),
	Error:   lipgloss.NewStyle().Foreground(colorError),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorAccent).
		Padding(0, 1),
}

var statusStyles = map[models.TaskStatus]lipgloss.Style{
	models.TaskStatusToDo:       lipgloss.NewStyle().Foreground(colorMuted),
	models.TaskStatusInProgress: lipgloss.NewStyle().Foreground(colorWarning),
	models.TaskStatusDone:       lipgloss.NewStyle().Foreground(colorSuccess),
}

// nearDeadline matches the window the API uses for its near-deadline count.
const nearDeadline = 7 * 24 * time.Hour

var now = time.Now

func renderStatus(st models.TaskStatus) string {
	s, ok := statusStyles[st]
	if !ok {
		return string(st)
	}
	return s.Render(fmt.Sprintf("%-10s", st))
}

func renderDeadline(t models.Task) string {
	d := t.Deadline.Format(services.DateLayout)
	if t.Status == models.TaskStatusDone {
		return d
	}
	switch left := t.Deadline.Sub(now()); {
	case left < 0:
		return styles.Error.Render(d + " overdue")
	case left < nearDeadline:
		return styles.Warning.Render(d)
	default:
		return d
	}
}

func renderTasks(tasks []models.Task) string {
	if len(tasks) == 0 {
		return styles.Muted.Render("No tasks found.")
	}
	var b strings.Builder
	for _, t := range tasks {
		fmt.Fprintf(&b, "%4d  %s  %s  %s", t.ID, renderStatus(t.Status), renderDeadline(t), t.Title)
		if t.Category != nil {
			b.WriteString(styles.Muted.Render(" [" + t.Category.Name + "]"))
		}
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderTask(t models.Task, notes []models.Note) string {
	var b strings.Builder
	b.WriteString(styles.Title.Render(fmt.Sprintf("#%d %s", t.ID, t.Title)) + "\n")
	fmt.Fprintf(&b, "Status:   %s\n", renderStatus(t.Status))
	fmt.Fprintf(&b, "Deadline: %s\n", renderDeadline(t))
	if t.Category != nil {
		fmt.Fprintf(&b, "Category: %s\n", t.Category.Name)
	}
	if t.Description != nil && *t.Description != "" {
		b.WriteString("\n" + *t.Description + "\n")
	}
	b.WriteString("\n" + renderNotes(notes))
	return styles.Box.Render(b.String())
}

func renderNotes(notes []models.Note) string {
	if len(notes) == 0 {
		return styles.Muted.Render("No notes yet.")
	}
	var b strings.Builder
	b.WriteString(styles.Bold.Render("Notes") + "\n")
	for _, n := range notes {
		fmt.Fprintf(&b, "%4d  %s  %s\n", n.ID, styles.Muted.Render(n.CreatedAt.Format("2006-01-02 15:04")), n.Content)
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderCategories(cs []models.Category) string {
	if len(cs) == 0 {
		return styles.Muted.Render("No categories yet. Add one with 'category add <name>'.")
	}
	var b strings.Builder
	for _, c := range cs {
		fmt.Fprintf(&b, "%4d  %s\n", c.ID, c.Name)
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderDashboard(d *services.Dashboard) string {
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		styles.Box.Render(fmt.Sprintf("Completed Tasks\n%d", d.Summary.Completed)),
		styles.Box.Render(fmt.Sprintf("Pending Tasks\n%d", d.Summary.Pending)),
		styles.Box.Render(fmt.Sprintf("Near Deadline\n%d\n(within 7 days)", d.Summary.NearDeadline)),
	)
	out := styles.Title.Render("Dashboard") + "\n" + cards
	if len(d.Upcoming) > 0 {
		out += "\n" + styles.Bold.Render("Upcoming") + "\n" + renderTasks(d.Upcoming)
	}
	return out
}

func renderProfile(u models.User) string {
	body := fmt.Sprintf("Name:   %s\nEmail:  %s", u.Name, u.Email)
	if !u.CreatedAt.IsZero() {
		body += "\nMember since " + u.CreatedAt.Format("January 2, 2006")
	}
	return styles.Box.Render(body)
}

func renderLanding() string {
	return styles.Title.Render("TaskEase") + "\n" +
		"Organize your tasks, deadlines and notes.\n" +
		styles.Muted.Render("Type 'login' or 'register' to get started.")
}

// renderError turns a command error into the line shown to the user.
func renderError(err error) string {
	var msg string
	switch {
	case errors.Is(err, client.ErrUnauthorized):
		msg = "Your session has expired. Please log in again."
	case errors.Is(err, common.ErrNothingToUpdate):
		msg = "No changes detected."
	case errors.Is(err, common.ErrNotAuthenticated):
		msg = "Could not load your profile. Please log in again."
	default:
		msg = client.Message(err)
	}
	return styles.Error.Render("Error: " + msg)
}
