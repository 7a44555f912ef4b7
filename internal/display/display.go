// Package display renders fetched pull requests for the terminal.
package display

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/cli/go-gh/v2/pkg/term"
	"github.com/dustin/go-humanize"

	"github.com/jmcampanini/pears/internal/github"
	"github.com/jmcampanini/pears/internal/pr"
	"github.com/jmcampanini/pears/internal/repository"
)

const (
	defaultWidth  = 80
	maxTitleWidth = 50
	indent        = "  "
)

// Options configures a Renderer. Zero values pick sensible defaults.
type Options struct {
	Width     int    // 0 detects the terminal width
	Me        string // login whose pull requests are highlighted
	BodyLines int    // 0 shows whole bodies
	Now       func() time.Time
}

// Renderer writes pull request listings and details to out.
type Renderer struct {
	out       io.Writer
	width     int
	me        string
	bodyLines int
	now       func() time.Time
}

// New creates a Renderer writing to out.
func New(out io.Writer, opts Options) *Renderer {
	width := opts.Width
	if width <= 0 {
		width = terminalWidth()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Renderer{
		out:       out,
		width:     width,
		me:        opts.Me,
		bodyLines: opts.BodyLines,
		now:       now,
	}
}

func terminalWidth() int {
	if w, _, err := term.FromEnv().Size(); err == nil && w > 0 {
		return w
	}
	return defaultWidth
}

var (
	purple    = lipgloss.Color("99")
	green     = lipgloss.Color("42")
	gray      = lipgloss.Color("245")
	lightGray = lipgloss.Color("241")
	yellow    = lipgloss.Color("214")

	barStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(purple).Padding(0, 1)
	headerStyle   = lipgloss.NewStyle().Foreground(purple).Bold(true).Align(lipgloss.Center)
	cellStyle     = lipgloss.NewStyle().Padding(0, 1)
	oddRowStyle   = cellStyle.Foreground(gray)
	evenRowStyle  = cellStyle.Foreground(lightGray)
	mineRowStyle  = cellStyle.Foreground(yellow).Bold(true)
	approvedStyle = lipgloss.NewStyle().Foreground(green).Bold(true)
	labelStyle    = lipgloss.NewStyle().Foreground(purple)
	titleStyle    = lipgloss.NewStyle().Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(gray)
)

const (
	approvedBadge = "✔ approved" // heavy check mark
	mineMarker    = "★"          // star
)

// Repository prints the header bar that introduces one repository's pull requests.
func (r *Renderer) Repository(id repository.Identity, summary pr.Summary) error {
	text := fmt.Sprintf("%s  %d open", id, summary.Total)
	if summary.Approved > 0 {
		text += fmt.Sprintf(" · %d approved", summary.Approved)
	}
	if summary.Mine > 0 {
		text += fmt.Sprintf(" · %d mine", summary.Mine)
	}
	_, err := fmt.Fprintln(r.out, barStyle.Width(r.width).Render(text))
	return err
}

// List prints a table of pull requests in the order given.
func (r *Renderer) List(prs []github.PullRequest) error {
	if len(prs) == 0 {
		_, err := fmt.Fprintln(r.out, indent+"No open pull requests found.")
		return err
	}

	mine := make(map[int]bool)
	rows := make([][]string, len(prs))
	for i, p := range prs {
		marker := ""
		if github.IsAuthoredBy(p, r.me) {
			marker = mineMarker
			mine[i] = true
		}
		approved := ""
		if github.IsApproved(p) {
			approved = approvedBadge
		}
		rows[i] = []string{
			marker,
			fmt.Sprintf("#%d", p.Number),
			truncateString(p.Title, maxTitleWidth),
			p.Author.Login,
			labelNames(p.Labels),
			approved,
			r.relative(p.UpdatedAt),
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(purple)).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case mine[row]:
				return mineRowStyle
			case row%2 == 0:
				return evenRowStyle
			default:
				return oddRowStyle
			}
		}).
		Headers("", "#", "Title", "Author", "Labels", "Review", "Updated").
		Rows(rows...)

	_, err := fmt.Fprintln(r.out, t)
	return err
}

// Show prints everything fetched about one pull request.
func (r *Renderer) Show(p github.PullRequest) error {
	var sb strings.Builder

	title := fmt.Sprintf("#%d %s", p.Number, p.Title)
	if github.IsAuthoredBy(p, r.me) {
		title = mineMarker + " " + title
	}
	sb.WriteString(titleStyle.Render(title))
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("─", min(r.width, lipgloss.Width(title)+2)))
	sb.WriteString("\n")

	status := []string{strings.ToLower(p.State)}
	switch {
	case p.IsMerged():
		status = append(status, "merged "+r.relative(*p.MergedAt))
	case p.IsClosed():
		status = append(status, "closed "+r.relative(*p.ClosedAt))
	}
	if p.Mergeable != "" {
		status = append(status, strings.ToLower(p.Mergeable))
	}
	if github.IsApproved(p) {
		status = append(status, approvedStyle.Render(approvedBadge))
	}
	sb.WriteString(strings.Join(status, " · "))
	sb.WriteString("\n")

	if len(p.Labels) > 0 {
		chips := make([]string, len(p.Labels))
		for i, l := range p.Labels {
			chips[i] = labelStyle.Render("[" + l.Name + "]")
		}
		sb.WriteString(strings.Join(chips, " "))
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "by %s · opened %s · updated %s\n",
		p.Author.Login, r.relative(p.CreatedAt), r.relative(p.UpdatedAt))
	sb.WriteString(mutedStyle.Render(p.URL))
	sb.WriteString("\n\n")

	if p.Body == nil || strings.TrimSpace(*p.Body) == "" {
		sb.WriteString(mutedStyle.Render("No description provided."))
		sb.WriteString("\n")
	} else {
		sb.WriteString(r.wrap(*p.Body, ""))
	}

	if len(p.Reviews) > 0 {
		fmt.Fprintf(&sb, "\nReviews (%d):\n", len(p.Reviews))
		for _, review := range p.Reviews {
			state := strings.ToLower(review.State.String())
			switch review.State {
			case github.ReviewStateApproved:
				state = approvedStyle.Render(state)
			case github.ReviewStatePending:
				state = mutedStyle.Render(state + " (not submitted)")
			}
			fmt.Fprintf(&sb, "%s%s by %s · %s\n", indent, state, review.Author.Login, r.relative(review.CreatedAt))
			if strings.TrimSpace(review.BodyText) != "" {
				sb.WriteString(r.wrap(review.BodyText, indent+indent))
			}
			for _, c := range review.Comments {
				fmt.Fprintf(&sb, "%s↳ %s: %s\n", indent+indent, c.Author.Login, oneLine(c.BodyText))
			}
		}
	}

	comments := pr.CommentsByUpdatedAsc(p)
	if len(comments) > 0 {
		fmt.Fprintf(&sb, "\nComments (%d):\n", len(comments))
		for _, c := range comments {
			fmt.Fprintf(&sb, "%s%s · %s\n", indent, c.Author.Login, r.relative(c.UpdatedAt))
			sb.WriteString(r.wrap(c.BodyText, indent+indent))
		}
	}

	_, err := fmt.Fprint(r.out, sb.String())
	return err
}

// Error prints err as a single line, for failures that do not stop the command.
func (r *Renderer) Error(err error) error {
	_, werr := fmt.Fprintf(r.out, "%serror: %s\n", indent, oneLine(err.Error()))
	return werr
}

func (r *Renderer) relative(t time.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	return humanize.RelTime(t, r.now(), "ago", "from now")
}

// wrap word-wraps text to the renderer width under prefix, honoring bodyLines.
func (r *Renderer) wrap(text, prefix string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	width := max(r.width-lipgloss.Width(prefix), 20)
	wrapped := lipgloss.NewStyle().Width(width).Render(strings.TrimSpace(text))

	lines := strings.Split(wrapped, "\n")
	truncated := false
	if r.bodyLines > 0 && len(lines) > r.bodyLines {
		lines = lines[:r.bodyLines]
		truncated = true
	}

	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(prefix)
		sb.WriteString(strings.TrimRight(line, " "))
		sb.WriteString("\n")
	}
	if truncated {
		sb.WriteString(prefix)
		sb.WriteString(mutedStyle.Render("…"))
		sb.WriteString("\n")
	}
	return sb.String()
}

func labelNames(labels []github.Label) string {
	names := make([]string, len(labels))
	for i, l := range labels {
		names[i] = l.Name
	}
	return strings.Join(names, ", ")
}

// oneLine collapses line breaks so text fits on a single output line.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// truncateString truncates a string to maxLen runes, adding "..." if truncated.
func truncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
