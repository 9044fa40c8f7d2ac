package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/versionlens/pkg/errors"
	"github.com/matzehuels/versionlens/pkg/state"
	"github.com/matzehuels/versionlens/pkg/watcher"
)

const defaultPollInterval = time.Second

// watchCommand creates the watch command.
func (c *CLI) watchCommand() *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "watch [manifest...]",
		Short: "Watch manifests and show live version badges",
		Long: `Watch polls the given manifests (or every supported manifest in --dir) and
re-resolves their dependencies whenever a file changes on disk.

Keys: t toggles inline badges, r refreshes, c clears all badges, q quits.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, err := c.build(ctx)
			if err != nil {
				return err
			}
			defer svc.Close()

			files := args
			if len(files) == 0 {
				if files, err = findManifests(c.dir, svc.Watcher); err != nil {
					return err
				}
			}
			if len(files) == 0 {
				printWarning("No supported manifests in %s", c.dir)
				return nil
			}
			for i, f := range files {
				if abs, err := filepath.Abs(f); err == nil {
					files[i] = abs
				}
			}

			// Logs would tear the alternate screen.
			level := c.Logger.GetLevel()
			c.Logger.SetLevel(log.FatalLevel)
			defer c.Logger.SetLevel(level)

			m := newWatchModel(ctx, svc.Watcher, svc.State, files, interval)
			_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
			if stderrors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", defaultPollInterval, "how often manifests are polled for changes")
	return cmd
}

// =============================================================================
// watchModel - live annotation view
// =============================================================================

type tickMsg time.Time

// passMsg reports a finished watcher pass.
type passMsg struct {
	path    string
	outcome watcher.Outcome
	err     error
	at      time.Time
}

// fileStatus is what the view knows about one manifest.
type fileStatus struct {
	modTime time.Time
	outcome watcher.Outcome
	err     error
	at      time.Time
	busy    bool
}

type watchModel struct {
	ctx      context.Context
	watcher  *watcher.Watcher
	state    *state.State
	files    []string
	status   map[string]*fileStatus
	interval time.Duration
	width    int
	now      func() time.Time
}

func newWatchModel(ctx context.Context, w *watcher.Watcher, st *state.State, files []string, interval time.Duration) watchModel {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	status := make(map[string]*fileStatus, len(files))
	for _, f := range files {
		status[f] = &fileStatus{}
	}
	return watchModel{
		ctx:      ctx,
		watcher:  w,
		state:    st,
		files:    files,
		status:   status,
		interval: interval,
		width:    80,
		now:      time.Now,
	}
}

func (m watchModel) Init() tea.Cmd {
	return tea.Batch(m.poll(), m.tick())
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "t":
			m.state.ToggleInline()
		case "r":
			return m, m.refreshAll()
		case "c":
			m.watcher.ClearAll()
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tickMsg:
		return m, tea.Batch(m.poll(), m.tick())
	case passMsg:
		if s, ok := m.status[msg.path]; ok {
			s.outcome, s.err, s.at, s.busy = msg.outcome, msg.err, msg.at, false
		}
	}
	return m, nil
}

func (m watchModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// poll starts a pass for every file whose modification time changed since
// the last poll. Files that cannot be stat'ed are reported as failed passes.
func (m watchModel) poll() tea.Cmd {
	var cmds []tea.Cmd
	for _, path := range m.changed() {
		cmds = append(cmds, m.process(path, false))
	}
	return tea.Batch(cmds...)
}

// changed records current modification times and returns the files that
// differ from the previous poll.
func (m watchModel) changed() []string {
	var out []string
	for _, path := range m.files {
		s := m.status[path]
		if s.busy {
			continue
		}
		info, err := os.Stat(path)
		if err != nil {
			s.err = errors.Wrap(errors.ErrCodeInvalidInput, err, "stat %s", filepath.Base(path))
			continue
		}
		if info.ModTime().Equal(s.modTime) {
			continue
		}
		s.modTime = info.ModTime()
		s.busy = true
		out = append(out, path)
	}
	return out
}

func (m watchModel) refreshAll() tea.Cmd {
	var cmds []tea.Cmd
	for _, path := range m.files {
		if s := m.status[path]; !s.busy {
			s.busy = true
			cmds = append(cmds, m.process(path, true))
		}
	}
	return tea.Batch(cmds...)
}

// process runs one watcher pass off the UI goroutine.
func (m watchModel) process(path string, refresh bool) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return passMsg{path: path, outcome: watcher.Dropped, err: err, at: m.now()}
		}
		run := m.watcher.OnChange
		if refresh {
			run = m.watcher.Refresh
		}
		outcome, err := run(m.ctx, path, string(data))
		return passMsg{path: path, outcome: outcome, err: err, at: m.now()}
	}
}

func (m watchModel) View() string {
	var b strings.Builder

	inline := m.state.InlineEnabled()
	b.WriteString(StyleTitle.Render(appName + " watch"))
	b.WriteString("  ")
	if inline {
		b.WriteString(StyleDim.Render("inline badges on"))
	} else {
		b.WriteString(StyleWarning.Render("inline badges off"))
	}
	b.WriteString("\n\n")

	for _, path := range m.files {
		b.WriteString(m.fileView(path, inline))
		b.WriteString("\n")
	}

	b.WriteString(StyleDim.Render("t toggle inline  r refresh  c clear  q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m watchModel) fileView(path string, inline bool) string {
	var b strings.Builder
	s := m.status[path]
	list, _ := m.watcher.Annotations(path)

	b.WriteString(StyleValue.Bold(true).Render(filepath.Base(path)))
	b.WriteString(" ")
	b.WriteString(StyleDim.Render(filepath.Dir(path)))
	b.WriteString("\n")

	switch {
	case s.busy:
		b.WriteString("  " + styleIconSpinner.Render("resolving..."))
	case s.err != nil:
		b.WriteString("  " + styleIconError.Render(iconError+" "+errors.UserMessage(s.err)))
	case !s.at.IsZero():
		b.WriteString("  " + StyleDim.Render(fmt.Sprintf("%s · %s · %s", s.outcome, summary(list), formatAge(m.now().Sub(s.at)))))
	default:
		b.WriteString("  " + StyleDim.Render("waiting"))
	}
	b.WriteString("\n")

	if !inline || len(list) == 0 {
		return b.String()
	}

	rows := make([][]string, len(list))
	for i, a := range list {
		rows[i] = []string{fmt.Sprintf("%d", a.Line), a.Package, styleIcon(a.Style) + " " + a.Text}
	}
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Width(min(m.width, 100)).
		Headers("Line", "Package", "Latest").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return base.Foreground(colorGray).Bold(true)
			}
			if col == 2 && row >= 0 && row < len(list) {
				return base.Foreground(lipgloss.Color(list[row].Style.Color()))
			}
			return base
		})
	b.WriteString(t.Render())
	b.WriteString("\n")
	return b.String()
}

func formatAge(d time.Duration) string {
	switch {
	case d < 5*time.Second:
		return "just now"
	case d < time.Minute:
		return fmt.Sprintf("%ds ago", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	default:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	}
}
