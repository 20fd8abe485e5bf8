package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"tabsearch.dev/cli/internal/application/services"
)

// NewPopoverCommand creates the interactive popover command
func NewPopoverCommand(container *CLIContainer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "popover",
		Short: "Interactive tab search popover",
		Long: `Open an interactive popover to search and switch sidebar tabs.

Type to filter, use the arrow keys to move, Enter to switch to the highlighted
tab and Esc to close. With --watch the list refreshes when the inventory file
changes.`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationInteractive: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPopover(cmd.Context(), container)
		},
	}

	cmd.Flags().Bool("watch", false, "Reload the inventory file when it changes")

	return cmd
}

// runPopover starts the popover
func runPopover(ctx context.Context, container *CLIContainer) error {
	c := container.Container
	model := newPopoverModel(ctx, c.Switcher, c.Reloads())

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("popover failed: %w", err)
	}

	return nil
}

// popoverModel holds the state for the Bubble Tea popover
type popoverModel struct {
	ctx      context.Context
	switcher *services.SwitcherService
	reloads  <-chan struct{}

	input  textinput.Model
	view   services.View
	cursor int
	notice services.Notice
	width  int
}

// reloadMsg is sent after the inventory was reloaded
type reloadMsg struct{}

// newPopoverModel creates a new popover model
func newPopoverModel(ctx context.Context, switcher *services.SwitcherService, reloads <-chan struct{}) popoverModel {
	input := textinput.New()
	input.Prompt = "Search: "
	input.CharLimit = 128
	input.Focus()

	m := popoverModel{
		ctx:      ctx,
		switcher: switcher,
		reloads:  reloads,
		input:    input,
	}
	m.refresh()
	return m
}

// Init implements the Bubble Tea init method
func (m popoverModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.waitForReload())
}

// Update implements the Bubble Tea update method
func (m popoverModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case reloadMsg:
		m.refresh()
		return m, m.waitForReload()

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c":
			return m, tea.Quit

		case "up", "ctrl+p", "shift+tab":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case "down", "ctrl+n", "tab":
			if m.cursor < len(m.view.Items)-1 {
				m.cursor++
			}
			return m, nil

		case "enter":
			if item, ok := m.selected(); ok {
				m.notice = m.switcher.Select(m.ctx, item.Category)
				m.refresh()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	query := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != query {
		m.cursor = 0
		m.notice = services.Notice{}
		m.refresh()
	}
	return m, cmd
}

// View implements the Bubble Tea view method
func (m popoverModel) View() string {
	sections := []string{
		titleStyle.Render("Search Tabs"),
		m.input.View(),
		renderView(m.view, m.cursor),
	}

	if m.notice.Message != "" {
		sections = append(sections, "", renderNotice(m.notice))
	}

	sections = append(sections, "", hintStyle.Render("[↑↓] Navigate | [Enter] Switch | [Esc] Close"))

	out := lipgloss.JoinVertical(lipgloss.Left, sections...)
	if m.width > 0 {
		out = lipgloss.NewStyle().MaxWidth(m.width).Render(out)
	}
	return out
}

// refresh rebuilds the view for the current query and clamps the cursor
func (m *popoverModel) refresh() {
	m.view = m.switcher.View(m.input.Value())
	if m.cursor >= len(m.view.Items) {
		m.cursor = len(m.view.Items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m popoverModel) selected() (services.Item, bool) {
	if m.cursor < 0 || m.cursor >= len(m.view.Items) {
		return services.Item{}, false
	}
	return m.view.Items[m.cursor], true
}

// waitForReload blocks on the next inventory reload
func (m popoverModel) waitForReload() tea.Cmd {
	if m.reloads == nil {
		return nil
	}
	reloads := m.reloads
	return func() tea.Msg {
		if _, ok := <-reloads; !ok {
			return nil
		}
		return reloadMsg{}
	}
}
