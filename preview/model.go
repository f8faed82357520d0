// Package preview is a terminal front end for the site. It renders pages
// in memory and drives them with the same key events the browser sends, so
// the image overlay can be exercised without a browser.
package preview

import (
	"fmt"
	"strings"

	"github.com/HeyGarrison/cakeelizabethdotcom/events"
	"github.com/HeyGarrison/cakeelizabethdotcom/location"
	"github.com/HeyGarrison/cakeelizabethdotcom/pages"
	"github.com/HeyGarrison/cakeelizabethdotcom/router"
	"github.com/HeyGarrison/cakeelizabethdotcom/vdom"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	locStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	activeStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("212"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("212")).Padding(0, 1)
)

// Model is the bubbletea model of the preview.
type Model struct {
	keys    *events.Dispatcher
	history *router.Memory
	shell   *pages.Shell
	session *session
	stop    func()
	width   int
}

var _ tea.Model = (*Model)(nil)

// New renders start with deps. Key events reach pages through an in-memory
// dispatcher; deps.Keys is replaced by it.
func New(deps pages.Deps, start location.Location) *Model {
	keys := events.NewDispatcher()
	deps.Keys = keys

	history := router.NewMemory(start)
	shell := pages.NewShell(deps)
	m := &Model{
		keys:    keys,
		history: history,
		shell:   shell,
	}
	m.stop = router.Follow(history, pages.Routes(deps), shell.SetPage)
	m.session = newSession(shell, history)
	m.session.render()
	return m
}

// Close unmounts the pages and stops following history.
func (m *Model) Close() {
	m.stop()
	m.session.close()
}

// Location returns the location being previewed.
func (m *Model) Location() location.Location {
	return m.history.Location()
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyCtrlC:
		return tea.Quit
	case tea.KeyLeft:
		m.keys.Press(events.KeyArrowLeft)
	case tea.KeyRight:
		m.keys.Press(events.KeyArrowRight)
	case tea.KeyEsc:
		m.keys.Press(events.KeyEscape)
	case tea.KeyRunes:
		if len(msg.Runes) != 1 {
			return nil
		}
		switch r := msg.Runes[0]; {
		case r == 'q':
			return tea.Quit
		case r == 'b':
			m.history.Back()
		case r == 'f':
			m.history.Forward()
		case r >= '1' && r <= '9':
			m.follow(m.thumbnails(), int(r-'1'))
		case r == 'n':
			m.follow(m.navLinks(), 0)
		}
	}
	return nil
}

// follow clicks links[i], if there is one.
func (m *Model) follow(links []*vdom.VNode, i int) {
	if i < 0 || i >= len(links) || links[i].OnClick == nil {
		return
	}
	links[i].OnClick()
}

func (m *Model) tree() *vdom.VNode {
	return m.session.current
}

func (m *Model) thumbnails() []*vdom.VNode {
	return m.findAll(func(v *vdom.VNode) bool { return v.Attr("class") == "gallery-thumb" })
}

// navLinks returns the header links after the current one, wrapping, so
// 'n' cycles through the pages.
func (m *Model) navLinks() []*vdom.VNode {
	links := m.findAll(func(v *vdom.VNode) bool {
		c, _ := v.Attr("class").(string)
		return strings.HasPrefix(c, "nav-link")
	})
	for i, l := range links {
		if l.Attr("aria-current") == "page" {
			return append(links[i+1:], links[:i+1]...)
		}
	}
	return links
}

func (m *Model) findAll(match func(*vdom.VNode) bool) []*vdom.VNode {
	if m.tree() == nil {
		return nil
	}
	return m.tree().FindAll(match)
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.shell.Title()))
	b.WriteString("\n")
	b.WriteString(locStyle.Render(m.history.Location().String()))
	b.WriteString("\n\n")

	if thumbs := m.thumbnails(); len(thumbs) > 0 {
		b.WriteString(fmt.Sprintf("%d photos  (press 1-%d to open)\n", len(thumbs), min(len(thumbs), 9)))
	}

	if dialog := m.findAll(func(v *vdom.VNode) bool { return v.Attr("role") == "dialog" }); len(dialog) > 0 {
		b.WriteString(boxStyle.Render(m.overlayView(dialog[0])))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("←/→ slide  esc close  b/f back/forward  n next page  q quit  listeners: %d", m.keys.Listeners())))
	return b.String()
}

func (m *Model) overlayView(dialog *vdom.VNode) string {
	slides := dialog.FindAll(func(v *vdom.VNode) bool { return v.Attr("aria-roledesc") == "slide" })

	var cells []string
	caption := ""
	for i, s := range slides {
		cell := fmt.Sprintf(" %d ", i+1)
		if s.Attr("aria-hidden") == "false" {
			cell = activeStyle.Render(cell)
			if img := s.Find(func(v *vdom.VNode) bool { return v.Tag == "img" }); img != nil {
				alt, _ := img.Attr("alt").(string)
				src, _ := img.Attr("src").(string)
				caption = fmt.Sprintf("%s\n%s", alt, dimStyle.Render(src))
			}
		}
		cells = append(cells, cell)
	}

	label, _ := dialog.Attr("aria-label").(string)
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(label),
		lipgloss.JoinHorizontal(lipgloss.Top, cells...),
		caption,
	)
}

// Run starts the interactive preview and blocks until the user quits.
func Run(m *Model, opts ...tea.ProgramOption) error {
	defer m.Close()
	_, err := tea.NewProgram(m, opts...).Run()
	return err
}
