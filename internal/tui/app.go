package tui

import (
	"strings"

	"github.com/MKhiriev/go-ai-feedback/models"
	tea "github.com/charmbracelet/bubbletea"
)

// clientState is shared by the pages of the logged-in loop.
type clientState struct {
	session models.LocalSession

	// online is meaningful once probed is set by the first heartbeat.
	online bool
	probed bool
}

func (s *clientState) character() models.Character {
	return characterOrDefault(s.session.CharacterID)
}

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global ctrl+c quit
// 3) handles NavigateTo messages
// 4) delegates all other messages to the active page
type RootModel struct {
	pages   map[string]tea.Model
	current tea.Model

	// state is nil in the login flow.
	state *clientState

	quitByUser bool
	logout     bool
	result     models.LocalSession
	buildInfo  models.AppBuildInfo

	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:     pages,
		current:   pages[startPage],
		buildInfo: buildInfo,
	}
}

func (r RootModel) withState(state *clientState) RootModel {
	r.state = state
	return r
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkeys for every page.
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case "v":
			if r.isMenuPage() {
				r.showBuildInfo = !r.showBuildInfo
				return r, nil
			}
		case "esc":
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case NavigateTo:
		next, exists := r.pages[msg.Page]
		if !exists {
			return r, nil
		}

		r.showBuildInfo = false
		r.current = next

		if msg.Payload != nil {
			return r, func() tea.Msg { return msg.Payload }
		}
		return r, r.current.Init()

	case AuthResult:
		if msg.Err == nil {
			r.result = msg.Session
			return r, tea.Quit
		}

	case logoutMsg:
		r.logout = true
		return r, tea.Quit

	case heartbeatMsg:
		if r.state != nil {
			r.state.online = msg.online
			r.state.probed = true
		}
		return r, nil
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	if r.current == nil {
		return renderPage("TUI", "", "")
	}
	if r.state == nil {
		return r.current.View()
	}
	return r.current.View() + "\n\n" + r.statusLine()
}

func (r RootModel) statusLine() string {
	var b strings.Builder

	switch {
	case !r.state.probed:
		b.WriteString("… 接続確認中")
	case r.state.online:
		b.WriteString("● オンライン")
	default:
		b.WriteString(errorStyle.Render("○ オフライン"))
	}

	c := r.state.character()
	b.WriteString(" │ ")
	b.WriteString(valueOrDash(r.state.session.UserName))
	b.WriteString(" │ ")
	b.WriteString(characterStyle(c).Render(c.Name))

	return helpStyle.Render("  ") + b.String()
}

func (r RootModel) isMenuPage() bool {
	_, ok := r.current.(*MenuModel)
	return ok
}
