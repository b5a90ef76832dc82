package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/nestegg/internal/account"
)

type accountsState int

const (
	accountsStateBrowse accountsState = iota
	accountsStateAdd
	accountsStateRename
)

type AccountsModel struct {
	CommonModel
	acctService *account.Service

	state accountsState
	table table.Model
	accts []*account.Account
	form  *huh.Form

	loading bool
	err     error
	status  string

	formName string
}

func NewAccountsModel(acctSvc *account.Service) AccountsModel {
	columns := []table.Column{
		{Title: "Name", Width: 30},
		{Title: "Created", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return AccountsModel{
		acctService: acctSvc,
		table:       t,
		loading:     true,
	}
}

func (m AccountsModel) Init() tea.Cmd {
	return m.loadAccountsCmd()
}

func (m AccountsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadAccountsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.accts = msg.accts
		m.refreshTable()

		return m, nil

	case accountActionMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.status = ""
		}

		m.state = accountsStateBrowse
		m.form = nil
		m.table.Focus()

		return m, m.loadAccountsCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	if m.state == accountsStateBrowse {
		return m.updateBrowse(msg)
	}

	return m.updateForm(msg)
}

func (m AccountsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadAccountsCmd()
		case "a":
			return m.enterAddMode()
		case "e":
			return m.enterRenameMode()
		case "d":
			return m, m.deleteCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m AccountsModel) enterAddMode() (tea.Model, tea.Cmd) {
	m.formName = ""
	m.form = nameForm(&m.formName, "New Account")
	m.state = accountsStateAdd
	m.table.Blur()

	return m, m.form.Init()
}

func (m AccountsModel) enterRenameMode() (tea.Model, tea.Cmd) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.accts) {
		return m, nil
	}

	m.formName = m.accts[idx].Name
	m.form = nameForm(&m.formName, "Rename Account")
	m.state = accountsStateRename
	m.table.Blur()

	return m, m.form.Init()
}

func nameForm(value *string, title string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title(title).
				Value(value).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name cannot be empty")
					}
					return nil
				}),
		),
	).WithWidth(45).WithShowHelp(false)
}

func (m AccountsModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = accountsStateBrowse
			m.form = nil
			m.table.Focus()

			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	if m.state == accountsStateAdd {
		return m, m.addCmd()
	}

	return m, m.renameCmd()
}

func (m AccountsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading accounts...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	help := "Esc: back | a: add | e: rename | d: delete | r: refresh"

	content := lipgloss.JoinVertical(lipgloss.Left,
		tableView,
		lipgloss.NewStyle().Faint(true).Render(help),
	)

	if m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render(m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *AccountsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.accts))
	for _, acct := range m.accts {
		rows = append(rows, table.Row{
			acct.Name,
			FormatDate(acct.CreatedAt),
		})
	}

	m.table.SetRows(rows)
}

// Messages

type loadAccountsMsg struct {
	accts []*account.Account
	err   error
}

func (m AccountsModel) loadAccountsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		accts, err := m.acctService.List(ctx)

		return loadAccountsMsg{accts: accts, err: err}
	}
}

type accountActionMsg struct {
	err error
}

func (m AccountsModel) addCmd() tea.Cmd {
	name := m.formName

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := m.acctService.Create(ctx, name)

		return accountActionMsg{err: err}
	}
}

func (m AccountsModel) renameCmd() tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.accts) {
		return nil
	}

	id := m.accts[idx].ID
	name := m.formName

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := m.acctService.Rename(ctx, id, name)

		return accountActionMsg{err: err}
	}
}

// deleteCmd cascades: the account's snapshots and contributions go with it.
func (m AccountsModel) deleteCmd() tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.accts) {
		return nil
	}

	id := m.accts[idx].ID

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		return accountActionMsg{err: m.acctService.Delete(ctx, id)}
	}
}
