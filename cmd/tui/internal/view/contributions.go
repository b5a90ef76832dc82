package view

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/nestegg/internal/account"
	"github.com/MrJamesThe3rd/nestegg/internal/contribution"
)

type contributionsState int

const (
	contributionsStateBrowse contributionsState = iota
	contributionsStateAdd
)

type ContributionsModel struct {
	CommonModel
	acctService    *account.Service
	contribService *contribution.Service

	state     contributionsState
	table     table.Model
	accts     []*account.Account
	acctNames map[uuid.UUID]string
	contribs  []*contribution.Contribution
	form      *huh.Form

	loading bool
	err     error
	status  string

	formAccount   string
	formAmount    string
	formDate      string
	formRecurring bool
}

func NewContributionsModel(acctSvc *account.Service, contribSvc *contribution.Service) ContributionsModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Account", Width: 25},
		{Title: "Amount", Width: 12},
		{Title: "Monthly", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
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

	return ContributionsModel{
		acctService:    acctSvc,
		contribService: contribSvc,
		table:          t,
		loading:        true,
	}
}

func (m ContributionsModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m ContributionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case contributionsLoadMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.accts = msg.accts
		m.contribs = msg.contribs

		m.acctNames = make(map[uuid.UUID]string, len(m.accts))
		for _, acct := range m.accts {
			m.acctNames[acct.ID] = acct.Name
		}

		m.refreshTable()

		return m, nil

	case contributionActionMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.status = ""
		}

		m.state = contributionsStateBrowse
		m.form = nil
		m.table.Focus()

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	if m.state == contributionsStateBrowse {
		return m.updateBrowse(msg)
	}

	return m.updateAdd(msg)
}

func (m ContributionsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "a":
			return m.enterAddMode()
		case "d":
			return m, m.deleteCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m ContributionsModel) enterAddMode() (tea.Model, tea.Cmd) {
	m.formAccount = ""
	m.formAmount = ""
	m.formDate = ""
	m.formRecurring = false

	options := []huh.Option[string]{huh.NewOption("Unallocated", "")}
	for _, acct := range m.accts {
		options = append(options, huh.NewOption(acct.Name, acct.ID.String()))
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("account").
				Title("Account").
				Options(options...).
				Value(&m.formAccount),

			huh.NewInput().
				Key("amount").
				Title("Amount").
				Value(&m.formAmount).
				Validate(func(s string) error {
					if _, err := strconv.ParseFloat(s, 64); err != nil {
						return fmt.Errorf("not a number")
					}
					return nil
				}),

			huh.NewInput().
				Key("date").
				Title("Date (optional)").
				Placeholder("YYYY-MM-DD").
				Value(&m.formDate).
				Validate(func(s string) error {
					if s == "" {
						return nil
					}
					if _, err := time.Parse(time.DateOnly, s); err != nil {
						return fmt.Errorf("use YYYY-MM-DD")
					}
					return nil
				}),

			huh.NewConfirm().
				Key("recurring").
				Title("Monthly recurring?").
				Value(&m.formRecurring),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = contributionsStateAdd
	m.table.Blur()

	return m, m.form.Init()
}

func (m ContributionsModel) updateAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = contributionsStateBrowse
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

	return m, m.saveCmd()
}

func (m ContributionsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading contributions...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	help := "Esc: back | a: add | d: delete | r: refresh"

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
			Render("New Contribution\n\n" + m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *ContributionsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.contribs))
	for _, c := range m.contribs {
		date := "-"
		if c.Date != nil {
			date = *c.Date
		}

		name := "Unallocated"
		if c.AccountID != nil {
			name = m.acctNames[*c.AccountID]
		}

		monthly := ""
		if c.Recurring {
			monthly = "yes"
		}

		rows = append(rows, table.Row{
			date,
			name,
			FormatAmount(c.Amount),
			monthly,
		})
	}

	m.table.SetRows(rows)
}

// Messages

type contributionsLoadMsg struct {
	accts    []*account.Account
	contribs []*contribution.Contribution
	err      error
}

func (m ContributionsModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		accts, err := m.acctService.List(ctx)
		if err != nil {
			return contributionsLoadMsg{err: err}
		}

		contribs, err := m.contribService.List(ctx)

		return contributionsLoadMsg{accts: accts, contribs: contribs, err: err}
	}
}

type contributionActionMsg struct {
	err error
}

func (m ContributionsModel) saveCmd() tea.Cmd {
	params := contribution.CreateParams{
		Recurring: m.formRecurring,
	}

	if m.formAccount != "" {
		acctID, err := uuid.Parse(m.formAccount)
		if err != nil {
			return func() tea.Msg { return contributionActionMsg{err: err} }
		}

		params.AccountID = &acctID
	}

	amount, err := strconv.ParseFloat(m.formAmount, 64)
	if err != nil {
		return func() tea.Msg { return contributionActionMsg{err: err} }
	}

	params.Amount = amount

	if m.formDate != "" {
		date := m.formDate
		params.Date = &date
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := m.contribService.Create(ctx, params)

		return contributionActionMsg{err: err}
	}
}

func (m ContributionsModel) deleteCmd() tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.contribs) {
		return nil
	}

	id := m.contribs[idx].ID

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		return contributionActionMsg{err: m.contribService.Delete(ctx, id)}
	}
}
