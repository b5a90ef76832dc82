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
	"github.com/MrJamesThe3rd/nestegg/internal/value"
)

// SnapshotModel records dated balance snapshots and shows the recent ones.
type SnapshotModel struct {
	CommonModel
	acctService *account.Service
	valService  *value.Service

	accts     []*account.Account
	acctNames map[uuid.UUID]string
	recs      []*value.Record

	table table.Model
	form  *huh.Form

	loading bool
	err     error
	status  string

	formAccount string
	formValue   string
	formDate    string
}

func NewSnapshotModel(acctSvc *account.Service, valSvc *value.Service) SnapshotModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Account", Width: 25},
		{Title: "Value", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithHeight(10),
	)

	return SnapshotModel{
		acctService: acctSvc,
		valService:  valSvc,
		table:       t,
		loading:     true,
	}
}

func (m SnapshotModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m SnapshotModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotLoadMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.accts = msg.accts
		m.recs = msg.recs

		m.acctNames = make(map[uuid.UUID]string, len(m.accts))
		for _, acct := range m.accts {
			m.acctNames[acct.ID] = acct.Name
		}

		m.refreshTable()
		m.resetForm()

		return m, m.form.Init()

	case snapshotSavedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error saving: %v", msg.err)
			return m, nil
		}

		m.status = "Snapshot saved."

		return m, m.loadCmd()
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			return m, Back
		}
	}

	if m.form == nil {
		return m, nil
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

func (m *SnapshotModel) resetForm() {
	m.formAccount = ""
	m.formValue = ""
	m.formDate = FormatDate(time.Now())

	options := make([]huh.Option[string], 0, len(m.accts))
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
				Key("value").
				Title("Current Value").
				Value(&m.formValue).
				Validate(func(s string) error {
					if _, err := strconv.ParseFloat(s, 64); err != nil {
						return fmt.Errorf("not a number")
					}
					return nil
				}),

			huh.NewInput().
				Key("date").
				Title("Date").
				Value(&m.formDate).
				Validate(func(s string) error {
					if _, err := time.Parse(time.DateOnly, s); err != nil {
						return fmt.Errorf("use YYYY-MM-DD")
					}
					return nil
				}),
		),
	).WithWidth(45).WithShowHelp(false)
}

func (m SnapshotModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	if len(m.accts) == 0 {
		return lipgloss.NewStyle().Padding(2).Render("No accounts yet. Add one first.\n\n(Esc to back)")
	}

	formPanel := lipgloss.NewStyle().
		Padding(1, 2).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Width(48).
		Render("Record Snapshot\n\n" + m.form.View())

	tablePanel := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinHorizontal(lipgloss.Top, formPanel, tablePanel)

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content + "\n\n(Esc to back)")
}

func (m *SnapshotModel) refreshTable() {
	// Latest entries at the top.
	rows := make([]table.Row, 0, len(m.recs))
	for i := len(m.recs) - 1; i >= 0; i-- {
		rec := m.recs[i]
		rows = append(rows, table.Row{
			FormatDate(rec.Date),
			m.acctNames[rec.AccountID],
			FormatAmount(rec.Value),
		})
	}

	m.table.SetRows(rows)
}

// Messages

type snapshotLoadMsg struct {
	accts []*account.Account
	recs  []*value.Record
	err   error
}

func (m SnapshotModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		accts, err := m.acctService.List(ctx)
		if err != nil {
			return snapshotLoadMsg{err: err}
		}

		recs, err := m.valService.List(ctx)

		return snapshotLoadMsg{accts: accts, recs: recs, err: err}
	}
}

type snapshotSavedMsg struct {
	err error
}

func (m SnapshotModel) saveCmd() tea.Cmd {
	acctID, err := uuid.Parse(m.formAccount)
	if err != nil {
		return func() tea.Msg { return snapshotSavedMsg{err: err} }
	}

	val, err := strconv.ParseFloat(m.formValue, 64)
	if err != nil {
		return func() tea.Msg { return snapshotSavedMsg{err: err} }
	}

	date, err := time.Parse(time.DateOnly, m.formDate)
	if err != nil {
		return func() tea.Msg { return snapshotSavedMsg{err: err} }
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := m.valService.Create(ctx, value.CreateParams{
			AccountID: acctID,
			Value:     val,
			Date:      date,
		})

		return snapshotSavedMsg{err: err}
	}
}
