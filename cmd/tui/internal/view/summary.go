package view

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/nestegg/internal/settings"
	"github.com/MrJamesThe3rd/nestegg/internal/summary"
)

type SummaryModel struct {
	CommonModel
	summaryService  *summary.Service
	settingsService *settings.Service

	overview *summary.Overview
	form     *huh.Form

	loading bool
	err     error
	status  string

	formTarget string
}

func NewSummaryModel(summarySvc *summary.Service, settingsSvc *settings.Service) SummaryModel {
	return SummaryModel{
		summaryService:  summarySvc,
		settingsService: settingsSvc,
		loading:         true,
	}
}

func (m SummaryModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m SummaryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case summaryLoadMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.overview = msg.overview

		return m, nil

	case targetSavedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.status = ""
		}

		m.form = nil

		return m, m.loadCmd()
	}

	if m.form != nil {
		return m.updateForm(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "t":
			return m.enterTargetMode()
		}
	}

	return m, nil
}

func (m SummaryModel) enterTargetMode() (tea.Model, tea.Cmd) {
	m.formTarget = ""
	if m.overview != nil && m.overview.Target != nil {
		m.formTarget = strconv.FormatFloat(*m.overview.Target, 'f', 2, 64)
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("target").
				Title("Savings Target").
				Value(&m.formTarget).
				Validate(func(s string) error {
					if _, err := strconv.ParseFloat(s, 64); err != nil {
						return fmt.Errorf("not a number")
					}
					return nil
				}),
		),
	).WithWidth(40).WithShowHelp(false)

	return m, m.form.Init()
}

func (m SummaryModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.form = nil
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

	return m, m.saveTargetCmd()
}

func (m SummaryModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading summary...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Savings Summary"))
	b.WriteString("\n\n")

	for _, acct := range m.overview.Accounts {
		b.WriteString(fmt.Sprintf("%-30s %14s\n", acct.Name, FormatAmount(acct.Total)))
	}

	if len(m.overview.Accounts) == 0 {
		b.WriteString(lipgloss.NewStyle().Faint(true).Render("No accounts yet.") + "\n")
	}

	b.WriteString(strings.Repeat("─", 45) + "\n")
	b.WriteString(fmt.Sprintf("%-30s %14s\n", "Total", FormatAmount(m.overview.Total)))

	if m.overview.Target != nil {
		b.WriteString(fmt.Sprintf("%-30s %14s\n", "Target", FormatAmount(*m.overview.Target)))

		if *m.overview.Target > 0 {
			pct := m.overview.Total / *m.overview.Target * 100
			b.WriteString(fmt.Sprintf("%-30s %13.1f%%\n", "Progress", pct))
		}
	} else {
		b.WriteString(lipgloss.NewStyle().Faint(true).Render("No target set. Press 't' to set one.") + "\n")
	}

	content := b.String()

	if m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(44).
			Render(m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	help := "\n\nEsc: back | t: set target | r: refresh"
	if m.status != "" {
		help = "\n" + m.status + help
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(content + help)
}

// Messages

type summaryLoadMsg struct {
	overview *summary.Overview
	err      error
}

func (m SummaryModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		overview, err := m.summaryService.Overview(ctx)

		return summaryLoadMsg{overview: overview, err: err}
	}
}

type targetSavedMsg struct {
	err error
}

func (m SummaryModel) saveTargetCmd() tea.Cmd {
	target, err := strconv.ParseFloat(m.formTarget, 64)
	if err != nil {
		return func() tea.Msg { return targetSavedMsg{err: err} }
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := m.settingsService.Update(ctx, target)

		return targetSavedMsg{err: err}
	}
}
