package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/nestegg/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/nestegg/internal/account"
	accountStore "github.com/MrJamesThe3rd/nestegg/internal/account/store"
	"github.com/MrJamesThe3rd/nestegg/internal/config"
	"github.com/MrJamesThe3rd/nestegg/internal/contribution"
	contributionStore "github.com/MrJamesThe3rd/nestegg/internal/contribution/store"
	"github.com/MrJamesThe3rd/nestegg/internal/database"
	"github.com/MrJamesThe3rd/nestegg/internal/settings"
	settingsStore "github.com/MrJamesThe3rd/nestegg/internal/settings/store"
	"github.com/MrJamesThe3rd/nestegg/internal/summary"
	summaryStore "github.com/MrJamesThe3rd/nestegg/internal/summary/store"
	"github.com/MrJamesThe3rd/nestegg/internal/value"
	valueStore "github.com/MrJamesThe3rd/nestegg/internal/value/store"
)

type model struct {
	accountService      *account.Service
	valueService        *value.Service
	contributionService *contribution.Service
	settingsService     *settings.Service
	summaryService      *summary.Service

	currentView View

	accountsView      view.AccountsModel
	snapshotView      view.SnapshotModel
	contributionsView view.ContributionsModel
	summaryView       view.SummaryModel
}

type View int

const (
	ViewMenu          View = 0
	ViewAccounts      View = 1
	ViewSnapshot      View = 2
	ViewContributions View = 3
	ViewSummary       View = 4
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.DB.Path)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}

	acctSvc := account.NewService(accountStore.New(db))
	valSvc := value.NewService(valueStore.New(db))
	contribSvc := contribution.NewService(contributionStore.New(db))
	settingsSvc := settings.NewService(settingsStore.New(db))
	summarySvc := summary.NewService(summaryStore.New(db))

	return model{
		accountService:      acctSvc,
		valueService:        valSvc,
		contributionService: contribSvc,
		settingsService:     settingsSvc,
		summaryService:      summarySvc,
		currentView:         ViewMenu,
		accountsView:        view.NewAccountsModel(acctSvc),
		snapshotView:        view.NewSnapshotModel(acctSvc, valSvc),
		contributionsView:   view.NewContributionsModel(acctSvc, contribSvc),
		summaryView:         view.NewSummaryModel(summarySvc, settingsSvc),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewAccounts
				m.accountsView = view.NewAccountsModel(m.accountService)

				return m, m.accountsView.Init()
			case "2":
				m.currentView = ViewSnapshot
				m.snapshotView = view.NewSnapshotModel(m.accountService, m.valueService)

				return m, m.snapshotView.Init()
			case "3":
				m.currentView = ViewContributions
				m.contributionsView = view.NewContributionsModel(m.accountService, m.contributionService)

				return m, m.contributionsView.Init()
			case "4":
				m.currentView = ViewSummary
				m.summaryView = view.NewSummaryModel(m.summaryService, m.settingsService)

				return m, m.summaryView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewAccounts:
		var newModel tea.Model
		newModel, cmd = m.accountsView.Update(msg)
		m.accountsView = newModel.(view.AccountsModel)
	case ViewSnapshot:
		var newModel tea.Model
		newModel, cmd = m.snapshotView.Update(msg)
		m.snapshotView = newModel.(view.SnapshotModel)
	case ViewContributions:
		var newModel tea.Model
		newModel, cmd = m.contributionsView.Update(msg)
		m.contributionsView = newModel.(view.ContributionsModel)
	case ViewSummary:
		var newModel tea.Model
		newModel, cmd = m.summaryView.Update(msg)
		m.summaryView = newModel.(view.SummaryModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Nestegg TUI\n\n" +
				"1. Manage Accounts\n" +
				"2. Record Snapshot\n" +
				"3. Future Contributions\n" +
				"4. Summary\n\n" +
				"q. Quit",
		)
	case ViewAccounts:
		return m.accountsView.View()
	case ViewSnapshot:
		return m.snapshotView.View()
	case ViewContributions:
		return m.contributionsView.View()
	case ViewSummary:
		return m.summaryView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
