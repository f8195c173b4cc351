// ABOUTME: Terminal user interface using the bubbletea framework
// ABOUTME: Routes key events and async completion messages between views
package tui

import (
	"database/sql"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"imovia/api"
	"imovia/config"
	"imovia/forms"
	"imovia/geo"
	"imovia/models"
)

// ViewMode represents the current TUI view
type ViewMode int

const (
	ViewLogin ViewMode = iota
	ViewList
	ViewMap
	ViewEdit
	ViewClient
	ViewContract
	ViewTenants
	ViewEmployees
	ViewConfirmDelete
)

// Model is the main bubbletea model
type Model struct {
	cfg      config.Config
	client   *api.Client
	geocoder *geo.Geocoder
	cache    *sql.DB
	log      *zap.Logger

	viewMode ViewMode

	// Login view state
	loginInputs []textinput.Model
	loginFocus  int
	loggingIn   bool
	loginErr    string

	// List view state
	properties   []models.PropertyListItem
	selectedRow  int
	searchQuery  string
	searching    bool
	searchInput  textinput.Model
	loadingList  bool
	fromCache    bool
	cacheSavedAt time.Time

	// Map view state
	groups        []geo.PropertyGroup
	selectedGroup int
	carousel      Carousel
	picked        bool
	pickedLat     float64
	pickedLng     float64
	pickedAddress string

	// Edit view state
	form       *forms.PropertyForm
	formKeys   []string
	formInputs []textinput.Model
	focusIndex int
	editingID  string
	// Stamp for the edit session: reconciliation results carrying an
	// older stamp arrived for a form we already left and are dropped.
	editSeq     int
	reconciling bool

	// Client (tenant profile) view state
	clientForm   *forms.ClientForm
	clientKeys   []string
	clientInputs []textinput.Model
	clientFocus  int

	// Contract view state
	contractForm   *forms.ContractForm
	contractKeys   []string
	contractInputs []textinput.Model
	contractFocus  int
	tenants        []models.TenantRef
	tenantCursor   int
	pickingTenant  bool
	contractErr    string

	// Tenants view state
	tenantStage   TenantStage
	tenantRow     int
	tenantHistory []models.ContractHistoryItem
	tenantSeq     int

	// Employees view state
	employees      []models.Employee
	employeeRow    int
	employeeForm   *forms.EmployeeForm
	employeeKeys   []string
	employeeInputs []textinput.Model
	employeeFocus  int
	editingStaff   bool

	// Delete confirmation state
	deleteID   string
	deleteName string

	// UI state
	width  int
	height int
	status string
	err    error
}

// NewModel creates the root TUI model. The cache connection may be nil; the
// list view then simply starts empty until the first load completes.
func NewModel(cfg config.Config, client *api.Client, geocoder *geo.Geocoder, cache *sql.DB, log *zap.Logger) Model {
	m := Model{
		cfg:      cfg,
		client:   client,
		geocoder: geocoder,
		cache:    cache,
		log:      log,
		viewMode: ViewLogin,
		width:    80,
		height:   24,
	}
	m.initLoginInputs()
	m.searchInput = textinput.New()
	m.searchInput.Placeholder = "Buscar imóvel..."
	m.searchInput.CharLimit = 60

	if client.LoggedIn() {
		m.viewMode = ViewList
	}
	return m
}

func (m Model) Init() tea.Cmd {
	if m.viewMode == ViewList {
		return tea.Batch(m.loadCachedProperties(), m.loadProperties())
	}
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case loginDoneMsg:
		return m.handleLoginDone(msg)
	case propertiesLoadedMsg:
		return m.handlePropertiesLoaded(msg)
	case cachedPropertiesMsg:
		return m.handleCachedProperties(msg)
	case propertyOpenedMsg:
		return m.handlePropertyOpened(msg)
	case historyLoadedMsg:
		return m.handleHistoryLoaded(msg)
	case propertySavedMsg:
		return m.handlePropertySaved(msg)
	case contractSavedMsg:
		return m.handleContractSaved(msg)
	case tenantsLoadedMsg:
		return m.handleTenantsLoaded(msg)
	case tenantHistoryMsg:
		return m.handleTenantHistory(msg)
	case employeesLoadedMsg:
		return m.handleEmployeesLoaded(msg)
	case employeeSavedMsg:
		return m.handleEmployeeSaved(msg)
	case deleteDoneMsg:
		return m.handleDeleteDone(msg)
	case exportDoneMsg:
		return m.handleExportDone(msg)
	case geocodeDoneMsg:
		return m.handleGeocodeDone(msg)
	}
	return m, nil
}

func (m Model) View() string {
	switch m.viewMode {
	case ViewLogin:
		return m.renderLoginView()
	case ViewList:
		return m.renderListView()
	case ViewMap:
		return m.renderMapView()
	case ViewEdit:
		return m.renderEditView()
	case ViewClient:
		return m.renderClientView()
	case ViewContract:
		return m.renderContractView()
	case ViewTenants:
		return m.renderTenantsView()
	case ViewEmployees:
		return m.renderEmployeesView()
	case ViewConfirmDelete:
		return m.renderConfirmDeleteView()
	}
	return ""
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.viewMode {
	case ViewLogin:
		return m.handleLoginKeys(msg)
	case ViewList:
		return m.handleListKeys(msg)
	case ViewMap:
		return m.handleMapKeys(msg)
	case ViewEdit:
		return m.handleEditKeys(msg)
	case ViewClient:
		return m.handleClientKeys(msg)
	case ViewContract:
		return m.handleContractKeys(msg)
	case ViewTenants:
		return m.handleTenantsKeys(msg)
	case ViewEmployees:
		return m.handleEmployeesKeys(msg)
	case ViewConfirmDelete:
		return m.handleConfirmDeleteKeys(msg)
	}

	return m, nil
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			MarginBottom(1)

	tabActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			Background(lipgloss.Color("235")).
			Padding(0, 2)

	tabInactiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Padding(0, 2)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			MarginTop(1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Width(18)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)
