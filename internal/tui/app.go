package tui

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-sweet-shop/internal/service"
	"github.com/MKhiriev/go-sweet-shop/models"
	tea "github.com/charmbracelet/bubbletea"
)

const msgSessionExpired = "Your session has expired. Please sign in again."

// maxRedirects bounds guard redirect chains. Two hops are enough for any
// valid session; more means the page table is misconfigured.
const maxRedirects = 4

type page struct {
	model     tea.Model
	protected bool
	roles     []models.Role
}

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit
// 3) runs every NavigateTo through the access guard
// 4) reacts to session start, logout and expiry
// 5) delegates all other messages to the active page
type RootModel struct {
	ctx             context.Context
	session         service.SessionService
	catalog         service.CatalogService
	refreshJob      service.CatalogRefreshJob
	refreshInterval time.Duration

	pages   map[service.Route]page
	loading tea.Model
	current tea.Model
	route   service.Route

	quitByUser    bool
	buildInfo     models.AppBuildInfo
	showBuildInfo bool
}

// NewRootModel registers all pages and opens the loading page until the
// persisted session has been restored.
func NewRootModel(
	ctx context.Context,
	services *service.ClientServices,
	refreshInterval time.Duration,
	buildInfo models.AppBuildInfo,
) RootModel {
	loading := NewLoadingModel()

	return RootModel{
		ctx:             ctx,
		session:         services.Session,
		catalog:         services.Catalog,
		refreshJob:      services.RefreshJob,
		refreshInterval: refreshInterval,
		pages: map[service.Route]page{
			service.RouteIndex:    {model: NewMenuModel()},
			service.RouteLogin:    {model: NewLoginModel(ctx, services.Session)},
			service.RouteRegister: {model: NewRegisterModel(ctx, services.Auth)},
			service.RouteUserHome: {
				model:     NewShopModel(ctx, services.Session, services.Catalog, services.Inventory),
				protected: true,
				roles:     []models.Role{models.RoleUser},
			},
			service.RouteAdminHome: {
				model:     NewInventoryModel(ctx, services.Session, services.Catalog, services.Inventory),
				protected: true,
				roles:     []models.Role{models.RoleAdmin},
			},
		},
		loading:   loading,
		current:   loading,
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	return tea.Batch(
		r.loading.Init(),
		cmdRestore(r.ctx, r.session),
		waitForExpiry(r.ctx, r.session.Expired()),
		waitForRefresh(r.ctx, r.refreshJob.Results()),
	)
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkey for every page.
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
		return r.navigate(msg)
	case restoredMsg:
		cmd := r.startRefresh(msg.session)
		next, navCmd := r.navigate(NavigateTo{Route: service.RouteIndex})
		return next, tea.Batch(cmd, navCmd)
	case authenticatedMsg:
		r.catalog.Reset()
		cmd := r.startRefresh(r.session.Snapshot())
		next, navCmd := r.navigate(NavigateTo{Route: service.RouteIndex})
		return next, tea.Batch(cmd, navCmd)
	case logoutMsg:
		return r, r.cmdEndSession(NavigateTo{Route: service.RouteLogin}, true)
	case sessionExpiredMsg:
		// the session already tore itself down
		return r, tea.Batch(
			waitForExpiry(r.ctx, r.session.Expired()),
			r.cmdEndSession(NavigateTo{
				Route:   service.RouteLogin,
				Payload: Notice{Text: msgSessionExpired, Error: true},
			}, false),
		)
	case refreshResultMsg:
		rearm := waitForRefresh(r.ctx, r.refreshJob.Results())
		if errors.Is(msg.err, service.ErrSessionExpired) || !r.session.IsAuthenticated() {
			return r, rearm
		}
		updated, cmd := r.current.Update(msg)
		r.current = updated
		return r, tea.Batch(rearm, cmd)
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
		return renderPage("SWEET SHOP", "", "")
	}
	return r.current.View()
}

// navigate resolves nav.Route through the guard and activates the result.
// The payload, if any, reaches the page after its Init.
func (r RootModel) navigate(nav NavigateTo) (tea.Model, tea.Cmd) {
	route, next := r.resolve(nav.Route)

	r.showBuildInfo = false
	r.route = route
	r.current = next

	initCmd := r.current.Init()
	if nav.Payload == nil || next == r.loading {
		return r, initCmd
	}

	payload := nav.Payload
	return r, tea.Sequence(initCmd, func() tea.Msg { return payload })
}

// resolve follows guard redirects until a page may be rendered. Public
// pages send an authenticated caller to their home view.
func (r RootModel) resolve(route service.Route) (service.Route, tea.Model) {
	for range maxRedirects {
		session := r.session.Snapshot()
		if session.Status == models.StatusRestoring {
			return route, r.loading
		}

		p, ok := r.pages[route]
		if !ok {
			route = service.RouteIndex
			continue
		}

		if !p.protected {
			if session.IsAuthenticated() {
				route = service.HomeFor(*session.Identity)
				continue
			}
			return route, p.model
		}

		decision := service.CheckAccess(session, p.roles...)
		switch decision.Kind {
		case service.DecisionLoading:
			return route, r.loading
		case service.DecisionRedirect:
			route = decision.Target
		default:
			return route, p.model
		}
	}

	return service.RouteLogin, r.pages[service.RouteLogin].model
}

func (r RootModel) startRefresh(session models.Session) tea.Cmd {
	if !session.IsAuthenticated() {
		return nil
	}
	ctx, job, interval := r.ctx, r.refreshJob, r.refreshInterval
	return func() tea.Msg {
		job.Start(ctx, interval)
		return nil
	}
}

// cmdEndSession stops background work and clears per-session state before
// nav is issued. logout is false when the session is already gone.
func (r RootModel) cmdEndSession(nav NavigateTo, logout bool) tea.Cmd {
	ctx, session, catalog, job := r.ctx, r.session, r.catalog, r.refreshJob
	return func() tea.Msg {
		job.Stop()
		if logout {
			session.Logout(ctx)
		}
		catalog.Reset()
		return nav
	}
}

func (r RootModel) isMenuPage() bool {
	_, ok := r.current.(*MenuModel)
	return ok
}

func cmdRestore(ctx context.Context, session service.SessionService) tea.Cmd {
	return func() tea.Msg {
		return restoredMsg{session: session.Restore(ctx)}
	}
}

func waitForExpiry(ctx context.Context, expired <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-ctx.Done():
			return nil
		case <-expired:
			return sessionExpiredMsg{}
		}
	}
}

func waitForRefresh(ctx context.Context, results <-chan error) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-ctx.Done():
			return nil
		case err := <-results:
			return refreshResultMsg{err: err}
		}
	}
}
