package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-sweet-shop/internal/service"
	"github.com/MKhiriev/go-sweet-shop/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type shopMode int

const (
	shopBrowse shopMode = iota
	shopSearch
	shopPrice
)

const (
	priceMin = iota
	priceMax
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// ShopModel is the shopper's dashboard: the catalog with filters, stats and
// purchase.
type ShopModel struct {
	ctx       context.Context
	session   service.SessionService
	catalog   service.CatalogService
	inventory service.InventoryService

	mode       shopMode
	search     textinput.Model
	priceForm  inputGroup
	spinner    spinner.Model
	idx        int
	loading    bool
	purchasing bool
	notice     Notice
	noticeSeq  int
}

func NewShopModel(
	ctx context.Context,
	session service.SessionService,
	catalog service.CatalogService,
	inventory service.InventoryService,
) *ShopModel {
	search := textinput.New()
	search.Placeholder = "search sweets"
	search.Prompt = "/ "
	search.Width = 30

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &ShopModel{
		ctx:       ctx,
		session:   session,
		catalog:   catalog,
		inventory: inventory,
		search:    search,
		spinner:   s,
		priceForm: newInputGroup(
			inputField{label: "Min price", placeholder: "0", charLimit: 10},
			inputField{label: "Max price", placeholder: "100", charLimit: 10},
		),
	}
}

func (m *ShopModel) Init() tea.Cmd {
	m.mode = shopBrowse
	m.search.SetValue(m.catalog.Criteria().NameQuery)
	m.search.Blur()
	m.loading = true
	return tea.Batch(m.spinner.Tick, cmdRefresh(m.ctx, m.catalog))
}

func (m *ShopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case Notice:
		return m, m.setNotice(msg)
	case sweetsLoadedMsg:
		return m, m.applyLoad(msg.err)
	case refreshResultMsg:
		return m, m.applyLoad(msg.err)
	case purchaseDoneMsg:
		m.purchasing = false
		if msg.err != nil {
			return m, m.setNotice(Notice{Text: describeError(msg.err, service.MsgPurchaseFailed), Error: true})
		}
		return m, m.setNotice(Notice{Text: fmt.Sprintf("Purchased %s!", msg.sweet.Name)})
	case clearStatusMsg:
		if msg.seq == m.noticeSeq {
			m.notice = Notice{}
		}
		return m, nil
	case spinner.TickMsg:
		if !m.loading && !m.purchasing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		switch m.mode {
		case shopSearch:
			return m.updateSearch(msg)
		case shopPrice:
			return m.updatePrice(msg)
		default:
			return m.updateBrowse(msg)
		}
	}

	if m.mode == shopSearch {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *ShopModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.catalog.Visible()

	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(visible)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.search):
		m.mode = shopSearch
		return m, m.search.Focus()
	case key.Matches(msg, keys.category):
		if m.catalog.SetCategory(nextCategory(m.catalog.Criteria().Category)) {
			return m, m.startLoad()
		}
		m.clampCursor()
	case key.Matches(msg, keys.price):
		criteria := m.catalog.Criteria()
		m.priceForm.reset()
		m.priceForm.setValue(priceMin, strconv.FormatFloat(criteria.MinPrice, 'f', -1, 64))
		m.priceForm.setValue(priceMax, strconv.FormatFloat(criteria.MaxPrice, 'f', -1, 64))
		m.mode = shopPrice
		return m, textinput.Blink
	case key.Matches(msg, keys.buy):
		if m.purchasing || m.idx >= len(visible) {
			return m, nil
		}
		m.purchasing = true
		return m, tea.Batch(m.spinner.Tick, cmdPurchase(m.ctx, m.inventory, visible[m.idx].ID))
	case key.Matches(msg, keys.copy):
		if m.idx >= len(visible) {
			return m, m.setNotice(Notice{Text: "Nothing to copy", Error: true})
		}
		if err := writeClipboard(describeSweet(visible[m.idx])); err != nil {
			return m, m.setNotice(Notice{Text: "Copy failed: " + err.Error(), Error: true})
		}
		return m, m.setNotice(Notice{Text: "Copied " + visible[m.idx].Name})
	case key.Matches(msg, keys.refresh):
		return m, m.startLoad()
	case key.Matches(msg, keys.logout):
		return m, func() tea.Msg { return logoutMsg{} }
	}
	return m, nil
}

func (m *ShopModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.esc) || key.Matches(msg, keys.enter) {
		m.mode = shopBrowse
		m.search.Blur()
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() == before {
		return m, cmd
	}

	if m.catalog.SetNameQuery(m.search.Value()) {
		return m, tea.Batch(cmd, m.startLoad())
	}
	m.clampCursor()
	return m, cmd
}

func (m *ShopModel) updatePrice(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.mode = shopBrowse
		return m, nil
	case key.Matches(msg, keys.tab):
		m.priceForm.next()
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.priceForm.prev()
		return m, nil
	case key.Matches(msg, keys.enter):
		minPrice, errMin := strconv.ParseFloat(m.priceForm.trimmed(priceMin), 64)
		maxPrice, errMax := strconv.ParseFloat(m.priceForm.trimmed(priceMax), 64)
		if errMin != nil || errMax != nil {
			return m, m.setNotice(Notice{Text: "Prices must be numbers", Error: true})
		}
		m.mode = shopBrowse
		m.catalog.SetPriceRange(minPrice, maxPrice)
		return m, m.startLoad()
	}
	return m, m.priceForm.update(msg)
}

func (m *ShopModel) View() string {
	var b strings.Builder

	session := m.session.Snapshot()
	if session.Identity != nil {
		b.WriteString("Hello, ")
		b.WriteString(session.Identity.DisplayName())
		b.WriteString("\n\n")
	}

	stats := m.catalog.Stats()
	b.WriteString(fmt.Sprintf("Available: %d │ Categories: %d │ Total items: %d\n", stats.Available, stats.Categories, stats.Total))

	criteria := m.catalog.Criteria()
	b.WriteString(fmt.Sprintf("%s │ Category: %s │ Price: %s - %s │ Filter: %s\n",
		m.search.View(),
		categoryLabel(criteria.Category),
		formatPrice(criteria.MinPrice),
		formatPrice(criteria.MaxPrice),
		m.catalog.Mode(),
	))

	if m.mode == shopPrice {
		b.WriteString("\n")
		b.WriteString(m.priceForm.view())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	visible := m.catalog.Visible()
	switch {
	case m.loading && len(visible) == 0:
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading sweets...")
	case len(visible) == 0:
		b.WriteString("No sweets found")
	default:
		for i, s := range visible {
			line := fmt.Sprintf("%s %-24s %-12s %8s  %s",
				sweetIcon(s),
				fitText(s.Name, 24),
				fitText(s.Category, 12),
				formatPrice(s.Price),
				stockLabel(s),
			)
			if i == m.idx {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
	}

	if m.purchasing {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" Purchasing...")
	}
	if n := renderNotice(m.notice); n != "" {
		b.WriteString("\n")
		b.WriteString(n)
	}

	help := "↑/↓: move │ b: buy │ /: search │ c: category │ p: price │ y: copy │ s: refresh │ l: logout"
	switch m.mode {
	case shopSearch:
		help = "type to search │ enter/esc: done"
	case shopPrice:
		help = "tab: next field │ enter: apply │ esc: cancel"
	}
	return renderPage("SWEET SHOP", strings.TrimRight(b.String(), "\n"), help)
}

func (m *ShopModel) startLoad() tea.Cmd {
	m.loading = true
	return tea.Batch(m.spinner.Tick, cmdRefresh(m.ctx, m.catalog))
}

// applyLoad handles the end of a fetch. Superseded fetches are silent.
func (m *ShopModel) applyLoad(err error) tea.Cmd {
	if errors.Is(err, service.ErrStaleResult) {
		return nil
	}
	m.loading = false
	m.clampCursor()
	if err != nil {
		return m.setNotice(Notice{Text: service.MsgLoadSweetsFailed, Error: true})
	}
	return nil
}

func (m *ShopModel) setNotice(n Notice) tea.Cmd {
	m.noticeSeq++
	m.notice = n
	return clearStatusAfter(m.noticeSeq)
}

func (m *ShopModel) clampCursor() {
	n := len(m.catalog.Visible())
	if m.idx >= n {
		m.idx = n - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func sweetIcon(s models.Sweet) string {
	return service.IconFor(s.ID)
}

func describeSweet(s models.Sweet) string {
	return fmt.Sprintf("%s (%s) %s", s.Name, s.Category, formatPrice(s.Price))
}

func cmdRefresh(ctx context.Context, catalog service.CatalogService) tea.Cmd {
	return func() tea.Msg {
		return sweetsLoadedMsg{err: catalog.Refresh(ctx)}
	}
}

func cmdPurchase(ctx context.Context, inventory service.InventoryService, id int64) tea.Cmd {
	return func() tea.Msg {
		sweet, err := inventory.Purchase(ctx, id)
		return purchaseDoneMsg{sweet: sweet, err: err}
	}
}
