// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-sweet-shop/internal/service"
	"github.com/MKhiriev/go-sweet-shop/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type inventoryMode int

const (
	inventoryBrowse inventoryMode = iota
	inventorySearch
	inventoryForm
	inventoryRestock
	inventoryConfirmDelete
)

// InventoryModel is the admin dashboard: stock summary, a filterable table
// and the add, edit, restock and delete dialogs.
type InventoryModel struct {
	ctx       context.Context
	session   service.SessionService
	catalog   service.CatalogService
	inventory service.InventoryService

	mode      inventoryMode
	table     table.Model
	search    textinput.Model
	category  string
	form      sweetForm
	restock   restockForm
	confirm   confirmModel
	visible   []models.Sweet
	loading   bool
	notice    Notice
	noticeSeq int
}

func NewInventoryModel(
	ctx context.Context,
	session service.SessionService,
	catalog service.CatalogService,
	inventory service.InventoryService,
) *InventoryModel {
	search := textinput.New()
	search.Placeholder = "search by name"
	search.Prompt = "/ "
	search.Width = 30

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "ID", Width: 5},
			{Title: "", Width: 3},
			{Title: "Name", Width: 24},
			{Title: "Category", Width: 12},
			{Title: "Price", Width: 9},
			{Title: "Stock", Width: 14},
		}),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	return &InventoryModel{
		ctx:       ctx,
		session:   session,
		catalog:   catalog,
		inventory: inventory,
		table:     t,
		search:    search,
	}
}

func (m *InventoryModel) Init() tea.Cmd {
	m.mode = inventoryBrowse
	m.search.Blur()
	m.loading = true
	return cmdRefresh(m.ctx, m.catalog)
}

func (m *InventoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case Notice:
		return m, m.setNotice(msg)
	case sweetsLoadedMsg:
		return m, m.applyLoad(msg.err)
	case refreshResultMsg:
		return m, m.applyLoad(msg.err)
	case mutationDoneMsg:
		return m, m.applyMutation(msg)
	case clearStatusMsg:
		if msg.seq == m.noticeSeq {
			m.notice = Notice{}
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.table.SetHeight(max(5, msg.Height-16))
		return m, nil
	case tea.KeyMsg:
		switch m.mode {
		case inventorySearch:
			return m.updateSearch(msg)
		case inventoryForm:
			return m.updateForm(msg)
		case inventoryRestock:
			return m.updateRestock(msg)
		case inventoryConfirmDelete:
			return m.updateConfirm(msg)
		default:
			return m.updateBrowse(msg)
		}
	}
	return m, nil
}

func (m *InventoryModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.search):
		m.mode = inventorySearch
		return m, m.search.Focus()
	case key.Matches(msg, keys.category):
		m.category = nextCategory(m.category)
		m.syncRows()
		return m, nil
	case key.Matches(msg, keys.newItem):
		m.form = newAddSweetForm()
		m.mode = inventoryForm
		return m, textinput.Blink
	case key.Matches(msg, keys.edit):
		if s, ok := m.selected(); ok {
			m.form = newEditSweetForm(s)
			m.mode = inventoryForm
			return m, textinput.Blink
		}
		return m, nil
	case key.Matches(msg, keys.restock):
		if s, ok := m.selected(); ok {
			m.restock = newRestockForm(s)
			m.mode = inventoryRestock
			return m, textinput.Blink
		}
		return m, nil
	case key.Matches(msg, keys.delete):
		if s, ok := m.selected(); ok {
			m.confirm = confirmModel{sweet: s}
			m.mode = inventoryConfirmDelete
		}
		return m, nil
	case key.Matches(msg, keys.refresh):
		m.loading = true
		return m, cmdRefresh(m.ctx, m.catalog)
	case key.Matches(msg, keys.logout):
		return m, func() tea.Msg { return logoutMsg{} }
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *InventoryModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.esc) || key.Matches(msg, keys.enter) {
		m.mode = inventoryBrowse
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.syncRows()
	return m, cmd
}

func (m *InventoryModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		if !m.form.submitting {
			m.mode = inventoryBrowse
		}
		return m, nil
	case key.Matches(msg, keys.tab):
		m.form.inputs.next()
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.form.inputs.prev()
		return m, nil
	case key.Matches(msg, keys.enter):
		if m.form.submitting {
			return m, nil
		}
		m.form.errMsg = ""
		if m.form.op == opEdit {
			req, err := m.form.updateRequest()
			if err != nil {
				m.form.errMsg = describeError(err, service.FailedToMessage(opEdit))
				return m, nil
			}
			m.form.submitting = true
			return m, cmdUpdateSweet(m.ctx, m.inventory, m.form.sweetID, req)
		}

		req, err := m.form.createRequest()
		if err != nil {
			m.form.errMsg = describeError(err, service.FailedToMessage(opAdd))
			return m, nil
		}
		m.form.submitting = true
		return m, cmdCreateSweet(m.ctx, m.inventory, req)
	}
	return m, m.form.inputs.update(msg)
}

func (m *InventoryModel) updateRestock(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		if !m.restock.submitting {
			m.mode = inventoryBrowse
		}
		return m, nil
	case key.Matches(msg, keys.enter):
		if m.restock.submitting {
			return m, nil
		}
		req, err := m.restock.request()
		if err != nil {
			m.restock.errMsg = describeError(err, service.MsgRestockFailed)
			return m, nil
		}
		m.restock.errMsg = ""
		m.restock.submitting = true
		return m, cmdRestockSweet(m.ctx, m.inventory, req)
	}
	return m, m.restock.inputs.update(msg)
}

func (m *InventoryModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.mode = inventoryBrowse
		return m, cmdDeleteSweet(m.ctx, m.inventory, m.confirm.sweet)
	case key.Matches(msg, keys.no):
		m.mode = inventoryBrowse
	}
	return m, nil
}

// applyMutation closes the dialog on success. Failures keep the dialog
// open with the reason, except delete which has none.
func (m *InventoryModel) applyMutation(msg mutationDoneMsg) tea.Cmd {
	m.form.submitting = false
	m.restock.submitting = false

	if msg.err != nil && !errors.Is(msg.err, service.ErrCatalogRefresh) {
		switch msg.op {
		case opAdd, opEdit:
			m.form.errMsg = describeError(msg.err, service.FailedToMessage(msg.op))
			return nil
		case opRestock:
			m.restock.errMsg = describeError(msg.err, service.MsgRestockFailed)
			return nil
		default:
			return m.setNotice(Notice{Text: describeError(msg.err, service.MsgDeleteFailed), Error: true})
		}
	}

	m.mode = inventoryBrowse
	m.syncRows()
	if msg.err != nil {
		return m.setNotice(Notice{Text: service.MsgLoadSweetsFailed, Error: true})
	}
	return m.setNotice(Notice{Text: mutationSuccessText(msg.op)})
}

func (m *InventoryModel) View() string {
	var b strings.Builder

	session := m.session.Snapshot()
	if session.Identity != nil {
		b.WriteString("Signed in as ")
		b.WriteString(session.Identity.DisplayName())
		b.WriteString(" (admin)\n\n")
	}

	stats := m.catalog.AdminStats()
	b.WriteString(fmt.Sprintf("Products: %d │ Inventory value: %s │ Out of stock: %d │ Low stock: %d\n",
		stats.TotalProducts, formatPrice(stats.TotalValue), stats.OutOfStock, stats.LowStock))
	b.WriteString(fmt.Sprintf("%s │ Category: %s\n\n", m.search.View(), categoryLabel(m.category)))

	switch m.mode {
	case inventoryForm:
		b.WriteString(m.form.view())
	case inventoryRestock:
		b.WriteString(m.restock.view())
	case inventoryConfirmDelete:
		b.WriteString(m.confirm.View())
	default:
		switch {
		case m.loading && len(m.visible) == 0:
			b.WriteString("Loading sweets...")
		case len(m.visible) == 0:
			b.WriteString("No sweets found")
		default:
			b.WriteString(m.table.View())
		}
	}

	if n := renderNotice(m.notice); n != "" {
		b.WriteString("\n\n")
		b.WriteString(n)
	}

	help := "↑/↓: move │ a: add │ e: edit │ r: restock │ d: delete │ /: search │ c: category │ s: refresh │ l: logout"
	switch m.mode {
	case inventorySearch:
		help = "type to search │ enter/esc: done"
	case inventoryForm, inventoryRestock:
		help = "tab: next field │ enter: save │ esc: cancel"
	case inventoryConfirmDelete:
		help = "y: delete │ n: keep"
	}
	return renderPage("INVENTORY", b.String(), help)
}

func (m *InventoryModel) applyLoad(err error) tea.Cmd {
	if errors.Is(err, service.ErrStaleResult) {
		return nil
	}
	m.loading = false
	m.syncRows()
	if err != nil {
		return m.setNotice(Notice{Text: service.MsgLoadSweetsFailed, Error: true})
	}
	return nil
}

// syncRows re-applies the name and category filter to the cached catalog.
func (m *InventoryModel) syncRows() {
	m.visible = m.catalog.AdminVisible(m.search.Value(), m.category)

	rows := make([]table.Row, 0, len(m.visible))
	for _, s := range m.visible {
		rows = append(rows, table.Row{
			strconv.FormatInt(s.ID, 10),
			sweetIcon(s),
			s.Name,
			s.Category,
			formatPrice(s.Price),
			plainStockLabel(s),
		})
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(max(0, len(rows)-1))
	}
}

func (m *InventoryModel) selected() (models.Sweet, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.visible) {
		return models.Sweet{}, false
	}
	return m.visible[idx], true
}

func (m *InventoryModel) setNotice(n Notice) tea.Cmd {
	m.noticeSeq++
	m.notice = n
	return clearStatusAfter(m.noticeSeq)
}

// plainStockLabel is stockLabel without colour; table cells are measured
// by byte width.
func plainStockLabel(s models.Sweet) string {
	switch {
	case s.Quantity == 0:
		return "out of stock"
	case s.Quantity < models.LowStockThreshold:
		return fmt.Sprintf("%d (low)", s.Quantity)
	default:
		return strconv.Itoa(s.Quantity)
	}
}

func mutationSuccessText(op string) string {
	switch op {
	case opAdd:
		return "Sweet added successfully!"
	case opEdit:
		return "Sweet updated successfully!"
	case opRestock:
		return "Sweet restocked successfully!"
	default:
		return "Sweet deleted successfully!"
	}
}

func cmdCreateSweet(ctx context.Context, inventory service.InventoryService, req models.CreateSweetRequest) tea.Cmd {
	return func() tea.Msg {
		sweet, err := inventory.Create(ctx, req)
		return mutationDoneMsg{op: opAdd, sweet: sweet, err: err}
	}
}

func cmdUpdateSweet(ctx context.Context, inventory service.InventoryService, id int64, req models.UpdateSweetRequest) tea.Cmd {
	return func() tea.Msg {
		sweet, err := inventory.Update(ctx, id, req)
		return mutationDoneMsg{op: opEdit, sweet: sweet, err: err}
	}
}

func cmdRestockSweet(ctx context.Context, inventory service.InventoryService, req models.RestockRequest) tea.Cmd {
	return func() tea.Msg {
		sweet, err := inventory.Restock(ctx, req)
		return mutationDoneMsg{op: opRestock, sweet: sweet, err: err}
	}
}

func cmdDeleteSweet(ctx context.Context, inventory service.InventoryService, sweet models.Sweet) tea.Cmd {
	return func() tea.Msg {
		err := inventory.Delete(ctx, sweet.ID)
		return mutationDoneMsg{op: opDelete, sweet: sweet, err: err}
	}
}
