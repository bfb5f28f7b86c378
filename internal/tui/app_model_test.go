package tui

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brclaisa/panther-backoffice/internal/api"
)

func TestStartup_LoadsDashboardAndPaymentMethods(t *testing.T) {
	backend := newStubBackend(t)
	d := newTestDriver(t, backend)

	assert.Equal(t, SectionDashboard, d.ActiveSection())
	assert.Equal(t, 1, backend.calls("GET", "/reports/dashboard/summary"))
	assert.Equal(t, 1, backend.calls("GET", "/sales/today/summary"))
	assert.Equal(t, 1, backend.calls("GET", "/payments/methods/"))

	require.Len(t, d.State().PaymentMethods, 2)
	assert.Equal(t, "Dinheiro", d.State().PaymentMethods[0].Name)
	assert.Empty(t, d.Alerts())
}

func TestStartup_PaymentMethodFailureIsSilent(t *testing.T) {
	backend := newStubBackend(t)
	backend.override("GET", "/payments/methods/", http.StatusInternalServerError, `{"detail":"boom"}`)
	d := newTestDriver(t, backend)

	assert.Empty(t, d.State().PaymentMethods)
	assert.Empty(t, d.Alerts())
}

func TestNavigation_SectionKeys(t *testing.T) {
	backend := newStubBackend(t)
	d := newTestDriver(t, backend)

	d.PressKey('2')
	assert.Equal(t, SectionProducts, d.ActiveSection())
	assert.Equal(t, 1, backend.calls("GET", "/products/"))

	d.PressKey('4')
	assert.Equal(t, SectionSales, d.ActiveSection())
	assert.Equal(t, 1, backend.calls("GET", "/sales/"))

	d.PressKey('5')
	assert.Equal(t, SectionInventory, d.ActiveSection())
	assert.Equal(t, 1, backend.calls("GET", "/inventory/"))
}

func TestNavigation_TabCyclesSections(t *testing.T) {
	backend := newStubBackend(t)
	d := newTestDriver(t, backend)

	d.PressTab()
	assert.Equal(t, SectionProducts, d.ActiveSection())

	d.SendKey(keyShiftTab())
	assert.Equal(t, SectionDashboard, d.ActiveSection())

	// Wraps around backwards to the last section.
	d.SendKey(keyShiftTab())
	assert.Equal(t, SectionReports, d.ActiveSection())
}

func TestNavigation_UnknownSectionIgnored(t *testing.T) {
	backend := newStubBackend(t)
	d := newTestDriver(t, backend)
	gen := d.Gen()

	d.Send(activateSectionMsg{section: Section("configuracoes")})

	assert.Equal(t, SectionDashboard, d.ActiveSection())
	assert.Equal(t, gen, d.Gen())
	assert.Empty(t, d.Alerts())
}

func TestNavigation_ReactivationReloads(t *testing.T) {
	backend := newStubBackend(t)
	d := newTestDriver(t, backend)

	d.PressKey('2')
	d.PressKey('2')

	assert.Equal(t, SectionProducts, d.ActiveSection())
	assert.Equal(t, 2, backend.calls("GET", "/products/"))
}

func TestStaleLoadResultDiscarded(t *testing.T) {
	backend := newStubBackend(t)
	d := newTestDriver(t, backend)

	d.PressKey('2')
	view := d.appModel().view.(*productsView)
	require.Len(t, view.products, 2)

	// A result tagged with an older generation must not overwrite the
	// current view's data.
	d.Send(productsLoadedMsg{gen: d.Gen() - 1, products: nil})

	view = d.appModel().view.(*productsView)
	assert.Len(t, view.products, 2)
}

func TestSectionLoadFailureRaisesAlert(t *testing.T) {
	backend := newStubBackend(t)
	backend.override("GET", "/products/", http.StatusInternalServerError, `{"detail":"boom"}`)
	d := newTestDriver(t, backend)

	d.PressKey('2')

	require.Len(t, d.Alerts(), 1)
	assert.Equal(t, AlertDanger, d.Alerts()[0].Kind)
	assert.Equal(t, "Erro ao carregar produtos", d.Alerts()[0].Message)
}

func TestDashboard_SummaryFailureRaisesAlert(t *testing.T) {
	backend := newStubBackend(t)
	backend.override("GET", "/reports/dashboard/summary", http.StatusInternalServerError, `{"detail":"boom"}`)
	d := newTestDriver(t, backend)

	require.Len(t, d.Alerts(), 1)
	assert.Equal(t, "Erro ao carregar dados do dashboard", d.Alerts()[0].Message)
}

func TestDashboard_TodayFailureIsTolerated(t *testing.T) {
	backend := newStubBackend(t)
	backend.override("GET", "/sales/today/summary", http.StatusInternalServerError, `{"detail":"boom"}`)
	d := newTestDriver(t, backend)

	// Summary stays on screen, no alert for the secondary fetch.
	assert.Empty(t, d.Alerts())
	assert.Contains(t, d.View(), "Faturamento")
}

func TestReports_ConcurrentLoadAllOrNothing(t *testing.T) {
	backend := newStubBackend(t)
	backend.override("GET", "/reports/sales", http.StatusInternalServerError, `{"detail":"boom"}`)
	d := newTestDriver(t, backend)

	d.PressKey('6')

	require.Len(t, d.Alerts(), 1)
	assert.Equal(t, "Erro ao carregar relatórios", d.Alerts()[0].Message)

	view := d.appModel().view.(*reportsView)
	assert.Nil(t, view.data)
}

func TestReports_LoadsAllThreeReports(t *testing.T) {
	backend := newStubBackend(t)
	d := newTestDriver(t, backend)

	d.PressKey('6')

	assert.Empty(t, d.Alerts())
	assert.Equal(t, 1, backend.calls("GET", "/reports/sales"))
	assert.Equal(t, 1, backend.calls("GET", "/reports/products/top-selling"))
	assert.Equal(t, 1, backend.calls("GET", "/reports/inventory/low-stock"))
	assert.Contains(t, d.View(), "Café Premium")
}

// ── alerts ───────────────────────────────────────────────────────────────────

func TestAlerts_AccumulateOldestFirst(t *testing.T) {
	backend := newStubBackend(t)
	d := newTestDriver(t, backend)

	d.Send(alertMsg{kind: AlertInfo, message: "primeiro"})
	d.Send(alertMsg{kind: AlertSuccess, message: "segundo"})

	require.Len(t, d.Alerts(), 2)
	assert.Equal(t, "primeiro", d.Alerts()[0].Message)
	assert.Equal(t, "segundo", d.Alerts()[1].Message)
}

func TestAlerts_DismissOldestWithKey(t *testing.T) {
	backend := newStubBackend(t)
	d := newTestDriver(t, backend)

	d.Send(alertMsg{kind: AlertInfo, message: "primeiro"})
	d.Send(alertMsg{kind: AlertInfo, message: "segundo"})

	d.PressKey('x')

	require.Len(t, d.Alerts(), 1)
	assert.Equal(t, "segundo", d.Alerts()[0].Message)
}

func TestAlerts_ExpiryRemovesAlert(t *testing.T) {
	backend := newStubBackend(t)
	d := newTestDriver(t, backend)

	d.Send(alertMsg{kind: AlertInfo, message: "até logo"})
	require.Len(t, d.Alerts(), 1)
	id := d.Alerts()[0].ID

	d.Send(alertExpiredMsg{id: id})
	assert.Empty(t, d.Alerts())
}

func TestAlerts_LateExpiryTickIsHarmless(t *testing.T) {
	backend := newStubBackend(t)
	d := newTestDriver(t, backend)

	d.Send(alertMsg{kind: AlertInfo, message: "um"})
	id := d.Alerts()[0].ID
	d.PressKey('x')
	require.Empty(t, d.Alerts())

	d.Send(alertMsg{kind: AlertInfo, message: "dois"})
	d.Send(alertExpiredMsg{id: id})

	require.Len(t, d.Alerts(), 1)
	assert.Equal(t, "dois", d.Alerts()[0].Message)
}

// ── modal handling ───────────────────────────────────────────────────────────

func TestModal_CapturesSectionKeys(t *testing.T) {
	backend := newStubBackend(t)
	d := newTestDriver(t, backend)

	d.PressKey('2')
	d.PressKey('a')
	require.True(t, d.ModalOpen())
	assert.Equal(t, ModalProductForm, d.OpenModalKind())

	// Navigation keys go to the dialog, not the section switcher.
	d.PressKey('3')
	assert.True(t, d.ModalOpen())
	assert.Equal(t, SectionProducts, d.ActiveSection())
	assert.Equal(t, 0, backend.calls("GET", "/customers/"))
}

func TestModal_EscCancelsWithoutRequest(t *testing.T) {
	backend := newStubBackend(t)
	d := newTestDriver(t, backend)

	d.PressKey('2')
	d.PressKey('a')
	require.True(t, d.ModalOpen())

	d.PressEsc()

	assert.False(t, d.ModalOpen())
	assert.Equal(t, 0, backend.calls("POST", "/products/"))
	assert.Empty(t, d.Alerts())
}

func TestModal_MutationFailureReopensWithAlert(t *testing.T) {
	backend := newStubBackend(t)
	d := newTestDriver(t, backend)
	state := d.State()

	d.Send(mutationFailedMsg{
		kind:    AlertWarning,
		message: "Preço inválido.",
		retry: func() Modal {
			return newProductCreateModal(state, api.ProductForm{Name: "Café", Price: "abc"})
		},
	})

	require.True(t, d.ModalOpen())
	assert.Equal(t, ModalProductForm, d.OpenModalKind())
	require.Len(t, d.Alerts(), 1)
	assert.Equal(t, AlertWarning, d.Alerts()[0].Kind)
	assert.Equal(t, "Preço inválido.", d.Alerts()[0].Message)
}

func TestReceiptModal_OpensAndClosesOnAnyKey(t *testing.T) {
	backend := newStubBackend(t)
	d := newTestDriver(t, backend)

	d.PressKey('4')
	d.PressEnter()

	require.True(t, d.ModalOpen())
	assert.Equal(t, ModalReceipt, d.OpenModalKind())
	assert.Equal(t, 1, backend.calls("GET", "/sales/1/receipt"))
	assert.Contains(t, d.appModel().modal.View(), "Maria Silva")

	d.PressKey('z')
	assert.False(t, d.ModalOpen())
}

func TestReceiptFetchFailureRaisesAlert(t *testing.T) {
	backend := newStubBackend(t)
	backend.override("GET", "/sales/1/receipt", http.StatusInternalServerError, `{"detail":"boom"}`)
	d := newTestDriver(t, backend)

	d.PressKey('4')
	d.PressEnter()

	assert.False(t, d.ModalOpen())
	require.Len(t, d.Alerts(), 1)
	assert.Equal(t, "Erro ao carregar recibo", d.Alerts()[0].Message)
}

// ── quitting ─────────────────────────────────────────────────────────────────

func TestQuitOnQ(t *testing.T) {
	backend := newStubBackend(t)
	d := newTestDriver(t, backend)

	d.PressKey('q')
	assert.True(t, d.IsQuitting())
}

func TestQuitOnCtrlC(t *testing.T) {
	backend := newStubBackend(t)
	d := newTestDriver(t, backend)

	d.PressCtrlC()
	assert.True(t, d.IsQuitting())
}
