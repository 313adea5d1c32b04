package impl

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"bakehouse/config"
	"bakehouse/internal/infra/catalog"
	"bakehouse/internal/infra/session"
)

// stubMailer records every send and answers with a fixed error.
type stubMailer struct {
	mu        sync.Mutex
	err       error
	templates []string
	params    []map[string]string
}

func (m *stubMailer) Send(ctx context.Context, templateID string, params map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.templates = append(m.templates, templateID)
	m.params = append(m.params, params)

	return m.err
}

func (m *stubMailer) sent() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.templates)
}

func testConfig() *config.Config {
	return &config.Config{
		Mail: &config.MailConfig{
			ServiceID:         "service_test",
			OrderTemplateID:   "template_order",
			ContactTemplateID: "template_contact",
			PublicKey:         "public_test",
			Timeout:           5 * time.Second,
		},
		Order: &config.OrderConfig{
			DeliveryMinimum:      "25",
			SessionTTL:           2 * time.Hour,
			SessionSweepInterval: 5 * time.Minute,
		},
	}
}

// inSeason falls inside the hamantaschen window, so every built-in menu is
// orderable.
var inSeason = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

func newTestOrderService(t *testing.T) (*orderService, *stubMailer) {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)
	store := session.NewStore(2*time.Hour, 5*time.Minute, logger)
	t.Cleanup(store.Close)

	mailer := &stubMailer{}
	service := &orderService{
		sessions:        store,
		catalog:         catalog.NewStaticCatalog(),
		mailer:          mailer,
		cfg:             testConfig(),
		logger:          logger,
		deliveryMinimum: decimal.NewFromInt(25),
		now:             func() time.Time { return inSeason },
	}

	return service, mailer
}
