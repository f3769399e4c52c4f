package app_test

import (
	"context"
	"testing"

	"invoiceease/internal/app"
	"invoiceease/internal/core"
	"invoiceease/internal/export"
	"invoiceease/internal/storage"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(t *testing.T) app.ApplicationService {
	t.Helper()
	exporter := export.NewExporter(export.TextRenderer{}, t.TempDir())
	return app.NewAppService(storage.NewMemoryStore(), exporter, zerolog.Nop())
}

func TestAppService_SignUpProfileClientScenario(t *testing.T) {
	ctx := context.Background()
	svc := newApp(t)

	session, err := svc.SignUp(ctx, app.SignUpRequest{Email: "a@x.com", ProfileName: "Acme"})
	require.NoError(t, err)
	require.NotNil(t, session.User)
	assert.Nil(t, session.ActiveProfile)

	profile, err := svc.CreateProfile(ctx, app.ProfileRequest{Name: "Acme Co"})
	require.NoError(t, err)

	_, err = svc.AddClient(ctx, app.ClientRequest{Name: "Bob"})
	require.NoError(t, err)

	clients, err := svc.ListClients(ctx)
	require.NoError(t, err)
	require.Len(t, clients.Clients, 1)
	assert.Equal(t, "Bob", clients.Clients[0].Name)

	// creating a second profile makes it active; client list is now empty
	_, err = svc.CreateProfile(ctx, app.ProfileRequest{Name: "Side Hustle"})
	require.NoError(t, err)
	clients, err = svc.ListClients(ctx)
	require.NoError(t, err)
	assert.Empty(t, clients.Clients)

	// switching back restores the original collection
	require.NoError(t, svc.SetActiveProfile(ctx, profile.Profile.ID))
	clients, err = svc.ListClients(ctx)
	require.NoError(t, err)
	require.Len(t, clients.Clients, 1)
}

func TestAppService_SignInUnknownEmailLeavesSessionUnset(t *testing.T) {
	ctx := context.Background()
	svc := newApp(t)

	_, err := svc.SignIn(ctx, "ghost@x.com")
	assert.ErrorIs(t, err, core.ErrUserNotFound)

	session, err := svc.Session(ctx)
	require.NoError(t, err)
	assert.Nil(t, session.User)
}

func TestAppService_DocumentLifecycleRecordsActivity(t *testing.T) {
	ctx := context.Background()
	svc := newApp(t)

	_, err := svc.SignUp(ctx, app.SignUpRequest{Email: "a@x.com", ProfileName: "Acme"})
	require.NoError(t, err)
	_, err = svc.CreateProfile(ctx, app.ProfileRequest{Name: "Acme Co"})
	require.NoError(t, err)

	doc, err := svc.CreateDocument(ctx, app.DocumentRequest{
		Number:     "INV-001",
		ClientName: "Bob",
		LineItems: []core.LineItem{
			{Description: "work", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(10)},
		},
		TaxRate: decimal.NewFromInt(10),
	})
	require.NoError(t, err)
	assert.True(t, doc.Document.TotalAmount.Equal(decimal.NewFromInt(22)))

	_, err = svc.RecordPayment(ctx, app.PaymentRequest{
		InvoiceNumber: "INV-001",
		AmountPaid:    decimal.NewFromInt(22),
		PaymentMethod: "bank transfer",
	})
	require.NoError(t, err)

	path, err := svc.ExportDocument(ctx, doc.Document.ID)
	require.NoError(t, err)
	assert.FileExists(t, path)

	feed, err := svc.ActivityFeed(ctx)
	require.NoError(t, err)
	require.Len(t, feed.Events, 3)
	// newest first: download, payment, create
	assert.Equal(t, core.ActivityDownloaded, feed.Events[0].Type)
	assert.Equal(t, core.ActivityPayment, feed.Events[1].Type)
	assert.Equal(t, core.ActivityCreated, feed.Events[2].Type)
}

func TestAppService_ExportUnknownDocument(t *testing.T) {
	ctx := context.Background()
	svc := newApp(t)

	_, err := svc.SignUp(ctx, app.SignUpRequest{Email: "a@x.com", ProfileName: "Acme"})
	require.NoError(t, err)

	_, err = svc.ExportDocument(ctx, "no-such-id")
	assert.ErrorIs(t, err, export.ErrElementNotFound)
}

func TestAppService_ActivityFeedFollowsUserNotProfile(t *testing.T) {
	ctx := context.Background()
	svc := newApp(t)

	_, err := svc.SignUp(ctx, app.SignUpRequest{Email: "a@x.com", ProfileName: "Acme"})
	require.NoError(t, err)
	_, err = svc.CreateProfile(ctx, app.ProfileRequest{Name: "Acme Co"})
	require.NoError(t, err)
	_, err = svc.AddClient(ctx, app.ClientRequest{Name: "Bob"})
	require.NoError(t, err)

	// a second profile sees the same feed (user-scoped)
	_, err = svc.CreateProfile(ctx, app.ProfileRequest{Name: "Other Co"})
	require.NoError(t, err)
	feed, err := svc.ActivityFeed(ctx)
	require.NoError(t, err)
	assert.Len(t, feed.Events, 1)

	// a different user starts with an empty feed
	require.NoError(t, svc.SignOut(ctx))
	_, err = svc.SignUp(ctx, app.SignUpRequest{Email: "b@x.com", ProfileName: "Beta"})
	require.NoError(t, err)
	feed, err = svc.ActivityFeed(ctx)
	require.NoError(t, err)
	assert.Empty(t, feed.Events)
}

func TestAppService_AnonymousScopeBeforeSignIn(t *testing.T) {
	ctx := context.Background()
	svc := newApp(t)

	// without a session, data lands in the anonymous scope
	_, err := svc.AddClient(ctx, app.ClientRequest{Name: "Walk-in"})
	require.NoError(t, err)

	clients, err := svc.ListClients(ctx)
	require.NoError(t, err)
	require.Len(t, clients.Clients, 1)

	// signing up moves the scope; the anonymous client is no longer visible
	_, err = svc.SignUp(ctx, app.SignUpRequest{Email: "a@x.com", ProfileName: "Acme"})
	require.NoError(t, err)
	clients, err = svc.ListClients(ctx)
	require.NoError(t, err)
	assert.Empty(t, clients.Clients)
}
