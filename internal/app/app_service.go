package app

import (
	"context"
	"fmt"

	"invoiceease/internal/core"
	"invoiceease/internal/export"
	"invoiceease/internal/storage"

	"github.com/rs/zerolog"
)

type appService struct {
	store    storage.Store
	auth     core.AuthService
	profiles core.ProfileService
	exporter *export.Exporter
	log      zerolog.Logger
}

// NewAppService constructs an appService that satisfies ApplicationService.
func NewAppService(store storage.Store, exporter *export.Exporter, log zerolog.Logger) ApplicationService {
	return &appService{
		store:    store,
		auth:     core.NewAuthService(store, log),
		profiles: core.NewProfileService(store, log),
		exporter: exporter,
		log:      log,
	}
}

// currentScope derives the namespace scope for this call from the persisted
// session and active profile. It is re-derived on every operation, so a user
// or profile switch takes effect immediately — no stale cached namespace.
func (s *appService) currentScope(ctx context.Context) (core.Scope, error) {
	user, err := s.auth.CurrentUser(ctx)
	if err != nil {
		return core.Scope{}, err
	}
	profile, err := s.profiles.Active(ctx)
	if err != nil {
		return core.Scope{}, err
	}
	scope := core.Scope{UserID: core.IdentityKey(user)}
	if profile != nil {
		scope.ProfileID = profile.ID
	}
	return scope, nil
}

func (s *appService) session(ctx context.Context) (*SessionResult, error) {
	user, err := s.auth.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	profile, err := s.profiles.Active(ctx)
	if err != nil {
		return nil, err
	}
	return &SessionResult{User: user, ActiveProfile: profile}, nil
}

func (s *appService) SignUp(ctx context.Context, req SignUpRequest) (*SessionResult, error) {
	if _, err := s.auth.SignUp(ctx, req.Email, req.ProfileName); err != nil {
		return nil, err
	}
	return s.session(ctx)
}

func (s *appService) SignIn(ctx context.Context, email string) (*SessionResult, error) {
	if _, err := s.auth.SignIn(ctx, email); err != nil {
		return nil, err
	}
	return s.session(ctx)
}

func (s *appService) SignOut(ctx context.Context) error {
	return s.auth.SignOut(ctx)
}

func (s *appService) Session(ctx context.Context) (*SessionResult, error) {
	return s.session(ctx)
}

func (s *appService) CreateProfile(ctx context.Context, req ProfileRequest) (*ProfileResult, error) {
	profile, err := s.profiles.Create(ctx, core.ProfileInput{
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
		Phone:   req.Phone,
		LogoURL: req.LogoURL,
		TaxID:   req.TaxID,
	})
	if err != nil {
		return nil, err
	}
	return &ProfileResult{Profile: profile}, nil
}

func (s *appService) UpdateProfile(ctx context.Context, id string, req ProfileRequest) error {
	return s.profiles.Update(ctx, id, core.ProfileInput{
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
		Phone:   req.Phone,
		LogoURL: req.LogoURL,
		TaxID:   req.TaxID,
	})
}

func (s *appService) DeleteProfile(ctx context.Context, id string) error {
	return s.profiles.Delete(ctx, id)
}

func (s *appService) ListProfiles(ctx context.Context) (*ProfileListResult, error) {
	profiles, err := s.profiles.List(ctx)
	if err != nil {
		return nil, err
	}
	active, err := s.profiles.Active(ctx)
	if err != nil {
		return nil, err
	}
	result := &ProfileListResult{Profiles: profiles}
	if active != nil {
		result.ActiveID = active.ID
	}
	return result, nil
}

func (s *appService) SetActiveProfile(ctx context.Context, id string) error {
	return s.profiles.SetActive(ctx, id)
}

func (s *appService) ListClients(ctx context.Context) (*ClientListResult, error) {
	scope, err := s.currentScope(ctx)
	if err != nil {
		return nil, err
	}
	clients, err := core.NewClientService(s.store, scope, s.log).ListWithBillingTotals(ctx)
	if err != nil {
		return nil, err
	}
	return &ClientListResult{Clients: clients}, nil
}

func (s *appService) AddClient(ctx context.Context, req ClientRequest) (*ClientResult, error) {
	scope, err := s.currentScope(ctx)
	if err != nil {
		return nil, err
	}
	client, err := core.NewClientService(s.store, scope, s.log).Add(ctx, core.ClientInput{
		Name:    &req.Name,
		Email:   &req.Email,
		Phone:   &req.Phone,
		Address: &req.Address,
	})
	if err != nil {
		return nil, err
	}
	s.recordActivity(ctx, scope, core.ActivityClient, fmt.Sprintf("Added client %s", client.Name))
	return &ClientResult{Client: client}, nil
}

func (s *appService) UpdateClient(ctx context.Context, id string, input core.ClientInput) error {
	scope, err := s.currentScope(ctx)
	if err != nil {
		return err
	}
	return core.NewClientService(s.store, scope, s.log).Update(ctx, id, input)
}

func (s *appService) RemoveClient(ctx context.Context, id string) error {
	scope, err := s.currentScope(ctx)
	if err != nil {
		return err
	}
	return core.NewClientService(s.store, scope, s.log).Remove(ctx, id)
}

func (s *appService) ListDocuments(ctx context.Context) (*DocumentListResult, error) {
	scope, err := s.currentScope(ctx)
	if err != nil {
		return nil, err
	}
	documents, err := core.NewDocumentService(s.store, scope, s.log).List(ctx)
	if err != nil {
		return nil, err
	}
	return &DocumentListResult{Documents: documents}, nil
}

func (s *appService) GetDocument(ctx context.Context, id string) (*DocumentResult, error) {
	scope, err := s.currentScope(ctx)
	if err != nil {
		return nil, err
	}
	doc, err := core.NewDocumentService(s.store, scope, s.log).Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &DocumentResult{Document: doc}, nil
}

func (s *appService) CreateDocument(ctx context.Context, req DocumentRequest) (*DocumentResult, error) {
	scope, err := s.currentScope(ctx)
	if err != nil {
		return nil, err
	}

	kind := req.Kind
	if kind == "" {
		kind = core.KindInvoice
	}
	doc, err := core.NewDocumentService(s.store, scope, s.log).Add(ctx, core.DocumentInput{
		Kind:         &kind,
		Number:       &req.Number,
		ClientID:     &req.ClientID,
		ClientName:   &req.ClientName,
		IssueDate:    &req.IssueDate,
		DueDate:      &req.DueDate,
		Currency:     &req.Currency,
		Notes:        &req.Notes,
		LineItems:    req.LineItems,
		TaxRate:      &req.TaxRate,
		DiscountRate: &req.DiscountRate,
	})
	if err != nil {
		return nil, err
	}

	activityType := core.ActivityCreated
	if kind == core.KindEstimate {
		activityType = core.ActivityEstimate
	}
	s.recordActivity(ctx, scope, activityType, fmt.Sprintf("Created %s %s", kind, doc.Number))
	return &DocumentResult{Document: doc}, nil
}

func (s *appService) UpdateDocument(ctx context.Context, id string, input core.DocumentInput) error {
	scope, err := s.currentScope(ctx)
	if err != nil {
		return err
	}
	if err := core.NewDocumentService(s.store, scope, s.log).Update(ctx, id, input); err != nil {
		return err
	}
	s.recordActivity(ctx, scope, core.ActivityEdited, fmt.Sprintf("Edited document %s", id))
	return nil
}

func (s *appService) RemoveDocument(ctx context.Context, id string) error {
	scope, err := s.currentScope(ctx)
	if err != nil {
		return err
	}
	return core.NewDocumentService(s.store, scope, s.log).Remove(ctx, id)
}

func (s *appService) ExportDocument(ctx context.Context, id string) (string, error) {
	scope, err := s.currentScope(ctx)
	if err != nil {
		return "", err
	}
	doc, err := core.NewDocumentService(s.store, scope, s.log).Get(ctx, id)
	if err != nil {
		return "", err
	}
	if doc == nil {
		return "", export.ErrElementNotFound
	}
	profile, err := s.profiles.Active(ctx)
	if err != nil {
		return "", err
	}

	path, err := s.exporter.Export(ctx, doc, profile)
	if err != nil {
		return "", err
	}
	s.recordActivity(ctx, scope, core.ActivityDownloaded, fmt.Sprintf("Downloaded %s %s", doc.Kind, doc.Number))
	return path, nil
}

func (s *appService) ListReceipts(ctx context.Context) (*ReceiptListResult, error) {
	scope, err := s.currentScope(ctx)
	if err != nil {
		return nil, err
	}
	receipts, err := core.NewReceiptService(s.store, scope, s.log).List(ctx)
	if err != nil {
		return nil, err
	}
	return &ReceiptListResult{Receipts: receipts}, nil
}

func (s *appService) RecordPayment(ctx context.Context, req PaymentRequest) (*ReceiptResult, error) {
	scope, err := s.currentScope(ctx)
	if err != nil {
		return nil, err
	}
	receipt, err := core.NewReceiptService(s.store, scope, s.log).Add(ctx, core.ReceiptInput{
		InvoiceNumber: &req.InvoiceNumber,
		ClientName:    &req.ClientName,
		AmountPaid:    &req.AmountPaid,
		PaymentMethod: &req.PaymentMethod,
		PaymentDate:   &req.PaymentDate,
		Notes:         &req.Notes,
	})
	if err != nil {
		return nil, err
	}
	s.recordActivity(ctx, scope, core.ActivityPayment,
		fmt.Sprintf("Recorded payment %s for invoice %s", receipt.ReceiptNumber, req.InvoiceNumber))
	return &ReceiptResult{Receipt: receipt}, nil
}

func (s *appService) UpdateReceipt(ctx context.Context, id string, input core.ReceiptInput) error {
	scope, err := s.currentScope(ctx)
	if err != nil {
		return err
	}
	return core.NewReceiptService(s.store, scope, s.log).Update(ctx, id, input)
}

func (s *appService) RemoveReceipt(ctx context.Context, id string) error {
	scope, err := s.currentScope(ctx)
	if err != nil {
		return err
	}
	return core.NewReceiptService(s.store, scope, s.log).Remove(ctx, id)
}

func (s *appService) ListNotes(ctx context.Context) (*NoteListResult, error) {
	scope, err := s.currentScope(ctx)
	if err != nil {
		return nil, err
	}
	notes, err := core.NewNoteService(s.store, scope, s.log).List(ctx)
	if err != nil {
		return nil, err
	}
	return &NoteListResult{Notes: notes}, nil
}

func (s *appService) AddNote(ctx context.Context, content string) (*NoteResult, error) {
	scope, err := s.currentScope(ctx)
	if err != nil {
		return nil, err
	}
	note, err := core.NewNoteService(s.store, scope, s.log).Add(ctx, content)
	if err != nil {
		return nil, err
	}
	return &NoteResult{Note: note}, nil
}

func (s *appService) UpdateNote(ctx context.Context, id, content string) error {
	scope, err := s.currentScope(ctx)
	if err != nil {
		return err
	}
	return core.NewNoteService(s.store, scope, s.log).Update(ctx, id, content)
}

func (s *appService) RemoveNote(ctx context.Context, id string) error {
	scope, err := s.currentScope(ctx)
	if err != nil {
		return err
	}
	return core.NewNoteService(s.store, scope, s.log).Remove(ctx, id)
}

func (s *appService) ListTemplates(ctx context.Context) (*TemplateListResult, error) {
	scope, err := s.currentScope(ctx)
	if err != nil {
		return nil, err
	}
	templates, err := core.NewTemplateService(s.store, scope, s.log).List(ctx)
	if err != nil {
		return nil, err
	}
	return &TemplateListResult{Templates: templates}, nil
}

func (s *appService) AddTemplate(ctx context.Context, template core.CustomTemplate) (*TemplateResult, error) {
	scope, err := s.currentScope(ctx)
	if err != nil {
		return nil, err
	}
	created, err := core.NewTemplateService(s.store, scope, s.log).Add(ctx, template)
	if err != nil {
		return nil, err
	}
	return &TemplateResult{Template: created}, nil
}

func (s *appService) RemoveTemplate(ctx context.Context, id string) error {
	scope, err := s.currentScope(ctx)
	if err != nil {
		return err
	}
	return core.NewTemplateService(s.store, scope, s.log).Remove(ctx, id)
}

func (s *appService) ActivityFeed(ctx context.Context) (*ActivityResult, error) {
	scope, err := s.currentScope(ctx)
	if err != nil {
		return nil, err
	}
	events, err := core.NewActivityLog(s.store, scope, s.log).Events(ctx)
	if err != nil {
		return nil, err
	}
	return &ActivityResult{Events: events}, nil
}

// recordActivity appends to the user's feed. Feed failures are logged and
// swallowed: the primary mutation already succeeded and must not be
// reported as failed because the timeline write lost a race.
func (s *appService) recordActivity(ctx context.Context, scope core.Scope, kind core.ActivityType, description string) {
	if err := core.NewActivityLog(s.store, scope, s.log).Record(ctx, kind, description); err != nil {
		s.log.Warn().Err(err).Str("type", string(kind)).Msg("failed to record activity event")
	}
}
