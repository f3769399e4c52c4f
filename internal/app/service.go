package app

import (
	"context"

	"invoiceease/internal/core"
)

// ApplicationService is the single interface all UI adapters (CLI, web)
// call. It decouples presentation from business logic: implementations
// contain no fmt.Println and no display logic of any kind. Every data
// operation runs under the scope derived from the signed-in user and the
// active business profile at call time.
type ApplicationService interface {
	// SignUp registers a local account and signs it in.
	// Returns core.ErrDuplicateUser for an already-registered email.
	SignUp(ctx context.Context, req SignUpRequest) (*SessionResult, error)

	// SignIn starts a session for an existing account.
	// Returns core.ErrUserNotFound when no account matches.
	SignIn(ctx context.Context, email string) (*SessionResult, error)

	// SignOut ends the session. The account list is retained.
	SignOut(ctx context.Context) error

	// Session describes the current user and active profile; both may be
	// nil when signed out or before a profile is selected.
	Session(ctx context.Context) (*SessionResult, error)

	// CreateProfile adds a business profile and makes it active.
	// Returns core.ErrDuplicateProfileName on an exact name match.
	CreateProfile(ctx context.Context, req ProfileRequest) (*ProfileResult, error)

	// UpdateProfile merges the non-zero request fields into a profile.
	UpdateProfile(ctx context.Context, id string, req ProfileRequest) error

	// DeleteProfile removes a profile, moving the active selection to the
	// first remaining profile when the active one is deleted.
	DeleteProfile(ctx context.Context, id string) error

	// ListProfiles returns every business profile.
	ListProfiles(ctx context.Context) (*ProfileListResult, error)

	// SetActiveProfile selects the profile scoping subsequent operations.
	SetActiveProfile(ctx context.Context, id string) error

	// ListClients returns the scope's clients with derived billing totals.
	ListClients(ctx context.Context) (*ClientListResult, error)

	// AddClient creates a client in the current scope.
	AddClient(ctx context.Context, req ClientRequest) (*ClientResult, error)

	// UpdateClient merges input into a client of the current scope.
	UpdateClient(ctx context.Context, id string, input core.ClientInput) error

	// RemoveClient deletes a client of the current scope.
	RemoveClient(ctx context.Context, id string) error

	// ListDocuments returns the scope's invoices, LPOs and estimates.
	ListDocuments(ctx context.Context) (*DocumentListResult, error)

	// GetDocument returns one document, nil when the id is unknown.
	GetDocument(ctx context.Context, id string) (*DocumentResult, error)

	// CreateDocument adds a document; derived totals are computed on save.
	CreateDocument(ctx context.Context, req DocumentRequest) (*DocumentResult, error)

	// UpdateDocument merges input into a document and recomputes totals.
	UpdateDocument(ctx context.Context, id string, input core.DocumentInput) error

	// RemoveDocument deletes a document of the current scope.
	RemoveDocument(ctx context.Context, id string) error

	// ExportDocument renders a document to the export directory and returns
	// the written path. Returns export.ErrElementNotFound for unknown ids;
	// renderer failures propagate for the UI to display.
	ExportDocument(ctx context.Context, id string) (string, error)

	// ListReceipts returns the scope's payment receipts.
	ListReceipts(ctx context.Context) (*ReceiptListResult, error)

	// RecordPayment creates a receipt with a generated sequential number.
	RecordPayment(ctx context.Context, req PaymentRequest) (*ReceiptResult, error)

	// UpdateReceipt merges input into a receipt of the current scope.
	UpdateReceipt(ctx context.Context, id string, input core.ReceiptInput) error

	// RemoveReceipt deletes a receipt of the current scope.
	RemoveReceipt(ctx context.Context, id string) error

	// ListNotes returns the user's notes.
	ListNotes(ctx context.Context) (*NoteListResult, error)

	// AddNote creates a note for the current user.
	AddNote(ctx context.Context, content string) (*NoteResult, error)

	// UpdateNote replaces a note's content.
	UpdateNote(ctx context.Context, id, content string) error

	// RemoveNote deletes a note.
	RemoveNote(ctx context.Context, id string) error

	// ListTemplates returns the user's custom document templates.
	ListTemplates(ctx context.Context) (*TemplateListResult, error)

	// AddTemplate stores a custom document template.
	AddTemplate(ctx context.Context, template core.CustomTemplate) (*TemplateResult, error)

	// RemoveTemplate deletes a custom template.
	RemoveTemplate(ctx context.Context, id string) error

	// ActivityFeed returns the user's activity timeline, newest first.
	ActivityFeed(ctx context.Context) (*ActivityResult, error)
}
