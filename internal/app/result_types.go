package app

import "invoiceease/internal/core"

// SessionResult is returned by the auth operations and Session.
type SessionResult struct {
	User          *core.User
	ActiveProfile *core.BusinessProfile
}

// ProfileResult is returned by CreateProfile.
type ProfileResult struct {
	Profile *core.BusinessProfile
}

// ProfileListResult is returned by ListProfiles.
type ProfileListResult struct {
	Profiles []core.BusinessProfile
	ActiveID string
}

// ClientResult is returned by AddClient.
type ClientResult struct {
	Client *core.Client
}

// ClientListResult is returned by ListClients.
type ClientListResult struct {
	Clients []core.Client
}

// DocumentResult is returned by document operations.
type DocumentResult struct {
	Document *core.Document
}

// DocumentListResult is returned by ListDocuments.
type DocumentListResult struct {
	Documents []core.Document
}

// ReceiptResult is returned by RecordPayment.
type ReceiptResult struct {
	Receipt *core.PaymentReceipt
}

// ReceiptListResult is returned by ListReceipts.
type ReceiptListResult struct {
	Receipts []core.PaymentReceipt
}

// NoteResult is returned by AddNote.
type NoteResult struct {
	Note *core.Note
}

// NoteListResult is returned by ListNotes.
type NoteListResult struct {
	Notes []core.Note
}

// TemplateResult is returned by AddTemplate.
type TemplateResult struct {
	Template *core.CustomTemplate
}

// TemplateListResult is returned by ListTemplates.
type TemplateListResult struct {
	Templates []core.CustomTemplate
}

// ActivityResult is returned by ActivityFeed.
type ActivityResult struct {
	Events []core.ActivityEvent
}
