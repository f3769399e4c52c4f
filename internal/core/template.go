package core

import (
	"context"
	"fmt"
	"time"

	"invoiceease/internal/storage"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// CustomTemplate is a user-defined document layout: accent colors, header
// text and a base kind new documents are stamped from.
type CustomTemplate struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	BaseKind    DocumentKind `json:"baseKind"`
	AccentColor string       `json:"accentColor,omitempty"`
	HeaderText  string       `json:"headerText,omitempty"`
	FooterText  string       `json:"footerText,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
}

// TemplateService is the CRUD surface for the user's custom templates.
// Templates live under the raw-user legacy key, profile-independent.
type TemplateService interface {
	List(ctx context.Context) ([]CustomTemplate, error)
	Get(ctx context.Context, id string) (*CustomTemplate, error)
	Add(ctx context.Context, template CustomTemplate) (*CustomTemplate, error)
	Remove(ctx context.Context, id string) error
}

type templateService struct {
	templates *storage.Collection[CustomTemplate]
}

// NewTemplateService constructs a TemplateService for the given scope.
func NewTemplateService(store storage.Store, scope Scope, log zerolog.Logger) TemplateService {
	return &templateService{
		templates: storage.NewCollection[CustomTemplate](store, scope.templatesKey(), log),
	}
}

func (s *templateService) List(ctx context.Context) ([]CustomTemplate, error) {
	return s.templates.Load(ctx)
}

func (s *templateService) Get(ctx context.Context, id string) (*CustomTemplate, error) {
	templates, err := s.templates.Load(ctx)
	if err != nil {
		return nil, err
	}
	for _, tpl := range templates {
		if tpl.ID == id {
			return &tpl, nil
		}
	}
	return nil, nil
}

func (s *templateService) Add(ctx context.Context, template CustomTemplate) (*CustomTemplate, error) {
	templates, err := s.templates.Load(ctx)
	if err != nil {
		return nil, err
	}
	template.ID = uuid.NewString()
	template.CreatedAt = time.Now()
	if template.BaseKind == "" {
		template.BaseKind = KindInvoice
	}
	if err := s.templates.Save(ctx, append(templates, template)); err != nil {
		return nil, fmt.Errorf("persist templates: %w", err)
	}
	return &template, nil
}

func (s *templateService) Remove(ctx context.Context, id string) error {
	templates, err := s.templates.Load(ctx)
	if err != nil {
		return err
	}
	remaining := make([]CustomTemplate, 0, len(templates))
	for _, tpl := range templates {
		if tpl.ID != id {
			remaining = append(remaining, tpl)
		}
	}
	return s.templates.Save(ctx, remaining)
}
