package core

import (
	"context"
	"fmt"
	"time"

	"invoiceease/internal/storage"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type clientService struct {
	clients   *storage.Collection[Client]
	documents *storage.Collection[Document]
}

// NewClientService constructs a ClientService for the given scope. The
// document collection is read for billing-total derivation only.
func NewClientService(store storage.Store, scope Scope, log zerolog.Logger) ClientService {
	return &clientService{
		clients:   storage.NewCollection[Client](store, scope.clientsKey(), log),
		documents: storage.NewCollection[Document](store, scope.documentsKey(), log),
	}
}

func (s *clientService) List(ctx context.Context) ([]Client, error) {
	return s.clients.Load(ctx)
}

func (s *clientService) ListWithBillingTotals(ctx context.Context) ([]Client, error) {
	clients, err := s.clients.Load(ctx)
	if err != nil {
		return nil, err
	}
	documents, err := s.documents.Load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range clients {
		for _, d := range documents {
			if d.ClientID != clients[i].ID {
				continue
			}
			clients[i].TotalBilled = clients[i].TotalBilled.Add(d.TotalAmount)
			clients[i].InvoiceCount++
		}
	}
	return clients, nil
}

func (s *clientService) Get(ctx context.Context, id string) (*Client, error) {
	clients, err := s.clients.Load(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range clients {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, nil
}

func (s *clientService) Add(ctx context.Context, input ClientInput) (*Client, error) {
	clients, err := s.clients.Load(ctx)
	if err != nil {
		return nil, err
	}

	client := Client{ID: uuid.NewString(), CreatedAt: time.Now()}
	applyClientInput(&client, input)

	if err := s.clients.Save(ctx, append(clients, client)); err != nil {
		return nil, fmt.Errorf("persist clients: %w", err)
	}
	return &client, nil
}

func (s *clientService) Update(ctx context.Context, id string, input ClientInput) error {
	clients, err := s.clients.Load(ctx)
	if err != nil {
		return err
	}
	for i := range clients {
		if clients[i].ID != id {
			continue
		}
		applyClientInput(&clients[i], input)
		return s.clients.Save(ctx, clients)
	}
	// unknown id: silent no-op
	return nil
}

func (s *clientService) Remove(ctx context.Context, id string) error {
	clients, err := s.clients.Load(ctx)
	if err != nil {
		return err
	}
	remaining := make([]Client, 0, len(clients))
	for _, c := range clients {
		if c.ID != id {
			remaining = append(remaining, c)
		}
	}
	return s.clients.Save(ctx, remaining)
}

func applyClientInput(client *Client, input ClientInput) {
	if input.Name != nil {
		client.Name = *input.Name
	}
	if input.Email != nil {
		client.Email = *input.Email
	}
	if input.Phone != nil {
		client.Phone = *input.Phone
	}
	if input.Address != nil {
		client.Address = *input.Address
	}
}
