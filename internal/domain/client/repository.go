package client

import "context"

// ClientRepository defines data access for clients and their stakeholders.
// All reads and writes are scoped to the owning user.
type ClientRepository interface {
	Create(ctx context.Context, c Client) (Client, error)
	List(ctx context.Context, userID string) ([]Client, error)
	GetByID(ctx context.Context, id string, userID string) (Client, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	Update(ctx context.Context, id string, userID string, req UpdateClientRequest) (Client, error)
	Delete(ctx context.Context, id string, userID string) error

	CreateStakeholder(ctx context.Context, s Stakeholder) (Stakeholder, error)
	ListStakeholders(ctx context.Context, clientID string) ([]Stakeholder, error)
	DeleteStakeholder(ctx context.Context, id string, clientID string) error
}

// ClientService is owner-scoped CRUD over clients and stakeholders.
type ClientService interface {
	Create(ctx context.Context, req CreateClientRequest) (ClientResponse, error)
	List(ctx context.Context) ([]ClientResponse, error)
	Get(ctx context.Context, id string) (ClientResponse, error)
	Update(ctx context.Context, id string, req UpdateClientRequest) (ClientResponse, error)
	Delete(ctx context.Context, id string) error

	AddStakeholder(ctx context.Context, clientID string, req CreateStakeholderRequest) (StakeholderResponse, error)
	ListStakeholders(ctx context.Context, clientID string) ([]StakeholderResponse, error)
	RemoveStakeholder(ctx context.Context, clientID string, stakeholderID string) error
}
