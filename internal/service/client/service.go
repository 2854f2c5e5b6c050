package client

import (
	"context"
	"fmt"

	"github.com/audient-hq/audient-backend/internal/domain/auth"
	"github.com/audient-hq/audient-backend/internal/domain/client"
	"github.com/go-chi/jwtauth/v5"
)

type ClientServiceImpl struct {
	client.ClientRepository
}

func NewClientService(clientRepository client.ClientRepository) client.ClientService {
	return &ClientServiceImpl{ClientRepository: clientRepository}
}

func (s *ClientServiceImpl) Create(ctx context.Context, req client.CreateClientRequest) (client.ClientResponse, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return client.ClientResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return client.ClientResponse{}, err
	}

	exists, err := s.ClientRepository.ExistsByCode(ctx, req.ClientCode)
	if err != nil {
		return client.ClientResponse{}, fmt.Errorf("failed to check client code: %w", err)
	}
	if exists {
		return client.ClientResponse{}, client.ErrClientCodeExists
	}

	tier := client.TierNormal
	if req.ClientTier != nil {
		tier = client.Tier(*req.ClientTier)
	}

	created, err := s.ClientRepository.Create(ctx, client.Client{
		UserID:                userID,
		ClientName:            req.ClientName,
		ClientCode:            req.ClientCode,
		IndustrySector:        req.IndustrySector,
		CompanySize:           req.CompanySize,
		HeadquartersLocation:  req.HeadquartersLocation,
		PrimaryOfficeLocation: req.PrimaryOfficeLocation,
		WebsiteDomain:         req.WebsiteDomain,
		ClientTier:            tier,
	})
	if err != nil {
		return client.ClientResponse{}, err
	}

	return client.NewClientResponse(created), nil
}

func (s *ClientServiceImpl) List(ctx context.Context) ([]client.ClientResponse, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	clients, err := s.ClientRepository.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]client.ClientResponse, 0, len(clients))
	for _, c := range clients {
		responses = append(responses, client.NewClientResponse(c))
	}
	return responses, nil
}

func (s *ClientServiceImpl) Get(ctx context.Context, id string) (client.ClientResponse, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return client.ClientResponse{}, err
	}

	c, err := s.ClientRepository.GetByID(ctx, id, userID)
	if err != nil {
		return client.ClientResponse{}, err
	}
	return client.NewClientResponse(c), nil
}

func (s *ClientServiceImpl) Update(ctx context.Context, id string, req client.UpdateClientRequest) (client.ClientResponse, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return client.ClientResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return client.ClientResponse{}, err
	}

	c, err := s.ClientRepository.Update(ctx, id, userID, req)
	if err != nil {
		return client.ClientResponse{}, err
	}
	return client.NewClientResponse(c), nil
}

func (s *ClientServiceImpl) Delete(ctx context.Context, id string) error {
	userID, err := callerID(ctx)
	if err != nil {
		return err
	}
	return s.ClientRepository.Delete(ctx, id, userID)
}

func (s *ClientServiceImpl) AddStakeholder(ctx context.Context, clientID string, req client.CreateStakeholderRequest) (client.StakeholderResponse, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return client.StakeholderResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return client.StakeholderResponse{}, err
	}

	// Ownership check before touching the nested resource.
	if _, err := s.ClientRepository.GetByID(ctx, clientID, userID); err != nil {
		return client.StakeholderResponse{}, err
	}

	created, err := s.ClientRepository.CreateStakeholder(ctx, client.Stakeholder{
		ClientID:        clientID,
		ContactName:     req.ContactName,
		DesignationRole: req.DesignationRole,
		Email:           req.Email,
		Phone:           req.Phone,
		Notes:           req.Notes,
	})
	if err != nil {
		return client.StakeholderResponse{}, err
	}

	return client.NewStakeholderResponse(created), nil
}

func (s *ClientServiceImpl) ListStakeholders(ctx context.Context, clientID string) ([]client.StakeholderResponse, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := s.ClientRepository.GetByID(ctx, clientID, userID); err != nil {
		return nil, err
	}

	stakeholders, err := s.ClientRepository.ListStakeholders(ctx, clientID)
	if err != nil {
		return nil, err
	}

	responses := make([]client.StakeholderResponse, 0, len(stakeholders))
	for _, st := range stakeholders {
		responses = append(responses, client.NewStakeholderResponse(st))
	}
	return responses, nil
}

func (s *ClientServiceImpl) RemoveStakeholder(ctx context.Context, clientID string, stakeholderID string) error {
	userID, err := callerID(ctx)
	if err != nil {
		return err
	}

	if _, err := s.ClientRepository.GetByID(ctx, clientID, userID); err != nil {
		return err
	}

	return s.ClientRepository.DeleteStakeholder(ctx, stakeholderID, clientID)
}

func callerID(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", auth.ErrInvalidToken
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", auth.ErrInvalidToken
	}
	return userID, nil
}
