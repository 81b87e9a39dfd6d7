package provider

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"fieldserve/models"
	"fieldserve/utils"
)

func validateServiceInput(input ServiceInput, creating bool) error {
	if creating && input.Name == "" {
		return utils.ValidationError{Field: "name", Reason: "required"}
	}
	if creating && input.Category == "" {
		return utils.ValidationError{Field: "category", Reason: "required"}
	}
	if input.BasePrice < 0 {
		return utils.ValidationError{Field: "basePrice", Reason: "must not be negative"}
	}
	return nil
}

func (s *DefaultProviderService) ListServices(ctx context.Context, orgID string) ([]models.Service, error) {
	return s.ServiceRepo.ListByOrganization(ctx, orgID)
}

// CreateService adds a catalog entry and derives its semantic embedding.
// Embedding failure leaves the vector empty; the service is still created.
func (s *DefaultProviderService) CreateService(ctx context.Context, orgID string, input ServiceInput) (*models.Service, error) {
	if err := validateServiceInput(input, true); err != nil {
		return nil, err
	}

	now := time.Now()
	svc := &models.Service{
		ID:             uuid.New().String(),
		OrganizationID: orgID,
		Name:           input.Name,
		Description:    input.Description,
		BasePrice:      input.BasePrice,
		Category:       input.Category,
		Tags:           input.Tags,
		Images:         input.Images,
		Location:       input.Location,
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if input.Active != nil {
		svc.Active = *input.Active
	}
	svc.Embedding = s.Embedder.Embed(ctx, svc.EmbeddingText())

	if err := s.ServiceRepo.Create(ctx, svc); err != nil {
		return nil, err
	}
	if err := s.OrgRepo.AddService(ctx, orgID, svc.ID); err != nil {
		s.Logger.Error("service created but catalog link failed",
			zap.String("serviceId", svc.ID), zap.Error(err))
	}
	return svc, nil
}

// UpdateService edits a catalog entry the organization owns. The embedding
// is refreshed only when a text field actually changed.
func (s *DefaultProviderService) UpdateService(ctx context.Context, orgID, serviceID string, input ServiceInput) (*models.Service, error) {
	if err := validateServiceInput(input, false); err != nil {
		return nil, err
	}

	svc, err := s.ServiceRepo.GetByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if svc.OrganizationID != orgID {
		return nil, utils.NotFoundError{Resource: "service", ID: serviceID}
	}

	textDirty := false
	if input.Name != "" && input.Name != svc.Name {
		svc.Name = input.Name
		textDirty = true
	}
	if input.Description != "" && input.Description != svc.Description {
		svc.Description = input.Description
		textDirty = true
	}
	if input.Category != "" && input.Category != svc.Category {
		svc.Category = input.Category
		textDirty = true
	}
	if input.Tags != nil {
		svc.Tags = input.Tags
		textDirty = true
	}
	if input.BasePrice > 0 {
		svc.BasePrice = input.BasePrice
	}
	if input.Images != nil {
		svc.Images = input.Images
	}
	if input.Location.Valid() {
		svc.Location = input.Location
	}
	if input.Active != nil {
		svc.Active = *input.Active
	}
	if textDirty {
		svc.Embedding = s.Embedder.Embed(ctx, svc.EmbeddingText())
	}
	svc.UpdatedAt = time.Now()

	if err := s.ServiceRepo.Update(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *DefaultProviderService) DeleteService(ctx context.Context, orgID, serviceID string) error {
	svc, err := s.ServiceRepo.GetByID(ctx, serviceID)
	if err != nil {
		return err
	}
	if svc.OrganizationID != orgID {
		return utils.NotFoundError{Resource: "service", ID: serviceID}
	}
	return s.ServiceRepo.Delete(ctx, serviceID)
}
