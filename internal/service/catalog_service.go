package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"rental-asistente-be/internal/dto"
	"rental-asistente-be/internal/entity"
	"rental-asistente-be/internal/repository/specification"
	"rental-asistente-be/internal/repository/unitofwork"
	"rental-asistente-be/pkg/discovery/index"
)

type ICatalogService interface {
	CreateService(ctx context.Context, request *dto.CreateServiceRequest) (*dto.ServiceResponse, error)
	CreateServiceItem(ctx context.Context, request *dto.CreateServiceItemRequest) (*dto.ServiceItemResponse, error)
	UpdateServiceItem(ctx context.Context, itemId uint, request *dto.UpdateServiceItemRequest) (*dto.ServiceItemResponse, error)
	DeleteServiceItem(ctx context.Context, itemId uint) error
	GetCatalog(ctx context.Context) ([]*dto.ServiceResponse, error)
}

type catalogService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
}

func NewCatalogService(uowFactory unitofwork.RepositoryFactory, publisherService IPublisherService) ICatalogService {
	return &catalogService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
	}
}

func (c *catalogService) CreateService(ctx context.Context, request *dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	svc := &entity.Service{
		Name:        request.Nombre,
		Description: request.Descripcion,
		CreatedAt:   time.Now(),
	}
	if err := uow.ServiceRepository().Create(ctx, svc); err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}

	c.notifyCatalogChanged(ctx, "service", svc.Id, "create")

	return &dto.ServiceResponse{
		Id:          svc.Id,
		Nombre:      svc.Name,
		Descripcion: svc.Description,
	}, nil
}

func (c *catalogService) CreateServiceItem(ctx context.Context, request *dto.CreateServiceItemRequest) (*dto.ServiceItemResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	svc, err := uow.ServiceRepository().FindOne(ctx, specification.ByID{ID: request.ServicioId})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service: %w", err)
	}
	if svc == nil {
		return nil, fmt.Errorf("service %d not found", request.ServicioId)
	}

	item := &entity.ServiceItem{
		ServiceId:   svc.Id,
		ServiceName: svc.Name,
		Name:        request.Nombre,
		Description: request.Descripcion,
		Price:       request.Precio,
		CreatedAt:   time.Now(),
	}
	if err := uow.ServiceItemRepository().Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create service item: %w", err)
	}

	c.notifyCatalogChanged(ctx, "service_item", item.Id, "create")

	return itemToResponse(item), nil
}

func (c *catalogService) UpdateServiceItem(ctx context.Context, itemId uint, request *dto.UpdateServiceItemRequest) (*dto.ServiceItemResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	item, err := uow.ServiceItemRepository().FindOne(ctx, specification.ByID{ID: itemId})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service item: %w", err)
	}
	if item == nil {
		return nil, fmt.Errorf("service item %d not found", itemId)
	}

	item.Name = request.Nombre
	item.Description = request.Descripcion
	item.Price = request.Precio
	if err := uow.ServiceItemRepository().Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update service item: %w", err)
	}

	c.notifyCatalogChanged(ctx, "service_item", item.Id, "update")

	return itemToResponse(item), nil
}

func (c *catalogService) DeleteServiceItem(ctx context.Context, itemId uint) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	if err := uow.ServiceItemRepository().Delete(ctx, itemId); err != nil {
		return fmt.Errorf("failed to delete service item: %w", err)
	}

	c.notifyCatalogChanged(ctx, "service_item", itemId, "delete")
	return nil
}

func (c *catalogService) GetCatalog(ctx context.Context) ([]*dto.ServiceResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	services, err := uow.ServiceRepository().FindAll(ctx, specification.OrderBy{Clause: "name asc"})
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}

	responses := make([]*dto.ServiceResponse, 0, len(services))
	for _, svc := range services {
		items, err := uow.ServiceItemRepository().FindAll(ctx,
			specification.ByServiceId{ServiceId: svc.Id},
			specification.OrderBy{Clause: "id asc"},
		)
		if err != nil {
			return nil, fmt.Errorf("failed to list items for service %d: %w", svc.Id, err)
		}

		resp := &dto.ServiceResponse{
			Id:          svc.Id,
			Nombre:      svc.Name,
			Descripcion: svc.Description,
		}
		for _, item := range items {
			resp.Items = append(resp.Items, *itemToResponse(item))
		}
		responses = append(responses, resp)
	}

	return responses, nil
}

// notifyCatalogChanged is best effort: a failed publish leaves the index
// stale until the next restart, it never fails the write itself.
func (c *catalogService) notifyCatalogChanged(ctx context.Context, entityName string, id uint, op string) {
	payload, err := json.Marshal(dto.CatalogChangedMessage{Entity: entityName, Id: id, Op: op})
	if err != nil {
		return
	}
	_ = c.publisherService.Publish(ctx, payload)
}

func itemToResponse(item *entity.ServiceItem) *dto.ServiceItemResponse {
	return &dto.ServiceItemResponse{
		Id:          item.Id,
		ServicioId:  item.ServiceId,
		Servicio:    item.ServiceName,
		Nombre:      item.Name,
		Descripcion: item.Description,
		Precio:      item.Price,
	}
}

// CatalogSource adapts the repository layer to the discovery index.
type CatalogSource struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewCatalogSource(uowFactory unitofwork.RepositoryFactory) *CatalogSource {
	return &CatalogSource{uowFactory: uowFactory}
}

func (s *CatalogSource) ListItems(ctx context.Context) ([]index.Item, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	items, err := uow.ServiceItemRepository().FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog for index: %w", err)
	}

	out := make([]index.Item, 0, len(items))
	for _, item := range items {
		out = append(out, index.Item{
			ID:          item.Id,
			Service:     item.ServiceName,
			Name:        item.Name,
			Description: item.Description,
			Price:       item.Price,
		})
	}
	return out, nil
}
