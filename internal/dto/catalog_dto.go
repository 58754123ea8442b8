package dto

type CreateServiceRequest struct {
	Nombre      string `json:"nombre" validate:"required,max=120"`
	Descripcion string `json:"descripcion" validate:"max=2000"`
}

type CreateServiceItemRequest struct {
	ServicioId  uint    `json:"servicio_id" validate:"required,gt=0"`
	Nombre      string  `json:"nombre" validate:"required,max=160"`
	Descripcion string  `json:"descripcion" validate:"max=2000"`
	Precio      float64 `json:"precio" validate:"gte=0"`
}

type UpdateServiceItemRequest struct {
	Nombre      string  `json:"nombre" validate:"required,max=160"`
	Descripcion string  `json:"descripcion" validate:"max=2000"`
	Precio      float64 `json:"precio" validate:"gte=0"`
}

// CatalogChangedMessage is the internal bus payload emitted after any
// catalog write. Consumers only need to know the index is stale.
type CatalogChangedMessage struct {
	Entity string `json:"entity"` // "service" or "service_item"
	Id     uint   `json:"id"`
	Op     string `json:"op"` // "create", "update", "delete"
}

type ServiceResponse struct {
	Id          uint                  `json:"id"`
	Nombre      string                `json:"nombre"`
	Descripcion string                `json:"descripcion,omitempty"`
	Items       []ServiceItemResponse `json:"items,omitempty"`
}

type ServiceItemResponse struct {
	Id          uint    `json:"id"`
	ServicioId  uint    `json:"servicio_id"`
	Servicio    string  `json:"servicio,omitempty"`
	Nombre      string  `json:"nombre"`
	Descripcion string  `json:"descripcion,omitempty"`
	Precio      float64 `json:"precio"`
}
