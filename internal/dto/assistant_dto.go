package dto

import (
	"encoding/json"
	"strconv"
	"strings"
)

// FlexIDList accepts the loose payloads real clients send for `seleccion`:
// JSON numbers, numeric strings, or a mix. Anything that is not a positive
// integer is dropped here, before business logic ever sees it.
type FlexIDList []uint

func (l *FlexIDList) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		// not an array at all: treat as empty, never as a request error
		*l = nil
		return nil
	}

	out := make(FlexIDList, 0, len(raw))
	for _, elem := range raw {
		var n float64
		if err := json.Unmarshal(elem, &n); err == nil {
			if n > 0 && n == float64(int64(n)) {
				out = append(out, uint(n))
			}
			continue
		}
		var s string
		if err := json.Unmarshal(elem, &s); err == nil {
			if v, err := strconv.Atoi(strings.TrimSpace(s)); err == nil && v > 0 {
				out = append(out, uint(v))
			}
		}
		// objects, booleans, nulls: dropped
	}
	*l = out
	return nil
}

// SendMessageRequest is one dialogue turn. Every field is optional; several
// may be set at once and are applied in a fixed order (selection, duration,
// message, confirmation, clear, finalize).
type SendMessageRequest struct {
	Mensaje            string     `json:"mensaje"`
	Seleccion          FlexIDList `json:"seleccion"`
	Dias               int        `json:"dias"`
	ConfirmIntencion   bool       `json:"confirm_intencion"`
	Intenciones        []string   `json:"intenciones" validate:"max=10"`
	LimpiarCotizacion  bool       `json:"limpiar_cotizacion"`
	TerminarCotizacion bool       `json:"terminar_cotizacion"`
}

// CatalogOption is one selectable sub-item inside an option group.
type CatalogOption struct {
	Id          uint    `json:"id"`
	Nombre      string  `json:"nombre"`
	Descripcion string  `json:"descripcion,omitempty"`
	Precio      float64 `json:"precio"`
}

// OptionGroup presents one service with its selectable items.
type OptionGroup struct {
	Servicio string          `json:"servicio"`
	Opciones []CatalogOption `json:"opciones"`
}

// Action is an actionable button the client can render.
type Action struct {
	Id       string                 `json:"id"`
	Label    string                 `json:"label"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// QuoteLine is one priced row of the quote preview.
type QuoteLine struct {
	ItemId   uint    `json:"item_id"`
	Nombre   string  `json:"nombre"`
	Precio   float64 `json:"precio"`
	Dias     int     `json:"dias"`
	Subtotal float64 `json:"subtotal"`
}

// SendMessageResponse is the assistant's reply. `respuesta` is always
// present; the other fields depend on the branch taken.
type SendMessageResponse struct {
	SessionId    string        `json:"session_id"`
	Respuesta    string        `json:"respuesta"`
	OptionGroups []OptionGroup `json:"optionGroups,omitempty"`
	Sugerencias  []string      `json:"sugerencias,omitempty"`
	Actions      []Action      `json:"actions,omitempty"`
	Cotizacion   []QuoteLine   `json:"cotizacion,omitempty"`
	Days         int           `json:"days,omitempty"`
	LimpiarChat  bool          `json:"limpiar_chat,omitempty"`
	Selecciones  []uint        `json:"selecciones,omitempty"`
	Total        float64       `json:"total,omitempty"`
}
