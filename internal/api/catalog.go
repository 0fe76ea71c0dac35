package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/blade-dss/blade/internal/events"
	"github.com/blade-dss/blade/internal/store"
)

type CatalogHandler struct {
	store  store.Store
	events events.Client
}

func NewCatalogHandler(s store.Store, ec events.Client) *CatalogHandler {
	return &CatalogHandler{store: s, events: ec}
}

func (h *CatalogHandler) ListAttributes(w http.ResponseWriter, r *http.Request) {
	defs, err := h.store.GetAttributeDefinitions(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if defs == nil {
		defs = []store.AttributeDefinition{}
	}
	writeJSON(w, http.StatusOK, defs)
}

func (h *CatalogHandler) ListAlternatives(w http.ResponseWriter, r *http.Request) {
	alts, err := h.store.GetAlternatives(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if alts == nil {
		alts = []*store.Alternative{}
	}
	writeJSON(w, http.StatusOK, alts)
}

func (h *CatalogHandler) GetLookup(w http.ResponseWriter, r *http.Request) {
	lookup, err := h.store.GetCategoricalLookup(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, lookup)
}

func (h *CatalogHandler) CreateAttribute(w http.ResponseWriter, r *http.Request) {
	var def store.AttributeDefinition
	if err := json.NewDecoder(r.Body).Decode(&def); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if def.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name required"})
		return
	}
	switch def.DefaultDirection {
	case store.DirectionBenefit, store.DirectionCost:
	default:
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "default_direction must be benefit or cost"})
		return
	}
	switch def.Datatype {
	case store.DatatypeNumeric, store.DatatypeBoolean, store.DatatypeCategorical:
	default:
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "datatype must be numeric, boolean, or categorical"})
		return
	}

	if err := h.store.CreateAttributeDefinition(r.Context(), &def); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	if h.events != nil {
		_ = h.events.Publish(events.SubjectCatalogUpdated("attribute"), events.CatalogUpdatedEvent{
			Kind: "attribute",
			Name: def.Name,
		})
	}
	writeJSON(w, http.StatusCreated, def)
}

func (h *CatalogHandler) CreateAlternative(w http.ResponseWriter, r *http.Request) {
	var alt store.Alternative
	if err := json.NewDecoder(r.Body).Decode(&alt); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if alt.Name == "" || len(alt.Attributes) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name and attributes required"})
		return
	}

	if err := h.store.CreateAlternative(r.Context(), &alt); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	if h.events != nil {
		_ = h.events.Publish(events.SubjectCatalogUpdated("alternative"), events.CatalogUpdatedEvent{
			Kind: "alternative",
			Name: alt.Name,
		})
	}
	writeJSON(w, http.StatusCreated, alt)
}

func (h *CatalogHandler) UpsertLookupEntry(w http.ResponseWriter, r *http.Request) {
	label := chi.URLParam(r, "label")
	if label == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "label required"})
		return
	}

	var body struct {
		Value float64 `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if err := h.store.UpsertLookupEntry(r.Context(), label, body.Value); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	if h.events != nil {
		_ = h.events.Publish(events.SubjectCatalogUpdated("lookup"), events.CatalogUpdatedEvent{
			Kind: "lookup",
			Name: label,
		})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"label": label, "value": body.Value})
}
