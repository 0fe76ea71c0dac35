package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/blade-dss/blade/internal/store"
)

// MockStore implements store.Store for catalog handler tests.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) CreateAttributeDefinition(ctx context.Context, def *store.AttributeDefinition) error {
	args := m.Called(ctx, def)
	return args.Error(0)
}

func (m *MockStore) CreateAlternative(ctx context.Context, alt *store.Alternative) error {
	args := m.Called(ctx, alt)
	return args.Error(0)
}

func (m *MockStore) UpsertLookupEntry(ctx context.Context, label string, value float64) error {
	args := m.Called(ctx, label, value)
	return args.Error(0)
}

// Remaining Store methods are unused by these tests.
func (m *MockStore) GetAttributeDefinitions(ctx context.Context) ([]store.AttributeDefinition, error) {
	return nil, nil
}
func (m *MockStore) GetCategoricalLookup(ctx context.Context) (store.CategoricalLookup, error) {
	return nil, nil
}
func (m *MockStore) GetAlternatives(ctx context.Context) ([]*store.Alternative, error) {
	return nil, nil
}
func (m *MockStore) SaveDecision(ctx context.Context, rec *store.DecisionRecord) error { return nil }
func (m *MockStore) GetDecision(ctx context.Context, id uuid.UUID) (*store.DecisionRecord, error) {
	return nil, nil
}
func (m *MockStore) ListDecisions(ctx context.Context, filter store.DecisionFilter) ([]*store.DecisionRecord, error) {
	return nil, nil
}
func (m *MockStore) Close() error { return nil }

func TestCreateAttributeValidation(t *testing.T) {
	ms := new(MockStore)
	h := NewCatalogHandler(ms, nil)

	tests := []struct {
		name string
		body string
		code int
	}{
		{"missing name", `{"default_direction":"benefit","datatype":"numeric"}`, http.StatusBadRequest},
		{"bad direction", `{"name":"tps","default_direction":"sideways","datatype":"numeric"}`, http.StatusBadRequest},
		{"bad datatype", `{"name":"tps","default_direction":"benefit","datatype":"blob"}`, http.StatusBadRequest},
		{"malformed json", `{`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/v1/attributes", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			h.CreateAttribute(w, req)
			assert.Equal(t, tt.code, w.Code)
		})
	}
	ms.AssertNotCalled(t, "CreateAttributeDefinition")
}

func TestCreateAttributeSuccess(t *testing.T) {
	ms := new(MockStore)
	ms.On("CreateAttributeDefinition", mock.Anything, mock.AnythingOfType("*store.AttributeDefinition")).Return(nil)
	me := &mockEvents{}
	h := NewCatalogHandler(ms, me)

	body := `{"name":"throughput","default_direction":"benefit","datatype":"numeric","position":0}`
	req := httptest.NewRequest("POST", "/api/v1/attributes", bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	h.CreateAttribute(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	ms.AssertExpectations(t)
	assert.Len(t, me.published, 1)

	var def store.AttributeDefinition
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&def))
	assert.Equal(t, "throughput", def.Name)
	assert.Equal(t, store.DirectionBenefit, def.DefaultDirection)
}

func TestCreateAlternativeRequiresAttributes(t *testing.T) {
	ms := new(MockStore)
	h := NewCatalogHandler(ms, nil)

	body := `{"name":"naked"}`
	req := httptest.NewRequest("POST", "/api/v1/alternatives", bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	h.CreateAlternative(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	ms.AssertNotCalled(t, "CreateAlternative")
}

func TestCreateAlternativeSuccess(t *testing.T) {
	ms := new(MockStore)
	ms.On("CreateAlternative", mock.Anything, mock.AnythingOfType("*store.Alternative")).Return(nil)
	h := NewCatalogHandler(ms, nil)

	body := `{"name":"alpha","attributes":{"throughput":10,"latency":5},"info":{"consensus":"PoS"}}`
	req := httptest.NewRequest("POST", "/api/v1/alternatives", bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	h.CreateAlternative(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	ms.AssertExpectations(t)
}

func TestUpsertLookupEntry(t *testing.T) {
	ms := new(MockStore)
	ms.On("UpsertLookupEntry", mock.Anything, "High", 3.0).Return(nil)
	me := &mockEvents{}
	h := NewCatalogHandler(ms, me)

	// URL param resolution needs a chi route context.
	mux := chi.NewRouter()
	mux.Put("/api/v1/lookup/{label}", h.UpsertLookupEntry)

	r := httptest.NewRequest("PUT", "/api/v1/lookup/High", bytes.NewBufferString(`{"value":3}`))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	ms.AssertExpectations(t)
	assert.Len(t, me.published, 1)
}
