package delivery

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atarek872/Clean-Architecture/internal/app"
	"github.com/atarek872/Clean-Architecture/internal/domain"
)

// envelope mirrors the response wrapper for decoding in assertions.
type envelope struct {
	Status  string          `json:"Status"`
	Message string          `json:"Message"`
	Data    json.RawMessage `json:"Data"`
}

func newTestRouter(repo domain.ProductRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	handler := NewProductHandler(app.New(repo, logger), logger)

	router := gin.New()
	router.GET("/healthz", HealthCheck)
	handler.RegisterRoutes(router)
	return router
}

func doRequest(router *gin.Engine, method, target string, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "body: %s", w.Body.String())
	return env
}

func TestCreateProduct(t *testing.T) {
	repo := newStubRepo()
	router := newTestRouter(repo)

	t.Run("valid payload yields 201 and a positive id", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/products",
			`{"name":"Starter Kit","description":"Basic","price":"49.90","stock":10}`)

		require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())
		env := decodeEnvelope(t, w)
		assert.Equal(t, "Success", env.Status)

		var data struct {
			ID int64 `json:"id"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Greater(t, data.ID, int64(0))
	})

	t.Run("missing name yields 400", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/products", `{"price":"1.00","stock":1}`)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body: %s", w.Body.String())
	})

	t.Run("negative stock yields 400", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/products", `{"name":"Bad","price":"1.00","stock":-1}`)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body: %s", w.Body.String())
	})

	t.Run("duplicate name yields 409", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/products", `{"name":"Starter Kit","price":"9.90","stock":1}`)
		assert.Equal(t, http.StatusConflict, w.Code, "body: %s", w.Body.String())
	})

	t.Run("malformed JSON yields 400", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/products", `{"name":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetProduct(t *testing.T) {
	repo := newStubRepo()
	created := repo.mustCreate(t, "Headset", "wireless", decimal.NewFromFloat(149.90), 7)
	router := newTestRouter(repo)

	t.Run("found", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, fmt.Sprintf("/products/%d", created.ID), "")

		require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())
		env := decodeEnvelope(t, w)

		var got domain.Product
		require.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, "Headset", got.Name)
		assert.Equal(t, int64(7), got.Stock)
	})

	t.Run("unknown id yields 404", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/products/9999", "")
		assert.Equal(t, http.StatusNotFound, w.Code, "body: %s", w.Body.String())
	})

	t.Run("non-numeric id yields 400", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/products/abc", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestListProducts(t *testing.T) {
	repo := newStubRepo()
	for i := 1; i <= 3; i++ {
		repo.mustCreate(t, fmt.Sprintf("Prod %d", i), "desc", decimal.NewFromInt(10), 5)
	}
	router := newTestRouter(repo)

	t.Run("pagination applies", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/products?limit=2&offset=1", "")

		require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())
		env := decodeEnvelope(t, w)

		var got []domain.Product
		require.NoError(t, json.Unmarshal(env.Data, &got))
		require.Len(t, got, 2)
		assert.Equal(t, "Prod 2", got[0].Name)
	})

	t.Run("empty catalog yields empty list not null", func(t *testing.T) {
		w := doRequest(newTestRouter(newStubRepo()), http.MethodGet, "/products", "")

		require.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w)

		assert.Equal(t, "[]", string(env.Data))
	})

	t.Run("garbage pagination params fall back to defaults", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/products?limit=abc&offset=-2", "")

		require.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w)

		var got []domain.Product
		require.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Len(t, got, 3)
	})
}

func TestUpdateProduct(t *testing.T) {
	repo := newStubRepo()
	created := repo.mustCreate(t, "Mouse", "wired", decimal.NewFromInt(20), 5)
	router := newTestRouter(repo)

	t.Run("partial update without price keeps price", func(t *testing.T) {
		w := doRequest(router, http.MethodPatch, fmt.Sprintf("/products/%d", created.ID),
			`{"name":"Mouse 2"}`)

		require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())

		saved, err := repo.FindByID(context.Background(), created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Mouse 2", saved.Name)
		assert.True(t, saved.Price.Equal(decimal.NewFromInt(20)))
	})

	t.Run("price update applied", func(t *testing.T) {
		w := doRequest(router, http.MethodPatch, fmt.Sprintf("/products/%d", created.ID),
			`{"price":"12.50"}`)

		require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())

		saved, err := repo.FindByID(context.Background(), created.ID)
		require.NoError(t, err)
		assert.True(t, saved.Price.Equal(decimal.NewFromFloat(12.50)))
	})

	t.Run("empty body yields 400", func(t *testing.T) {
		w := doRequest(router, http.MethodPatch, fmt.Sprintf("/products/%d", created.ID), `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body: %s", w.Body.String())
	})

	t.Run("unknown id yields 404", func(t *testing.T) {
		w := doRequest(router, http.MethodPatch, "/products/9999", `{"name":"Ghost"}`)
		assert.Equal(t, http.StatusNotFound, w.Code, "body: %s", w.Body.String())
	})
}

func TestUpdateProductStock(t *testing.T) {
	repo := newStubRepo()
	created := repo.mustCreate(t, "Keyboard", "", decimal.NewFromInt(80), 10)
	router := newTestRouter(repo)

	t.Run("sets new level", func(t *testing.T) {
		w := doRequest(router, http.MethodPatch, fmt.Sprintf("/products/%d/stock", created.ID),
			`{"stock":3}`)

		require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())

		saved, err := repo.FindByID(context.Background(), created.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(3), saved.Stock)
	})

	t.Run("zero is a valid level", func(t *testing.T) {
		w := doRequest(router, http.MethodPatch, fmt.Sprintf("/products/%d/stock", created.ID),
			`{"stock":0}`)
		assert.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())
	})

	t.Run("negative level yields 400 and keeps state", func(t *testing.T) {
		w := doRequest(router, http.MethodPatch, fmt.Sprintf("/products/%d/stock", created.ID),
			`{"stock":-1}`)

		assert.Equal(t, http.StatusBadRequest, w.Code, "body: %s", w.Body.String())
		saved, err := repo.FindByID(context.Background(), created.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), saved.Stock)
	})

	t.Run("missing stock field yields 400", func(t *testing.T) {
		w := doRequest(router, http.MethodPatch, fmt.Sprintf("/products/%d/stock", created.ID), `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown id yields 404", func(t *testing.T) {
		w := doRequest(router, http.MethodPatch, "/products/9999/stock", `{"stock":1}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDeleteProduct(t *testing.T) {
	repo := newStubRepo()
	created := repo.mustCreate(t, "Webcam", "", decimal.NewFromInt(60), 1)
	router := newTestRouter(repo)

	t.Run("deletes then 404 on repeat", func(t *testing.T) {
		w := doRequest(router, http.MethodDelete, fmt.Sprintf("/products/%d", created.ID), "")
		require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())

		w = doRequest(router, http.MethodDelete, fmt.Sprintf("/products/%d", created.ID), "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("unknown id yields 404", func(t *testing.T) {
		w := doRequest(router, http.MethodDelete, "/products/9999", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHealthCheck(t *testing.T) {
	router := newTestRouter(newStubRepo())

	w := doRequest(router, http.MethodGet, "/healthz", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

// stubRepo is an in-memory implementation of domain.ProductRepository used to
// exercise the full handler → command/query stack without a database.
type stubRepo struct {
	store  map[int64]*domain.Product
	nextID int64
}

func newStubRepo() *stubRepo {
	return &stubRepo{store: make(map[int64]*domain.Product)}
}

func (s *stubRepo) mustCreate(t *testing.T, name, description string, price decimal.Decimal, stock int64) *domain.Product {
	t.Helper()
	product, err := domain.NewProduct(name, description, price, stock)
	require.NoError(t, err)
	require.NoError(t, s.Create(context.Background(), product))
	return product
}

func (s *stubRepo) Create(ctx context.Context, product *domain.Product) error {
	for _, existing := range s.store {
		if existing.Name == product.Name {
			return fmt.Errorf("product '%s': %w", product.Name, domain.ErrProductExists)
		}
	}
	s.nextID++
	product.ID = s.nextID
	clone := *product
	s.store[product.ID] = &clone
	return nil
}

func (s *stubRepo) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	product, ok := s.store[id]
	if !ok {
		return nil, fmt.Errorf("product with id %d: %w", id, domain.ErrProductNotFound)
	}
	clone := *product
	return &clone, nil
}

func (s *stubRepo) FindAll(ctx context.Context, limit, offset int) ([]domain.Product, error) {
	all := make([]domain.Product, 0, len(s.store))
	for _, product := range s.store {
		all = append(all, *product)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	if offset > len(all) {
		return []domain.Product{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (s *stubRepo) Update(ctx context.Context, product *domain.Product) error {
	if _, ok := s.store[product.ID]; !ok {
		return fmt.Errorf("product with id %d: %w", product.ID, domain.ErrProductNotFound)
	}
	clone := *product
	s.store[product.ID] = &clone
	return nil
}

func (s *stubRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := s.store[id]; !ok {
		return fmt.Errorf("product with id %d: %w", id, domain.ErrProductNotFound)
	}
	delete(s.store, id)
	return nil
}
