package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBackend(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/products", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":1,"name":"Laptop","price":10.00,"category":"Electronics","stock":3},
			{"id":2,"name":"Headphones","price":199.99,"category":"Electronics","stock":5}]`))
	})
	mux.HandleFunc("POST /api/login", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"Login successful","token":"tok","user":{"id":7,"username":"alice","email":"a@example.com"}}`))
	})
	mux.HandleFunc("GET /api/me", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":7,"username":"alice","email":"a@example.com"}`))
	})
	mux.HandleFunc("POST /api/orders", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"message":"Order created successfully","orderId":12,"reference":"ref-12"}`))
	})
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root, c := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	c.close()
	return out.String(), err
}

func TestCartAndCheckoutAcrossInvocations(t *testing.T) {
	ts := newBackend(t)
	t.Setenv("STOREFRONT_API_URL", ts.URL)
	t.Setenv("STOREFRONT_STATE_FILE", filepath.Join(t.TempDir(), "state.json"))
	t.Setenv("STOREFRONT_REDIS_ADDR", "")

	out, err := run(t, "cart", "add", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Product added to cart!")

	_, err = run(t, "cart", "add", "1")
	require.NoError(t, err)
	out, err = run(t, "cart", "qty", "1", "-1")
	require.NoError(t, err)
	assert.Contains(t, out, "Items: 1  Total: $10.00")

	_, err = run(t, "checkout")
	assert.ErrorIs(t, err, errNotified)

	out, err = run(t, "login", "--email", "a@example.com", "--password", "pw")
	require.NoError(t, err)
	assert.Contains(t, out, "Login successful!")

	out, err = run(t, "checkout")
	require.NoError(t, err)
	assert.Contains(t, out, "Order placed successfully!")
	assert.Contains(t, out, "Order #12 reference ref-12")

	out, err = run(t, "cart")
	require.NoError(t, err)
	assert.Contains(t, out, "Your cart is empty")
}

func TestProductsByCategory(t *testing.T) {
	ts := newBackend(t)
	t.Setenv("STOREFRONT_API_URL", ts.URL)
	t.Setenv("STOREFRONT_STATE_FILE", filepath.Join(t.TempDir(), "state.json"))

	out, err := run(t, "products", "--category", "Electronics")
	require.NoError(t, err)
	assert.Contains(t, out, "Electronics Products")
	assert.Contains(t, out, "Headphones")
}

func TestInvalidProductID(t *testing.T) {
	t.Setenv("STOREFRONT_API_URL", "http://127.0.0.1:1")
	t.Setenv("STOREFRONT_STATE_FILE", filepath.Join(t.TempDir(), "state.json"))

	_, err := run(t, "cart", "add", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid product id "abc"`)
}
