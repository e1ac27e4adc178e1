package drops

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/collectionlog/backend/internal/server/httpserver"
	"github.com/collectionlog/backend/internal/server/svr"
)

func newTestApp() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: httpserver.ErrorHandler})
	public, _ := svr.CreateEndpointGroups(app)
	// validation failures must never reach the service
	RegisterItemDrops(public, ItemDrops{ItemDropsService: nil})
	return app
}

func TestGetItemDropsValidation(t *testing.T) {
	app := newTestApp()

	tests := []struct {
		name    string
		target  string
		wantMsg string
	}{
		{"no params", "/item-drops", "Missing ?itemId="},
		{"blank itemId", "/item-drops?itemId=", "Missing ?itemId="},
		{"blank alias", "/item-drops?id=%20", "Missing ?itemId="},
		{"letters", "/item-drops?itemId=abc", "Invalid itemId"},
		{"negative", "/item-drops?itemId=-5", "Invalid itemId"},
		{"decimal", "/item-drops?id=1.5", "Invalid itemId"},
		{"blank itemId falls back to alias", "/item-drops?itemId=&id=x", "Invalid itemId"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, tt.target, nil))
			require.NoError(t, err)

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, tt.wantMsg, gjson.GetBytes(body, "error").String())
		})
	}
}
