package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"devdash/internal/domain/dashboard"
	"devdash/internal/utils/logger"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Stats(ctx context.Context) (dashboard.Stats, error) {
	args := m.Called(ctx)
	return args.Get(0).(dashboard.Stats), args.Error(1)
}

func TestHandler_Stats(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		// Arrange
		svc := new(MockService)
		want := dashboard.Stats{TotalProjects: 6, Completed: 2, InProgress: 3, Cancelled: 1, Archived: 2}
		svc.On("Stats", mock.Anything).Return(want, nil)

		_, api := humatest.New(t)
		NewHandler(svc, logger.Discard(), huma.Middlewares{}).SetupRoutes(api)

		// Act
		resp := api.Get("/api/v1/dashboard/stats")

		// Assert
		require.Equal(t, http.StatusOK, resp.Code)
		var got dashboard.Stats
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
		assert.Equal(t, want, got)
		svc.AssertExpectations(t)
	})

	t.Run("service error", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Stats", mock.Anything).Return(dashboard.Stats{}, errors.New("db down"))

		_, api := humatest.New(t)
		NewHandler(svc, logger.Discard(), huma.Middlewares{}).SetupRoutes(api)

		resp := api.Get("/api/v1/dashboard/stats")

		assert.Equal(t, http.StatusInternalServerError, resp.Code)
	})
}
