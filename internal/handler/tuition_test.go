package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"etuition/internal/errdefs"
	"etuition/internal/model"
	"etuition/internal/service"
	"etuition/internal/service/mocks"
)

func setupTuitionRouter(t *testing.T) (*gomock.Controller, chi.Router, *mocks.MockTuitionRepository, *memoryCache) {
	ctrl := gomock.NewController(t)
	mockTuitionRepo := mocks.NewMockTuitionRepository(ctrl)
	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	cache := newMemoryCache()

	h := NewTuitionHandler(service.NewTuitionService(mockTuitionRepo, mockUserRepo), cache)
	r := chi.NewRouter()
	h.RegisterRoutes(r, passthrough, passthrough)
	return ctrl, r, mockTuitionRepo, cache
}

func TestCreatePostHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		ctrl, router, mockRepo, _ := setupTuitionRouter(t)
		defer ctrl.Finish()

		mockRepo.EXPECT().CreatePost(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, input *model.RepositoryCreatePostInput) (*model.TuitionPost, error) {
				return &model.TuitionPost{Id: input.Id, Subject: input.Subject, Status: input.Status}, nil
			})

		body := `{"userEmail":"s@example.com","subject":"Math","location":"Dhaka","budget":5000}`
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/post-new-tuition", strings.NewReader(body)))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "pending approval")
	})

	t.Run("Error_MissingFields", func(t *testing.T) {
		_, router, _, _ := setupTuitionRouter(t)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/post-new-tuition",
			strings.NewReader(`{"subject":"Math"}`)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestListApprovedHandler(t *testing.T) {
	t.Run("Success_SecondHitFromCache", func(t *testing.T) {
		ctrl, router, mockRepo, _ := setupTuitionRouter(t)
		defer ctrl.Finish()

		mockRepo.EXPECT().ListApprovedPosts(gomock.Any()).
			Return([]*model.TuitionPost{{Id: uuid.New(), Subject: "Math", Status: model.PostStatusApproved}}, nil).
			Times(1)

		for range 2 {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/all-approved-tuitions", nil))
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), "Math")
		}
	})
}

func TestGetApprovedPostHandler(t *testing.T) {
	t.Run("Error_PendingPostHidden", func(t *testing.T) {
		ctrl, router, mockRepo, _ := setupTuitionRouter(t)
		defer ctrl.Finish()

		id := uuid.New()
		mockRepo.EXPECT().GetApprovedPost(gomock.Any(), id).Return(nil, errdefs.ErrNotFound)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/all-tuition/"+id.String(), nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestSetStatusHandler(t *testing.T) {
	t.Run("Success_InvalidatesListingCache", func(t *testing.T) {
		ctrl, router, mockRepo, cache := setupTuitionRouter(t)
		defer ctrl.Finish()

		cache.data[approvedListingCacheKey] = []byte(`[]`)

		id := uuid.New()
		mockRepo.EXPECT().SetStatus(gomock.Any(), id, model.PostStatusApproved, gomock.Any()).
			Return(&model.TuitionPost{Id: id, Status: model.PostStatusApproved}, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/tuitions/status/"+id.String(),
			strings.NewReader(`{"status":"Approved"}`)))

		assert.Equal(t, http.StatusOK, w.Code)
		_, cached := cache.Get(context.Background(), approvedListingCacheKey)
		assert.False(t, cached)
	})

	t.Run("Error_InvalidStatus", func(t *testing.T) {
		_, router, _, _ := setupTuitionRouter(t)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/tuitions/status/"+uuid.NewString(),
			strings.NewReader(`{"status":"Archived"}`)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
