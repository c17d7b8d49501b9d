package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"linkup/internal/entity"
	"linkup/internal/repo/persistent"
	"linkup/internal/usecase"
	"linkup/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProfileUseCase is a mock implementation of ProfileUseCase
type MockProfileUseCase struct {
	mock.Mock
}

func (m *MockProfileUseCase) Get(userID string) (*entity.Profile, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Profile), args.Error(1)
}

func (m *MockProfileUseCase) Update(userID string, input usecase.UpdateProfileInput) error {
	args := m.Called(userID, input)
	return args.Error(0)
}

// MockMediaUseCase is a mock implementation of MediaUseCase
type MockMediaUseCase struct {
	mock.Mock
}

func (m *MockMediaUseCase) ResolveDisplayURL(path string) string {
	args := m.Called(path)
	return args.String(0)
}

func (m *MockMediaUseCase) Upload(folder string, media *entity.LocalMedia) (string, error) {
	args := m.Called(folder, media)
	return args.String(0), args.Error(1)
}

func (m *MockMediaUseCase) Download(remoteURL string) (string, error) {
	args := m.Called(remoteURL)
	return args.String(0), args.Error(1)
}

var _ usecase.ProfileUseCase = (*MockProfileUseCase)(nil)
var _ usecase.MediaUseCase = (*MockMediaUseCase)(nil)

func TestGetProfile_ResolvesImageURL(t *testing.T) {
	mockProfiles := new(MockProfileUseCase)
	mockMedia := new(MockMediaUseCase)
	handler := NewProfileHandler(mockProfiles, mockMedia, logger.New())

	router := setupTestRouter()
	router.GET("/profiles/:id", handler.GetProfile)

	mockProfiles.On("Get", "user-1").Return(&entity.Profile{
		ID: "user-1", Name: "Alice", Image: "profiles/alice.png",
	}, nil)
	mockMedia.On("ResolveDisplayURL", "profiles/alice.png").
		Return("http://storage.test/storage/v1/object/public/uploads/profiles/alice.png")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/profiles/user-1", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "http://storage.test/storage/v1/object/public/uploads/profiles/alice.png", data["imageUrl"])
	mockMedia.AssertExpectations(t)
}

func TestGetProfile_NotFound(t *testing.T) {
	mockProfiles := new(MockProfileUseCase)
	mockMedia := new(MockMediaUseCase)
	handler := NewProfileHandler(mockProfiles, mockMedia, logger.New())

	router := setupTestRouter()
	router.GET("/profiles/:id", handler.GetProfile)

	mockProfiles.On("Get", "ghost").Return(nil, persistent.ErrNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/profiles/ghost", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateProfile_PartialEdit(t *testing.T) {
	mockProfiles := new(MockProfileUseCase)
	mockMedia := new(MockMediaUseCase)
	handler := NewProfileHandler(mockProfiles, mockMedia, logger.New())

	router := setupTestRouter()
	router.PUT("/profile", func(c *gin.Context) {
		c.Set("user_id", "user-1")
		handler.UpdateProfile(c)
	})

	mockProfiles.On("Update", "user-1", mock.MatchedBy(func(input usecase.UpdateProfileInput) bool {
		return input.Name != nil && *input.Name == "New Name" &&
			input.Bio == nil && input.Image == nil
	})).Return(nil)

	body, _ := json.Marshal(map[string]string{"name": "New Name"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/profile", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockProfiles.AssertExpectations(t)
}
