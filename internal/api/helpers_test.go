package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/smartdiet-sl/smartdiet/backend/internal/models"
	"github.com/smartdiet-sl/smartdiet/backend/internal/nutrition"
	"github.com/smartdiet-sl/smartdiet/backend/internal/service"
	"github.com/smartdiet-sl/smartdiet/backend/internal/testhelpers"
	"github.com/smartdiet-sl/smartdiet/backend/internal/types"
)

// testEnv is a router wired to real services over an in-memory database,
// with mocked language model and image storage.
type testEnv struct {
	router  *gin.Engine
	db      *gorm.DB
	auth    *service.AuthService
	llm     *testhelpers.MockChatCompletionProvider
	storage *testhelpers.MockImageStorage
}

func newTestEnv(t *testing.T) *testEnv {
	return newTestEnvWith(t, nil)
}

// newTestEnvWith builds the environment; provider, when set, replaces the
// mocked language model for both diet plans and the chatbot.
func newTestEnvWith(t *testing.T, provider service.ChatCompletionProvider) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupTestDatabase(t)
	env := &testEnv{
		db:      db,
		auth:    service.NewAuthService(db, "test-secret", time.Hour),
		llm:     new(testhelpers.MockChatCompletionProvider),
		storage: new(testhelpers.MockImageStorage),
	}
	if provider == nil {
		provider = env.llm
	}

	foods := service.NewFoodService(db)
	products := service.NewProductService(db)
	svc := Services{
		DB:         db,
		Auth:       env.auth,
		Users:      service.NewUserService(db),
		Foods:      foods,
		DietPlans:  service.NewDietPlanService(db),
		Plates:     service.NewPlateService(db, foods, nutrition.NewestPicker{}, service.PlateConfig{}),
		Diet:       service.NewDietService(db, provider),
		Chatbot:    service.NewChatbotService(provider, service.NewMemoryConversationStore(), service.DefaultChatbotOptions()),
		MealLogs:   service.NewMealLogService(db, foods),
		Tips:       service.NewTipService(db),
		Products:   products,
		Orders:     service.NewOrderService(db),
		Calculator: service.NewCalculatorService(foods, products),
		Storage:    env.storage,
	}

	env.router = gin.New()
	RegisterRoutes(env.router, svc, NewGuards(env.auth, nil))
	return env
}

// createUser registers a user and returns it with a bearer token.
func (e *testEnv) createUser(t *testing.T, email, role string) (*models.User, string) {
	t.Helper()
	user, token, err := e.auth.Register(context.Background(), types.RegisterRequest{
		Name:     "Test User",
		Email:    email,
		Password: "secret123",
	})
	require.NoError(t, err)
	if role != models.RoleUser {
		require.NoError(t, e.db.Model(user).Update("role", role).Error)
		user.Role = role
	}
	return user, token
}

func (e *testEnv) createFood(t *testing.T, name string, n models.Nutrition) *models.TraditionalFood {
	t.Helper()
	f := models.NewTraditionalFood()
	f.Name = models.LocalizedText{EN: name}
	f.Type = models.FoodTypeDish
	f.Category = "other"
	f.Nutrition = n
	require.NoError(t, e.db.Create(f).Error)
	return f
}

func (e *testEnv) createProduct(t *testing.T, name string, price float64, stock int) *models.Product {
	t.Helper()
	p := models.NewProduct()
	p.Name = name
	p.Category = "grains"
	p.Price = price
	p.CountInStock = stock
	p.Nutrition = models.Nutrition{Calories: 350, Protein: 7}
	require.NoError(t, e.db.Create(p).Error)
	return p
}

// PerformRequestWithToken performs an HTTP request with a JSON body and an
// optional bearer token.
func (e *testEnv) PerformRequestWithToken(method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request

	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		req = httptest.NewRequest(method, path, bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	e.router.ServeHTTP(w, req)
	return w
}

type testFile struct {
	field       string
	name        string
	contentType string
	data        []byte
}

// PerformMultipart sends fields and an optional file as multipart/form-data.
func (e *testEnv) PerformMultipart(method, path string, fields map[string]string, file *testFile, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := writer.WriteField(k, v); err != nil {
			panic(err)
		}
	}
	if file != nil {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, file.field, file.name))
		h.Set("Content-Type", file.contentType)
		part, err := writer.CreatePart(h)
		if err != nil {
			panic(err)
		}
		if _, err := part.Write(file.data); err != nil {
			panic(err)
		}
	}
	if err := writer.Close(); err != nil {
		panic(err)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

var anyContext = mock.Anything

func uploadResult(url string) *service.UploadResult {
	return &service.UploadResult{URL: url, Path: "smart-diet-sl/test.jpg", PublicID: "smart-diet-sl/test"}
}
