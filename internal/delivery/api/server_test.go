package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"curator/config"
	apimiddleware "curator/internal/delivery/api/middleware"
	"curator/internal/delivery/api/router"
	"curator/internal/delivery/api/router/handler"
	"curator/internal/domain/entity"
	domainerrors "curator/internal/domain/errors"
	"curator/internal/domain/repository"
	"curator/internal/domain/service"
	"curator/internal/errors"
	mockservice "curator/internal/mocks/service"
	mockusecase "curator/internal/mocks/usecase"
	"curator/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testToken = "access-token"

type apiFixture struct {
	e              *echo.Echo
	accountID      uuid.UUID
	questionnaires *mockusecase.MockQuestionnaireUsecase
	products       *mockusecase.MockProductUsecase
	submissions    *mockusecase.MockSubmissionUsecase
	accounts       *mockusecase.MockAccountUsecase
	sessions       *mockusecase.MockSessionUsecase
	devices        *mockusecase.MockDeviceUsecase
	images         *mockservice.MockImageStorage
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.Storage = &config.StorageConfig{MaxImageSize: "1KB"}
	cfg.RateLimit = &config.RateLimitConfig{Enabled: true, RequestsPerMinute: 1, Burst: 1, IdleTTL: time.Minute}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f := &apiFixture{
		accountID:      uuid.New(),
		questionnaires: mockusecase.NewMockQuestionnaireUsecase(t),
		products:       mockusecase.NewMockProductUsecase(t),
		submissions:    mockusecase.NewMockSubmissionUsecase(t),
		accounts:       mockusecase.NewMockAccountUsecase(t),
		sessions:       mockusecase.NewMockSessionUsecase(t),
		devices:        mockusecase.NewMockDeviceUsecase(t),
		images:         mockservice.NewMockImageStorage(t),
	}

	tokenSvc := mockservice.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateAccessToken(testToken).
		Return(&service.Claims{AccountID: f.accountID, Type: service.TokenTypeAccess}, nil).Maybe()
	tokenSvc.EXPECT().ValidateAccessToken(mock.MatchedBy(func(s string) bool { return s != testToken })).
		Return(nil, errors.New("token is malformed")).Maybe()

	e, err := newEcho(cfg, logger, router.RouterParams{
		SessionHandler:       handler.NewSessionHandler(handler.SessionHandlerParams{SessionUC: f.sessions, Logger: logger}),
		AccountHandler:       handler.NewAccountHandler(handler.AccountHandlerParams{AccountUC: f.accounts, Logger: logger}),
		QuestionnaireHandler: handler.NewQuestionnaireHandler(handler.QuestionnaireHandlerParams{QuestionnaireUC: f.questionnaires, Logger: logger}),
		ProductHandler:       handler.NewProductHandler(handler.ProductHandlerParams{ProductUC: f.products, Logger: logger}),
		SubmissionHandler:    handler.NewSubmissionHandler(handler.SubmissionHandlerParams{SubmissionUC: f.submissions, Logger: logger}),
		DeviceHandler:        handler.NewDeviceHandler(handler.DeviceHandlerParams{DeviceUC: f.devices, Logger: logger}),
		ImageHandler:         handler.NewImageHandler(handler.ImageHandlerParams{ImageStorage: f.images, Logger: logger}),
		AuthMiddleware:       apimiddleware.NewAuthMiddleware(tokenSvc, logger),
		RateLimitMiddleware:  apimiddleware.NewRateLimitMiddleware(cfg),
	})
	require.NoError(t, err)
	f.e = e

	return f
}

func (f *apiFixture) do(t *testing.T, method, path, body string, authed bool) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if authed {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+testToken)
	}

	return f.serve(t, req)
}

func (f *apiFixture) serve(t *testing.T, req *http.Request) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func TestHealth(t *testing.T) {
	f := newAPIFixture(t)

	rec, env := f.do(t, http.MethodGet, "/health", "", false)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))
	assert.NotEmpty(t, env.Meta.RequestID)
}

func TestAccountRoutesRequireToken(t *testing.T) {
	f := newAPIFixture(t)

	for _, path := range []string{"/api/v1/account", "/api/v1/questionnaires", "/api/v1/products", "/api/v1/responses", "/api/v1/devices"} {
		rec, env := f.do(t, http.MethodGet, path, "", false)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
		require.NotNil(t, env.Error, path)
		assert.Equal(t, "UNAUTHORIZED", env.Error.Code, path)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/questionnaires", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer forged")
	rec, _ := f.serve(t, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateQuestionnaire(t *testing.T) {
	f := newAPIFixture(t)
	created := &entity.Questionnaire{ID: uuid.New(), AccountID: f.accountID, Title: "Cheese quiz"}
	f.questionnaires.EXPECT().
		Create(mock.Anything, f.accountID, &usecase.CreateQuestionnaireInput{Title: "Cheese quiz"}).
		Return(created, nil)

	rec, env := f.do(t, http.MethodPost, "/api/v1/questionnaires", `{"title":"Cheese quiz"}`, true)

	assert.Equal(t, http.StatusCreated, rec.Code)
	var got entity.Questionnaire
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Cheese quiz", got.Title)
}

func TestErrorMapping(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantDetails any
	}{
		{name: "forbidden", err: domainerrors.ErrForbidden, wantStatus: http.StatusForbidden, wantCode: "FORBIDDEN"},
		{name: "not found", err: domainerrors.ErrQuestionnaireNotFound, wantStatus: http.StatusNotFound, wantCode: "QUESTIONNAIRE_NOT_FOUND"},
		{
			name:        "validation",
			err:         domainerrors.ErrValidationFailed.WithDetails("title failed on max"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_FAILED",
			wantDetails: "title failed on max",
		},
		{name: "store failure", err: errors.New("connection reset"), wantStatus: http.StatusInternalServerError, wantCode: "INTERNAL_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAPIFixture(t)
			f.questionnaires.EXPECT().Get(mock.Anything, f.accountID, id).Return(nil, tt.err)

			rec, env := f.do(t, http.MethodGet, "/api/v1/questionnaires/"+id.String(), "", true)

			assert.Equal(t, tt.wantStatus, rec.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantCode, env.Error.Code)
			assert.Equal(t, tt.wantDetails, env.Error.Details)
		})
	}
}

func TestInvalidPathID(t *testing.T) {
	f := newAPIFixture(t)

	rec, env := f.do(t, http.MethodDelete, "/api/v1/questions/not-a-uuid", "", true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_ID", env.Error.Code)
}

func TestDeleteQuestion(t *testing.T) {
	f := newAPIFixture(t)
	questionID := uuid.New()
	f.questionnaires.EXPECT().DeleteQuestion(mock.Anything, f.accountID, questionID).Return(nil)

	rec, _ := f.do(t, http.MethodDelete, "/api/v1/questions/"+questionID.String(), "", true)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAddQuestionUsesPathParent(t *testing.T) {
	f := newAPIFixture(t)
	questionnaireID := uuid.New()
	f.questionnaires.EXPECT().
		AddQuestion(mock.Anything, f.accountID, questionnaireID, mock.AnythingOfType("*usecase.AddQuestionInput")).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, qid uuid.UUID, input *usecase.AddQuestionInput) (*entity.Question, error) {
			assert.Equal(t, entity.QuestionTypeMultipleChoice, input.Type)
			assert.Equal(t, []string{"Mild", "Sharp"}, input.Options)

			return &entity.Question{ID: uuid.New(), QuestionnaireID: qid, Text: input.Text, Type: input.Type, Options: input.Options}, nil
		})

	body := `{"text":"Preferred taste?","type":"multiple-choice","options":["Mild","Sharp"],"questionnaire_id":"` + uuid.NewString() + `"}`
	rec, env := f.do(t, http.MethodPost, "/api/v1/questionnaires/"+questionnaireID.String()+"/questions", body, true)

	assert.Equal(t, http.StatusCreated, rec.Code)
	var got entity.Question
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, questionnaireID, got.QuestionnaireID)
}

func TestShareQR(t *testing.T) {
	f := newAPIFixture(t)
	id := uuid.New()
	png := []byte("\x89PNG\r\n\x1a\n")
	f.questionnaires.EXPECT().ShareQR(mock.Anything, f.accountID, id).Return(png, nil)

	rec, _ := f.do(t, http.MethodGet, "/api/v1/questionnaires/"+id.String()+"/qr", "", true)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestListResponsesPaging(t *testing.T) {
	f := newAPIFixture(t)
	id := uuid.New()
	page := repository.NewPage([]*entity.Response{{ID: uuid.New(), QuestionnaireID: id}}, repository.NewPageRequest(2, 1), 3)
	f.submissions.EXPECT().ListResponses(mock.Anything, f.accountID, id, 2, 1).Return(page, nil)

	rec, env := f.do(t, http.MethodGet, "/api/v1/questionnaires/"+id.String()+"/responses?page=2&limit=1", "", true)

	assert.Equal(t, http.StatusOK, rec.Code)
	var got repository.Page[*entity.Response]
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, 2, got.CurrentPage)
	assert.Equal(t, 3, got.TotalPages)
	assert.Len(t, got.Items, 1)

	rec, _ = f.do(t, http.MethodGet, "/api/v1/responses?page=abc", "", true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPublicSubmitIsRateLimited(t *testing.T) {
	f := newAPIFixture(t)
	id := uuid.New()
	out := &usecase.SubmitOutput{
		Response:        &entity.Response{ID: uuid.New(), QuestionnaireID: id},
		Recommendations: []*entity.Product{{ID: uuid.New(), Name: "Brie"}},
	}
	f.submissions.EXPECT().
		Submit(mock.Anything, id, &usecase.SubmitInput{Answers: map[string]string{"q1": "Creamy"}}).
		Return(out, nil).Once()

	path := "/api/public/questionnaires/" + id.String() + "/submit"
	rec, env := f.do(t, http.MethodPost, path, `{"answers":{"q1":"Creamy"}}`, false)
	assert.Equal(t, http.StatusCreated, rec.Code)
	var got usecase.SubmitOutput
	require.NoError(t, json.Unmarshal(env.Data, &got))
	require.Len(t, got.Recommendations, 1)
	assert.Equal(t, "Brie", got.Recommendations[0].Name)

	rec, env = f.do(t, http.MethodPost, path, `{"answers":{"q1":"Creamy"}}`, false)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "TOO_MANY_REQUESTS", env.Error.Code)
}

func TestPublicReadsNeedNoToken(t *testing.T) {
	f := newAPIFixture(t)
	id := uuid.New()
	f.questionnaires.EXPECT().GetPublic(mock.Anything, id).Return(&entity.Questionnaire{ID: id, IsPublished: true}, nil)
	f.questionnaires.EXPECT().ListPublicQuestions(mock.Anything, id).Return([]*entity.Question{}, nil)
	f.accounts.EXPECT().GetPublicBranding(mock.Anything, id).Return(&usecase.Branding{BrandColor: entity.DefaultBrandColor}, nil)

	base := "/api/public/questionnaires/" + id.String()
	for _, path := range []string{base, base + "/questions", base + "/branding"} {
		rec, _ := f.do(t, http.MethodGet, path, "", false)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestGoogleSignIn(t *testing.T) {
	f := newAPIFixture(t)
	f.sessions.EXPECT().GoogleSignIn(mock.Anything, &usecase.GoogleSignInInput{IDToken: "google-id-token"}).
		Return(&usecase.SignInOutput{
			Account:      &entity.Account{ID: f.accountID},
			Tokens:       &usecase.SessionTokens{AccessToken: "a", RefreshToken: "r", TokenType: "Bearer", ExpiresIn: 900},
			IsNewAccount: true,
		}, nil)

	rec, env := f.do(t, http.MethodPost, "/auth/google", `{"id_token":"google-id-token"}`, false)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, string(env.Data), `"access_token":"a"`)
}

func newImageUpload(t *testing.T, path string, content []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(handler.ImageFormField, "brie.png")
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPut, path, &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+testToken)

	return req
}

func TestUploadImage(t *testing.T) {
	f := newAPIFixture(t)
	id := uuid.New()
	path := "/api/v1/products/" + id.String() + "/image"
	content := []byte("\x89PNG\r\n\x1a\nimage-bytes")

	f.products.EXPECT().
		UploadImage(mock.Anything, f.accountID, id, mock.AnythingOfType("*usecase.UploadImageInput")).
		RunAndReturn(func(_ context.Context, _, _ uuid.UUID, input *usecase.UploadImageInput) (*entity.Product, error) {
			data, err := io.ReadAll(input.Body)
			require.NoError(t, err)
			assert.Equal(t, content, data)
			assert.Equal(t, "brie.png", input.Filename)

			imageURL := "/images/products/" + id.String() + "/abc.png"

			return &entity.Product{ID: id, ImageURL: &imageURL}, nil
		})

	rec, _ := f.serve(t, newImageUpload(t, path, content))
	assert.Equal(t, http.StatusOK, rec.Code)

	// Exceeds the image limit plus multipart overhead.
	rec, _ = f.serve(t, newImageUpload(t, path, bytes.Repeat([]byte{0x1}, 70<<10)))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)

	req := httptest.NewRequest(http.MethodPut, path, strings.NewReader("{}"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+testToken)
	rec, env := f.serve(t, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_INPUT", env.Error.Code)
}

func TestGlobalBodyLimit(t *testing.T) {
	f := newAPIFixture(t)

	body := `{"name":"` + strings.Repeat("x", 120<<10) + `"}`
	rec, _ := f.do(t, http.MethodPost, "/api/v1/products", body, true)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestServeImage(t *testing.T) {
	f := newAPIFixture(t)
	f.images.EXPECT().Open(mock.Anything, "products/p1/abc.png").
		Return(io.NopCloser(strings.NewReader("png-bytes")), "image/png", nil)
	f.images.EXPECT().Open(mock.Anything, "products/p1/missing.png").
		Return(nil, "", service.ErrImageNotFound)

	rec, _ := f.do(t, http.MethodGet, "/images/products/p1/abc.png", "", false)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "png-bytes", rec.Body.String())
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.NotEmpty(t, rec.Header().Get("Cache-Control"))

	rec, _ = f.do(t, http.MethodGet, "/images/products/p1/missing.png", "", false)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
