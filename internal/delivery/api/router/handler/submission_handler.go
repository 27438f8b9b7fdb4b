package handler

import (
	"log/slog"
	"net/http"

	"curator/internal/delivery/api/middleware"
	"curator/internal/delivery/api/response"
	"curator/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SubmissionHandlerParams holds dependencies for SubmissionHandler, injected by Fx.
type SubmissionHandlerParams struct {
	fx.In

	SubmissionUC usecase.SubmissionUsecase
	Logger       *slog.Logger
}

// SubmissionHandler records customer responses and lists them for their owner
type SubmissionHandler struct {
	submissionUC usecase.SubmissionUsecase
	logger       *slog.Logger
}

// NewSubmissionHandler is the constructor for SubmissionHandler
func NewSubmissionHandler(params SubmissionHandlerParams) *SubmissionHandler {
	return &SubmissionHandler{
		submissionUC: params.SubmissionUC,
		logger:       params.Logger,
	}
}

type pageQuery struct {
	Page  int
	Limit int
}

func bindPageQuery(c echo.Context) (pageQuery, error) {
	var q pageQuery
	err := echo.QueryParamsBinder(c).
		Int("page", &q.Page).
		Int("limit", &q.Limit).
		BindError()

	return q, err
}

// Submit stores a customer's answers and returns the recommended products
func (h *SubmissionHandler) Submit(c echo.Context) error {
	questionnaireID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidID(c, "questionnaire")
	}

	var req usecase.SubmitInput
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}

	out, err := h.submissionUC.Submit(c.Request().Context(), questionnaireID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, out)
}

// ListResponses pages through the responses of one questionnaire
func (h *SubmissionHandler) ListResponses(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return unauthorized(c)
	}

	questionnaireID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidID(c, "questionnaire")
	}

	q, err := bindPageQuery(c)
	if err != nil {
		return response.BadRequest(c, errCodeInvalidInput, "page and limit must be integers")
	}

	page, err := h.submissionUC.ListResponses(c.Request().Context(), accountID, questionnaireID, q.Page, q.Limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page)
}

// ListAccountResponses pages through the responses of every questionnaire of the account
func (h *SubmissionHandler) ListAccountResponses(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return unauthorized(c)
	}

	q, err := bindPageQuery(c)
	if err != nil {
		return response.BadRequest(c, errCodeInvalidInput, "page and limit must be integers")
	}

	page, err := h.submissionUC.ListAccountResponses(c.Request().Context(), accountID, q.Page, q.Limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page)
}
