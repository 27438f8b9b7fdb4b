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

// QuestionnaireHandlerParams holds dependencies for QuestionnaireHandler, injected by Fx.
type QuestionnaireHandlerParams struct {
	fx.In

	QuestionnaireUC usecase.QuestionnaireUsecase
	Logger          *slog.Logger
}

// QuestionnaireHandler serves questionnaires, their questions and share codes
type QuestionnaireHandler struct {
	questionnaireUC usecase.QuestionnaireUsecase
	logger          *slog.Logger
}

// NewQuestionnaireHandler is the constructor for QuestionnaireHandler
func NewQuestionnaireHandler(params QuestionnaireHandlerParams) *QuestionnaireHandler {
	return &QuestionnaireHandler{
		questionnaireUC: params.QuestionnaireUC,
		logger:          params.Logger,
	}
}

// CreateQuestionnaire creates a draft questionnaire for the authenticated account
func (h *QuestionnaireHandler) CreateQuestionnaire(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return unauthorized(c)
	}

	var req usecase.CreateQuestionnaireInput
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}

	questionnaire, err := h.questionnaireUC.Create(c.Request().Context(), accountID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, questionnaire)
}

// ListQuestionnaires lists the account's questionnaires, newest first
func (h *QuestionnaireHandler) ListQuestionnaires(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return unauthorized(c)
	}

	questionnaires, err := h.questionnaireUC.List(c.Request().Context(), accountID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, questionnaires)
}

// GetQuestionnaire returns one of the account's questionnaires
func (h *QuestionnaireHandler) GetQuestionnaire(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidID(c, "questionnaire")
	}

	questionnaire, err := h.questionnaireUC.Get(c.Request().Context(), accountID, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, questionnaire)
}

// UpdateQuestionnaire patches title, description or publish state
func (h *QuestionnaireHandler) UpdateQuestionnaire(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidID(c, "questionnaire")
	}

	var req usecase.UpdateQuestionnaireInput
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}

	questionnaire, err := h.questionnaireUC.Update(c.Request().Context(), accountID, id, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, questionnaire)
}

// DeleteQuestionnaire removes a questionnaire with its questions and responses
func (h *QuestionnaireHandler) DeleteQuestionnaire(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidID(c, "questionnaire")
	}

	if err := h.questionnaireUC.Delete(c.Request().Context(), accountID, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return messageResponse(c, "Questionnaire deleted successfully")
}

// AddQuestion appends a question to the questionnaire in the path
func (h *QuestionnaireHandler) AddQuestion(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return unauthorized(c)
	}

	questionnaireID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidID(c, "questionnaire")
	}

	var req usecase.AddQuestionInput
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}

	question, err := h.questionnaireUC.AddQuestion(c.Request().Context(), accountID, questionnaireID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, question)
}

// ListQuestions lists the questionnaire's questions in display order
func (h *QuestionnaireHandler) ListQuestions(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return unauthorized(c)
	}

	questionnaireID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidID(c, "questionnaire")
	}

	questions, err := h.questionnaireUC.ListQuestions(c.Request().Context(), accountID, questionnaireID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, questions)
}

// DeleteQuestion removes a question owned by the account
func (h *QuestionnaireHandler) DeleteQuestion(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return unauthorized(c)
	}

	questionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidID(c, "question")
	}

	if err := h.questionnaireUC.DeleteQuestion(c.Request().Context(), accountID, questionID); err != nil {
		return response.HandleAppError(c, err)
	}

	return messageResponse(c, "Question deleted successfully")
}

// ShareQR returns the questionnaire's public link as a PNG QR code
func (h *QuestionnaireHandler) ShareQR(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidID(c, "questionnaire")
	}

	png, err := h.questionnaireUC.ShareQR(c.Request().Context(), accountID, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// GetPublicQuestionnaire returns a published questionnaire to anyone
func (h *QuestionnaireHandler) GetPublicQuestionnaire(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidID(c, "questionnaire")
	}

	questionnaire, err := h.questionnaireUC.GetPublic(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, questionnaire)
}

// ListPublicQuestions returns the questions of a published questionnaire
func (h *QuestionnaireHandler) ListPublicQuestions(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidID(c, "questionnaire")
	}

	questions, err := h.questionnaireUC.ListPublicQuestions(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, questions)
}
