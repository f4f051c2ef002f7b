package api

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/chrinovic123/PsychoMetricBot/i18n"
	"github.com/chrinovic123/PsychoMetricBot/models"
	"github.com/chrinovic123/PsychoMetricBot/repository"
	"github.com/chrinovic123/PsychoMetricBot/services"
	"github.com/chrinovic123/PsychoMetricBot/utils"
)

// APIHandler holds the dependencies for the HTTP surface a chat transport
// drives: the test service for session flow, the result archive, and the
// localization store for every user-facing string.
type APIHandler struct {
	testService services.TestService
	resultRepo  repository.ResultRepository
	store       *i18n.Store
}

// NewAPIHandler creates an APIHandler with its dependencies.
func NewAPIHandler(testService services.TestService, resultRepo repository.ResultRepository, store *i18n.Store) *APIHandler {
	return &APIHandler{
		testService: testService,
		resultRepo:  resultRepo,
		store:       store,
	}
}

// MenuHandler returns the localized start message plus the selectable
// tests, mirroring the original /start command.
func (h *APIHandler) MenuHandler(c *gin.Context) {
	entries := make([]models.MenuEntry, 0, len(models.AllTestIDs))
	for _, id := range models.AllTestIDs {
		entries = append(entries, models.MenuEntry{
			TestID: id,
			Label:  h.store.T("menu." + string(id)),
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"message": h.store.T("main.start_message"),
		"tests":   entries,
	})
}

// HelpHandler returns the localized help text, mirroring /help.
func (h *APIHandler) HelpHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": h.store.T("main.help_message"),
	})
}

// StartTestHandler starts (or restarts) a test for a user. A missing
// user_id gets a minted guest identity so anonymous transports can still
// hold a session.
func (h *APIHandler) StartTestHandler(c *gin.Context) {
	var req models.StartTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Invalid request format.", err)
		return
	}
	if !req.TestID.IsValid() {
		utils.SendJSONError(c, http.StatusBadRequest, fmt.Sprintf("Unknown test ID '%s'.", req.TestID), nil)
		return
	}
	if req.UserID == "" {
		req.UserID = "guest_" + uuid.NewString()
		log.Printf("INFO: [API] No userID provided, generated guest ID: %s", req.UserID)
	}

	question, report, err := h.testService.StartTest(req.UserID, req.TestID)
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "Failed to start the test.", err)
		return
	}
	if report != "" {
		c.JSON(http.StatusOK, gin.H{"user_id": req.UserID, "report": report})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user_id": req.UserID, "question": question})
}

// CurrentQuestionHandler returns the question the user's session is
// waiting on.
func (h *APIHandler) CurrentQuestionHandler(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		utils.SendJSONError(c, http.StatusBadRequest, "user_id is required.", nil)
		return
	}
	question, ok := h.testService.CurrentQuestion(userID)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"status": "none", "message": h.store.T("main.no_active_test")})
		return
	}
	if question == nil {
		c.JSON(http.StatusOK, gin.H{"status": "complete"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "in_progress", "question": question})
}

// AnswerHandler records the selected option for the user's current
// question and responds with either the next question or the final
// report. An answer from a user with no session is acknowledged without
// an error: stale transport callbacks are expected and must not surface
// a failure to the end user.
func (h *APIHandler) AnswerHandler(c *gin.Context) {
	var req models.AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Invalid request format.", err)
		return
	}

	question, report, err := h.testService.SubmitAnswer(req.UserID, req.OptionIndex)
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "Failed to process the answer.", err)
		return
	}
	switch {
	case report != "":
		c.JSON(http.StatusOK, gin.H{"status": "complete", "report": report})
	case question != nil:
		c.JSON(http.StatusOK, gin.H{"status": "in_progress", "question": question})
	default:
		c.JSON(http.StatusOK, gin.H{"status": "ignored", "message": h.store.T("main.no_active_test")})
	}
}

// CancelHandler abandons the user's test in progress, mirroring /cancel.
func (h *APIHandler) CancelHandler(c *gin.Context) {
	var req models.CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Invalid request format.", err)
		return
	}
	h.testService.Cancel(req.UserID)
	c.JSON(http.StatusOK, gin.H{"message": h.store.T("main.cancel_message")})
}

// SetLanguageHandler switches the active language for user-facing text.
func (h *APIHandler) SetLanguageHandler(c *gin.Context) {
	var req models.SetLanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Invalid request format.", err)
		return
	}
	if !h.store.SetLanguage(req.Language) {
		utils.SendJSONError(c, http.StatusBadRequest, fmt.Sprintf("Language '%s' is not available.", req.Language), nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"language": h.store.Current()})
}

// ResultsHandler returns the user's archived reports.
func (h *APIHandler) ResultsHandler(c *gin.Context) {
	userID := c.Param("userID")
	results, err := h.resultRepo.GetResultsByUserID(userID)
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "Failed to fetch results.", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user_id": userID, "results": results})
}
