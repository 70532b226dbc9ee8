package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"backend/config"
	"backend/models"
	"backend/storage"
)

type SessionController struct {
	store *storage.Store
	cfg   *config.Config
}

func NewSessionController(store *storage.Store, cfg *config.Config) *SessionController {
	return &SessionController{store: store, cfg: cfg}
}

type createSessionInput struct {
	StartDate   string `json:"startDate"`
	StartTime   string `json:"startTime"`
	Description string `json:"description"`
}

func (s *SessionController) List(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	sessions, err := s.store.ListSessions(ctx)
	if err != nil {
		serverError(c, "list sessions", err)
		return
	}

	views := make([]models.SessionView, 0, len(sessions))
	for _, session := range sessions {
		views = append(views, models.NewSessionView(session))
	}

	c.JSON(http.StatusOK, gin.H{"sessions": views})
}

func (s *SessionController) Create(c *gin.Context) {
	var input createSessionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_datetime"})
		return
	}

	startAt, err := models.ParseStartAt(input.StartDate, input.StartTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_datetime"})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	id, err := s.store.NextSequence(ctx, storage.SessionIDKey)
	if err != nil {
		serverError(c, "session id allocation", err)
		return
	}

	session := models.Session{
		ID:          id,
		StartAt:     startAt,
		Description: input.Description,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.store.InsertSession(ctx, session); err != nil {
		serverError(c, "session insert", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"session": models.NewSessionView(session)})
}

// Delete removes a session and all of its attempts. Deleting an id that
// never existed still answers 204.
func (s *SessionController) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_id"})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := s.store.DeleteSessionCascade(ctx, id); err != nil {
		serverError(c, "session delete", err)
		return
	}

	c.Status(http.StatusNoContent)
}
