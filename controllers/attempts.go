package controllers

import (
	"math"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"backend/config"
	"backend/middleware"
	"backend/models"
	"backend/storage"
)

type AttemptController struct {
	store *storage.Store
	cfg   *config.Config
}

func NewAttemptController(store *storage.Store, cfg *config.Config) *AttemptController {
	return &AttemptController{store: store, cfg: cfg}
}

type submitAttemptInput struct {
	Rate interface{} `json:"rate"`
}

type leaderboardEntry struct {
	Rank     int    `json:"rank"`
	UserName string `json:"userName"`
	Rate     int    `json:"rate"`
}

func (a *AttemptController) Leaderboard(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_id"})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	rows, err := a.store.BestRates(ctx, id)
	if err != nil {
		serverError(c, "leaderboard aggregation", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"leaderboard": rankLeaderboard(rows)})
}

// rankLeaderboard orders best rates descending with ties broken by
// ascending userName and assigns ranks 1..N in that order.
func rankLeaderboard(rows []storage.LeaderboardRow) []leaderboardEntry {
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Rate != rows[j].Rate {
			return rows[i].Rate > rows[j].Rate
		}
		return rows[i].UserName < rows[j].UserName
	})

	entries := make([]leaderboardEntry, 0, len(rows))
	for i, row := range rows {
		entries = append(entries, leaderboardEntry{
			Rank:     i + 1,
			UserName: row.UserName,
			Rate:     row.Rate,
		})
	}
	return entries
}

// List returns one user's attempts for a session. Players may only query
// their own name; admins may query anyone's.
func (a *AttemptController) List(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_id"})
		return
	}

	target := c.Query("userName")
	if target == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing_username"})
		return
	}

	caller, role := middleware.Identity(c)
	if role != models.RoleAdmin && caller != target {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	attempts, err := a.store.ListAttempts(ctx, id, target)
	if err != nil {
		serverError(c, "list attempts", err)
		return
	}

	views := make([]models.AttemptView, 0, len(attempts))
	for _, attempt := range attempts {
		views = append(views, models.NewAttemptView(attempt))
	}

	c.JSON(http.StatusOK, gin.H{"attempts": views})
}

// Submit records a rate for the authenticated player. The referenced
// session is not checked for existence: attempts against a deleted or
// never-created id are stored but never surface in any query.
func (a *AttemptController) Submit(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_id"})
		return
	}

	var input submitAttemptInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_rate"})
		return
	}

	rate, ok := coerceRate(input.Rate)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_rate"})
		return
	}

	caller, _ := middleware.Identity(c)

	ctx, cancel := requestContext(c)
	defer cancel()

	attempt := models.Attempt{
		SessionID: id,
		UserName:  caller,
		Rate:      rate,
		CreatedAt: time.Now().UTC(),
	}
	if err := a.store.InsertAttempt(ctx, attempt); err != nil {
		serverError(c, "attempt insert", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true})
}

// coerceRate accepts a JSON number or numeric string and requires an
// integer in [1,100].
func coerceRate(v interface{}) (int, bool) {
	var f float64
	switch val := v.(type) {
	case float64:
		f = val
	case string:
		parsed, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}

	if f != math.Trunc(f) {
		return 0, false
	}
	rate := int(f)
	if rate < 1 || rate > 100 {
		return 0, false
	}
	return rate, true
}
