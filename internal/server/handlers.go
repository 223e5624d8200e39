package server

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/devika/mathquest/internal/catalog"
	"github.com/devika/mathquest/internal/minigame"
	"github.com/devika/mathquest/internal/quest"
	"github.com/devika/mathquest/internal/session"
	"github.com/devika/mathquest/internal/solver"
	"github.com/devika/mathquest/internal/store"
)

type storyRequest struct {
	Hero      string `json:"hero" binding:"required"`
	Problem   string `json:"problem" binding:"required"`
	SessionID string `json:"session_id"`
	AgeGroup  string `json:"age_group"`
}

type buyRequest struct {
	ItemID    string `json:"item_id" binding:"required"`
	SessionID string `json:"session_id" binding:"required"`
}

type completeRequest struct {
	SessionID   string `json:"session_id" binding:"required"`
	RewardCoins int    `json:"reward_coins"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleCharacters(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.Heroes())
}

func (s *Server) handleShop(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.Items())
}

func (s *Server) handleSession(c *gin.Context) {
	sess, err := s.sessions.GetOrCreate(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.log.Error("load session", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "session unavailable"})
		return
	}
	c.JSON(http.StatusOK, sess)
}

func (s *Server) handleStory(c *gin.Context) {
	// ShouldBindBodyWithJSON reads from gin's body cache: the dailyLimit
	// middleware has already consumed c.Request.Body binding the same
	// struct, and a plain bind here would see only EOF.
	var req storyRequest
	if err := c.ShouldBindBodyWithJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "hero and problem are required"})
		return
	}
	if _, ok := catalog.HeroByName(req.Hero); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Unknown hero"})
		return
	}
	problem := strings.TrimSpace(req.Problem)
	if problem == "" || len(problem) > solver.MaxProblemLen {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "problem is empty or too long"})
		return
	}
	ageGroup := req.AgeGroup
	if ageGroup == "" {
		ageGroup = minigame.DefaultAgeGroup
	}

	res, err := s.quests.Run(c.Request.Context(), quest.Request{
		SessionID: req.SessionID,
		Hero:      req.Hero,
		Problem:   problem,
		AgeGroup:  ageGroup,
	})
	if err != nil {
		s.log.Error("run quest", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "quest failed"})
		return
	}

	s.countUsage(c, res.SessionID)
	c.JSON(http.StatusOK, res)
}

func (s *Server) handleBuy(c *gin.Context) {
	var req buyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "item_id and session_id are required"})
		return
	}

	sess, item, err := s.sessions.Purchase(c.Request.Context(), req.SessionID, req.ItemID)
	switch {
	case errors.Is(err, session.ErrUnknownItem):
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Unknown item"})
		return
	case errors.Is(err, session.ErrAlreadyOwned):
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Already owned"})
		return
	case errors.Is(err, session.ErrInsufficientCoins):
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Not enough coins"})
		return
	case err != nil:
		s.log.Error("purchase", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "purchase failed"})
		return
	}

	s.recordPurchase(c, sess, item)
	s.log.Info("purchase", "session", sess.ID, "item", item.ID, "price", item.Price)
	c.JSON(http.StatusOK, gin.H{"coins": sess.Coins, "inventory": sess.Inventory})
}

// recordPurchase appends the purchase to the event log. Failures are
// logged, not surfaced; the purchase itself already committed.
func (s *Server) recordPurchase(c *gin.Context, sess *session.Session, item catalog.Item) {
	if s.events == nil {
		return
	}
	err := s.events.AppendPurchase(c.Request.Context(), store.PurchaseEventData{
		SessionID:  sess.ID,
		ItemID:     item.ID,
		Price:      item.Price,
		CoinsAfter: sess.Coins,
	})
	if err != nil {
		s.log.Warn("record purchase", "err", err)
	}
}

// questLogLimit caps how many past quests the session log returns.
const questLogLimit = 20

func (s *Server) handleQuestLog(c *gin.Context) {
	if s.events == nil {
		c.JSON(http.StatusOK, []store.StoryRecord{})
		return
	}
	records, err := s.events.RecentStories(c.Request.Context(), c.Param("id"), questLogLimit)
	if err != nil {
		s.log.Error("quest log", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "quest log unavailable"})
		return
	}
	if records == nil {
		records = []store.StoryRecord{}
	}
	c.JSON(http.StatusOK, records)
}

// maxMiniGameReward caps a single reported mini-game win, matching the
// largest bracket reward.
const maxMiniGameReward = 40

func (s *Server) handleMiniGameComplete(c *gin.Context) {
	var req completeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "session_id is required"})
		return
	}
	if req.RewardCoins < 0 || req.RewardCoins > maxMiniGameReward {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid reward"})
		return
	}

	sess, err := s.sessions.AwardCoins(c.Request.Context(), req.SessionID, req.RewardCoins)
	if err != nil {
		s.log.Error("award coins", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "award failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"coins": sess.Coins})
}

// dailyLimit rejects story requests from free sessions past their daily
// quota. Premium sessions and deployments without a user store pass
// through.
func (s *Server) dailyLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.users == nil {
			c.Next()
			return
		}

		var req storyRequest
		if err := c.ShouldBindBodyWithJSON(&req); err != nil || req.SessionID == "" {
			// Malformed bodies and fresh sessions fall through to the
			// handler, which validates and assigns ids.
			c.Next()
			return
		}

		ctx := c.Request.Context()
		user, err := s.users.GetOrCreate(ctx, req.SessionID)
		if err != nil {
			s.log.Warn("daily limit check", "err", err)
			c.Next()
			return
		}
		if user.Premium() {
			c.Next()
			return
		}

		used, err := s.users.DailyUsage(ctx, req.SessionID, store.Day(time.Now()))
		if err != nil {
			s.log.Warn("daily usage lookup", "err", err)
			c.Next()
			return
		}
		if used >= store.FreeDailyLimit {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"detail": "Daily free limit reached. Come back tomorrow or upgrade!",
			})
			return
		}
		c.Next()
	}
}

// countUsage records one story generation against the daily quota.
func (s *Server) countUsage(c *gin.Context, sessionID string) {
	if s.users == nil || sessionID == "" {
		return
	}
	if _, err := s.users.IncrementUsage(c.Request.Context(), sessionID, store.Day(time.Now())); err != nil {
		s.log.Warn("increment usage", "err", err)
	}
}
