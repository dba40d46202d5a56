package evaluations

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-engine/internal/apperrors"
	"resume-engine/internal/gaps"
	"resume-engine/internal/resume"
	"resume-engine/internal/shared/server/respond"
)

// Handler exposes evaluation endpoints.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches evaluation routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/evaluations", h.evaluate)
	rg.POST("/evaluations/fit", h.evaluateFit)
	rg.POST("/evaluations/score", h.score)
	rg.POST("/evaluations/recommend", h.recommend)
	rg.GET("/evaluations/cache/stats", h.cacheStats)
	rg.DELETE("/evaluations/cache", h.clearCache)
}

type evaluateRequest struct {
	Resume  *resume.ParsedResume `json:"resume"`
	RawText string               `json:"rawText"`
}

type fitRequest struct {
	Resume         *resume.ParsedResume  `json:"resume"`
	RawText        string                `json:"rawText"`
	Requirements   *gaps.JobRequirements `json:"requirements"`
	JobDescription string                `json:"jobDescription"`
}

func (h *Handler) evaluate(c *gin.Context) {
	var req evaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.AppError(c, apperrors.Wrap(apperrors.CodeMalformedInput, err))
		return
	}

	result, hit, err := h.Svc.Evaluate(req.Resume, req.RawText)
	if err != nil {
		respond.AppError(c, err)
		return
	}
	c.Set("cacheHit", hit)

	respond.JSON(c, http.StatusOK, gin.H{
		"result": result,
		"cached": hit,
	})
}

func (h *Handler) evaluateFit(c *gin.Context) {
	var req fitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.AppError(c, apperrors.Wrap(apperrors.CodeMalformedInput, err))
		return
	}

	requirements, err := ResolveRequirements(req.Requirements, req.JobDescription)
	if err != nil {
		respond.AppError(c, err)
		return
	}

	score, hit, err := h.Svc.EvaluateFit(req.Resume, req.RawText, requirements)
	if err != nil {
		respond.AppError(c, err)
		return
	}
	c.Set("cacheHit", hit)
	c.Set("recommendation", string(score.Recommendation))

	respond.JSON(c, http.StatusOK, gin.H{
		"fit":    score,
		"cached": hit,
	})
}

func (h *Handler) score(c *gin.Context) {
	var req evaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.AppError(c, apperrors.Wrap(apperrors.CodeMalformedInput, err))
		return
	}

	score, level, err := h.Svc.Score(req.Resume, req.RawText)
	if err != nil {
		respond.AppError(c, err)
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"score": score,
		"level": level,
	})
}

func (h *Handler) recommend(c *gin.Context) {
	var req fitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.AppError(c, apperrors.Wrap(apperrors.CodeMalformedInput, err))
		return
	}

	requirements, err := ResolveRequirements(req.Requirements, req.JobDescription)
	if err != nil {
		respond.AppError(c, err)
		return
	}

	recommendation, reasoning, fitScore, err := h.Svc.Recommend(req.Resume, req.RawText, requirements)
	if err != nil {
		respond.AppError(c, err)
		return
	}
	c.Set("recommendation", string(recommendation))

	respond.JSON(c, http.StatusOK, gin.H{
		"recommendation": recommendation,
		"reasoning":      reasoning,
		"fitScore":       fitScore,
	})
}

func (h *Handler) cacheStats(c *gin.Context) {
	stats := h.Svc.CacheStats()
	respond.JSON(c, http.StatusOK, gin.H{
		"hits":      stats.Hits,
		"misses":    stats.Misses,
		"evictions": stats.Evictions,
		"size":      stats.Size,
	})
}

func (h *Handler) clearCache(c *gin.Context) {
	h.Svc.ClearCache()
	respond.JSON(c, http.StatusOK, gin.H{"cleared": true})
}
