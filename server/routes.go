package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/99Yash/linkview/linkedin"
)

// Fetcher retrieves the raw profile document for a resolved username.
// It is implemented by linkedin.Client.
type Fetcher interface {
	Fetch(ctx context.Context, username string) (*linkedin.RawProfile, error)
}

// profileRequest is the POST /api/profile body. Either field may be given;
// at least one must resolve to a personal-profile username.
type profileRequest struct {
	URL      string `json:"url"`
	Username string `json:"username"`
}

// profileResponse carries the derived view together with the raw upstream
// document so clients can offer a raw-JSON toggle.
type profileResponse struct {
	Profile *linkedin.View       `json:"profile"`
	Raw     *linkedin.RawProfile `json:"raw"`
}

// RegisterRoutes mounts the API endpoints on the router.
func RegisterRoutes(r *gin.Engine, fetcher Fetcher, logger *slog.Logger) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.POST("/profile", profileHandler(fetcher, logger))
}

func profileHandler(fetcher Fetcher, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req profileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		username := resolveRequest(req)
		if username == "" {
			// Never reaches upstream: unrecognized input short-circuits here.
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "not a valid personal profile reference",
			})
			return
		}

		doc, err := fetcher.Fetch(c.Request.Context(), username)
		if err != nil {
			status, msg := mapFetchError(err)
			if status == http.StatusInternalServerError || status == http.StatusBadGateway {
				logger.ErrorContext(c.Request.Context(), "profile fetch failed",
					"username", username, "error", err)
			}
			c.JSON(status, gin.H{"error": msg})
			return
		}

		c.JSON(http.StatusOK, profileResponse{
			Profile: linkedin.Normalize(doc),
			Raw:     doc,
		})
	}
}

// resolveRequest applies the same validity predicate the resolver uses:
// an explicit username is pre-validated directly, a URL goes through full
// resolution.
func resolveRequest(req profileRequest) string {
	if u := strings.TrimSpace(req.Username); u != "" && linkedin.IsLikelyUsername(u) {
		return u
	}
	if req.URL != "" {
		return linkedin.ExtractUsername(req.URL)
	}
	return ""
}

func mapFetchError(err error) (status int, msg string) {
	switch {
	case errors.Is(err, linkedin.ErrProfileNotFound):
		return http.StatusNotFound, "profile not found"
	case errors.Is(err, linkedin.ErrRateLimited):
		return http.StatusTooManyRequests, "upstream rate limit exceeded"
	case errors.Is(err, linkedin.ErrMissingUsername):
		return http.StatusBadGateway, "upstream returned a profile without a username"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "upstream request timed out"
	default:
		var httpErr *linkedin.HTTPError
		if errors.As(err, &httpErr) {
			return http.StatusBadGateway, "failed to fetch profile data"
		}
		return http.StatusInternalServerError, "unexpected error while fetching profile"
	}
}
