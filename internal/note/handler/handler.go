package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/notekeep/notekeep/internal/note"
	"github.com/notekeep/notekeep/internal/note/service"
	"github.com/notekeep/notekeep/pkg/metrics"
)

// createNoteRequest and replaceNoteRequest carry the full writable
// representation; missing fields decode to empty text. patchNoteRequest
// uses pointers so an absent field is distinguishable from an empty
// one. None of the wire structs carries the active flag: callers
// structurally cannot set it, whatever they send.
type createNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type replaceNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type patchNoteRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

type noteResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	IsActive      bool      `json:"isActive"`
}

func toResponse(n note.Note) noteResponse {
	return noteResponse{
		ID:            n.ID,
		Title:         n.Title,
		Content:       n.Content,
		LastUpdatedAt: n.LastUpdatedAt,
		IsActive:      n.IsActive,
	}
}

// RegisterNoteRoutes binds the six note operations. The identifier is a
// query parameter (?id=) on the four lookup operations; an absent id
// simply resolves to nothing and yields the same 404 as an unknown one.
func RegisterNoteRoutes(r *gin.Engine, svc service.Service) {
	r.POST("/note", func(c *gin.Context) {
		var req createNoteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		n, err := svc.Create(c.Request.Context(), req.Title, req.Content)
		if err != nil {
			fail(c, "create", err)
			return
		}
		metrics.NoteOperations.WithLabelValues("create", "ok").Inc()
		c.JSON(http.StatusCreated, toResponse(n))
	})

	r.GET("/note", func(c *gin.Context) {
		n, err := svc.Get(c.Request.Context(), c.Query("id"))
		if err != nil {
			fail(c, "retrieve", err)
			return
		}
		metrics.NoteOperations.WithLabelValues("retrieve", "ok").Inc()
		c.JSON(http.StatusOK, toResponse(n))
	})

	r.PUT("/note", func(c *gin.Context) {
		var req replaceNoteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		n, err := svc.Replace(c.Request.Context(), c.Query("id"), req.Title, req.Content)
		if err != nil {
			fail(c, "replace", err)
			return
		}
		metrics.NoteOperations.WithLabelValues("replace", "ok").Inc()
		c.JSON(http.StatusOK, toResponse(n))
	})

	r.PATCH("/note", func(c *gin.Context) {
		var req patchNoteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		n, err := svc.Patch(c.Request.Context(), c.Query("id"), req.Title, req.Content)
		if err != nil {
			fail(c, "patch", err)
			return
		}
		metrics.NoteOperations.WithLabelValues("patch", "ok").Inc()
		c.JSON(http.StatusOK, toResponse(n))
	})

	r.DELETE("/note", func(c *gin.Context) {
		n, err := svc.Delete(c.Request.Context(), c.Query("id"))
		if err != nil {
			fail(c, "delete", err)
			return
		}
		metrics.NoteOperations.WithLabelValues("delete", "ok").Inc()
		c.JSON(http.StatusOK, toResponse(n))
	})

	r.GET("/note/all", func(c *gin.Context) {
		list, err := svc.List(c.Request.Context())
		if err != nil {
			fail(c, "list", err)
			return
		}
		out := make([]noteResponse, 0, len(list))
		for _, n := range list {
			out = append(out, toResponse(n))
		}
		metrics.NoteOperations.WithLabelValues("list", "ok").Inc()
		c.JSON(http.StatusOK, out)
	})
}

// fail maps service errors onto the two failure classes the API knows:
// not-found and a surfaced persistence failure.
func fail(c *gin.Context, op string, err error) {
	if errors.Is(err, service.ErrNotFound) {
		metrics.NoteOperations.WithLabelValues(op, "not_found").Inc()
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	metrics.NoteOperations.WithLabelValues(op, "error").Inc()
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
