package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sukalov/songform/internal/db"
	"github.com/sukalov/songform/internal/logger"
	"github.com/sukalov/songform/internal/songform"
	"go.uber.org/zap"
)

// UserHeader carries the identity set by the auth proxy in front of the API
const UserHeader = "X-User-ID"

// SongStore is the persistence provider for saved songs
type SongStore interface {
	Save(ctx context.Context, userID, name string, structure songform.Structure, lyrics songform.Lyrics) db.Result
	List(ctx context.Context, userID string) ([]db.SongForm, error)
	GetByName(ctx context.Context, userID, name string) (db.SongForm, error)
	Delete(ctx context.Context, userID, name string) error
}

type Server struct {
	songs SongStore
	now   func() time.Time
}

func New(songs SongStore) *Server {
	return &Server{songs: songs, now: time.Now}
}

type StructureRequest struct {
	Input string `json:"input"`
}

type StructureResponse struct {
	Structure songform.Structure `json:"structure"`
	Sections  []string           `json:"sections"`
	Preview   string             `json:"preview"`
}

type RenderRequest struct {
	Structure songform.Structure `json:"structure" binding:"required"`
	Lyrics    songform.Lyrics    `json:"lyrics"`
	SongName  string             `json:"song_name"`
}

type RenderResponse struct {
	Full       string            `json:"full"`
	LyricsOnly string            `json:"lyrics_only"`
	Unique     string            `json:"unique"`
	Stats      songform.Stats    `json:"stats"`
	Progress   songform.Progress `json:"progress"`
	FileName   string            `json:"file_name"`
}

type SaveRequest struct {
	Structure songform.Structure `json:"structure" binding:"required"`
	Lyrics    songform.Lyrics    `json:"lyrics"`
}

// Router builds the gin engine with every route
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	api := r.Group("/api")
	api.POST("/structure", s.parseStructure)
	api.POST("/render", s.render)

	songs := api.Group("/songs", requireUser())
	songs.GET("", s.listSongs)
	songs.GET("/:name", s.getSong)
	songs.PUT("/:name", s.saveSong)
	songs.DELETE("/:name", s.deleteSong)

	return r
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("took", time.Since(start)))
	}
}

func requireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader(UserHeader) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, db.NewResult(db.ErrNotLoggedIn))
			return
		}
		c.Next()
	}
}

func (s *Server) parseStructure(c *gin.Context) {
	var req StructureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, db.NewResult(err))
		return
	}

	structure := songform.Parse(req.Input)
	c.JSON(http.StatusOK, StructureResponse{
		Structure: structure,
		Sections:  songform.UniqueLyricSections(structure),
		Preview:   structure.String(),
	})
}

func (s *Server) render(c *gin.Context) {
	var req RenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, db.NewResult(err))
		return
	}

	sections := songform.UniqueLyricSections(req.Structure)
	c.JSON(http.StatusOK, RenderResponse{
		Full:       songform.RenderFull(req.Structure, req.Lyrics),
		LyricsOnly: songform.RenderLyricsOnly(req.Structure, req.Lyrics, req.SongName),
		Unique:     songform.RenderUniqueSections(sections, req.Lyrics),
		Stats:      songform.ComputeStats(req.Structure, req.Lyrics),
		Progress:   songform.ComputeProgress(sections, req.Lyrics),
		FileName:   songform.ExportFileName(req.SongName, s.now()),
	})
}

func (s *Server) listSongs(c *gin.Context) {
	forms, err := s.songs.List(c.Request.Context(), c.GetHeader(UserHeader))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": forms})
}

func (s *Server) getSong(c *gin.Context) {
	form, err := s.songs.GetByName(c.Request.Context(), c.GetHeader(UserHeader), c.Param("name"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": form})
}

func (s *Server) saveSong(c *gin.Context) {
	var req SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, db.NewResult(err))
		return
	}

	result := s.songs.Save(c.Request.Context(), c.GetHeader(UserHeader), c.Param("name"), req.Structure, req.Lyrics)
	if !result.Success {
		logger.Error("failed to save song form", zap.String("name", c.Param("name")), zap.String("error", result.Error))
		c.JSON(http.StatusInternalServerError, result)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) deleteSong(c *gin.Context) {
	if err := s.songs.Delete(c.Request.Context(), c.GetHeader(UserHeader), c.Param("name")); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, db.NewResult(nil))
}

func (s *Server) fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, db.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, db.ErrNotLoggedIn):
		status = http.StatusUnauthorized
	default:
		logger.Error("song form request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	c.JSON(status, db.NewResult(err))
}
