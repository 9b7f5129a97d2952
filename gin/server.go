// Package gin provides the browser UI: a single page with the URL form,
// length and chain selectors, debug panel, summary display, and a
// download-as-text action.
package gin

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/DS123-ally/websummary"
	"github.com/DS123-ally/websummary/chain"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

//go:embed templates/*.html
var templatesFS embed.FS

const sessionCookie = "wssid"

// Server serves the summarizer UI.
type Server struct {
	runner   *chain.Runner
	logger   *slog.Logger
	engine   *gin.Engine
	sessions *SessionStore
}

// NewServer creates a Server around the given request runner.
func NewServer(runner *chain.Runner, logger *slog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		runner:   runner,
		logger:   logger,
		sessions: NewSessionStore(),
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), s.logRequests)
	engine.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/*.html")))

	engine.GET("/", s.handleIndex)
	engine.POST("/summarize", s.handleSummarize)
	engine.GET("/download", s.handleDownload)
	engine.POST("/clear", s.handleClear)

	s.engine = engine
	return s
}

// Handler returns the HTTP handler for the UI.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// option is a selector entry for the template.
type option struct {
	Value    string
	Selected bool
}

// page is the view model for index.html.
type page struct {
	Lengths       []option
	Chains        []option
	URL           string
	Debug         bool
	ShowExtracted bool
	Request       *websummary.Request
}

func (s *Server) handleIndex(c *gin.Context) {
	sess := s.session(c)
	c.HTML(http.StatusOK, "index.html", s.buildPage(sess))
}

func (s *Server) handleSummarize(c *gin.Context) {
	sess := s.session(c)

	length := websummary.Length(c.DefaultPostForm("length", string(websummary.LengthMedium)))
	chainType := websummary.ChainType(c.DefaultPostForm("chain", string(websummary.ChainStuff)))

	// Published sessions are never mutated: each submission builds a
	// replacement snapshot, so a resubmit while a previous request is
	// still in flight just discards the older result when it lands.
	updated := &Session{
		ID:            sess.ID,
		Debug:         c.PostForm("debug") != "",
		ShowExtracted: c.PostForm("extracted") != "",
	}
	updated.Request = s.runner.Run(c.Request.Context(), c.PostForm("url"), length, chainType)
	s.sessions.Put(updated)

	status := http.StatusOK
	if updated.Request.Failed() {
		status = http.StatusUnprocessableEntity
	}
	c.HTML(status, "index.html", s.buildPage(updated))
}

// handleDownload serves the current summary verbatim as a UTF-8 text
// file: the bytes are exactly the displayed summary, no framing.
func (s *Server) handleDownload(c *gin.Context) {
	sess := s.session(c)
	if sess.Request == nil || sess.Request.Summary() == "" {
		c.String(http.StatusNotFound, "no summary available")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="summary.txt"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(sess.Request.Summary()))
}

func (s *Server) handleClear(c *gin.Context) {
	if id, err := c.Cookie(sessionCookie); err == nil {
		s.sessions.Delete(id)
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// session returns the browser's session, creating it (and the cookie)
// when absent.
func (s *Server) session(c *gin.Context) *Session {
	if id, err := c.Cookie(sessionCookie); err == nil {
		if sess := s.sessions.Get(id); sess != nil {
			return sess
		}
	}

	sess := &Session{ID: uuid.NewString()}
	s.sessions.Put(sess)
	c.SetCookie(sessionCookie, sess.ID, 0, "/", "", false, true)
	return sess
}

func (s *Server) buildPage(sess *Session) *page {
	p := &page{
		Debug:         sess.Debug,
		ShowExtracted: sess.ShowExtracted,
		Request:       sess.Request,
	}

	length := websummary.LengthMedium
	chainType := websummary.ChainStuff
	if sess.Request != nil {
		p.URL = sess.Request.URL
		length = sess.Request.Length
		chainType = sess.Request.Chain
	}

	for _, l := range websummary.Lengths() {
		p.Lengths = append(p.Lengths, option{Value: string(l), Selected: l == length})
	}
	for _, ct := range websummary.ChainTypes() {
		p.Chains = append(p.Chains, option{Value: string(ct), Selected: ct == chainType})
	}

	return p
}

func (s *Server) logRequests(c *gin.Context) {
	begin := time.Now()
	c.Next()
	s.logger.Info("request",
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		slog.Int("status", c.Writer.Status()),
		slog.Duration("duration", time.Since(begin)))
}
