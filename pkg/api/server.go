package api

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/resumesmith/resumesmith/pkg/profile"
	"github.com/resumesmith/resumesmith/pkg/renderer"
	"github.com/resumesmith/resumesmith/pkg/resume"
	"github.com/rs/zerolog"
)

// Synthesizer is the generation pipeline surface the server depends on.
type Synthesizer interface {
	Synthesize(ctx context.Context, req resume.Request, facts profile.Profile) (result resume.Result)
}

// DocumentRenderer produces downloadable documents from resume data.
type DocumentRenderer interface {
	Render(ctx context.Context, data resume.ResumeData) (docs renderer.Documents, err error)
}

// ProfileStore is the profile persistence surface the server depends on.
type ProfileStore interface {
	Save(p profile.Profile) (err error)
	Load(name string) (p profile.Profile, err error)
	Delete(name string) (deleted bool, err error)
	List() (names []string, err error)
}

// Server exposes profile CRUD and resume generation over HTTP.
type Server struct {
	store  ProfileStore
	synth  Synthesizer
	rend   DocumentRenderer
	logger zerolog.Logger
	app    *fiber.App
}

// NewServer wires the HTTP surface. The fiber app is ready to listen or to
// drive directly in tests via App().Test().
func NewServer(store ProfileStore, synth Synthesizer, rend DocumentRenderer, logger zerolog.Logger) (s *Server) {
	s = &Server{
		store:  store,
		synth:  synth,
		rend:   rend,
		logger: logger,
	}

	s.app = fiber.New(fiber.Config{
		AppName: "resumesmith",
	})
	s.app.Use(recover.New())

	s.app.Get("/health", s.handleHealth)
	s.app.Get("/profiles", s.handleListProfiles)
	s.app.Post("/profiles", s.handleSaveProfile)
	s.app.Get("/profiles/:name", s.handleGetProfile)
	s.app.Delete("/profiles/:name", s.handleDeleteProfile)
	s.app.Post("/generate", s.handleGenerate)

	return s
}

// App exposes the underlying fiber app.
func (s *Server) App() (app *fiber.App) {
	app = s.app
	return app
}

// Listen starts serving on addr and blocks until shutdown.
func (s *Server) Listen(addr string) (err error) {
	s.logger.Info().Str("addr", addr).Msg("http server starting")
	err = s.app.Listen(addr)
	return err
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() (err error) {
	err = s.app.Shutdown()
	return err
}
