package api

import (
	"net/url"
	"sort"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/resumesmith/resumesmith/pkg/profile"
	"github.com/resumesmith/resumesmith/pkg/renderer"
	"github.com/resumesmith/resumesmith/pkg/resume"
)

type generateRequest struct {
	Profile        string `json:"profile"`
	Title          string `json:"title,omitempty"`
	Resume         string `json:"resume"`
	JobDescription string `json:"job_description"`
	HiringCompany  string `json:"hiring_company,omitempty"`
	Format         string `json:"format,omitempty"` // json (default), pdf, docx
}

type generateResponse struct {
	RequestID  string             `json:"request_id"`
	Fallback   bool               `json:"fallback"`
	Degraded   bool               `json:"degraded"`
	Notice     string             `json:"notice,omitempty"`
	Violations []resume.Violation `json:"violations,omitempty"`
	Resume     resume.ResumeData  `json:"resume"`
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "healthy"})
}

func (s *Server) handleListProfiles(c *fiber.Ctx) error {
	names, err := s.store.List()
	if err != nil {
		s.logger.Error().Err(err).Msg("profile listing failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to list profiles",
		})
	}

	// Storage order is unspecified; present a stable view.
	sort.Strings(names)
	if names == nil {
		names = []string{}
	}

	return c.JSON(fiber.Map{"profiles": names})
}

func (s *Server) handleSaveProfile(c *fiber.Ctx) error {
	var p profile.Profile
	if err := c.BodyParser(&p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid profile payload",
		})
	}

	if err := s.store.Save(p); err != nil {
		var ve *profile.ValidationError
		if errors.As(err, &ve) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": ve.Message,
				"field": ve.Field,
			})
		}

		s.logger.Error().Err(err).Str("profile", p.Name).Msg("profile save failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to save profile",
		})
	}

	s.logger.Info().Str("profile", p.Name).Msg("profile saved")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"saved": p.Name})
}

func (s *Server) handleGetProfile(c *fiber.Ctx) error {
	name := profileParam(c)

	p, err := s.store.Load(name)
	if err != nil {
		if profile.IsNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		var ve *profile.ValidationError
		if errors.As(err, &ve) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": ve.Message,
				"field": ve.Field,
			})
		}

		s.logger.Error().Err(err).Str("profile", name).Msg("profile load failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to load profile",
		})
	}

	return c.JSON(p)
}

func (s *Server) handleDeleteProfile(c *fiber.Ctx) error {
	name := profileParam(c)

	deleted, err := s.store.Delete(name)
	if err != nil {
		var ve *profile.ValidationError
		if errors.As(err, &ve) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": ve.Message,
				"field": ve.Field,
			})
		}

		s.logger.Error().Err(err).Str("profile", name).Msg("profile delete failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to delete profile",
		})
	}

	if !deleted {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "profile not found: " + name,
		})
	}

	s.logger.Info().Str("profile", name).Msg("profile deleted")
	return c.JSON(fiber.Map{"deleted": name})
}

// handleGenerate runs the full pipeline. Generation never fails the request:
// model errors produce the fallback resume, and rendering errors degrade to
// a JSON body carrying a notice.
func (s *Server) handleGenerate(c *fiber.Ctx) error {
	var req generateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request payload",
		})
	}

	if req.Profile == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "profile is required", "field": "profile",
		})
	}
	if req.JobDescription == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "job_description is required", "field": "job_description",
		})
	}

	facts, err := s.store.Load(req.Profile)
	if err != nil {
		if profile.IsNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		s.logger.Error().Err(err).Str("profile", req.Profile).Msg("profile load failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to load profile",
		})
	}

	requestID := uuid.New().String()
	logger := s.logger.With().Str("request_id", requestID).Logger()
	logger.Info().Str("profile", req.Profile).Str("format", req.Format).Msg("generation requested")

	result := s.synth.Synthesize(c.Context(), resume.Request{
		JobDescription: req.JobDescription,
		Experience:     req.Resume,
		TargetTitle:    req.Title,
		HiringCompany:  req.HiringCompany,
	}, facts)

	switch req.Format {
	case "", "json":
		return c.JSON(generateResponse{
			RequestID:  requestID,
			Fallback:   result.Fallback,
			Violations: result.Violations,
			Resume:     result.Resume,
		})
	case "pdf", "docx":
		// Fall through to rendering below.
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "format must be json, pdf, or docx", "field": "format",
		})
	}

	docs, err := s.rend.Render(c.Context(), result.Resume)
	if err != nil {
		if renderer.IsRenderError(err) {
			logger.Warn().Err(err).Msg("rendering failed, degrading to JSON resume")
			return c.JSON(generateResponse{
				RequestID:  requestID,
				Fallback:   result.Fallback,
				Degraded:   true,
				Notice:     "document rendering unavailable, resume returned as JSON: " + err.Error(),
				Violations: result.Violations,
				Resume:     result.Resume,
			})
		}

		logger.Error().Err(err).Msg("rendering failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to render resume",
		})
	}

	filename := "resume." + req.Format
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	if req.Format == "pdf" {
		c.Set(fiber.HeaderContentType, "application/pdf")
		return c.Send(docs.PDF)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.wordprocessingml.document")
	return c.Send(docs.DOCX)
}

// profileParam decodes the :name path segment so profile names with spaces
// round-trip through URLs.
func profileParam(c *fiber.Ctx) (name string) {
	name = c.Params("name")
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}
	return name
}
