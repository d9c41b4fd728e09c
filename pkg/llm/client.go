package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const (
	// ClaudeAPIEndpoint is the Anthropic API endpoint.
	ClaudeAPIEndpoint = "https://api.anthropic.com/v1/messages"
	// ClaudeModel is the default model.
	ClaudeModel = "claude-sonnet-4-20250514"
	// ClaudeAPIVersion is the API version.
	ClaudeAPIVersion = "2023-06-01"
)

// Client represents a Claude API client.
type Client struct {
	apiKey     string
	model      string
	httpClient *http.Client
	endpoint   string
	logger     zerolog.Logger
}

// NewClient creates a new Claude API client.
func NewClient(apiKey, model string, logger zerolog.Logger) (client *Client) {
	if model == "" {
		model = ClaudeModel
	}
	client = &Client{
		apiKey:   apiKey,
		model:    model,
		endpoint: ClaudeAPIEndpoint,
		logger:   logger,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
	return client
}

// ExtractSkills performs phase 1: exhaustive skill extraction from a job
// description. Any transport, parse, or schema failure is a GenerationError.
func (c *Client) ExtractSkills(ctx context.Context, jobDescription string) (skills Skills, err error) {
	prompt := buildSkillExtractionPrompt(jobDescription)

	var responseText string
	responseText, err = c.sendRequest(ctx, prompt)
	if err != nil {
		err = &GenerationError{Phase: "skill extraction", Message: err.Error()}
		return skills, err
	}

	// Clean markdown code fences if present
	cleanedText := stripMarkdownCodeFences(responseText)

	err = validateDocument("skill extraction", skillsSchema, cleanedText)
	if err != nil {
		return skills, err
	}

	err = json.Unmarshal([]byte(cleanedText), &skills)
	if err != nil {
		err = &GenerationError{Phase: "skill extraction", Message: errors.Wrap(err, "failed to parse skills response").Error()}
		return skills, err
	}

	c.logger.Debug().
		Int("hard_skills", len(skills.HardSkills)).
		Int("soft_skills", len(skills.SoftSkills)).
		Msg("extracted skills from job description")

	return skills, err
}

// GenerateResume performs phase 2: one structured synthesis call producing
// a draft resume. The draft is schema-validated before decoding; callers
// still apply local validation and ground-truth overrides.
func (c *Client) GenerateResume(ctx context.Context, req GenerationRequest) (draft DraftResume, err error) {
	prompt := buildSynthesisPrompt(req)

	var responseText string
	responseText, err = c.sendRequest(ctx, prompt)
	if err != nil {
		err = &GenerationError{Phase: "resume synthesis", Message: err.Error()}
		return draft, err
	}

	// Clean markdown code fences if present
	cleanedText := stripMarkdownCodeFences(responseText)

	err = validateDocument("resume synthesis", draftResumeSchema, cleanedText)
	if err != nil {
		return draft, err
	}

	err = json.Unmarshal([]byte(cleanedText), &draft)
	if err != nil {
		err = &GenerationError{Phase: "resume synthesis", Message: errors.Wrap(err, "failed to parse draft resume").Error()}
		return draft, err
	}

	c.logger.Debug().
		Int("experiences", len(draft.Experiences)).
		Int("skill_groups", len(draft.Skills)).
		Msg("generated draft resume")

	return draft, err
}

// sendRequest sends a request to Claude API.
func (c *Client) sendRequest(ctx context.Context, prompt string) (responseText string, err error) {
	// Build request
	claudeReq := ClaudeRequest{
		Model:     c.model,
		MaxTokens: 4096,
		Messages: []Message{
			{
				Role:    "user",
				Content: prompt,
			},
		},
	}

	var reqBody []byte
	reqBody, err = json.Marshal(claudeReq)
	if err != nil {
		err = errors.Wrap(err, "failed to marshal request")
		return responseText, err
	}

	// Create HTTP request
	var httpReq *http.Request
	httpReq, err = http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(reqBody))
	if err != nil {
		err = errors.Wrap(err, "failed to create HTTP request")
		return responseText, err
	}

	// Set headers
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Api-Key", c.apiKey)
	httpReq.Header.Set("Anthropic-Version", ClaudeAPIVersion)

	// Send request
	var resp *http.Response
	resp, err = c.httpClient.Do(httpReq)
	if err != nil {
		err = errors.Wrap(err, "HTTP request failed")
		return responseText, err
	}
	defer resp.Body.Close()

	// Read response body
	var respBody []byte
	respBody, err = io.ReadAll(resp.Body)
	if err != nil {
		err = errors.Wrap(err, "failed to read response body")
		return responseText, err
	}

	// Check status code
	if resp.StatusCode != http.StatusOK {
		err = errors.Errorf("API request failed with status %d: %s", resp.StatusCode, string(respBody))
		return responseText, err
	}

	// Parse Claude response
	var claudeResp ClaudeResponse
	err = json.Unmarshal(respBody, &claudeResp)
	if err != nil {
		err = errors.Wrapf(err, "failed to parse Claude response: %s", string(respBody))
		return responseText, err
	}

	// Extract text content
	if len(claudeResp.Content) == 0 {
		err = errors.New("no content in Claude response")
		return responseText, err
	}

	responseText = claudeResp.Content[0].Text

	return responseText, err
}

// stripMarkdownCodeFences removes markdown code fences from JSON responses.
func stripMarkdownCodeFences(text string) (cleaned string) {
	cleaned = text

	// Check if text starts with ```json and ends with ```
	if len(cleaned) > 7 && cleaned[:7] == "```json" {
		// Find first newline after ```json
		start := 7
		for start < len(cleaned) && cleaned[start] != '\n' {
			start++
		}
		start++ // skip the newline

		// Find last ```
		end := len(cleaned)
		if end > 3 && cleaned[end-3:] == "```" {
			end -= 3
		}

		// Remove trailing whitespace before ```
		for end > 0 && (cleaned[end-1] == '\n' || cleaned[end-1] == ' ' || cleaned[end-1] == '\r') {
			end--
		}

		cleaned = cleaned[start:end]
	}

	return cleaned
}
