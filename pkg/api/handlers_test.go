package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/resumesmith/resumesmith/pkg/profile"
	"github.com/resumesmith/resumesmith/pkg/renderer"
	"github.com/resumesmith/resumesmith/pkg/resume"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSynthesizer struct {
	result   resume.Result
	requests []resume.Request
}

func (f *fakeSynthesizer) Synthesize(_ context.Context, req resume.Request, facts profile.Profile) (result resume.Result) {
	f.requests = append(f.requests, req)
	result = f.result
	result.Resume.Name = facts.Name
	return result
}

type fakeRenderer struct {
	docs renderer.Documents
	err  error
}

func (f *fakeRenderer) Render(_ context.Context, _ resume.ResumeData) (docs renderer.Documents, err error) {
	docs = f.docs
	err = f.err
	return docs, err
}

func testServer(t *testing.T) (s *Server, synth *fakeSynthesizer, rend *fakeRenderer) {
	t.Helper()

	store, err := profile.NewStore(t.TempDir())
	require.NoError(t, err)

	synth = &fakeSynthesizer{
		result: resume.Result{
			Resume: resume.ResumeData{
				Title:   "Platform Engineer",
				Summary: "Builds reliable platforms.",
			},
		},
	}
	rend = &fakeRenderer{
		docs: renderer.Documents{PDF: []byte("%PDF-1.7 fake"), DOCX: []byte("PK fake docx")},
	}

	s = NewServer(store, synth, rend, zerolog.Nop())
	return s, synth, rend
}

func jsonRequest(t *testing.T, method, target string, body any) (req *http.Request) {
	t.Helper()

	var buf bytes.Buffer
	err := json.NewEncoder(&buf).Encode(body)
	require.NoError(t, err)

	req = httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, resp *http.Response, into any) {
	t.Helper()

	defer resp.Body.Close()
	err := json.NewDecoder(resp.Body).Decode(into)
	require.NoError(t, err)
}

func testProfile() (p profile.Profile) {
	p = profile.Profile{
		Name:     "Jane Doe",
		Title:    "Software Engineer",
		Email:    "jane@example.com",
		Location: "Chicago, IL",
		EmploymentHistory: []profile.EmploymentHistory{
			{CompanyName: "Initech", Period: "01/2021 - 05/2025", Location: "Chicago, IL"},
		},
	}
	return p
}

func TestHealth(t *testing.T) {
	s, _, _ := testServer(t)

	resp, err := s.App().Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSaveAndListProfiles(t *testing.T) {
	s, _, _ := testServer(t)

	resp, err := s.App().Test(jsonRequest(t, http.MethodPost, "/profiles", testProfile()))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err = s.App().Test(httptest.NewRequest(http.MethodGet, "/profiles", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var listing struct {
		Profiles []string `json:"profiles"`
	}
	decodeBody(t, resp, &listing)
	assert.Equal(t, []string{"Jane Doe"}, listing.Profiles)
}

func TestListProfilesEmpty(t *testing.T) {
	s, _, _ := testServer(t)

	resp, err := s.App().Test(httptest.NewRequest(http.MethodGet, "/profiles", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"profiles":[]}`, string(body))
}

func TestSaveProfileValidationError(t *testing.T) {
	s, _, _ := testServer(t)

	p := testProfile()
	p.Email = ""

	resp, err := s.App().Test(jsonRequest(t, http.MethodPost, "/profiles", p))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body struct {
		Error string `json:"error"`
		Field string `json:"field"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "email", body.Field)
	assert.NotEmpty(t, body.Error)
}

func TestSaveProfileTooManyEmployers(t *testing.T) {
	s, _, _ := testServer(t)

	p := testProfile()
	p.EmploymentHistory = make([]profile.EmploymentHistory, profile.MaxEmploymentEntries+1)

	resp, err := s.App().Test(jsonRequest(t, http.MethodPost, "/profiles", p))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body struct {
		Field string `json:"field"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "employment_history", body.Field)
}

func TestGetProfile(t *testing.T) {
	s, _, _ := testServer(t)

	resp, err := s.App().Test(jsonRequest(t, http.MethodPost, "/profiles", testProfile()))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err = s.App().Test(httptest.NewRequest(http.MethodGet, "/profiles/Jane%20Doe", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var p profile.Profile
	decodeBody(t, resp, &p)
	assert.Equal(t, "Jane Doe", p.Name)
	assert.Equal(t, "jane@example.com", p.Email)
}

func TestGetProfileNotFound(t *testing.T) {
	s, _, _ := testServer(t)

	resp, err := s.App().Test(httptest.NewRequest(http.MethodGet, "/profiles/nobody", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteProfile(t *testing.T) {
	s, _, _ := testServer(t)

	resp, err := s.App().Test(jsonRequest(t, http.MethodPost, "/profiles", testProfile()))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err = s.App().Test(httptest.NewRequest(http.MethodDelete, "/profiles/Jane%20Doe", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Second delete finds nothing.
	resp, err = s.App().Test(httptest.NewRequest(http.MethodDelete, "/profiles/Jane%20Doe", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGenerateJSON(t *testing.T) {
	s, synth, _ := testServer(t)

	resp, err := s.App().Test(jsonRequest(t, http.MethodPost, "/profiles", testProfile()))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err = s.App().Test(jsonRequest(t, http.MethodPost, "/generate", generateRequest{
		Profile:        "Jane Doe",
		Title:          "Staff Engineer",
		Resume:         "years of Go",
		JobDescription: "We need a platform engineer.",
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body generateResponse
	decodeBody(t, resp, &body)
	assert.NotEmpty(t, body.RequestID)
	assert.False(t, body.Degraded)
	assert.Equal(t, "Jane Doe", body.Resume.Name)

	require.Len(t, synth.requests, 1)
	assert.Equal(t, "Staff Engineer", synth.requests[0].TargetTitle)
	assert.Equal(t, "We need a platform engineer.", synth.requests[0].JobDescription)
}

func TestGenerateFallbackStillOK(t *testing.T) {
	s, synth, _ := testServer(t)
	synth.result.Fallback = true

	resp, err := s.App().Test(jsonRequest(t, http.MethodPost, "/profiles", testProfile()))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err = s.App().Test(jsonRequest(t, http.MethodPost, "/generate", generateRequest{
		Profile:        "Jane Doe",
		JobDescription: "jd",
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body generateResponse
	decodeBody(t, resp, &body)
	assert.True(t, body.Fallback)
}

func TestGenerateUnknownProfile(t *testing.T) {
	s, _, _ := testServer(t)

	resp, err := s.App().Test(jsonRequest(t, http.MethodPost, "/generate", generateRequest{
		Profile:        "nobody",
		JobDescription: "jd",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGenerateMissingFields(t *testing.T) {
	s, _, _ := testServer(t)

	tests := []struct {
		name  string
		req   generateRequest
		field string
	}{
		{name: "no profile", req: generateRequest{JobDescription: "jd"}, field: "profile"},
		{name: "no job description", req: generateRequest{Profile: "Jane Doe"}, field: "job_description"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := s.App().Test(jsonRequest(t, http.MethodPost, "/generate", tc.req))
			require.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

			var body struct {
				Field string `json:"field"`
			}
			decodeBody(t, resp, &body)
			assert.Equal(t, tc.field, body.Field)
		})
	}
}

func TestGenerateBadFormat(t *testing.T) {
	s, _, _ := testServer(t)

	resp, err := s.App().Test(jsonRequest(t, http.MethodPost, "/profiles", testProfile()))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err = s.App().Test(jsonRequest(t, http.MethodPost, "/generate", generateRequest{
		Profile:        "Jane Doe",
		JobDescription: "jd",
		Format:         "odt",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGeneratePDFDownload(t *testing.T) {
	s, _, _ := testServer(t)

	resp, err := s.App().Test(jsonRequest(t, http.MethodPost, "/profiles", testProfile()))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err = s.App().Test(jsonRequest(t, http.MethodPost, "/generate", generateRequest{
		Profile:        "Jane Doe",
		JobDescription: "jd",
		Format:         "pdf",
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "resume.pdf")

	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.7 fake", string(body))
}

func TestGenerateRenderDegradesToJSON(t *testing.T) {
	s, _, rend := testServer(t)
	rend.err = &renderer.RenderError{Stage: "pdf", Err: errors.New("chrome not found")}

	resp, err := s.App().Test(jsonRequest(t, http.MethodPost, "/profiles", testProfile()))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err = s.App().Test(jsonRequest(t, http.MethodPost, "/generate", generateRequest{
		Profile:        "Jane Doe",
		JobDescription: "jd",
		Format:         "pdf",
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body generateResponse
	decodeBody(t, resp, &body)
	assert.True(t, body.Degraded)
	assert.Contains(t, body.Notice, "rendering unavailable")
	assert.Equal(t, "Jane Doe", body.Resume.Name)
}
