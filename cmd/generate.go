package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/resumesmith/resumesmith/pkg/config"
	"github.com/resumesmith/resumesmith/pkg/jd"
	"github.com/resumesmith/resumesmith/pkg/llm"
	"github.com/resumesmith/resumesmith/pkg/profile"
	"github.com/resumesmith/resumesmith/pkg/renderer"
	"github.com/resumesmith/resumesmith/pkg/resume"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var profileName string

//nolint:gochecknoglobals // Cobra boilerplate
var resumeFile string

//nolint:gochecknoglobals // Cobra boilerplate
var targetTitle string

//nolint:gochecknoglobals // Cobra boilerplate
var hiringCompany string

//nolint:gochecknoglobals // Cobra boilerplate
var outputDir string

//nolint:gochecknoglobals // Cobra boilerplate
var skipRender bool

//nolint:gochecknoglobals // Cobra boilerplate
var generateCmd = &cobra.Command{
	Use:   "generate <jd-file-or-url>",
	Short: "Generate a tailored resume for a job description",
	Long: `Generate a tailored resume targeting a job description.

The job description can be provided as:
- A file path (e.g., jd.txt)
- A URL (e.g., https://example.com/jobs/123)

Example:
  resumesmith generate jd.txt --profile "Jane Doe" --resume career.md
  resumesmith generate https://example.com/jobs/123 --profile "Jane Doe" --title "Staff Engineer"
  resumesmith generate jd.txt --profile "Jane Doe" --skip-render`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVar(&profileName, "profile", "", "Stored profile to generate for (required)")
	generateCmd.Flags().StringVar(&resumeFile, "resume", "", "File with your existing resume or career notes (free text)")
	generateCmd.Flags().StringVar(&targetTitle, "title", "", "Target title (default: the profile's title)")
	generateCmd.Flags().StringVar(&hiringCompany, "company", "", "Hiring company name (enables the employer-conflict check)")
	generateCmd.Flags().StringVar(&outputDir, "output-dir", "", "Output directory (default from config)")
	generateCmd.Flags().BoolVar(&skipRender, "skip-render", false, "Skip PDF/DOCX rendering, write the resume as JSON")
	_ = generateCmd.MarkFlagRequired("profile")
}

func runGenerate(cmd *cobra.Command, args []string) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	var cfg config.Config
	cfg, err = config.Load(getConfigFile())
	if err != nil {
		err = errors.Wrap(err, "failed to load config")
		return err
	}

	logger := newLogger()

	var jobDescription string
	jobDescription, err = fetchJobDescription(args[0])
	if err != nil {
		return err
	}

	var store *profile.Store
	store, err = profile.NewStore(cfg.ProfilesDir)
	if err != nil {
		return err
	}

	var facts profile.Profile
	facts, err = store.Load(profileName)
	if err != nil {
		return err
	}

	var experience string
	if resumeFile != "" {
		var data []byte
		data, err = os.ReadFile(resumeFile)
		if err != nil {
			err = errors.Wrapf(err, "failed to read resume file: %s", resumeFile)
			return err
		}
		experience = string(data)
	}

	client := llm.NewClient(cfg.AnthropicAPIKey, cfg.GetModel(), logger)
	synth := resume.NewSynthesizer(client, logger)

	result := synthesizeWithSpinner(ctx, synth, resume.Request{
		JobDescription: jobDescription,
		Experience:     experience,
		TargetTitle:    targetTitle,
		HiringCompany:  hiringCompany,
	}, facts)

	reportResult(result)

	outDir := outputDir
	if outDir == "" {
		outDir = cfg.OutputDir
	}
	err = os.MkdirAll(outDir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create output directory: %s", outDir)
		return err
	}

	base := filepath.Join(outDir, buildBasename(facts.Name, result.Resume.Title))

	if skipRender {
		err = writeJSONResume(result.Resume, base)
		return err
	}

	rend := renderer.New(cfg.TemplatePath, cfg.ChromePath, logger)

	var docs renderer.Documents
	docs, err = renderWithSpinner(ctx, rend, result.Resume)
	if err != nil {
		if renderer.IsRenderError(err) {
			fmt.Printf("Warning: %v\n", err)
			fmt.Println("Writing the resume as JSON instead.")
			err = writeJSONResume(result.Resume, base)
			return err
		}
		return err
	}

	err = os.WriteFile(base+".pdf", docs.PDF, 0600)
	if err != nil {
		err = errors.Wrap(err, "failed to write PDF")
		return err
	}
	fmt.Printf("Resume PDF saved at: %s.pdf\n", base)

	err = os.WriteFile(base+".docx", docs.DOCX, 0600)
	if err != nil {
		err = errors.Wrap(err, "failed to write DOCX")
		return err
	}
	fmt.Printf("Resume DOCX saved at: %s.docx\n", base)

	fmt.Println("\nGeneration complete!")
	return err
}

// newLogger builds the CLI logger. Warnings and errors only unless
// --verbose is set.
func newLogger() (logger zerolog.Logger) {
	level := zerolog.WarnLevel
	if getVerbose() {
		level = zerolog.DebugLevel
	}

	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	return logger
}

func fetchJobDescription(input string) (jobDescription string, err error) {
	if getVerbose() {
		fmt.Printf("Loading job description from: %s\n", input)
	}

	jobDescription, err = jd.Fetch(input)
	if err != nil {
		// Fetching fails on JavaScript-rendered job boards. Offer a paste
		// path rather than giving up.
		fmt.Printf("\nWarning: Failed to fetch job description: %v\n", err)
		fmt.Println("This often happens with JavaScript-rendered pages (Lever, Workable, etc.)")
		fmt.Println("\nPlease paste the job description text below.")
		fmt.Println("When finished, press Ctrl+D (Unix/Mac) or Ctrl+Z then Enter (Windows):")
		fmt.Println()

		scanner := bufio.NewScanner(os.Stdin)
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}

		if scanner.Err() != nil {
			err = errors.Wrap(scanner.Err(), "failed to read job description from stdin")
			return jobDescription, err
		}

		jobDescription = strings.TrimSpace(strings.Join(lines, "\n"))
		if jobDescription == "" {
			err = errors.New("no job description provided")
			return jobDescription, err
		}

		fmt.Printf("\nJob description received (%d characters)\n", len(jobDescription))
		err = nil
		return jobDescription, err
	}

	if getVerbose() {
		fmt.Printf("Job description loaded (%d characters)\n", len(jobDescription))
	}

	return jobDescription, err
}

func synthesizeWithSpinner(ctx context.Context, synth *resume.Synthesizer, req resume.Request, facts profile.Profile) (result resume.Result) {
	var s *spinner
	if !getVerbose() {
		s = newSpinner("Generating tailored resume...")
		s.start()
	} else {
		fmt.Println("Generating tailored resume...")
	}

	result = synth.Synthesize(ctx, req, facts)

	if s != nil {
		s.stopSpinner()
	}

	if !getVerbose() {
		fmt.Println("✓ Generation complete")
	}

	return result
}

func renderWithSpinner(ctx context.Context, rend *renderer.Renderer, data resume.ResumeData) (docs renderer.Documents, err error) {
	var s *spinner
	if !getVerbose() {
		s = newSpinner("Rendering PDF and DOCX...")
		s.start()
	} else {
		fmt.Println("Rendering PDF and DOCX...")
	}

	docs, err = rend.Render(ctx, data)

	if s != nil {
		s.stopSpinner()
	}

	return docs, err
}

func reportResult(result resume.Result) {
	if result.Fallback {
		fmt.Println("Note: generation used the local fallback; review the resume before sending.")
	}

	if !getVerbose() || len(result.Violations) == 0 {
		return
	}

	fmt.Println("\nConstraint checks:")
	for _, v := range result.Violations {
		status := "flagged"
		if v.Patched {
			status = "patched"
		}
		fmt.Printf("  [%s] %s: %s\n", status, v.Rule, v.Detail)
	}
	fmt.Println()
}

func writeJSONResume(data resume.ResumeData, base string) (err error) {
	var out []byte
	out, err = renderer.ExportJSON(data)
	if err != nil {
		return err
	}

	path := base + ".json"
	err = os.WriteFile(path, out, 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write resume JSON: %s", path)
		return err
	}

	fmt.Printf("Resume JSON saved at: %s\n", path)
	return err
}

// buildBasename generates the output filename stem.
func buildBasename(name, title string) (base string) {
	// Truncate long titles to keep filenames reasonable
	words := strings.Fields(title)
	if len(words) > 4 {
		title = strings.Join(words[:4], " ")
	}

	base = sanitizeFilename(name) + "-" + sanitizeFilename(title) + "-resume"
	return base
}

func sanitizeFilename(name string) (sanitized string) {
	sanitized = strings.ToLower(name)

	// Replace anything outside [a-z0-9] with hyphens
	sanitized = strings.Map(func(r rune) (result rune) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			result = r
			return result
		}
		result = '-'
		return result
	}, sanitized)

	for strings.Contains(sanitized, "--") {
		sanitized = strings.ReplaceAll(sanitized, "--", "-")
	}
	sanitized = strings.Trim(sanitized, "-")

	return sanitized
}

// spinner provides a simple text-based progress indicator.
type spinner struct {
	message string
	stop    chan bool
	done    chan bool
	mu      sync.Mutex
	active  bool
}

func newSpinner(message string) (s *spinner) {
	s = &spinner{
		message: message,
		stop:    make(chan bool),
		done:    make(chan bool),
	}
	return s
}

func (s *spinner) start() {
	s.mu.Lock()
	if s.active {
		s.mu.Unlock()
		return
	}
	s.active = true
	s.mu.Unlock()

	go func() {
		chars := []string{"|", "/", "-", "\\"}
		i := 0
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()

		fmt.Printf("%s ", s.message)
		for {
			select {
			case <-s.stop:
				// Clear the line and ensure cursor is at start of new line
				fmt.Printf("\r%s\r", strings.Repeat(" ", len(s.message)+2))
				s.done <- true
				return
			case <-ticker.C:
				fmt.Printf("\r%s %s", s.message, chars[i%len(chars)])
				i++
			}
		}
	}()
}

func (s *spinner) stopSpinner() {
	s.mu.Lock()
	if !s.active {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	s.stop <- true
	<-s.done

	s.mu.Lock()
	s.active = false
	s.mu.Unlock()
}
