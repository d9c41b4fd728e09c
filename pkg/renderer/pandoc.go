package renderer

import (
	"os"
	"os/exec"
	"path/filepath"

	"github.com/pkg/errors"
)

// renderDOCX converts HTML to DOCX using pandoc.
func renderDOCX(html string) (docx []byte, err error) {
	// Validate pandoc exists
	err = checkPandocExists()
	if err != nil {
		return docx, err
	}

	var tmpDir string
	tmpDir, err = os.MkdirTemp("", "resumesmith-docx-")
	if err != nil {
		err = errors.Wrap(err, "failed to create temp directory")
		return docx, err
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "resume.html")
	docxPath := filepath.Join(tmpDir, "resume.docx")

	err = os.WriteFile(htmlPath, []byte(html), 0600)
	if err != nil {
		err = errors.Wrap(err, "failed to write temp HTML")
		return docx, err
	}

	// Build pandoc command
	//nolint:noctx // Context not available for exec.Command - pandoc is a short-lived subprocess
	cmd := exec.Command(
		"pandoc",
		"-f", "html",
		"-t", "docx",
		"-o", docxPath,
		htmlPath,
	)

	// Capture output
	var output []byte
	output, err = cmd.CombinedOutput()
	if err != nil {
		err = errors.Wrapf(err, "pandoc failed: %s", string(output))
		return docx, err
	}

	docx, err = os.ReadFile(docxPath)
	if err != nil {
		err = errors.Wrapf(err, "failed to read pandoc output: %s", docxPath)
		return docx, err
	}

	return docx, err
}

// checkPandocExists verifies pandoc is installed.
func checkPandocExists() (err error) {
	//nolint:noctx // Context not available for version check
	cmd := exec.Command("pandoc", "--version")
	err = cmd.Run()
	if err != nil {
		err = errors.New("pandoc not found in PATH (install pandoc to generate DOCX files)")
		return err
	}
	return err
}

// readTemplate loads a custom template file.
func readTemplate(path string) (content []byte, err error) {
	content, err = os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read template: %s", path)
		return content, err
	}
	return content, err
}
