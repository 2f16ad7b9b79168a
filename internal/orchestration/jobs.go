package orchestration

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/agbru/digitcalc/internal/calculator"
)

// Job is one evaluation of a batch.
type Job struct {
	Op   string   `toml:"op" yaml:"op"`
	Args []string `toml:"args" yaml:"args"`
	// Line is the 1-based source line for text files, 0 otherwise.
	Line int `toml:"-" yaml:"-"`
}

// jobFile is the document layout shared by the TOML and YAML formats:
//
//	[[jobs]]
//	op = "int.div"
//	args = ["-7", "2"]
type jobFile struct {
	Jobs []Job `toml:"jobs" yaml:"jobs"`
}

// Format identifies a job file syntax.
type Format int

const (
	FormatText Format = iota
	FormatTOML
	FormatYAML
)

// DetectFormat picks the syntax from the file extension. Unknown extensions
// are read as text.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatText
	}
}

// LoadJobs reads the batch stored at path.
func LoadJobs(path string) ([]Job, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading batch file: %w", err)
	}
	jobs, err := ParseJobs(content, DetectFormat(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return jobs, nil
}

// ParseJobs decodes a batch in the given format and rejects jobs without an
// operation name.
func ParseJobs(content []byte, format Format) ([]Job, error) {
	var (
		jobs []Job
		err  error
	)
	switch format {
	case FormatTOML:
		var f jobFile
		if err = toml.Unmarshal(content, &f); err != nil {
			return nil, fmt.Errorf("TOML parse error: %w", err)
		}
		jobs = f.Jobs
	case FormatYAML:
		var f jobFile
		if err = yaml.Unmarshal(content, &f); err != nil {
			return nil, fmt.Errorf("YAML parse error: %w", err)
		}
		jobs = f.Jobs
	default:
		jobs, err = parseText(content)
		if err != nil {
			return nil, err
		}
	}

	for i := range jobs {
		jobs[i].Op = strings.ToLower(strings.TrimSpace(jobs[i].Op))
		if jobs[i].Op == "" {
			return nil, fmt.Errorf("job %d has no operation", i+1)
		}
		if jobs[i].Args == nil {
			jobs[i].Args = []string{}
		}
	}
	return jobs, nil
}

// parseText reads one "op arg..." job per line. Blank lines and lines
// starting with '#' are skipped.
func parseText(content []byte) ([]Job, error) {
	var jobs []Job
	scanner := bufio.NewScanner(bytes.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields, err := calculator.SplitArgs(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if len(fields) == 0 {
			continue
		}
		jobs = append(jobs, Job{Op: fields[0], Args: fields[1:], Line: line})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return jobs, nil
}
