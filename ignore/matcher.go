// Package ignore turns the lines of an ignore file into a predicate over
// relative paths.
//
// Patterns are regular expression fragments matched against the start of a
// path. Patterns ending in "/" are directory patterns, all others are file
// patterns. Each group is compiled into a single alternation so a candidate
// path is tested at most twice, however many patterns there are.
package ignore

import (
	"fmt"
	"regexp"
	"strings"

	boshsys "github.com/cloudfoundry/bosh-utils/system"
	"github.com/pkg/errors"
)

type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid ignore pattern %q: %s", e.Pattern, e.Err)
}

func (e *PatternError) Cause() error {
	return e.Err
}

func (e *PatternError) Unwrap() error {
	return e.Err
}

type Matcher struct {
	directories *regexp.Regexp
	files       *regexp.Regexp
}

func Compile(patterns []string) (*Matcher, error) {
	rules := make([]Rule, 0, len(patterns))
	for _, pattern := range patterns {
		rules = append(rules, NewRule(pattern))
	}
	return CompileRules(rules)
}

func CompileRules(rules []Rule) (*Matcher, error) {
	var directoryPatterns, filePatterns []string

	for _, rule := range rules {
		if _, err := regexp.Compile(rule.Pattern); err != nil {
			return nil, &PatternError{Pattern: rule.Pattern, Err: err}
		}

		switch rule.Kind {
		case DirectoryRule:
			directoryPatterns = append(directoryPatterns, rule.Pattern)
		default:
			filePatterns = append(filePatterns, rule.Pattern)
		}
	}

	directories, err := alternation(directoryPatterns)
	if err != nil {
		return nil, err
	}
	files, err := alternation(filePatterns)
	if err != nil {
		return nil, err
	}

	return &Matcher{directories: directories, files: files}, nil
}

// LoadFile compiles the ignore file at path. A missing file excludes nothing.
func LoadFile(fs boshsys.FileSystem, path string) (*Matcher, error) {
	if path == "" || !fs.FileExists(path) {
		return &Matcher{}, nil
	}

	contents, err := fs.ReadFileString(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read ignore file %s", path)
	}

	rules, err := ParseRules(strings.NewReader(contents))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse ignore file %s", path)
	}

	return CompileRules(rules)
}

func (m *Matcher) Matches(relativePath string) bool {
	if m.directories != nil && m.directories.MatchString(relativePath) {
		return true
	}
	return m.files != nil && m.files.MatchString(relativePath)
}

// Filter returns the paths that are not excluded, in their original order.
func (m *Matcher) Filter(relativePaths []string) []string {
	kept := make([]string, 0, len(relativePaths))
	for _, path := range relativePaths {
		if !m.Matches(path) {
			kept = append(kept, path)
		}
	}
	return kept
}

func alternation(patterns []string) (*regexp.Regexp, error) {
	if len(patterns) == 0 {
		return nil, nil
	}

	groups := make([]string, len(patterns))
	for i, pattern := range patterns {
		groups[i] = "(" + pattern + ")"
	}

	expression := "^(?:" + strings.Join(groups, "|") + ")"
	compiled, err := regexp.Compile(expression)
	if err != nil {
		return nil, &PatternError{Pattern: strings.Join(patterns, "|"), Err: err}
	}
	return compiled, nil
}
