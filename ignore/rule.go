package ignore

import (
	"bufio"
	"io"
	"strings"
)

type RuleKind int

const (
	FileRule RuleKind = iota
	DirectoryRule
)

func (k RuleKind) String() string {
	if k == DirectoryRule {
		return "directory"
	}
	return "file"
}

// Rule is a single line of an ignore file.
type Rule struct {
	Pattern string
	Kind    RuleKind
}

func NewRule(pattern string) Rule {
	if strings.HasSuffix(pattern, "/") {
		return Rule{Pattern: pattern, Kind: DirectoryRule}
	}
	return Rule{Pattern: pattern, Kind: FileRule}
}

// ParseRules reads one pattern per line. Blank lines are skipped: an empty
// alternative would match every path.
func ParseRules(reader io.Reader) ([]Rule, error) {
	var rules []Rule

	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		rules = append(rules, NewRule(line))
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return rules, nil
}
