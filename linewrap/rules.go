package linewrap

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dlclark/regexp2"
	"gopkg.in/yaml.v3"

	"utdfmt/common"
)

//go:embed rules/*.yaml
var embeddedRules embed.FS

// Rule is a single break rule. Break position is the end of the match, or
// its start when the match is a consumed separator.
type Rule struct {
	Pattern   string `yaml:"pattern"`
	Insert    string `yaml:"insert,omitempty"`
	Consume   bool   `yaml:"consume,omitempty"`
	LineStart bool   `yaml:"line_start,omitempty"`

	re *regexp2.Regexp
}

// RuleSet is an ordered list of rules, earlier rules have priority.
type RuleSet struct {
	Name  string  `yaml:"name"`
	Rules []*Rule `yaml:"rules"`
}

// space and no-break space always break.
const fallbackPattern = "[ \u00a0]+"

func (rs *RuleSet) compile() error {
	if len(rs.Rules) == 0 {
		return errors.New("rule set has no rules")
	}
	for i, r := range rs.Rules {
		if r.Pattern == "" {
			return fmt.Errorf("rule %d: empty pattern", i)
		}
		re, err := regexp2.Compile(r.Pattern, regexp2.None)
		if err != nil {
			return fmt.Errorf("rule %d (%s): %w", i, r.Pattern, err)
		}
		r.re = re
	}
	return nil
}

// ParseRules reads YAML rule set.
func ParseRules(r io.Reader) (*RuleSet, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	rs := &RuleSet{}
	if err := dec.Decode(rs); err != nil {
		return nil, fmt.Errorf("unable to decode break rules: %w", err)
	}
	if err := rs.compile(); err != nil {
		return nil, fmt.Errorf("break rules %q: %w", rs.Name, err)
	}
	return rs, nil
}

// LoadRules returns embedded rule set for braille code.
func LoadRules(code common.BrailleCode) (*RuleSet, error) {
	data, err := embeddedRules.ReadFile("rules/" + code.String() + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("no break rules for %s: %w", code, err)
	}
	return ParseRules(bytes.NewReader(data))
}

// LoadRulesFile reads rule set from external file.
func LoadRulesFile(path string) (*RuleSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open break rules: %w", err)
	}
	defer f.Close()
	return ParseRules(f)
}
