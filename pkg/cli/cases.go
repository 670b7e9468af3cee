package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/funvibe/shellexpr/internal/config"
	"github.com/funvibe/shellexpr/internal/operator"
	"github.com/funvibe/shellexpr/internal/value"
)

// Case is one operator application.
type Case struct {
	Name  string
	Op    operator.Operator
	Left  value.Value
	Right value.Value
}

// caseSpec is the on-disk form of a Case. Operands stay YAML nodes so that
// local tags such as !line survive until value decoding.
type caseSpec struct {
	Name  string    `yaml:"name"`
	Left  yaml.Node `yaml:"left"`
	Op    string    `yaml:"op"`
	Right yaml.Node `yaml:"right"`
}

// isCaseFile checks if a file has a recognized case file extension
func isCaseFile(path string) bool {
	return slices.Contains(config.CaseFileExtensions, filepath.Ext(path))
}

// LoadCases reads a YAML sequence of {name, left, op, right} mappings.
func LoadCases(path string) ([]Case, error) {
	if !isCaseFile(path) {
		return nil, fmt.Errorf("%s: case files must end in one of %v", path, config.CaseFileExtensions)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cases, err := ParseCases(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cases, nil
}

// ParseCases decodes case file content.
func ParseCases(content []byte) ([]Case, error) {
	var specs []caseSpec
	if err := yaml.Unmarshal(content, &specs); err != nil {
		return nil, fmt.Errorf("yaml parse error: %w", err)
	}

	cases := make([]Case, 0, len(specs))
	for i, spec := range specs {
		name := spec.Name
		if name == "" {
			name = "case " + strconv.Itoa(i+1)
		}
		op, err := operator.Parse(spec.Op)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		left, err := value.FromNode(&spec.Left)
		if err != nil {
			return nil, fmt.Errorf("%s: left: %w", name, err)
		}
		right, err := value.FromNode(&spec.Right)
		if err != nil {
			return nil, fmt.Errorf("%s: right: %w", name, err)
		}
		cases = append(cases, Case{Name: name, Op: op, Left: left, Right: right})
	}
	return cases, nil
}

// parseOperand decodes a command-line operand as a YAML literal.
func parseOperand(arg string) (value.Value, error) {
	v, err := value.FromYAML([]byte(arg))
	if err != nil {
		return nil, fmt.Errorf("operand %q: %w", arg, err)
	}
	return v, nil
}
