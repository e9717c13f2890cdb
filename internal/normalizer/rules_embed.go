package normalizer

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed data/rules.yaml
var rulesYAML []byte

// StateRule một cặp tên bang đầy đủ -> mã USPS hai ký tự
type StateRule struct {
	Name string `yaml:"name"`
	Abbr string `yaml:"abbr"`
}

// AbbrevRule một cặp từ đầy đủ -> viết tắt chuẩn
type AbbrevRule struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// Rules cấu hình replacement tables được load từ embedded YAML
type Rules struct {
	States        []StateRule  `yaml:"states"`
	Abbreviations []AbbrevRule `yaml:"abbreviations"`
}

// LoadRules parse embedded rules.yaml. Slices keep file order; the state
// pass depends on it.
func LoadRules() (*Rules, error) {
	r := &Rules{}
	if err := yaml.Unmarshal(rulesYAML, r); err != nil {
		return nil, fmt.Errorf("parse embedded rules: %w", err)
	}
	if len(r.States) == 0 || len(r.Abbreviations) == 0 {
		return nil, fmt.Errorf("embedded rules are incomplete: %d states, %d abbreviations",
			len(r.States), len(r.Abbreviations))
	}
	return r, nil
}
