package pattern

// yamlPattern is the intermediate struct for parsing pattern YAML files.
type yamlPattern struct {
	ID               string   `yaml:"id"`
	Name             string   `yaml:"name"`
	Pattern          string   `yaml:"pattern"`
	Description      string   `yaml:"description,omitempty"`
	Examples         []string `yaml:"examples,omitempty"`
	NegativeExamples []string `yaml:"negative_examples,omitempty"`
}

// yamlPatternsFile represents the top-level structure of a patterns YAML file.
type yamlPatternsFile struct {
	Patterns []yamlPattern `yaml:"patterns"`
}

func convertYAMLPattern(yp yamlPattern) *Pattern {
	return &Pattern{
		ID:               yp.ID,
		Name:             yp.Name,
		Pattern:          yp.Pattern,
		Description:      yp.Description,
		Examples:         yp.Examples,
		NegativeExamples: yp.NegativeExamples,
	}
}
