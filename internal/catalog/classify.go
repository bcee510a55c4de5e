package catalog

import "strings"

// ModelClass is a coarse bucket inferred from a record's display name.
type ModelClass string

const (
	ClassAll     ModelClass = "all"
	ClassGPT4    ModelClass = "gpt4"
	ClassGPT35   ModelClass = "gpt35"
	ClassClaude3 ModelClass = "claude3"
	ClassLlama2  ModelClass = "llama2"
	ClassImage   ModelClass = "image"
	ClassOther   ModelClass = "other"
)

// ModelClasses lists the selectable class tabs in display order, starting
// with ClassAll.
func ModelClasses() []ModelClass {
	return []ModelClass{ClassAll, ClassGPT4, ClassGPT35, ClassClaude3, ClassLlama2, ClassImage, ClassOther}
}

// Valid reports whether c is ClassAll or one of the inferred classes.
func (c ModelClass) Valid() bool {
	for _, known := range ModelClasses() {
		if c == known {
			return true
		}
	}
	return false
}

// classRules are evaluated in order; the first rule with a matching
// substring wins.
var classRules = []struct {
	class   ModelClass
	needles []string
}{
	{ClassGPT4, []string{"gpt-4", "gpt4"}},
	{ClassGPT35, []string{"gpt-3.5", "gpt3"}},
	{ClassClaude3, []string{"claude 3"}},
	{ClassLlama2, []string{"llama 2", "llama2"}},
	{ClassImage, []string{"dall-e", "imagen", "stability", "diffusion"}},
}

// Classify derives the model class from the record name, case-insensitively.
func Classify(r ModelRecord) ModelClass {
	name := strings.ToLower(r.Name)
	for _, rule := range classRules {
		for _, needle := range rule.needles {
			if strings.Contains(name, needle) {
				return rule.class
			}
		}
	}
	return ClassOther
}
