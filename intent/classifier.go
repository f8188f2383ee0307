package intent

import (
	"fmt"
	"log"
	"os"
	"regexp"
	"strings"
	"sync"

	"github.com/jbrukh/bayesian"
	"gopkg.in/yaml.v3"
)

// ConfidenceThreshold gates the classifier output. The model is trained
// on a small labelled set and must fail closed on out-of-distribution
// input rather than mis-route a query.
const ConfidenceThreshold = 0.45

var tokenPattern = regexp.MustCompile(`[a-z]+`)

// Classifier wraps a naive Bayes text classifier over the closed intent
// set. The model is loaded (or trained from the bundled phrase file) on
// first use and cached for the process lifetime.
type Classifier struct {
	modelPath  string
	phrasePath string

	once sync.Once
	nb   *bayesian.Classifier
}

// NewClassifier prepares a lazy classifier. Nothing is loaded until the
// first Classify call.
func NewClassifier(modelPath, phrasePath string) *Classifier {
	return &Classifier{modelPath: modelPath, phrasePath: phrasePath}
}

func (c *Classifier) load() {
	if c.modelPath != "" {
		if nb, err := bayesian.NewClassifierFromFile(c.modelPath); err == nil {
			c.nb = nb
			return
		}
	}
	if c.phrasePath != "" {
		phrases, err := LoadPhrases(c.phrasePath)
		if err != nil {
			log.Printf("intent: no model and no phrase file: %v", err)
			return
		}
		c.nb = Train(phrases)
	}
}

// Classify returns the best intent and its posterior probability. If no
// model is available, or the best class scores below the confidence
// threshold, the result is (Unknown, confidence).
func (c *Classifier) Classify(text string) (Intent, float64) {
	c.once.Do(c.load)
	if c.nb == nil {
		return Unknown, 0
	}
	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return Unknown, 0
	}
	scores, best, _ := c.nb.ProbScores(tokens)
	confidence := scores[best]
	if confidence < ConfidenceThreshold {
		return Unknown, confidence
	}
	return All[best], confidence
}

// Tokenize lowercases and splits an utterance into word tokens.
func Tokenize(text string) []string {
	return tokenPattern.FindAllString(strings.ToLower(text), -1)
}

// Train builds a classifier from labelled example phrases.
func Train(phrases map[Intent][]string) *bayesian.Classifier {
	nb := bayesian.NewClassifier(classes()...)
	for in, examples := range phrases {
		for _, example := range examples {
			nb.Learn(Tokenize(example), bayesian.Class(in))
		}
	}
	return nb
}

// LoadPhrases reads the labelled phrase file (intent name -> examples).
func LoadPhrases(path string) (map[Intent][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw map[string][]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	known := map[Intent]bool{}
	for _, in := range All {
		known[in] = true
	}
	out := map[Intent][]string{}
	for name, examples := range raw {
		in := Intent(name)
		if !known[in] {
			return nil, fmt.Errorf("unknown intent %q in %s", name, path)
		}
		out[in] = examples
	}
	return out, nil
}

// SaveModel persists a trained classifier for lazy loading.
func SaveModel(nb *bayesian.Classifier, path string) error {
	return nb.WriteToFile(path)
}
