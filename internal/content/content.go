// Package content loads the words of the greeting: quiz, gifts and letter.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/surprise/internal/models"
)

//go:embed default.yaml
var defaultContent []byte

const (
	recipientPlaceholder = "{{recipient}}"
	senderPlaceholder    = "{{sender}}"
)

// Content is everything the stage views say.
type Content struct {
	Quiz     []models.QuizQuestion `yaml:"quiz"`
	Gifts    []models.Gift         `yaml:"gifts"`
	Letter   []string              `yaml:"letter"`
	Closing  string                `yaml:"closing"`
	Farewell string                `yaml:"farewell"`
	Keepsake string                `yaml:"keepsake"`
}

// Default returns the built-in content.
func Default() (*Content, error) {
	return Parse(defaultContent)
}

// Load reads content from path, or the built-in content when path is empty.
func Load(path string) (*Content, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML content document.
func Parse(data []byte) (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse content: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the invariants the stage views rely on.
func (c *Content) Validate() error {
	var errs []error

	if len(c.Quiz) == 0 {
		errs = append(errs, errors.New("quiz needs at least one question"))
	}
	for i, q := range c.Quiz {
		if strings.TrimSpace(q.Question) == "" {
			errs = append(errs, fmt.Errorf("quiz question %d is empty", i+1))
		}
		if len(q.Options) < 2 {
			errs = append(errs, fmt.Errorf("quiz question %d needs at least two options", i+1))
		}
		if q.Correct < 0 || q.Correct >= len(q.Options) {
			errs = append(errs, fmt.Errorf("quiz question %d: correct option %d out of range", i+1, q.Correct))
		}
	}

	// "Try another" must always have somewhere to go.
	if len(c.Gifts) < 2 {
		errs = append(errs, errors.New("at least two gifts are required"))
	}
	seen := make(map[string]bool, len(c.Gifts))
	for _, g := range c.Gifts {
		if seen[g.Title] {
			errs = append(errs, fmt.Errorf("duplicate gift title %q", g.Title))
		}
		seen[g.Title] = true
	}

	if len(c.Letter) == 0 {
		errs = append(errs, errors.New("letter needs at least one line"))
	}

	return errors.Join(errs...)
}

// Personalize returns a copy with the recipient and sender names filled in.
func (c *Content) Personalize(recipient, sender string) *Content {
	r := strings.NewReplacer(recipientPlaceholder, recipient, senderPlaceholder, sender)

	out := &Content{
		Closing:  r.Replace(c.Closing),
		Farewell: r.Replace(c.Farewell),
		Keepsake: r.Replace(c.Keepsake),
	}
	for _, q := range c.Quiz {
		opts := make([]string, len(q.Options))
		for i, o := range q.Options {
			opts[i] = r.Replace(o)
		}
		out.Quiz = append(out.Quiz, models.QuizQuestion{
			Question: r.Replace(q.Question),
			Options:  opts,
			Correct:  q.Correct,
		})
	}
	for _, g := range c.Gifts {
		out.Gifts = append(out.Gifts, models.Gift{
			Emoji:       g.Emoji,
			Title:       r.Replace(g.Title),
			Description: r.Replace(g.Description),
		})
	}
	for _, line := range c.Letter {
		out.Letter = append(out.Letter, r.Replace(line))
	}
	return out
}
