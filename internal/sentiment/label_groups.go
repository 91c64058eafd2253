package sentiment

import (
	"fmt"
	"os"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

type LabelGroup struct {
	Name   string   `yaml:"group"`
	Labels []string `yaml:"labels"`
}

// LabelGroups maps go_emotions labels onto coarse sentiments. Order matters:
// a label listed in more than one group resolves to the first one.
type LabelGroups []LabelGroup

var DefaultLabelGroups = LabelGroups{
	{
		Name:   SentimentPositive,
		Labels: []string{"admiration", "approval", "gratitude", "joy", "love", "optimism", "excitement"},
	},
	{
		Name:   SentimentNegative,
		Labels: []string{"anger", "disgust", "fear", "sadness"},
	},
	{
		Name:   SentimentNeutral,
		Labels: []string{"confusion", "neutral", "surprise", "realization"},
	},
}

// SentimentFor returns the first group containing label, or neutral.
func (g LabelGroups) SentimentFor(label string) string {
	group, ok := lo.Find(g, func(group LabelGroup) bool {
		return lo.Contains(group.Labels, label)
	})
	if !ok {
		return SentimentNeutral
	}
	return group.Name
}

// LoadLabelGroups reads an ordered YAML list of groups, e.g.
//
//	- group: positive
//	  labels: [joy, love]
func LoadLabelGroups(path string) (LabelGroups, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read label groups: %w", err)
	}

	var groups LabelGroups
	if err := yaml.Unmarshal(raw, &groups); err != nil {
		return nil, fmt.Errorf("failed to parse label groups: %w", err)
	}
	if len(groups) == 0 {
		return nil, fmt.Errorf("label groups file %s is empty", path)
	}

	for i, group := range groups {
		if !lo.Contains([]string{SentimentPositive, SentimentNegative, SentimentNeutral}, group.Name) {
			return nil, fmt.Errorf("unknown sentiment group %q", group.Name)
		}
		groups[i].Labels = lo.Map(group.Labels, func(label string, _ int) string {
			return strings.ToLower(strings.TrimSpace(label))
		})
	}

	return groups, nil
}
