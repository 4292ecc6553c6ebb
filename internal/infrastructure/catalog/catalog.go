// Package catalog serves the sample civic data the dashboards are seeded
// with. The data is embedded as YAML and decoded once at startup.
package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/jaaago/civic-portal/internal/core/domain"
)

//go:embed seed.yaml
var seedYAML []byte

type seed struct {
	Community   []domain.Issue                `yaml:"community"`
	Authority   []domain.Issue                `yaml:"authority"`
	Tracked     domain.TrackedIssue           `yaml:"tracked"`
	Tasks       []domain.Task                 `yaml:"tasks"`
	Feedback    []domain.Feedback             `yaml:"feedback"`
	Blog        []domain.BlogPost             `yaml:"blog"`
	Messages    []domain.PartnerMessage       `yaml:"messages"`
	Analytics   []domain.Metric               `yaml:"analytics"`
	Performance []domain.Metric               `yaml:"performance"`
	Home        map[string]domain.HomeSummary `yaml:"home"`
}

// Catalog implements ports.Catalog. Every accessor returns a fresh copy.
type Catalog struct {
	data seed
}

// Load decodes the embedded sample data.
func Load() (*Catalog, error) {
	return Parse(seedYAML)
}

// Parse decodes sample data from raw YAML.
func Parse(raw []byte) (*Catalog, error) {
	var s seed
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	for _, list := range [][]domain.Issue{s.Community, s.Authority} {
		for _, i := range list {
			if !i.Status.Valid() {
				return nil, fmt.Errorf("decode catalog: issue %s has unknown status %q", i.ID, i.Status)
			}
		}
	}
	return &Catalog{data: s}, nil
}

func (c *Catalog) Home(role domain.Role) domain.HomeSummary {
	h := c.data.Home[role.String()]
	return domain.HomeSummary{
		Stats:    clone(h.Stats),
		Activity: clone(h.Activity),
		Issues:   clone(h.Issues),
		Tasks:    clone(h.Tasks),
	}
}

func (c *Catalog) CommunityIssues() []domain.Issue { return clone(c.data.Community) }
func (c *Catalog) AuthorityIssues() []domain.Issue { return clone(c.data.Authority) }

func (c *Catalog) TrackedIssue() domain.TrackedIssue {
	t := c.data.Tracked
	t.Updates = clone(t.Updates)
	return t
}

func (c *Catalog) Tasks() []domain.Task                     { return clone(c.data.Tasks) }
func (c *Catalog) Feedback() []domain.Feedback              { return clone(c.data.Feedback) }
func (c *Catalog) BlogPosts() []domain.BlogPost             { return clone(c.data.Blog) }
func (c *Catalog) PartnerMessages() []domain.PartnerMessage { return clone(c.data.Messages) }
func (c *Catalog) Analytics() []domain.Metric               { return clone(c.data.Analytics) }
func (c *Catalog) Performance() []domain.Metric             { return clone(c.data.Performance) }

func clone[T any](items []T) []T {
	if items == nil {
		return nil
	}
	out := make([]T, len(items))
	copy(out, items)
	return out
}
