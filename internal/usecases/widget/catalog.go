package widget

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/vfg2006/wedsync-venue-api/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

var (
	ErrWidgetNotFound = errors.New("widget not found")
	ErrInvalidPlan    = errors.New("invalid plan")
	ErrInvalidCatalog = errors.New("invalid widget catalog")
)

type catalogFile struct {
	Widgets []domain.WidgetDefinition `yaml:"widgets"`
}

// Catalog é o catálogo somente leitura de widgets do painel
type Catalog struct {
	widgets []domain.WidgetDefinition
	byID    map[string]int
}

// NewCatalog carrega o catálogo embutido no binário
func NewCatalog() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Parse carrega um catálogo em YAML, validando ids e planos
func Parse(raw []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCatalog, err.Error())
	}

	catalog := &Catalog{
		widgets: make([]domain.WidgetDefinition, 0, len(file.Widgets)),
		byID:    make(map[string]int, len(file.Widgets)),
	}

	for _, w := range file.Widgets {
		if strings.TrimSpace(w.ID) == "" {
			return nil, fmt.Errorf("%w: widget sem id", ErrInvalidCatalog)
		}
		if _, exists := catalog.byID[w.ID]; exists {
			return nil, fmt.Errorf("%w: id duplicado %s", ErrInvalidCatalog, w.ID)
		}
		if w.MinPlan == "" {
			w.MinPlan = domain.PlanFree
		}
		if _, ok := domain.ParsePlan(string(w.MinPlan)); !ok {
			return nil, fmt.Errorf("%w: plano %q no widget %s", ErrInvalidCatalog, w.MinPlan, w.ID)
		}

		catalog.byID[w.ID] = len(catalog.widgets)
		catalog.widgets = append(catalog.widgets, w)
	}

	return catalog, nil
}

// List filtra por categoria, texto (nome, descrição e tags) e plano, ordenando
// por popularidade decrescente e depois por nome
func (c *Catalog) List(filter domain.WidgetFilter) ([]domain.WidgetDefinition, error) {
	if filter.Plan != "" {
		if _, ok := domain.ParsePlan(string(filter.Plan)); !ok {
			return nil, fmt.Errorf("%w: %s", ErrInvalidPlan, filter.Plan)
		}
	}

	category := strings.ToLower(strings.TrimSpace(filter.Category))
	search := strings.ToLower(strings.TrimSpace(filter.Search))

	out := make([]domain.WidgetDefinition, 0)
	for _, w := range c.widgets {
		if category != "" && strings.ToLower(w.Category) != category {
			continue
		}
		if filter.Plan != "" && !filter.Plan.Includes(w.MinPlan) {
			continue
		}
		if search != "" && !matches(w, search) {
			continue
		}
		out = append(out, w)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Popularity != out[j].Popularity {
			return out[i].Popularity > out[j].Popularity
		}
		return out[i].Name < out[j].Name
	})

	return out, nil
}

func matches(w domain.WidgetDefinition, search string) bool {
	if strings.Contains(strings.ToLower(w.Name), search) || strings.Contains(strings.ToLower(w.Description), search) {
		return true
	}
	for _, tag := range w.Tags {
		if strings.Contains(strings.ToLower(tag), search) {
			return true
		}
	}
	return false
}

func (c *Catalog) Get(id string) (domain.WidgetDefinition, error) {
	idx, ok := c.byID[id]
	if !ok {
		return domain.WidgetDefinition{}, fmt.Errorf("%w: %s", ErrWidgetNotFound, id)
	}
	return c.widgets[idx], nil
}

// Categories retorna as categorias do catálogo em ordem alfabética
func (c *Catalog) Categories() []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, w := range c.widgets {
		if _, ok := seen[w.Category]; ok {
			continue
		}
		seen[w.Category] = struct{}{}
		out = append(out, w.Category)
	}
	sort.Strings(out)
	return out
}
