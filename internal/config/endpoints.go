package config

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/hamed0406/domainwatch/internal/domain"
)

// LoadEndpoints reads and validates the endpoints file. The file must be a
// YAML sequence of records; a single bad record fails the whole load — a
// monitor quietly running on a truncated list is worse than one that refuses
// to start. All validation problems are reported together.
func LoadEndpoints(path string) ([]domain.Endpoint, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read endpoints file: %w", err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse endpoints file: %w", err)
	}
	if len(doc.Content) == 0 {
		// empty document == zero endpoints
		return []domain.Endpoint{}, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("endpoints file must be a sequence of records, got %s", yamlKind(root.Kind))
	}

	eps := make([]domain.Endpoint, 0, len(root.Content))
	var verr error
	for i, item := range root.Content {
		var ep domain.Endpoint
		if err := item.Decode(&ep); err != nil {
			verr = multierr.Append(verr, fmt.Errorf("endpoint %d: %w", i, err))
			continue
		}
		if err := validate(ep); err != nil {
			verr = multierr.Append(verr, fmt.Errorf("endpoint %d (%s): %w", i, nameOrURL(ep), err))
			continue
		}
		if ep.Method == "" {
			ep.Method = http.MethodGet
		} else {
			ep.Method = strings.ToUpper(ep.Method)
		}
		eps = append(eps, ep)
	}
	if verr != nil {
		return nil, verr
	}
	return eps, nil
}

func validate(ep domain.Endpoint) error {
	var err error
	if strings.TrimSpace(ep.Name) == "" {
		err = multierr.Append(err, fmt.Errorf("missing name"))
	}
	if strings.TrimSpace(ep.URL) == "" {
		err = multierr.Append(err, fmt.Errorf("missing url"))
		return err
	}
	u, perr := url.Parse(ep.URL)
	if perr != nil {
		return multierr.Append(err, fmt.Errorf("invalid url %q: %w", ep.URL, perr))
	}
	if u.Scheme == "" || u.Host == "" {
		err = multierr.Append(err, fmt.Errorf("url %q must be absolute with scheme and host", ep.URL))
	}
	return err
}

func nameOrURL(ep domain.Endpoint) string {
	if ep.Name != "" {
		return ep.Name
	}
	return ep.URL
}

func yamlKind(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	}
	return "unknown"
}
