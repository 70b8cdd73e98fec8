// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify maps venues to research subfields and countries to
// continents. Both lookups are pure functions over fixed tables; unknown
// venues fall back to "Other" rather than failing.
package classify

import (
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Other is the subfield assigned to venues missing from the table.
const Other = "Other"

// defaultSubfields groups venue identifiers by research area. Venue names
// are matched case-insensitively.
var defaultSubfields = map[string][]string{
	"Artificial Intelligence":                         {"NIPS", "NEURIPS", "ICLR", "ICML", "AAAI", "IJCAI", "AISTATS", "CORL", "ACML"},
	"Computational Linguistics":                       {"ACL", "EMNLP", "NAACL", "COLING", "ARR", "COLM"},
	"Computer Graphics":                               {"SIGGRAPH", "SIGGRAPHASIA", "EUROGRAPHICS"},
	"Computer Networks and Wireless Communication":    {"SITCOM"},
	"Computer Vision and Pattern Recognition":         {"CVPR", "ICCV", "WACV", "BMVC", "3DV"},
	"Data Mining and Analysis":                        {"KDD"},
	"Databases and Information Systems":               {"WWW", "SIGIR"},
	"Multimedia":                                      {"ACMMM"},
	"Robotics":                                        {"ICRA", "IROS", "RSS"},
}

// Classifier resolves venue identifiers to subfield labels.
type Classifier struct {
	byVenue map[string]string
}

// Default returns a Classifier backed by the built-in venue table.
func Default() *Classifier {
	return fromTable(defaultSubfields)
}

// FromFile returns a Classifier backed by a YAML table of the form
//
//	subfields:
//	  Artificial Intelligence: [NIPS, ICML]
//
// replacing the built-in table entirely.
func FromFile(path string) (*Classifier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading subfield table: %w", err)
	}

	var doc struct {
		Subfields map[string][]string `yaml:"subfields"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing subfield table %s: %w", path, err)
	}
	if len(doc.Subfields) == 0 {
		return nil, fmt.Errorf("subfield table %s: no subfields defined", path)
	}
	return fromTable(doc.Subfields), nil
}

func fromTable(table map[string][]string) *Classifier {
	byVenue := make(map[string]string)
	for subfield, venues := range table {
		for _, v := range venues {
			byVenue[strings.ToUpper(v)] = subfield
		}
	}
	return &Classifier{byVenue: byVenue}
}

// Subfield returns the research-area label for a venue, or Other when the
// venue is not in the table. It is total: it never fails.
func (c *Classifier) Subfield(venue string) string {
	if s, ok := c.byVenue[strings.ToUpper(strings.TrimSpace(venue))]; ok {
		return s
	}
	return Other
}

// DisplayName shortens subfield labels for report output.
func DisplayName(subfield string) string {
	if subfield == "Computer Vision and Pattern Recognition" {
		return "Computer Vision"
	}
	return subfield
}
