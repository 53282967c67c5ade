package classifier

import (
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPatterns is the ordered list of user agent tokens identifying mobile
// platforms and browsers. Matching is case-insensitive.
var DefaultPatterns = []string{
	"Android",
	"webOS",
	"iPhone",
	"iPad",
	"iPod",
	"BlackBerry",
	"IEMobile",
	"Opera Mini",
	"Windows Phone",
	"Mobile",
	"Tablet",
	"Kindle",
	"Silk",
	"CriOS",
	"FxiOS",
}

type patternFile struct {
	Patterns []string `yaml:"patterns"`
}

// LoadPatterns reads an ordered pattern list from a YAML file of the form:
//
//	patterns:
//	  - iPhone
//	  - Android
func LoadPatterns(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(ErrParsingPatterns, err)
	}
	defer f.Close()

	return ParsePatterns(f)
}

// ParsePatterns decodes a YAML pattern list. Blank entries are dropped.
func ParsePatterns(r io.Reader) ([]string, error) {
	var pf patternFile
	if err := yaml.NewDecoder(r).Decode(&pf); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoPatterns
		}
		return nil, errors.Join(ErrParsingPatterns, err)
	}

	patterns := make([]string, 0, len(pf.Patterns))
	for _, p := range compile(pf.Patterns) {
		patterns = append(patterns, p.raw)
	}
	if len(patterns) == 0 {
		return nil, ErrNoPatterns
	}
	return patterns, nil
}
