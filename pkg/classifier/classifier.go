package classifier

import (
	"strings"

	"golang.org/x/text/cases"
)

// Thresholds used by the hint-header rules.
const (
	// ScreenThreshold is the largest screen dimension still treated as mobile.
	ScreenThreshold = 1024

	// MemoryThresholdGiB is the largest device memory still treated as mobile
	// when touch is supported.
	MemoryThresholdGiB = 4
)

// Classification is the verdict for a single request.
type Classification int

const (
	// Desktop is the default classification.
	Desktop Classification = iota
	// Mobile marks requests that should be gated.
	Mobile
)

func (c Classification) String() string {
	if c == Mobile {
		return "mobile"
	}
	return "desktop"
}

// MarshalText implements encoding.TextMarshaler.
func (c Classification) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Reason identifies the rule that produced a Classification.
type Reason int

const (
	ReasonDefault Reason = iota
	ReasonUserAgent
	ReasonScreenSize
	ReasonTouchMemory
)

func (r Reason) String() string {
	switch r {
	case ReasonUserAgent:
		return "user_agent"
	case ReasonScreenSize:
		return "screen_size"
	case ReasonTouchMemory:
		return "touch_memory"
	default:
		return "default"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (r Reason) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Result is a Classification together with the rule that produced it.
type Result struct {
	Classification Classification `json:"classification"`
	Reason         Reason         `json:"reason"`
	// Match is the user agent pattern that matched, if any.
	Match string `json:"match,omitempty"`
}

// IsMobile reports whether the result is Mobile.
func (r Result) IsMobile() bool { return r.Classification == Mobile }

type pattern struct {
	raw    string
	folded string
}

// Classifier evaluates Signals against an ordered list of user agent patterns
// and the hint-header rules. It is immutable and safe for concurrent use.
type Classifier struct {
	patterns []pattern
}

// New creates a Classifier using the given patterns in order.
// Empty patterns are ignored; if none remain, DefaultPatterns is used.
func New(patterns ...string) *Classifier {
	c := &Classifier{patterns: compile(patterns)}
	if len(c.patterns) == 0 {
		c.patterns = compile(DefaultPatterns)
	}
	return c
}

func compile(patterns []string) []pattern {
	// A Caser keeps internal state, so each call gets its own.
	fold := cases.Fold()
	result := make([]pattern, 0, len(patterns))
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		result = append(result, pattern{raw: p, folded: fold.String(p)})
	}
	return result
}

// Patterns returns a copy of the configured patterns in evaluation order.
func (c *Classifier) Patterns() []string {
	out := make([]string, len(c.patterns))
	for i, p := range c.patterns {
		out[i] = p.raw
	}
	return out
}

// Classify returns the Classification for s.
func (c *Classifier) Classify(s Signals) Classification {
	return c.Explain(s).Classification
}

// Explain classifies s and reports which rule decided.
func (c *Classifier) Explain(s Signals) Result {
	if match, ok := c.matchUserAgent(s.UserAgent); ok {
		return Result{Classification: Mobile, Reason: ReasonUserAgent, Match: match}
	}

	if s.ScreenWidth != nil && s.ScreenHeight != nil &&
		(*s.ScreenWidth <= ScreenThreshold || *s.ScreenHeight <= ScreenThreshold) {
		return Result{Classification: Mobile, Reason: ReasonScreenSize}
	}

	if s.TouchSupported != nil && *s.TouchSupported &&
		s.DeviceMemoryGiB != nil && *s.DeviceMemoryGiB <= MemoryThresholdGiB {
		return Result{Classification: Mobile, Reason: ReasonTouchMemory}
	}

	return Result{Classification: Desktop, Reason: ReasonDefault}
}

func (c *Classifier) matchUserAgent(ua string) (string, bool) {
	if ua == "" {
		return "", false
	}
	folded := cases.Fold().String(ua)
	for _, p := range c.patterns {
		if strings.Contains(folded, p.folded) {
			return p.raw, true
		}
	}
	return "", false
}
