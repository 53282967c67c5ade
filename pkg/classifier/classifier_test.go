package classifier_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mobilegate/pkg/classifier"
)

const (
	desktopChromeUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	desktopSafariUA = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.1 Safari/605.1.15"
	iPhoneUA        = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1"
	androidPhoneUA  = "Mozilla/5.0 (Linux; Android 14; Pixel 8) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Mobile Safari/537.36"
	androidTabletUA = "Mozilla/5.0 (Linux; Android 13; SM-X700) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	iPadUA          = "Mozilla/5.0 (iPad; CPU OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1"
	operaMiniUA     = "Opera/9.80 (J2ME/MIDP; Opera Mini/9.80 (S60; SymbOS; Opera Mobi/23.348; U; en) Presto/2.5.25 Version/10.54"
	kindleUA        = "Mozilla/5.0 (Linux; U; en-US) AppleWebKit/528.5+ (KHTML, like Gecko, Safari/528.5+) Version/4.0 Kindle/3.0 (screen 600x800; rotate)"
)

func intPtr(v int) *int           { return &v }
func boolPtr(v bool) *bool        { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestClassify_UserAgent(t *testing.T) {
	t.Parallel()

	c := classifier.New()

	tests := []struct {
		name     string
		ua       string
		expected classifier.Classification
	}{
		{name: "iPhone", ua: iPhoneUA, expected: classifier.Mobile},
		{name: "Android phone", ua: androidPhoneUA, expected: classifier.Mobile},
		{name: "Android tablet", ua: androidTabletUA, expected: classifier.Mobile},
		{name: "iPad", ua: iPadUA, expected: classifier.Mobile},
		{name: "Opera Mini", ua: operaMiniUA, expected: classifier.Mobile},
		{name: "Kindle", ua: kindleUA, expected: classifier.Mobile},
		{name: "lower case token", ua: "some client on iphone", expected: classifier.Mobile},
		{name: "upper case token", ua: "SOME CLIENT ON ANDROID", expected: classifier.Mobile},
		{name: "desktop Chrome", ua: desktopChromeUA, expected: classifier.Desktop},
		{name: "desktop Safari", ua: desktopSafariUA, expected: classifier.Desktop},
		{name: "curl", ua: "curl/8.4.0", expected: classifier.Desktop},
		{name: "empty", ua: "", expected: classifier.Desktop},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, c.Classify(classifier.Signals{UserAgent: tt.ua}))
		})
	}
}

func TestClassify_UserAgentWinsOverOtherSignals(t *testing.T) {
	t.Parallel()

	c := classifier.New()
	res := c.Explain(classifier.Signals{
		UserAgent:       iPhoneUA,
		ScreenWidth:     intPtr(3840),
		ScreenHeight:    intPtr(2160),
		TouchSupported:  boolPtr(false),
		DeviceMemoryGiB: floatPtr(64),
	})

	assert.Equal(t, classifier.Mobile, res.Classification)
	assert.Equal(t, classifier.ReasonUserAgent, res.Reason)
	assert.Equal(t, "iPhone", res.Match)
}

func TestClassify_ScreenSize(t *testing.T) {
	t.Parallel()

	c := classifier.New()

	tests := []struct {
		name     string
		width    *int
		height   *int
		expected classifier.Classification
	}{
		{name: "width at threshold", width: intPtr(1024), height: intPtr(2000), expected: classifier.Mobile},
		{name: "width above threshold", width: intPtr(1025), height: intPtr(2000), expected: classifier.Desktop},
		{name: "height at threshold", width: intPtr(1920), height: intPtr(1024), expected: classifier.Mobile},
		{name: "both large", width: intPtr(1920), height: intPtr(1080), expected: classifier.Desktop},
		{name: "small phone", width: intPtr(390), height: intPtr(844), expected: classifier.Mobile},
		{name: "width only", width: intPtr(320), height: nil, expected: classifier.Desktop},
		{name: "height only", width: nil, height: intPtr(320), expected: classifier.Desktop},
		{name: "neither", width: nil, height: nil, expected: classifier.Desktop},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := c.Explain(classifier.Signals{
				UserAgent:    desktopChromeUA,
				ScreenWidth:  tt.width,
				ScreenHeight: tt.height,
			})
			assert.Equal(t, tt.expected, res.Classification)
			if tt.expected == classifier.Mobile {
				assert.Equal(t, classifier.ReasonScreenSize, res.Reason)
			}
		})
	}
}

func TestClassify_TouchAndMemory(t *testing.T) {
	t.Parallel()

	c := classifier.New()

	tests := []struct {
		name     string
		touch    *bool
		memory   *float64
		expected classifier.Classification
	}{
		{name: "touch with 4 GiB", touch: boolPtr(true), memory: floatPtr(4), expected: classifier.Mobile},
		{name: "touch with 0.5 GiB", touch: boolPtr(true), memory: floatPtr(0.5), expected: classifier.Mobile},
		{name: "touch with 5 GiB", touch: boolPtr(true), memory: floatPtr(5), expected: classifier.Desktop},
		{name: "no touch with 2 GiB", touch: boolPtr(false), memory: floatPtr(2), expected: classifier.Desktop},
		{name: "touch without memory", touch: boolPtr(true), memory: nil, expected: classifier.Desktop},
		{name: "memory without touch", touch: nil, memory: floatPtr(1), expected: classifier.Desktop},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := c.Explain(classifier.Signals{
				UserAgent:       desktopChromeUA,
				TouchSupported:  tt.touch,
				DeviceMemoryGiB: tt.memory,
			})
			assert.Equal(t, tt.expected, res.Classification)
			if tt.expected == classifier.Mobile {
				assert.Equal(t, classifier.ReasonTouchMemory, res.Reason)
			} else {
				assert.Equal(t, classifier.ReasonDefault, res.Reason)
			}
		})
	}
}

func TestClassify_ScreenSizeBeforeTouchMemory(t *testing.T) {
	t.Parallel()

	res := classifier.New().Explain(classifier.Signals{
		ScreenWidth:     intPtr(800),
		ScreenHeight:    intPtr(600),
		TouchSupported:  boolPtr(true),
		DeviceMemoryGiB: floatPtr(2),
	})
	assert.Equal(t, classifier.ReasonScreenSize, res.Reason)
}

func TestClassify_CustomPatterns(t *testing.T) {
	t.Parallel()

	c := classifier.New("  ", "SmartFridge", "")
	assert.Equal(t, []string{"SmartFridge"}, c.Patterns())

	assert.Equal(t, classifier.Mobile, c.Classify(classifier.Signals{UserAgent: "smartfridge/1.0"}))
	// Default tokens are not part of a custom list.
	assert.Equal(t, classifier.Desktop, c.Classify(classifier.Signals{UserAgent: iPhoneUA}))
}

func TestClassify_EmptyPatternsFallBackToDefaults(t *testing.T) {
	t.Parallel()

	c := classifier.New("", " ")
	assert.Equal(t, classifier.DefaultPatterns, c.Patterns())
}

func TestClassify_PatternOrder(t *testing.T) {
	t.Parallel()

	c := classifier.New("Mobile", "iPhone")
	res := c.Explain(classifier.Signals{UserAgent: iPhoneUA})
	assert.Equal(t, "Mobile", res.Match)
}

func TestClassify_PatternsCopy(t *testing.T) {
	t.Parallel()

	c := classifier.New("a", "b")
	p := c.Patterns()
	p[0] = "changed"
	assert.Equal(t, []string{"a", "b"}, c.Patterns())
}

func TestClassify_Deterministic(t *testing.T) {
	t.Parallel()

	c := classifier.New()
	s := classifier.Signals{UserAgent: desktopChromeUA, ScreenWidth: intPtr(1000), ScreenHeight: intPtr(1000)}
	first := c.Explain(s)

	var wg sync.WaitGroup
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, first, c.Explain(s))
		}()
	}
	wg.Wait()
}

func TestClassification_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "mobile", classifier.Mobile.String())
	assert.Equal(t, "desktop", classifier.Desktop.String())

	text, err := classifier.Mobile.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "mobile", string(text))

	assert.Equal(t, "user_agent", classifier.ReasonUserAgent.String())
	assert.Equal(t, "screen_size", classifier.ReasonScreenSize.String())
	assert.Equal(t, "touch_memory", classifier.ReasonTouchMemory.String())
	assert.Equal(t, "default", classifier.ReasonDefault.String())
}
