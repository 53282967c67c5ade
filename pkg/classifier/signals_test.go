package classifier_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mobilegate/pkg/classifier"
)

func TestSignalsFromRequest(t *testing.T) {
	t.Parallel()

	t.Run("all headers present", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("User-Agent", iPhoneUA)
		req.Header.Set(classifier.HeaderScreenWidth, "390")
		req.Header.Set(classifier.HeaderScreenHeight, " 844 ")
		req.Header.Set(classifier.HeaderTouchSupport, "TRUE")
		req.Header.Set(classifier.HeaderDeviceMemory, "3.5")

		s := classifier.SignalsFromRequest(req)

		assert.Equal(t, iPhoneUA, s.UserAgent)
		require.NotNil(t, s.ScreenWidth)
		assert.Equal(t, 390, *s.ScreenWidth)
		require.NotNil(t, s.ScreenHeight)
		assert.Equal(t, 844, *s.ScreenHeight)
		require.NotNil(t, s.TouchSupported)
		assert.True(t, *s.TouchSupported)
		require.NotNil(t, s.DeviceMemoryGiB)
		assert.InDelta(t, 3.5, *s.DeviceMemoryGiB, 0.0001)
	})

	t.Run("no hint headers", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		s := classifier.SignalsFromRequest(req)

		assert.Nil(t, s.ScreenWidth)
		assert.Nil(t, s.ScreenHeight)
		assert.Nil(t, s.TouchSupported)
		assert.Nil(t, s.DeviceMemoryGiB)
	})

	t.Run("touch support other than true", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(classifier.HeaderTouchSupport, "yes")

		s := classifier.SignalsFromRequest(req)

		require.NotNil(t, s.TouchSupported)
		assert.False(t, *s.TouchSupported)
	})
}

func TestSignalsFromRequest_MalformedValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		width  string
		height string
		memory string
	}{
		{name: "non numeric", width: "wide", height: "tall", memory: "lots"},
		{name: "floats for integers", width: "390.5", height: "844.2", memory: "4GB"},
		{name: "overflow", width: "99999999999999999999999", height: "1", memory: "NaN"},
		{name: "infinity", width: "", height: "", memory: "+Inf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h := http.Header{}
			h.Set("User-Agent", desktopChromeUA)
			h.Set(classifier.HeaderScreenWidth, tt.width)
			h.Set(classifier.HeaderScreenHeight, tt.height)
			h.Set(classifier.HeaderTouchSupport, "true")
			h.Set(classifier.HeaderDeviceMemory, tt.memory)

			s := classifier.SignalsFromHeader(h)

			assert.Nil(t, s.DeviceMemoryGiB)
			assert.NotPanics(t, func() {
				assert.Equal(t, classifier.Desktop, classifier.New().Classify(s))
			})
		})
	}
}

func TestSignalsFromRequest_Classification(t *testing.T) {
	t.Parallel()

	c := classifier.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("User-Agent", desktopChromeUA)
	req.Header.Set(classifier.HeaderTouchSupport, "true")
	req.Header.Set(classifier.HeaderDeviceMemory, "4")
	assert.Equal(t, classifier.Mobile, c.Classify(classifier.SignalsFromRequest(req)))

	req.Header.Set(classifier.HeaderDeviceMemory, "5")
	assert.Equal(t, classifier.Desktop, c.Classify(classifier.SignalsFromRequest(req)))
}
