package classifier

import (
	"math"
	"net/http"
	"strconv"
	"strings"
)

// Hint headers read by SignalsFromRequest. They are not sent by browsers on
// their own and need client-side instrumentation to be populated.
const (
	HeaderScreenWidth   = "Screen-Width"
	HeaderScreenHeight  = "Screen-Height"
	HeaderTouchSupport  = "Touch-Support"
	HeaderDeviceMemory  = "Device-Memory"
	headerUserAgent     = "User-Agent"
	touchSupportedValue = "true"
)

// Signals holds the request attributes used for classification.
// A nil pointer means the corresponding header was absent or malformed.
type Signals struct {
	UserAgent       string
	ScreenWidth     *int
	ScreenHeight    *int
	TouchSupported  *bool
	DeviceMemoryGiB *float64
}

// SignalsFromRequest builds Signals from the request headers.
func SignalsFromRequest(r *http.Request) Signals {
	return SignalsFromHeader(r.Header)
}

// SignalsFromHeader builds Signals from a header set.
func SignalsFromHeader(h http.Header) Signals {
	return Signals{
		UserAgent:       h.Get(headerUserAgent),
		ScreenWidth:     parseInt(h.Get(HeaderScreenWidth)),
		ScreenHeight:    parseInt(h.Get(HeaderScreenHeight)),
		TouchSupported:  parseTouch(h.Get(HeaderTouchSupport)),
		DeviceMemoryGiB: parseMemory(h.Get(HeaderDeviceMemory)),
	}
}

func parseInt(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}

func parseTouch(s string) *bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v := strings.EqualFold(s, touchSupportedValue)
	return &v
}

func parseMemory(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
