package waitlist

import "strings"

// Device types derived from the user-agent string.
const (
	DeviceMobile  = "mobile"
	DeviceTablet  = "tablet"
	DeviceDesktop = "desktop"
)

type uaRule struct {
	markers []string
	value   string
}

// Classification is a first-match-wins scan over a short ordered list of
// substring markers, falling back to "Other" (or "desktop" for devices).
// Intentionally coarse: this feeds marketing analytics, not feature
// detection.
var (
	deviceRules = []uaRule{
		{markers: []string{"mobile", "android", "iphone"}, value: DeviceMobile},
		{markers: []string{"tablet", "ipad"}, value: DeviceTablet},
	}

	browserRules = []uaRule{
		{markers: []string{"chrome"}, value: "Chrome"},
		{markers: []string{"firefox"}, value: "Firefox"},
		{markers: []string{"safari"}, value: "Safari"},
		{markers: []string{"edge"}, value: "Edge"},
	}

	osRules = []uaRule{
		{markers: []string{"windows"}, value: "Windows"},
		{markers: []string{"mac"}, value: "macOS"},
		{markers: []string{"linux"}, value: "Linux"},
		{markers: []string{"android"}, value: "Android"},
		{markers: []string{"ios", "iphone"}, value: "iOS"},
	}
)

func matchRules(userAgent string, rules []uaRule, fallback string) string {
	ua := strings.ToLower(userAgent)
	for _, rule := range rules {
		for _, marker := range rule.markers {
			if strings.Contains(ua, marker) {
				return rule.value
			}
		}
	}
	return fallback
}

// ClassifyUserAgent derives (device, browser, os) from a raw user-agent
// string.
func ClassifyUserAgent(userAgent string) (device, browser, os string) {
	device = matchRules(userAgent, deviceRules, DeviceDesktop)
	browser = matchRules(userAgent, browserRules, "Other")
	os = matchRules(userAgent, osRules, "Other")
	return device, browser, os
}
