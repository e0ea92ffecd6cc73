package analytics

import "testing"

func TestParseUserAgent(t *testing.T) {
	tests := []struct {
		name    string
		ua      string
		browser string
		os      string
		device  string
	}{
		{
			"desktop firefox",
			"Mozilla/5.0 (X11; Linux x86_64; rv:120.0) Gecko/20100101 Firefox/120.0",
			"Firefox", "Linux", "Desktop",
		},
		{
			"android chrome",
			"Mozilla/5.0 (Linux; Android 14) AppleWebKit/537.36 Chrome/120.0 Mobile Safari/537.36",
			"Chrome", "Android", "Mobile",
		},
		{
			"ipad safari",
			"Mozilla/5.0 (iPad; CPU OS 17_0 like Mac OS X) AppleWebKit/605.1.15 Version/17.0 Mobile/15E148 Safari/604.1",
			"Safari", "iOS", "Tablet",
		},
		{
			"unknown",
			"curl/8.0.1",
			"Other", "Other", "Desktop",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			browser, os, device := ParseUserAgent(tt.ua)
			if browser != tt.browser || os != tt.os || device != tt.device {
				t.Errorf("got (%s, %s, %s), want (%s, %s, %s)",
					browser, os, device, tt.browser, tt.os, tt.device)
			}
		})
	}
}

func TestIsBot(t *testing.T) {
	if !IsBot("Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)") {
		t.Error("Googlebot should be detected")
	}
	if IsBot("Mozilla/5.0 (X11; Linux x86_64) Firefox/120.0") {
		t.Error("Firefox is not a bot")
	}
}

func TestCleanReferrer(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "Direct"},
		{"https://www.google.com/search?q=snark", "Google"},
		{"https://t.co/abc", "Twitter"},
		{"https://www.example.org/page", "example.org"},
		{"not-a-url", "Other"},
	}
	for _, tt := range tests {
		if got := CleanReferrer(tt.in); got != tt.want {
			t.Errorf("CleanReferrer(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
