package device

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		userAgent string
		expected  Class
	}{
		{
			name:      "iPhone is mobile",
			userAgent: "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15",
			expected:  Mobile,
		},
		{
			name:      "iPad is tablet",
			userAgent: "Mozilla/5.0 (iPad; CPU OS 16_6 like Mac OS X) AppleWebKit/605.1.15",
			expected:  Tablet,
		},
		{
			name:      "android phone is mobile",
			userAgent: "Mozilla/5.0 (Linux; Android 14; Pixel 8) AppleWebKit/537.36 Mobile Safari/537.36",
			expected:  Mobile,
		},
		{
			name:      "android tablet matches tablet before mobile",
			userAgent: "Mozilla/5.0 (Linux; Android 13; SM-X700 Tablet) Mobile Safari/537.36",
			expected:  Tablet,
		},
		{
			name:      "kindle silk is tablet",
			userAgent: "Mozilla/5.0 (Linux; U; Android 4.4.3; KFTHWI) Silk/47.1.79 Mobile Safari/535.19",
			expected:  Tablet,
		},
		{
			name:      "desktop chrome",
			userAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 Chrome/120.0 Safari/537.36",
			expected:  Desktop,
		},
		{
			name:      "curl defaults to desktop",
			userAgent: "curl/8.4.0",
			expected:  Desktop,
		},
		{
			name:      "empty string defaults to desktop",
			userAgent: "",
			expected:  Desktop,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.userAgent)
			if got != tt.expected {
				t.Errorf("Classify(%q) = %q, want %q", tt.userAgent, got, tt.expected)
			}
		})
	}
}

func TestClassify_Deterministic(t *testing.T) {
	ua := "Mozilla/5.0 (iPad; CPU OS 16_6 like Mac OS X) Mobile Safari"

	first := Classify(ua)
	for i := 0; i < 100; i++ {
		if got := Classify(ua); got != first {
			t.Fatalf("Classify is not deterministic: got %q then %q", first, got)
		}
	}
}
