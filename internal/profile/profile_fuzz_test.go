package profile

import (
	"strings"
	"testing"
)

func FuzzLoadBytes(f *testing.F) {
	f.Add([]byte(testYAMLContent), "yaml")
	f.Add([]byte(testJSONContent), "json")
	f.Add([]byte("count: -1\n"), "yaml")

	f.Fuzz(func(t *testing.T, data []byte, format string) {
		switch strings.ToLower(format) {
		case "yaml", "yml":
			format = string(FormatYAML)
		case "json":
			format = string(FormatJSON)
		default:
			return
		}

		p, err := LoadBytes(data, Format(format))
		if err != nil {
			return
		}
		if err := p.Validate(); err != nil {
			t.Fatalf("LoadBytes returned invalid profile: %v", err)
		}
	})
}
