package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate values",
			args:    []string{"-a", ":9090", "-x", "1", "-s", "secret"},
			allowed: []string{"-a", "-s"},
			want:    []string{"-a", ":9090", "-s", "secret"},
		},
		{
			name:    "equals form",
			args:    []string{"-a=:9090", "-x=1"},
			allowed: []string{"-a"},
			want:    []string{"-a=:9090"},
		},
		{
			name:    "value that looks like a flag is not consumed",
			args:    []string{"-v", "-a", ":1"},
			allowed: []string{"-v", "-a"},
			want:    []string{"-v", "-a", ":1"},
		},
		{
			name:    "nothing allowed",
			args:    []string{"-a", "1"},
			allowed: nil,
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestConfigFile(t *testing.T) {
	assert.Equal(t, "conf.json", ConfigFile([]string{"-a", ":1", "-c", "conf.json"}))
	assert.Equal(t, "other.json", ConfigFile([]string{"-config=other.json"}))
	assert.Equal(t, "", ConfigFile([]string{"-a", ":1"}))
}
