package flagx

import (
	"os"
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
			name:    "separate value kept",
			args:    []string{"-d", "data", "-x", "1"},
			allowed: []string{"-d"},
			want:    []string{"-d", "data"},
		},
		{
			name:    "equals form kept",
			args:    []string{"--data-dir=data", "-x=1"},
			allowed: []string{"--data-dir"},
			want:    []string{"--data-dir=data"},
		},
		{
			name:    "flag without value",
			args:    []string{"-v", "-d", "data"},
			allowed: []string{"-v"},
			want:    []string{"-v"},
		},
		{
			name:    "nothing allowed",
			args:    []string{"-a", "b"},
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

func TestJsonConfigFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("long flag", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", "conf.json", "-d", "data"}
		assert.Equal(t, "conf.json", JsonConfigFlags())
	})

	t.Run("short flag", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", "short.json"}
		assert.Equal(t, "short.json", JsonConfigFlags())
	})

	t.Run("absent", func(t *testing.T) {
		os.Args = []string{"testbin", "-d", "data"}
		assert.Equal(t, "", JsonConfigFlags())
	})
}
