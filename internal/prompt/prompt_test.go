package prompt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stackforge/forgectl/internal/prompt"
)

func TestValidateProjectName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "myapp", false},
		{"hyphenated", "my-app", false},
		{"underscored", "my_app", false},
		{"digits", "app2", false},
		{"empty", "", true},
		{"space", "my app", true},
		{"slash", "foo/bar", true},
		{"backslash", "foo\\bar", true},
		{"leading dot", ".hidden", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := prompt.ValidateProjectName(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
