package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)
	assert.Greater(t, c.Len(), 0)

	// The embedded catalog must itself be structurally valid and have at
	// least one root unit available from a fresh record.
	assert.NotEmpty(t, c.Unlocked(nil))
}

func TestLoad_ValidDocument(t *testing.T) {
	doc := `{
		"units": [
			{"id": "u1", "name": "One", "difficulty": 1200},
			{"id": "u2", "name": "Two", "difficulty": 1400, "prerequisites": ["u1"]}
		]
	}`
	c, err := Load(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())

	u, err := c.Get("u2")
	require.NoError(t, err)
	assert.Equal(t, []string{"u1"}, u.Prerequisites)
}

func TestLoad_SchemaRejections(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not json", `{"units": [`},
		{"missing units", `{}`},
		{"empty units", `{"units": []}`},
		{"missing difficulty", `{"units": [{"id": "u1", "name": "One"}]}`},
		{"difficulty off scale", `{"units": [{"id": "u1", "name": "One", "difficulty": 5000}]}`},
		{"unknown field", `{"units": [{"id": "u1", "name": "One", "difficulty": 1200, "color": "red"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.doc))
			assert.Error(t, err)
		})
	}
}
