package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseImageQuality(t *testing.T) {
	tests := []struct {
		input string
		want  ImageQuality
	}{
		{"low", QualityLow},
		{"LOW", QualityLow},
		{" high ", QualityHigh},
		{"normal", QualityNormal},
		{"", QualityNormal},
		{"ultra", QualityNormal},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseImageQuality(tt.input), "input %q", tt.input)
	}
}

func TestDedupeIntents(t *testing.T) {
	t.Run("case-insensitive, first occurrence wins", func(t *testing.T) {
		out := dedupeIntents([]IntentItem{
			{Intent: "Postgres Indexing", Title: "first"},
			{Intent: "postgres indexing", Title: "second"},
			{Intent: "  Postgres Indexing  ", Title: "third"},
			{Intent: "query planning", Title: "fourth"},
		})
		assert.Len(t, out, 2)
		assert.Equal(t, "first", out[0].Title)
		assert.Equal(t, "fourth", out[1].Title)
	})

	t.Run("caps at five", func(t *testing.T) {
		items := make([]IntentItem, 0, 8)
		for _, s := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
			items = append(items, IntentItem{Intent: s})
		}
		assert.Len(t, dedupeIntents(items), 5)
	})

	t.Run("drops empty intents", func(t *testing.T) {
		out := dedupeIntents([]IntentItem{
			{Intent: "   "},
			{Intent: "real"},
		})
		assert.Len(t, out, 1)
		assert.Equal(t, "real", out[0].Intent)
	})
}
