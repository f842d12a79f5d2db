package slug

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		expected string
	}{
		{"simple title", "Hello World", "hello-world"},
		{"mixed case", "My First Blog Post", "my-first-blog-post"},
		{"whitespace runs collapse", "  Multiple   Spaces  ", "multiple-spaces"},
		{"underscores become hyphens", "snake_case_title", "snake-case-title"},
		{"hyphen runs collapse", "a--b---c", "a-b-c"},
		{"punctuation is stripped", "Rock & Roll!", "rock-roll"},
		{"inline punctuation is stripped", "Rock&Roll", "rockroll"},
		{"digits are kept", "Top 10 Tips", "top-10-tips"},
		{"no leading or trailing hyphen", "-- trimmed --", "trimmed"},
		{"accented letters are stripped", "Café Reviews", "caf-reviews"},
		{"diacritics inside words are stripped", "Naïve Façade", "nave-faade"},
		{"non-latin script yields empty", "日本語", ""},
		{"empty input", "", ""},
		{"only punctuation", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Make(tt.title))
		})
	}
}

func TestMake_Charset(t *testing.T) {
	titles := []string{
		"Hello World", "Café Reviews", "Naïve Façade", "Rock & Roll!",
		"日本語のブログ", "Top 10 Tips", "Ünïcödé Sälâd",
	}
	for _, title := range titles {
		out := Make(title)
		for _, r := range out {
			inCharset := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-'
			assert.True(t, inCharset, "Make(%q) = %q contains %q", title, out, r)
		}
	}
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("hello-world"))
	assert.True(t, IsValid("top-10-tips"))
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("Hello World"))
	assert.False(t, IsValid("café-reviews"))
	assert.False(t, IsValid("-leading-hyphen"))
}

func TestMake_Idempotent(t *testing.T) {
	titles := []string{"Hello World", "Top 10 Tips", "snake_case_title", "already-a-slug"}
	for _, title := range titles {
		once := Make(title)
		assert.Equal(t, once, Make(once))
	}
}

func TestWithSuffix(t *testing.T) {
	out := WithSuffix("hello-world")

	assert.True(t, strings.HasPrefix(out, "hello-world-"))
	suffix := strings.TrimPrefix(out, "hello-world-")
	_, err := strconv.ParseInt(suffix, 10, 64)
	assert.NoError(t, err)

	// a suffixed slug is still a valid slug
	assert.Equal(t, out, Make(out))
}
