package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseImages_ValidArray(t *testing.T) {
	images := parseImages(`["https://img.example.com/a.jpg","https://img.example.com/b.jpg"]`)

	assert.Equal(t, []string{"https://img.example.com/a.jpg", "https://img.example.com/b.jpg"}, images)
}

func TestParseImages_EmptyColumn(t *testing.T) {
	assert.Equal(t, []string{}, parseImages(""))
}

func TestParseImages_NotJSON(t *testing.T) {
	assert.Equal(t, []string{}, parseImages("not json"))
}

func TestParseImages_WrongShape(t *testing.T) {
	assert.Equal(t, []string{}, parseImages(`{"url":"a.jpg"}`))
}

func TestParseImages_JSONNull(t *testing.T) {
	assert.Equal(t, []string{}, parseImages("null"))
}

func TestEncodeImages_NilSlice(t *testing.T) {
	assert.Equal(t, "[]", encodeImages(nil))
}

func TestEncodeImages_RoundTrip(t *testing.T) {
	raw := encodeImages([]string{"a.jpg"})

	assert.Equal(t, []string{"a.jpg"}, parseImages(raw))
}
