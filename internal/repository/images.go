package repository

import "encoding/json"

// parseImages coerces the stored images column into a string slice. The
// column holds JSON text; anything that does not decode to an array of
// strings degrades to an empty slice, never an error.
func parseImages(raw string) []string {
	if raw == "" {
		return []string{}
	}

	var images []string
	if err := json.Unmarshal([]byte(raw), &images); err != nil {
		return []string{}
	}
	if images == nil {
		return []string{}
	}

	return images
}

// encodeImages is the inverse used on insert; a nil slice is stored as [].
func encodeImages(images []string) string {
	if images == nil {
		images = []string{}
	}

	raw, err := json.Marshal(images)
	if err != nil {
		return "[]"
	}

	return string(raw)
}
