package models

// Section is one outline item. It is produced by the outline stage, consumed
// once each by the writing and image stages, and then folded into the
// assembled output.
type Section struct {
	Title       string `json:"title"`
	Brief       string `json:"brief"`
	ImagePrompt string `json:"image_prompt"`
}

// Image is a rendered image asset. A zero Image means "absent": image
// generation is best-effort and sections lay out without one.
type Image struct {
	MIME string
	Data []byte
}

// Present reports whether the image actually holds an asset.
func (i Image) Present() bool {
	return len(i.Data) > 0
}
