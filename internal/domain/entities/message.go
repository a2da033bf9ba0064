package entities

import "strings"

// Attachment is a file attached to an inbound message, still hosted on the
// platform CDN.
type Attachment struct {
	URL         string
	Filename    string
	ContentType string
}

// IsImage reports whether the attachment declares an image content type.
func (a Attachment) IsImage() bool {
	return strings.HasPrefix(a.ContentType, "image/")
}

// Message is a platform-agnostic view of an inbound chat message.
type Message struct {
	ChannelID   string
	AuthorBot   bool
	AuthorName  string
	Content     string
	Attachments []Attachment
}
