package output

import "context"

// AttachmentFetcher downloads an attachment from the platform CDN so it can
// be re-uploaded to destination channels.
type AttachmentFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}
