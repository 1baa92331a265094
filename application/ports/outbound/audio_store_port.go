package outbound

import "context"

type SaveAudioRequest struct {
	FileName    string
	Content     []byte
	ContentType string
	// BaseURL is the scheme://host the caller's webhook arrived on.
	BaseURL string
}

type AudioStorePort interface {
	Save(ctx context.Context, req SaveAudioRequest) (string, error)
}
