package chat

import "context"

// Request is one turn sent to the image generator: a text prompt plus
// an optional input image.
type Request struct {
	Prompt string
	Image  *Image
}

type Image struct {
	Data     []byte
	MimeType string
}

// Provider is the generative image collaborator. It either returns an
// image or an error; the caller decides how failures surface.
type Provider interface {
	Generate(ctx context.Context, req Request) (Image, error)
}
