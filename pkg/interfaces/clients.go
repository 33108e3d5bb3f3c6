package interfaces

import "context"

// GeneratedImage carries the bytes produced by an image collaborator along
// with the filename the project archive should store them under.
type GeneratedImage struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ImageGenerator produces hero imagery for a page. Implementations own their
// retry policy; a nil image with a nil error means the collaborator declined
// to produce one and the caller should degrade gracefully.
type ImageGenerator interface {
	GenerateHero(ctx context.Context, req HeroImageRequest) (*GeneratedImage, error)
}

// HeroImageRequest describes the image a page needs.
type HeroImageRequest struct {
	Brand       string
	Page        string
	Style       string
	ColorScheme string
}

// PageCopy is the text collaborator's answer for one page: hero copy plus a
// list of titled sections ready for the assembler.
type PageCopy struct {
	HeroTitle    string
	HeroSubtitle string
	CTAText      string
	Sections     []CopySection
}

// CopySection is a single titled span of generated copy.
type CopySection struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Kind    string `json:"type"`
	HasCTA  bool   `json:"hasCTA"`
}

// TextGenerator produces page copy when no parsed template content is
// available. Implementations own their retry policy and must return an error
// only after retries are exhausted.
type TextGenerator interface {
	GeneratePageCopy(ctx context.Context, brand, domain, page, offerURL string) (*PageCopy, error)
}

// BuildArtifact is the output of a build collaborator run.
type BuildArtifact struct {
	ProjectName string
	Data        []byte
}

// BuildRunner turns a source project archive into a built static bundle.
// Implementations must honour the context deadline and fail instead of
// hanging past it.
type BuildRunner interface {
	Build(ctx context.Context, sourceZip []byte) (*BuildArtifact, error)
}
