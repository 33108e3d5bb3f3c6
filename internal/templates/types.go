package templates

// BlockKind distinguishes bullet-list blocks from prose blocks. The renderer
// picks list or paragraph markup based on this value.
type BlockKind string

const (
	KindList      BlockKind = "list"
	KindParagraph BlockKind = "paragraph"
)

// ContentBlock is a titled or untitled span of parsed source text destined
// for one page. Blocks are created by the parser and consumed once by the
// section assembler; they are never mutated after creation.
type ContentBlock struct {
	Title   string
	Content string
	Kind    BlockKind
}

// PageContent aggregates every block the template declared for one resolved
// page. When several raw headings resolve to the same declared page their
// blocks are concatenated in heading order and RawText is joined with a
// blank line.
type PageContent struct {
	Subtitle string
	Blocks   []ContentBlock
	RawText  string
}

// Section is a finalized, uniquely titled, length-bounded unit of page
// content ready for rendering. Within one page's section list no two
// sections share a title, and exactly the first and last carry HasCTA.
type Section struct {
	Title   string
	Content string
	HasCTA  bool
	Kind    BlockKind
}
