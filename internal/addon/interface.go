package addon

import "context"

// UseCase serves the addon resources with age gating applied.
//
//go:generate mockery --name UseCase
type UseCase interface {
	Manifest() Manifest
	// Meta returns a *BlockedError when the title is rated above the allowed age.
	Meta(ctx context.Context, input MetaInput) (MetaOutput, error)
	// Stream returns ErrNotFound for addon ids and unresolvable episodes, and a
	// *BlockedError when the title is rated above the allowed age.
	Stream(ctx context.Context, input StreamInput) (StreamOutput, error)
	// Catalog lists popular or searched titles, leaving out blocked ones.
	Catalog(ctx context.Context, input CatalogInput) (CatalogOutput, error)
	SelfTest(ctx context.Context) SelfTestReport
	TestTitle(ctx context.Context, contentID string) (TitleReport, error)
	AllowedAge() int
}
