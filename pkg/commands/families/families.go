package families

import (
	"github.com/arthur-debert/meshdeps/pkg/catalog"
	"github.com/arthur-debert/meshdeps/pkg/logging"
	"github.com/arthur-debert/meshdeps/pkg/types"
)

// ListCatalogsOptions holds options for the catalog command
type ListCatalogsOptions struct {
	// Family restricts the listing to one family. Empty lists all of them.
	Family string
}

// ListCatalogs reports the mesh catalogs of the known families
func ListCatalogs(opts ListCatalogsOptions) (*types.CatalogResult, error) {
	logger := logging.GetLogger("commands.families")

	selected := catalog.Families()
	if opts.Family != "" {
		f, err := catalog.ParseFamily(opts.Family)
		if err != nil {
			return nil, err
		}
		selected = []catalog.Family{f}
	}

	result := &types.CatalogResult{Families: make([]types.FamilyCatalog, 0, len(selected))}
	for _, f := range selected {
		spec := catalog.Lookup(f)
		result.Families = append(result.Families, types.FamilyCatalog{
			VarName:   spec.VarName,
			Canonical: spec.Canonical,
			Dir:       spec.Dir,
			Entries:   spec.Entries,
		})
	}

	logger.Debug().Int("families", len(result.Families)).Msg("Listed catalogs")
	return result, nil
}
