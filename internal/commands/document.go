package commands

import "github.com/goombastomp/goomba/internal/types"

const (
	folderStructureHeading = "# Folder Structure\n\n```\n"
	fileContentsHeading    = "\n```\n\n# File Contents\n"
)

// AssembleDocument combines the tree listing and the rendered file sections into the final
// Markdown document. Empty contents produce a File Contents heading with no body.
func AssembleDocument(treeListing string, contentSections string) string {
	return folderStructureHeading + treeListing + fileContentsHeading + contentSections
}

// BuildDocument walks rootDirectoryPath once for the listing and once for the contents and
// assembles the Markdown document. The collected records are returned for reporting.
func (treeBuilder *TreeBuilder) BuildDocument(rootDirectoryPath string) (string, []types.FileRecord, error) {
	treeListing, err := treeBuilder.BuildTreeListing(rootDirectoryPath)
	if err != nil {
		return "", nil, err
	}
	contentSections, records, err := treeBuilder.CollectFileContents(rootDirectoryPath)
	if err != nil {
		return "", nil, err
	}
	return AssembleDocument(treeListing, contentSections), records, nil
}
