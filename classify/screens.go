package classify

import (
	"sort"

	"github.com/figyaml/figyaml"
)

// ScreenRoots extracts the top-level screen nodes from a design file.
//
// Node-scoped files yield one screen per requested node, ordered by node
// ID for determinism. Full documents yield the frames sitting directly on
// each canvas: CANVAS nodes are transparent page wrappers, so their
// children are promoted. Non-frame top-level nodes become screens too;
// nothing is silently dropped.
func ScreenRoots(file *figyaml.File) []*figyaml.Node {
	if file == nil {
		return nil
	}

	if len(file.Nodes) > 0 {
		ids := make([]string, 0, len(file.Nodes))
		for id := range file.Nodes {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		roots := make([]*figyaml.Node, 0, len(ids))
		for _, id := range ids {
			if entry := file.Nodes[id]; entry != nil && entry.Document != nil {
				roots = append(roots, entry.Document)
			}
		}
		return roots
	}

	if file.Document == nil {
		return nil
	}
	return promoteCanvases(file.Document.Children)
}

func promoteCanvases(nodes []*figyaml.Node) []*figyaml.Node {
	var roots []*figyaml.Node
	for _, node := range nodes {
		if node == nil {
			continue
		}
		if node.Type == figyaml.NodeTypeCanvas {
			roots = append(roots, promoteCanvases(node.Children)...)
			continue
		}
		roots = append(roots, node)
	}
	return roots
}
