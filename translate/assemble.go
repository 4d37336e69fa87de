package translate

// assemble orders the graph: framework first, then items in input
// order, then any standalone association nodes in input order. Patches
// are applied to the first node carrying the target @id before the
// sequence is built. No @id deduplication happens here; colliding nodes
// all appear in the output.
func assemble(framework *Node, items []*Node, results []RewriteResult) []*Node {
	graph := make([]*Node, 0, len(items)+len(results)+1)
	graph = append(graph, framework)
	graph = append(graph, items...)

	for _, result := range results {
		switch {
		case result.Node != nil:
			graph = append(graph, result.Node)
		case result.Patch != nil:
			applyPatch(graph, result.Patch)
		}
	}

	return graph
}

// applyPatch sets patch.Property on the first node whose @id matches.
// A first value stays scalar; repeats on the same node and property
// grow an ordered list, appended in input order.
func applyPatch(nodes []*Node, patch *ItemPatch) {
	for _, node := range nodes {
		if node.ID != patch.TargetIRI {
			continue
		}

		switch existing := node.Properties[patch.Property].(type) {
		case nil:
			node.Set(patch.Property, patch.Value)
		case []any:
			node.Set(patch.Property, append(existing, patch.Value))
		default:
			node.Set(patch.Property, []any{existing, patch.Value})
		}
		return
	}
}
