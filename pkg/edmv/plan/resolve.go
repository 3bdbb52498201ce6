package plan

import "path/filepath"

// Resolve rewrites the rename sequence so that no operation overwrites a
// path whose content has not yet been relocated.
//
// It makes a single forward pass over the original sequence. When an
// operation's destination is still pending (some later operation will move
// the file currently at that path), the operation is rewritten to move its
// source to a fresh temporary path, and a completing hop from the temporary
// to the true destination is appended after all original operations. After
// each operation is handled its source is marked relocated, so a later
// operation may safely target that path.
//
// Appended hops are never re-examined: temporary paths are absent from both
// the input set and every requested destination by construction, so a hop
// cannot itself collide. The pending map is consumed here and holds no
// meaning once the plan is built; it must not be reused as a proxy for
// execution-time state.
func Resolve(renames []RenameOp, pending map[string]bool, names *TempNamer) ([]RenameOp, error) {
	resolved := make([]RenameOp, len(renames))
	copy(resolved, renames)

	var hops []RenameOp
	for i := range resolved {
		if pending[resolved[i].Dest] {
			tmp, err := names.Generate(resolved[i].Source)
			if err != nil {
				return nil, err
			}
			hops = append(hops, RenameOp{Source: tmp, Dest: resolved[i].Dest})
			resolved[i].Dest = tmp
		}
		delete(pending, filepath.Clean(resolved[i].Source))
	}

	return append(resolved, hops...), nil
}
