package structindex

import "github.com/dtpgcore/tpg/circuit"

// MFFCID indexes an Index's MFFCs slice.
type MFFCID int

// MFFC is a maximal fan-out-free cone: every fault within it, once
// detected, must be observed at Root. It is partitioned into
// member FFRs.
type MFFC struct {
	ID   MFFCID
	Root circuit.NodeID
	FFRs []FFRID
}

// computeMFFCs groups ffrs into MFFCs using idom: an FFR's root either has
// no dominator (it is itself an MFFC root) or its dominator chain walks
// up to exactly one terminal node with no dominator, which becomes the
// MFFC root owning that FFR.
func computeMFFCs(ffrs []FFR, idom map[circuit.NodeID]circuit.NodeID) (mffcs []MFFC, mffcOfFFR map[FFRID]MFFCID) {
	memo := make(map[circuit.NodeID]circuit.NodeID, len(ffrs))

	var mffcRootOf func(n circuit.NodeID) circuit.NodeID
	mffcRootOf = func(n circuit.NodeID) circuit.NodeID {
		if r, ok := memo[n]; ok {
			return r
		}
		d, ok := idom[n]
		var result circuit.NodeID
		if !ok {
			result = n
		} else {
			result = mffcRootOf(d)
		}
		memo[n] = result
		return result
	}

	membersByRoot := make(map[circuit.NodeID][]FFRID)
	var rootOrder []circuit.NodeID
	for _, ffr := range ffrs {
		r := mffcRootOf(ffr.Root)
		if _, seen := membersByRoot[r]; !seen {
			rootOrder = append(rootOrder, r)
		}
		membersByRoot[r] = append(membersByRoot[r], ffr.ID)
	}
	sortNodeIDs(rootOrder)

	mffcs = make([]MFFC, len(rootOrder))
	mffcOfFFR = make(map[FFRID]MFFCID, len(ffrs))
	for i, r := range rootOrder {
		mffcs[i] = MFFC{ID: MFFCID(i), Root: r, FFRs: membersByRoot[r]}
		for _, fid := range membersByRoot[r] {
			mffcOfFFR[fid] = MFFCID(i)
		}
	}
	return mffcs, mffcOfFFR
}
