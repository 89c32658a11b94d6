package structindex

import (
	"github.com/dtpgcore/tpg/circuit"
	"github.com/dtpgcore/tpg/fault"
)

// Index is the immutable structural index built once per (Network,
// FaultSet) pair.
type Index struct {
	net *circuit.Network

	idom      map[circuit.NodeID]circuit.NodeID
	ffrs      []FFR
	ffrRootOf map[circuit.NodeID]circuit.NodeID // any member node -> its FFR's root
	ffrIDOf   map[circuit.NodeID]FFRID          // FFR root -> FFRID
	mffcs     []MFFC
	mffcOfFFR map[FFRID]MFFCID
	ppos      []circuit.NodeID
}

// Build computes dominators, FFRs, MFFCs, and the PPO processing order over
// net, and attaches fs's representative faults to their containing FFR.
func Build(net *circuit.Network, fs *fault.FaultSet) (*Index, error) {
	order, err := topoOrder(net)
	if err != nil {
		return nil, err
	}
	idom := computeDominators(net, order)
	ffrs, ffrRootOf := computeFFRs(net)

	ffrIDOf := make(map[circuit.NodeID]FFRID, len(ffrs))
	for _, f := range ffrs {
		ffrIDOf[f.Root] = f.ID
	}

	mffcs, mffcOfFFR := computeMFFCs(ffrs, idom)

	for _, f := range fs.Faults() {
		if !f.IsRepresentative() {
			continue
		}
		root, ok := ffrRootOf[f.Node]
		if !ok {
			continue
		}
		id := ffrIDOf[root]
		ffrs[id].Faults = append(ffrs[id].Faults, int(f.ID))
	}

	return &Index{
		net:       net,
		idom:      idom,
		ffrs:      ffrs,
		ffrRootOf: ffrRootOf,
		ffrIDOf:   ffrIDOf,
		mffcs:     mffcs,
		mffcOfFFR: mffcOfFFR,
		ppos:      ppoOrder(net),
	}, nil
}

// ImmediateDominator returns n's immediate dominator toward the outputs and
// whether one exists. PPOs never have one.
func (idx *Index) ImmediateDominator(n circuit.NodeID) (circuit.NodeID, bool) {
	d, ok := idx.idom[n]
	return d, ok
}

// FFRs returns every fan-out-free region, indexed by FFRID.
func (idx *Index) FFRs() []FFR { return idx.ffrs }

// FFR returns the FFR with the given id.
func (idx *Index) FFR(id FFRID) *FFR { return &idx.ffrs[id] }

// FFRContaining returns the FFR that node n belongs to.
func (idx *Index) FFRContaining(n circuit.NodeID) *FFR {
	root := idx.ffrRootOf[n]
	return &idx.ffrs[idx.ffrIDOf[root]]
}

// MFFCs returns every maximal fan-out-free cone, indexed by MFFCID.
func (idx *Index) MFFCs() []MFFC { return idx.mffcs }

// MFFC returns the MFFC with the given id.
func (idx *Index) MFFC(id MFFCID) *MFFC { return &idx.mffcs[id] }

// MFFCContaining returns the MFFC that FFR f belongs to.
func (idx *Index) MFFCContaining(f FFRID) *MFFC {
	return &idx.mffcs[idx.mffcOfFFR[f]]
}

// PPOOrder returns every PPO sorted ascending by TFI cone size.
func (idx *Index) PPOOrder() []circuit.NodeID { return idx.ppos }
