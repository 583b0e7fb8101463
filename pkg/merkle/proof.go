package merkle

import (
	"fmt"
	"strconv"
	"strings"

	"yachaq-ledger/pkg/digest"
)

// proofVersion prefixes every serialized proof. Old versions must remain
// parseable if the format ever changes.
const proofVersion = "v1"

// ProofElement is one sibling digest on the path from a leaf to the root.
// Left indicates the sibling sits to the left of the node being proven.
type ProofElement struct {
	Hash string
	Left bool
}

// Proof is a self-contained inclusion proof for one leaf of a tree.
// It is a value object: serialize it, hand it to a third party, and it
// verifies against an anchored root with no access to the ledger.
type Proof struct {
	LeafHash     string
	LeafIndex    int
	Elements     []ProofElement
	ExpectedRoot string
}

// Serialize encodes the proof as
//
//	v1:<leafHash>:<leafIndex>:<[L|R]hash,...>:<expectedRoot>
//
// Hex digests cannot contain ':' or ',', so the delimiters are unambiguous.
// An empty element section encodes a single-leaf proof.
func (p *Proof) Serialize() string {
	var sb strings.Builder
	sb.WriteString(proofVersion)
	sb.WriteByte(':')
	sb.WriteString(p.LeafHash)
	sb.WriteByte(':')
	sb.WriteString(strconv.Itoa(p.LeafIndex))
	sb.WriteByte(':')
	for i, el := range p.Elements {
		if i > 0 {
			sb.WriteByte(',')
		}
		if el.Left {
			sb.WriteByte('L')
		} else {
			sb.WriteByte('R')
		}
		sb.WriteString(el.Hash)
	}
	sb.WriteByte(':')
	sb.WriteString(p.ExpectedRoot)
	return sb.String()
}

// ParseProof is the exact inverse of Serialize. It rejects anything that
// does not round-trip: wrong version, malformed digests, unknown
// orientation flags, or a negative index.
func ParseProof(s string) (*Proof, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 5 {
		return nil, fmt.Errorf("merkle: malformed proof: expected 5 sections, got %d", len(parts))
	}
	if parts[0] != proofVersion {
		return nil, fmt.Errorf("merkle: unsupported proof version %q", parts[0])
	}
	if !digest.IsHex(parts[1]) {
		return nil, fmt.Errorf("merkle: malformed proof leaf hash")
	}
	index, err := strconv.Atoi(parts[2])
	if err != nil || index < 0 {
		return nil, fmt.Errorf("merkle: malformed proof leaf index %q", parts[2])
	}
	if !digest.IsHex(parts[4]) {
		return nil, fmt.Errorf("merkle: malformed proof root")
	}

	var elements []ProofElement
	if parts[3] != "" {
		for _, raw := range strings.Split(parts[3], ",") {
			if len(raw) != digest.HexLen+1 {
				return nil, fmt.Errorf("merkle: malformed proof element %q", raw)
			}
			var left bool
			switch raw[0] {
			case 'L':
				left = true
			case 'R':
				left = false
			default:
				return nil, fmt.Errorf("merkle: unknown proof orientation %q", raw[0])
			}
			hash := raw[1:]
			if !digest.IsHex(hash) {
				return nil, fmt.Errorf("merkle: malformed proof element digest")
			}
			elements = append(elements, ProofElement{Hash: hash, Left: left})
		}
	}

	return &Proof{
		LeafHash:     parts[1],
		LeafIndex:    index,
		Elements:     elements,
		ExpectedRoot: parts[4],
	}, nil
}
