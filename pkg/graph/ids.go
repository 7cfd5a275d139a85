package graph

import (
	"crypto/sha256"
	"encoding/hex"
)

// NodeID is a content-addressed node identifier: the SHA-256 of the
// node's path in the design (for example "defpart/front").
type NodeID [sha256.Size]byte

// ZeroID is the unset NodeID.
var ZeroID NodeID

// NewNodeID derives the ID for a node path.
func NewNodeID(path string) NodeID {
	return NodeID(sha256.Sum256([]byte(path)))
}

// IsZero reports whether id is unset.
func (id NodeID) IsZero() bool { return id == ZeroID }

// String returns the full hex form.
func (id NodeID) String() string { return hex.EncodeToString(id[:]) }

// Short returns the first 12 hex characters, enough for messages.
func (id NodeID) Short() string { return id.String()[:12] }

// MarshalText encodes the ID as hex so it can key JSON objects.
func (id NodeID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }
