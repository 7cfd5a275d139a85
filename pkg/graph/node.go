package graph

// NodeKind enumerates the types of nodes in the design graph.
type NodeKind int

const (
	NodePrimitive NodeKind = iota // board, dowel or panel
	NodeTransform                 // placement (place)
	NodeJoin                      // joinery metadata (butt-joint)
	NodeGroup                     // assembly
	NodeDrill                     // hole marking
	NodeFastener                  // fastener (screw)
)

func (k NodeKind) String() string {
	switch k {
	case NodePrimitive:
		return "primitive"
	case NodeTransform:
		return "transform"
	case NodeJoin:
		return "join"
	case NodeGroup:
		return "group"
	case NodeDrill:
		return "drill"
	case NodeFastener:
		return "fastener"
	default:
		return "unknown"
	}
}

// Node is one element of the design graph.
type Node struct {
	ID       NodeID   `json:"id"`
	Kind     NodeKind `json:"kind"`
	Name     string   `json:"name,omitempty"`
	Layer    string   `json:"layer,omitempty"`  // empty means the default layer
	Hidden   bool     `json:"hidden,omitempty"` // hidden nodes never become parts
	Children []NodeID `json:"children,omitempty"`
	Data     NodeData `json:"data"`
}

// DisplayName returns the node's name, or its short ID when unnamed.
func (n *Node) DisplayName() string {
	if n.Name != "" {
		return n.Name
	}
	return n.ID.Short()
}

// NodeData is the interface for kind-specific node payloads.
type NodeData interface {
	nodeData() // marker method restricting implementations to this package
}
