package live

// PatchOp is the patch operation type, as seen on the wire.
type PatchOp string

const (
	OpInsert      PatchOp = "insert"       // Add a new list item
	OpRemove      PatchOp = "remove"       // Drop a list item
	OpClassAdd    PatchOp = "class-add"    // Add a class to an item
	OpClassRemove PatchOp = "class-remove" // Remove a class from an item
)

// Patch is a single DOM operation streamed to the client.
type Patch struct {
	Op PatchOp `json:"op"`
	ID string  `json:"id"`

	// Value carries the class name for class operations and the item
	// label for inserts.
	Value string `json:"value,omitempty"`
}

// action is a client request frame.
type action struct {
	Action string `json:"action"`
	ID     string `json:"id,omitempty"`
}

const (
	actionAdd    = "add"
	actionRemove = "remove"
)
