package entities

// RemoteOperationKind is the kind of a JMX request
type RemoteOperationKind string

const (
	RemoteExec  RemoteOperationKind = "exec"
	RemoteRead  RemoteOperationKind = "read"
	RemoteWrite RemoteOperationKind = "write"
)

// RemoteOperation is one call forwarded to a remote call handler
type RemoteOperation struct {
	Kind RemoteOperationKind `json:"type"`
	// Name is the operation or attribute name
	Name string `json:"name"`
	Args []any  `json:"args,omitempty"`
}
