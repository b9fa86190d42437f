// Package aur implements the source-repository provider over the AUR RPC.
package aur

// rpcResponse is the envelope of an RPC v5 info reply.
type rpcResponse struct {
	Version     int       `json:"version"`
	Type        string    `json:"type"`
	ResultCount int       `json:"resultcount"`
	Results     []pkgInfo `json:"results"`
	Error       string    `json:"error,omitempty"`
}

// pkgInfo is the per-package payload of an info reply. Only the fields the
// core consumes are mapped.
type pkgInfo struct {
	Name        string   `json:"Name"`
	PackageBase string   `json:"PackageBase"`
	Version     string   `json:"Version"`
	NumVotes    int      `json:"NumVotes"`
	OutOfDate   *int64   `json:"OutOfDate"`
	Depends     []string `json:"Depends"`
	MakeDepends []string `json:"MakeDepends"`
}
