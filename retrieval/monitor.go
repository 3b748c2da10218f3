package retrieval

import "github.com/poiesic/zakaut/core"

// RetrievalMonitor provides hooks to observe a retrieval pass.
// Implement this interface to track scoring and candidate selection per query.
// DocumentScanned fires for every (query, document) pair; CandidateKept fires
// only for the candidates that make it into the result list. Callbacks fire
// during the deterministic reduce phase, in query order then document order,
// regardless of how the underlying scans were scheduled.
type RetrievalMonitor interface {
	Start(query string, keywords []string)
	DocumentScanned(docID string, score int)
	CandidateKept(docID string, score int)
	SentinelEmitted(query string)
	Finish(sections []core.RetrievedSection)
}

// noopMonitor is a no-op implementation of RetrievalMonitor
type noopMonitor struct{}

var _ RetrievalMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string, _ []string)             {}
func (n *noopMonitor) DocumentScanned(_ string, _ int)        {}
func (n *noopMonitor) CandidateKept(_ string, _ int)          {}
func (n *noopMonitor) SentinelEmitted(_ string)               {}
func (n *noopMonitor) Finish(_ []core.RetrievedSection)       {}
