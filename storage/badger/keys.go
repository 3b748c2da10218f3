package badger

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/poiesic/zakaut/core"
)

// Key prefixes for different data types
const (
	caseRecordPrefix     = "casrec"
	caseRecordDatePrefix = "casrecd"
	caseRecordRunPrefix  = "casrecr"
	caseRecordIDSeq      = "casrecseq"
	routeCachePrefix     = "route"
)

// makeCaseRecordKey generates a key for a case record by ID.
func makeCaseRecordKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", caseRecordPrefix, id))
}

// makeCaseDateKey generates a composite key for the date index.
// Format: prefix:timestamp:id
func makeCaseDateKey(timestamp time.Time, id core.ID) []byte {
	prefix := caseRecordDatePrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 16 // 8 bytes for timestamp + 8 bytes for ID
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(timestamp.UnixMicro()))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makePartialCaseDateKey generates a partial key for date range scans.
// Format: prefix:timestamp
func makePartialCaseDateKey(timestamp time.Time) []byte {
	prefix := caseRecordDatePrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 8 // 8 bytes for timestamp
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(timestamp.UnixMicro()))
	return buf
}

// makeCaseRunKey generates a composite key for the run index.
// Format: prefix:runID:recordID
func makeCaseRunKey(runID string, id core.ID) []byte {
	prefix := fmt.Sprintf("%s:%s:", caseRecordRunPrefix, runID)
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 8 // 8 bytes for recordID
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so records scan back in insertion order
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makePartialCaseRunKey generates a partial key for run scans.
// Format: prefix:runID:
func makePartialCaseRunKey(runID string) []byte {
	return []byte(fmt.Sprintf("%s:%s:", caseRecordRunPrefix, runID))
}

// makeRouteKey generates a key for a cached route by document content ID.
func makeRouteKey(docID core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", routeCachePrefix, docID))
}
