// Package session implements the ingestion pipeline and memory retrieval for
// conversational sessions: a transcript is formatted, four derivations run
// concurrently against the generation service, and the assembled record is
// persisted and later searched by embedding similarity.
package session

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/oadeniran/Nexus/internal/search"
)

// Save statuses returned by the ingestion pipeline.
const (
	StatusSaved     = "saved"
	StatusNoContent = "no_content"
)

// DialogueTurn is a single utterance in a session, owned by the caller.
type DialogueTurn struct {
	Role    string `json:"role" bson:"role"`
	Content string `json:"content" bson:"content"`
}

// SessionRecord is the persisted memory artifact for one ingested session.
// A record is written only after every derivation succeeds and the content
// gate passes; partially populated records are never visible.
type SessionRecord struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID            string             `bson:"user_id" json:"user_id"`
	Type              string             `bson:"type" json:"type"`
	Title             string             `bson:"title" json:"title"`
	ShortDescription  string             `bson:"short_description" json:"short_description"`
	RawTranscript     string             `bson:"raw_transcript" json:"raw_transcript"`
	FormattedMarkdown string             `bson:"formatted_markdown" json:"formatted_markdown"`
	Embedding         []float32          `bson:"embedding" json:"embedding,omitempty"`
	CreatedAt         time.Time          `bson:"created_at" json:"created_at"`
}

// SaveRequest describes one session to ingest.
type SaveRequest struct {
	SessionType string
	Dialogue    []DialogueTurn
	UserID      string
}

// SaveResult is the outcome of an ingestion: either the saved markdown or
// the fixed no-content message.
type SaveResult struct {
	Status   string `json:"status"`
	Markdown string `json:"markdown"`
}

// SearchRequest describes a semantic memory query. Transient, never stored.
// A nil Limit means the default; an explicit zero asks for no matches.
type SearchRequest struct {
	Query  string
	UserID string
	Limit  *int
}

// ScoredMatch is one search result.
type ScoredMatch = search.Match

// HistoryEntry is a stored record with its identity externalized for
// consumers that cannot handle the store's native id type.
type HistoryEntry struct {
	ID string `json:"id"`
	SessionRecord
}
