package session

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/oadeniran/Nexus/internal/llm"
	"github.com/oadeniran/Nexus/internal/logging"
	"github.com/oadeniran/Nexus/internal/search"
)

// maxCandidates caps how many records a single read pulls from the store.
// Scaling beyond a per-user linear scan is a non-goal.
const maxCandidates = 100

// defaultSearchLimit applies when a search request omits the limit.
const defaultSearchLimit = 3

// Service runs the ingestion pipeline and memory retrieval over injected
// collaborators. The llm client and store are shared across in-flight
// requests; both must be safe for concurrent use.
type Service struct {
	llm    llm.Client
	store  Store
	ranker search.Ranker
	logger *logging.Logger
}

// NewService constructs the session service.
func NewService(client llm.Client, store Store, ranker search.Ranker) *Service {
	return &Service{
		llm:    client,
		store:  store,
		ranker: ranker,
		logger: logging.NewComponentLogger("Session"),
	}
}

// SaveSession formats the dialogue, derives all four artifacts concurrently,
// applies the content gate, and persists the assembled record. Nothing is
// written unless every derivation succeeds and the gate passes.
func (s *Service) SaveSession(ctx context.Context, req SaveRequest) (SaveResult, error) {
	transcript := FormatTranscript(req.Dialogue)

	d, err := s.derive(ctx, req.SessionType, transcript)
	if err != nil {
		return SaveResult{}, err
	}

	if strings.TrimSpace(d.markdown) == noContentSentinel {
		s.logger.Info("Content gate tripped for user %s (%s session)", req.UserID, req.SessionType)
		return SaveResult{Status: StatusNoContent, Markdown: noContentMessage}, nil
	}

	record := SessionRecord{
		UserID:            req.UserID,
		Type:              req.SessionType,
		Title:             cleanTitle(d.title),
		ShortDescription:  strings.TrimSpace(d.description),
		RawTranscript:     transcript,
		FormattedMarkdown: d.markdown,
		Embedding:         d.embedding,
		CreatedAt:         time.Now(),
	}
	if err := s.store.Insert(ctx, record); err != nil {
		return SaveResult{}, fmt.Errorf("persist session: %w", err)
	}

	s.logger.Info("Saved %s session for user %s (%d-dim embedding)", req.SessionType, req.UserID, len(record.Embedding))
	return SaveResult{Status: StatusSaved, Markdown: d.markdown}, nil
}

// SearchMemory embeds the query and ranks the user's stored records by
// cosine similarity. An empty query embedding means zero matches, not an
// error, and skips the store read entirely.
func (s *Service) SearchMemory(ctx context.Context, req SearchRequest) ([]ScoredMatch, error) {
	limit := defaultSearchLimit
	if req.Limit != nil {
		limit = *req.Limit
	}

	queryVec, err := s.llm.Embed(ctx, req.Query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	if len(queryVec) == 0 {
		return []ScoredMatch{}, nil
	}

	records, err := s.store.FindByUser(ctx, req.UserID, maxCandidates)
	if err != nil {
		return nil, fmt.Errorf("load candidates: %w", err)
	}

	candidates := make([]search.Candidate, 0, len(records))
	for _, record := range records {
		candidates = append(candidates, search.Candidate{
			Embedding: record.Embedding,
			Markdown:  record.FormattedMarkdown,
			Type:      record.Type,
			CreatedAt: record.CreatedAt,
		})
	}

	matches := s.ranker.Rank(queryVec, candidates, limit)
	s.logger.Debug("Search %q for user %s: %d candidates, %d matches", req.Query, req.UserID, len(candidates), len(matches))
	return matches, nil
}

// GetHistory returns the user's records newest first with identities
// externalized as hex strings.
func (s *Service) GetHistory(ctx context.Context, userID string) ([]HistoryEntry, error) {
	records, err := s.store.FindRecentByUser(ctx, userID, maxCandidates)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}

	entries := make([]HistoryEntry, 0, len(records))
	for _, record := range records {
		entries = append(entries, HistoryEntry{
			ID:            record.ID.Hex(),
			SessionRecord: record,
		})
	}
	return entries, nil
}

// cleanTitle removes whitespace and any wrapping quote characters the title
// derivation produces despite being told not to.
func cleanTitle(title string) string {
	return strings.Trim(strings.TrimSpace(title), `"`)
}
