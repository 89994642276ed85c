// internal/featurelog/indexer.go
package featurelog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"support-agent/internal/common/logger"

	"github.com/elastic/go-elasticsearch/v8"
)

// Indexer mirrors feature request entries into an Elasticsearch index so
// the product team can search them. The primary store stays authoritative;
// indexing is best-effort.
type Indexer struct {
	client *elasticsearch.Client
	index  string
	logger logger.Logger
}

func NewIndexer(client *elasticsearch.Client, index string, log logger.Logger) *Indexer {
	return &Indexer{
		client: client,
		index:  index,
		logger: log.WithFields(map[string]interface{}{"index": index}),
	}
}

// Index writes the entry as a document. Errors are returned so the caller
// can decide to log them; they must not fail the request.
func (ix *Indexer) Index(ctx context.Context, entry Entry) error {
	body, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal feature request: %w", err)
	}

	res, err := ix.client.Index(
		ix.index,
		bytes.NewReader(body),
		ix.client.Index.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("index feature request: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("index feature request: %s", res.Status())
	}
	return nil
}

// IndexedStore decorates a Store with best-effort search indexing. Append
// succeeds when the primary append succeeds; index failures are logged and
// swallowed.
type IndexedStore struct {
	primary Store
	indexer *Indexer
	logger  logger.Logger
}

func WithIndexer(primary Store, indexer *Indexer, log logger.Logger) *IndexedStore {
	return &IndexedStore{primary: primary, indexer: indexer, logger: log}
}

func (s *IndexedStore) Append(ctx context.Context, entry Entry) error {
	if err := s.primary.Append(ctx, entry); err != nil {
		return err
	}

	indexCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := s.indexer.Index(indexCtx, entry); err != nil {
		s.logger.Warn("feature request indexing failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
	return nil
}

func (s *IndexedStore) Close() error {
	return s.primary.Close()
}
