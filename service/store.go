package service

import (
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/akhil-bm/legal-doc-analyzer/config"
	"github.com/akhil-bm/legal-doc-analyzer/model"
)

// AnalysisStore is an in-memory store of completed analyses. It is an
// operational cache for the API, not pipeline state: the pipeline never
// reads from it and it is cleared on restart.
type AnalysisStore struct {
	analyses    map[string]*model.Analysis
	mu          sync.RWMutex
	maxAnalyses int // Maximum analyses to keep, 0 = unlimited
}

var (
	globalStore *AnalysisStore
	storeOnce   sync.Once
)

// InitAnalysisStore initializes the global analysis store with configuration
func InitAnalysisStore(cfg *config.StoreConfig) {
	storeOnce.Do(func() {
		maxAnalyses := cfg.MaxAnalyses
		if maxAnalyses < 0 {
			maxAnalyses = 0
		}
		globalStore = &AnalysisStore{
			analyses:    make(map[string]*model.Analysis),
			maxAnalyses: maxAnalyses,
		}
		slog.Info("analysis store initialized", "max_analyses", maxAnalyses)
	})
}

// GetAnalysisStore returns the global analysis store
func GetAnalysisStore() *AnalysisStore {
	if globalStore == nil {
		// Fallback initialization with default settings
		globalStore = &AnalysisStore{
			analyses:    make(map[string]*model.Analysis),
			maxAnalyses: 100,
		}
	}
	return globalStore
}

func (s *AnalysisStore) Save(analysis *model.Analysis) {
	s.mu.Lock()
	defer s.mu.Unlock()

	analysis.UpdatedAt = time.Now()
	s.analyses[analysis.ID] = analysis

	s.cleanupIfNeeded()
}

func (s *AnalysisStore) Get(id string) *model.Analysis {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.analyses[id]
}

func (s *AnalysisStore) GetByTenant(tenant string) []*model.Analysis {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*model.Analysis
	for _, a := range s.analyses {
		if a.Tenant == tenant {
			result = append(result, a)
		}
	}
	return result
}

func (s *AnalysisStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.analyses, id)
}

// MarkFailed records a failure on an existing analysis
func (s *AnalysisStore) MarkFailed(id, errMsg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a, ok := s.analyses[id]; ok {
		a.Status = model.StatusFailed
		a.ErrorMsg = errMsg
		a.UpdatedAt = time.Now()
	}
}

// cleanupIfNeeded removes oldest analyses if the store exceeds maxAnalyses
// Must be called with lock held
func (s *AnalysisStore) cleanupIfNeeded() {
	if s.maxAnalyses <= 0 {
		return // Unlimited
	}

	if len(s.analyses) <= s.maxAnalyses {
		return
	}

	analyses := make([]*model.Analysis, 0, len(s.analyses))
	for _, a := range s.analyses {
		analyses = append(analyses, a)
	}
	sort.Slice(analyses, func(i, j int) bool {
		return analyses[i].CreatedAt.Before(analyses[j].CreatedAt)
	})

	removeCount := len(analyses) - s.maxAnalyses
	for i := 0; i < removeCount; i++ {
		slog.Info("auto-cleaning old analysis",
			"analysis_id", analyses[i].ID,
			"created_at", analyses[i].CreatedAt,
		)
		delete(s.analyses, analyses[i].ID)
	}
}

// Count returns the number of analyses in the store
func (s *AnalysisStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.analyses)
}
