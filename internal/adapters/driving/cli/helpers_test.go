package cli

import (
	"context"

	"github.com/calgarypulse/pulse-qa/internal/core/domain"
	"github.com/calgarypulse/pulse-qa/internal/logger"
)

// --- Mock services ---

// mockIndexService implements driving.IndexService for testing.
type mockIndexService struct {
	summary domain.IndexSummary
	stats   domain.IndexStats
	err     error

	calls    []string
	dataDirs []string
	slugs    []string
}

func (m *mockIndexService) IndexAll(_ context.Context, dataDir string) (domain.IndexSummary, error) {
	m.calls = append(m.calls, "IndexAll")
	m.dataDirs = append(m.dataDirs, dataDir)
	return m.summary, m.err
}

func (m *mockIndexService) IndexCommunities(_ context.Context, dataDir string, slugs []string) (domain.IndexSummary, error) {
	m.calls = append(m.calls, "IndexCommunities")
	m.dataDirs = append(m.dataDirs, dataDir)
	m.slugs = slugs
	return m.summary, m.err
}

func (m *mockIndexService) Reindex(_ context.Context, dataDir string) (domain.IndexSummary, error) {
	m.calls = append(m.calls, "Reindex")
	m.dataDirs = append(m.dataDirs, dataDir)
	return m.summary, m.err
}

func (m *mockIndexService) ReindexCommunities(_ context.Context, dataDir string, slugs []string) (domain.IndexSummary, error) {
	m.calls = append(m.calls, "ReindexCommunities")
	m.dataDirs = append(m.dataDirs, dataDir)
	m.slugs = slugs
	return m.summary, m.err
}

func (m *mockIndexService) RemoveCommunity(_ context.Context, _ string) (int, error) {
	m.calls = append(m.calls, "RemoveCommunity")
	return 0, m.err
}

func (m *mockIndexService) Stats(_ context.Context) (domain.IndexStats, error) {
	m.calls = append(m.calls, "Stats")
	return m.stats, m.err
}

func (m *mockIndexService) Watch(_ context.Context, dataDir string) error {
	m.calls = append(m.calls, "Watch")
	m.dataDirs = append(m.dataDirs, dataDir)
	return m.err
}

// mockAnswerService implements driving.AnswerService for testing.
type mockAnswerService struct {
	answer    domain.Answer
	err       error
	questions []string

	// verboseDuringAsk records the logger verbosity seen by each call, to
	// verify session-scoped verbosity changes.
	verboseDuringAsk []bool
}

func (m *mockAnswerService) Ask(_ context.Context, question string) (domain.Answer, error) {
	m.questions = append(m.questions, question)
	m.verboseDuringAsk = append(m.verboseDuringAsk, logger.IsVerbose())
	if m.err != nil {
		return domain.Answer{}, m.err
	}
	answer := m.answer
	answer.Question = question
	return answer, nil
}

// setupTestServices wires mock services and returns them with a cleanup
// that restores the previous wiring and resets command flags.
func setupTestServices() (*mockIndexService, *mockAnswerService, func()) {
	oldIndex, oldAnswer := indexService, answerService
	oldHealth := healthCheck

	index := &mockIndexService{
		summary: domain.IndexSummary{Chunks: 9, Communities: 1},
		stats:   domain.IndexStats{Total: 9, PerCommunity: map[string]int{"beltline": 9}},
	}
	answer := &mockAnswerService{
		answer: domain.Answer{
			Answer:     "Beltline is a dense inner-city community.",
			Sources:    []string{"https://calgarypulse.ca/communities/beltline"},
			ChunksUsed: 8,
		},
	}
	SetServices(index, answer)

	return index, answer, func() {
		indexService, answerService = oldIndex, oldAnswer
		healthCheck = oldHealth
		logger.SetVerbose(false)
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		resetFlags()
	}
}

// resetFlags restores the package-level flag variables to their defaults;
// cobra keeps parsed values between Execute calls in the same process.
func resetFlags() {
	verbose = false
	indexDataDir = "data/communities"
	indexCommunities = nil
	indexReindex = false
	indexStats = false
	indexDryRun = false
	indexWatch = false
	askBatch = ""
	askOutput = "answers.csv"
	askInteractive = false
}
