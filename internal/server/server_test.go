package server

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nars/internal/engine"
)

func testServer() *Server {
	return New(engine.New(engine.DefaultConfig()))
}

func TestHandleAddInputAccepted(t *testing.T) {
	s := testServer()
	_, resp, err := s.handleAddInput(context.Background(), nil, AddInputRequest{Text: "(raven --> bird). %0.9;0.8%"})
	require.NoError(t, err)
	assert.True(t, resp.Accepted)
	assert.Equal(t, "queued", resp.Message)
}

func TestHandleAddInputRejected(t *testing.T) {
	s := testServer()
	_, resp, err := s.handleAddInput(context.Background(), nil, AddInputRequest{Text: "<raven --> bird"})
	require.NoError(t, err)
	assert.False(t, resp.Accepted)
}

func TestHandleDoCycleDefaultsToOne(t *testing.T) {
	s := testServer()
	_, resp, err := s.handleDoCycle(context.Background(), nil, DoCycleRequest{})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), resp.CyclesElapsed)
}

func TestHandleDoCycleRunsCount(t *testing.T) {
	s := testServer()
	_, resp, err := s.handleDoCycle(context.Background(), nil, DoCycleRequest{Count: 3})
	require.NoError(t, err)
	assert.Equal(t, uint64(3), resp.CyclesElapsed)
}

func TestHandleQueryConceptNotFound(t *testing.T) {
	s := testServer()
	_, resp, err := s.handleQueryConcept(context.Background(), nil, QueryConceptRequest{Term: "raven"})
	require.NoError(t, err)
	assert.False(t, resp.Found)
}

func TestHandleQueryConceptFound(t *testing.T) {
	s := testServer()
	_, _, err := s.handleAddInput(context.Background(), nil, AddInputRequest{Text: "(raven --> bird). %0.9;0.8%"})
	require.NoError(t, err)
	_, _, err = s.handleDoCycle(context.Background(), nil, DoCycleRequest{Count: 1})
	require.NoError(t, err)

	_, resp, err := s.handleQueryConcept(context.Background(), nil, QueryConceptRequest{Term: "raven"})
	require.NoError(t, err)
	assert.True(t, resp.Found)
	require.NotNil(t, resp.Belief)
	assert.InDelta(t, 0.9, resp.Belief.Frequency, 1e-9)
}

func TestHandleQueryConceptRejectsBadTerm(t *testing.T) {
	s := testServer()
	_, _, err := s.handleQueryConcept(context.Background(), nil, QueryConceptRequest{Term: "("})
	assert.Error(t, err)
}

func TestHandleAnswerNotFound(t *testing.T) {
	s := testServer()
	_, resp, err := s.handleAnswer(context.Background(), nil, AnswerRequest{Term: "raven"})
	require.NoError(t, err)
	assert.False(t, resp.Found)
}

func TestHandleSaveMemoryWithoutPersisterFails(t *testing.T) {
	s := testServer()
	_, _, err := s.handleSaveMemory(context.Background(), nil, SaveMemoryRequest{Path: "/tmp/whatever.snapshot"})
	assert.Error(t, err)
}

func TestHandleGetMetricsReportsCycleCount(t *testing.T) {
	s := testServer()
	_, _, err := s.handleDoCycle(context.Background(), nil, DoCycleRequest{Count: 2})
	require.NoError(t, err)

	_, resp, err := s.handleGetMetrics(context.Background(), nil, GetMetricsRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.Cycle["cycles_total"])
}
