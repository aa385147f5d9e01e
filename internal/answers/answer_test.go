package answers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-forge/internal/llm"
	"github.com/jonathan/resume-forge/internal/types"
)

func tailoredRecord() *types.ResumeData {
	return &types.ResumeData{
		Contact: types.ContactInfo{Name: "Jane Doe", Email: "jane@x.com"},
		Experience: []types.Experience{
			{Company: "Acme Corp", Position: "Backend Engineer", Location: "Remote", Date: "2020",
				Bullets: []string{"scaled ingest service to 10k RPS"}},
		},
		Education: []types.Education{},
		Skills:    types.Skills{},
	}
}

func jobContext() types.ApplicationContext {
	return types.ApplicationContext{JobTitle: "Backend Engineer", JobDescription: "Go, distributed systems"}
}

func TestGenerate_TrimsResponse(t *testing.T) {
	stub := &llm.StubClient{Response: "\n  I scaled Acme's ingest service to 10k RPS...  \n"}

	answer, err := Generate(context.Background(), stub, tailoredRecord(), jobContext(), "Why are you a fit?")
	require.NoError(t, err)
	assert.Equal(t, "I scaled Acme's ingest service to 10k RPS...", answer)
}

func TestGenerate_PromptGrounding(t *testing.T) {
	stub := &llm.StubClient{Response: "answer"}

	_, err := Generate(context.Background(), stub, tailoredRecord(), jobContext(), "Tell us about a scaling challenge.")
	require.NoError(t, err)

	calls := stub.Calls()
	require.Len(t, calls, 1)
	prompt := calls[0].Prompt
	assert.Contains(t, prompt, "scaled ingest service to 10k RPS")
	assert.Contains(t, prompt, "Backend Engineer")
	assert.Contains(t, prompt, "Tell us about a scaling challenge.")
	assert.InDelta(t, 0.8, calls[0].Params.Temperature, 0.001)
	assert.False(t, calls[0].Params.JSONOutput)
}

func TestGenerate_InputValidation(t *testing.T) {
	stub := &llm.StubClient{Response: "answer"}
	ctx := context.Background()

	_, err := Generate(ctx, stub, nil, jobContext(), "q")
	assert.Error(t, err)

	_, err = Generate(ctx, stub, tailoredRecord(), types.ApplicationContext{}, "q")
	assert.Error(t, err)

	_, err = Generate(ctx, stub, tailoredRecord(), jobContext(), "  ")
	assert.Error(t, err)

	assert.Empty(t, stub.Calls())
}

func TestGenerate_APIFailure(t *testing.T) {
	stub := &llm.StubClient{Err: &llm.APICallError{Message: "timeout"}}

	answer, err := Generate(context.Background(), stub, tailoredRecord(), jobContext(), "q")
	assert.Empty(t, answer)

	var apiErr *llm.APICallError
	assert.True(t, errors.As(err, &apiErr))
}
