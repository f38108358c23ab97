package translation

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/signon/internal/client/models"
	"github.com/dmitrijs2005/signon/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fast = Delays{Audio: time.Millisecond, Video: time.Millisecond, Text: time.Millisecond}

func first(int) int { return 0 }

func await(t *testing.T, task *Task) (Result, bool) {
	t.Helper()
	select {
	case res, ok := <-task.Result():
		return res, ok
	case <-time.After(time.Second):
		t.Fatal("task did not finish")
		return Result{}, false
	}
}

func TestSimulator_Text(t *testing.T) {
	p := NewSimulator(fast)
	task, err := p.Submit(context.Background(), Request{Kind: models.KindText, Text: "good morning"})
	require.NoError(t, err)

	res, ok := await(t, task)
	require.True(t, ok)
	assert.Equal(t, Result{Kind: models.KindText, Input: "good morning", Output: `ISL translation for: "good morning"`}, res)

	// exactly one value, then closed
	_, ok = <-task.Result()
	assert.False(t, ok)
}

func TestSimulator_AudioAndVideoUseSamples(t *testing.T) {
	p := NewSimulator(fast, WithPicker(first))

	task, err := p.Submit(context.Background(), Request{Kind: models.KindAudio, Duration: 2600 * time.Millisecond})
	require.NoError(t, err)
	res, ok := await(t, task)
	require.True(t, ok)
	assert.Equal(t, "Audio recording (3s)", res.Input)
	assert.Equal(t, AudioSamples[0], res.Output)

	task, err = p.Submit(context.Background(), Request{Kind: models.KindVideo, FileName: "talk.mp4"})
	require.NoError(t, err)
	res, ok = await(t, task)
	require.True(t, ok)
	assert.Equal(t, "talk.mp4", res.Input)
	assert.Equal(t, VideoSamples[0], res.Output)
}

func TestSimulator_RejectsInvalidRequests(t *testing.T) {
	p := NewSimulator(fast)

	_, err := p.Submit(context.Background(), Request{Kind: models.KindText, Text: "   "})
	ve, ok := common.IsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "text")

	_, err = p.Submit(context.Background(), Request{Kind: models.KindVideo})
	ve, ok = common.IsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "file")

	_, err = p.Submit(context.Background(), Request{Kind: "image"})
	require.Error(t, err)
}

func TestTask_CancelClosesWithoutResult(t *testing.T) {
	p := NewSimulator(Delays{Text: time.Hour})
	task, err := p.Submit(context.Background(), Request{Kind: models.KindText, Text: "x"})
	require.NoError(t, err)

	task.Cancel()
	task.Cancel()
	_, ok := await(t, task)
	assert.False(t, ok)
}

func TestTask_ParentContextCancels(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	p := NewSimulator(Delays{Text: time.Hour})
	task, err := p.Submit(ctx, Request{Kind: models.KindText, Text: "x"})
	require.NoError(t, err)

	cancel()
	_, ok := await(t, task)
	assert.False(t, ok)
}
