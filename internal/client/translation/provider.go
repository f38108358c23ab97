// Package translation holds the translation provider contract, a simulated
// provider, and Slot, which ties in-flight submissions to the lifetime of the
// screen that started them.
package translation

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/signon/internal/client/models"
	"github.com/dmitrijs2005/signon/internal/common"
)

// Request is one submission to a provider. Only the field for Kind is read.
type Request struct {
	Kind     models.Kind
	Text     string        // KindText
	Duration time.Duration // KindAudio: length of the recording
	FileName string        // KindVideo
}

// Input is the text recorded as the history entry's input.
func (r Request) Input() string {
	switch r.Kind {
	case models.KindAudio:
		return fmt.Sprintf("Audio recording (%ds)", int(math.Round(r.Duration.Seconds())))
	case models.KindVideo:
		return r.FileName
	case models.KindText:
		return r.Text
	default:
		return ""
	}
}

// Validate rejects requests that cannot be translated.
func (r Request) Validate() error {
	switch r.Kind {
	case models.KindAudio:
		return nil
	case models.KindVideo:
		if strings.TrimSpace(r.FileName) == "" {
			return common.NewValidationError("file", "is required")
		}
		return nil
	case models.KindText:
		if strings.TrimSpace(r.Text) == "" {
			return common.NewValidationError("text", "is required")
		}
		return nil
	default:
		return fmt.Errorf("unsupported kind %q", r.Kind)
	}
}

// Result is what a provider produces for a request.
type Result struct {
	Kind   models.Kind
	Input  string
	Output string
}

// Provider turns requests into results asynchronously.
type Provider interface {
	Submit(ctx context.Context, req Request) (*Task, error)
}

// Task is a handle on one submission. Result yields exactly one value unless
// the task is cancelled first; the channel is closed either way.
type Task struct {
	req    Request
	ch     chan Result
	cancel context.CancelFunc
	once   sync.Once
}

func newTask(ctx context.Context, req Request) (*Task, context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	return &Task{req: req, ch: make(chan Result, 1), cancel: cancel}, ctx
}

func (t *Task) Request() Request { return t.req }

func (t *Task) Result() <-chan Result { return t.ch }

// Cancel abandons the task. Safe to call more than once.
func (t *Task) Cancel() { t.cancel() }

func (t *Task) finish(res *Result) {
	t.once.Do(func() {
		if res != nil {
			t.ch <- *res
		}
		close(t.ch)
		t.cancel()
	})
}

// ErrSlotClosed is returned when submitting through a torn-down slot.
var ErrSlotClosed = errors.New("translation slot closed")

var (
	AudioSamples = []string{
		"Hello, how are you doing today?",
		"Thank you for your help",
		"Nice to meet you, my name is...",
		"Can you please help me with this?",
		"Good morning, have a great day!",
	}
	VideoSamples = []string{
		"Welcome to our presentation about climate change and sustainability.",
		"Today we will discuss the importance of renewable energy sources.",
		"Education is the key to building a better future for everyone.",
		"Technology has revolutionized the way we communicate and learn.",
		"Healthcare innovations are improving lives around the world.",
	}
)

// Delays holds the simulated processing time per kind.
type Delays struct {
	Audio time.Duration
	Video time.Duration
	Text  time.Duration
}

var DefaultDelays = Delays{Audio: 3 * time.Second, Video: 5 * time.Second, Text: 2 * time.Second}

// Simulator is a Provider that answers after a fixed delay with canned
// output: a random sample sentence for audio and video, an echo for text.
type Simulator struct {
	delays Delays
	pick   func(n int) int
}

type SimulatorOption func(*Simulator)

// WithPicker replaces the random sample picker.
func WithPicker(pick func(n int) int) SimulatorOption {
	return func(s *Simulator) { s.pick = pick }
}

func NewSimulator(d Delays, opts ...SimulatorOption) *Simulator {
	s := &Simulator{delays: d, pick: rand.IntN}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ Provider = (*Simulator)(nil)

func (s *Simulator) Submit(ctx context.Context, req Request) (*Task, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var delay time.Duration
	switch req.Kind {
	case models.KindAudio:
		delay = s.delays.Audio
	case models.KindVideo:
		delay = s.delays.Video
	case models.KindText:
		delay = s.delays.Text
	}

	task, ctx := newTask(ctx, req)
	go func() {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			task.finish(nil)
		case <-timer.C:
			res := Result{Kind: req.Kind, Input: req.Input(), Output: s.output(req)}
			task.finish(&res)
		}
	}()
	return task, nil
}

func (s *Simulator) output(req Request) string {
	switch req.Kind {
	case models.KindAudio:
		return AudioSamples[s.pick(len(AudioSamples))]
	case models.KindVideo:
		return VideoSamples[s.pick(len(VideoSamples))]
	case models.KindText:
		return `ISL translation for: "` + req.Text + `"`
	default:
		return ""
	}
}
