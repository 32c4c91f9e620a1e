package zvuk

import (
	"context"
	"testing"
	"time"

	"github.com/zvuklib/zvuk-go/pkg/errors"
	"github.com/zvuklib/zvuk-go/pkg/models"
)

// The non-blocking adapter must produce the same values and the same
// error kinds as the direct call, for both success and failure.
func TestFutureParityWithDirectCall(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		stub := &gqlStub{responses: map[string]string{
			"getTrack": `{"data":{"get_track":{"id":"5896627","title":"Nothing Else Matters"}}}`,
		}}
		client := newStubClient(t, stub)
		ctx := context.Background()

		direct, directErr := client.GetTrack(ctx, "5896627")

		future := Go(ctx, func(ctx context.Context) (*models.Track, error) {
			return client.GetTrack(ctx, "5896627")
		})
		async, asyncErr := future.Wait(ctx)

		if directErr != nil || asyncErr != nil {
			t.Fatalf("Unexpected errors: direct=%v async=%v", directErr, asyncErr)
		}
		if direct.ID != async.ID || direct.Title != async.Title {
			t.Errorf("Modes disagree: direct=%+v async=%+v", direct, async)
		}
	})

	t.Run("Failure", func(t *testing.T) {
		stub := &gqlStub{rawBody: `{"errors":[{"extensions":{"code":"NOT_FOUND"}}]}`}
		client := newStubClient(t, stub)
		ctx := context.Background()

		_, directErr := client.GetTrack(ctx, "0")

		future := Go(ctx, func(ctx context.Context) (*models.Track, error) {
			return client.GetTrack(ctx, "0")
		})
		_, asyncErr := future.Wait(ctx)

		if !errors.Is(directErr, errors.ErrNotFound) {
			t.Fatalf("Expected direct ErrNotFound, got %v", directErr)
		}
		if !errors.Is(asyncErr, errors.ErrNotFound) {
			t.Errorf("Expected async ErrNotFound, got %v", asyncErr)
		}
	})
}

func TestFutureWaitRepeatable(t *testing.T) {
	f := Go(context.Background(), func(context.Context) (int, error) {
		return 42, nil
	})

	for i := 0; i < 3; i++ {
		v, err := f.Wait(context.Background())
		if err != nil {
			t.Fatalf("Wait %d failed: %v", i, err)
		}
		if v != 42 {
			t.Errorf("Wait %d: expected 42, got %d", i, v)
		}
	}
}

func TestFutureWaitCancellation(t *testing.T) {
	block := make(chan struct{})
	defer close(block)

	f := Go(context.Background(), func(context.Context) (int, error) {
		<-block
		return 0, nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := f.Wait(ctx)
	if err != context.DeadlineExceeded {
		t.Errorf("Expected context.DeadlineExceeded, got %v", err)
	}
}

func TestFutureTryGet(t *testing.T) {
	block := make(chan struct{})

	f := Go(context.Background(), func(context.Context) (string, error) {
		<-block
		return "done", nil
	})

	if _, _, ok := f.TryGet(); ok {
		t.Error("Expected TryGet to report not ready while blocked")
	}

	close(block)
	<-f.Done()

	v, err, ok := f.TryGet()
	if !ok {
		t.Fatal("Expected TryGet to report ready after Done")
	}
	if err != nil || v != "done" {
		t.Errorf("Unexpected result: %q, %v", v, err)
	}
}
