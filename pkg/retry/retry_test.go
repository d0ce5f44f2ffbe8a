package retry

import (
	"context"
	"errors"
	"testing"
)

func TestIsRetryable(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{errors.New("github returned status 401 for /repos"), false},
		{errors.New("llm endpoint returned status 404"), false},
		{errors.New("validation failed on field title"), false},
		{errors.New("dial tcp: connection refused"), true},
		{errors.New("jira returned status 429 for POST /issue"), true},
		{errors.New("llm endpoint returned status 503"), true},
		{errors.New("temporary failure in name resolution"), true},
	}

	for _, tc := range cases {
		if got := IsRetryable(tc.err); got != tc.want {
			t.Errorf("IsRetryable(%q): got %v, want %v", tc.err, got, tc.want)
		}
	}
}

func TestDo_StopsOnPermanentError(t *testing.T) {
	calls := 0
	err := Do(context.Background(), func() error {
		calls++
		return errors.New("server returned status 400")
	})

	if err == nil {
		t.Fatal("expected error")
	}
	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
}

func TestDo_RetriesTransientThenSucceeds(t *testing.T) {
	calls := 0
	err := Do(context.Background(), func() error {
		calls++
		if calls < 2 {
			return errors.New("connection refused")
		}
		return nil
	})

	if err != nil {
		t.Fatalf("expected success after retry, got %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected 2 calls, got %d", calls)
	}
}
