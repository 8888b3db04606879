package results

import (
	"errors"
	"testing"
)

func TestOperationResult(t *testing.T) {
	ok := SuccessResult[int, error](42)
	if !ok.IsSuccess() || ok.IsFailure() {
		t.Fatalf("expected success result, got %+v", ok)
	}
	if *ok.Success != 42 {
		t.Fatalf("expected 42, got %d", *ok.Success)
	}

	failErr := errors.New("boom")
	fail := FailureResult[int, error](failErr)
	if fail.IsSuccess() || !fail.IsFailure() {
		t.Fatalf("expected failure result, got %+v", fail)
	}
	if !errors.Is(*fail.Failure, failErr) {
		t.Fatalf("expected wrapped failure, got %v", *fail.Failure)
	}
}
