package commands

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"cat-poster/internal/catapi"
	"cat-poster/internal/publish"
	"cat-poster/internal/telegram"
)

func TestReportRun_PrintsPostWhenHistoryNotSaved(t *testing.T) {
	out := publish.Outcome{
		Image:   catapi.Image{ID: "abc", URL: "https://cdn2.thecatapi.com/images/abc.jpg"},
		Caption: "今日は勝ち。 #TheCatAPI",
		Post:    telegram.Result{MessageID: 42, URL: "https://t.me/cats/42"},
	}
	runErr := fmt.Errorf("%w: disk full", publish.ErrHistoryNotSaved)

	var buf bytes.Buffer
	err := reportRun(context.Background(), &buf, out, runErr)
	if !errors.Is(err, publish.ErrHistoryNotSaved) {
		t.Fatalf("expected history error, got %v", err)
	}
	for _, want := range []string{"Message ID: 42", "URL: https://t.me/cats/42", "Posted: https://cdn2.thecatapi.com/images/abc.jpg"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("output %q missing %q", buf.String(), want)
		}
	}
}

func TestReportRun_OtherErrorsPrintNothing(t *testing.T) {
	var buf bytes.Buffer
	err := reportRun(context.Background(), &buf, publish.Outcome{Caption: "x"}, errors.New("post failed: boom"))
	if err == nil {
		t.Fatal("expected error")
	}
	if buf.Len() != 0 {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestReportRun_DryRun(t *testing.T) {
	var buf bytes.Buffer
	if err := reportRun(context.Background(), &buf, publish.Outcome{Caption: "preview", DryRun: true}, nil); err != nil {
		t.Fatalf("dry run: %v", err)
	}
	if buf.String() != "Caption: preview\nDRY RUN: nothing posted\n" {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}
