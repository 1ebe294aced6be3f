package wechatwork

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestSendReport(t *testing.T) {
	var (
		gotKey string
		gotMsg WeChatWorkMessage
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.URL.Query().Get("key")
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &gotMsg); err != nil {
			t.Errorf("bad body %s: %v", body, err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	var ns = NewNotificationSender("k1")
	ns.WebhookURL = srv.URL
	var report = RunReport{
		RunID:    "r1",
		Project:  "/proj",
		Genome:   "hg38",
		Samples:  []string{"S1", "S2"},
		Config:   "task_samples.yaml",
		Duration: 3 * time.Second,
	}
	if err := ns.SendReport(report); err != nil {
		t.Fatal(err)
	}
	if gotKey != "k1" || gotMsg.MsgType != "markdown" || gotMsg.Markdown == nil {
		t.Fatalf("key=%q msg=%+v", gotKey, gotMsg)
	}
	for _, s := range []string{"done", "run: r1", "samples: 2", "genome: hg38"} {
		if !strings.Contains(gotMsg.Markdown.Content, s) {
			t.Errorf("markdown missing %q:\n%s", s, gotMsg.Markdown.Content)
		}
	}
}

func TestSend_status(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	var ns = NewNotificationSender("k1")
	ns.WebhookURL = srv.URL
	if err := ns.SendText("hi", nil, nil); err == nil {
		t.Error("expected error for 502")
	}
}

func TestDisabled(t *testing.T) {
	var ns = NewNotificationSender("")
	ns.WebhookURL = "http://127.0.0.1:0"
	if err := ns.SendReport(RunReport{Err: errors.New("x")}); err != nil {
		t.Errorf("disabled sender returned %v", err)
	}
}

func TestMarkdown_failure(t *testing.T) {
	var md = RunReport{RunID: "r2", Err: errors.New("boom")}.Markdown()
	if !strings.Contains(md, "failed") || !strings.Contains(md, "error: boom") {
		t.Errorf("markdown = %s", md)
	}
}

func TestSendReport_failureMentions(t *testing.T) {
	var gotMsg WeChatWorkMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &gotMsg); err != nil {
			t.Errorf("bad body %s: %v", body, err)
		}
	}))
	defer srv.Close()

	var ns = NewNotificationSender("k1")
	ns.WebhookURL = srv.URL
	ns.Mentioned = []string{"@all"}
	if err := ns.SendReport(RunReport{RunID: "r3", Project: "/proj", Err: errors.New("boom")}); err != nil {
		t.Fatal(err)
	}
	if gotMsg.MsgType != "text" || gotMsg.Text == nil {
		t.Fatalf("msg = %+v", gotMsg)
	}
	if !strings.Contains(gotMsg.Text.Content, "error: boom") || len(gotMsg.Text.MentionedList) != 1 || gotMsg.Text.MentionedList[0] != "@all" {
		t.Errorf("text = %+v", gotMsg.Text)
	}
}
