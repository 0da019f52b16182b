// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package eutils

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
)

func TestFetchPostsIdentifierBatch(t *testing.T) {
	const doc = `<?xml version="1.0" ?><PubmedArticleSet></PubmedArticleSet>`

	var gotMethod, gotContentType string
	var gotForm map[string]string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/efetch.fcgi" {
			t.Errorf("path = %q, want /efetch.fcgi", r.URL.Path)
		}
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		if err := r.ParseForm(); err != nil {
			t.Fatalf("ParseForm: %v", err)
		}
		gotForm = map[string]string{
			"db":      r.PostFormValue("db"),
			"id":      r.PostFormValue("id"),
			"retmode": r.PostFormValue("retmode"),
			"tool":    r.PostFormValue("tool"),
			"email":   r.PostFormValue("email"),
		}
		w.Write([]byte(doc))
	})

	body, err := c.Fetch(context.Background(), []string{"101", "102", "103"})
	if err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}
	if string(body) != doc {
		t.Errorf("body = %q, want the document unchanged", body)
	}

	if gotMethod != http.MethodPost {
		t.Errorf("method = %q, want POST", gotMethod)
	}
	if !strings.HasPrefix(gotContentType, "application/x-www-form-urlencoded") {
		t.Errorf("Content-Type = %q", gotContentType)
	}
	want := map[string]string{
		"db":      "pubmed",
		"id":      "101,102,103",
		"retmode": "xml",
		"tool":    "pharmascout-test",
		"email":   "dev@meshintel.example",
	}
	for k, v := range want {
		if gotForm[k] != v {
			t.Errorf("form value %s = %q, want %q", k, gotForm[k], v)
		}
	}
}

func TestFetchEmptyBatchSkipsNetwork(t *testing.T) {
	called := false
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	body, err := c.Fetch(context.Background(), nil)
	if err != nil {
		t.Fatalf("Fetch(nil) error: %v", err)
	}
	if body != nil {
		t.Errorf("body = %v, want nil", body)
	}
	if called {
		t.Error("server was called for an empty identifier batch")
	}
}

func TestFetchHTTPError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})

	_, err := c.Fetch(context.Background(), []string{"101"})
	var re *RetrievalError
	if !errors.As(err, &re) || re.Stage != StageFetch {
		t.Fatalf("err = %v, want *RetrievalError with fetch stage", err)
	}
}

func TestFetchContextCancelled(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<PubmedArticleSet/>"))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Fetch(ctx, []string{"101"})
	if err == nil {
		t.Fatal("expected error for cancelled context")
	}
	var re *RetrievalError
	if !errors.As(err, &re) || re.Stage != StageFetch {
		t.Errorf("err = %v, want *RetrievalError with fetch stage", err)
	}
}
