package miniflux

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
)

func TestEntries_NoFilterSendsNoParams(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/entries" {
			t.Errorf("path = %q, want /v1/entries", r.URL.Path)
		}
		if r.URL.RawQuery != "" {
			t.Errorf("query = %q, want empty", r.URL.RawQuery)
		}
		json.NewEncoder(w).Encode(EntryResultSet{Total: 0})
	})

	if _, err := client.Entries(context.Background(), nil); err != nil {
		t.Fatalf("Entries() error = %v", err)
	}
}

func TestEntries_OmittedFieldsNeverAppear(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if got := q.Get("status"); got != "unread" {
			t.Errorf("status = %q, want unread", got)
		}
		if got := q.Get("limit"); got != "10" {
			t.Errorf("limit = %q, want 10", got)
		}
		if got := q.Get("offset"); got != "5" {
			t.Errorf("offset = %q, want 5", got)
		}
		for _, absent := range []string{"starred", "direction", "before", "after", "before_entry_id", "after_entry_id", "order", "search"} {
			if _, ok := q[absent]; ok {
				t.Errorf("query contains %q, want absent", absent)
			}
		}
		json.NewEncoder(w).Encode(EntryResultSet{Total: 0})
	})

	filter := &EntryFilter{
		Status: String(EntryStatusUnread),
		Limit:  Int(10),
		Offset: Int(5),
	}
	if _, err := client.Entries(context.Background(), filter); err != nil {
		t.Fatalf("Entries() error = %v", err)
	}
}

func TestEntries_ExplicitFalseAppearsLiterally(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if got, ok := q["starred"]; !ok || got[0] != "false" {
			t.Errorf("starred = %v, want [false]", got)
		}
		if got := q.Get("after_entry_id"); got != "123" {
			t.Errorf("after_entry_id = %q, want 123", got)
		}
		json.NewEncoder(w).Encode(EntryResultSet{Total: 0})
	})

	filter := &EntryFilter{
		Starred:      Bool(false),
		AfterEntryID: Int64(123),
	}
	if _, err := client.Entries(context.Background(), filter); err != nil {
		t.Fatalf("Entries() error = %v", err)
	}
}

func TestEntries_ExplicitZeroOffsetAppears(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got, ok := r.URL.Query()["offset"]; !ok || got[0] != "0" {
			t.Errorf("offset = %v, want [0]", got)
		}
		json.NewEncoder(w).Encode(EntryResultSet{Total: 0})
	})

	if _, err := client.Entries(context.Background(), &EntryFilter{Offset: Int(0)}); err != nil {
		t.Fatalf("Entries() error = %v", err)
	}
}

func TestEntries_BeforeTimestamp(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("before"); got != "1577836800" {
			t.Errorf("before = %q, want 1577836800", got)
		}
		json.NewEncoder(w).Encode(EntryResultSet{Total: 0})
	})

	if _, err := client.Entries(context.Background(), &EntryFilter{Before: Int64(1577836800)}); err != nil {
		t.Fatalf("Entries() error = %v", err)
	}
}

func TestEntries_DecodesResultSet(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"total": 2, "entries": [{"id": 1, "title": "First"}, {"id": 2, "title": "Second"}]}`))
	})

	result, err := client.Entries(context.Background(), nil)
	if err != nil {
		t.Fatalf("Entries() error = %v", err)
	}
	if result.Total != 2 {
		t.Errorf("Total = %d, want 2", result.Total)
	}
	if len(result.Entries) != 2 || result.Entries[0].Title != "First" {
		t.Errorf("Entries = %+v, want two decoded entries", result.Entries)
	}
}

func TestEntry(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		if r.URL.Path != "/v1/entries/123" {
			t.Errorf("path = %q, want /v1/entries/123", r.URL.Path)
		}
		w.Write([]byte(`{"id": 123, "title": "Example", "status": "unread"}`))
	})

	entry, err := client.Entry(context.Background(), 123)
	if err != nil {
		t.Fatalf("Entry() error = %v", err)
	}
	if entry.ID != 123 || entry.Status != EntryStatusUnread {
		t.Errorf("entry = %+v, want id 123 status unread", entry)
	}
}

func TestUpdateEntries(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("method = %s, want PUT", r.Method)
		}
		if r.URL.Path != "/v1/entries" {
			t.Errorf("path = %q, want /v1/entries", r.URL.Path)
		}
		var payload struct {
			EntryIDs []int64 `json:"entry_ids"`
			Status   string  `json:"status"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("decode payload: %v", err)
		}
		if len(payload.EntryIDs) != 2 || payload.EntryIDs[0] != 1 || payload.EntryIDs[1] != 2 {
			t.Errorf("entry_ids = %v, want [1 2]", payload.EntryIDs)
		}
		if payload.Status != EntryStatusRead {
			t.Errorf("status = %q, want read", payload.Status)
		}
		w.WriteHeader(http.StatusNoContent)
	})

	if err := client.UpdateEntries(context.Background(), []int64{1, 2}, EntryStatusRead); err != nil {
		t.Fatalf("UpdateEntries() error = %v", err)
	}
}

func TestToggleBookmark(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("method = %s, want PUT", r.Method)
		}
		if r.URL.Path != "/v1/entries/42/bookmark" {
			t.Errorf("path = %q, want /v1/entries/42/bookmark", r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	})

	if err := client.ToggleBookmark(context.Background(), 42); err != nil {
		t.Fatalf("ToggleBookmark() error = %v", err)
	}
}
