package service

import (
	"context"
	"encoding/base64"
	"errors"
	"interview_prep_backend/internal/config"
	"interview_prep_backend/internal/util"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestMediaKey(t *testing.T) {
	cases := []struct {
		filename string
		wantTail string
	}{
		{"answer.webm", "_answer.webm"},
		{"../../etc/passwd", "_passwd"},
		{`C:\Users\me\clip.mp4`, "_clip.mp4"},
		{"my answer.wav", "_my_answer.wav"},
		{"", "_upload"},
		{"..", "_upload"},
	}
	for _, c := range cases {
		key := mediaKey(c.filename)
		if !strings.HasPrefix(key, util.MediaKeyPrefix) {
			t.Fatalf("mediaKey(%q)=%q, want prefix %q", c.filename, key, util.MediaKeyPrefix)
		}
		if !strings.HasSuffix(key, c.wantTail) {
			t.Fatalf("mediaKey(%q)=%q, want suffix %q", c.filename, key, c.wantTail)
		}
		if strings.Contains(strings.TrimPrefix(key, util.MediaKeyPrefix), "/") {
			t.Fatalf("mediaKey(%q)=%q escapes the answers prefix", c.filename, key)
		}
	}

	if mediaKey("a.wav") == mediaKey("a.wav") {
		t.Fatal("mediaKey returned the same key twice")
	}
}

func TestLocalStorageStore(t *testing.T) {
	dir := t.TempDir()
	svc := NewStorageService(&config.StorageConfig{Type: util.StorageLocal, LocalPath: dir})

	key, url, err := svc.Store(context.Background(), []byte("audio-bytes"), "take1.wav", "audio/wav")
	if err != nil {
		t.Fatalf("Store: %v", err)
	}
	if url != "/uploads/"+key || !strings.HasPrefix(key, util.MediaKeyPrefix) {
		t.Fatalf("key=%q url=%q, want answers/ key served under /uploads/", key, url)
	}

	path := filepath.Join(dir, filepath.FromSlash(key))
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if string(data) != "audio-bytes" {
		t.Fatalf("stored %q, want audio-bytes", data)
	}

	if err := svc.Remove(context.Background(), key); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("file still present after Remove: %v", err)
	}
}

func TestNewStorageServiceFallsBackToLocal(t *testing.T) {
	svc := NewStorageService(&config.StorageConfig{Type: util.StorageMinio, LocalPath: t.TempDir()})
	if _, ok := svc.Provider.(*LocalStorageProvider); !ok {
		t.Fatalf("provider=%T, want local fallback when minio is not configured", svc.Provider)
	}
}

func TestDecodeMediaPayload(t *testing.T) {
	raw := []byte{0x1a, 0x45, 0xdf, 0xa3}
	enc := base64.StdEncoding.EncodeToString(raw)

	cases := []struct {
		name    string
		payload string
		wantErr bool
	}{
		{"plain", enc, false},
		{"data url", "data:video/webm;base64," + enc, false},
		{"surrounding whitespace", "  " + enc + "\n", false},
		{"empty", "", true},
		{"garbage", "not base64!", true},
	}
	for _, c := range cases {
		got, err := decodeMediaPayload(c.payload)
		if c.wantErr {
			if err == nil {
				t.Fatalf("%s: expected error", c.name)
			}
			continue
		}
		if err != nil || string(got) != string(raw) {
			t.Fatalf("%s: decodeMediaPayload=%v, %v", c.name, got, err)
		}
	}

	if _, err := decodeMediaPayload(""); !errors.Is(err, errEmptyPayload) {
		t.Fatalf("empty payload err=%v, want errEmptyPayload", err)
	}
}
