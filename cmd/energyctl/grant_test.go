package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runGrant(t *testing.T, url string, args ...string) (string, error) {
	cmd := newGrantCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--url", url, "--retries", "0"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestGrant_Processed(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/energy/cycles", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"message":"Energy granted to all players","updatedCount":12,"failedCount":1,"cycleId":"c-1"}`))
	}))
	defer srv.Close()

	out, err := runGrant(t, srv.URL, "--cycle-id", "c-1")

	require.NoError(t, err)
	assert.Equal(t, "c-1", got["cycleId"])
	assert.Contains(t, out, "cycle c-1: 12 players granted, 1 failed")
}

func TestGrant_DefaultCycleID(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"success":true,"message":"Cycle already processed","alreadyProcessed":true,"cycleId":"` + got["cycleId"] + `"}`))
	}))
	defer srv.Close()

	out, err := runGrant(t, srv.URL)

	require.NoError(t, err)
	assert.Regexp(t, `^daily-\d{4}-\d{2}-\d{2}$`, got["cycleId"])
	assert.Contains(t, out, "already processed")
}

func TestGrant_InProgress(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":"Energy cycle 'c-1' is already being processed","code":"CYCLE_IN_PROGRESS"}`))
	}))
	defer srv.Close()

	_, err := runGrant(t, srv.URL, "--cycle-id", "c-1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "being processed by another run")
}
