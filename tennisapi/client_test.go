package tennisapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const innerPayload = `{
	"participants": [
		{"participantId": "p1", "participantName": "Jane Smith", "participantType": "INDIVIDUAL"}
	],
	"eventData": {
		"drawsData": [
			{"drawId": "d1", "drawName": "Women's Singles", "structures": [
				{"structureName": "MAIN", "roundMatchUps": {"1": []}}
			]}
		]
	}
}`

func TestFetchEventDataObjectPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)

		var req graphQLRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "TournamentPublicEventData", req.OperationName)
		// IDs must reach the upstream normalized to upper case.
		assert.Equal(t, "T-1", req.Variables["tournamentId"])
		assert.Equal(t, "E-1", req.Variables["eventId"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": {"tournamentPublicEventData": ` + innerPayload + `}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	payload, raw, err := client.FetchEventData(context.Background(), "t-1", "e-1")
	require.NoError(t, err)
	require.NotNil(t, payload)
	assert.NotEmpty(t, raw)
	require.Len(t, payload.Participants, 1)
	assert.Equal(t, "Jane Smith", payload.Participants[0].ParticipantName)
	require.Len(t, payload.EventData.DrawsData, 1)
	assert.Equal(t, "Women's Singles", payload.EventData.DrawsData[0].DrawName)
}

func TestFetchEventDataStringEncodedPayload(t *testing.T) {
	encoded, err := json.Marshal(innerPayload)
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": {"tournamentPublicEventData": ` + string(encoded) + `}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	payload, _, err := client.FetchEventData(context.Background(), "T-1", "E-1")
	require.NoError(t, err)
	require.Len(t, payload.EventData.DrawsData, 1)
	require.Len(t, payload.EventData.DrawsData[0].Structures, 1)
	assert.Equal(t, "MAIN", payload.EventData.DrawsData[0].Structures[0].StructureName)
}

func TestFetchEventDataNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream broke", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	_, _, err := client.FetchEventData(context.Background(), "T-1", "E-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUpstreamStatus)
}

func TestFetchEventDataNullPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": {"tournamentPublicEventData": null}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	_, _, err := client.FetchEventData(context.Background(), "T-1", "E-1")
	assert.ErrorIs(t, err, ErrEmptyPayload)
}

func TestFetchEventDataMalformedEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": `))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	_, _, err := client.FetchEventData(context.Background(), "T-1", "E-1")
	require.Error(t, err)
}
