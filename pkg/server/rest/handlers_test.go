package rest_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lintang/jalanx/pkg/datastructure"
	"lintang/jalanx/pkg/engine/routingalgorithm"
	"lintang/jalanx/pkg/engine/validation"
	"lintang/jalanx/pkg/server/rest"
	"lintang/jalanx/pkg/server/rest/service"
	"lintang/jalanx/pkg/snap"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	sm, err := datastructure.NewStreetMap(4, 2)
	require.NoError(t, err)

	require.NoError(t, sm.AddWay(0, "Jalan Slamet Riyadi", 40, false, []int32{0, 1, 2}))
	require.NoError(t, sm.AddWay(1, "Jalan Adi Sucipto", 50, true, []int32{2, 3}))

	require.NoError(t, sm.AddNode(0, -7.5595, 110.8315, []int32{0}))
	require.NoError(t, sm.AddNode(1, -7.5600, 110.8320, []int32{0}))
	require.NoError(t, sm.AddNode(2, -7.5610, 110.8330, []int32{0, 1}))
	require.NoError(t, sm.AddNode(3, -7.5620, 110.8340, []int32{1}))

	reg := prometheus.NewRegistry()
	m := rest.NewMetrics(reg)

	svc := service.NewStreetMapService(sm,
		routingalgorithm.NewRouteAlgorithm(sm),
		validation.NewPathValidator(sm),
		snap.NewNodeIndex(sm),
		snap.NewWayIndex(sm))

	r := chi.NewRouter()
	rest.StreetMapRouter(r, svc, m)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestStreetEndpoints(t *testing.T) {
	srv := newTestServer(t)

	t.Run("node detail", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/api/streets/node/2")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body rest.NodeResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, int32(2), body.ID)
		assert.Equal(t, []int32{0, 1}, body.WayIDs)
	})

	t.Run("node detail not found", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/api/streets/node/99")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("way detail", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/api/streets/way/1")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body rest.WayResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "Jalan Adi Sucipto", body.Name)
		assert.True(t, body.OneWay)
	})

	t.Run("search ways by name", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/api/streets/ways?name=Jalan")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body rest.SearchWaysResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		require.Len(t, body.Ways, 2)
		assert.Equal(t, int32(0), body.Ways[0].ID)
	})

	t.Run("search ways requires name", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/api/streets/ways")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("intersection of two streets", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/api/streets/nodes?street=Riyadi&street2=Sucipto")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body rest.NodesOnStreetsResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		require.Len(t, body.Nodes, 1)
		assert.Equal(t, int32(2), body.Nodes[0].ID)
	})

	t.Run("nearby roads", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/api/streets/nearby?lat=-7.5601&lon=110.8321")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body rest.NearbyRoadsResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		require.NotEmpty(t, body.Roads)
		assert.Equal(t, int32(0), body.Roads[0].Way.ID)
	})
}

func TestNavigationEndpoints(t *testing.T) {
	srv := newTestServer(t)

	t.Run("travel time of a valid route", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/api/navigations/travel-time", "application/json",
			strings.NewReader(`{"node_ids":[0,1,2,3]}`))
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body rest.TravelTimeResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Greater(t, body.ETA, 0.0)
	})

	t.Run("travel time rejects reverse one way", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/api/navigations/travel-time", "application/json",
			strings.NewReader(`{"node_ids":[3,2]}`))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("shortest path between two nodes", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/api/navigations/shortest-path", "application/json",
			strings.NewReader(`{"from":0,"to":3}`))
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body rest.ShortestPathResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.True(t, body.Found)
		assert.NotEmpty(t, body.Path)
		assert.Len(t, body.Route, 4)
	})

	t.Run("shortest path unknown node", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/api/navigations/shortest-path", "application/json",
			strings.NewReader(`{"from":0,"to":77}`))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("shortest path by location", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/api/navigations/shortest-path-by-location", "application/json",
			strings.NewReader(`{"src_lat":-7.5595,"src_lon":110.8315,"dst_lat":-7.5620,"dst_lon":110.8340}`))
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body rest.ShortestPathResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.True(t, body.Found)
		assert.NotEmpty(t, body.Route)
	})
}
