package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"lintang/jalanx/pkg/datastructure"
	"lintang/jalanx/pkg/server"
	"lintang/jalanx/pkg/server/rest/service"
	"lintang/jalanx/pkg/util"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

type StreetMapService interface {
	NodeDetail(ctx context.Context, id int32) (*datastructure.Node, error)
	WayDetail(ctx context.Context, id int32) (*datastructure.Way, error)
	SearchWays(ctx context.Context, name string) ([]*datastructure.Way, error)
	NodesOnStreets(ctx context.Context, street1, street2 string) ([]*datastructure.Node, error)
	NearbyRoads(ctx context.Context, lat, lon float64) ([]service.NearbyRoad, error)
	TravelTimeRoute(ctx context.Context, nodeIDs []int32) (float64, error)
	ShortestPathETA(ctx context.Context, from, to int32) (string, []datastructure.Coordinate, float64, bool, error)
	ShortestPathETAByLocation(ctx context.Context, srcLat, srcLon,
		dstLat, dstLon float64) (string, []datastructure.Coordinate, float64, bool, error)
}

type StreetMapHandler struct {
	svc          StreetMapService
	promeMetrics *Metrics
}

func StreetMapRouter(r *chi.Mux, svc StreetMapService, m *Metrics) {
	handler := &StreetMapHandler{svc, m}

	r.Group(func(r chi.Router) {
		r.Route("/api/streets", func(r chi.Router) {
			r.Get("/node/{id}", handler.nodeDetail)
			r.Get("/way/{id}", handler.wayDetail)
			r.Get("/ways", handler.searchWays)
			r.Get("/nodes", handler.nodesOnStreets)
			r.Get("/nearby", handler.nearbyRoads)
		})
		r.Route("/api/navigations", func(r chi.Router) {
			r.Post("/travel-time", handler.travelTime)
			r.Post("/shortest-path", handler.shortestPathETA)
			r.Post("/shortest-path-by-location", handler.shortestPathETAByLocation)
		})
	})
}

// NodeResponse model info
//
//	@Description	response body untuk satu node/intersection di road network
type NodeResponse struct {
	ID     int32   `json:"id"`
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
	WayIDs []int32 `json:"way_ids"`
}

func NewNodeResponse(n *datastructure.Node) *NodeResponse {
	return &NodeResponse{ID: n.ID, Lat: n.Lat, Lon: n.Lon, WayIDs: n.WayIDs}
}

// WayResponse model info
//
//	@Description	response body untuk satu way/ruas jalan
type WayResponse struct {
	ID       int32   `json:"id"`
	Name     string  `json:"name"`
	MaxSpeed float64 `json:"max_speed"`
	OneWay   bool    `json:"one_way"`
	NodeIDs  []int32 `json:"node_ids"`
}

func NewWayResponse(w *datastructure.Way) *WayResponse {
	return &WayResponse{
		ID:       w.ID,
		Name:     w.Name,
		MaxSpeed: w.MaxSpeed,
		OneWay:   w.OneWay,
		NodeIDs:  w.NodeIDs,
	}
}

// nodeDetail
//
//	@Summary		detail satu node road network by id
//	@Description	detail satu node road network by id
//	@Tags			streets
//	@Param			id	path	int	true	"node id"
//	@Produce		application/json
//	@Router			/streets/node/{id} [get]
//	@Success		200	{object}	NodeResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
func (h *StreetMapHandler) nodeDetail(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}

	node, err := h.svc.NodeDetail(r.Context(), id)
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, NewNodeResponse(node))
}

// wayDetail
//
//	@Summary		detail satu way road network by id
//	@Description	detail satu way road network by id
//	@Tags			streets
//	@Param			id	path	int	true	"way id"
//	@Produce		application/json
//	@Router			/streets/way/{id} [get]
//	@Success		200	{object}	WayResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
func (h *StreetMapHandler) wayDetail(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}

	way, err := h.svc.WayDetail(r.Context(), id)
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, NewWayResponse(way))
}

// SearchWaysResponse model info
//
//	@Description	response body untuk pencarian way by name
type SearchWaysResponse struct {
	Ways []WayResponse `json:"ways"`
}

// searchWays
//
//	@Summary		cari way yang namanya mengandung query name
//	@Description	cari way yang namanya mengandung query name, urut ascending id
//	@Tags			streets
//	@Param			name	query	string	true	"substring nama jalan"
//	@Produce		application/json
//	@Router			/streets/ways [get]
//	@Success		200	{object}	SearchWaysResponse
//	@Failure		400	{object}	ErrResponse
func (h *StreetMapHandler) searchWays(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		render.Render(w, r, ErrInvalidRequest(errors.New("query param name wajib diisi")))
		return
	}

	ways, err := h.svc.SearchWays(r.Context(), name)
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}

	resp := SearchWaysResponse{Ways: []WayResponse{}}
	for _, way := range ways {
		resp.Ways = append(resp.Ways, *NewWayResponse(way))
	}
	render.Status(r, http.StatusOK)
	render.JSON(w, r, resp)
}

// NodesOnStreetsResponse model info
//
//	@Description	response body untuk pencarian node by nama jalan
type NodesOnStreetsResponse struct {
	Nodes []NodeResponse `json:"nodes"`
}

// nodesOnStreets
//
//	@Summary		cari node di suatu jalan, atau persimpangan dua jalan
//	@Description	cari node yang terhubung ke jalan street. Kalau street2 diisi, node harus juga terhubung ke jalan lain yang namanya mengandung street2 (persimpangan)
//	@Tags			streets
//	@Param			street	query	string	true	"substring nama jalan pertama"
//	@Param			street2	query	string	false	"substring nama jalan kedua"
//	@Produce		application/json
//	@Router			/streets/nodes [get]
//	@Success		200	{object}	NodesOnStreetsResponse
//	@Failure		400	{object}	ErrResponse
func (h *StreetMapHandler) nodesOnStreets(w http.ResponseWriter, r *http.Request) {
	street := r.URL.Query().Get("street")
	street2 := r.URL.Query().Get("street2")
	if street == "" {
		render.Render(w, r, ErrInvalidRequest(errors.New("query param street wajib diisi")))
		return
	}

	nodes, err := h.svc.NodesOnStreets(r.Context(), street, street2)
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}

	resp := NodesOnStreetsResponse{Nodes: []NodeResponse{}}
	for _, node := range nodes {
		resp.Nodes = append(resp.Nodes, *NewNodeResponse(node))
	}
	render.Status(r, http.StatusOK)
	render.JSON(w, r, resp)
}

// NearbyRoadResponse model info
//
//	@Description	satu kandidat jalan di sekitar koordinat query
type NearbyRoadResponse struct {
	Way  WayResponse `json:"way"`
	Dist float64     `json:"distance_km"`
}

// NearbyRoadsResponse model info
//
//	@Description	response body untuk pencarian jalan di sekitar koordinat
type NearbyRoadsResponse struct {
	Roads []NearbyRoadResponse `json:"roads"`
}

// nearbyRoads
//
//	@Summary		cari jalan di sekitar koordinat lat/lon
//	@Description	cari jalan di sekitar koordinat lat/lon, urut dari yang paling dekat
//	@Tags			streets
//	@Param			lat	query	number	true	"latitude"
//	@Param			lon	query	number	true	"longitude"
//	@Produce		application/json
//	@Router			/streets/nearby [get]
//	@Success		200	{object}	NearbyRoadsResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
func (h *StreetMapHandler) nearbyRoads(w http.ResponseWriter, r *http.Request) {
	lat, errLat := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	lon, errLon := strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
	if errLat != nil || errLon != nil {
		render.Render(w, r, ErrInvalidRequest(errors.New("query param lat & lon wajib angka")))
		return
	}
	if lat <= -90 || lat >= 90 || lon <= -180 || lon >= 180 {
		render.Render(w, r, ErrInvalidRequest(errors.New("koordinat di luar jangkauan")))
		return
	}

	roads, err := h.svc.NearbyRoads(r.Context(), lat, lon)
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}

	resp := NearbyRoadsResponse{Roads: []NearbyRoadResponse{}}
	for _, road := range roads {
		resp.Roads = append(resp.Roads, NearbyRoadResponse{
			Way:  *NewWayResponse(road.Way),
			Dist: util.RoundFloat(road.Dist, 3),
		})
	}
	render.Status(r, http.StatusOK)
	render.JSON(w, r, resp)
}

// TravelTimeRequest model info
//
//	@Description	request body untuk hitung ETA rute yang node-nodenya ditentukan user
type TravelTimeRequest struct {
	NodeIDs []int32 `json:"node_ids" validate:"required,min=1"`
}

func (s *TravelTimeRequest) Bind(r *http.Request) error {
	if len(s.NodeIDs) == 0 {
		return errors.New("invalid request")
	}
	return nil
}

// TravelTimeResponse model info
//
//	@Description	response body untuk hitung ETA rute
type TravelTimeResponse struct {
	ETA float64 `json:"ETA"`
}

// travelTime
//
//	@Summary		hitung ETA (menit) rute yang urutan nodenya sudah ditentukan user
//	@Description	hitung ETA (menit) rute yang urutan nodenya sudah ditentukan user. Urutan node harus valid: semua node ada, tidak ada duplikat, tiap pasangan bersebelahan di satu way dan tidak melawan arah one-way
//	@Tags			navigations
//	@Param			body	body	TravelTimeRequest	true	"request body hitung ETA rute"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/navigations/travel-time [post]
//	@Success		200	{object}	TravelTimeResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *StreetMapHandler) travelTime(w http.ResponseWriter, r *http.Request) {
	data := &TravelTimeRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}

	validate := validator.New()
	if err := validate.Struct(*data); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		render.Render(w, r, ErrValidation(err, vv))
		return
	}

	eta, err := h.svc.TravelTimeRoute(r.Context(), data.NodeIDs)
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, TravelTimeResponse{ETA: util.RoundFloat(eta, 2)})
}

// ShortestPathRequest model info
//
//	@Description	request body untuk shortest path query antara 2 node road network
type ShortestPathRequest struct {
	From int32 `json:"from" validate:"gte=0"`
	To   int32 `json:"to" validate:"gte=0"`
}

func (s *ShortestPathRequest) Bind(r *http.Request) error {
	if s.From < 0 || s.To < 0 {
		return errors.New("invalid request")
	}
	return nil
}

// ShortestPathByLocationRequest model info
//
//	@Description	request body untuk shortest path query antara 2 koordinat
type ShortestPathByLocationRequest struct {
	SrcLat float64 `json:"src_lat" validate:"required,lt=90,gt=-90"`
	SrcLon float64 `json:"src_lon" validate:"required,lt=180,gt=-180"`
	DstLat float64 `json:"dst_lat" validate:"required,lt=90,gt=-90"`
	DstLon float64 `json:"dst_lon" validate:"required,lt=180,gt=-180"`
}

func (s *ShortestPathByLocationRequest) Bind(r *http.Request) error {
	if s.SrcLat == 0 || s.SrcLon == 0 || s.DstLat == 0 || s.DstLon == 0 {
		return errors.New("invalid request")
	}
	return nil
}

// ShortestPathResponse model info
//
//	@Description	response body untuk shortest path query
type ShortestPathResponse struct {
	Path  string                     `json:"path"`
	ETA   float64                    `json:"ETA"`
	Found bool                       `json:"found"`
	Route []datastructure.Coordinate `json:"route,omitempty"`
	Alg   string                     `json:"algorithm"`
}

func NewShortestPathResponse(path string, eta float64, route []datastructure.Coordinate, found bool) *ShortestPathResponse {
	return &ShortestPathResponse{
		Path:  path,
		ETA:   eta,
		Found: found,
		Route: route,
		Alg:   "Dijkstra Algorithm",
	}
}

// shortestPathETA
//
//	@Summary		shortest path query antara 2 node road network
//	@Description	shortest path query antara 2 node road network pakai dijkstra. found false kalau destination tidak tercapai dari source
//	@Tags			navigations
//	@Param			body	body	ShortestPathRequest	true	"request body query shortest path antara 2 node"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/navigations/shortest-path [post]
//	@Success		200	{object}	ShortestPathResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *StreetMapHandler) shortestPathETA(w http.ResponseWriter, r *http.Request) {
	data := &ShortestPathRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}

	validate := validator.New()
	if err := validate.Struct(*data); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		render.Render(w, r, ErrValidation(err, vv))
		return
	}

	h.promeMetrics.SPQueryCount.WithLabelValues("dijkstra").Inc()
	p, route, eta, found, err := h.svc.ShortestPathETA(r.Context(), data.From, data.To)
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, NewShortestPathResponse(p, eta, route, found))
}

// shortestPathETAByLocation
//
//	@Summary		shortest path query antara 2 koordinat lat/lon
//	@Description	shortest path query antara 2 koordinat lat/lon. Koordinat di-snap dulu ke node road network terdekat, baru dijkstra
//	@Tags			navigations
//	@Param			body	body	ShortestPathByLocationRequest	true	"request body query shortest path antara 2 koordinat"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/navigations/shortest-path-by-location [post]
//	@Success		200	{object}	ShortestPathResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *StreetMapHandler) shortestPathETAByLocation(w http.ResponseWriter, r *http.Request) {
	data := &ShortestPathByLocationRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}

	validate := validator.New()
	if err := validate.Struct(*data); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		render.Render(w, r, ErrValidation(err, vv))
		return
	}

	h.promeMetrics.SPQueryCount.WithLabelValues("dijkstra").Inc()
	p, route, eta, found, err := h.svc.ShortestPathETAByLocation(r.Context(),
		data.SrcLat, data.SrcLon, data.DstLat, data.DstLon)
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, NewShortestPathResponse(p, eta, route, found))
}

func parseID(raw string) (int32, error) {
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("id %q bukan integer", raw)
	}
	return int32(id), nil
}

// ErrResponse model info
//
//	@Description	model untuk error response
type ErrResponse struct {
	Err            error `json:"-"` // low-level runtime error
	HTTPStatusCode int   `json:"-"` // http response status code

	StatusText    string   `json:"status"`          // user-level status message
	AppCode       int64    `json:"code,omitempty"`  // application-specific error code
	ErrorText     string   `json:"error,omitempty"` // application-level error message, for debugging
	ErrValidation []string `json:"validation,omitempty"`
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

func ErrInternalServerErrorRend(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: 500,
		StatusText:     "Internal server error.",
		ErrorText:      err.Error(),
	}
}

func ErrValidation(err error, errV []error) render.Renderer {
	vv := []string{}
	for _, v := range errV {
		vv = append(vv, v.Error())
	}
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: 400,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
		ErrValidation:  vv,
	}
}

func ErrInvalidRequest(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: 400,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
	}
}

func ErrRender(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: 422,
		StatusText:     "Error rendering response.",
		ErrorText:      err.Error(),
	}
}

func ErrChi(err error) render.Renderer {
	statusText := ""
	switch getStatusCode(err) {
	case http.StatusNotFound:
		statusText = "Resource not found."
	case http.StatusInternalServerError:
		statusText = "Internal server error."
	case http.StatusConflict:
		statusText = "Resource conflict."
	case http.StatusBadRequest:
		statusText = "Bad request."
	default:
		statusText = "Error."
	}

	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: getStatusCode(err),
		StatusText:     statusText,
		ErrorText:      err.Error(),
	}
}

func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var ierr *server.Error
	if !errors.As(err, &ierr) {
		return http.StatusInternalServerError
	} else {
		switch ierr.Code() {
		case server.ErrInternalServerError:
			return http.StatusInternalServerError
		case server.ErrNotFound:
			return http.StatusNotFound
		case server.ErrConflict:
			return http.StatusConflict
		case server.ErrBadParamInput:
			return http.StatusBadRequest
		default:
			return http.StatusInternalServerError
		}
	}
}

func translateError(err error, trans ut.Translator) (errs []error) {
	if err == nil {
		return nil
	}
	validatorErrs := err.(validator.ValidationErrors)
	for _, e := range validatorErrs {
		translatedErr := fmt.Errorf(e.Translate(trans))
		errs = append(errs, translatedErr)
	}
	return errs
}
