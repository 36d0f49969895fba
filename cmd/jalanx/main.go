package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"

	_ "lintang/jalanx/docs"
	"lintang/jalanx/pkg/datastructure"
	"lintang/jalanx/pkg/engine/routingalgorithm"
	"lintang/jalanx/pkg/engine/validation"
	"lintang/jalanx/pkg/mapparser"
	"lintang/jalanx/pkg/osmparser"
	"lintang/jalanx/pkg/server/rest"
	"lintang/jalanx/pkg/server/rest/service"
	"lintang/jalanx/pkg/snap"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "net/http/pprof"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

var (
	listenAddr = flag.String("listenaddr", ":5000", "server listen address")
	mapFile    = flag.String("f", "solo.map", "street map file buat road network graphnya")
	mapFormat  = flag.String("format", "text", "format map file: text atau pbf")
)

//	@title			jalanx API
//	@version		1.0
//	@description	simple street map routing engine in go

//	@contact.name	lintang birda saputra
//	@description 	simple street map routing engine in go. Dijkstra buat shortest path query, snapping koordinat pakai rtree & h3

//	@license.name	GNU Affero General Public License v3.0
//	@license.url	https://www.gnu.org/licenses/gpl-3.0.en.html

// @host		localhost:5000
// @BasePath	/api
// @schemes	http
func main() {
	flag.Parse()

	var sm *datastructure.StreetMap
	var err error
	switch *mapFormat {
	case "text":
		sm, err = mapparser.LoadStreetMap(*mapFile)
	case "pbf":
		sm, err = osmparser.LoadOSM(context.Background(), *mapFile)
	default:
		log.Fatalf("unknown map format %q", *mapFormat)
	}
	if err != nil {
		log.Fatal(err)
	}

	nodeIndex := snap.NewNodeIndex(sm)
	wayIndex := snap.NewWayIndex(sm)

	reg := prometheus.NewRegistry()
	m := rest.NewMetrics(reg)

	r := chi.NewRouter()

	r.Use(middleware.Logger)

	r.Use(rest.PromeHttpMiddleware(m)) // prometheus http middleware
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Mount("/debug", middleware.Profiler())

	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:5000/swagger/doc.json"),
	))

	routeAlgorithm := routingalgorithm.NewRouteAlgorithm(sm)
	pathValidator := validation.NewPathValidator(sm)

	streetMapSvc := service.NewStreetMapService(sm, routeAlgorithm, pathValidator, nodeIndex, wayIndex)
	rest.StreetMapRouter(r, streetMapSvc, m)

	fmt.Printf("\nroad network: %d nodes, %d ways", sm.NumNodes(), sm.NumWays())
	fmt.Printf("\nserver started at %s\n", *listenAddr)
	log.Fatal(http.ListenAndServe(*listenAddr, r))
}
