package main

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/Flokey82/gencoastline"
	"github.com/Flokey82/gencoastline/display"
	"github.com/Flokey82/gencoastline/mesh"
	"github.com/Flokey82/gencoastline/various"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type terrainKey struct {
	seed          int64
	width, height int
}

// server generates terrains on demand and keeps the most recent ones.
type server struct {
	cfg     *gencoastline.Config
	maxSize int

	mu       sync.Mutex
	cache    map[terrainKey]*gencoastline.Terrain
	order    []terrainKey
	maxCache int
}

func newServer(cfg *gencoastline.Config, maxSize, maxCache int) *server {
	return &server{
		cfg:      cfg,
		maxSize:  maxSize,
		cache:    make(map[terrainKey]*gencoastline.Terrain),
		maxCache: maxCache,
	}
}

func (s *server) router() *mux.Router {
	router := mux.NewRouter()
	router.Use(requestIDMiddleware)
	t := router.PathPrefix("/terrain/{seed}/{w}/{h}").Subrouter()
	t.HandleFunc("/image.png", s.imageHandler)
	t.HandleFunc("/heightmap", s.heightMapHandler)
	t.HandleFunc("/mesh.obj", s.meshHandler)
	t.HandleFunc("/coastline.geojson", s.geoJSONHandler)
	t.HandleFunc("/weights/{x}/{y}", s.weightsHandler)
	return router
}

// requestIDMiddleware tags every request with an id and logs it.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		id := uuid.NewString()
		res.Header().Set("X-Request-Id", id)
		start := time.Now()
		next.ServeHTTP(res, req)
		log.Println(id, req.Method, req.URL.Path, time.Since(start).String())
	})
}

// terrain returns the terrain addressed by the request, generating it if it
// isn't cached. The returned status is meaningful only if err is set.
func (s *server) terrain(req *http.Request) (*gencoastline.Terrain, int, error) {
	vars := mux.Vars(req)
	seed, err := strconv.ParseInt(vars["seed"], 10, 64)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	w, err := strconv.Atoi(vars["w"])
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	h, err := strconv.Atoi(vars["h"])
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	if w <= 0 || h <= 0 || w > s.maxSize || h > s.maxSize {
		return nil, http.StatusBadRequest, fmt.Errorf("size %dx%d outside 1..%d", w, h, s.maxSize)
	}
	key := terrainKey{seed: seed, width: w, height: h}

	s.mu.Lock()
	t, ok := s.cache[key]
	s.mu.Unlock()
	if ok {
		return t, http.StatusOK, nil
	}

	t, err = gencoastline.NewTerrainFromConfig(seed, w, h, s.cfg)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.cache[key]; !ok {
		s.cache[key] = t
		s.order = append(s.order, key)
		for len(s.order) > s.maxCache {
			delete(s.cache, s.order[0])
			s.order = s.order[1:]
		}
	}
	return t, http.StatusOK, nil
}

func (s *server) imageHandler(res http.ResponseWriter, req *http.Request) {
	t, status, err := s.terrain(req)
	if err != nil {
		http.Error(res, err.Error(), status)
		return
	}
	// Get the url parameter 'mode'.
	mode := req.URL.Query().Get("mode")
	if mode == "" {
		mode = gencoastline.DisplayRamp
	}

	// get the url parameter 'overlay'.
	overlay := req.URL.Query().Get("overlay") == "true"

	img, err := t.Image(mode, overlay)
	if err != nil {
		http.Error(res, err.Error(), http.StatusBadRequest)
		return
	}
	buffer := new(bytes.Buffer)
	if err := display.WritePNG(buffer, img); err != nil {
		log.Println("unable to encode image.")
		http.Error(res, err.Error(), http.StatusInternalServerError)
		return
	}
	res.Header().Set("Content-Type", "image/png")
	res.Header().Set("Content-Length", strconv.Itoa(buffer.Len()))
	if _, err := res.Write(buffer.Bytes()); err != nil {
		log.Println("unable to write image.")
	}
}

func (s *server) heightMapHandler(res http.ResponseWriter, req *http.Request) {
	t, status, err := s.terrain(req)
	if err != nil {
		http.Error(res, err.Error(), status)
		return
	}

	// GZIP the data.
	var b bytes.Buffer
	w := gzip.NewWriter(&b)
	if err := various.WriteFloat32Slice(w, t.Data); err != nil {
		http.Error(res, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := w.Close(); err != nil {
		http.Error(res, err.Error(), http.StatusInternalServerError)
		return
	}
	writeBinary(res, b.Bytes(), "gzip")
}

func (s *server) meshHandler(res http.ResponseWriter, req *http.Request) {
	t, status, err := s.terrain(req)
	if err != nil {
		http.Error(res, err.Error(), status)
		return
	}
	lod := s.cfg.LevelOfDetail
	if l := req.URL.Query().Get("lod"); l != "" {
		if lod, err = strconv.Atoi(l); err != nil {
			http.Error(res, err.Error(), http.StatusBadRequest)
			return
		}
	}
	m, err := mesh.Generate(t.ElevationField, s.cfg.HeightMultiplier, mesh.LinearCurve(), lod)
	if err != nil {
		http.Error(res, err.Error(), http.StatusBadRequest)
		return
	}
	var b bytes.Buffer
	if err := m.WriteOBJ(&b); err != nil {
		http.Error(res, err.Error(), http.StatusInternalServerError)
		return
	}
	res.Header().Set("Content-Type", "model/obj")
	res.Header().Set("Content-Length", strconv.Itoa(b.Len()))
	res.Write(b.Bytes())
}

func (s *server) geoJSONHandler(res http.ResponseWriter, req *http.Request) {
	t, status, err := s.terrain(req)
	if err != nil {
		http.Error(res, err.Error(), status)
		return
	}
	data, err := t.CoastlineGeoJSON()
	if err != nil {
		http.Error(res, err.Error(), http.StatusInternalServerError)
		return
	}
	res.Header().Set("Content-Type", "application/json")
	res.Header().Set("Content-Length", strconv.Itoa(len(data)))
	res.Write(data)
}

type cellWeights struct {
	X       int                `json:"x"`
	Y       int                `json:"y"`
	Weights map[string]float64 `json:"weights"`
}

func (s *server) weightsHandler(res http.ResponseWriter, req *http.Request) {
	t, status, err := s.terrain(req)
	if err != nil {
		http.Error(res, err.Error(), status)
		return
	}
	vars := mux.Vars(req)
	x, errX := strconv.Atoi(vars["x"])
	y, errY := strconv.Atoi(vars["y"])
	r := t.Weights.Resolution
	if errX != nil || errY != nil || x < 0 || y < 0 || x >= r || y >= r {
		http.Error(res, fmt.Sprintf("cell outside the %dx%d material map", r, r), http.StatusBadRequest)
		return
	}
	cw := cellWeights{X: x, Y: y, Weights: make(map[string]float64)}
	for i, v := range t.Weights.At(x, y) {
		cw.Weights[t.Rules.Layers[i].Name] = v
	}
	data, err := json.Marshal(cw)
	if err != nil {
		http.Error(res, err.Error(), http.StatusInternalServerError)
		return
	}
	res.Header().Set("Content-Type", "application/json")
	res.Write(data)
}

func writeBinary(res http.ResponseWriter, data []byte, encoding string) {
	res.Header().Set("Content-Type", "application/octet-stream")
	if encoding != "" {
		res.Header().Set("Content-Encoding", encoding)
	}
	res.Header().Set("Content-Length", strconv.Itoa(len(data)))
	res.Header().Set("Access-Control-Allow-Origin", "*")
	res.Header().Set("Access-Control-Allow-Headers", "Origin, X-Requested-With, Content-Type, Accept")
	res.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
	res.Write(data)
}
