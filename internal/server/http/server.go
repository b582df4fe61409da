package httpserver

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/leynos/crockford/internal/config"
	"github.com/leynos/crockford/internal/journal"
	"github.com/leynos/crockford/pkg/cuuid"
	"github.com/leynos/crockford/pkg/log"
)

type Server struct {
	cfg    config.Config
	jr     *journal.Journal
	gen    *cuuid.Generator
	logger log.Logger
	srv    *http.Server
	lis    net.Listener
}

func New(cfg config.Config, jr *journal.Journal, logger log.Logger) *Server {
	mux := http.NewServeMux()
	s := &Server{
		cfg:    cfg,
		jr:     jr,
		gen:    cuuid.NewGenerator(),
		logger: logger.With(log.Component("http")),
		srv:    &http.Server{Handler: cors(mux)},
	}
	mux.HandleFunc("/v1/healthz", s.handleHealth)
	mux.HandleFunc("/v1/ids", s.handleMint)
	mux.HandleFunc("/v1/ids/decode", s.handleDecode)
	mux.HandleFunc("/v1/ids/lookup", s.handleLookup)
	mux.HandleFunc("/v1/ids/recent", s.handleRecent)
	return s
}

func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	s.lis = l
	errCh := make(chan error, 1)
	go func() { errCh <- s.srv.Serve(l) }()
	select {
	case <-ctx.Done():
		cctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.srv.Shutdown(cctx)
		return nil
	case err := <-errCh:
		return err
	}
}

func (s *Server) Close() {
	if s.lis != nil {
		_ = s.lis.Close()
	}
}

// Addr returns the bound listen address, once serving.
func (s *Server) Addr() string {
	if s.lis == nil {
		return ""
	}
	return s.lis.Addr().String()
}

func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type mintReq struct {
	Version string `json:"version"`
	Count   int    `json:"count"`
}

type mintResp struct {
	IDs []string `json:"ids"`
}

func (s *Server) handleMint(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	req := mintReq{Version: "v4", Count: 1}
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}
	if req.Count < 1 {
		req.Count = 1
	}
	if req.Count > s.cfg.MaxMintCount {
		writeError(w, http.StatusBadRequest, "count exceeds limit "+strconv.Itoa(s.cfg.MaxMintCount))
		return
	}

	var version int
	switch req.Version {
	case "", "v4":
		version = 4
	case "v7":
		version = 7
	default:
		writeError(w, http.StatusBadRequest, "version must be v4 or v7")
		return
	}

	ids := make([]string, 0, req.Count)
	for i := 0; i < req.Count; i++ {
		var (
			id  cuuid.UUID
			err error
		)
		if version == 7 {
			id, err = s.gen.Next()
		} else {
			id, err = cuuid.New()
		}
		if err != nil {
			s.logger.Error("mint failed", log.Err(err))
			writeError(w, http.StatusInternalServerError, "mint failed")
			return
		}
		if err := s.jr.Append(id, journal.Entry{Version: version, MintedAt: time.Now().UTC()}); err != nil {
			s.logger.Error("journal append failed", log.Err(err))
			writeError(w, http.StatusInternalServerError, "journal write failed")
			return
		}
		ids = append(ids, id.String())
	}
	s.logger.Debug("minted", log.Int("count", len(ids)), log.Str("version", req.Version))
	writeJSON(w, http.StatusCreated, mintResp{IDs: ids})
}

type decodeReq struct {
	ID string `json:"id"`
}

type idView struct {
	Canonical string `json:"canonical"`
	UUID      string `json:"uuid"`
	Bytes     string `json:"bytes"`
}

func (s *Server) handleDecode(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var req decodeReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	id, err := cuuid.Parse(req.ID)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, idView{
		Canonical: id.String(),
		UUID:      id.UUID().String(),
		Bytes:     base64.StdEncoding.EncodeToString(id.Bytes()),
	})
}

type lookupResp struct {
	ID       string    `json:"id"`
	Version  int       `json:"version"`
	MintedAt time.Time `json:"minted_at"`
}

func (s *Server) handleLookup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	id, err := cuuid.Parse(r.URL.Query().Get("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	e, err := s.jr.Lookup(id)
	if err != nil {
		if errors.Is(err, journal.ErrNotFound) {
			writeError(w, http.StatusNotFound, "identifier not minted here")
			return
		}
		s.logger.Error("journal lookup failed", log.Err(err))
		writeError(w, http.StatusInternalServerError, "journal read failed")
		return
	}
	writeJSON(w, http.StatusOK, lookupResp{ID: id.String(), Version: e.Version, MintedAt: e.MintedAt})
}

func (s *Server) handleRecent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	n := 10
	if v := r.URL.Query().Get("n"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 {
			writeError(w, http.StatusBadRequest, "n must be a positive integer")
			return
		}
		n = parsed
	}
	if n > s.cfg.RecentLimit {
		n = s.cfg.RecentLimit
	}
	recs, err := s.jr.Recent(n)
	if err != nil {
		s.logger.Error("journal recent failed", log.Err(err))
		writeError(w, http.StatusInternalServerError, "journal read failed")
		return
	}
	out := make([]lookupResp, 0, len(recs))
	for _, rec := range recs {
		out = append(out, lookupResp{ID: rec.ID.String(), Version: rec.Entry.Version, MintedAt: rec.Entry.MintedAt})
	}
	writeJSON(w, http.StatusOK, map[string]any{"ids": out})
}
