// internal/httpserver/server.go
//
// HTTP shell around the game core.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs, access log).
//   - Public endpoints: "/", "/health", POST /game/new.
//   - Session endpoints (token required): GET /game, POST /game/keys, POST /game/reset.
//   - Board view rendering: rows, verdicts, status, banner.
//
// Notes:
//   - Raw key names are normalized by the input package; the server never
//     builds game events itself except Reset.
//   - Each session is its own single writer, so concurrent requests for one
//     game are applied in arrival order.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-clone/internal/config"
	"github.com/robalobadob/wordle/apps/go-clone/internal/game"
	"github.com/robalobadob/wordle/apps/go-clone/internal/input"
	"github.com/robalobadob/wordle/apps/go-clone/internal/session"
	"github.com/robalobadob/wordle/apps/go-clone/internal/store"
)

// Server bundles router, session registry, and the answer source.
type Server struct {
	r      *chi.Mux
	store  store.Store
	src    game.AnswerSource
	tokens *tokens
	cfg    *config.Config
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, src game.AnswerSource, cfg *config.Config) (*Server, error) {
	tk, err := newTokens(cfg.Session.Secret, cfg.Session.TTL)
	if err != nil {
		return nil, err
	}
	s := &Server{r: chi.NewRouter(), store: st, src: src, tokens: tk, cfg: cfg}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                   // add X-Request-ID
	s.r.Use(chimw.RealIP)                      // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(accessLog)                         // zerolog request line
	s.r.Use(chimw.Recoverer)                   // recover from panics
	s.r.Use(chimw.Timeout(cfg.RequestTimeout)) // bound handler time
	s.r.Use(jsonContentType)                   // default JSON responses
	s.r.Use(corsFor(cfg.ClientOrigin))         // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordle-go","endpoints":["/health","POST /game/new","GET /game","POST /game/keys","POST /game/reset"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	// --- game ---
	s.r.Route("/game", func(r chi.Router) {
		r.Post("/new", s.handleNewGame)
		r.Group(func(r chi.Router) {
			r.Use(s.requireSession)
			r.Get("/", s.handleBoard)
			r.Post("/keys", s.handleKeys)
			r.Post("/reset", s.handleReset)
		})
	})

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	return s, nil
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv.ListenAndServe()
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsFor enables credentialed CORS for a single origin.
func corsFor(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// accessLog writes one zerolog line per request.
func accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("elapsed", time.Since(start)).
			Str("requestId", chimw.GetReqID(r.Context())).
			Msg("request")
	})
}

// ctxSessionKey is the context key type for the caller's *session.Session.
type ctxSessionKey struct{}

// requireSession resolves the caller's token to a live session.
func (s *Server) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tok := bearerOrCookie(r, s.cfg.Session.CookieName)
		if tok == "" {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		id, err := s.tokens.parse(tok)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Invalid token")
			return
		}
		sess, err := s.store.Get(r.Context(), id)
		if err != nil {
			if !errors.Is(err, store.ErrNotFound) {
				log.Error().Err(err).Str("session", id).Msg("load session")
			}
			writeError(w, http.StatusNotFound, "not_found")
			return
		}
		ctx := context.WithValue(r.Context(), ctxSessionKey{}, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func sessionFrom(ctx context.Context) *session.Session {
	sess, _ := ctx.Value(ctxSessionKey{}).(*session.Session)
	return sess
}

// ------------------------------ GAME ---------------------------------------

// boardRes is the read-only view of a game sent after every request.
type boardRes struct {
	Token      string      `json:"token,omitempty"`
	Rows       []game.Row  `json:"rows"`
	Status     game.Status `json:"status"`
	CurrentRow int         `json:"currentRow"` // -1 once every row is used
	Guesses    int         `json:"guesses"`
	Banner     string      `json:"banner,omitempty"`
	Answer     game.Word   `json:"answer,omitempty"` // revealed only once finished
}

func boardView(st game.State) boardRes {
	res := boardRes{
		Rows:       st.Rows(),
		Status:     st.Status,
		CurrentRow: st.CurrentRow(),
		Guesses:    len(st.History),
		Banner:     st.Banner(),
	}
	if st.Status.Terminal() {
		res.Answer = st.Answer
	}
	return res
}

// handleNewGame draws a fresh game, registers it, and issues a session token
// (both in the body and as a cookie).
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	if n := s.store.Sweep(r.Context(), time.Now().Add(-s.cfg.Session.TTL)); n > 0 {
		log.Info().Int("sessions", n).Msg("swept idle sessions")
	}

	sess, err := session.New(uuid.NewString(), s.src)
	if err != nil {
		log.Error().Err(err).Msg("start game")
		writeError(w, http.StatusInternalServerError, "no_answer")
		return
	}
	if err := s.store.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save session")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}

	tok, exp, err := s.tokens.sign(sess.ID)
	if err != nil {
		log.Error().Err(err).Msg("sign session token")
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return
	}
	s.setSessionCookie(w, tok, exp)

	res := boardView(sess.Snapshot())
	res.Token = tok
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(res)
}

// handleBoard returns the caller's current board.
func (s *Server) handleBoard(w http.ResponseWriter, r *http.Request) {
	_ = json.NewEncoder(w).Encode(boardView(sessionFrom(r.Context()).Snapshot()))
}

// keysReq carries raw key names, e.g. ["c","r","a","n","e","Enter"].
type keysReq struct {
	Keys []string `json:"keys"`
}

// handleKeys normalizes and applies keys in order. Ignored keys and
// out-of-turn input are silently dropped by the game.
func (s *Server) handleKeys(w http.ResponseWriter, r *http.Request) {
	var req keysReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	st, err := sessionFrom(r.Context()).HandleAll(input.FromKeys(req.Keys))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "apply_failed")
		return
	}
	_ = json.NewEncoder(w).Encode(boardView(st))
}

// handleReset replaces the caller's game with a freshly drawn one.
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	st, err := sessionFrom(r.Context()).Handle(game.ResetEvent())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "no_answer")
		return
	}
	_ = json.NewEncoder(w).Encode(boardView(st))
}

// ------------------------------- util --------------------------------------

// setSessionCookie writes the session token cookie.
func (s *Server) setSessionCookie(w http.ResponseWriter, token string, exp time.Time) {
	sameSite := http.SameSiteLaxMode
	if s.cfg.Session.Secure {
		sameSite = http.SameSiteNoneMode // required for third-party contexts when Secure
	}
	http.SetCookie(w, &http.Cookie{
		Name:     s.cfg.Session.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.cfg.Session.Secure,
		SameSite: sameSite,
		Expires:  exp,
	})
}

// writeError emits {"error": code} with the given status.
func writeError(w http.ResponseWriter, status int, code string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
}
