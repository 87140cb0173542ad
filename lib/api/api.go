// Package api serves stats, metrics and a remote quit button for the
// running tutorial.
//
//	@title			learnopengl
//	@version		1.0
//	@description	Inspect and control a running OpenGL tutorial.
//	@BasePath		/
package api

//go:generate go tool swag init --dir . --generalInfo api.go --output docs --outputTypes go --parseDependency

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	_ "github.com/learnopengl-go/learnopengl/lib/api/docs"
	"github.com/learnopengl-go/learnopengl/lib/config"
	"github.com/learnopengl-go/learnopengl/lib/metrics"
	"github.com/learnopengl-go/learnopengl/lib/stats"
	httpSwagger "github.com/swaggo/http-swagger"
)

// TutorialInfo describes the tutorial currently being rendered.
type TutorialInfo struct {
	ID   string `json:"id" example:"1_2_1"`
	Name string `json:"name" example:"hello_triangle"`
}

type Api struct {
	srv      http.Server
	mux      *http.ServeMux
	cfg      *config.ApiCfg
	info     TutorialInfo
	shutdown func()

	Stats *stats.Stats

	wsClients      map[*websocket.Conn]bool
	wsClientsMutex sync.Mutex

	// StatsInterval is how often websocket clients receive stats
	StatsInterval time.Duration
}

// New builds the API. shutdown is called when a client asks the
// tutorial to quit; it must be safe to call from any goroutine.
func New(cfg *config.ApiCfg, info TutorialInfo, st *stats.Stats, shutdown func()) *Api {
	a := &Api{}
	a.cfg = cfg
	a.info = info
	a.shutdown = shutdown
	a.Stats = st
	a.StatsInterval = 2 * time.Second
	a.wsClients = make(map[*websocket.Conn]bool)

	a.mux = http.NewServeMux()
	a.mux.Handle("/metrics", metrics.Handler())
	a.mux.HandleFunc("/api/stats", a.getStats)
	a.mux.HandleFunc("/api/tutorial", a.getTutorial)
	a.mux.HandleFunc("/api/kill", a.kill)
	a.mux.HandleFunc("/api/ws", a.handleWebsocket)
	a.mux.Handle("/swagger/", httpSwagger.WrapHandler)

	a.srv.Addr = cfg.Bind
	a.srv.Handler = a.mux
	return a
}

func (a *Api) Handler() http.Handler {
	return a.mux
}

func (a *Api) Serve() error {
	return a.srv.ListenAndServe()
}

// @Summary	Current render statistics
// @Router		/api/stats [get]
// @Tags		base
// @Produce	json
// @Success	200	{object}	stats.Stats
func (a *Api) getStats(w http.ResponseWriter, _ *http.Request) {
	snapshot := a.Stats.Snapshot()
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(&snapshot)
	if err != nil {
		http.Error(w, fmt.Sprintf("could not encode stats: %s", err), http.StatusInternalServerError)
		return
	}
}

// @Summary	The tutorial being rendered
// @Router		/api/tutorial [get]
// @Tags		base
// @Produce	json
// @Success	200	{object}	TutorialInfo
func (a *Api) getTutorial(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(a.info)
	if err != nil {
		http.Error(w, fmt.Sprintf("could not encode tutorial: %s", err), http.StatusInternalServerError)
		return
	}
}

// @Summary	Close the window and end the tutorial
// @Router		/api/kill [post]
// @Tags		base
// @Success	200
// @Failure	405	{string}	string	"Only POST is supported"
func (a *Api) kill(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodPost {
		http.Error(w, "Invalid method, only POST supported", http.StatusMethodNotAllowed)
		return
	}
	slog.Info("closing window as per api request", slog.String("module", "api"))
	a.shutdown()
	_, err := fmt.Fprintf(w, "\"ok\"\n")
	if err != nil {
		slog.Warn(fmt.Sprintf("could not write response: %s", err), slog.String("module", "api"))
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(req *http.Request) bool {
		return true
	},
}

// @Summary	Open websocket for realtime render statistics
// @Router		/api/ws [get]
// @Param		Upgrade	header	string	true	"websocket"
// @Tags		base
// @Success	101
func (a *Api) handleWebsocket(w http.ResponseWriter, req *http.Request) {
	ws, err := upgrader.Upgrade(w, req, nil)
	if err != nil {
		// Upgrade has already replied with an error
		return
	}
	defer func(ws *websocket.Conn) {
		_ = ws.Close()
	}(ws)

	a.setClient(ws, true)
	defer a.setClient(ws, false)

	done := make(chan struct{})
	defer close(done)
	go a.websocketWriter(ws, done)

	for {
		_, _, err := ws.ReadMessage()
		if err != nil {
			return
		}
	}
}

func (a *Api) setClient(ws *websocket.Conn, connected bool) {
	a.wsClientsMutex.Lock()
	defer a.wsClientsMutex.Unlock()
	if connected {
		a.wsClients[ws] = true
	} else {
		delete(a.wsClients, ws)
	}
	a.Stats.SetWsClients(len(a.wsClients))
}

func (a *Api) websocketWriter(ws *websocket.Conn, done <-chan struct{}) {
	ticker := time.NewTicker(a.StatsInterval)
	defer ticker.Stop()

	timeout := 10 * time.Second
	for {
		snapshot := a.Stats.Snapshot()
		packet, err := json.Marshal(&snapshot)
		if err != nil {
			return
		}
		err = ws.SetWriteDeadline(time.Now().Add(timeout))
		if err != nil {
			return
		}
		if err := ws.WriteMessage(websocket.TextMessage, packet); err != nil {
			return
		}

		select {
		case <-done:
			return
		case <-ticker.C:
		}
	}
}

// ServeInBackground starts the API when it is configured and returns nil
// otherwise.
func ServeInBackground(cfg *config.ApiCfg, info TutorialInfo, st *stats.Stats, shutdown func()) *Api {
	if cfg == nil {
		return nil
	}
	theApi := New(cfg, info, st, shutdown)

	slog.Info(fmt.Sprintf("starting web server on %s", cfg.Bind), slog.String("module", "api"))
	go func() {
		err := theApi.Serve()
		if err != nil {
			slog.Error(fmt.Sprintf("web server stopped: %s", err), slog.String("module", "api"))
		}
	}()
	return theApi
}
