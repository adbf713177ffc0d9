package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/automoto/rocketview/physics"
	"github.com/automoto/rocketview/shared/arena"
	"github.com/automoto/rocketview/shared/messages"
	"github.com/coder/websocket"
)

// writeTimeout bounds a single frame write to a slow client.
const writeTimeout = time.Second

// Config describes one dev telemetry server.
type Config struct {
	Arena     *arena.Arena
	TickRate  int
	Settings  messages.Settings
	Autopilot bool
}

// Server runs a local simulation and streams it as telemetry frames to every
// connected websocket client. Clients never send anything back.
type Server struct {
	engine    physics.Engine
	arena     *arena.Arena
	settings  messages.Settings
	autopilot bool
	substeps  int
	loop      *GameLoop
	http      *http.Server

	simMu sync.Mutex // guards engine

	mu      sync.RWMutex
	clients map[*subscriber]struct{}
	ticks   uint64
	goals   [2]int
}

type subscriber struct {
	frames chan []byte // size-1 buffered; latest wins
	conn   *websocket.Conn
}

func NewServer(cfg Config) *Server {
	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	substeps := physics.TickRate / tickRate
	if substeps < 1 {
		substeps = 1
	}

	s := &Server{
		engine:    physics.NewArcade(cfg.Arena),
		arena:     cfg.Arena,
		settings:  cfg.Settings,
		autopilot: cfg.Autopilot,
		substeps:  substeps,
		clients:   make(map[*subscriber]struct{}),
	}
	s.loop = NewGameLoop(s, tickRate)
	return s
}

// Start runs the game loop and serves websocket clients on addr until Stop.
func (s *Server) Start(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return s.Serve(ln)
}

// Serve is Start on an existing listener.
func (s *Server) Serve(ln net.Listener) error {
	s.mu.Lock()
	s.http = &http.Server{Handler: s}
	srv := s.http
	s.mu.Unlock()

	go s.loop.Run()

	log.Printf("[server] streaming arena %q on %s", s.arena.Name, ln.Addr())
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

// Stop halts the game loop and drops every client.
func (s *Server) Stop() {
	s.loop.Stop()

	s.mu.Lock()
	srv := s.http
	clients := make([]*subscriber, 0, len(s.clients))
	for c := range s.clients {
		clients = append(clients, c)
	}
	s.mu.Unlock()

	var wg sync.WaitGroup
	for _, c := range clients {
		wg.Add(1)
		go func(conn *websocket.Conn) {
			defer wg.Done()
			_ = conn.Close(websocket.StatusGoingAway, "server shutting down")
		}(c.conn)
	}
	wg.Wait()
	if srv != nil {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}

// ServeHTTP upgrades the request and pushes frames until the client leaves.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		// Browser clients are served from another origin.
		InsecureSkipVerify: true,
	})
	if err != nil {
		log.Printf("[server] accept: %v", err)
		return
	}
	defer conn.CloseNow()

	sub := &subscriber{frames: make(chan []byte, 1), conn: conn}
	s.addClient(sub)
	defer s.removeClient(sub)

	// Inbound messages are not part of the protocol.
	ctx := conn.CloseRead(r.Context())
	for {
		select {
		case <-ctx.Done():
			return
		case data := <-sub.frames:
			if err := writeFrame(ctx, conn, data); err != nil {
				log.Printf("[server] client %s: %v", r.RemoteAddr, err)
				return
			}
		}
	}
}

func writeFrame(ctx context.Context, conn *websocket.Conn, data []byte) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	return conn.Write(ctx, websocket.MessageText, data)
}

func (s *Server) addClient(sub *subscriber) {
	s.mu.Lock()
	s.clients[sub] = struct{}{}
	n := len(s.clients)
	s.mu.Unlock()
	log.Printf("[server] client connected (%d total)", n)
}

func (s *Server) removeClient(sub *subscriber) {
	s.mu.Lock()
	delete(s.clients, sub)
	n := len(s.clients)
	s.mu.Unlock()
	log.Printf("[server] client disconnected (%d total)", n)
}

// Tick advances the simulation one server tick and broadcasts the result.
func (s *Server) Tick() {
	s.simMu.Lock()
	state := s.step()
	s.simMu.Unlock()

	settings := s.settings
	data, err := json.Marshal(messages.NewFrame(state, &settings))
	if err != nil {
		log.Printf("[server] encode frame: %v", err)
		return
	}

	s.mu.Lock()
	s.ticks++
	for c := range s.clients {
		select { // drain stale, push latest
		case <-c.frames:
		default:
		}
		c.frames <- data
	}
	s.mu.Unlock()
}

func (s *Server) step() physics.State {
	if s.autopilot {
		s.engine.SetControls(Autopilot(s.engine.State()))
	}
	s.engine.Step(s.substeps)

	state := s.engine.State()
	if g, ok := s.arena.GoalAt(state.BallPos[0], state.BallPos[2]); ok {
		s.scored(g)
		state = s.engine.State()
	}
	return state
}

// scored credits the team attacking goal g and restarts from kickoff.
func (s *Server) scored(g arena.Goal) {
	team := 1 - g.Team
	s.mu.Lock()
	s.goals[team]++
	score := s.goals
	s.mu.Unlock()

	log.Printf("[server] goal for team %d (%d-%d)", team, score[0], score[1])
	s.engine.ResetToKickoff()
}

// Score returns goals per team (0 blue, 1 orange).
func (s *Server) Score() [2]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.goals
}

func (s *Server) ClientCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

func (s *Server) Ticks() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ticks
}

// SetControls drives the car directly. It has no effect while the autopilot is on.
func (s *Server) SetControls(c physics.CarControls) {
	if s.autopilot {
		return
	}
	s.simMu.Lock()
	s.engine.SetControls(c)
	s.simMu.Unlock()
}
