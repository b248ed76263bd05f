package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	_ "github.com/joho/godotenv/autoload"
)

type StatusResponse struct {
	Settings        GameSettingsDTO   `json:"settings"`
	Config          Config            `json:"config"`
	Board           [][]string        `json:"board"`
	NextPlayer      string            `json:"next_player"`
	Winner          string            `json:"winner"`
	Status          string            `json:"status"`
	History         []historyEntryDTO `json:"history"`
	CapturedByLight CaptureTally      `json:"captured_by_light"`
	CapturedByDark  CaptureTally      `json:"captured_by_dark"`
	TurnStartedAtMs int64             `json:"turn_started_at_ms"`
}

type GameSettingsDTO struct {
	TopColor string `json:"top_color"`
}

type apiMove struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type moveResponse struct {
	Accepted bool           `json:"accepted"`
	Captured string         `json:"captured,omitempty"`
	Status   StatusResponse `json:"status"`
}

type historyEntryDTO struct {
	From      string  `json:"from"`
	To        string  `json:"to"`
	Player    string  `json:"player"`
	Captured  string  `json:"captured,omitempty"`
	ElapsedMs float64 `json:"elapsed_ms"`
}

type historyPayload struct {
	History []historyEntryDTO `json:"history"`
}

type resetPayload struct {
	Board           [][]string        `json:"board"`
	NextPlayer      string            `json:"next_player"`
	Winner          string            `json:"winner"`
	Status          string            `json:"status"`
	History         []historyEntryDTO `json:"history"`
	TurnStartedAtMs int64             `json:"turn_started_at_ms"`
}

type settingsPayload struct {
	Settings GameSettingsDTO `json:"settings"`
	Config   Config          `json:"config"`
}

func main() {
	controller := NewGameController(DefaultGameSettings())
	loadSavedGame(controller)

	var persistOnce sync.Once
	persistOnShutdown := func(reason string) {
		persistOnce.Do(func() {
			log.Printf("[backend] persisting game on %s", reason)
			saveGame(controller)
		})
	}
	defer func() {
		if recovered := recover(); recovered != nil {
			log.Printf("[backend] panic recovered in main: %v", recovered)
			persistOnShutdown("panic")
		}
	}()
	defer persistOnShutdown("exit")

	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx.Done())

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/api/ping", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})

	r.Get("/api/status", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, controllerStatus(controller))
	})

	r.Post("/api/start", func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Settings GameSettingsDTO `json:"settings"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		settings := settingsFromDTO(payload.Settings, DefaultGameSettings())
		controller.StartGame(settings)
		writeJSON(w, http.StatusOK, controllerStatus(controller))
		hub.broadcastReset <- resetFromController(controller)
	})

	r.Post("/api/stop", func(w http.ResponseWriter, r *http.Request) {
		settings := controller.Settings()
		controller.Reset(settings)
		writeJSON(w, http.StatusOK, controllerStatus(controller))
		hub.broadcastReset <- resetFromController(controller)
	})

	r.Post("/api/settings", func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Config *Config `json:"config"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		if payload.Config != nil {
			configStore.Update(*payload.Config)
		}
		hub.broadcastSettings <- settingsPayload{
			Settings: settingsToDTO(controller.Settings()),
			Config:   GetConfig(),
		}
		writeJSON(w, http.StatusOK, controllerStatus(controller))
	})

	r.Post("/api/move", func(w http.ResponseWriter, r *http.Request) {
		var payload apiMove
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		from, okFrom := ParseSquare(payload.From)
		to, okTo := ParseSquare(payload.To)
		if !okFrom || !okTo {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid square"})
			return
		}
		applied, errMsg := controller.ApplyMove(Move{From: from, To: to})
		if !applied {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": errMsg})
			return
		}
		captured := ""
		if entry, ok := controller.LatestHistoryEntry(); ok {
			if entry.Captured != KindNone {
				captured = entry.Captured.String()
			}
			hub.broadcastHistory <- historyPayload{History: []historyEntryDTO{historyEntryToDTO(entry)}}
		}
		hub.broadcastStatus <- controllerStatus(controller)
		writeJSON(w, http.StatusOK, moveResponse{
			Accepted: true,
			Captured: captured,
			Status:   controllerStatus(controller),
		})
	})

	r.Get("/ws/", func(w http.ResponseWriter, r *http.Request) {
		serveWS(hub, controller, w, r)
	})

	server := &http.Server{
		Addr:    GetConfig().ListenAddr,
		Handler: r,
	}
	serverErrCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrCh <- err
		}
		close(serverErrCh)
	}()

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	log.Printf("[backend] listening on %s", server.Addr)
	var runErr error
	select {
	case <-sigCtx.Done():
		log.Printf("[backend] shutdown signal received: %v", sigCtx.Err())
	case err, ok := <-serverErrCh:
		if ok {
			runErr = err
			log.Printf("[backend] server error: %v", err)
		}
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Printf("[backend] graceful shutdown failed: %v", err)
		if closeErr := server.Close(); closeErr != nil && !errors.Is(closeErr, http.ErrServerClosed) {
			log.Printf("[backend] forced close failed: %v", closeErr)
		}
	}

	cancel()
	persistOnShutdown("shutdown")
	if runErr != nil {
		log.Printf("[backend] exiting after server error: %v", runErr)
	}
}

func serveWS(hub *Hub, controller *GameController, w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	client := &Client{hub: hub, send: make(chan []byte, 16)}
	hub.Register(client)

	status := controllerStatus(controller)
	client.sendJSON(wsMessage{Type: "status", Payload: mustMarshal(status)})

	go func() {
		defer conn.Close()
		if err := writeWSWithHeartbeat(conn, client.send); err != nil {
			return
		}
	}()

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			hub.Unregister(client)
			return
		}
		var msg wsMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			continue
		}
		switch msg.Type {
		case "request_status":
			status := controllerStatus(controller)
			client.sendJSON(wsMessage{Type: "status", Payload: mustMarshal(status)})
		}
	}
}

func controllerStatus(controller *GameController) StatusResponse {
	state := controller.State()
	return StatusResponse{
		Settings:        settingsToDTO(controller.Settings()),
		Config:          GetConfig(),
		Board:           boardToSlice(state.Board),
		NextPlayer:      colorToString(state.ToMove),
		Winner:          winnerString(state),
		Status:          state.Status.String(),
		History:         historyToDTO(controller.History()),
		CapturedByLight: state.CapturedByLight,
		CapturedByDark:  state.CapturedByDark,
		TurnStartedAtMs: controller.CurrentTurnStartedAtMs(),
	}
}

func resetFromController(controller *GameController) resetPayload {
	state := controller.State()
	return resetPayload{
		Board:           boardToSlice(state.Board),
		NextPlayer:      colorToString(state.ToMove),
		Winner:          winnerString(state),
		Status:          state.Status.String(),
		History:         historyToDTO(controller.History()),
		TurnStartedAtMs: controller.CurrentTurnStartedAtMs(),
	}
}

// boardToSlice encodes pieces as letters, uppercase for Light and
// lowercase for Dark, empty squares as "".
func boardToSlice(board Board) [][]string {
	rows := make([][]string, boardSize)
	for row := 0; row < boardSize; row++ {
		rows[row] = make([]string, boardSize)
		for col := 0; col < boardSize; col++ {
			rows[row][col] = pieceToLetter(board.At(Square{Row: row, Col: col}))
		}
	}
	return rows
}

func pieceToLetter(piece Piece) string {
	if piece.IsEmpty() {
		return ""
	}
	letter := piece.Kind.Letter()
	if piece.Color == Dark {
		return strings.ToLower(letter)
	}
	return letter
}

func colorToString(color Color) string {
	if color == Light {
		return "light"
	}
	return "dark"
}

func colorFromString(value string, fallback Color) Color {
	switch value {
	case "light":
		return Light
	case "dark":
		return Dark
	default:
		return fallback
	}
}

func winnerString(state GameState) string {
	if winner, ok := state.Winner(); ok {
		return colorToString(winner)
	}
	return ""
}

func settingsFromDTO(dto GameSettingsDTO, base GameSettings) GameSettings {
	settings := base
	settings.TopColor = colorFromString(dto.TopColor, base.TopColor)
	return settings
}

func settingsToDTO(settings GameSettings) GameSettingsDTO {
	return GameSettingsDTO{TopColor: colorToString(settings.TopColor)}
}

func historyToDTO(history MoveHistory) []historyEntryDTO {
	entries := history.All()
	result := make([]historyEntryDTO, 0, len(entries))
	for _, entry := range entries {
		result = append(result, historyEntryToDTO(entry))
	}
	return result
}

func historyEntryToDTO(entry HistoryEntry) historyEntryDTO {
	captured := ""
	if entry.Captured != KindNone {
		captured = entry.Captured.String()
	}
	return historyEntryDTO{
		From:      entry.Move.From.String(),
		To:        entry.Move.To.String(),
		Player:    colorToString(entry.Player),
		Captured:  captured,
		ElapsedMs: entry.ElapsedMs,
	}
}

func mustMarshal(v any) json.RawMessage {
	data, _ := json.Marshal(v)
	return data
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
