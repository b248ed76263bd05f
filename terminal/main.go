package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/joho/godotenv/autoload"
)

const (
	ansiClear      = "\033[2J"
	ansiHome       = "\033[H"
	ansiLightPiece = "\033[1;37m"
	ansiDarkPiece  = "\033[1;34m"
	ansiReset      = "\033[0m"
)

type client struct {
	httpClient      *http.Client
	baseURL         string
	logger          *log.Logger
	flickerInterval time.Duration
	in              *bufio.Scanner
}

type captureTally struct {
	Pawns   int `json:"pawns"`
	Knights int `json:"knights"`
	Bishops int `json:"bishops"`
	Rooks   int `json:"rooks"`
	Queens  int `json:"queens"`
}

type statusResponse struct {
	Board           [][]string   `json:"board"`
	NextPlayer      string       `json:"next_player"`
	Winner          string       `json:"winner"`
	Status          string       `json:"status"`
	CapturedByLight captureTally `json:"captured_by_light"`
	CapturedByDark  captureTally `json:"captured_by_dark"`
	Config          struct {
		FlickerIntervalMs int `json:"flicker_interval_ms"`
	} `json:"config"`
}

type moveRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func main() {
	logger, closeLog, err := buildLogger(getenv("TERMINAL_LOG_PATH", "logs/terminal.log"))
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer closeLog()

	c := &client{
		httpClient:      &http.Client{Timeout: 10 * time.Second},
		baseURL:         getenv("BACKEND_URL", "http://localhost:8080"),
		logger:          logger,
		flickerInterval: time.Duration(getenvInt("FLICKER_INTERVAL_MS", 400)) * time.Millisecond,
		in:              bufio.NewScanner(os.Stdin),
	}
	c.logf("terminal client started. backend=%s", c.baseURL)

	status, err := c.getStatus()
	if err != nil {
		fmt.Printf("cannot reach backend at %s: %v\n", c.baseURL, err)
		os.Exit(1)
	}
	if status.Config.FlickerIntervalMs > 0 {
		c.flickerInterval = time.Duration(status.Config.FlickerIntervalMs) * time.Millisecond
	}
	if status.Status == "not_started" {
		if status, err = c.startGame(); err != nil {
			fmt.Printf("cannot start game: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Print(ansiClear)
	c.render(status, -1, -1, false)

	for {
		if status.Status == "checkmate" || status.Status == "stalemate" {
			c.printResult(status)
			fmt.Print("\nPress Enter for a new game (or type quit): ")
			if line, ok := c.readLine(); !ok || strings.EqualFold(strings.TrimSpace(line), "quit") {
				return
			}
			newStatus, err := c.startGame()
			if err != nil {
				fmt.Printf("cannot start game: %v\n", err)
				return
			}
			status = newStatus
			fmt.Print(ansiClear)
			c.render(status, -1, -1, false)
			continue
		}

		fmt.Printf("\n%s to move. Piece to move: ", status.NextPlayer)
		from, quit := c.readSquare()
		if quit {
			return
		}

		fmt.Print(ansiHome + ansiClear)
		stopFlicker := c.startFlicker(status, from)

		to, quit := c.readSquare()
		stopFlicker()
		if quit {
			return
		}

		newStatus, errMsg, err := c.postMove(from, to)
		if err != nil {
			fmt.Printf("\nbackend error: %v\n", err)
			return
		}
		if errMsg != "" {
			fmt.Print(ansiHome + ansiClear)
			c.render(status, -1, -1, false)
			fmt.Printf("\nIllegal Move! Press Enter to continue...")
			c.readLine()
			fmt.Print(ansiHome + ansiClear)
			c.render(status, -1, -1, false)
			continue
		}
		status = newStatus
		fmt.Print(ansiHome + ansiClear)
		c.render(status, -1, -1, false)
		if status.Status == "check" {
			fmt.Printf("\n%s is in check!\n", status.NextPlayer)
		}
	}
}

// startFlicker redraws the board on an interval, alternately hiding the
// selected square for visual confirmation. The returned stop function
// cancels the goroutine and waits for its final frame.
func (c *client) startFlicker(status statusResponse, selected string) func() {
	row, col, ok := squareToCoords(selected)
	if !ok {
		return func() {}
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		hide := false
		ticker := time.NewTicker(c.flickerInterval)
		defer ticker.Stop()
		for {
			c.render(status, row, col, hide)
			fmt.Print("\nMove to: ")
			hide = !hide
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
	return func() {
		cancel()
		<-done
	}
}

// render builds the whole frame in one buffer so the terminal gets a
// single write per redraw.
func (c *client) render(status statusResponse, hideRow, hideCol int, hide bool) {
	buf := &bytes.Buffer{}
	buf.WriteString(ansiHome)
	for row := 0; row < len(status.Board); row++ {
		for col := 0; col < len(status.Board[row]); col++ {
			if hide && row == hideRow && col == hideCol {
				buf.WriteString("  ")
				continue
			}
			buf.WriteString(cellString(status.Board[row][col]))
		}
		buf.WriteByte('\n')
	}
	writeTallyLine(buf, "light", status.CapturedByLight)
	writeTallyLine(buf, "dark", status.CapturedByDark)
	fmt.Print(buf.String())
}

func cellString(letter string) string {
	if letter == "" {
		return ". "
	}
	display := strings.ToUpper(letter)
	if letter == display {
		return ansiLightPiece + display + ansiReset + " "
	}
	return ansiDarkPiece + display + ansiReset + " "
}

func writeTallyLine(buf *bytes.Buffer, label string, tally captureTally) {
	total := tally.Pawns + tally.Knights + tally.Bishops + tally.Rooks + tally.Queens
	if total == 0 {
		return
	}
	fmt.Fprintf(buf, "%s captured: %dP %dN %dB %dR %dQ\n",
		label, tally.Pawns, tally.Knights, tally.Bishops, tally.Rooks, tally.Queens)
}

func (c *client) printResult(status statusResponse) {
	if status.Status == "checkmate" {
		fmt.Printf("\nCheckmate! %s wins.\n", status.Winner)
		return
	}
	fmt.Print("\nStalemate. Game drawn.\n")
}

// readSquare keeps prompting until the input is a well-formed square.
// Legality stays the backend's business; only the format is checked
// here.
func (c *client) readSquare() (string, bool) {
	for {
		line, ok := c.readLine()
		if !ok {
			return "", true
		}
		pos := strings.ToLower(strings.TrimSpace(line))
		if pos == "quit" {
			return "", true
		}
		if _, _, valid := squareToCoords(pos); valid {
			return pos, false
		}
		fmt.Print("Invalid format. Try again: ")
	}
}

func (c *client) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}

func squareToCoords(pos string) (int, int, bool) {
	if len(pos) != 2 || pos[0] < 'a' || pos[0] > 'h' || pos[1] < '1' || pos[1] > '8' {
		return 0, 0, false
	}
	return 8 - int(pos[1]-'0'), int(pos[0] - 'a'), true
}

func (c *client) getStatus() (statusResponse, error) {
	var status statusResponse
	resp, err := c.httpClient.Get(c.baseURL + "/api/status")
	if err != nil {
		return status, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return status, fmt.Errorf("status endpoint returned %d", resp.StatusCode)
	}
	err = json.NewDecoder(resp.Body).Decode(&status)
	return status, err
}

func (c *client) startGame() (statusResponse, error) {
	var status statusResponse
	body, _ := json.Marshal(map[string]any{"settings": map[string]string{}})
	resp, err := c.httpClient.Post(c.baseURL+"/api/start", "application/json", bytes.NewReader(body))
	if err != nil {
		return status, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return status, fmt.Errorf("start endpoint returned %d", resp.StatusCode)
	}
	err = json.NewDecoder(resp.Body).Decode(&status)
	return status, err
}

// postMove returns the refreshed status on acceptance, or the backend's
// rejection message.
func (c *client) postMove(from, to string) (statusResponse, string, error) {
	body, err := json.Marshal(moveRequest{From: from, To: to})
	if err != nil {
		return statusResponse{}, "", err
	}
	resp, err := c.httpClient.Post(c.baseURL+"/api/move", "application/json", bytes.NewReader(body))
	if err != nil {
		return statusResponse{}, "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusBadRequest {
		var rejection errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&rejection); err != nil {
			return statusResponse{}, "", err
		}
		c.logf("move %s%s rejected: %s", from, to, rejection.Error)
		return statusResponse{}, rejection.Error, nil
	}
	if resp.StatusCode != http.StatusOK {
		return statusResponse{}, "", fmt.Errorf("move endpoint returned %d", resp.StatusCode)
	}
	var accepted struct {
		Captured string         `json:"captured"`
		Status   statusResponse `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&accepted); err != nil {
		return statusResponse{}, "", err
	}
	if accepted.Captured != "" {
		c.logf("move %s%s captured %s", from, to, accepted.Captured)
	}
	return accepted.Status, "", nil
}

func (c *client) logf(format string, args ...any) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	c.logger.Printf("[%s] [terminal] %s", ts, fmt.Sprintf(format, args...))
}

// buildLogger writes to a file only; stdout belongs to the board.
func buildLogger(path string) (*log.Logger, func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger := log.New(f, "", 0)
	return logger, func() { _ = f.Close() }, nil
}

func getenv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getenvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	var parsed int
	if _, err := fmt.Sscanf(value, "%d", &parsed); err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}
