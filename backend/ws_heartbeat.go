package main

import (
	"time"

	"github.com/gorilla/websocket"
)

func writeWSWithHeartbeat(conn *websocket.Conn, send <-chan []byte) error {
	idlePing := time.Duration(GetConfig().WsIdlePingSec) * time.Second
	ticker := time.NewTicker(idlePing)
	defer ticker.Stop()
	lastWrite := time.Now()
	pingPayload := mustMarshal(wsMessage{Type: "ping"})

	for {
		select {
		case msg, ok := <-send:
			if !ok {
				return nil
			}
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return err
			}
			lastWrite = time.Now()
		case <-ticker.C:
			if time.Since(lastWrite) < idlePing {
				continue
			}
			if err := conn.WriteMessage(websocket.TextMessage, pingPayload); err != nil {
				return err
			}
			lastWrite = time.Now()
		}
	}
}
