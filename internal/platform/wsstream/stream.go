// Package wsstream empuja eventos JSON servidor→cliente sobre WebSocket.
// El cliente no envía nada útil; cerrar el socket equivale a desmontar la vista.
package wsstream

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Event es el sobre de todo lo que sale por el socket.
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

type Stream struct {
	conn   *websocket.Conn
	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.Mutex
	closed bool
}

// Upgrade toma la conexión. El contexto del stream se cancela cuando el
// cliente cierra, cuando falla una escritura o con Close.
func Upgrade(w http.ResponseWriter, r *http.Request) (*Stream, error) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithCancel(context.WithoutCancel(r.Context()))
	s := &Stream{conn: conn, ctx: ctx, cancel: cancel}
	go s.readLoop()
	go s.pingLoop()
	return s, nil
}

func (s *Stream) Context() context.Context { return s.ctx }

func (s *Stream) Done() <-chan struct{} { return s.ctx.Done() }

// Send serializa escrituras; gorilla no admite escritores concurrentes.
func (s *Stream) Send(typ string, data any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return websocket.ErrCloseSent
	}
	_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := s.conn.WriteJSON(Event{Type: typ, Data: data}); err != nil {
		s.cancel()
		return err
	}
	return nil
}

// Close envía el frame de cierre y libera la conexión. Idempotente.
func (s *Stream) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	_ = s.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	s.mu.Unlock()

	s.cancel()
	_ = s.conn.Close()
}

func (s *Stream) readLoop() {
	defer s.cancel()
	s.conn.SetReadLimit(512)
	_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := s.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (s *Stream) pingLoop() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.mu.Lock()
			if s.closed {
				s.mu.Unlock()
				return
			}
			err := s.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
			s.mu.Unlock()
			if err != nil {
				s.cancel()
				return
			}
		}
	}
}
